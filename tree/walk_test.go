// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func testTree() *testNode {
	root := newTestNode(nil, "root")
	newTestNode(root, "child0")
	child1 := newTestNode(root, "child1")
	schild1 := newTestNode(child1, "subchild1")
	newTestNode(schild1, "subsubchild1")
	newTestNode(root, "child2")
	return root
}

func TestWalkDown(t *testing.T) {
	root := testTree()
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	want := []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2"}
	if diff := cmp.Diff(want, res); diff != "" {
		t.Errorf("WalkDown order mismatch (-want +got):\n%s", diff)
	}
}

func TestWalkDownBreak(t *testing.T) {
	root := testTree()
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		if n.AsTree().Name == "child1" {
			return Break
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)
}

func TestWalkDownDestroyed(t *testing.T) {
	root := testTree()
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		if n.AsTree().Name == "child1" {
			n.Destroy()
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "child2"}, res)
}

func TestWalkUp(t *testing.T) {
	root := testTree()
	leaf := root.FindByName("subsubchild1")
	var res []string
	leaf.AsTree().WalkUp(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		return Continue
	})
	assert.Equal(t, []string{"subsubchild1", "subchild1", "child1", "root"}, res)
}

func TestWalkDownDeleteSibling(t *testing.T) {
	root := testTree()
	var res []string
	root.WalkDown(func(n Node) bool {
		res = append(res, n.AsTree().Name)
		if n.AsTree().Name == "child0" {
			n.AsTree().Delete()
		}
		return Continue
	})
	assert.Equal(t, []string{"root", "child0", "child1", "subchild1", "subsubchild1", "child2"}, res)
	assert.Equal(t, 2, root.NumChildren())
}
