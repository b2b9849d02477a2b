// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import "slices"

// Walk functions return Continue to go on or Break to stop.
const (
	Continue = true
	Break    = false
)

// WalkUp calls fun on n and then on each of its ancestors, until fun
// returns [Break]. It returns false if the walk was stopped.
func (n *NodeBase) WalkUp(fun func(n Node) bool) bool {
	for cur := n.This; cur != nil; cur = cur.AsTree().Parent {
		if !fun(cur) {
			return false
		}
	}
	return true
}

// WalkDown calls fun on n and its descendants in pre-order, visiting
// children in their stored order. When fun returns [Break] the children
// of that node are skipped. The children of each node are read before
// they are walked: fun may delete the node it is given or any node
// already visited without affecting the rest of the walk, and destroyed
// nodes are skipped. Other changes to the tree during the walk are not
// supported.
func (n *NodeBase) WalkDown(fun func(n Node) bool) {
	if n.This == nil {
		return
	}
	if !fun(n.This) || n.This == nil {
		return
	}
	for _, kid := range slices.Clone(n.Children) {
		kid.AsTree().WalkDown(fun)
	}
}
