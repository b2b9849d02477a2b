// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package tree

import (
	"slices"
	"strings"
)

// NodeBase holds the name, parent and children of a [Node].
// [NodeBase.InitName] must be called before a node is used.
type NodeBase struct {

	// Name identifies the node in paths and lookups.
	Name string

	// This is the node as its outermost type, so that methods of
	// NodeBase reach the overrides of the embedding type.
	// It is nil once the node has been destroyed.
	This Node

	// Parent is nil for a root.
	Parent Node

	// Children are in draw order.
	Children []Node
}

// InitName sets This and the name of the node.
func (n *NodeBase) InitName(this Node, name string) {
	n.This = this
	n.Name = name
}

// String returns the path of the node, or "nil" once destroyed.
func (n *NodeBase) String() string {
	if n == nil || n.This == nil {
		return "nil"
	}
	return n.Path()
}

func (n *NodeBase) AsTree() *NodeBase {
	return n
}

func (n *NodeBase) OnAdd() {}

// IsRoot returns whether n has no parent.
func IsRoot(n Node) bool {
	return n.AsTree().Parent == nil
}

// Root returns the root of the tree of n.
func Root(n Node) Node {
	for n.AsTree().Parent != nil {
		n = n.AsTree().Parent
	}
	return n
}

// IndexInParent returns the index of n in the children of its
// parent, or -1 for a root.
func (n *NodeBase) IndexInParent() int {
	if n.Parent == nil {
		return -1
	}
	return indexOf(n.Parent.AsTree().Children, n.This)
}

func (n *NodeBase) NumChildren() int {
	return len(n.Children)
}

// Child returns the child at index i, or nil if there is none.
func (n *NodeBase) Child(i int) Node {
	if i < 0 || i >= len(n.Children) {
		return nil
	}
	return n.Children[i]
}

// ChildByName returns the first direct child with the given name, or nil.
func (n *NodeBase) ChildByName(name string) Node {
	return n.Child(slices.IndexFunc(n.Children, func(k Node) bool { return k.AsTree().Name == name }))
}

// FindByName returns the first node with the given name in a
// pre-order walk starting at n, or nil.
func (n *NodeBase) FindByName(name string) Node {
	var found Node
	n.WalkDown(func(k Node) bool {
		if found != nil {
			return Break
		}
		if k.AsTree().Name == name {
			found = k
			return Break
		}
		return Continue
	})
	return found
}

// Path returns the names from the root down to n, each preceded by "/".
func (n *NodeBase) Path() string {
	var names []string
	for cur := Node(n); cur != nil; cur = cur.AsTree().Parent {
		names = append(names, cur.AsTree().Name)
	}
	slices.Reverse(names)
	return "/" + strings.Join(names, "/")
}

// AddChild appends kid to the children of n, removing it from the
// children of its previous parent first.
func (n *NodeBase) AddChild(kid Node) {
	n.InsertChild(kid, len(n.Children))
}

// InsertChild inserts kid at the given index, clamped to the valid
// range, removing it from the children of its previous parent first.
func (n *NodeBase) InsertChild(kid Node, index int) {
	kb := kid.AsTree()
	if kb.This == nil {
		kb.This = kid
	}
	if kb.Parent != nil {
		old := kb.Parent.AsTree()
		if i := indexOf(old.Children, kid); i >= 0 {
			old.Children = slices.Delete(old.Children, i, i+1)
			if old == n && i < index {
				index--
			}
		}
	}
	index = min(max(index, 0), len(n.Children))
	n.Children = slices.Insert(n.Children, index, kid)
	kb.Parent = n.This
	kid.OnAdd()
}

// DeleteChildAt removes and destroys the child at index, and reports
// whether there was one.
func (n *NodeBase) DeleteChildAt(index int) bool {
	kid := n.Child(index)
	if kid == nil {
		return false
	}
	n.Children = slices.Delete(n.Children, index, index+1)
	kid.Destroy()
	return true
}

// DeleteChild removes and destroys kid, and reports whether it was
// a child of n.
func (n *NodeBase) DeleteChild(kid Node) bool {
	if kid == nil {
		return false
	}
	return n.DeleteChildAt(indexOf(n.Children, kid))
}

// Delete removes n from its parent and destroys it.
func (n *NodeBase) Delete() {
	if n.Parent == nil {
		n.This.Destroy()
		return
	}
	n.Parent.AsTree().DeleteChild(n.This)
}

// Destroy destroys the children of n and clears its parent and This.
// Destroying a destroyed node does nothing.
func (n *NodeBase) Destroy() {
	if n.This == nil {
		return
	}
	kids := n.Children
	n.Children = nil
	for _, kid := range kids {
		kid.Destroy()
	}
	n.Parent = nil
	n.This = nil
}

func indexOf(nodes []Node, n Node) int {
	return slices.IndexFunc(nodes, func(k Node) bool { return k == n })
}
