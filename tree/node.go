// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package tree provides the parent/children tree that GUI objects
// live in. Types embed [NodeBase] and are handled through [Node].
package tree

// Node is a node of a tree. All of the tree state lives in the
// embedded [NodeBase]; the methods here are the ones node types
// may override.
type Node interface {

	// AsTree returns the embedded [NodeBase].
	AsTree() *NodeBase

	// OnAdd is called after the node gets a new parent.
	OnAdd()

	// Destroy destroys the children of the node and then the node.
	// Overrides must call [NodeBase.Destroy] last.
	Destroy()
}
