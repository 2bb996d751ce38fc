// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package avl implements a height balanced binary search tree of unique
// integer keys.
//
// A Tree is not safe for concurrent use.
package avl

import "iter"

// Tree is an AVL tree. The zero value is an empty tree ready to use.
type Tree struct {
	root *Node
	size int
}

// New returns an empty tree.
func New() *Tree {
	return &Tree{}
}

// Root returns the root node, or nil for an empty tree. Callers must not
// modify the returned nodes.
func (t *Tree) Root() *Node {
	return t.root
}

// Len returns the number of keys in the tree.
func (t *Tree) Len() int {
	return t.size
}

// Height returns the height of the tree, 0 when empty.
func (t *Tree) Height() int {
	return height(t.root)
}

// Insert adds key to the tree. It reports false if the key was already present,
// in which case the tree is left untouched.
func (t *Tree) Insert(key int) bool {
	var added bool
	t.root, added = insert(t.root, key)
	if added {
		t.size++
	}
	return added
}

// Delete removes key from the tree. It reports false if the key was absent.
func (t *Tree) Delete(key int) bool {
	var removed bool
	t.root, removed = remove(t.root, key)
	if removed {
		t.size--
	}
	return removed
}

// Contains reports whether key is in the tree.
func (t *Tree) Contains(key int) bool {
	node := t.root
	for node != nil {
		switch {
		case key < node.Key:
			node = node.Left
		case key > node.Key:
			node = node.Right
		default:
			return true
		}
	}
	return false
}

// Clear drops every key.
func (t *Tree) Clear() {
	t.root = nil
	t.size = 0
}

// PreOrder yields the keys root first, then the left subtree, then the right
// subtree. The sequence may be ranged over any number of times.
func (t *Tree) PreOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		preOrder(t.root, yield)
	}
}

// InOrder yields the keys in ascending order.
func (t *Tree) InOrder() iter.Seq[int] {
	return func(yield func(int) bool) {
		inOrder(t.root, yield)
	}
}

func preOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return yield(node.Key) && preOrder(node.Left, yield) && preOrder(node.Right, yield)
}

func inOrder(node *Node, yield func(int) bool) bool {
	if node == nil {
		return true
	}
	return inOrder(node.Left, yield) && yield(node.Key) && inOrder(node.Right, yield)
}

// insert returns the new root of the subtree after adding key, and whether
// a node was created.
func insert(root *Node, key int) (*Node, bool) {
	if root == nil {
		return newLeaf(key), true
	}

	var added bool
	switch {
	case key < root.Key:
		root.Left, added = insert(root.Left, key)
	case key > root.Key:
		root.Right, added = insert(root.Right, key)
	default:
		return root, false
	}

	updateHeight(root)

	// Only one key went in, so comparing it with the child's key tells which
	// grandchild grew.
	balance := balanceFactor(root)
	switch {
	case balance > 1 && key < root.Left.Key:
		// left left
		return rotateRight(root), added
	case balance < -1 && key > root.Right.Key:
		// right right
		return rotateLeft(root), added
	case balance > 1 && key > root.Left.Key:
		// left right
		root.Left = rotateLeft(root.Left)
		return rotateRight(root), added
	case balance < -1 && key < root.Right.Key:
		// right left
		root.Right = rotateRight(root.Right)
		return rotateLeft(root), added
	}

	return root, added
}

// remove returns the new root of the subtree after deleting key, and whether
// a node was removed.
func remove(root *Node, key int) (*Node, bool) {
	if root == nil {
		return nil, false
	}

	var removed bool
	switch {
	case key < root.Key:
		root.Left, removed = remove(root.Left, key)
	case key > root.Key:
		root.Right, removed = remove(root.Right, key)
	default:
		if root.Left == nil {
			return root.Right, true
		}
		if root.Right == nil {
			return root.Left, true
		}
		successor := minValueNode(root.Right)
		root.Key = successor.Key
		// The successor was just found in the right subtree, so this always
		// removes a node.
		root.Right, removed = remove(root.Right, successor.Key)
	}

	if !removed {
		return root, false
	}

	updateHeight(root)

	// The deleted key is gone, so the children's own balance picks the
	// rotation.
	balance := balanceFactor(root)
	switch {
	case balance > 1 && balanceFactor(root.Left) >= 0:
		return rotateRight(root), true
	case balance > 1:
		root.Left = rotateLeft(root.Left)
		return rotateRight(root), true
	case balance < -1 && balanceFactor(root.Right) <= 0:
		return rotateLeft(root), true
	case balance < -1:
		root.Right = rotateRight(root.Right)
		return rotateLeft(root), true
	}

	return root, true
}
