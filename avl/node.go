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

package avl

// Node is a single element of the tree. A node owns its children.
type Node struct {
	Key    int
	Height int // height of the subtree rooted here, a leaf is 1
	Left   *Node
	Right  *Node
}

func newLeaf(key int) *Node {
	return &Node{Key: key, Height: 1}
}

func height(node *Node) int {
	if node == nil {
		return 0
	}
	return node.Height
}

// Balance returns the height of the left subtree minus the height of the
// right subtree.
func (n *Node) Balance() int {
	return balanceFactor(n)
}

func updateHeight(node *Node) {
	node.Height = max(height(node.Left), height(node.Right)) + 1
}

func balanceFactor(node *Node) int {
	if node == nil {
		return 0
	}
	return height(node.Left) - height(node.Right)
}

// rotateRight lifts y.Left into y's place. y.Left must not be nil.
func rotateRight(y *Node) *Node {
	x := y.Left
	y.Left = x.Right
	x.Right = y

	updateHeight(y)
	updateHeight(x)

	return x
}

// rotateLeft lifts x.Right into x's place. x.Right must not be nil.
func rotateLeft(x *Node) *Node {
	y := x.Right
	x.Right = y.Left
	y.Left = x

	updateHeight(x)
	updateHeight(y)

	return y
}

// minValueNode returns the leftmost node below node, which must not be nil.
func minValueNode(node *Node) *Node {
	for node.Left != nil {
		node = node.Left
	}
	return node
}
