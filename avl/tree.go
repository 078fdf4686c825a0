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

import "fmt"

// height follows the taller child as recorded by the node's own balance
// signal instead of measuring both sides. It is only valid on nodes whose
// signals are already consistent, which holds for every child by the time
// its parent is recalculated.
func height(node *Node) int {
	if node == nil {
		return 0
	}

	if node.Balance > 0 {
		return 1 + height(node.Right)
	}
	return 1 + height(node.Left)
}

func recalculateBalance(node *Node) {
	if node == nil {
		panic("avl: balance requested for a nil node")
	}

	node.Balance = height(node.Right) - height(node.Left)
}

// rotateRR resolves the right-right case: node.Right takes node's place.
func rotateRR(node *Node) *Node {
	if node == nil || node.Right == nil {
		panic("avl: left rotation needs a right child")
	}

	pivot := node.Right

	node.Right = pivot.Left
	pivot.Left = node

	recalculateBalance(node)
	recalculateBalance(pivot)

	return pivot
}

// rotateLL resolves the left-left case: node.Left takes node's place.
func rotateLL(node *Node) *Node {
	if node == nil || node.Left == nil {
		panic("avl: right rotation needs a left child")
	}

	pivot := node.Left

	node.Left = pivot.Right
	pivot.Right = node

	recalculateBalance(node)
	recalculateBalance(pivot)

	return pivot
}

// rotateRL resolves the right-left case.
func rotateRL(node *Node) *Node {
	if node == nil {
		panic("avl: right-left rotation on a nil node")
	}

	node.Right = rotateLL(node.Right)
	return rotateRR(node)
}

// rotateLR resolves the left-right case.
func rotateLR(node *Node) *Node {
	if node == nil {
		panic("avl: left-right rotation on a nil node")
	}

	node.Left = rotateRR(node.Left)
	return rotateLL(node)
}

// Insert adds key to the tree rooted at root and returns the new root.
// Inserting a key that is already present leaves the tree unchanged.
//
// Insert panics if rebalancing ever leaves a node with a balance signal
// of magnitude two or more; that means the tree was corrupted before the
// call.
func Insert(root *Node, key int) *Node {
	root, _ = insert(root, key)
	return root
}

// InsertReport behaves like Insert and also reports whether a new node
// was grafted. It is false for duplicates.
func InsertReport(root *Node, key int) (*Node, bool) {
	return insert(root, key)
}

func insert(root *Node, key int) (*Node, bool) {
	if root == nil {
		return newNode(key), true
	}

	var inserted bool

	switch {
	case key > root.Key:
		root.Right, inserted = insert(root.Right, key)

		recalculateBalance(root)

		if root.Balance >= 2 {
			if key > root.Right.Key {
				root = rotateRR(root)
			} else {
				root = rotateRL(root)
			}
		}
	case key < root.Key:
		root.Left, inserted = insert(root.Left, key)

		recalculateBalance(root)

		if root.Balance <= -2 {
			if key < root.Left.Key {
				root = rotateLL(root)
			} else {
				root = rotateLR(root)
			}
		}
	default:
		// Duplicate key.
	}

	if root.Balance >= 2 || root.Balance <= -2 {
		panic(fmt.Sprintf("avl: node %d left with balance %d after rebalancing", root.Key, root.Balance))
	}

	return root, inserted
}
