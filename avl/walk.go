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

import (
	"strconv"
	"strings"
)

// Visit describes one node seen by Walk.
type Visit struct {
	Key     int
	Balance int
	Depth   int // root is at depth 0
	// Position is the node's slot within its level of a complete binary
	// tree. The children of position p sit at 2p and 2p+1.
	Position int
}

// Walk visits every node in pre-order, left subtree before right, and
// stops early when fn returns false. It never modifies the tree.
func Walk(root *Node, fn func(Visit) bool) {
	walk(root, 0, 0, fn)
}

func walk(node *Node, depth, position int, fn func(Visit) bool) bool {
	if node == nil {
		return true
	}

	v := Visit{
		Key:      node.Key,
		Balance:  node.Balance,
		Depth:    depth,
		Position: position,
	}
	if !fn(v) {
		return false
	}

	if !walk(node.Left, depth+1, 2*position, fn) {
		return false
	}
	return walk(node.Right, depth+1, 2*position+1, fn)
}

// InOrder returns the keys of the tree in ascending order.
func InOrder(root *Node) []int {
	var keys []int
	inOrder(root, &keys)
	return keys
}

func inOrder(node *Node, keys *[]int) {
	if node == nil {
		return
	}
	inOrder(node.Left, keys)
	*keys = append(*keys, node.Key)
	inOrder(node.Right, keys)
}

// Len returns the number of keys in the tree.
func Len(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + Len(root.Left) + Len(root.Right)
}

// Height returns the number of nodes on the longest root-to-leaf path.
// Unlike the balance bookkeeping it measures both subtrees, so it can be
// used on any tree.
func Height(root *Node) int {
	if root == nil {
		return 0
	}
	return 1 + max(Height(root.Left), Height(root.Right))
}

// Contains reports whether key is in the tree.
func Contains(root *Node, key int) bool {
	node := root
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

// Signature encodes the shape and keys of the tree in pre-order, e.g.
// "20(10()())(30()())". Two trees have equal signatures exactly when they
// hold the same keys in the same shape.
func Signature(root *Node) string {
	var sb strings.Builder
	signature(root, &sb)
	return sb.String()
}

func signature(node *Node, sb *strings.Builder) {
	if node == nil {
		return
	}

	var buf [20]byte
	sb.Write(strconv.AppendInt(buf[:0], int64(node.Key), 10))

	sb.WriteByte('(')
	signature(node.Left, sb)
	sb.WriteByte(')')

	sb.WriteByte('(')
	signature(node.Right, sb)
	sb.WriteByte(')')
}
