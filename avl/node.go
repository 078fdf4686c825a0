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

// Package avl keeps a set of distinct integer keys in an AVL tree.
//
// A nil *Node is the empty tree. Callers own the root and thread it
// through every insertion:
//
//	var root *avl.Node
//	root = avl.Insert(root, 10)
//	root = avl.Insert(root, 20)
//	defer avl.Destroy(root)
//
// Nodes carry no parent pointers. Ancestors on an insertion path are
// revisited through the recursive call stack, leaf to root.
//
// A tree must not be used from more than one goroutine at a time.
package avl

// Node is one key of the set.
type Node struct {
	Key     int
	Balance int // height(Right) - height(Left)
	Left    *Node
	Right   *Node
}

func newNode(key int) *Node {
	return &Node{Key: key}
}

// Destroy releases every node owned by root. Child links are cleared so a
// stale pointer into the discarded tree cannot keep the rest of it alive.
// Destroy on an empty tree is a no-op.
func Destroy(root *Node) {
	if root == nil {
		return
	}

	Destroy(root.Left)
	Destroy(root.Right)

	root.Left = nil
	root.Right = nil
}
