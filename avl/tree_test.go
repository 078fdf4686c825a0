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
	"math"
	"math/rand"
	"reflect"
	"sort"
	"testing"
)

type rotationTestCase struct {
	Name          string
	Keys          []int
	ExpectedRoot  int
	ExpectedLeft  int
	ExpectedRight int
}

func TestInsertRotations(t *testing.T) {
	testCases := []rotationTestCase{
		{Name: "Right-Right", Keys: []int{10, 20, 30}, ExpectedRoot: 20, ExpectedLeft: 10, ExpectedRight: 30},
		{Name: "Left-Left", Keys: []int{30, 20, 10}, ExpectedRoot: 20, ExpectedLeft: 10, ExpectedRight: 30},
		{Name: "Left-Right", Keys: []int{30, 10, 20}, ExpectedRoot: 20, ExpectedLeft: 10, ExpectedRight: 30},
		{Name: "Right-Left", Keys: []int{10, 30, 20}, ExpectedRoot: 20, ExpectedLeft: 10, ExpectedRight: 30},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			var root *Node
			for _, key := range tc.Keys {
				root = Insert(root, key)
			}

			if root.Key != tc.ExpectedRoot {
				t.Fatalf("root = %d; want %d", root.Key, tc.ExpectedRoot)
			}
			if root.Left == nil || root.Left.Key != tc.ExpectedLeft {
				t.Fatalf("left child = %v; want %d", root.Left, tc.ExpectedLeft)
			}
			if root.Right == nil || root.Right.Key != tc.ExpectedRight {
				t.Fatalf("right child = %v; want %d", root.Right, tc.ExpectedRight)
			}

			for _, n := range []*Node{root, root.Left, root.Right} {
				if n.Balance != 0 {
					t.Errorf("node %d balance = %d; want 0", n.Key, n.Balance)
				}
			}
			if root.Left.Left != nil || root.Left.Right != nil || root.Right.Left != nil || root.Right.Right != nil {
				t.Errorf("children of a three node tree should be leaves, got %s", Signature(root))
			}
		})
	}
}

func TestInsertDuplicateIsNoop(t *testing.T) {
	var root *Node
	for _, key := range []int{10, 10, 20} {
		root = Insert(root, key)
	}

	if got := Len(root); got != 2 {
		t.Fatalf("Len = %d; want 2", got)
	}
	if root.Key != 10 {
		t.Fatalf("root = %d; want 10", root.Key)
	}
	if root.Left != nil {
		t.Errorf("root should have no left child, got %d", root.Left.Key)
	}
	if root.Right == nil || root.Right.Key != 20 {
		t.Fatalf("right child = %v; want 20", root.Right)
	}
	if root.Balance != 1 {
		t.Errorf("root balance = %d; want 1", root.Balance)
	}
}

func TestInsertReport(t *testing.T) {
	root, inserted := InsertReport(nil, 5)
	if !inserted {
		t.Errorf("first insert of 5 should report a new node")
	}

	root, inserted = InsertReport(root, 5)
	if inserted {
		t.Errorf("second insert of 5 should report a duplicate")
	}

	root, inserted = InsertReport(root, 7)
	if !inserted {
		t.Errorf("insert of 7 should report a new node")
	}

	if got := InOrder(root); !reflect.DeepEqual(got, []int{5, 7}) {
		t.Errorf("InOrder = %v; want [5 7]", got)
	}
}

func snapshot(root *Node) []Visit {
	var visits []Visit
	Walk(root, func(v Visit) bool {
		visits = append(visits, v)
		return true
	})
	return visits
}

func TestInsertKeepsInvariants(t *testing.T) {
	orders := map[string][]int{
		"ascending":  sequence(1, 512),
		"descending": reversed(sequence(1, 512)),
		"zigzag":     zigzag(512),
		"random":     rand.New(rand.NewSource(42)).Perm(1024),
	}

	for name, keys := range orders {
		t.Run(name, func(t *testing.T) {
			var root *Node
			distinct := make(map[int]struct{})

			for i, key := range keys {
				root = Insert(root, key)
				distinct[key] = struct{}{}

				if err := Verify(root); err != nil {
					t.Fatalf("after inserting %d (step %d): %v", key, i, err)
				}

				n := len(distinct)
				bound := 1.45 * math.Log2(float64(n+2))
				if h := Height(root); float64(h) > bound {
					t.Fatalf("height %d exceeds %.2f for %d keys", h, bound, n)
				}
			}

			want := make([]int, 0, len(distinct))
			for k := range distinct {
				want = append(want, k)
			}
			sort.Ints(want)

			if got := InOrder(root); !reflect.DeepEqual(got, want) {
				t.Errorf("key set mismatch: got %d keys, want %d", len(got), len(want))
			}
			if got := Len(root); got != len(want) {
				t.Errorf("Len = %d; want %d", got, len(want))
			}
		})
	}
}

func TestInsertDuplicatesLeaveTreeUnchanged(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	keys := rng.Perm(300)

	var root *Node
	for _, key := range keys {
		root = Insert(root, key)
	}

	before := snapshot(root)
	sig := Signature(root)

	for i := 0; i < 1000; i++ {
		root = Insert(root, keys[rng.Intn(len(keys))])
	}

	if got := Signature(root); got != sig {
		t.Errorf("shape changed after duplicate inserts")
	}
	if after := snapshot(root); !reflect.DeepEqual(before, after) {
		t.Errorf("balance signals changed after duplicate inserts")
	}
}

func TestInsertWithRepeatedInput(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	var root *Node
	distinct := make(map[int]struct{})
	for i := 0; i < 2000; i++ {
		key := rng.Intn(400) - 200
		root = Insert(root, key)
		distinct[key] = struct{}{}
	}

	if err := Verify(root); err != nil {
		t.Fatal(err)
	}
	if got := Len(root); got != len(distinct) {
		t.Errorf("Len = %d; want %d distinct keys", got, len(distinct))
	}
	for key := range distinct {
		if !Contains(root, key) {
			t.Errorf("Contains(%d) = false after insert", key)
		}
	}
}

func expectPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}

func TestPreconditionViolationsPanic(t *testing.T) {
	expectPanic(t, "rotateRR without right child", func() { rotateRR(&Node{Key: 1}) })
	expectPanic(t, "rotateLL without left child", func() { rotateLL(&Node{Key: 1}) })
	expectPanic(t, "rotateRL without right child", func() { rotateRL(&Node{Key: 1}) })
	expectPanic(t, "rotateLR without left child", func() { rotateLR(&Node{Key: 1}) })
	expectPanic(t, "recalculateBalance on nil", func() { recalculateBalance(nil) })
}

func TestInsertPanicsOnCorruptedTree(t *testing.T) {
	// A left chain whose stored signals claim the tree is balanced.
	root := &Node{Key: 10, Left: &Node{Key: 5, Left: &Node{Key: 3, Left: &Node{Key: 1}}}}

	expectPanic(t, "insert into corrupted tree", func() { Insert(root, 20) })
}

func TestRotationRecomputesBothEndpoints(t *testing.T) {
	root := &Node{Key: 1, Balance: 2, Right: &Node{Key: 2, Balance: 1, Right: &Node{Key: 3}}}

	root = rotateRR(root)

	if root.Key != 2 || root.Left.Key != 1 || root.Right.Key != 3 {
		t.Fatalf("unexpected shape %s", Signature(root))
	}
	if root.Balance != 0 || root.Left.Balance != 0 {
		t.Errorf("balances = %d/%d; want 0/0", root.Balance, root.Left.Balance)
	}
}

func TestDestroy(t *testing.T) {
	Destroy(nil)

	var root *Node
	for _, key := range []int{4, 2, 6, 1, 3, 5, 7} {
		root = Insert(root, key)
	}
	left, right := root.Left, root.Right

	Destroy(root)

	if root.Left != nil || root.Right != nil {
		t.Errorf("root still owns children after Destroy")
	}
	if left.Left != nil || left.Right != nil || right.Left != nil || right.Right != nil {
		t.Errorf("inner nodes still own children after Destroy")
	}
}

func sequence(from, to int) []int {
	keys := make([]int, 0, to-from+1)
	for k := from; k <= to; k++ {
		keys = append(keys, k)
	}
	return keys
}

func reversed(keys []int) []int {
	out := make([]int, len(keys))
	for i, k := range keys {
		out[len(keys)-1-i] = k
	}
	return out
}

// zigzag alternates between the low and high ends: 0, n-1, 1, n-2, ...
func zigzag(n int) []int {
	keys := make([]int, 0, n)
	lo, hi := 0, n-1
	for lo <= hi {
		keys = append(keys, lo)
		if lo != hi {
			keys = append(keys, hi)
		}
		lo++
		hi--
	}
	return keys
}
