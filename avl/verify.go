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
	"errors"
	"fmt"
)

var (
	ErrOrder   = errors.New("search order violated")
	ErrBalance = errors.New("balance violated")
)

// Verify checks the tree against the AVL invariants: strict search order,
// stored balance signals equal to the measured height difference, and no
// signal outside [-1, 1]. It returns the first violation found, wrapping
// ErrOrder or ErrBalance.
func Verify(root *Node) error {
	_, err := verify(root, nil, nil)
	return err
}

// verify returns the measured height of node. lo and hi bound the keys
// allowed in the subtree; nil means unbounded.
func verify(node *Node, lo, hi *int) (int, error) {
	if node == nil {
		return 0, nil
	}

	if lo != nil && node.Key <= *lo {
		return 0, fmt.Errorf("%w: key %d is not greater than ancestor %d", ErrOrder, node.Key, *lo)
	}
	if hi != nil && node.Key >= *hi {
		return 0, fmt.Errorf("%w: key %d is not less than ancestor %d", ErrOrder, node.Key, *hi)
	}

	lh, err := verify(node.Left, lo, &node.Key)
	if err != nil {
		return 0, err
	}
	rh, err := verify(node.Right, &node.Key, hi)
	if err != nil {
		return 0, err
	}

	diff := rh - lh
	if diff != node.Balance {
		return 0, fmt.Errorf("%w: node %d stores %d, measured %d", ErrBalance, node.Key, node.Balance, diff)
	}
	if diff < -1 || diff > 1 {
		return 0, fmt.Errorf("%w: node %d is off by %d", ErrBalance, node.Key, diff)
	}

	return 1 + max(lh, rh), nil
}
