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
	ErrUnordered  = errors.New("keys out of order")
	ErrUnbalanced = errors.New("balance factor out of range")
	ErrHeight     = errors.New("cached height is stale")
	ErrCount      = errors.New("node count mismatch")
)

// Check walks the whole tree and returns an error describing the first
// broken invariant, or nil if the tree is a valid AVL tree.
func (tree *Tree[K]) Check() error {
	n, err := tree.check(tree.root, nil, nil)
	if err != nil {
		return err
	}
	if n != tree.count {
		return fmt.Errorf("counted %d nodes, tree reports %d: %w", n, tree.count, ErrCount)
	}
	return nil
}

// check validates the subtree whose keys must lie strictly between lo and
// hi (nil meaning unbounded) and returns its node count.
func (tree *Tree[K]) check(node *Node[K], lo, hi *K) (int, error) {
	if node == nil {
		return 0, nil
	}
	if lo != nil && tree.compare(node.key, *lo) <= 0 {
		return 0, fmt.Errorf("key %v not above %v: %w", node.key, *lo, ErrUnordered)
	}
	if hi != nil && tree.compare(node.key, *hi) >= 0 {
		return 0, fmt.Errorf("key %v not below %v: %w", node.key, *hi, ErrUnordered)
	}

	left, err := tree.check(node.left, lo, &node.key)
	if err != nil {
		return 0, err
	}
	right, err := tree.check(node.right, &node.key, hi)
	if err != nil {
		return 0, err
	}

	if want := max(node.left.Height(), node.right.Height()) + 1; node.height != want {
		return 0, fmt.Errorf("key %v height %d, expected %d: %w", node.key, node.height, want, ErrHeight)
	}
	if bf := node.BalanceFactor(); bf < -1 || bf > 1 {
		return 0, fmt.Errorf("key %v balance factor %d: %w", node.key, bf, ErrUnbalanced)
	}
	return left + right + 1, nil
}
