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

import "cmp"

// Tree is an AVL-balanced binary search tree of unique keys.
//
// A Tree is not safe for concurrent use; callers serialize access.
type Tree[K any] struct {
	root    *Node[K]
	compare func(a, b K) int
	count   int
}

// New returns an empty tree ordered by compare, which must return a
// negative number when a < b, zero when a == b and a positive number when
// a > b.
func New[K any](compare func(a, b K) int) *Tree[K] {
	if compare == nil {
		panic("avl: nil compare function")
	}
	return &Tree[K]{compare: compare}
}

// NewOrdered returns an empty tree using the natural ordering of K.
func NewOrdered[K cmp.Ordered]() *Tree[K] {
	return New(cmp.Compare[K])
}

// Root returns the current root node, nil for an empty tree.
func (tree *Tree[K]) Root() *Node[K] {
	return tree.root
}

// Len returns the number of keys in the tree.
func (tree *Tree[K]) Len() int {
	return tree.count
}

// Height returns the height of the root, 0 for an empty tree.
func (tree *Tree[K]) Height() int {
	return tree.root.Height()
}

// Clear drops every node.
func (tree *Tree[K]) Clear() {
	tree.root = nil
	tree.count = 0
}

// Find returns the node holding key, or nil if there is none.
func (tree *Tree[K]) Find(key K) *Node[K] {
	node := tree.root
	for node != nil {
		c := tree.compare(key, node.key)
		switch {
		case c < 0:
			node = node.left
		case c > 0:
			node = node.right
		default:
			return node
		}
	}
	return nil
}

// Min returns the node with the lowest key, nil on an empty tree.
func (tree *Tree[K]) Min() *Node[K] {
	return tree.root.first()
}

// Max returns the node with the highest key, nil on an empty tree.
func (tree *Tree[K]) Max() *Node[K] {
	return tree.root.last()
}

// Parent returns the node whose child holds key. It is nil when key is
// absent or sits at the root.
func (tree *Tree[K]) Parent(key K) *Node[K] {
	var parent *Node[K]
	node := tree.root
	for node != nil {
		c := tree.compare(key, node.key)
		if c == 0 {
			return parent
		}
		parent = node
		if c < 0 {
			node = node.left
		} else {
			node = node.right
		}
	}
	return nil
}

// Insert adds key to the tree. It reports false, leaving the tree
// untouched, when key is already present.
func (tree *Tree[K]) Insert(key K) bool {
	root, inserted := tree.insertRecursive(tree.root, key)
	tree.root = root
	if inserted {
		tree.count++
	}
	return inserted
}

func (tree *Tree[K]) insertRecursive(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return newNode(key), true
	}

	var inserted bool
	c := tree.compare(key, node.key)
	switch {
	case c < 0:
		node.left, inserted = tree.insertRecursive(node.left, key)
	case c > 0:
		node.right, inserted = tree.insertRecursive(node.right, key)
	default:
		return node, false
	}

	if !inserted {
		return node, false
	}
	return rebalance(node), true
}

// Delete removes key from the tree and reports whether it was present.
func (tree *Tree[K]) Delete(key K) bool {
	root, removed := tree.deleteRecursive(tree.root, key)
	tree.root = root
	if removed {
		tree.count--
	}
	return removed
}

func (tree *Tree[K]) deleteRecursive(node *Node[K], key K) (*Node[K], bool) {
	if node == nil {
		return nil, false
	}

	var removed bool
	c := tree.compare(key, node.key)
	switch {
	case c < 0:
		node.left, removed = tree.deleteRecursive(node.left, key)
	case c > 0:
		node.right, removed = tree.deleteRecursive(node.right, key)
	default:
		if node.left == nil {
			// no children, or only a right child
			return node.right, true
		}
		if node.right == nil {
			return node.left, true
		}

		// Two children: the in-order predecessor has at most one child,
		// so removing it from the left subtree is one of the cases above.
		predecessor := node.left.last().key
		node.left, _ = tree.deleteRecursive(node.left, predecessor)
		node.key = predecessor
		removed = true
	}

	if !removed {
		return node, false
	}
	return rebalance(node), true
}

// Range returns the keys k with lo <= k < hi in ascending order.
func (tree *Tree[K]) Range(lo, hi K) []K {
	var results []K
	tree.rangeSearch(tree.root, lo, hi, &results)
	return results
}

func (tree *Tree[K]) rangeSearch(node *Node[K], lo, hi K, results *[]K) {
	if node == nil {
		return
	}

	aboveLo := tree.compare(node.key, lo) >= 0
	belowHi := tree.compare(node.key, hi) < 0

	if aboveLo {
		tree.rangeSearch(node.left, lo, hi, results)
	}
	if aboveLo && belowHi {
		*results = append(*results, node.key)
	}
	if belowHi {
		tree.rangeSearch(node.right, lo, hi, results)
	}
}
