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

// Node is a single element of the tree. Nodes are owned by exactly one
// parent slot and are only exposed read-only.
type Node[K any] struct {
	key    K
	height int // leaf = 1
	left   *Node[K]
	right  *Node[K]
}

func newNode[K any](key K) *Node[K] {
	return &Node[K]{key: key, height: 1}
}

// Key returns the node's key.
func (n *Node[K]) Key() K {
	return n.key
}

// Left returns the left child or nil.
func (n *Node[K]) Left() *Node[K] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child or nil.
func (n *Node[K]) Right() *Node[K] {
	if n == nil {
		return nil
	}
	return n.right
}

// Height returns the cached subtree height, 0 for a nil node.
func (n *Node[K]) Height() int {
	if n == nil {
		return 0
	}
	return n.height
}

// BalanceFactor is height(right) - height(left).
func (n *Node[K]) BalanceFactor() int {
	if n == nil {
		return 0
	}
	return n.right.Height() - n.left.Height()
}

// lowest node in a sub-tree
func (n *Node[K]) first() *Node[K] {
	if n == nil {
		return nil
	}
	for n.left != nil {
		n = n.left
	}
	return n
}

// highest node in a sub-tree
func (n *Node[K]) last() *Node[K] {
	if n == nil {
		return nil
	}
	for n.right != nil {
		n = n.right
	}
	return n
}
