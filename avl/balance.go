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

func updateHeight[K any](node *Node[K]) {
	node.height = max(node.left.Height(), node.right.Height()) + 1
}

// rotateLeft promotes node.right and returns it as the new subtree root.
func rotateLeft[K any](node *Node[K]) *Node[K] {
	if node == nil || node.right == nil {
		return node
	}

	pivot := node.right
	node.right = pivot.left
	pivot.left = node

	// pivot's height depends on node's, so node goes first
	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rotateRight promotes node.left and returns it as the new subtree root.
func rotateRight[K any](node *Node[K]) *Node[K] {
	if node == nil || node.left == nil {
		return node
	}

	pivot := node.left
	node.left = pivot.right
	pivot.right = node

	updateHeight(node)
	updateHeight(pivot)

	return pivot
}

// rebalance fixes the height of node and restores the AVL condition with at
// most two rotations. The caller must re-link the returned subtree root.
func rebalance[K any](node *Node[K]) *Node[K] {
	if node == nil {
		return nil
	}

	updateHeight(node)

	switch node.BalanceFactor() {
	case 2:
		// Right-Left case
		if node.right.BalanceFactor() < 0 {
			node.right = rotateRight(node.right)
		}
		return rotateLeft(node)
	case -2:
		// Left-Right case
		if node.left.BalanceFactor() > 0 {
			node.left = rotateLeft(node.left)
		}
		return rotateRight(node)
	}

	return node
}
