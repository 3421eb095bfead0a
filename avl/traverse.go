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
	"fmt"
	"iter"
	"strings"
)

// Order selects the depth-first visiting order.
type Order int

const (
	PreOrder Order = iota
	InOrder
	PostOrder
)

var orderNames = map[Order]string{
	PreOrder:  "pre",
	InOrder:   "in",
	PostOrder: "post",
}

func (o Order) String() string {
	if name, ok := orderNames[o]; ok {
		return name
	}
	return fmt.Sprintf("Order(%d)", int(o))
}

// ParseOrder accepts "pre", "in" or "post" (optionally suffixed "order").
func ParseOrder(s string) (Order, error) {
	name := strings.TrimSuffix(strings.ToLower(strings.TrimSpace(s)), "order")
	name = strings.TrimSuffix(name, "-")
	for o, n := range orderNames {
		if n == name {
			return o, nil
		}
	}
	return 0, fmt.Errorf("unknown traversal order %q", s)
}

// Visitor receives keys one at a time during a traversal.
type Visitor[K any] interface {
	Visit(key K)
}

// VisitorFunc adapts an ordinary function to a Visitor.
type VisitorFunc[K any] func(key K)

func (f VisitorFunc[K]) Visit(key K) {
	f(key)
}

// Traverse calls v.Visit once per node in the given order.
// The tree must not be modified from inside the visitor.
func (tree *Tree[K]) Traverse(order Order, v Visitor[K]) {
	for key := range tree.All(order) {
		v.Visit(key)
	}
}

// All returns the keys in the given order as a sequence. Each call starts a
// fresh walk; a sequence must not be consumed across mutations of the tree.
func (tree *Tree[K]) All(order Order) iter.Seq[K] {
	return func(yield func(K) bool) {
		walk(tree.root, order, yield)
	}
}

// walk reports false once yield asks to stop.
func walk[K any](node *Node[K], order Order, yield func(K) bool) bool {
	if node == nil {
		return true
	}
	switch order {
	case PreOrder:
		return yield(node.key) &&
			walk(node.left, order, yield) &&
			walk(node.right, order, yield)
	case PostOrder:
		return walk(node.left, order, yield) &&
			walk(node.right, order, yield) &&
			yield(node.key)
	default:
		return walk(node.left, order, yield) &&
			yield(node.key) &&
			walk(node.right, order, yield)
	}
}

// Keys returns the keys in ascending order.
func (tree *Tree[K]) Keys() []K {
	keys := make([]K, 0, tree.count)
	for key := range tree.All(InOrder) {
		keys = append(keys, key)
	}
	return keys
}

// Levels groups keys by depth from the root. Within a level keys appear
// left to right.
func (tree *Tree[K]) Levels() [][]K {
	var levels [][]K
	splitToLevels(tree.root, 0, &levels)
	return levels
}

func splitToLevels[K any](node *Node[K], depth int, levels *[][]K) {
	if node == nil {
		return
	}
	if depth == len(*levels) {
		*levels = append(*levels, nil)
	}
	(*levels)[depth] = append((*levels)[depth], node.key)

	splitToLevels(node.left, depth+1, levels)
	splitToLevels(node.right, depth+1, levels)
}

// Flatten returns the keys in pre-order using an explicit stack.
func (tree *Tree[K]) Flatten() []K {
	if tree.root == nil {
		return nil
	}

	result := make([]K, 0, tree.count)
	stack := []*Node[K]{tree.root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		result = append(result, node.key)

		if node.right != nil {
			stack = append(stack, node.right)
		}
		if node.left != nil {
			stack = append(stack, node.left)
		}
	}
	return result
}
