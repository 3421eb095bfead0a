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

package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
)

const minRenderWidth = 20

// levelRenderer draws a tree one depth level per row.
type levelRenderer struct {
	styles *Styles
	cache  *cache.Cache
}

func newLevelRenderer(styles *Styles, c *cache.Cache) *levelRenderer {
	return &levelRenderer{styles: styles, cache: c}
}

// Render returns the boxed level view of tree at the given total width.
func (r *levelRenderer) Render(tree *avl.Tree[int], width int) string {
	width = max(width, minRenderWidth)

	signature := treeSignature(tree, width)
	if view := GetRender(r.cache, signature); view != "" {
		return view
	}

	inner := width - 4 // border and padding
	levels := tree.Levels()

	rows := make([]string, 0, len(levels)+1)
	if len(levels) == 0 {
		rows = append(rows, r.styles.HelpDesc.Render("(empty tree)"))
	}
	for depth, level := range levels {
		keys := make([]string, len(level))
		for i, k := range level {
			style := r.styles.Key
			if depth == 0 {
				style = r.styles.Root
			}
			keys[i] = style.Render(strconv.Itoa(k))
		}
		row := strings.Join(keys, "  ")
		rows = append(rows, lipgloss.PlaceHorizontal(inner, lipgloss.Center, row))
	}

	summary := fmt.Sprintf("keys: %d  height: %d", tree.Len(), tree.Height())
	if root := tree.Root(); root != nil {
		summary += fmt.Sprintf("  root balance: %+d", root.BalanceFactor())
	}
	rows = append(rows, "", r.styles.HelpDesc.Render(summary))

	view := r.styles.BorderBlurred.
		Width(width - 2).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(lipgloss.Left, rows...))

	CacheRender(r.cache, signature, view)
	return view
}

// describeTree writes the three depth-first orders and the level grouping
// as plain text.
func describeTree(tree *avl.Tree[int]) string {
	var b strings.Builder
	for _, order := range []avl.Order{avl.PreOrder, avl.InOrder, avl.PostOrder} {
		var keys []int
		tree.Traverse(order, avl.VisitorFunc[int](func(k int) {
			keys = append(keys, k)
		}))
		fmt.Fprintf(&b, "%-5s %s\n", order.String()+":", joinKeys(keys))
	}
	for depth, level := range tree.Levels() {
		fmt.Fprintf(&b, "L%-4d %s\n", depth, joinKeys(level))
	}
	return b.String()
}
