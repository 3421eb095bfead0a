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
	"time"

	"github.com/cybrota/avlkit/avl"
	"github.com/patrickmn/go-cache"
)

const (
	renderCacheExpiration = 30 * time.Minute
	renderCacheCleanup    = 5 * time.Minute
)

// NewRenderCache creates a cache for rendered tree views.
func NewRenderCache() *cache.Cache {
	return cache.New(renderCacheExpiration, renderCacheCleanup)
}

// treeSignature identifies the shape of a tree: the pre-order key sequence
// of a binary search tree determines its structure.
func treeSignature(tree *avl.Tree[int], width int) string {
	return fmt.Sprintf("%d|%s", width, joinKeys(tree.Flatten()))
}

func CacheRender(c *cache.Cache, signature string, view string) {
	c.Set(signature, view, renderCacheExpiration)
}

func GetRender(c *cache.Cache, signature string) string {
	val, ok := c.Get(signature)
	if !ok {
		return ""
	}
	return val.(string)
}
