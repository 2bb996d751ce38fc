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
	"time"

	"github.com/patrickmn/go-cache"

	"github.com/cybrota/avltree/avl"
)

const (
	viewCacheExpiration = 10 * time.Minute
	viewCacheCleanup    = 2 * time.Minute
)

// NewViewCache creates the cache for rendered TUI panes.
func NewViewCache() *cache.Cache {
	return cache.New(viewCacheExpiration, viewCacheCleanup)
}

// treeViewKey identifies a rendering. The pre-order sequence of a binary
// search tree determines its shape, and heights follow from the shape.
func treeViewKey(tree *avl.Tree, style string) string {
	return style + ":" + joinKeys(tree.PreOrder())
}

func CacheView(c *cache.Cache, key string, view string) {
	c.Set(key, view, viewCacheExpiration)
}

func GetView(c *cache.Cache, key string) string {
	val, ok := c.Get(key)
	if !ok {
		return ""
	}
	return val.(string)
}

// GetOrRenderTree returns the cached rendering of tree, rendering and caching
// it on a miss.
func GetOrRenderTree(c *cache.Cache, tree *avl.Tree, style string) string {
	key := treeViewKey(tree, style)
	if view := GetView(c, key); view != "" {
		return view
	}

	view := renderTree(tree, style)
	if view != "" {
		CacheView(c, key, view)
	}
	return view
}
