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
)

const (
	layoutCacheExpiration = 30 * time.Minute
	layoutCacheCleanup    = 5 * time.Minute
)

// lastLayoutKey is the only entry the render cache holds. Every distinct
// insertion changes the tree's shape, so older layouts are never asked
// for again; only a duplicate insert redraws the previous shape.
const lastLayoutKey = "last"

type cachedLayout struct {
	signature string
	layout    string
}

// NewRenderCache creates the cache of the most recently rendered layout.
func NewRenderCache() *cache.Cache {
	return cache.New(layoutCacheExpiration, layoutCacheCleanup)
}

// CacheLayout replaces the cached layout with the one drawn for signature.
func CacheLayout(c *cache.Cache, signature string, layout string) {
	c.Set(lastLayoutKey, cachedLayout{signature: signature, layout: layout}, cache.DefaultExpiration)
}

// CachedLayout returns the cached layout if it was drawn for signature.
func CachedLayout(c *cache.Cache, signature string) (string, bool) {
	val, ok := c.Get(lastLayoutKey)
	if !ok {
		return "", false
	}
	entry := val.(cachedLayout)
	if entry.signature != signature {
		return "", false
	}
	return entry.layout, true
}
