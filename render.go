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
	"strings"

	"github.com/cybrota/avlkeys/avl"
	"github.com/patrickmn/go-cache"
)

const defaultCellWidth = 4

type slot struct {
	key     int
	balance int
	used    bool
}

// flatten places every node at its (depth, position) slot of a complete
// binary tree with the given number of levels.
func flatten(root *avl.Node, levels int) [][]slot {
	rows := make([][]slot, levels)
	for depth := range rows {
		rows[depth] = make([]slot, 1<<depth)
	}

	avl.Walk(root, func(v avl.Visit) bool {
		rows[v.Depth][v.Position] = slot{key: v.Key, balance: v.Balance, used: true}
		return true
	})
	return rows
}

// layout renders the tree as one row per level. Each slot takes a
// right-aligned key of cellWidth columns, preceded by gap-cellWidth and
// followed by gap spaces; gap halves on every row so children sit under
// their parent. paint may decorate the formatted key.
func layout(root *avl.Node, cellWidth int, paint func(text string, balance int) string) []string {
	if root == nil {
		return nil
	}
	if cellWidth < 1 {
		cellWidth = defaultCellWidth
	}

	levels := avl.Height(root)
	rows := flatten(root, levels)

	gap := (1 << levels) * cellWidth / 2
	blank := strings.Repeat(" ", cellWidth)

	lines := make([]string, 0, levels)
	for _, row := range rows {
		var sb strings.Builder
		lead := strings.Repeat(" ", max(gap-cellWidth, 0))
		trail := strings.Repeat(" ", gap)

		for _, s := range row {
			sb.WriteString(lead)
			if s.used {
				text := fmt.Sprintf("%*d", cellWidth, s.key)
				if paint != nil {
					text = paint(text, s.balance)
				}
				sb.WriteString(text)
			} else {
				sb.WriteString(blank)
			}
			sb.WriteString(trail)
		}

		lines = append(lines, sb.String())
		gap /= 2
	}
	return lines
}

// Layout returns the plain text rows for the tree, or nil for an empty
// tree.
func Layout(root *avl.Node, cellWidth int) []string {
	return layout(root, cellWidth, nil)
}

// Renderer turns trees into text, reusing the layout of any shape it has
// already drawn.
type Renderer struct {
	cellWidth int
	color     bool
	cache     *cache.Cache
}

func NewRenderer(cfg RenderConfig, c *cache.Cache) *Renderer {
	if c == nil {
		c = NewRenderCache()
	}
	width := cfg.CellWidth
	if width < 1 {
		width = defaultCellWidth
	}
	return &Renderer{cellWidth: width, color: cfg.Color, cache: c}
}

// Render returns the layout of root as a newline-terminated block, or an
// empty string for an empty tree.
func (r *Renderer) Render(root *avl.Node) string {
	if root == nil {
		return ""
	}

	key := fmt.Sprintf("%d|%t|%s", r.cellWidth, r.color, avl.Signature(root))
	if out, ok := CachedLayout(r.cache, key); ok {
		return out
	}

	var paint func(string, int) string
	if r.color {
		paint = func(text string, balance int) string {
			return BalanceStyle(balance).Render(text)
		}
	}

	out := strings.Join(layout(root, r.cellWidth, paint), "\n") + "\n"
	CacheLayout(r.cache, key, out)
	return out
}
