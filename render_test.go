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
	"reflect"
	"testing"

	"github.com/cybrota/avlkeys/avl"
)

func buildTree(keys ...int) *avl.Node {
	var root *avl.Node
	for _, key := range keys {
		root = avl.Insert(root, key)
	}
	return root
}

type LayoutTestCase struct {
	Name      string
	Keys      []int
	CellWidth int
	Expected  []string
}

func TestLayout(t *testing.T) {
	testCases := []LayoutTestCase{
		{
			Name:      "Empty tree",
			Keys:      nil,
			CellWidth: 4,
			Expected:  nil,
		},
		{
			Name:      "Single key",
			Keys:      []int{10},
			CellWidth: 4,
			Expected:  []string{"  10    "},
		},
		{
			Name:      "Right child only",
			Keys:      []int{10, 10, 20},
			CellWidth: 4,
			Expected: []string{
				"      10        ",
				"          20    ",
			},
		},
		{
			Name:      "Rotated three keys",
			Keys:      []int{10, 20, 30},
			CellWidth: 4,
			Expected: []string{
				"      20        ",
				"  10      30    ",
			},
		},
		{
			Name:      "Narrow cells",
			Keys:      []int{2, 1, 3},
			CellWidth: 1,
			Expected: []string{
				" 2  ",
				"1 3 ",
			},
		},
		{
			Name:      "Zero width falls back to default",
			Keys:      []int{7},
			CellWidth: 0,
			Expected:  []string{"   7    "},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			got := Layout(buildTree(tc.Keys...), tc.CellWidth)
			if !reflect.DeepEqual(got, tc.Expected) {
				t.Errorf("Layout = %q; want %q", got, tc.Expected)
			}
		})
	}
}

func TestLayoutPlacesChildrenUnderParent(t *testing.T) {
	// 1..7 in order yields a perfect tree rooted at 4.
	rows := Layout(buildTree(1, 2, 3, 4, 5, 6, 7), 4)
	if len(rows) != 3 {
		t.Fatalf("got %d rows; want 3", len(rows))
	}

	expected := []string{
		"               4                ",
		"       2               6        ",
		"   1       3       5       7    ",
	}
	if !reflect.DeepEqual(rows, expected) {
		t.Errorf("Layout = %q; want %q", rows, expected)
	}
	for i, row := range rows {
		if len(row) != 32 {
			t.Errorf("row %d has width %d; want 32", i, len(row))
		}
	}
}

func TestRendererReusesLayoutForDuplicateInsert(t *testing.T) {
	c := NewRenderCache()
	r := NewRenderer(RenderConfig{CellWidth: 4, Color: false}, c)

	root := buildTree(10, 20, 30)
	first := r.Render(root)
	if want := "      20        \n  10      30    \n"; first != want {
		t.Fatalf("Render = %q; want %q", first, want)
	}
	if c.ItemCount() != 1 {
		t.Fatalf("cache holds %d layouts; want 1", c.ItemCount())
	}

	root = avl.Insert(root, 20)
	if second := r.Render(root); second != first {
		t.Errorf("layout changed after duplicate insert: %q", second)
	}
	if c.ItemCount() != 1 {
		t.Errorf("duplicate insert should hit the cache, have %d layouts", c.ItemCount())
	}

	root = avl.Insert(root, 40)
	r.Render(root)
	if c.ItemCount() != 1 {
		t.Errorf("new shape should replace the cached layout, have %d", c.ItemCount())
	}
}

func TestRendererCacheStaysBoundedAcrossDistinctInserts(t *testing.T) {
	c := NewRenderCache()
	r := NewRenderer(RenderConfig{CellWidth: 4}, c)

	var root *avl.Node
	var last string
	for key := 1; key <= 2000; key++ {
		root = avl.Insert(root, key)
		last = r.Render(root)
	}

	if c.ItemCount() != 1 {
		t.Fatalf("cache holds %d layouts after 2000 distinct keys; want 1", c.ItemCount())
	}

	total := 0
	for _, item := range c.Items() {
		total += len(item.Object.(cachedLayout).layout)
	}
	if total != len(last) {
		t.Errorf("cache holds %d bytes; want only the last layout (%d bytes)", total, len(last))
	}
}

func TestRendererEmptyTree(t *testing.T) {
	r := NewRenderer(RenderConfig{}, nil)
	if out := r.Render(nil); out != "" {
		t.Errorf("Render(nil) = %q; want empty", out)
	}
}
