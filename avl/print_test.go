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
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrint(t *testing.T) {
	tree := New()
	for _, key := range []int{2, 1, 7, 4, 5, 3, 8} {
		tree.Insert(key)
	}

	expected := strings.Join([]string{
		"R----4",
		"     L----2",
		"     |    L----1",
		"     |    R----3",
		"     R----7",
		"          L----5",
		"          R----8",
		"",
	}, "\n")
	require.Equal(t, expected, tree.String())
}

func TestPrintEmptyTree(t *testing.T) {
	require.Empty(t, New().String())
}

func TestPrintWithKeyFormatter(t *testing.T) {
	tree := New()
	for _, key := range []int{1, 2} {
		tree.Insert(key)
	}

	var sb strings.Builder
	err := tree.Print(&sb, WithKeyFormatter(func(node *Node) string {
		return fmt.Sprintf("%d(h=%d)", node.Key, node.Height)
	}))
	require.NoError(t, err)
	require.Equal(t, "R----1(h=2)\n     R----2(h=1)\n", sb.String())
}

func TestDotGraph(t *testing.T) {
	tree := New()
	for _, key := range []int{2, 1, 3} {
		tree.Insert(key)
	}

	graph := tree.DotGraph()
	require.Contains(t, graph, "digraph")
	for _, label := range []string{"K:2 H:2 B:0", "K:1 H:1 B:0", "K:3 H:1 B:0"} {
		require.Contains(t, graph, label)
	}
	require.Equal(t, 2, strings.Count(graph, "->"))
}

func TestDotGraphEmptyTree(t *testing.T) {
	graph := New().DotGraph()
	require.Contains(t, graph, "digraph")
	require.NotContains(t, graph, "K:")
}
