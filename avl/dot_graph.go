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
	"strconv"

	"github.com/emicklei/dot"
)

// DotGraph renders the tree in Graphviz DOT format. Every node is labelled
// with its key, height and balance factor; edges are labelled "l" or "r".
func (t *Tree) DotGraph() string {
	graph := dot.NewGraph(dot.Directed)

	var traverse func(node *Node, parent *dot.Node, direction string)
	traverse = func(node *Node, parent *dot.Node, direction string) {
		n := graph.Node(strconv.Itoa(node.Key)).
			Label(fmt.Sprintf("K:%d H:%d B:%d", node.Key, node.Height, balanceFactor(node)))
		if parent != nil {
			parent.Edge(n, direction)
		}
		if node.Left != nil {
			traverse(node.Left, &n, "l")
		}
		if node.Right != nil {
			traverse(node.Right, &n, "r")
		}
	}

	if t.root != nil {
		traverse(t.root, nil, "")
	}

	return graph.String()
}
