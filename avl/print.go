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
	"io"
	"strconv"
	"strings"
)

const (
	printLastBranch  = "R----"
	printInnerBranch = "L----"
	printLastIndent  = "     "
	printInnerIndent = "|    "
)

// KeyFormatter renders a single node's label for Print.
type KeyFormatter func(node *Node) string

type printer struct {
	w      io.Writer
	format KeyFormatter
}

// PrintOption customizes Print.
type PrintOption func(*printer)

// WithKeyFormatter replaces the default decimal key label.
func WithKeyFormatter(format KeyFormatter) PrintOption {
	return func(p *printer) {
		p.format = format
	}
}

// Print writes an indented rendering of the tree shape to w, one node per
// line. Right children are marked "R----" and left children "L----"; the
// root is drawn as a right child.
func (t *Tree) Print(w io.Writer, opts ...PrintOption) error {
	p := &printer{
		w: w,
		format: func(node *Node) string {
			return strconv.Itoa(node.Key)
		},
	}
	for _, opt := range opts {
		opt(p)
	}
	return p.print(t.root, "", true)
}

func (t *Tree) String() string {
	var sb strings.Builder
	_ = t.Print(&sb)
	return sb.String()
}

func (p *printer) print(node *Node, indent string, last bool) error {
	if node == nil {
		return nil
	}

	branch := printInnerBranch
	childIndent := indent + printInnerIndent
	if last {
		branch = printLastBranch
		childIndent = indent + printLastIndent
	}

	if _, err := fmt.Fprintf(p.w, "%s%s%s\n", indent, branch, p.format(node)); err != nil {
		return err
	}
	if err := p.print(node.Left, childIndent, false); err != nil {
		return err
	}
	return p.print(node.Right, childIndent, true)
}
