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
	"bufio"
	"fmt"
	"io"
	"iter"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
	"github.com/pkg/errors"

	"github.com/cybrota/avltree/avl"
)

// Session applies text commands to a tree and writes their output to out.
type Session struct {
	tree  *avl.Tree
	out   io.Writer
	style string
}

func NewSession(tree *avl.Tree, out io.Writer, style string) *Session {
	return &Session{tree: tree, out: out, style: style}
}

// scriptCommands lists every command with its help line, in display order.
var scriptCommands = []struct {
	name, args, desc string
}{
	{"insert", "KEY...", "insert keys (alias: i, add)"},
	{"delete", "KEY...", "delete keys (alias: d, del, rm)"},
	{"print", "", "print the tree structure (alias: p)"},
	{"preorder", "", "list keys in pre-order"},
	{"inorder", "", "list keys in ascending order"},
	{"dot", "", "print the tree as a Graphviz graph"},
	{"check", "", "verify heights, balance and ordering"},
	{"clear", "", "remove every key"},
	{"len", "", "print the number of keys and the height"},
}

// splitCommand splits a command line into words. Blank lines and comments
// yield no words.
func splitCommand(line string) ([]string, error) {
	if i := strings.IndexByte(line, '#'); i >= 0 {
		line = line[:i]
	}
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to parse command %q", line)
	}
	return args, nil
}

func parseKeys(args []string) ([]int, error) {
	if len(args) == 0 {
		return nil, errors.New("at least one key is required")
	}
	keys := make([]int, 0, len(args))
	for _, arg := range args {
		// commas are accepted so "insert 1,2,3" works too
		for _, field := range strings.Split(arg, ",") {
			if field == "" {
				continue
			}
			key, err := strconv.Atoi(field)
			if err != nil {
				return nil, errors.Errorf("invalid key %q", field)
			}
			keys = append(keys, key)
		}
	}
	return keys, nil
}

// Exec runs a single command line.
func (s *Session) Exec(line string) error {
	args, err := splitCommand(line)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return nil
	}

	switch cmd := strings.ToLower(args[0]); cmd {
	case "insert", "i", "add":
		keys, err := parseKeys(args[1:])
		if err != nil {
			return errors.Wrap(err, cmd)
		}
		for _, key := range keys {
			if !s.tree.Insert(key) {
				logger.WithField("key", key).Debug("duplicate key ignored")
			}
		}
	case "delete", "d", "del", "rm":
		keys, err := parseKeys(args[1:])
		if err != nil {
			return errors.Wrap(err, cmd)
		}
		for _, key := range keys {
			if !s.tree.Delete(key) {
				logger.WithField("key", key).Debug("absent key ignored")
			}
		}
	case "print", "p":
		_, err = io.WriteString(s.out, renderTree(s.tree, s.style))
	case "preorder":
		_, err = fmt.Fprintln(s.out, joinKeys(s.tree.PreOrder()))
	case "inorder":
		_, err = fmt.Fprintln(s.out, joinKeys(s.tree.InOrder()))
	case "dot":
		_, err = io.WriteString(s.out, s.tree.DotGraph())
	case "check":
		if err := s.tree.Validate(); err != nil {
			return err
		}
		_, err = fmt.Fprintln(s.out, "ok")
	case "clear":
		s.tree.Clear()
	case "len":
		_, err = fmt.Fprintf(s.out, "%d keys, height %d\n", s.tree.Len(), s.tree.Height())
	default:
		return errors.Errorf("unknown command %q", args[0])
	}
	return err
}

// Run executes every line read from r, stopping at the first failing line.
func (s *Session) Run(r io.Reader) error {
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		if err := s.Exec(scanner.Text()); err != nil {
			return errors.Wrapf(err, "line %d", lineNo)
		}
	}
	return errors.Wrap(scanner.Err(), "failed to read script")
}

func joinKeys(seq iter.Seq[int]) string {
	var parts []string
	for key := range seq {
		parts = append(parts, strconv.Itoa(key))
	}
	return strings.Join(parts, " ")
}
