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
	"io"

	"github.com/cybrota/avltree/avl"
)

// runScenario replays a scenario on a fresh tree, printing the structure
// after the inserts and again after the deletes.
func runScenario(w io.Writer, s Scenario, style string) error {
	tree := avl.New()
	logger.WithField("scenario", s.Name).Debugf("inserting %d keys", len(s.Insert))

	for _, key := range s.Insert {
		tree.Insert(key)
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	fmt.Fprintf(w, "%s== %s ==%s\n", Info, s.Name, Reset)
	fmt.Fprint(w, renderTree(tree, style))
	fmt.Fprintf(w, "Pre-order: %s\n", joinKeys(tree.PreOrder()))

	if len(s.Delete) == 0 {
		return nil
	}

	for _, key := range s.Delete {
		tree.Delete(key)
	}
	if err := tree.Validate(); err != nil {
		return err
	}

	fmt.Fprintln(w, "After Deletion: ")
	fmt.Fprint(w, renderTree(tree, style))
	fmt.Fprintf(w, "Pre-order: %s\n", joinKeys(tree.PreOrder()))
	return nil
}
