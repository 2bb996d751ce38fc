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
	"runtime"
	"strings"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getUsageMarkdown() string {
	var commands strings.Builder
	for _, c := range scriptCommands {
		fmt.Fprintf(&commands, "* `%s %s` %s\n", c.name, c.args, c.desc)
	}

	return fmt.Sprintf(`
 **avltree %s**

Build, inspect and stress a self-balancing AVL tree of integer keys.

Built with Go %s

# 1. Commands
* avltree run: interactive tree editor
* avltree demo: replay the configured scenarios
* avltree script FILE: apply a command script (use - for stdin)
* avltree dot: print a Graphviz graph of the given keys
* avltree stress: random inserts and deletes with invariant checks
* avltree settings: show or create ~/.avltree.yaml

# 2. Script language
One command per line, # starts a comment.

%s
# Please be aware
* Copy to clipboard on Linux or Unix requires 'xclip' or 'xsel' to be installed

# License
Licensed under the Apache License, Version 2.0
`, version, runtime.Version(), commands.String())
}

func getHelpMessage() string {
	result := markdown.Render(getUsageMarkdown(), 80, 3)
	return string(result)
}
