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

	markdown "github.com/MichaelMure/go-term-markdown"
)

const explorerCommandsMarkdown = `
# Commands

| Command | Effect |
|---|---|
| ` + "`insert k...`" + ` | insert keys, duplicates are ignored |
| ` + "`delete k...`" + ` | delete keys, absent keys are reported |
| ` + "`find k...`" + ` | show parent, children, height and balance |
| ` + "`min`" + ` / ` + "`max`" + ` | lowest / highest key |
| ` + "`range lo hi`" + ` | keys in [lo, hi) |
| ` + "`traverse pre/in/post`" + ` | depth-first order |
| ` + "`load path`" + ` | insert every integer in a file |
| ` + "`check`" + ` | verify order, heights and balance |
| ` + "`clear`" + ` | drop every key |

# Keys

* **Enter** run command
* **Tab** switch focus between input and tree view
* **Ctrl+Y** copy the sorted keys to the clipboard
* **F1** toggle this help
* **Esc / Ctrl+C** quit
`

func getHelpMessage() string {
	message := fmt.Sprintf(`
 **avlkit %s**

Drive an AVL-balanced search tree of integer keys from files or an interactive terminal.

Built with Go %s

# 1. Batch commands
* **query**: three lines (insert, delete, find). For each find key, writes the key of its right child or "null".
* **points**: one line of "x y" pairs. Inserts each point's distance from the origin and reports min/max periodically.
* **levels**: prints pre/in/post-order and the level grouping of the tree built from the given keys.

# 2. Interactive
* **explore**: terminal UI to insert, delete and inspect keys while watching the tree rebalance.

# 3. Configuration
* **settings**: shows ~/.avlkit.yaml, creating it with defaults when missing.

Copy to clipboard on Linux requires 'xclip' or 'xsel' to be installed.
%s
`, version, runtime.Version(), explorerCommandsMarkdown)
	result := markdown.Render(message, 80, 3)
	return string(result)
}
