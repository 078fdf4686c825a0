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

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **avlkeys %s**

Type integer keys and watch an AVL tree keep itself balanced after every insertion.

Built with Go %s

# 1. Commands
* **run** (default): read keys from stdin and print the tree after each one
* **load --file keys.txt**: bulk load a key file with a progress bar
* **ui**: interactive terminal UI
* **settings**: show or create ~/.avlkeys.yaml

# 2. Input
* Keys are whitespace separated integers, any number per line
* The first token that is not an integer ends the input
* Keys already in the tree are ignored

# 3. Reading the layout
* One row per tree level, children under their parent
* With colours on, keys are tinted by balance: left-heavy, balanced, right-heavy

# Please be aware
* Copy to clipboard in the UI on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0

`, version, runtime.Version())
	result := markdown.Render(message, 80, 3)
	return string(result)
}
