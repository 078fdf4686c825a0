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
	"errors"
	"fmt"
	"io"
)

// runLoop prompts for keys on in, inserts each one into s and prints the
// tree to out after every key. It ends at end of input or at the first
// non-integer token.
func runLoop(in io.Reader, out io.Writer, s *Session, r *Renderer, prompt string) error {
	fmt.Fprint(out, prompt)

	err := ReadKeys(in, func(key int) error {
		s.Insert(key)

		if _, err := io.WriteString(out, r.Render(s.Root())); err != nil {
			return fmt.Errorf("failed to print tree: %w", err)
		}
		fmt.Fprint(out, prompt)
		return nil
	})
	fmt.Fprintln(out)

	if errors.Is(err, ErrStopToken) {
		debugf("input ended: %v", err)
		return nil
	}
	return err
}
