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
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/mattn/go-shellwords"
)

// ErrStopToken ends a key stream at the first token that is not an
// integer, the way an interactive prompt stops on "q" or "done".
var ErrStopToken = errors.New("non-integer token")

// parseKeys splits one input line into integer keys. It returns the keys
// parsed before the first non-integer token together with an error
// wrapping ErrStopToken naming that token.
func parseKeys(line string) ([]int, error) {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil, nil
	}

	// An unbalanced quote still lets the keys before it through; the quote
	// itself then ends the stream like any other non-integer token.
	tokens, err := shellwords.Parse(line)
	if err != nil {
		debugf("tokenising %q: %v", line, err)
		tokens = strings.Fields(line)
	}

	keys := make([]int, 0, len(tokens))
	for _, tok := range tokens {
		key, err := strconv.Atoi(tok)
		if err != nil {
			return keys, fmt.Errorf("%w %q", ErrStopToken, tok)
		}
		keys = append(keys, key)
	}
	return keys, nil
}

// ReadKeys feeds every integer key found in r to fn, in input order. It
// returns nil at end of input and an error wrapping ErrStopToken when it
// stopped at a non-integer token. An error from fn aborts the read and is
// returned as is.
func ReadKeys(r io.Reader, fn func(key int) error) error {
	scanner := bufio.NewScanner(r)
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++

		keys, parseErr := parseKeys(scanner.Text())
		for _, key := range keys {
			if err := fn(key); err != nil {
				return err
			}
		}
		if parseErr != nil {
			return fmt.Errorf("line %d: %w", lineNo, parseErr)
		}
	}

	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read keys: %w", err)
	}
	return nil
}
