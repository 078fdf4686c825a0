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
	"io"
	"log"
	"os"
)

var verbose bool

// setupLogging sends log output to stderr so it never interleaves with the
// tree layout on stdout.
func setupLogging(enableVerbose bool, w io.Writer) {
	if w == nil {
		w = os.Stderr
	}
	log.SetOutput(w)
	log.SetFlags(log.Ltime)
	log.SetPrefix("avlkeys: ")
	verbose = enableVerbose
}

func debugf(format string, args ...any) {
	if !verbose {
		return
	}
	log.Printf("[debug] "+format, args...)
}
