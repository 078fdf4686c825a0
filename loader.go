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
	"os"

	"github.com/schollz/progressbar/v3"
)

// LoadStats summarises one bulk load.
type LoadStats struct {
	Read       int // keys read from the file
	Inserted   int // keys that were new
	Duplicates int
	StoppedAt  error // non-nil when the file contained a non-integer token
}

func newLoadProgressBar(size int64) *progressbar.ProgressBar {
	return progressbar.NewOptions64(size,
		progressbar.OptionSetDescription("🌳 Loading keys..."),
		progressbar.OptionSetWriter(os.Stderr),
		progressbar.OptionSetWidth(50),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "█",
			SaucerHead:    "█",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}),
		progressbar.OptionOnCompletion(func() {
			fmt.Fprintf(os.Stderr, "\n✅ Loading completed!\n")
		}),
	)
}

// LoadKeysFile inserts every key in path into s. A non-integer token ends
// the load early without failing it; it is reported in LoadStats.StoppedAt.
func LoadKeysFile(path string, s *Session, showProgress bool) (LoadStats, error) {
	var stats LoadStats

	file, err := os.Open(path)
	if err != nil {
		return stats, fmt.Errorf("failed to open key file: %w", err)
	}
	defer file.Close()

	var r io.Reader = file
	var bar *progressbar.ProgressBar
	if showProgress {
		size := int64(-1)
		if info, err := file.Stat(); err == nil {
			size = info.Size()
		}
		bar = newLoadProgressBar(size)
		pr := progressbar.NewReader(file, bar)
		r = &pr
	}

	err = ReadKeys(r, func(key int) error {
		stats.Read++
		if s.Insert(key) {
			stats.Inserted++
		} else {
			stats.Duplicates++
		}
		return nil
	})

	if bar != nil {
		_ = bar.Finish()
	}

	if errors.Is(err, ErrStopToken) {
		stats.StoppedAt = err
		return stats, nil
	}
	if err != nil {
		return stats, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return stats, nil
}
