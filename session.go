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
	"encoding/binary"

	"github.com/cybrota/avlkeys/avl"
	"github.com/willf/bloom"
)

const seenFalsePositiveRate = 0.01

// Session owns one tree for the lifetime of a read loop or UI. It is not
// safe for concurrent use.
type Session struct {
	root       *avl.Node
	seen       *bloom.BloomFilter
	size       int
	duplicates int
}

// NewSession sizes the seen-key filter for expectedKeys distinct keys.
func NewSession(expectedKeys uint) *Session {
	if expectedKeys == 0 {
		expectedKeys = defaultConfig.Input.ExpectedKeys
	}
	return &Session{
		seen: bloom.NewWithEstimates(expectedKeys, seenFalsePositiveRate),
	}
}

func keyBytes(key int) []byte {
	var buf [8]byte
	binary.BigEndian.PutUint64(buf[:], uint64(key))
	return buf[:]
}

// Insert adds key to the tree and reports whether it was new. Keys the
// seen-key filter has never seen skip the duplicate bookkeeping.
func (s *Session) Insert(key int) bool {
	b := keyBytes(key)

	inserted := true
	if s.seen.Test(b) {
		s.root, inserted = avl.InsertReport(s.root, key)
	} else {
		s.root = avl.Insert(s.root, key)
	}

	if !inserted {
		s.duplicates++
		debugf("key %d already present, ignored", key)
		return false
	}

	s.seen.Add(b)
	s.size++
	debugf("inserted %d (keys=%d height=%d)", key, s.size, avl.Height(s.root))
	return true
}

// Contains reports whether key is in the tree, searching it only when the
// seen-key filter cannot rule the key out.
func (s *Session) Contains(key int) bool {
	if !s.seen.Test(keyBytes(key)) {
		return false
	}
	return avl.Contains(s.root, key)
}

func (s *Session) Root() *avl.Node {
	return s.root
}

func (s *Session) Len() int {
	return s.size
}

func (s *Session) Duplicates() int {
	return s.duplicates
}

func (s *Session) Height() int {
	return avl.Height(s.root)
}

// Close destroys the tree. The session can be reused afterwards and starts
// out empty.
func (s *Session) Close() {
	avl.Destroy(s.root)
	s.root = nil
	s.size = 0
	s.duplicates = 0
	s.seen.ClearAll()
}
