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

import "testing"

func TestInitializeColorsSetsLogEscapes(t *testing.T) {
	InitializeColors()

	escapes := map[string]string{
		"Green":   Green,
		"Info":    Info,
		"Warning": Warning,
		"Error":   Error,
		"Reset":   Reset,
	}
	for name, value := range escapes {
		if value == "" {
			t.Errorf("%s escape is empty after InitializeColors", name)
		}
	}
	if Info == Warning || Warning == Error {
		t.Errorf("log levels share an escape: info=%q warning=%q error=%q", Info, Warning, Error)
	}
}

func TestStylesUseSchemeText(t *testing.T) {
	scheme := GetColorScheme()
	styles := NewStyles()

	if got := styles.BorderBlurred.GetForeground(); got != scheme.Text {
		t.Errorf("blurred panel foreground = %v; want scheme text %v", got, scheme.Text)
	}
}
