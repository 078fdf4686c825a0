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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

type ColorScheme struct {
	Primary     lipgloss.Color
	Border      lipgloss.Color
	BorderFocus lipgloss.Color
	Text        lipgloss.Color
	TextMuted   lipgloss.Color
	LeftHeavy   lipgloss.Color
	Balanced    lipgloss.Color
	RightHeavy  lipgloss.Color
	Error       lipgloss.Color
}

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// ANSI escapes for plain status lines, filled by InitializeColors.
var Green, Info, Warning, Error, Reset string

// themeHint maps a theme-ish environment value to a mode.
func themeHint(value string) TerminalMode {
	value = strings.ToLower(value)
	switch {
	case strings.Contains(value, "dark"):
		return TerminalModeDark
	case strings.Contains(value, "light"):
		return TerminalModeLight
	}
	return TerminalModeUnknown
}

// detectTerminalMode guesses whether the terminal background is light or dark
func detectTerminalMode() TerminalMode {
	// COLORFGBG is "foreground;background"
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			switch parts[len(parts)-1] {
			case "0", "8", "16":
				return TerminalModeDark
			case "15", "7", "255":
				return TerminalModeLight
			}
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		if mode := themeHint(os.Getenv(env)); mode != TerminalModeUnknown {
			return mode
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("4"),
		Border:      lipgloss.Color("8"),
		BorderFocus: lipgloss.Color("4"),
		Text:        lipgloss.Color("0"),
		TextMuted:   lipgloss.Color("240"),
		LeftHeavy:   lipgloss.Color("4"),
		Balanced:    lipgloss.Color("2"),
		RightHeavy:  lipgloss.Color("5"),
		Error:       lipgloss.Color("1"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Primary:     lipgloss.Color("39"),
		Border:      lipgloss.Color("240"),
		BorderFocus: lipgloss.Color("62"),
		Text:        lipgloss.Color("15"),
		TextMuted:   lipgloss.Color("245"),
		LeftHeavy:   lipgloss.Color("14"),
		Balanced:    lipgloss.Color("10"),
		RightHeavy:  lipgloss.Color("13"),
		Error:       lipgloss.Color("9"),
	}
}

// InitializeColors detects terminal mode and sets up the colour scheme and
// the ANSI escapes.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
	} else {
		currentColorScheme = createDarkColorScheme()
	}

	Green, Info, Warning, Error, Reset = GetANSIColors()
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// GetANSIColors returns darker escapes for light terminals and brighter
// ones for dark terminals.
func GetANSIColors() (success, info, warning, error, reset string) {
	if detectedMode == TerminalModeLight {
		success = "\033[32m"
		info = "\033[34m"
		warning = "\033[33m"
		error = "\033[31m"
	} else {
		success = "\033[92m"
		info = "\033[96m"
		warning = "\033[93m"
		error = "\033[91m"
	}

	reset = "\033[0m"
	return
}

// BalanceStyle colours a key by the sign of its balance signal.
func BalanceStyle(balance int) lipgloss.Style {
	scheme := GetColorScheme()
	switch {
	case balance < 0:
		return lipgloss.NewStyle().Foreground(scheme.LeftHeavy)
	case balance > 0:
		return lipgloss.NewStyle().Foreground(scheme.RightHeavy)
	default:
		return lipgloss.NewStyle().Foreground(scheme.Balanced)
	}
}
