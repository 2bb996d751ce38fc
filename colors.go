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
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/avltree/avl"
)

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

// ANSI sequences for plain stdout messages, set by InitializeColors.
var (
	Green   = "\033[92m"
	Info    = "\033[96m"
	Warning = "\033[93m"
	Error   = "\033[91m"
	Reset   = "\033[0m"
)

// ColorScheme colors tree keys by the balance factor of their node.
type ColorScheme struct {
	Balanced   lipgloss.Color
	LeftHeavy  lipgloss.Color
	RightHeavy lipgloss.Color
	Branch     lipgloss.Color
}

var (
	currentColorScheme *ColorScheme
	detectedMode       TerminalMode
)

// detectTerminalMode guesses the background from COLORFGBG and theme hints,
// defaulting to dark.
func detectTerminalMode() TerminalMode {
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		parts := strings.Split(colorScheme, ";")
		switch parts[len(parts)-1] {
		case "0", "8", "16":
			return TerminalModeDark
		case "7", "15", "255":
			return TerminalModeLight
		}
	}

	for _, env := range []string{"TERM_THEME", "THEME"} {
		theme := strings.ToLower(os.Getenv(env))
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		}
		if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	return TerminalModeDark
}

func createLightColorScheme() *ColorScheme {
	return &ColorScheme{
		Balanced:   lipgloss.Color("28"),
		LeftHeavy:  lipgloss.Color("25"),
		RightHeavy: lipgloss.Color("130"),
		Branch:     lipgloss.Color("244"),
	}
}

func createDarkColorScheme() *ColorScheme {
	return &ColorScheme{
		Balanced:   lipgloss.Color("46"),
		LeftHeavy:  lipgloss.Color("39"),
		RightHeavy: lipgloss.Color("214"),
		Branch:     lipgloss.Color("240"),
	}
}

// InitializeColors detects the terminal mode and picks matching colors.
func InitializeColors() {
	detectedMode = detectTerminalMode()

	if detectedMode == TerminalModeLight {
		currentColorScheme = createLightColorScheme()
		Green, Info, Warning, Error = "\033[32m", "\033[34m", "\033[33m", "\033[31m"
	} else {
		currentColorScheme = createDarkColorScheme()
		Green, Info, Warning, Error = "\033[92m", "\033[96m", "\033[93m", "\033[91m"
	}
}

func GetColorScheme() *ColorScheme {
	if currentColorScheme == nil {
		InitializeColors()
	}
	return currentColorScheme
}

// keyStyle returns the style for a node with the given balance factor.
func (cs *ColorScheme) keyStyle(balance int) lipgloss.Style {
	color := cs.Balanced
	switch {
	case balance > 0:
		color = cs.LeftHeavy
	case balance < 0:
		color = cs.RightHeavy
	}
	return lipgloss.NewStyle().Foreground(color).Bold(true)
}

// renderTree draws the tree structure in the given style. The color style
// annotates every key with its height and tints it by balance factor.
func renderTree(tree *avl.Tree, style string) string {
	var sb strings.Builder

	if style != RenderStyleColor {
		_ = tree.Print(&sb)
		return sb.String()
	}

	cs := GetColorScheme()
	muted := lipgloss.NewStyle().Foreground(cs.Branch)
	_ = tree.Print(&sb, avl.WithKeyFormatter(func(node *avl.Node) string {
		balance := node.Balance()
		return cs.keyStyle(balance).Render(fmt.Sprint(node.Key)) +
			muted.Render(fmt.Sprintf(" h=%d b=%+d", node.Height, balance))
	}))
	return sb.String()
}
