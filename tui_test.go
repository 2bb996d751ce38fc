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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/cybrota/avltree/avl"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	config := defaultConfig()
	m := InitialModel(avl.New(), NewViewCache(), &config)

	updated, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	return updated.(Model)
}

func typeCommand(t *testing.T, m Model, line string) Model {
	t.Helper()
	m.textInput.SetValue(line)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return updated.(Model)
}

func TestModelExecutesCommands(t *testing.T) {
	m := newTestModel(t)

	m = typeCommand(t, m, "insert 2 1 7 4 5 3 8")
	if m.tree.Len() != 7 {
		t.Fatalf("tree has %d keys; want 7", m.tree.Len())
	}
	if m.statusErr {
		t.Errorf("unexpected error status %q", m.status)
	}
	if m.textInput.Value() != "" {
		t.Errorf("input should be cleared after enter, got %q", m.textInput.Value())
	}
	if !strings.Contains(m.treeViewport.View(), "R----4") {
		t.Errorf("tree pane does not show the new root:\n%s", m.treeViewport.View())
	}

	m = typeCommand(t, m, "preorder")
	if m.lastOutput != "4 2 1 3 7 5 8\n" {
		t.Errorf("lastOutput = %q", m.lastOutput)
	}

	if !strings.Contains(m.View(), "7 keys") {
		t.Errorf("view should show the key count")
	}
}

func TestModelReportsErrors(t *testing.T) {
	m := newTestModel(t)

	m = typeCommand(t, m, "insert banana")
	if !m.statusErr {
		t.Errorf("expected error status, got %q", m.status)
	}
	if m.tree.Len() != 0 {
		t.Errorf("failed command should not change the tree")
	}
}

func TestModelHistoryRecall(t *testing.T) {
	m := newTestModel(t)
	m = typeCommand(t, m, "insert 1")
	m = typeCommand(t, m, "insert 2")

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textInput.Value() != "insert 2" {
		t.Errorf("first recall = %q; want %q", m.textInput.Value(), "insert 2")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	if m.textInput.Value() != "insert 1" {
		t.Errorf("second recall = %q; want %q", m.textInput.Value(), "insert 1")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	if m.textInput.Value() != "" {
		t.Errorf("recall past the newest entry should clear input, got %q", m.textInput.Value())
	}
}

func TestModelToggleHelp(t *testing.T) {
	m := newTestModel(t)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if !m.showHelp {
		t.Fatalf("f1 should show help")
	}
	if GetView(m.viewCache, helpViewKey) == "" {
		t.Errorf("help text should be cached after first display")
	}
	if !strings.Contains(m.View(), "Help") {
		t.Errorf("side pane should be titled Help")
	}

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyF1})
	m = updated.(Model)
	if m.showHelp {
		t.Errorf("second f1 should hide help")
	}
}

func TestModelViewBeforeResize(t *testing.T) {
	config := defaultConfig()
	m := InitialModel(avl.New(), NewViewCache(), &config)
	if m.View() != "Initializing..." {
		t.Errorf("View before size = %q", m.View())
	}
}

func TestModelSidePaneFollowsTree(t *testing.T) {
	m := newTestModel(t)

	m = typeCommand(t, m, "insert 1 2 3")
	m = typeCommand(t, m, "preorder")
	if !strings.Contains(m.sideViewport.View(), "2 1 3") {
		t.Fatalf("side pane should show the preorder output:\n%s", m.sideViewport.View())
	}

	m = typeCommand(t, m, "delete 1 2 3")
	if m.tree.Len() != 0 {
		t.Fatalf("tree has %d keys; want 0", m.tree.Len())
	}
	side := m.sideViewport.View()
	if strings.Contains(side, "2 1 3") {
		t.Errorf("side pane still shows keys of a deleted tree:\n%s", side)
	}
	if !strings.Contains(side, "Pre-order:") {
		t.Errorf("side pane should fall back to the current pre-order:\n%s", side)
	}
}
