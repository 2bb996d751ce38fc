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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// executeCommand runs the CLI with an isolated config file and returns stdout.
func executeCommand(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()

	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(append([]string{"--config", filepath.Join(t.TempDir(), "none.yaml")}, args...))

	err := cmd.Execute()
	return out.String(), err
}

func TestDemoCommand(t *testing.T) {
	out, err := executeCommand(t, "", "demo", "--scenario", "rotations")
	if err != nil {
		t.Fatalf("demo failed: %v", err)
	}
	if !strings.Contains(out, "Pre-order: 4 2 1 3 7 5 8") {
		t.Errorf("unexpected demo output:\n%s", out)
	}
	if !strings.Contains(out, "Pre-order: 4 2 1 7 5 8") {
		t.Errorf("demo output misses the tree after deletion:\n%s", out)
	}
}

func TestDemoCommandUnknownScenario(t *testing.T) {
	if _, err := executeCommand(t, "", "demo", "--scenario", "nope"); err == nil {
		t.Errorf("demo with unknown scenario succeeded; want error")
	}
}

func TestScriptCommandFromStdin(t *testing.T) {
	out, err := executeCommand(t, "insert 3 2 1\npreorder\ncheck\n", "script", "-")
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != "2 1 3\nok\n" {
		t.Errorf("script output = %q", out)
	}
}

func TestScriptCommandFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ops.avl")
	if err := os.WriteFile(path, []byte("insert 1,3,2\ninorder\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := executeCommand(t, "", "script", path)
	if err != nil {
		t.Fatalf("script failed: %v", err)
	}
	if out != "1 2 3\n" {
		t.Errorf("script output = %q", out)
	}
}

func TestDotCommand(t *testing.T) {
	out, err := executeCommand(t, "", "dot", "--insert", "2,1,3")
	if err != nil {
		t.Fatalf("dot failed: %v", err)
	}
	if !strings.Contains(out, "K:2 H:2 B:0") {
		t.Errorf("dot output = %q", out)
	}
}

func TestStressCommand(t *testing.T) {
	out, err := executeCommand(t, "", "stress", "-q", "--operations", "300", "--max-key", "50", "--seed", "3")
	if err != nil {
		t.Fatalf("stress failed: %v", err)
	}
	if !strings.Contains(out, "final size") {
		t.Errorf("stress output = %q", out)
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := executeCommand(t, "", "version")
	if err != nil {
		t.Fatal(err)
	}
	if strings.TrimSpace(out) != version {
		t.Errorf("version output = %q; want %q", out, version)
	}
}
