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
	"testing"
)

func TestRunStress(t *testing.T) {
	cfg := StressConfig{Operations: 2000, MaxKey: 128, Seed: 7, ValidateEvery: 1}

	report, err := runStress(cfg, nil)
	if err != nil {
		t.Fatalf("runStress returned error: %v", err)
	}

	total := report.Inserted + report.Duplicates + report.Deleted + report.Misses
	if total != cfg.Operations {
		t.Errorf("report accounts for %d operations; want %d", total, cfg.Operations)
	}
	if report.Len != report.Inserted-report.Deleted {
		t.Errorf("final size %d; want inserted-deleted = %d", report.Len, report.Inserted-report.Deleted)
	}
	if report.Len > cfg.MaxKey {
		t.Errorf("final size %d exceeds key space %d", report.Len, cfg.MaxKey)
	}
	// an AVL tree of n <= 128 keys is at most 9 levels deep
	if report.Height > 9 {
		t.Errorf("height %d too large for %d keys", report.Height, report.Len)
	}
}

func TestRunStressIsDeterministic(t *testing.T) {
	cfg := StressConfig{Operations: 500, MaxKey: 64, Seed: 42}

	first, err := runStress(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	second, err := runStress(cfg, nil)
	if err != nil {
		t.Fatal(err)
	}
	if first != second {
		t.Errorf("same seed gave different reports: %+v vs %+v", first, second)
	}
}

func TestRunStressDrawsProgress(t *testing.T) {
	var progress bytes.Buffer
	if _, err := runStress(StressConfig{Operations: 10, MaxKey: 8, Seed: 1}, &progress); err != nil {
		t.Fatal(err)
	}
	if progress.Len() == 0 {
		t.Errorf("expected progress output")
	}
}
