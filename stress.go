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
	"io"
	"math/rand"

	"github.com/pkg/errors"
	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/avltree/avl"
)

// StressReport summarises a stress run.
type StressReport struct {
	Inserted   int
	Duplicates int
	Deleted    int
	Misses     int
	Len        int
	Height     int
}

// runStress applies a random mix of inserts and deletes, checking the tree
// against a map of the expected keys as it goes. Progress is drawn on
// progress when it is not nil.
func runStress(cfg StressConfig, progress io.Writer) (StressReport, error) {
	var report StressReport

	rng := rand.New(rand.NewSource(cfg.Seed))
	tree := avl.New()
	model := make(map[int]struct{})

	var bar *progressbar.ProgressBar
	if progress != nil {
		bar = progressbar.NewOptions(cfg.Operations,
			progressbar.OptionSetWriter(progress),
			progressbar.OptionSetDescription("🌳 Balancing..."),
			progressbar.OptionSetWidth(50),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "█",
				SaucerHead:    "█",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}),
			progressbar.OptionOnCompletion(func() {
				fmt.Fprintf(progress, "\n✅ Stress run completed!\n")
			}),
		)
	}

	for op := 1; op <= cfg.Operations; op++ {
		key := rng.Intn(cfg.MaxKey)
		_, present := model[key]

		// inserts slightly outnumber deletes so the tree keeps growing
		if rng.Intn(5) < 3 {
			if tree.Insert(key) == present {
				return report, errors.Errorf("op %d: insert %d disagrees with model (present=%v)", op, key, present)
			}
			if present {
				report.Duplicates++
			} else {
				report.Inserted++
				model[key] = struct{}{}
			}
		} else {
			if tree.Delete(key) != present {
				return report, errors.Errorf("op %d: delete %d disagrees with model (present=%v)", op, key, present)
			}
			if present {
				report.Deleted++
				delete(model, key)
			} else {
				report.Misses++
			}
		}

		if cfg.ValidateEvery > 0 && op%cfg.ValidateEvery == 0 {
			if err := tree.Validate(); err != nil {
				return report, errors.Wrapf(err, "op %d", op)
			}
			if tree.Len() != len(model) {
				return report, errors.Errorf("op %d: tree has %d keys, expected %d", op, tree.Len(), len(model))
			}
		}

		if bar != nil {
			bar.Add(1)
		}
	}

	if bar != nil {
		bar.Finish()
	}

	if err := tree.Validate(); err != nil {
		return report, err
	}

	report.Len = tree.Len()
	report.Height = tree.Height()
	return report, nil
}
