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
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/cybrota/avltree/avl"
)

var version = "v0.1.0"

var (
	configPath string
	logLevel   string
	appConfig  *Config
)

func loadAppConfig(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig(configPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load configuration. Using default settings.")
	}
	appConfig = config

	level := appConfig.Log.Level
	if cmd.Flags().Changed("log-level") {
		level = logLevel
	}
	return setLogLevel(logger, level)
}

func newDemoCmd() *cobra.Command {
	var scenarioName string
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Replay the configured insert/delete scenarios",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			scenarios := appConfig.Demo.Scenarios
			if scenarioName != "" {
				s, ok := appConfig.scenario(scenarioName)
				if !ok {
					return errors.Errorf("no scenario named %q", scenarioName)
				}
				scenarios = []Scenario{s}
			}

			out := cmd.OutOrStdout()
			for i, s := range scenarios {
				if i > 0 {
					fmt.Fprintln(out)
				}
				if err := runScenario(out, s, appConfig.Render.Style); err != nil {
					return errors.Wrapf(err, "scenario %s", s.Name)
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&scenarioName, "scenario", "", "run only the named scenario")
	return cmd
}

func newScriptCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "script FILE",
		Short: "Apply a file of tree commands (use - for stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var in io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return errors.Wrap(err, "failed to open script")
				}
				defer f.Close()
				in = f
			}

			session := NewSession(avl.New(), cmd.OutOrStdout(), appConfig.Render.Style)
			return session.Run(in)
		},
	}
}

func newDotCmd() *cobra.Command {
	var keys []int
	cmd := &cobra.Command{
		Use:   "dot",
		Short: "Print a Graphviz graph of a tree built from the given keys",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tree := avl.New()
			for _, key := range keys {
				tree.Insert(key)
			}
			_, err := io.WriteString(cmd.OutOrStdout(), tree.DotGraph())
			return err
		},
	}
	cmd.Flags().IntSliceVar(&keys, "insert", nil, "comma separated keys to insert, in order")
	return cmd
}

func newStressCmd() *cobra.Command {
	var quiet bool
	cmd := &cobra.Command{
		Use:   "stress",
		Short: "Run random inserts and deletes, checking the AVL invariants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := appConfig.Stress
			flags := cmd.Flags()
			if flags.Changed("operations") {
				cfg.Operations, _ = flags.GetInt("operations")
			}
			if flags.Changed("max-key") {
				cfg.MaxKey, _ = flags.GetInt("max-key")
			}
			if flags.Changed("seed") {
				cfg.Seed, _ = flags.GetInt64("seed")
			}
			if flags.Changed("validate-every") {
				cfg.ValidateEvery, _ = flags.GetInt("validate-every")
			}
			if cfg.MaxKey <= 0 {
				return errors.Errorf("max-key must be positive, got %d", cfg.MaxKey)
			}

			var progress io.Writer = cmd.ErrOrStderr()
			if quiet {
				progress = nil
			}

			logger.WithField("operations", cfg.Operations).WithField("seed", cfg.Seed).Info("starting stress run")
			report, err := runStress(cfg, progress)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(),
				"%sinserted %d (duplicates %d), deleted %d (misses %d), final size %d, height %d%s\n",
				Green, report.Inserted, report.Duplicates, report.Deleted, report.Misses, report.Len, report.Height, Reset)
			return nil
		},
	}
	cmd.Flags().Int("operations", 0, "number of random operations")
	cmd.Flags().Int("max-key", 0, "keys are drawn from [0, max-key)")
	cmd.Flags().Int64("seed", 0, "random seed")
	cmd.Flags().Int("validate-every", 0, "validate the tree every N operations, 0 validates only at the end")
	cmd.Flags().BoolVarP(&quiet, "quiet", "q", false, "hide the progress bar")
	return cmd
}

func newRootCmd() *cobra.Command {
	runTUI := func(cmd *cobra.Command, args []string) error {
		tree := avl.New()
		for _, arg := range args {
			keys, err := parseKeys([]string{arg})
			if err != nil {
				return err
			}
			for _, key := range keys {
				tree.Insert(key)
			}
		}
		return runBubbleTeaApp(tree, NewViewCache(), appConfig)
	}

	var cmdRun = &cobra.Command{
		Use:   "run [KEY...]",
		Short: "Launches the interactive tree editor",
		Args:  cobra.ArbitraryArgs,
		RunE:  runTUI,
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avltree usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show the configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), configPath)
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avltree version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "avltree",
		Version:           version,
		Short:             "Build and inspect self-balancing AVL trees",
		SilenceUsage:      true,
		PersistentPreRunE: loadAppConfig,
		// Default to the interactive editor when no subcommand is provided
		RunE: runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level: debug, info, warn or error")

	rootCmd.AddCommand(cmdRun, newDemoCmd(), newScriptCmd(), newDotCmd(), newStressCmd(), cmdUsage, cmdSettings, cmdVersion)
	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
