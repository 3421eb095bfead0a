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
	"strings"

	"github.com/cybrota/avlkit/avl"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// set with -ldflags "-X main.version=..."
var version = "dev"

type app struct {
	configPath string
	logLevel   string
	config     *Config
}

func (a *app) loadConfig(cmd *cobra.Command, args []string) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		logger.WithError(err).Warn("Failed to load configuration. Using default settings.")
	}
	a.config = config

	level := a.config.Log.Level
	if a.logLevel != "" {
		level = a.logLevel
	}
	return setLogLevel(logger, level)
}

// flagOr returns the flag's value when it was given, otherwise fallback.
func flagOr(cmd *cobra.Command, name, fallback string) string {
	if cmd.Flags().Changed(name) {
		v, _ := cmd.Flags().GetString(name)
		return v
	}
	return fallback
}

func newRootCommand() *cobra.Command {
	asciiLogo := fmt.Sprintf(`
 ▄▀█ █ █ █   █▄▀ █ ▀█▀
 █▀█ ▀▄▀ █▄▄ █ █ █  █
Balanced search trees from the terminal [Version: %s%s%s]
`, Green, version, Reset)

	a := &app{}

	var cmdQuery = &cobra.Command{
		Use:   "query",
		Short: "Insert, delete and find keys read from a three-line input file",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Query reads keys to insert, keys to delete and keys to find, one line each.
For every key to find it writes the key of its right child, or "null".`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Query
			cfg.Input = flagOr(cmd, "in", cfg.Input)
			cfg.Output = flagOr(cmd, "out", cfg.Output)

			return withFiles(cfg.Input, cfg.Output, func(r io.Reader, w io.Writer) error {
				stats, err := runQuery(r, w, cfg)
				if err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{
					"in":    cfg.Input,
					"out":   cfg.Output,
					"finds": stats.Finds,
				}).Info("query complete")
				return nil
			})
		},
	}
	cmdQuery.Flags().String("in", "", "input file, - for stdin (default from config)")
	cmdQuery.Flags().String("out", "", "output file, - for stdout (default from config)")

	var cmdPoints = &cobra.Command{
		Use:   "points",
		Short: "Track min/max distances of a stream of points",
		Long: fmt.Sprintf("%s\n%s", asciiLogo, `Points reads "x y" pairs, inserts each point's distance from the origin and
reports the current min and max distance periodically and after the last point.`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := a.config.Points
			cfg.Input = flagOr(cmd, "in", cfg.Input)
			cfg.Output = flagOr(cmd, "out", cfg.Output)
			if cmd.Flags().Changed("every") {
				cfg.ReportEvery, _ = cmd.Flags().GetInt("every")
			}
			if cmd.Flags().Changed("progress") {
				cfg.ShowProgress, _ = cmd.Flags().GetBool("progress")
			}

			var progress io.Writer
			if cfg.ShowProgress {
				progress = os.Stderr
			}
			return withFiles(cfg.Input, cfg.Output, func(r io.Reader, w io.Writer) error {
				if err := runPoints(r, w, progress, cfg); err != nil {
					return err
				}
				logger.WithFields(logrus.Fields{"in": cfg.Input, "out": cfg.Output}).Info("points complete")
				return nil
			})
		},
	}
	cmdPoints.Flags().String("in", "", "input file, - for stdin (default from config)")
	cmdPoints.Flags().String("out", "", "output file, - for stdout (default from config)")
	cmdPoints.Flags().Int("every", 0, "report min/max every N points (default from config)")
	cmdPoints.Flags().Bool("progress", false, "show a progress bar")

	var cmdLevels = &cobra.Command{
		Use:   "levels [keys...]",
		Short: "Print traversals and the level layout of a tree",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Levels builds a tree from the keys given as arguments or read from --in and prints it`),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(flagOr(cmd, "in", ""), args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprint(out, describeTree(tree))
			if plain, _ := cmd.Flags().GetBool("plain"); !plain {
				renderer := newLevelRenderer(NewStyles(), NewRenderCache())
				fmt.Fprintln(out, renderer.Render(tree, a.config.Render.Width))
			}
			return nil
		},
	}
	cmdLevels.Flags().String("in", "", "read keys from file instead of arguments")
	cmdLevels.Flags().Bool("plain", false, "omit the boxed level view")

	var cmdExplore = &cobra.Command{
		Use:   "explore [keys...]",
		Short: "Launch the interactive tree explorer",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Explore opens a terminal UI to insert, delete and inspect keys`),
		RunE: func(cmd *cobra.Command, args []string) error {
			tree, err := buildTree(flagOr(cmd, "in", ""), args)
			if err != nil {
				return err
			}
			styles := NewStyles()
			return runExplorer(tree, newLevelRenderer(styles, NewRenderCache()), styles)
		},
	}
	cmdExplore.Flags().String("in", "", "preload keys from file")

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration, creating the default file if missing",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return displaySettings(cmd.OutOrStdout(), a.configPath)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkit usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkit version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:               "avlkit",
		Version:           version,
		Long:              asciiLogo,
		SilenceUsage:      true,
		PersistentPreRunE: a.loadConfig,
	}
	rootCmd.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configFileName+")")
	rootCmd.PersistentFlags().StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn, error")

	rootCmd.AddCommand(cmdQuery, cmdPoints, cmdLevels, cmdExplore, cmdSettings, cmdUsage, cmdVersion)
	return rootCmd
}

// buildTree inserts the keys read from path (when set) and the keys given
// as arguments.
func buildTree(path string, args []string) (*avl.Tree[int], error) {
	tree := avl.NewOrdered[int]()

	if path != "" {
		keys, err := readKeysFile(path)
		if err != nil {
			return nil, err
		}
		for _, k := range keys {
			tree.Insert(k)
		}
	}

	keys, err := ParseKeys(strings.Join(args, " "))
	if err != nil {
		return nil, err
	}
	for _, k := range keys {
		tree.Insert(k)
	}
	return tree, nil
}

// withFiles opens input and output and hands them to fn.
func withFiles(in, out string, fn func(r io.Reader, w io.Writer) error) error {
	r, err := openInput(in)
	if err != nil {
		return err
	}
	defer r.Close()

	w, err := createOutput(out)
	if err != nil {
		return fmt.Errorf("failed to create output %s: %w", out, err)
	}

	if err := fn(r, w); err != nil {
		w.Close()
		return err
	}
	return w.Close()
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
