//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/timburks/proofed/commander"
	"github.com/timburks/proofed/config"
	"github.com/timburks/proofed/editor"
	"github.com/timburks/proofed/logic"
	"github.com/timburks/proofed/screen"
)

// Version is set during build with -ldflags
var version = "dev"

type options struct {
	configPath string
	script     string
	pretty     bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	rootCmd := &cobra.Command{
		Use:   "proofed",
		Short: "Terminal editor for propositional logic proofs",
		Long: `Proofed edits natural-deduction proofs line by line. Operators may be
typed in ASCII (->, <->, ^, v, ~) and are shown plain or pretty.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/proofed/config.yaml)")
	rootCmd.Flags().StringVar(&opts.script, "eval", "", "run a lisp script and print the resulting proof")
	rootCmd.PersistentFlags().BoolVar(&opts.pretty, "pretty", false, "render operators with Unicode glyphs")

	rootCmd.AddCommand(&cobra.Command{
		Use:   "operators",
		Short: "Print the operator table as YAML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, table, err := setup(opts)
			if err != nil {
				return err
			}
			return config.WriteOperators(cmd.OutOrStdout(), table.Spec())
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "render <formula>",
		Short: "Parse a formula and print it in the configured style",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, table, err := setup(opts)
			if err != nil {
				return err
			}
			f, err := table.ParseFormula(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), table.Render(f, style(cfg, opts)))
			return nil
		},
	})
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the version number of proofed",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "proofed version %s\n", version)
		},
	})
	return rootCmd
}

func setup(opts *options) (config.Config, *logic.Table, error) {
	cfg, err := config.Load(opts.configPath)
	if err != nil {
		return config.Config{}, nil, err
	}
	table, err := cfg.Table()
	if err != nil {
		return config.Config{}, nil, err
	}
	return cfg, table, nil
}

func style(cfg config.Config, opts *options) logic.Style {
	if opts.pretty {
		return logic.Pretty
	}
	return cfg.GetStyle()
}

func run(cmd *cobra.Command, opts *options) error {
	cfg, table, err := setup(opts)
	if err != nil {
		return err
	}

	// The editor manages all proof manipulation.
	e := editor.NewEditor(table)
	e.SetStyle(style(cfg, opts))

	// The commander converts user inputs into commands for the editor.
	c := commander.NewCommander(e)

	if opts.script != "" {
		// Run a script and print the proof.
		if _, err := c.ParseEvalFile(opts.script); err != nil {
			return fmt.Errorf("eval %s: %w", opts.script, err)
		}
		for _, l := range e.GetBuffer().Lines() {
			fmt.Fprintln(cmd.OutOrStdout(), l.Format(table, e.GetStyle()))
		}
		return nil
	}

	// Open a log file.
	f, err := os.OpenFile(cfg.LogFile, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
	if err != nil {
		return err
	}
	log.SetOutput(f)
	defer f.Close()

	// Create a screen to manage display.
	s := screen.NewScreen()
	if s == nil {
		return fmt.Errorf("unable to open the terminal")
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		if err := c.ProcessEvent(s.GetNextEvent()); err != nil {
			log.Output(1, err.Error())
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
