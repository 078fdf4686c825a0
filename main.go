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
	"log"
	"os"

	"github.com/spf13/cobra"
)

// loadSettings reads the config file and applies the logging flags. The
// --verbose flag turns debug logging on even when the config leaves it off.
func loadSettings(flagVerbose bool) *Config {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("%sFailed to load configuration:%s %v. Using default settings.", Warning, Reset, err)
	}

	setupLogging(config.Log.Verbose || flagVerbose, os.Stderr)
	return config
}

func verboseFlag(cmd *cobra.Command) bool {
	v, _ := cmd.Flags().GetBool("verbose")
	return v
}

func runInteractive(cmd *cobra.Command, in io.Reader, out io.Writer) {
	config := loadSettings(verboseFlag(cmd))

	session := NewSession(config.Input.ExpectedKeys)
	defer session.Close()

	renderer := NewRenderer(config.Render, NewRenderCache())
	if err := runLoop(in, out, session, renderer, config.Input.Prompt); err != nil {
		log.Fatalf("%sError reading keys:%s %v", Error, Reset, err)
	}
	debugf("done: %d keys, %d duplicates ignored", session.Len(), session.Duplicates())
}

func newRootCmd() *cobra.Command {
	asciiLogo := `
avlkeys: a self-balancing set of integer keys [Version: %s%s%s]

`
	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdRun = &cobra.Command{
		Use:   "run",
		Short: "Reads keys from stdin and prints the tree after each one",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Run prompts for integer keys and stops at the first token that is not an integer`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			runInteractive(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	var cmdLoad = &cobra.Command{
		Use:   "load",
		Short: "Bulk loads keys from a file",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Load inserts every key of a whitespace separated key file`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings(verboseFlag(cmd))

			path, _ := cmd.Flags().GetString("file")
			noProgress, _ := cmd.Flags().GetBool("no-progress")
			printTree, _ := cmd.Flags().GetBool("print")

			session := NewSession(config.Input.ExpectedKeys)
			defer session.Close()

			stats, err := LoadKeysFile(path, session, !noProgress)
			if err != nil {
				log.Fatalf("%sError loading keys:%s %v", Error, Reset, err)
			}
			if stats.StoppedAt != nil {
				log.Printf("%sStopped early:%s %v", Warning, Reset, stats.StoppedAt)
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%sRead%s %d keys: %d inserted, %d duplicates ignored. %sHeight%s %d.\n",
				Green, Reset, stats.Read, stats.Inserted, stats.Duplicates, Info, Reset, session.Height())

			if printTree {
				fmt.Fprint(out, NewRenderer(config.Render, nil).Render(session.Root()))
			}
		},
	}
	cmdLoad.Flags().StringP("file", "f", "", "key file to load")
	cmdLoad.Flags().Bool("no-progress", false, "hide the progress bar")
	cmdLoad.Flags().Bool("print", false, "print the tree after loading")
	_ = cmdLoad.MarkFlagRequired("file")

	var cmdUI = &cobra.Command{
		Use:   "ui",
		Short: "Launches the interactive tree UI",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `UI lets you insert keys and watch the tree rebalance`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config := loadSettings(verboseFlag(cmd))

			session := NewSession(config.Input.ExpectedKeys)
			defer session.Close()

			if err := runBubbleTeaApp(session, NewRenderer(config.Render, nil)); err != nil {
				log.Fatalf("%sError running UI:%s %v", Error, Reset, err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Shows the configuration, creating it if missing",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings()
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print avlkeys usage guide",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print avlkeys version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "avlkeys",
		Version: version,
		Long:    asciiLogo,
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			// Default to run command when no subcommand is provided
			runInteractive(cmd, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "log every insertion to stderr")
	rootCmd.AddCommand(cmdRun, cmdLoad, cmdUI, cmdSettings, cmdUsage, cmdVersion)

	return rootCmd
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
