// Copyright 2026 the original author or authors.
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

// Package cli holds what the osmgraph subcommands share: the root command,
// logging setup and reading and writing graph documents.
package cli

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// RootCmd is the osmgraph command. Subcommands register themselves on it
// from their init functions.
var RootCmd = &cobra.Command{
	Use:   "osmgraph",
	Short: "Inspect and edit OSM entity graphs",
	Long: `osmgraph loads a JSON document of nodes, ways and relations into an
immutable graph and runs queries and edits against it.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		level, err := cmd.Flags().GetString("log-level")
		if err != nil {
			return err
		}

		return SetupLogging(level)
	},
}

func init() {
	RootCmd.PersistentFlags().StringP("log-level", "l", "info", "log level: debug, info, warn or error")
}

// SetupLogging installs a text handler on stderr as the default slog logger.
func SetupLogging(level string) error {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid log level %q: %w", level, err)
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l})))

	return nil
}
