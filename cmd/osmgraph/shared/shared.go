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

package shared

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/cmd/osmgraph/cli"
	"m4o.io/osmgraph/model"
)

var out io.Writer = os.Stdout

func init() {
	cli.RootCmd.AddCommand(sharedCmd)

	flags := sharedCmd.Flags()
	flags.Uint16P("cpu", "c", osmgraph.DefaultNCpu(), "number of CPUs to use for the survey")
	flags.BoolP("verbose", "v", false, "print the parent ways of every vertex")
}

var sharedCmd = &cobra.Command{
	Use:   "shared [<document>]",
	Short: "List the vertices that can be disconnected",
	Long:  "List, one per line, every node that occurs at least twice over the ways of a graph document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			return err
		}

		verbose, err := flags.GetBool("verbose")
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		g, err := cli.ReadGraph(path, true)
		if err != nil {
			return err
		}

		ids, err := osmgraph.SharedVertices(cmd.Context(), g, osmgraph.WithNCpus(ncpu))
		if err != nil {
			return err
		}

		slog.Debug("surveyed shared vertices", "nodes", g.Len(), "shared", len(ids))

		render(g, ids, verbose)

		return nil
	},
}

func render(g *osmgraph.Graph, ids []model.ID, verbose bool) {
	for _, id := range ids {
		if verbose {
			fmt.Fprintf(out, "%s\t%d\t%v\n", id, g.VertexOccurrences(id), g.ParentWays(id))
		} else {
			fmt.Fprintln(out, id)
		}
	}
}
