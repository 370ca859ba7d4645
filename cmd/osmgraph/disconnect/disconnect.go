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

package disconnect

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/action"
	"m4o.io/osmgraph/cmd/osmgraph/cli"
	"m4o.io/osmgraph/model"
)

var (
	out io.Writer = os.Stdout

	vertex model.ID
	newID  model.ID
)

func init() {
	cli.RootCmd.AddCommand(disconnectCmd)

	flags := disconnectCmd.Flags()
	flags.VarP(cli.NewIDValue("", &vertex), "vertex", "x", "id of the shared node to disconnect")
	flags.VarP(cli.NewIDValue("", &newID), "new-id", "n", "id of the created node (generated when not set)")
	flags.StringP("out", "o", "", "write the edited document to this file (- for stdout)")
	flags.Bool("uuid", false, "generate ids from UUIDs instead of a negative sequence")

	_ = disconnectCmd.MarkFlagRequired("vertex")
}

var disconnectCmd = &cobra.Command{
	Use:   "disconnect [<document>]",
	Short: "Disconnect a shared vertex",
	Long: `Give every way but the first, in ascending id order, its own copy of a
shared vertex and print the ids that changed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		dest, err := flags.GetString("out")
		if err != nil {
			return err
		}

		useUUID, err := flags.GetBool("uuid")
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		g, err := cli.ReadGraph(path, dest != "-")
		if err != nil {
			return err
		}

		var opts []action.Option
		if newID != "" {
			opts = append(opts, action.WithNewNodeID(newID))
		}

		if useUUID {
			opts = append(opts, action.WithIDGenerator(model.UUIDs{}))
		}

		h, changes, err := runDisconnect(g, vertex, opts...)
		if err != nil {
			return err
		}

		if dest != "" {
			if err := cli.WriteGraph(dest, h); err != nil {
				return err
			}
		}

		if dest != "-" {
			renderChanges(changes)
		}

		return nil
	},
}

func runDisconnect(g *osmgraph.Graph, vertex model.ID, opts ...action.Option) (*osmgraph.Graph, osmgraph.Changes, error) {
	d := action.NewDisconnect(vertex, opts...)

	if r := d.Enabled(g); r != action.None {
		return nil, osmgraph.Changes{}, fmt.Errorf("cannot disconnect %s: %s", vertex, r)
	}

	h, err := d.Apply(g)
	if err != nil {
		return nil, osmgraph.Changes{}, err
	}

	return h, osmgraph.Difference(g, h), nil
}

func renderChanges(c osmgraph.Changes) {
	fmt.Fprintf(out, "Created: %s\n", join(c.Created))
	fmt.Fprintf(out, "Modified: %s\n", join(c.Modified))
	fmt.Fprintf(out, "Deleted: %s\n", join(c.Deleted))
}

func join(ids []model.ID) string {
	s := make([]string, len(ids))
	for i, id := range ids {
		s[i] = string(id)
	}

	return strings.Join(s, ", ")
}
