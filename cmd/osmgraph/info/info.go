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

package info

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	humanize "github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/cmd/osmgraph/cli"
	"m4o.io/osmgraph/model"
)

var out io.Writer = os.Stdout

type summary struct {
	BoundingBox       *model.BoundingBox `json:",omitempty"`
	NodeCount         int64
	WayCount          int64
	RelationCount     int64
	SharedVertexCount int64
}

func init() {
	cli.RootCmd.AddCommand(infoCmd)

	flags := infoCmd.Flags()
	flags.BoolP("json", "j", false, "format information in JSON")
	flags.Uint16P("cpu", "c", osmgraph.DefaultNCpu(), "number of CPUs to use for the shared vertex survey")
}

var infoCmd = &cobra.Command{
	Use:   "info [<document>]",
	Short: "Print information about a graph document",
	Long:  "Print entity counts, extent and the number of shared vertices of a graph document",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flags := cmd.Flags()

		jsonfmt, err := flags.GetBool("json")
		if err != nil {
			return err
		}

		ncpu, err := flags.GetUint16("cpu")
		if err != nil {
			return err
		}

		var path string
		if len(args) == 1 {
			path = args[0]
		}

		g, err := cli.ReadGraph(path, !jsonfmt)
		if err != nil {
			return err
		}

		info, err := runInfo(cmd.Context(), g, ncpu)
		if err != nil {
			return err
		}

		if jsonfmt {
			return renderJSON(info)
		}

		renderTxt(info)

		return nil
	},
}

func runInfo(ctx context.Context, g *osmgraph.Graph, ncpu uint16) (*summary, error) {
	info := &summary{}
	bbox := model.InitialBoundingBox()

	for _, e := range g.All() {
		switch e := e.(type) {
		case *model.Node:
			info.NodeCount++

			if e.Loc != nil {
				bbox.ExpandWithLocation(e.Loc)
			}
		case *model.Way:
			info.WayCount++
		case *model.Relation:
			info.RelationCount++
		}
	}

	if !bbox.IsEmpty() {
		info.BoundingBox = bbox
	}

	shared, err := osmgraph.SharedVertices(ctx, g, osmgraph.WithNCpus(ncpu))
	if err != nil {
		return nil, err
	}

	info.SharedVertexCount = int64(len(shared))

	return info, nil
}

func renderJSON(info *summary) error {
	b, err := json.Marshal(info)
	if err != nil {
		return err
	}

	_, err = fmt.Fprint(out, string(b))

	return err
}

func renderTxt(info *summary) {
	if info.BoundingBox != nil {
		fmt.Fprintf(out, "BoundingBox: %s\n", info.BoundingBox)
	}

	fmt.Fprintf(out, "NodeCount: %s\n", humanize.Comma(info.NodeCount))
	fmt.Fprintf(out, "WayCount: %s\n", humanize.Comma(info.WayCount))
	fmt.Fprintf(out, "RelationCount: %s\n", humanize.Comma(info.RelationCount))
	fmt.Fprintf(out, "SharedVertexCount: %s\n", humanize.Comma(info.SharedVertexCount))
}
