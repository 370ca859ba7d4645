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

package action

import (
	"log/slog"
	"slices"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

// Disconnect splits a shared vertex. The first parent way, in ascending id
// order, keeps the original node at its first occurrence. Every other
// occurrence, in that way or any other, is replaced by one new node sharing
// the original's location and tags.
//
// Relations that have the vertex as a member are not changed.
type Disconnect struct {
	vertex model.ID
	cfg    options
}

var _ Action = (*Disconnect)(nil)

// NewDisconnect creates a Disconnect of vertex. Use WithNewNodeID to choose
// the id of the created node.
func NewDisconnect(vertex model.ID, opts ...Option) *Disconnect {
	return &Disconnect{vertex: vertex, cfg: newOptions(opts)}
}

func (d *Disconnect) Enabled(g *osmgraph.Graph) Reason {
	if _, err := g.Node(d.vertex); err != nil {
		return reasonFor(err)
	}

	if g.VertexOccurrences(d.vertex) < 2 {
		return NotEnoughRelatedWays
	}

	if d.cfg.suppliedTaken(g) {
		return AlreadyExists
	}

	return None
}

func (d *Disconnect) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return d.apply(g, d.cfg.allocator())
}

func (d *Disconnect) preview(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return d.apply(g, d.cfg.previewAllocator())
}

func (d *Disconnect) apply(g *osmgraph.Graph, ids *allocator) (*osmgraph.Graph, error) {
	if r := d.Enabled(g); r != None {
		return nil, &DisabledError{Action: "disconnect", Reason: r}
	}

	vertex, err := g.Node(d.vertex)
	if err != nil {
		return nil, err
	}

	ways := g.ParentWays(d.vertex)
	newID := ids.next(g, model.NODE)

	next := g.Replace(model.NewNode(newID, vertex.Loc, vertex.Tags))

	for i, wid := range ways {
		w, err := g.Way(wid)
		if err != nil {
			return nil, err
		}

		// only the first occurrence in the first way keeps the vertex
		keep := i == 0
		changed := false
		nodeIDs := slices.Clone(w.NodeIDs)

		for j, id := range nodeIDs {
			if id != d.vertex {
				continue
			}

			if keep {
				keep = false

				continue
			}

			nodeIDs[j] = newID
			changed = true
		}

		// a retained way with a single occurrence stays the same value
		if changed {
			next = next.Replace(w.WithNodeIDs(nodeIDs))
		}
	}

	slog.Debug("disconnected vertex", "vertex", d.vertex, "node", newID, "ways", len(ways))

	return next, nil
}
