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

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

// SplitWay cuts every open way passing through a node into two ways at that
// node. The original way keeps the part up to and including the node; a new
// way holds the rest, starting at the node, and shares the original's tags.
// The new way is added to every relation containing the original, right
// after it and with the same role.
//
// Closed ways, and ways that merely start or end at the node, are left
// alone.
type SplitWay struct {
	node model.ID
	cfg  options
}

// NewSplitWay creates a SplitWay action. Use WithNewWayIDs to choose the ids
// of the created ways.
func NewSplitWay(node model.ID, opts ...Option) *SplitWay {
	return &SplitWay{node: node, cfg: newOptions(opts)}
}

func (s *SplitWay) Enabled(g *osmgraph.Graph) Reason {
	if _, err := g.Node(s.node); err != nil {
		return reasonFor(err)
	}

	if len(s.splittable(g)) == 0 {
		return NotSplittable
	}

	if s.cfg.suppliedTaken(g) {
		return AlreadyExists
	}

	return None
}

func (s *SplitWay) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return s.apply(g, s.cfg.allocator())
}

func (s *SplitWay) preview(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return s.apply(g, s.cfg.previewAllocator())
}

func (s *SplitWay) apply(g *osmgraph.Graph, ids *allocator) (*osmgraph.Graph, error) {
	if r := s.Enabled(g); r != None {
		return nil, &DisabledError{Action: "split way", Reason: r}
	}

	for _, w := range s.splittable(g) {
		at := splitIndex(w, s.node)

		created := &model.Way{
			ID:      ids.next(g, model.WAY),
			Tags:    w.Tags,
			NodeIDs: append([]model.ID(nil), w.NodeIDs[at:]...),
		}

		g = g.Replace(w.WithNodeIDs(w.NodeIDs[:at+1]))
		g = g.Replace(created)

		for _, rid := range g.ParentRelations(w.ID) {
			r, err := g.Relation(rid)
			if err != nil {
				return nil, err
			}

			i := r.IndexOfMember(w.ID)
			g = g.Replace(r.InsertMember(i+1, model.Member{ID: created.ID, Type: model.WAY, Role: r.Members[i].Role}))
		}

		slog.Debug("split way", "way", w.ID, "node", s.node, "created", created.ID)
	}

	return g, nil
}

// splittable returns the parent ways of the node that it can cut, in
// ascending id order.
func (s *SplitWay) splittable(g *osmgraph.Graph) []*model.Way {
	var ways []*model.Way

	for _, wid := range g.ParentWays(s.node) {
		w, err := g.Way(wid)
		if err != nil {
			continue
		}

		if !w.IsClosed() && splitIndex(w, s.node) > 0 {
			ways = append(ways, w)
		}
	}

	return ways
}

// splitIndex returns the first interior index of node in w, or -1.
func splitIndex(w *model.Way, node model.ID) int {
	for i := 1; i < len(w.NodeIDs)-1; i++ {
		if w.NodeIDs[i] == node {
			return i
		}
	}

	return -1
}
