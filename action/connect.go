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

// Connect merges several nodes into the last one given, the survivor. Ways
// and relations referencing the other nodes are repointed at the survivor,
// which also receives their tags; the other nodes are deleted. A way that
// collapses to fewer than two distinct nodes is deleted.
//
// Connect is the inverse of Disconnect.
type Connect struct {
	ids []model.ID
}

// NewConnect creates a Connect action. The last id survives.
func NewConnect(ids ...model.ID) *Connect {
	var uniq []model.ID

	for _, id := range ids {
		if !slices.Contains(uniq, id) {
			uniq = append(uniq, id)
		}
	}

	return &Connect{ids: uniq}
}

func (c *Connect) Enabled(g *osmgraph.Graph) Reason {
	if len(c.ids) < 2 {
		return TooFewNodes
	}

	for _, id := range c.ids {
		if _, err := g.Node(id); err != nil {
			return reasonFor(err)
		}
	}

	return None
}

func (c *Connect) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := c.Enabled(g); r != None {
		return nil, &DisabledError{Action: "connect", Reason: r}
	}

	survivorID := c.ids[len(c.ids)-1]

	survivor, err := g.Node(survivorID)
	if err != nil {
		return nil, err
	}

	tags := survivor.Tags

	for _, id := range c.ids[:len(c.ids)-1] {
		n, err := g.Node(id)
		if err != nil {
			return nil, err
		}

		tags = tags.Merge(n.Tags)

		if g, err = repoint(g, id, survivorID); err != nil {
			return nil, err
		}

		if g.HasEntity(id) {
			if g, err = g.Remove(id); err != nil {
				return nil, err
			}
		}
	}

	if tags != survivor.Tags {
		g = g.Replace(survivor.WithTags(tags))
	}

	slog.Debug("connected nodes", "nodes", c.ids, "survivor", survivorID)

	return g, nil
}

// repoint replaces id by survivor in every way and relation referencing it.
func repoint(g *osmgraph.Graph, id, survivor model.ID) (*osmgraph.Graph, error) {
	for _, wid := range g.ParentWays(id) {
		w, err := g.Way(wid)
		if err != nil {
			return nil, err
		}

		if w = w.ReplaceNode(id, survivor); w.IsDegenerate() {
			g, err = deleteWay(g, wid, survivor)
		} else {
			g = g.Replace(w)
		}

		if err != nil {
			return nil, err
		}
	}

	for _, rid := range g.ParentRelations(id) {
		r, err := g.Relation(rid)
		if err != nil {
			return nil, err
		}

		g = g.Replace(r.ReplaceMember(id, survivor))
	}

	return g, nil
}
