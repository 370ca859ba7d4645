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

// DeleteNode removes a node. It is taken out of every way containing it;
// ways left with fewer than two distinct nodes are deleted as by
// DeleteWay. It is taken out of every relation; relations left empty are
// deleted.
type DeleteNode struct {
	id model.ID
}

// NewDeleteNode creates a DeleteNode action.
func NewDeleteNode(id model.ID) *DeleteNode {
	return &DeleteNode{id: id}
}

func (d *DeleteNode) Enabled(g *osmgraph.Graph) Reason {
	_, err := g.Node(d.id)

	return reasonFor(err)
}

func (d *DeleteNode) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := d.Enabled(g); r != None {
		return nil, &DisabledError{Action: "delete node", Reason: r}
	}

	var err error

	for _, wid := range g.ParentWays(d.id) {
		var w *model.Way
		if w, err = g.Way(wid); err != nil {
			return nil, err
		}

		if w = w.RemoveNode(d.id); w.IsDegenerate() {
			g, err = deleteWay(g, w.ID)
		} else {
			g = g.Replace(w)
		}

		if err != nil {
			return nil, err
		}
	}

	if g, err = detach(g, d.id); err != nil {
		return nil, err
	}

	// deleting a degenerate way may already have swept the node up
	if g.HasEntity(d.id) {
		return g.Remove(d.id)
	}

	return g, nil
}

// DeleteWay removes a way. It is taken out of every relation, relations
// left empty are deleted, and its nodes are deleted when nothing else
// references them and they carry no tags.
type DeleteWay struct {
	id model.ID
}

// NewDeleteWay creates a DeleteWay action.
func NewDeleteWay(id model.ID) *DeleteWay {
	return &DeleteWay{id: id}
}

func (d *DeleteWay) Enabled(g *osmgraph.Graph) Reason {
	_, err := g.Way(d.id)

	return reasonFor(err)
}

func (d *DeleteWay) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := d.Enabled(g); r != None {
		return nil, &DisabledError{Action: "delete way", Reason: r}
	}

	return deleteWay(g, d.id)
}

// DeleteRelation removes a relation. It is taken out of every relation
// containing it, relations left empty are deleted. Its members are kept.
type DeleteRelation struct {
	id model.ID
}

// NewDeleteRelation creates a DeleteRelation action.
func NewDeleteRelation(id model.ID) *DeleteRelation {
	return &DeleteRelation{id: id}
}

func (d *DeleteRelation) Enabled(g *osmgraph.Graph) Reason {
	_, err := g.Relation(d.id)

	return reasonFor(err)
}

func (d *DeleteRelation) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := d.Enabled(g); r != None {
		return nil, &DisabledError{Action: "delete relation", Reason: r}
	}

	return deleteRelation(g, d.id)
}

// deleteWay removes a way and sweeps its orphaned, untagged nodes. Nodes
// listed in keep are never swept.
func deleteWay(g *osmgraph.Graph, id model.ID, keep ...model.ID) (*osmgraph.Graph, error) {
	w, err := g.Way(id)
	if err != nil {
		return nil, err
	}

	if g, err = detach(g, id); err != nil {
		return nil, err
	}

	if g, err = g.Remove(id); err != nil {
		return nil, err
	}

	for _, nid := range w.NodeIDs {
		if slices.Contains(keep, nid) {
			continue
		}

		n, err := g.Node(nid)
		if err != nil {
			// already swept, the way repeated it
			continue
		}

		if g.IsReferenced(nid) || n.Tags.Len() > 0 {
			continue
		}

		if g, err = g.Remove(nid); err != nil {
			return nil, err
		}
	}

	slog.Debug("deleted way", "way", id)

	return g, nil
}

// deleteRelation removes a relation, detaching it from its parents first.
func deleteRelation(g *osmgraph.Graph, id model.ID) (*osmgraph.Graph, error) {
	r, err := g.Relation(id)
	if err != nil {
		return nil, err
	}

	// drop the members first so that membership cycles cannot recurse back
	g = g.Replace(model.NewRelation(r.ID, nil, r.Tags))

	if g, err = detach(g, id); err != nil {
		return nil, err
	}

	return g.Remove(id)
}

// detach takes id out of every relation having it as a member. Relations
// left without members are deleted.
func detach(g *osmgraph.Graph, id model.ID) (*osmgraph.Graph, error) {
	for _, rid := range g.ParentRelations(id) {
		r, err := g.Relation(rid)
		if err != nil {
			// deleted while detaching an earlier parent
			continue
		}

		if r = r.RemoveMember(id); len(r.Members) == 0 {
			g, err = deleteRelation(g, rid)
		} else {
			g = g.Replace(r)
		}

		if err != nil {
			return nil, err
		}
	}

	return g, nil
}
