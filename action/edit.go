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
	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

// AddEntity inserts a new entity. Every node of a way and every member of a
// relation must already be in the graph.
type AddEntity struct {
	entity model.Entity
}

// NewAddEntity creates an AddEntity action. The entity is copied, so later
// changes to e or its node and member slices are not seen by the graph.
func NewAddEntity(e model.Entity) *AddEntity {
	var c model.Entity

	switch e := e.(type) {
	case *model.Node:
		if e != nil {
			n := *e
			c = &n
		}
	case *model.Way:
		if e != nil {
			c = e.WithNodeIDs(e.NodeIDs)
		}
	case *model.Relation:
		if e != nil {
			c = e.WithMembers(e.Members)
		}
	}

	return &AddEntity{entity: c}
}

func (a *AddEntity) Enabled(g *osmgraph.Graph) Reason {
	if a.entity == nil {
		return MissingEntity
	}

	if g.HasEntity(a.entity.GetID()) {
		return AlreadyExists
	}

	switch e := a.entity.(type) {
	case *model.Way:
		for _, id := range e.NodeIDs {
			if _, err := g.Node(id); err != nil {
				return reasonFor(err)
			}
		}
	case *model.Relation:
		for _, m := range e.Members {
			ref, err := g.Entity(m.ID)
			if err != nil {
				return reasonFor(err)
			}

			if ref.GetType() != m.Type {
				return WrongEntityType
			}
		}
	}

	return None
}

func (a *AddEntity) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := a.Enabled(g); r != None {
		return nil, &DisabledError{Action: "add entity", Reason: r}
	}

	return g.Replace(a.entity), nil
}

// ChangeTags replaces the tags of an entity. Everything else about the
// entity, including its location or node list, is shared with the old
// value.
type ChangeTags struct {
	id   model.ID
	tags *model.Tags
}

// NewChangeTags creates a ChangeTags action.
func NewChangeTags(id model.ID, tags *model.Tags) *ChangeTags {
	return &ChangeTags{id: id, tags: tags}
}

func (c *ChangeTags) Enabled(g *osmgraph.Graph) Reason {
	e, err := g.Entity(c.id)
	if err != nil {
		return reasonFor(err)
	}

	if e.GetTags().Equal(c.tags) {
		return Unchanged
	}

	return None
}

func (c *ChangeTags) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := c.Enabled(g); r != None {
		return nil, &DisabledError{Action: "change tags", Reason: r}
	}

	e, err := g.Entity(c.id)
	if err != nil {
		return nil, err
	}

	switch e := e.(type) {
	case *model.Node:
		return g.Replace(e.WithTags(c.tags)), nil
	case *model.Way:
		return g.Replace(e.WithTags(c.tags)), nil
	case *model.Relation:
		return g.Replace(e.WithTags(c.tags)), nil
	default:
		return nil, &DisabledError{Action: "change tags", Reason: WrongEntityType}
	}
}

// MoveNode gives a node a new location. Its tags are shared with the old
// value.
type MoveNode struct {
	id  model.ID
	loc *model.Location
}

// NewMoveNode creates a MoveNode action.
func NewMoveNode(id model.ID, loc *model.Location) *MoveNode {
	return &MoveNode{id: id, loc: loc}
}

func (m *MoveNode) Enabled(g *osmgraph.Graph) Reason {
	n, err := g.Node(m.id)
	if err != nil {
		return reasonFor(err)
	}

	if samePlace(n.Loc, m.loc) {
		return Unchanged
	}

	return None
}

// samePlace reports whether two optional locations are equal to within a
// few millimetres.
func samePlace(a, b *model.Location) bool {
	if a == nil || b == nil {
		return a == b
	}

	return a.EqualWithin(b, model.E9)
}

func (m *MoveNode) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if r := m.Enabled(g); r != None {
		return nil, &DisabledError{Action: "move node", Reason: r}
	}

	n, err := g.Node(m.id)
	if err != nil {
		return nil, err
	}

	return g.Replace(n.WithLoc(m.loc)), nil
}

// ReverseWay reverses the node order of a way.
type ReverseWay struct {
	id model.ID
}

// NewReverseWay creates a ReverseWay action.
func NewReverseWay(id model.ID) *ReverseWay {
	return &ReverseWay{id: id}
}

func (r *ReverseWay) Enabled(g *osmgraph.Graph) Reason {
	_, err := g.Way(r.id)

	return reasonFor(err)
}

func (r *ReverseWay) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	if reason := r.Enabled(g); reason != None {
		return nil, &DisabledError{Action: "reverse way", Reason: reason}
	}

	w, err := g.Way(r.id)
	if err != nil {
		return nil, err
	}

	return g.Replace(w.Reverse()), nil
}
