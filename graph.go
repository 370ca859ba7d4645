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

// Package osmgraph is an immutable graph of OpenStreetMap entities.
//
// A Graph is never modified. Replace and Remove return a new Graph that
// shares every untouched entity, and every untouched part of its reverse
// indices, with the receiver. Old graphs stay valid, so a history of edits
// is simply a list of *Graph values, and any number of goroutines may read
// a Graph without coordination.
package osmgraph

import (
	"fmt"
	"iter"
	"slices"

	"github.com/benbjohnson/immutable"

	"m4o.io/osmgraph/internal/index"
	"m4o.io/osmgraph/model"
)

// Graph is an immutable snapshot of entities with reverse indices from a
// node to the ways containing it, and from any entity to the relations
// having it as a member.
type Graph struct {
	entities        *immutable.Map[model.ID, model.Entity]
	parentWays      index.Parents
	parentRelations index.Parents

	// base is the graph this one descends from by Replace and Remove, nil
	// when this graph is itself a base. changes holds every id touched
	// since base.
	base    *Graph
	changes *immutable.SortedMap[model.ID, struct{}]
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		entities:        immutable.NewMap[model.ID, model.Entity](index.Hasher{}),
		parentWays:      index.NewParents(),
		parentRelations: index.NewParents(),
		changes:         immutable.NewSortedMap[model.ID, struct{}](index.Comparer{}),
	}
}

// Load returns a graph holding entities. The reverse indices are built once
// for the whole set. Every reference must resolve within entities.
func Load(entities ...model.Entity) (*Graph, error) {
	b := immutable.NewMapBuilder[model.ID, model.Entity](index.Hasher{})
	ways := make(map[model.ID][]model.ID)
	relations := make(map[model.ID][]model.ID)
	seen := make(map[model.ID]struct{}, len(entities))

	for _, e := range entities {
		id := e.GetID()
		if _, ok := seen[id]; ok {
			return nil, fmt.Errorf("%w: duplicate entity %s", ErrPreconditionViolation, id)
		}

		seen[id] = struct{}{}
		b.Set(id, e)

		switch e := e.(type) {
		case *model.Way:
			for _, nid := range uniq(e.NodeIDs) {
				ways[nid] = append(ways[nid], id)
			}
		case *model.Relation:
			for _, mid := range uniq(model.References(e)) {
				relations[mid] = append(relations[mid], id)
			}
		}
	}

	g := New()
	g.entities = b.Map()
	g.parentWays = index.Build(ways)
	g.parentRelations = index.Build(relations)

	if err := g.Check(); err != nil {
		return nil, err
	}

	return g, nil
}

// Len returns the number of entities.
func (g *Graph) Len() int {
	return g.entities.Len()
}

// HasEntity reports whether id is present.
func (g *Graph) HasEntity(id model.ID) bool {
	_, ok := g.entities.Get(id)

	return ok
}

// Entity returns the entity with the given id.
func (g *Graph) Entity(id model.ID) (model.Entity, error) {
	e, ok := g.entities.Get(id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}

	return e, nil
}

// Node returns the node with the given id.
func (g *Graph) Node(id model.ID) (*model.Node, error) {
	return lookup[*model.Node](g, id, model.NODE)
}

// Way returns the way with the given id.
func (g *Graph) Way(id model.ID) (*model.Way, error) {
	return lookup[*model.Way](g, id, model.WAY)
}

// Relation returns the relation with the given id.
func (g *Graph) Relation(id model.ID) (*model.Relation, error) {
	return lookup[*model.Relation](g, id, model.RELATION)
}

func lookup[T model.Entity](g *Graph, id model.ID, want model.EntityType) (T, error) {
	var zero T

	e, err := g.Entity(id)
	if err != nil {
		return zero, err
	}

	t, ok := e.(T)
	if !ok {
		return zero, fmt.Errorf("%w: %s is a %s, not a %s", ErrEntityType, id, e.GetType(), want)
	}

	return t, nil
}

// IDs returns every id in ascending order.
func (g *Graph) IDs() []model.ID {
	ids := make([]model.ID, 0, g.entities.Len())

	itr := g.entities.Iterator()
	for !itr.Done() {
		id, _, _ := itr.Next()
		ids = append(ids, id)
	}

	slices.Sort(ids)

	return ids
}

// All iterates over the entities in ascending id order.
func (g *Graph) All() iter.Seq2[model.ID, model.Entity] {
	return func(yield func(model.ID, model.Entity) bool) {
		for _, id := range g.IDs() {
			e, _ := g.entities.Get(id)
			if !yield(id, e) {
				return
			}
		}
	}
}

// ParentWays returns the ids of the ways containing id, in ascending order.
func (g *Graph) ParentWays(id model.ID) []model.ID {
	return g.parentWays.Get(id)
}

// ParentRelations returns the ids of the relations having id as a member,
// in ascending order.
func (g *Graph) ParentRelations(id model.ID) []model.ID {
	return g.parentRelations.Get(id)
}

// IsReferenced reports whether any way or relation refers to id.
func (g *Graph) IsReferenced(id model.ID) bool {
	return g.parentWays.Count(id) > 0 || g.parentRelations.Count(id) > 0
}

// VertexOccurrences counts the positions at which node id appears over all
// of its parent ways. The shared end of a closed way counts twice.
func (g *Graph) VertexOccurrences(id model.ID) int {
	var n int

	for _, wid := range g.parentWays.Get(id) {
		if w, err := g.Way(wid); err == nil {
			n += w.Occurrences(id)
		}
	}

	return n
}

// Replace returns a graph in which entity's id maps to entity, adding it if
// the id is new. Only the reverse index entries of the ids referenced by the
// previous or the new value are recomputed.
func (g *Graph) Replace(entity model.Entity) *Graph {
	id := entity.GetID()
	old, _ := g.entities.Get(id)

	c := g.derive(id)
	c.entities = g.entities.Set(id, entity)
	c.parentWays = g.parentWays.Update(id, wayRefs(old), wayRefs(entity))
	c.parentRelations = g.parentRelations.Update(id, relationRefs(old), relationRefs(entity))

	return c
}

// Remove returns a graph without id. It fails with ErrNotFound when id is
// absent and with ErrPreconditionViolation while another way or relation
// still references id. A relation that is its own member can be removed.
func (g *Graph) Remove(id model.ID) (*Graph, error) {
	old, ok := g.entities.Get(id)
	if !ok {
		return nil, fmt.Errorf("cannot remove %s: %w", id, ErrNotFound)
	}

	parents := slices.DeleteFunc(append(g.ParentWays(id), g.ParentRelations(id)...), func(p model.ID) bool {
		return p == id
	})
	if len(parents) > 0 {
		return nil, fmt.Errorf("%w: %s is still referenced by %v", ErrPreconditionViolation, id, parents)
	}

	c := g.derive(id)
	c.entities = g.entities.Delete(id)
	c.parentWays = g.parentWays.Update(id, wayRefs(old), nil)
	c.parentRelations = g.parentRelations.Update(id, relationRefs(old), nil)

	return c, nil
}

func (g *Graph) derive(id model.ID) *Graph {
	return &Graph{
		base:    g.root(),
		changes: g.changes.Set(id, struct{}{}),
	}
}

func (g *Graph) root() *Graph {
	if g.base == nil {
		return g
	}

	return g.base
}

func wayRefs(e model.Entity) []model.ID {
	if w, ok := e.(*model.Way); ok {
		return w.NodeIDs
	}

	return nil
}

func relationRefs(e model.Entity) []model.ID {
	if r, ok := e.(*model.Relation); ok {
		return model.References(r)
	}

	return nil
}

func uniq(ids []model.ID) []model.ID {
	seen := make(map[model.ID]struct{}, len(ids))
	out := make([]model.ID, 0, len(ids))

	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}

		seen[id] = struct{}{}
		out = append(out, id)
	}

	return out
}
