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

// Package index holds the persistent reverse-reference index of a graph.
package index

import (
	"github.com/benbjohnson/immutable"

	"m4o.io/osmgraph/model"
)

type set = *immutable.SortedMap[model.ID, struct{}]

// Parents maps a child id to the sorted set of parent ids referencing it.
// The zero value is not usable; create one with NewParents.
//
// Parents is a persistent value: every update returns a new Parents that
// shares all untouched sets with the receiver.
type Parents struct {
	m *immutable.Map[model.ID, set]
}

// NewParents returns an empty index.
func NewParents() Parents {
	return Parents{m: immutable.NewMap[model.ID, set](Hasher{})}
}

// Build creates an index from a child -> parents table in one pass.
func Build(table map[model.ID][]model.ID) Parents {
	b := immutable.NewMapBuilder[model.ID, set](Hasher{})

	for child, parents := range table {
		sb := immutable.NewSortedMapBuilder[model.ID, struct{}](Comparer{})
		for _, p := range parents {
			sb.Set(p, struct{}{})
		}

		b.Set(child, sb.Map())
	}

	return Parents{m: b.Map()}
}

// Len returns the number of children with at least one parent.
func (p Parents) Len() int {
	return p.m.Len()
}

// Get returns the parents of child in ascending order.
func (p Parents) Get(child model.ID) []model.ID {
	s, ok := p.m.Get(child)
	if !ok {
		return nil
	}

	ids := make([]model.ID, 0, s.Len())

	itr := s.Iterator()
	for !itr.Done() {
		id, _, _ := itr.Next()
		ids = append(ids, id)
	}

	return ids
}

// Count returns the number of parents of child.
func (p Parents) Count(child model.ID) int {
	s, ok := p.m.Get(child)
	if !ok {
		return 0
	}

	return s.Len()
}

// Has reports whether parent references child.
func (p Parents) Has(child, parent model.ID) bool {
	s, ok := p.m.Get(child)
	if !ok {
		return false
	}

	_, ok = s.Get(parent)

	return ok
}

// Add records that parent references child.
func (p Parents) Add(child, parent model.ID) Parents {
	s, ok := p.m.Get(child)
	if !ok {
		s = immutable.NewSortedMap[model.ID, struct{}](Comparer{})
	} else if _, ok := s.Get(parent); ok {
		return p
	}

	return Parents{m: p.m.Set(child, s.Set(parent, struct{}{}))}
}

// Remove forgets that parent references child. Empty sets are dropped.
func (p Parents) Remove(child, parent model.ID) Parents {
	s, ok := p.m.Get(child)
	if !ok {
		return p
	}

	if _, ok := s.Get(parent); !ok {
		return p
	}

	if s.Len() == 1 {
		return Parents{m: p.m.Delete(child)}
	}

	return Parents{m: p.m.Set(child, s.Delete(parent))}
}

// Update moves parent's references from before to after. Only the children
// present in exactly one of the two lists are touched; repeats are ignored.
func (p Parents) Update(parent model.ID, before, after []model.ID) Parents {
	if len(before) == 0 && len(after) == 0 {
		return p
	}

	old := make(map[model.ID]struct{}, len(before))
	for _, id := range before {
		old[id] = struct{}{}
	}

	cur := make(map[model.ID]struct{}, len(after))
	for _, id := range after {
		cur[id] = struct{}{}
	}

	for id := range old {
		if _, ok := cur[id]; !ok {
			p = p.Remove(id, parent)
		}
	}

	for id := range cur {
		if _, ok := old[id]; !ok {
			p = p.Add(id, parent)
		}
	}

	return p
}

// Each calls fn for every child and its parents until fn returns false.
func (p Parents) Each(fn func(child model.ID, parents []model.ID) bool) {
	itr := p.m.Iterator()
	for !itr.Done() {
		child, _, _ := itr.Next()
		if !fn(child, p.Get(child)) {
			return
		}
	}
}
