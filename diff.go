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

package osmgraph

import (
	"slices"

	"m4o.io/osmgraph/model"
)

// Changes lists the ids whose entity differs between two graphs, each in
// ascending order.
type Changes struct {
	Created  []model.ID
	Modified []model.ID
	Deleted  []model.ID
}

// Len returns the total number of changed ids.
func (c Changes) Len() int {
	return len(c.Created) + len(c.Modified) + len(c.Deleted)
}

// IsEmpty reports whether nothing changed.
func (c Changes) IsEmpty() bool {
	return c.Len() == 0
}

// Difference compares two graphs by entity identity. An id is modified when
// both graphs hold it under different pointers.
//
// When both graphs descend from the same base only the ids touched since
// that base are visited; otherwise every id of both graphs is.
func Difference(from, to *Graph) Changes {
	var candidates []model.ID

	if from.root() == to.root() {
		candidates = touched(from, to)
	} else {
		candidates = uniq(append(from.IDs(), to.IDs()...))
		slices.Sort(candidates)
	}

	var c Changes

	for _, id := range candidates {
		a, inFrom := from.entities.Get(id)
		b, inTo := to.entities.Get(id)

		switch {
		case !inFrom && inTo:
			c.Created = append(c.Created, id)
		case inFrom && !inTo:
			c.Deleted = append(c.Deleted, id)
		case inFrom && inTo && a != b:
			c.Modified = append(c.Modified, id)
		}
	}

	return c
}

// touched merges the change sets of two graphs sharing a base.
func touched(from, to *Graph) []model.ID {
	ids := make([]model.ID, 0, from.changes.Len()+to.changes.Len())

	for _, g := range []*Graph{from, to} {
		itr := g.changes.Iterator()
		for !itr.Done() {
			id, _, _ := itr.Next()
			ids = append(ids, id)
		}
	}

	slices.Sort(ids)

	return slices.Compact(ids)
}
