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
	"errors"
	"fmt"
	"slices"

	"m4o.io/osmgraph/internal/index"
	"m4o.io/osmgraph/model"
)

// Check verifies that every node of every way and every relation member
// resolves to an entity of the expected type, and that the reverse indices
// are the exact inverse of those references. It scans the whole graph.
func (g *Graph) Check() error {
	var errs []error

	ways := make(map[model.ID][]model.ID)
	relations := make(map[model.ID][]model.ID)

	for id, e := range g.All() {
		switch e := e.(type) {
		case *model.Way:
			for _, nid := range uniq(e.NodeIDs) {
				if _, err := g.Node(nid); err != nil {
					errs = append(errs, fmt.Errorf("%w: way %s node: %w", ErrDanglingReference, id, err))
				}

				ways[nid] = append(ways[nid], id)
			}
		case *model.Relation:
			for _, m := range e.Members {
				if ref, err := g.Entity(m.ID); err != nil {
					errs = append(errs, fmt.Errorf("%w: relation %s member: %w", ErrDanglingReference, id, err))
				} else if ref.GetType() != m.Type {
					errs = append(errs, fmt.Errorf("%w: relation %s member %s is a %s, not a %s",
						ErrDanglingReference, id, m.ID, ref.GetType(), m.Type))
				}
			}

			for _, mid := range uniq(model.References(e)) {
				relations[mid] = append(relations[mid], id)
			}
		}
	}

	errs = append(errs, compareIndex("parent ways", g.parentWays, ways)...)
	errs = append(errs, compareIndex("parent relations", g.parentRelations, relations)...)

	return errors.Join(errs...)
}

func compareIndex(name string, have index.Parents, want map[model.ID][]model.ID) []error {
	var errs []error

	if have.Len() != len(want) {
		errs = append(errs, fmt.Errorf("%w: %s index has %d entries, expected %d",
			ErrDanglingReference, name, have.Len(), len(want)))
	}

	for child, parents := range want {
		slices.Sort(parents)

		if got := have.Get(child); !slices.Equal(got, parents) {
			errs = append(errs, fmt.Errorf("%w: %s of %s are %v, expected %v",
				ErrDanglingReference, name, child, got, parents))
		}
	}

	return errs
}
