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
	"m4o.io/osmgraph/model"
)

// Extent returns the bounding box of an entity: the location of a node, the
// nodes of a way, or recursively the members of a relation. Nodes without a
// location are skipped, so the result may be empty (see
// BoundingBox.IsEmpty).
func (g *Graph) Extent(id model.ID) (*model.BoundingBox, error) {
	bbox := model.InitialBoundingBox()

	if err := g.extend(bbox, id, make(map[model.ID]struct{})); err != nil {
		return nil, err
	}

	return bbox, nil
}

func (g *Graph) extend(bbox *model.BoundingBox, id model.ID, seen map[model.ID]struct{}) error {
	if _, ok := seen[id]; ok {
		return nil
	}

	seen[id] = struct{}{}

	e, err := g.Entity(id)
	if err != nil {
		return err
	}

	switch e := e.(type) {
	case *model.Node:
		if e.Loc != nil {
			bbox.ExpandWithLocation(e.Loc)
		}
	default:
		for _, ref := range model.References(e) {
			sub := model.InitialBoundingBox()
			if err := g.extend(sub, ref, seen); err != nil {
				return err
			}

			bbox.ExpandWithBoundingBox(sub)
		}
	}

	return nil
}
