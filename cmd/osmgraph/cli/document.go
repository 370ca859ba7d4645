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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

var ErrBadDocument = errors.New("malformed document")

// Document is the JSON form of a graph:
//
//	{"nodes": [{"id": "a", "loc": [lon, lat], "tags": {}}],
//	 "ways": [{"id": "w", "nodes": ["a", "b"], "tags": {}}],
//	 "relations": [{"id": "r", "members": [{"id": "w", "type": "way", "role": ""}], "tags": {}}]}
type Document struct {
	Nodes     []NodeDoc     `json:"nodes"`
	Ways      []WayDoc      `json:"ways"`
	Relations []RelationDoc `json:"relations"`
}

type NodeDoc struct {
	ID   model.ID          `json:"id"`
	Loc  []model.Degrees   `json:"loc,omitempty"`
	Tags map[string]string `json:"tags,omitempty"`
}

type WayDoc struct {
	ID    model.ID          `json:"id"`
	Nodes []model.ID        `json:"nodes"`
	Tags  map[string]string `json:"tags,omitempty"`
}

type MemberDoc struct {
	ID   model.ID `json:"id"`
	Type string   `json:"type"`
	Role string   `json:"role"`
}

type RelationDoc struct {
	ID      model.ID          `json:"id"`
	Members []MemberDoc       `json:"members"`
	Tags    map[string]string `json:"tags,omitempty"`
}

// Decode reads a document and loads it into a graph.
func Decode(r io.Reader) (*osmgraph.Graph, error) {
	var doc Document

	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBadDocument, err)
	}

	entities, err := doc.entities()
	if err != nil {
		return nil, err
	}

	return osmgraph.Load(entities...)
}

// Encode writes g as an indented document, entities in ascending id order.
func Encode(w io.Writer, g *osmgraph.Graph) error {
	doc := Document{
		Nodes:     []NodeDoc{},
		Ways:      []WayDoc{},
		Relations: []RelationDoc{},
	}

	for _, e := range g.All() {
		switch e := e.(type) {
		case *model.Node:
			n := NodeDoc{ID: e.ID, Tags: tagsOf(e)}
			if e.Loc != nil {
				n.Loc = []model.Degrees{e.Loc.Lon, e.Loc.Lat}
			}

			doc.Nodes = append(doc.Nodes, n)
		case *model.Way:
			doc.Ways = append(doc.Ways, WayDoc{ID: e.ID, Nodes: e.NodeIDs, Tags: tagsOf(e)})
		case *model.Relation:
			members := make([]MemberDoc, len(e.Members))
			for i, m := range e.Members {
				members[i] = MemberDoc{ID: m.ID, Type: m.Type.String(), Role: m.Role}
			}

			doc.Relations = append(doc.Relations, RelationDoc{ID: e.ID, Members: members, Tags: tagsOf(e)})
		}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(doc)
}

// ReadGraph loads the document at path; see OpenInput.
func ReadGraph(path string, progress bool) (*osmgraph.Graph, error) {
	in, err := OpenInput(path, progress)
	if err != nil {
		return nil, err
	}

	g, err := Decode(in)

	return g, errors.Join(err, in.Close())
}

// WriteGraph saves g as a document at path; see CreateOutput.
func WriteGraph(path string, g *osmgraph.Graph) error {
	out, err := CreateOutput(path)
	if err != nil {
		return err
	}

	return errors.Join(Encode(out, g), out.Close())
}

func (doc *Document) entities() ([]model.Entity, error) {
	entities := make([]model.Entity, 0, len(doc.Nodes)+len(doc.Ways)+len(doc.Relations))

	for _, n := range doc.Nodes {
		var loc *model.Location

		switch len(n.Loc) {
		case 0:
		case 2:
			loc = model.NewLocation(n.Loc[0], n.Loc[1])
		default:
			return nil, fmt.Errorf("%w: node %s has %d coordinates", ErrBadDocument, n.ID, len(n.Loc))
		}

		entities = append(entities, model.NewNode(n.ID, loc, newTags(n.Tags)))
	}

	for _, w := range doc.Ways {
		entities = append(entities, model.NewWay(w.ID, w.Nodes, newTags(w.Tags)))
	}

	for _, r := range doc.Relations {
		members := make([]model.Member, len(r.Members))

		for i, m := range r.Members {
			t, err := parseType(m.Type)
			if err != nil {
				return nil, fmt.Errorf("%w: relation %s member %s: %w", ErrBadDocument, r.ID, m.ID, err)
			}

			members[i] = model.Member{ID: m.ID, Type: t, Role: m.Role}
		}

		entities = append(entities, model.NewRelation(r.ID, members, newTags(r.Tags)))
	}

	return entities, nil
}

func parseType(s string) (model.EntityType, error) {
	for _, t := range []model.EntityType{model.NODE, model.WAY, model.RELATION} {
		if t.String() == s {
			return t, nil
		}
	}

	return 0, fmt.Errorf("unknown member type %q", s)
}

func newTags(m map[string]string) *model.Tags {
	if len(m) == 0 {
		return nil
	}

	return model.NewTags(m)
}

func tagsOf(e model.Entity) map[string]string {
	if e.GetTags().Len() == 0 {
		return nil
	}

	return e.GetTags().Map()
}
