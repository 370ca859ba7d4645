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

package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmgraph/model"
)

func TestNewWayCopiesNodeIDs(t *testing.T) {
	ids := []model.ID{"a", "b"}
	w := model.NewWay("w", ids, nil)

	ids[0] = "z"

	assert.Equal(t, []model.ID{"a", "b"}, w.NodeIDs)
}

func TestWayIsClosed(t *testing.T) {
	test_cases := []struct {
		name     string
		nodes    []model.ID
		expected bool
	}{
		{"empty", nil, false},
		{"single", []model.ID{"a"}, false},
		{"open", []model.ID{"a", "b", "c"}, false},
		{"loop", []model.ID{"a", "b", "c", "a"}, true},
		{"self-intersecting", []model.ID{"a", "b", "a", "c"}, false},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, model.NewWay("w", tc.nodes, nil).IsClosed())
		})
	}
}

func TestWayOccurrences(t *testing.T) {
	w := model.NewWay("w", []model.ID{"a", "b", "c", "d", "a"}, nil)

	assert.Equal(t, 2, w.Occurrences("a"))
	assert.Equal(t, 1, w.Occurrences("c"))
	assert.Equal(t, 0, w.Occurrences("z"))
	assert.Equal(t, 2, w.IndexOf("c"))
	assert.Equal(t, -1, w.IndexOf("z"))
	assert.True(t, w.Contains("d"))
}

func TestWayFirstLast(t *testing.T) {
	w := model.NewWay("w", []model.ID{"a", "b", "c"}, nil)
	assert.Equal(t, model.ID("a"), w.First())
	assert.Equal(t, model.ID("c"), w.Last())

	empty := model.NewWay("e", nil, nil)
	assert.Equal(t, model.ID(""), empty.First())
	assert.Equal(t, model.ID(""), empty.Last())
}

func TestWayDerivationsShareTags(t *testing.T) {
	tags := model.NewTags(map[string]string{"highway": "residential"})
	w := model.NewWay("w", []model.ID{"a", "b", "c"}, tags)

	r := w.Reverse()
	assert.Equal(t, []model.ID{"c", "b", "a"}, r.NodeIDs)
	assert.Equal(t, []model.ID{"a", "b", "c"}, w.NodeIDs)
	assert.Same(t, tags, r.Tags)

	n := w.WithNodeIDs([]model.ID{"a", "c"})
	assert.Same(t, tags, n.Tags)
	assert.Equal(t, model.ID("w"), n.ID)
}

func TestWayReplaceNode(t *testing.T) {
	w := model.NewWay("w", []model.ID{"a", "b", "c", "b"}, nil)

	assert.Equal(t, []model.ID{"a", "x", "c", "x"}, w.ReplaceNode("b", "x").NodeIDs)
	assert.Equal(t, []model.ID{"a", "c"}, w.ReplaceNode("b", "c").NodeIDs)
	assert.Equal(t, []model.ID{"a", "b", "c", "b"}, w.NodeIDs)
}

func TestWayRemoveNode(t *testing.T) {
	test_cases := []struct {
		name     string
		nodes    []model.ID
		remove   model.ID
		expected []model.ID
	}{
		{"interior", []model.ID{"a", "b", "c"}, "b", []model.ID{"a", "c"}},
		{"collapses duplicates", []model.ID{"a", "b", "a", "c"}, "b", []model.ID{"a", "c"}},
		{"keeps loop closed", []model.ID{"a", "b", "c", "a"}, "a", []model.ID{"b", "c", "b"}},
		{"absent", []model.ID{"a", "b"}, "z", []model.ID{"a", "b"}},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			w := model.NewWay("w", tc.nodes, nil)
			assert.Equal(t, tc.expected, w.RemoveNode(tc.remove).NodeIDs)
		})
	}
}

func TestWayIsDegenerate(t *testing.T) {
	assert.True(t, model.NewWay("w", nil, nil).IsDegenerate())
	assert.True(t, model.NewWay("w", []model.ID{"a"}, nil).IsDegenerate())
	assert.True(t, model.NewWay("w", []model.ID{"a", "a"}, nil).IsDegenerate())
	assert.False(t, model.NewWay("w", []model.ID{"a", "b"}, nil).IsDegenerate())
}

func TestNodeDerivations(t *testing.T) {
	loc := model.NewLocation(1, 2)
	tags := model.NewTags(map[string]string{"highway": "traffic_signals"})
	n := model.NewNode("b", loc, tags)

	c := n.WithID("e")
	assert.Equal(t, model.ID("e"), c.ID)
	assert.Same(t, loc, c.Loc)
	assert.Same(t, tags, c.Tags)

	moved := n.WithLoc(model.NewLocation(3, 4))
	assert.Same(t, tags, moved.Tags)
	assert.Same(t, loc, n.Loc)

	retagged := n.WithTags(nil)
	assert.Same(t, loc, retagged.Loc)
	assert.Equal(t, 0, retagged.GetTags().Len())
}

func TestRelationMembers(t *testing.T) {
	r := model.NewRelation("r", []model.Member{
		{ID: "w1", Type: model.WAY, Role: "outer"},
		{ID: "w2", Type: model.WAY, Role: "inner"},
		{ID: "w1", Type: model.WAY, Role: "outer"},
	}, nil)

	assert.Equal(t, 1, r.IndexOfMember("w2"))
	assert.Equal(t, -1, r.IndexOfMember("w9"))

	replaced := r.ReplaceMember("w1", "w3")
	assert.Equal(t, model.ID("w3"), replaced.Members[0].ID)
	assert.Equal(t, "outer", replaced.Members[2].Role)
	assert.Equal(t, model.ID("w1"), r.Members[0].ID)

	removed := r.RemoveMember("w1")
	assert.Len(t, removed.Members, 1)
	assert.Len(t, r.Members, 3)

	inserted := r.InsertMember(1, model.Member{ID: "n1", Type: model.NODE})
	assert.Equal(t, []model.ID{"w1", "n1", "w2", "w1"}, model.References(inserted))
}

func TestReferences(t *testing.T) {
	assert.Nil(t, model.References(model.NewNode("a", nil, nil)))
	assert.Equal(t, []model.ID{"a", "b", "a"}, model.References(model.NewWay("w", []model.ID{"a", "b", "a"}, nil)))
}

func TestEntityTypeString(t *testing.T) {
	assert.Equal(t, "node", model.NODE.String())
	assert.Equal(t, "way", model.WAY.String())
	assert.Equal(t, "relation", model.RELATION.String())
	assert.Equal(t, "unknown", model.EntityType(7).String())
}
