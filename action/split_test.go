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

package action_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmgraph/action"
	"m4o.io/osmgraph/model"
)

func TestSplitWay(t *testing.T) {
	tags := model.NewTags(map[string]string{"highway": "primary"})

	g := load(t, append(nodes("a", "b", "c"),
		model.NewWay("w", []model.ID{"a", "b", "c"}, tags),
		model.NewRelation("route", []model.Member{
			{ID: "w", Type: model.WAY, Role: "forward"},
			{ID: "a", Type: model.NODE, Role: "stop"},
		}, nil),
	)...)

	h, err := action.NewSplitWay("b", action.WithNewWayIDs("w2")).Apply(g)
	require.NoError(t, err)

	assert.Equal(t, []model.ID{"a", "b"}, way(t, h, "w"))
	assert.Equal(t, []model.ID{"b", "c"}, way(t, h, "w2"))

	w2, err := h.Way("w2")
	require.NoError(t, err)
	assert.Same(t, tags, w2.Tags)

	r, err := h.Relation("route")
	require.NoError(t, err)
	assert.Equal(t, []model.Member{
		{ID: "w", Type: model.WAY, Role: "forward"},
		{ID: "w2", Type: model.WAY, Role: "forward"},
		{ID: "a", Type: model.NODE, Role: "stop"},
	}, r.Members)

	assert.Equal(t, []model.ID{"w", "w2"}, h.ParentWays("b"))
	assert.NoError(t, h.Check())
}

func TestSplitWayEveryWay(t *testing.T) {
	g := load(t, append(nodes("a", "b", "c", "d", "e"),
		model.NewWay("-", []model.ID{"a", "b", "c"}, nil),
		model.NewWay("|", []model.ID{"d", "b", "e"}, nil),
	)...)

	h, err := action.NewSplitWay("b", action.WithNewWayIDs("x", "y")).Apply(g)
	require.NoError(t, err)

	assert.Equal(t, []model.ID{"a", "b"}, way(t, h, "-"))
	assert.Equal(t, []model.ID{"b", "c"}, way(t, h, "x"))
	assert.Equal(t, []model.ID{"d", "b"}, way(t, h, "|"))
	assert.Equal(t, []model.ID{"b", "e"}, way(t, h, "y"))
	assert.NoError(t, h.Check())
}

func TestSplitWayGeneratedIDs(t *testing.T) {
	g := load(t, append(nodes("a", "b", "c"),
		model.NewWay("w", []model.ID{"a", "b", "c"}, nil),
	)...)

	h, err := action.NewSplitWay("b", action.WithIDGenerator(model.NewSequence())).Apply(g)
	require.NoError(t, err)

	assert.Equal(t, []model.ID{"b", "c"}, way(t, h, "w-1"))
}

func TestSplitWayEnabled(t *testing.T) {
	g := load(t, append(nodes("a", "b", "c", "d"),
		model.NewWay("open", []model.ID{"a", "b", "c"}, nil),
		model.NewWay("loop", []model.ID{"a", "d", "c", "a"}, nil),
	)...)

	test_cases := []struct {
		name     string
		node     model.ID
		opts     []action.Option
		expected action.Reason
	}{
		{"interior", "b", nil, action.None},
		{"endpoint", "a", nil, action.NotSplittable},
		{"only on a closed way", "d", nil, action.NotSplittable},
		{"missing", "z", nil, action.MissingEntity},
		{"way", "open", nil, action.WrongEntityType},
		{"id taken", "b", []action.Option{action.WithNewWayIDs("loop")}, action.AlreadyExists},
		{"id repeated", "b", []action.Option{action.WithNewWayIDs("x", "x")}, action.AlreadyExists},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, action.NewSplitWay(tc.node, tc.opts...).Enabled(g))
		})
	}
}
