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

package osmgraph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

func TestExtent(t *testing.T) {
	g, err := osmgraph.Load(
		model.NewNode("a", model.NewLocation(-0.5, 51.2), nil),
		model.NewNode("b", model.NewLocation(0.3, 51.6), nil),
		model.NewNode("c", nil, nil),
		model.NewWay("w", []model.ID{"a", "b", "c"}, nil),
		model.NewRelation("r", []model.Member{
			{ID: "w", Type: model.WAY},
			{ID: "q", Type: model.RELATION},
		}, nil),
		model.NewRelation("q", []model.Member{{ID: "r", Type: model.RELATION}}, nil),
	)
	require.NoError(t, err)

	expected := &model.BoundingBox{Top: 51.6, Left: -0.5, Bottom: 51.2, Right: 0.3}

	for _, id := range []model.ID{"w", "r", "q"} {
		bbox, err := g.Extent(id)
		require.NoError(t, err)
		assert.Equal(t, expected.String(), bbox.String(), id)
	}

	bbox, err := g.Extent("c")
	require.NoError(t, err)
	assert.True(t, bbox.IsEmpty())

	_, err = g.Extent("z")
	assert.ErrorIs(t, err, osmgraph.ErrNotFound)
}
