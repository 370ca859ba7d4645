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
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

func TestSharedVertices(t *testing.T) {
	g, err := osmgraph.Load(
		model.NewNode("a", nil, nil),
		model.NewNode("b", nil, nil),
		model.NewNode("c", nil, nil),
		model.NewNode("d", nil, nil),
		model.NewNode("e", nil, nil),
		model.NewNode("f", nil, nil),
		model.NewWay("-", []model.ID{"a", "b", "c"}, nil),
		model.NewWay("|", []model.ID{"d", "b"}, nil),
		model.NewWay("o", []model.ID{"e", "f", "c", "e"}, nil),
	)
	require.NoError(t, err)

	for _, n := range []uint16{1, 4} {
		ids, err := osmgraph.SharedVertices(context.Background(), g, osmgraph.WithNCpus(n))
		require.NoError(t, err)
		assert.Equal(t, []model.ID{"b", "c", "e"}, ids)
	}
}

func TestSharedVerticesCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := osmgraph.SharedVertices(ctx, crossing(t))
	assert.ErrorIs(t, err, context.Canceled)
}

func TestDefaultNCpu(t *testing.T) {
	assert.GreaterOrEqual(t, osmgraph.DefaultNCpu(), uint16(1))
}
