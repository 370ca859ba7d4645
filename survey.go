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
	"context"
	"log/slog"
	"slices"

	"github.com/destel/rill"

	"m4o.io/osmgraph/model"
)

// SharedVertices returns, in ascending order, every node that occurs at
// least twice over all ways: nodes joining two or more ways and nodes
// repeated within one way, including the closing node of a closed way.
//
// Candidates are inspected concurrently. The graph is immutable so the
// workers share it without locking.
func SharedVertices(ctx context.Context, g *Graph, opts ...SurveyOption) ([]model.ID, error) {
	cfg := defaultSurveyConfig

	for _, opt := range opts {
		opt(&cfg)
	}

	candidates := make([]model.ID, 0, g.parentWays.Len())
	g.parentWays.Each(func(child model.ID, _ []model.ID) bool {
		candidates = append(candidates, child)

		return true
	})

	shared := rill.Filter(rill.FromSlice(candidates, nil), int(max(cfg.nCPU, 1)), func(id model.ID) (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, err
		}

		return g.VertexOccurrences(id) >= 2, nil
	})

	ids, err := rill.ToSlice(shared)
	if err != nil {
		slog.Error("unable to survey shared vertices", "error", err)

		return nil, err
	}

	slices.Sort(ids)

	return ids, nil
}
