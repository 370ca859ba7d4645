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

package index

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmgraph/model"
)

func TestParentsAddRemove(t *testing.T) {
	p0 := NewParents()
	p1 := p0.Add("a", "w2").Add("a", "w1")
	p2 := p1.Remove("a", "w2")

	assert.Equal(t, 0, p0.Len())
	assert.Equal(t, []model.ID{"w1", "w2"}, p1.Get("a"))
	assert.Equal(t, []model.ID{"w1"}, p2.Get("a"))
	assert.True(t, p1.Has("a", "w2"))
	assert.False(t, p2.Has("a", "w2"))

	p3 := p2.Remove("a", "w1")
	assert.Equal(t, 0, p3.Len())
	assert.Nil(t, p3.Get("a"))
}

func TestParentsAddIsIdempotent(t *testing.T) {
	p := NewParents().Add("a", "w1")

	assert.Equal(t, p, p.Add("a", "w1"))
	assert.Equal(t, p, p.Remove("a", "w9"))
	assert.Equal(t, p, p.Remove("z", "w1"))
}

func TestParentsUpdate(t *testing.T) {
	p := NewParents().Update("w", []model.ID{}, []model.ID{"a", "b", "a"})

	assert.Equal(t, []model.ID{"w"}, p.Get("a"))
	assert.Equal(t, []model.ID{"w"}, p.Get("b"))
	assert.Equal(t, 1, p.Count("a"))

	p = p.Update("w", []model.ID{"a", "b", "a"}, []model.ID{"b", "c"})

	assert.Nil(t, p.Get("a"))
	assert.Equal(t, []model.ID{"w"}, p.Get("b"))
	assert.Equal(t, []model.ID{"w"}, p.Get("c"))
	assert.Equal(t, 2, p.Len())
}

func TestBuild(t *testing.T) {
	p := Build(map[model.ID][]model.ID{
		"b": {"|", "-"},
		"a": {"-"},
	})

	assert.Equal(t, []model.ID{"-", "|"}, p.Get("b"))
	assert.Equal(t, []model.ID{"-"}, p.Get("a"))

	seen := make(map[model.ID][]model.ID)
	p.Each(func(child model.ID, parents []model.ID) bool {
		seen[child] = parents

		return true
	})

	assert.Len(t, seen, 2)
}

func TestComparer(t *testing.T) {
	var c Comparer

	assert.Equal(t, -1, c.Compare("-", "|"))
	assert.Equal(t, 1, c.Compare("w2", "w10"))
	assert.Equal(t, 0, c.Compare("a", "a"))
}

func TestHasher(t *testing.T) {
	var h Hasher

	assert.Equal(t, h.Hash("n1"), h.Hash("n1"))
	assert.True(t, h.Equal("n1", "n1"))
	assert.False(t, h.Equal("n1", "n2"))
}
