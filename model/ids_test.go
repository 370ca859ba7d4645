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
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"m4o.io/osmgraph/model"
)

func TestSequence(t *testing.T) {
	s := model.NewSequence()

	assert.Equal(t, model.ID("n-1"), s.Next(model.NODE))
	assert.Equal(t, model.ID("n-2"), s.Next(model.NODE))
	assert.Equal(t, model.ID("w-1"), s.Next(model.WAY))
	assert.Equal(t, model.ID("r-1"), s.Next(model.RELATION))
}

func TestUUIDs(t *testing.T) {
	var gen model.UUIDs

	a := gen.Next(model.WAY)
	b := gen.Next(model.WAY)

	assert.True(t, strings.HasPrefix(string(a), "w-"))
	assert.Len(t, string(a), len("w-")+36)
	assert.NotEqual(t, a, b)
}
