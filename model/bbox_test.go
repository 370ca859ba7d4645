// Copyright 2017-25 the original author or authors.
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

func TestInitialBoundingBox(t *testing.T) {
	initial := model.InitialBoundingBox()
	assert.Equal(t, initial.Top, model.MinLat)
	assert.Equal(t, initial.Bottom, model.MaxLat)
	assert.Equal(t, initial.Right, model.MinLon)
	assert.Equal(t, initial.Left, model.MaxLon)
}

func TestBoundingBox_ExpandWithLatLng(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithLatLng(-45, 90)
	bbox.ExpandWithLatLng(45, -90)

	assert.Equal(t, &model.BoundingBox{Top: 45, Left: -90, Bottom: -45, Right: 90}, bbox)
}

func TestBoundingBox_ExpandWithBoundingBox(t *testing.T) {
	test_cases := []struct {
		name     string
		boxes    []*model.BoundingBox
		expected *model.BoundingBox
	}{
		{
			"disjoint",
			[]*model.BoundingBox{
				{Top: 45.0, Left: 70.0, Bottom: 20.0, Right: 90.0},
				{Top: 20.0, Left: -20.0, Bottom: -20.0, Right: 20.0},
				{Top: -25.0, Left: -90.0, Bottom: -45.0, Right: -70.0},
			},
			&model.BoundingBox{Top: 45, Left: -90, Bottom: -45, Right: 90},
		},
		{
			"nested",
			[]*model.BoundingBox{
				{Top: 10, Left: -10, Bottom: -10, Right: 10},
				{Top: 1, Left: -1, Bottom: -1, Right: 1},
			},
			&model.BoundingBox{Top: 10, Left: -10, Bottom: -10, Right: 10},
		},
		{
			"empty",
			[]*model.BoundingBox{model.InitialBoundingBox()},
			model.InitialBoundingBox(),
		},
	}

	for _, tc := range test_cases {
		t.Run(tc.name, func(t *testing.T) {
			bbox := model.InitialBoundingBox()
			for _, b := range tc.boxes {
				bbox.ExpandWithBoundingBox(b)
			}

			assert.Equal(t, tc.expected, bbox)
		})
	}
}

func TestBoundingBox_IsEmpty(t *testing.T) {
	bbox := model.InitialBoundingBox()
	assert.True(t, bbox.IsEmpty())

	bbox.ExpandWithLocation(model.NewLocation(-0.1, 51.5))
	assert.False(t, bbox.IsEmpty())
	assert.Equal(t, &model.BoundingBox{Top: 51.5, Left: -0.1, Bottom: 51.5, Right: -0.1}, bbox)
}

func TestBoundingBox_ExpandWithLocation(t *testing.T) {
	bbox := model.InitialBoundingBox()
	bbox.ExpandWithLocation(model.NewLocation(-90, 45))
	bbox.ExpandWithLocation(model.NewLocation(90, -45))

	assert.Equal(t, model.Degrees(45), bbox.Top)
	assert.Equal(t, model.Degrees(-45), bbox.Bottom)
	assert.Equal(t, model.Degrees(-90), bbox.Left)
	assert.Equal(t, model.Degrees(90), bbox.Right)
}

func TestBoundingBoxString(t *testing.T) {
	bbox := &model.BoundingBox{Top: 51.69344, Left: -0.511482, Bottom: 51.28554, Right: 0.335437}
	assert.Equal(t, "[(51.69344, -0.511482) (51.28554, 0.335437)]", bbox.String())
}
