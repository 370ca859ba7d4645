// Copyright 2017-26 the original author or authors.
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

package model

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/golang/geo/s1"
)

// Degrees is the decimal degree representation of a longitude or latitude.
type Degrees float64

// Angle represents a 1D angle in radians.
type Angle s1.Angle

// Epsilon is an enumeration of precisions that can be used when comparing angles.
type Epsilon float64

// Epsilons for EqualWithin, in radians.
const (
	E5 Epsilon = 1e-5
	E6 Epsilon = 1e-6
	E7 Epsilon = 1e-7
	E8 Epsilon = 1e-8
	E9 Epsilon = 1e-9

	Half = 0.5
)

// Angle returns the equivalent s1.Angle.
func (d Degrees) Angle() Angle { return Angle(float64(d) * float64(s1.Degree)) }

func (d Degrees) MarshalJSON() ([]byte, error) {
	return []byte(ftoa(float64(d))), nil
}

// EqualWithin checks if two angles are within a specific epsilon.
func (d Angle) EqualWithin(o Angle, eps Epsilon) bool {
	return round(float64(d)/float64(eps)) == round(float64(o)/float64(eps))
}

// round returns the value rounded to nearest, halves away from zero.
func round(val float64) float64 {
	if val < 0 {
		return math.Trunc(val - Half)
	}

	return math.Trunc(val + Half)
}

// ftoa formats a float with at most six decimals and no trailing zeros.
func ftoa(f float64) string {
	s := strconv.FormatFloat(f, 'f', 6, 64)
	s = strings.TrimSuffix(strings.TrimRight(s, "0"), ".")

	if s == "" || s == "-" {
		return "0"
	}

	return s
}

// Location is an immutable longitude/latitude pair. Locations are shared by
// pointer between entities derived from one another.
type Location struct {
	Lon Degrees
	Lat Degrees
}

// NewLocation creates a location.
func NewLocation(lon, lat Degrees) *Location {
	return &Location{Lon: lon, Lat: lat}
}

// EqualWithin checks if two locations are within a specific epsilon, in
// radians. E9 is about 6mm on the ground.
func (l *Location) EqualWithin(o *Location, eps Epsilon) bool {
	return l.Lon.Angle().EqualWithin(o.Lon.Angle(), eps) && l.Lat.Angle().EqualWithin(o.Lat.Angle(), eps)
}

func (l *Location) String() string {
	return fmt.Sprintf("[%s, %s]", ftoa(float64(l.Lon)), ftoa(float64(l.Lat)))
}
