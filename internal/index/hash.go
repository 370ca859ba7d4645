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
	"github.com/cespare/xxhash/v2"
	"golang.org/x/exp/constraints"

	"m4o.io/osmgraph/model"
)

// Hasher hashes entity ids for immutable.Map.
type Hasher struct{}

func (Hasher) Hash(key model.ID) uint32 {
	h := xxhash.Sum64String(string(key))

	return uint32(h ^ (h >> 32))
}

func (Hasher) Equal(a, b model.ID) bool {
	return a == b
}

// Comparer orders entity ids for immutable.SortedMap.
type Comparer struct{}

func (Comparer) Compare(a, b model.ID) int {
	return compare(a, b)
}

func compare[T constraints.Ordered](a, b T) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}
