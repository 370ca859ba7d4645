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

package model

import (
	"strconv"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDGenerator allocates ids for newly created entities.
type IDGenerator interface {
	Next(t EntityType) ID
}

// DefaultIDs is the process wide generator used when an action is not given
// one.
var DefaultIDs IDGenerator = NewSequence()

// Prefix returns the id prefix of an entity type: "n", "w" or "r".
func (t EntityType) Prefix() string {
	switch t {
	case NODE:
		return "n"
	case WAY:
		return "w"
	case RELATION:
		return "r"
	default:
		return "x"
	}
}

// Sequence hands out negative ids per entity type ("n-1", "n-2", "w-1"),
// the OSM convention for entities that have not been uploaded yet. It is
// safe for concurrent use.
type Sequence struct {
	next [3]atomic.Int64
}

// NewSequence creates a sequence starting at -1 for every type.
func NewSequence() *Sequence {
	return &Sequence{}
}

func (s *Sequence) Next(t EntityType) ID {
	var n int64

	if t >= NODE && t <= RELATION {
		n = s.next[t].Add(1)
	} else {
		n = s.next[NODE].Add(1)
	}

	return ID(t.Prefix() + strconv.FormatInt(-n, 10))
}

// UUIDs allocates ids of the form "n-<uuid>". Use it when edits made in
// different processes are merged later.
type UUIDs struct{}

func (UUIDs) Next(t EntityType) ID {
	return ID(t.Prefix() + "-" + uuid.NewString())
}
