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

import "errors"

var (
	// ErrNotFound is returned when an id has no entity in the graph.
	ErrNotFound = errors.New("entity not found")

	// ErrEntityType is returned when an id names an entity of another type
	// than the one asked for.
	ErrEntityType = errors.New("unexpected entity type")

	// ErrPreconditionViolation is returned when an operation would break a
	// graph invariant, such as removing an entity that is still referenced
	// or applying a disabled action.
	ErrPreconditionViolation = errors.New("precondition violation")

	// ErrDanglingReference is returned by Check when a way or relation
	// references an id that does not resolve, or when the reverse indices
	// disagree with the forward references.
	ErrDanglingReference = errors.New("dangling reference")
)
