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

// Package action contains the edits that can be made to an osmgraph.Graph.
//
// An Action is a pure transform from one graph to the next, guarded by
// Enabled. Enabled answers with a Reason; None means the action can be
// applied. Apply never modifies its input and refuses to run when the
// action is disabled.
package action

import (
	"errors"
	"fmt"

	"m4o.io/osmgraph"
)

// Action is an edit of a graph.
type Action interface {
	// Enabled reports why the action cannot be applied to g, or None.
	Enabled(g *osmgraph.Graph) Reason

	// Apply returns the edited graph. It returns a *DisabledError when
	// Enabled(g) is not None.
	Apply(g *osmgraph.Graph) (*osmgraph.Graph, error)
}

// Reason explains why an action is disabled. The set of reasons is closed
// and their String values are stable, so a UI may key messages on them.
type Reason int

const (
	// None means the action is enabled.
	None Reason = iota

	// NotEnoughRelatedWays means the vertex is not shared: it occurs fewer
	// than two times over all ways.
	NotEnoughRelatedWays

	// MissingEntity means an entity the action needs, or references, is not
	// in the graph.
	MissingEntity

	// WrongEntityType means an id names an entity of the wrong type.
	WrongEntityType

	// AlreadyExists means an id the action would create is taken.
	AlreadyExists

	// TooFewNodes means fewer than two distinct nodes were given.
	TooFewNodes

	// NotSplittable means the node is not an interior vertex of any open way.
	NotSplittable

	// Unchanged means applying the action would not change the graph.
	Unchanged

	// Inconsistent means the graph does not satisfy its own invariants.
	Inconsistent
)

func (r Reason) String() string {
	switch r {
	case None:
		return "none"
	case NotEnoughRelatedWays:
		return "not_enough_related_ways"
	case MissingEntity:
		return "missing_entity"
	case WrongEntityType:
		return "wrong_entity_type"
	case AlreadyExists:
		return "already_exists"
	case TooFewNodes:
		return "too_few_nodes"
	case NotSplittable:
		return "not_splittable"
	case Unchanged:
		return "unchanged"
	case Inconsistent:
		return "inconsistent"
	default:
		return fmt.Sprintf("reason(%d)", int(r))
	}
}

// DisabledError is returned by Apply when the action is disabled. It
// matches osmgraph.ErrPreconditionViolation under errors.Is.
type DisabledError struct {
	Action string
	Reason Reason
}

func (e *DisabledError) Error() string {
	return fmt.Sprintf("%s is disabled: %s", e.Action, e.Reason)
}

func (e *DisabledError) Is(target error) bool {
	return target == osmgraph.ErrPreconditionViolation
}

// ReasonOf extracts the Reason from an error returned by Apply. Other
// errors map to Inconsistent and nil to None.
func ReasonOf(err error) Reason {
	if err == nil {
		return None
	}

	var de *DisabledError
	if errors.As(err, &de) {
		return de.Reason
	}

	return Inconsistent
}

// reasonFor maps a lookup error from the graph to a Reason.
func reasonFor(err error) Reason {
	switch {
	case err == nil:
		return None
	case errors.Is(err, osmgraph.ErrNotFound):
		return MissingEntity
	case errors.Is(err, osmgraph.ErrEntityType):
		return WrongEntityType
	default:
		return Inconsistent
	}
}

// previewer is implemented by actions that create entities. preview behaves
// like Apply but draws no ids from the configured IDGenerator.
type previewer interface {
	preview(g *osmgraph.Graph) (*osmgraph.Graph, error)
}

// sequence applies actions one after another.
type sequence struct {
	actions []Action
}

// Sequence composes actions. The composite is enabled when every action is
// enabled on the graph produced by the ones before it.
func Sequence(actions ...Action) Action {
	return &sequence{actions: actions}
}

func (s *sequence) Enabled(g *osmgraph.Graph) Reason {
	_, err := s.preview(g)

	return ReasonOf(err)
}

func (s *sequence) Apply(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return s.run(g, false)
}

func (s *sequence) preview(g *osmgraph.Graph) (*osmgraph.Graph, error) {
	return s.run(g, true)
}

func (s *sequence) run(g *osmgraph.Graph, dry bool) (*osmgraph.Graph, error) {
	for i, a := range s.actions {
		apply := a.Apply
		if p, ok := a.(previewer); ok && dry {
			apply = p.preview
		}

		next, err := apply(g)
		if err != nil {
			return nil, fmt.Errorf("step %d of sequence: %w", i+1, err)
		}

		g = next
	}

	return g, nil
}
