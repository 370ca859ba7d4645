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

package action

import (
	"m4o.io/osmgraph"
	"m4o.io/osmgraph/model"
)

// options provides optional configuration parameters for actions that
// create entities.
type options struct {
	newIDs []model.ID         // ids to give created entities, in order
	ids    model.IDGenerator // allocates ids once newIDs is exhausted
}

// Option configures an action.
type Option func(*options)

// WithNewNodeID sets the id of the node created by Disconnect.
func WithNewNodeID(id model.ID) Option {
	return func(o *options) {
		o.newIDs = []model.ID{id}
	}
}

// WithNewWayIDs sets the ids of the ways created by SplitWay, one per split
// way in ascending way id order.
func WithNewWayIDs(ids ...model.ID) Option {
	return func(o *options) {
		o.newIDs = append(o.newIDs, ids...)
	}
}

// WithIDGenerator lets you set where fresh ids come from. The default is
// model.DefaultIDs.
func WithIDGenerator(gen model.IDGenerator) Option {
	return func(o *options) {
		o.ids = gen
	}
}

func newOptions(opts []Option) options {
	cfg := options{ids: model.DefaultIDs}

	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// suppliedTaken reports whether a caller supplied id already exists or was
// supplied twice.
func (o *options) suppliedTaken(g *osmgraph.Graph) bool {
	seen := make(map[model.ID]struct{}, len(o.newIDs))

	for _, id := range o.newIDs {
		if _, ok := seen[id]; ok || g.HasEntity(id) {
			return true
		}

		seen[id] = struct{}{}
	}

	return false
}

// allocator hands out the ids of one Apply call.
type allocator struct {
	supplied []model.ID
	gen      model.IDGenerator
}

func (o *options) allocator() *allocator {
	return &allocator{supplied: o.newIDs, gen: o.ids}
}

// previewAllocator hands out throwaway ids from a private sequence, leaving
// the configured generator untouched.
func (o *options) previewAllocator() *allocator {
	return &allocator{supplied: o.newIDs, gen: model.NewSequence()}
}

// next returns the next supplied id, or a generated one not present in g.
func (a *allocator) next(g *osmgraph.Graph, t model.EntityType) model.ID {
	if len(a.supplied) > 0 {
		id := a.supplied[0]
		a.supplied = a.supplied[1:]

		return id
	}

	for {
		if id := a.gen.Next(t); !g.HasEntity(id) {
			return id
		}
	}
}
