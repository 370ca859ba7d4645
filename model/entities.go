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

// Package model contains the immutable entity values held by an osmgraph
// Graph.
//
// Entities are never modified once constructed. Every method that "changes"
// an entity returns a new value; unchanged sub-objects (tags, location,
// info) are shared by identity with the receiver so that consumers can
// detect change with a pointer comparison.
package model

import (
	"slices"
	"time"
)

// UID is the primary key for a user.
type UID int32

// Info represents OSM metadata common to Node, Way, and Relation entities.
type Info struct {
	Version   int32
	UID       UID
	Timestamp time.Time
	Changeset int64
	User      string
	Visible   bool
}

// Entity is a Node, Way or Relation.
type Entity interface {
	isEntity() // prevents extensions

	GetID() ID

	GetType() EntityType

	GetTags() *Tags

	GetInfo() *Info
}

// ID is the primary key of an entity. IDs are ordered by byte-wise string
// comparison.
type ID string

// EntityType is an enumeration of entity types.
type EntityType int32

const (
	// NODE denotes that the member is a node.
	NODE EntityType = iota

	// WAY denotes that the member is a way.
	WAY

	// RELATION denotes that the member is a relation.
	RELATION
)

func (t EntityType) String() string {
	switch t {
	case NODE:
		return "node"
	case WAY:
		return "way"
	case RELATION:
		return "relation"
	default:
		return "unknown"
	}
}

// Node represents a specific point on the earth's surface defined by its
// location. Nodes are the vertices of ways.
type Node struct {
	ID   ID
	Tags *Tags
	Info *Info
	Loc  *Location
}

var _ Entity = (*Node)(nil)

// NewNode creates a node. The location and tags are held by reference.
func NewNode(id ID, loc *Location, tags *Tags) *Node {
	return &Node{ID: id, Loc: loc, Tags: tags}
}

func (n *Node) isEntity() {}

func (n *Node) GetID() ID {
	return n.ID
}

func (n *Node) GetType() EntityType {
	return NODE
}

func (n *Node) GetTags() *Tags {
	return n.Tags
}

func (n *Node) GetInfo() *Info {
	return n.Info
}

// WithID returns a copy of the node under a different id. Location, tags
// and info are shared.
func (n *Node) WithID(id ID) *Node {
	c := *n
	c.ID = id

	return &c
}

// WithLoc returns a copy of the node at loc.
func (n *Node) WithLoc(loc *Location) *Node {
	c := *n
	c.Loc = loc

	return &c
}

// WithTags returns a copy of the node carrying tags.
func (n *Node) WithTags(tags *Tags) *Node {
	c := *n
	c.Tags = tags

	return &c
}

// Way is an ordered list of nodes that define a polyline. The same node may
// appear more than once; a way whose first and last node are the same is
// closed.
//
// NodeIDs must be treated as read-only.
type Way struct {
	ID      ID
	Tags    *Tags
	Info    *Info
	NodeIDs []ID
}

var _ Entity = (*Way)(nil)

// NewWay creates a way. nodeIDs is copied.
func NewWay(id ID, nodeIDs []ID, tags *Tags) *Way {
	return &Way{ID: id, NodeIDs: slices.Clone(nodeIDs), Tags: tags}
}

func (w *Way) isEntity() {}

func (w *Way) GetID() ID {
	return w.ID
}

func (w *Way) GetType() EntityType {
	return WAY
}

func (w *Way) GetTags() *Tags {
	return w.Tags
}

func (w *Way) GetInfo() *Info {
	return w.Info
}

// First returns the first node id, or "" for an empty way.
func (w *Way) First() ID {
	if len(w.NodeIDs) == 0 {
		return ""
	}

	return w.NodeIDs[0]
}

// Last returns the last node id, or "" for an empty way.
func (w *Way) Last() ID {
	if len(w.NodeIDs) == 0 {
		return ""
	}

	return w.NodeIDs[len(w.NodeIDs)-1]
}

// IsClosed reports whether the way begins and ends at the same node.
func (w *Way) IsClosed() bool {
	return len(w.NodeIDs) > 1 && w.First() == w.Last()
}

// Contains reports whether id is one of the way's nodes.
func (w *Way) Contains(id ID) bool {
	return slices.Contains(w.NodeIDs, id)
}

// IndexOf returns the index of the first occurrence of id, or -1.
func (w *Way) IndexOf(id ID) int {
	return slices.Index(w.NodeIDs, id)
}

// Occurrences counts how often id appears in the way. The shared vertex of
// a closed way counts twice.
func (w *Way) Occurrences(id ID) int {
	var n int

	for _, nid := range w.NodeIDs {
		if nid == id {
			n++
		}
	}

	return n
}

// WithNodeIDs returns a copy of the way with a new node list. nodeIDs is
// copied.
func (w *Way) WithNodeIDs(nodeIDs []ID) *Way {
	c := *w
	c.NodeIDs = slices.Clone(nodeIDs)

	return &c
}

// WithTags returns a copy of the way carrying tags.
func (w *Way) WithTags(tags *Tags) *Way {
	c := *w
	c.Tags = tags

	return &c
}

// ReplaceNode returns a copy of the way with every occurrence of old
// replaced by replacement. Consecutive duplicates produced by the
// replacement are collapsed.
func (w *Way) ReplaceNode(old, replacement ID) *Way {
	nodeIDs := make([]ID, 0, len(w.NodeIDs))

	for _, id := range w.NodeIDs {
		if id == old {
			id = replacement
		}

		if len(nodeIDs) > 0 && nodeIDs[len(nodeIDs)-1] == id {
			continue
		}

		nodeIDs = append(nodeIDs, id)
	}

	c := *w
	c.NodeIDs = nodeIDs

	return &c
}

// RemoveNode returns a copy of the way without any occurrence of id.
// Consecutive duplicates left behind are collapsed and a closed way stays
// closed.
func (w *Way) RemoveNode(id ID) *Way {
	closed := w.IsClosed()
	nodeIDs := make([]ID, 0, len(w.NodeIDs))

	for _, nid := range w.NodeIDs {
		if nid == id {
			continue
		}

		if len(nodeIDs) > 0 && nodeIDs[len(nodeIDs)-1] == nid {
			continue
		}

		nodeIDs = append(nodeIDs, nid)
	}

	if closed && len(nodeIDs) > 0 && nodeIDs[0] != nodeIDs[len(nodeIDs)-1] {
		nodeIDs = append(nodeIDs, nodeIDs[0])
	}

	c := *w
	c.NodeIDs = nodeIDs

	return &c
}

// Reverse returns a copy of the way with its node order reversed.
func (w *Way) Reverse() *Way {
	nodeIDs := slices.Clone(w.NodeIDs)
	slices.Reverse(nodeIDs)

	c := *w
	c.NodeIDs = nodeIDs

	return &c
}

// IsDegenerate reports whether the way has fewer than two distinct nodes.
func (w *Way) IsDegenerate() bool {
	for _, id := range w.NodeIDs {
		if id != w.First() {
			return false
		}
	}

	return true
}

// Member represents an entity that participates in a relation.
type Member struct {
	ID   ID
	Type EntityType
	Role string
}

// Relation is a multipurpose data structure that documents a relationship
// between two or more entities (nodes, ways, and/or other relations).
//
// Members must be treated as read-only.
type Relation struct {
	ID      ID
	Tags    *Tags
	Info    *Info
	Members []Member
}

var _ Entity = (*Relation)(nil)

// NewRelation creates a relation. members is copied.
func NewRelation(id ID, members []Member, tags *Tags) *Relation {
	return &Relation{ID: id, Members: slices.Clone(members), Tags: tags}
}

func (r *Relation) isEntity() {}

func (r *Relation) GetID() ID {
	return r.ID
}

func (r *Relation) GetType() EntityType {
	return RELATION
}

func (r *Relation) GetTags() *Tags {
	return r.Tags
}

func (r *Relation) GetInfo() *Info {
	return r.Info
}

// WithTags returns a copy of the relation carrying tags.
func (r *Relation) WithTags(tags *Tags) *Relation {
	c := *r
	c.Tags = tags

	return &c
}

// WithMembers returns a copy of the relation with a new member list.
// members is copied.
func (r *Relation) WithMembers(members []Member) *Relation {
	c := *r
	c.Members = slices.Clone(members)

	return &c
}

// IndexOfMember returns the index of the first member referencing id, or -1.
func (r *Relation) IndexOfMember(id ID) int {
	return slices.IndexFunc(r.Members, func(m Member) bool { return m.ID == id })
}

// ReplaceMember returns a copy of the relation with every member
// referencing old pointing at replacement instead. Roles are kept.
func (r *Relation) ReplaceMember(old ID, replacement ID) *Relation {
	members := slices.Clone(r.Members)

	for i := range members {
		if members[i].ID == old {
			members[i].ID = replacement
		}
	}

	c := *r
	c.Members = members

	return &c
}

// RemoveMember returns a copy of the relation without any member
// referencing id.
func (r *Relation) RemoveMember(id ID) *Relation {
	c := *r
	c.Members = slices.DeleteFunc(slices.Clone(r.Members), func(m Member) bool { return m.ID == id })

	return &c
}

// InsertMember returns a copy of the relation with m inserted at index i.
func (r *Relation) InsertMember(i int, m Member) *Relation {
	c := *r
	c.Members = slices.Insert(slices.Clone(r.Members), i, m)

	return &c
}

// References returns the ids an entity refers to: the node list of a way
// (with repeats), the member ids of a relation, nothing for a node.
func References(e Entity) []ID {
	switch e := e.(type) {
	case *Way:
		return e.NodeIDs
	case *Relation:
		ids := make([]ID, len(e.Members))
		for i, m := range e.Members {
			ids[i] = m.ID
		}

		return ids
	default:
		return nil
	}
}
