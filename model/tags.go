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
	"maps"
	"slices"
	"strings"
)

// Tags is an immutable set of key/value pairs. A nil *Tags is empty.
type Tags struct {
	m map[string]string
}

// NewTags creates a Tags value holding a copy of m.
func NewTags(m map[string]string) *Tags {
	return &Tags{m: maps.Clone(m)}
}

// Len returns the number of keys.
func (t *Tags) Len() int {
	if t == nil {
		return 0
	}

	return len(t.m)
}

// Get returns the value of key and whether it is set.
func (t *Tags) Get(key string) (string, bool) {
	if t == nil {
		return "", false
	}

	v, ok := t.m[key]

	return v, ok
}

// Has reports whether key is set.
func (t *Tags) Has(key string) bool {
	_, ok := t.Get(key)

	return ok
}

// Keys returns the keys in sorted order.
func (t *Tags) Keys() []string {
	if t == nil {
		return nil
	}

	return slices.Sorted(maps.Keys(t.m))
}

// Map returns a copy of the tags as a plain map.
func (t *Tags) Map() map[string]string {
	if t == nil {
		return map[string]string{}
	}

	return maps.Clone(t.m)
}

// With returns new tags with key set to value.
func (t *Tags) With(key, value string) *Tags {
	m := t.Map()
	m[key] = value

	return &Tags{m: m}
}

// Without returns new tags with key removed. The receiver is returned when
// key is not set.
func (t *Tags) Without(key string) *Tags {
	if !t.Has(key) {
		return t
	}

	m := t.Map()
	delete(m, key)

	return &Tags{m: m}
}

// Merge returns the union of both tag sets. On conflicting keys the values
// are joined with ";" unless they are equal. When o adds nothing the
// receiver is returned.
func (t *Tags) Merge(o *Tags) *Tags {
	if o.Len() == 0 {
		return t
	}

	var changed bool

	m := t.Map()
	for k, v := range o.m {
		cur, ok := m[k]
		switch {
		case !ok:
			m[k] = v
			changed = true
		case cur != v && !slices.Contains(strings.Split(cur, ";"), v):
			m[k] = cur + ";" + v
			changed = true
		}
	}

	if !changed {
		return t
	}

	return &Tags{m: m}
}

// Equal reports whether both tag sets hold the same pairs.
func (t *Tags) Equal(o *Tags) bool {
	if t.Len() != o.Len() {
		return false
	}

	if t.Len() == 0 {
		return true
	}

	return maps.Equal(t.m, o.m)
}

func (t *Tags) String() string {
	var sb strings.Builder

	sb.WriteByte('{')

	for i, k := range t.Keys() {
		if i > 0 {
			sb.WriteString(", ")
		}

		sb.WriteString(k)
		sb.WriteByte('=')
		sb.WriteString(t.m[k])
	}

	sb.WriteByte('}')

	return sb.String()
}
