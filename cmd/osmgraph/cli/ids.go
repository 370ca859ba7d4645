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

package cli

import (
	"errors"
	"strings"

	"github.com/spf13/pflag"

	"m4o.io/osmgraph/model"
)

// -- model.ID Value
type idValue struct {
	value *model.ID
}

// NewIDValue creates a cobra Value object for an entity id. Blank ids are
// rejected.
func NewIDValue(def model.ID, p *model.ID) pflag.Value {
	v := &idValue{value: p}
	*v.value = def

	return v
}

func (v *idValue) Set(val string) error {
	val = strings.TrimSpace(val)
	if val == "" {
		return errors.New("blank entity id")
	}

	*v.value = model.ID(val)

	return nil
}

func (v *idValue) Type() string {
	return "id"
}

func (v *idValue) String() string {
	return string(*v.value)
}
