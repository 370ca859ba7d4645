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

package shared

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"m4o.io/osmgraph"
	"m4o.io/osmgraph/cmd/osmgraph/cli"
)

func TestRender(t *testing.T) {
	g, err := cli.ReadGraph("../../../testdata/crossing.json", false)
	require.NoError(t, err)

	ids, err := osmgraph.SharedVertices(context.Background(), g)
	require.NoError(t, err)

	buf := &bytes.Buffer{}

	saved := out

	defer func() { out = saved }()

	out = buf

	render(g, ids, false)
	assert.Equal(t, "b\nc\ne\n", buf.String())

	buf.Reset()

	render(g, ids, true)
	assert.Equal(t, "b\t2\t[- |]\nc\t3\t[- o]\ne\t2\t[o |]\n", buf.String())
}
