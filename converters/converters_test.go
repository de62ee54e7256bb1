// SPDX-License-Identifier: MIT
package converters_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/converters"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteGML_Star(t *testing.T) {
	t.Parallel()

	g, labels, err := builder.Build(builder.StarSpec{Leaves: 2})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, converters.WriteGML(&buf, g, labels))

	want := `graph [
  directed 0
  node [
    id 0
    label "Center"
  ]
  node [
    id 1
    label "1"
  ]
  node [
    id 2
    label "2"
  ]
  edge [
    source 0
    target 1
  ]
  edge [
    source 0
    target 2
  ]
]
`
	assert.Equal(t, want, buf.String())
}

func TestWriteGML_KeepsIDsAfterRemoval(t *testing.T) {
	t.Parallel()

	g, _, err := builder.Build(builder.PathSpec{Nodes: 4})
	require.NoError(t, err)
	_, err = g.RemoveNode(0)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "p.gml")
	require.NoError(t, converters.WriteGMLFile(path, g, nil))
	body, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.NotContains(t, string(body), "id 0\n")
	assert.Equal(t, 3, strings.Count(string(body), "node ["))
	assert.Equal(t, 2, strings.Count(string(body), "edge ["))
}

func TestWriteEdgeList(t *testing.T) {
	t.Parallel()

	g, labels, err := builder.Build(builder.CycleSpec{Nodes: 3})
	require.NoError(t, err)
	var buf bytes.Buffer
	require.NoError(t, converters.WriteEdgeList(&buf, g, nil))
	assert.Equal(t, "0 1\n0 2\n1 2\n", buf.String())

	buf.Reset()
	require.NoError(t, converters.WriteEdgeList(&buf, g, labels))
	assert.Equal(t, 3, strings.Count(buf.String(), "\n"))

	require.ErrorIs(t, converters.WriteEdgeList(&buf, nil, nil), converters.ErrGraphNil)
	require.ErrorIs(t, converters.WriteGML(&buf, nil, nil), converters.ErrGraphNil)
}
