// SPDX-License-Identifier: MIT

package converters

import (
	"bufio"
	"io"

	"github.com/katalvlaran/spectral/core"
)

// WriteEdgeList writes one "u v" line per edge, in ascending edge order.
func WriteEdgeList(w io.Writer, g *core.Graph, labels []string) error {
	if g == nil {
		return ErrGraphNil
	}
	out := bufio.NewWriter(w)
	for _, e := range g.Edges() {
		out.WriteString(label(e.U, labels))
		out.WriteByte(' ')
		out.WriteString(label(e.V, labels))
		out.WriteByte('\n')
	}

	return out.Flush()
}
