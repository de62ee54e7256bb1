// SPDX-License-Identifier: MIT

package converters

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/katalvlaran/spectral/core"
)

// ErrGraphNil is returned for a nil graph.
var ErrGraphNil = errors.New("converters: graph is nil")

// WriteGML writes g as an undirected GML graph. Live node ids are kept as
// GML ids so that target and perturbed exports of the same model line up.
func WriteGML(w io.Writer, g *core.Graph, labels []string) error {
	if g == nil {
		return ErrGraphNil
	}
	out := bufio.NewWriter(w)

	out.WriteString("graph [\n")
	out.WriteString("  directed 0\n")
	for _, id := range g.Nodes() {
		out.WriteString("  node [\n")
		out.WriteString("    id ")
		out.WriteString(strconv.Itoa(id))
		out.WriteString("\n    label ")
		out.WriteString(strconv.Quote(label(id, labels)))
		out.WriteString("\n  ]\n")
	}
	for _, e := range g.Edges() {
		out.WriteString("  edge [\n")
		out.WriteString("    source ")
		out.WriteString(strconv.Itoa(e.U))
		out.WriteString("\n    target ")
		out.WriteString(strconv.Itoa(e.V))
		out.WriteString("\n  ]\n")
	}
	out.WriteString("]\n")

	return out.Flush()
}

// WriteGMLFile writes g to path.
func WriteGMLFile(path string, g *core.Graph, labels []string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := WriteGML(f, g, labels); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}

	return f.Close()
}

func label(id int, labels []string) string {
	if id >= 0 && id < len(labels) {
		return labels[id]
	}
	return strconv.Itoa(id)
}
