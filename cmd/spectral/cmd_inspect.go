// SPDX-License-Identifier: MIT

package main

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/katalvlaran/spectral/bfs"
	"github.com/katalvlaran/spectral/builder"
	"github.com/katalvlaran/spectral/converters"
	"github.com/katalvlaran/spectral/matrix"
	"github.com/katalvlaran/spectral/model"
	"github.com/katalvlaran/spectral/spectral"
	"github.com/spf13/cobra"
)

type inspection struct {
	Name       string      `json:"name"`
	Nodes      int         `json:"nodes"`
	Edges      int         `json:"edges"`
	Components int         `json:"components"`
	Spectrum   []float64   `json:"spectrum"`
	BulkIndex  int         `json:"bulk_index"`
	Centrality []float64   `json:"centrality"`
	Entropy    float64     `json:"centrality_entropy"`
	Matrix     [][]float64 `json:"matrix,omitempty"`
}

func newInspectCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the spectrum, bulk index and centrality of a family instance",
		RunE: func(cmd *cobra.Command, args []string) error {
			spec, err := specFromFlags(cmd)
			if err != nil {
				return err
			}
			seed, _ := cmd.Flags().GetInt64("seed")
			kindName, _ := cmd.Flags().GetString("matrix")
			showMatrix, _ := cmd.Flags().GetBool("show-matrix")
			gmlPath, _ := cmd.Flags().GetString("gml")
			edgeListPath, _ := cmd.Flags().GetString("edgelist")
			jsonOut, _ := cmd.Flags().GetBool("json")

			kind, err := matrix.ParseKind(kindName)
			if err != nil {
				return err
			}
			solver, err := a.cfg.Solver()
			if err != nil {
				return err
			}
			m, err := model.New(spec,
				model.WithAnalyzer(spectral.NewAnalyzer(spectral.WithSolver(solver))),
				model.WithBuilderOptions(builder.WithSeed(seed)),
				model.WithLogger(a.logger),
			)
			if err != nil {
				return err
			}

			in, err := inspect(m, kind, showMatrix)
			if err != nil {
				return err
			}
			if err := exportGraph(m, gmlPath, edgeListPath); err != nil {
				return err
			}

			if jsonOut {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(in)
			}
			printInspection(cmd, in, kind)
			return nil
		},
	}

	addFamilyFlags(cmd)
	cmd.Flags().Int64("seed", 0, "Seed for random families")
	cmd.Flags().String("matrix", "laplacian", "Matrix for the spectrum: laplacian or adjacency")
	cmd.Flags().Bool("show-matrix", false, "Print the matrix itself")
	cmd.Flags().String("gml", "", "Write the graph as GML to this file")
	cmd.Flags().String("edgelist", "", "Write the graph as an edge list to this file")
	cmd.Flags().Bool("json", false, "Output as JSON")

	return cmd
}

func inspect(m *model.Model, kind matrix.Kind, withMatrix bool) (inspection, error) {
	g, err := m.Graph(model.Target)
	if err != nil {
		return inspection{}, err
	}
	spectrum, err := m.Spectrum(model.Target, kind)
	if err != nil {
		return inspection{}, err
	}
	components, err := bfs.CountComponents(g)
	if err != nil {
		return inspection{}, err
	}
	ref := m.Reference()
	in := inspection{
		Name:       m.Name(),
		Nodes:      g.NodeCount(),
		Edges:      g.EdgeCount(),
		Components: components,
		Spectrum:   spectrum,
		BulkIndex:  spectral.BulkIndex(spectrum),
		Centrality: ref.Centrality,
		Entropy:    spectral.NormalizedEntropy(ref.Centrality),
	}
	if withMatrix {
		mat, err := m.Matrix(model.Target, kind)
		if err != nil {
			return inspection{}, err
		}
		in.Matrix = mat.ToRows()
	}

	return in, nil
}

func exportGraph(m *model.Model, gmlPath, edgeListPath string) error {
	g, err := m.Graph(model.Target)
	if err != nil {
		return err
	}
	if gmlPath != "" {
		if err := converters.WriteGMLFile(gmlPath, g, m.Labels()); err != nil {
			return err
		}
	}
	if edgeListPath != "" {
		f, err := os.Create(edgeListPath)
		if err != nil {
			return err
		}
		if err := converters.WriteEdgeList(f, g, m.Labels()); err != nil {
			f.Close()
			return err
		}
		return f.Close()
	}

	return nil
}

func printInspection(cmd *cobra.Command, in inspection, kind matrix.Kind) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s: %d nodes, %d edges, %d components\n", in.Name, in.Nodes, in.Edges, in.Components)
	fmt.Fprintf(out, "%s spectrum: %s\n", kind, formatFloats(in.Spectrum))
	fmt.Fprintf(out, "bulk index: %d\n", in.BulkIndex)
	fmt.Fprintf(out, "centrality: %s (entropy %.4f)\n", formatFloats(in.Centrality), in.Entropy)
	if in.Matrix != nil {
		fmt.Fprintf(out, "%s matrix:\n", kind)
		for _, row := range in.Matrix {
			fmt.Fprintf(out, "  %s\n", formatFloats(row))
		}
	}
}

func formatFloats(v []float64) string {
	parts := make([]string, len(v))
	for i, x := range v {
		parts[i] = fmt.Sprintf("%.4g", x)
	}

	return "[" + strings.Join(parts, " ") + "]"
}
