package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
)

type Options struct {
	// Lists the cost vectors of all labels of a node instead of their count.
	Detailed bool
	// Draws only edges used by a settled label.
	TreeOnly bool
}

// Converts a one-to-all result into Graphviz DOT format.
//
// Nodes are named by their external id, the source is drawn doubled.
// Edges used by a settled label are drawn bold.
func ToDOT(g graph.IGraph, frontiers *mosp.Frontiers, opts Options) string {
	used := make(map[int32]struct{}, g.EdgeCount())
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		for _, label := range frontiers.Get(node) {
			if label.Edge >= 0 {
				used[label.Edge] = struct{}{}
			}
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		attrs := []string{fmt.Sprintf("label=%q", _NodeLabel(g, frontiers, node, opts.Detailed))}
		if node == frontiers.Source() {
			attrs = append(attrs, "peripheries=2")
		} else if !frontiers.IsReachable(node) {
			attrs = append(attrs, "fillcolor=lightgrey")
		}
		fmt.Fprintf(&buf, "  \"%d\" [%s];\n", g.GetNodeID(node), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for edge := int32(0); edge < int32(g.EdgeCount()); edge++ {
		_, is_used := used[edge]
		if opts.TreeOnly && !is_used {
			continue
		}
		e := g.GetEdge(edge)
		attrs := []string{fmt.Sprintf("label=%q", mosp.CostVector(g.GetEdgeCosts(edge)).String())}
		if is_used {
			attrs = append(attrs, "penwidth=2")
		} else {
			attrs = append(attrs, "style=dashed", "color=grey")
		}
		fmt.Fprintf(&buf, "  \"%d\" -> \"%d\" [%s];\n", g.GetNodeID(e.NodeA), g.GetNodeID(e.NodeB), strings.Join(attrs, ", "))
	}
	buf.WriteString("}\n")
	return buf.String()
}

func _NodeLabel(g graph.IGraph, frontiers *mosp.Frontiers, node int32, detailed bool) string {
	labels := frontiers.Get(node)
	id := fmt.Sprint(g.GetNodeID(node))
	if !detailed {
		return fmt.Sprintf("%v (%v)", id, len(labels))
	}
	parts := make([]string, 0, len(labels)+1)
	parts = append(parts, id)
	for _, label := range labels {
		parts = append(parts, label.Cost.String())
	}
	return strings.Join(parts, "\n")
}

// Renders a DOT graph to SVG.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
