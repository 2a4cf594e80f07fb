package parser

import (
	"fmt"

	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/graph"
	. "github.com/ttpr0/go-mosp/util"
	"golang.org/x/exp/slog"
)

// Row of an elevation file ("id;ele" with header).
type ElevationRow struct {
	ID        int64   `csv:"id"`
	Elevation float64 `csv:"ele"`
}

func ReadElevationCSV(filename string) (List[ElevationRow], error) {
	rows, err := ReadCSVFromFile[ElevationRow](filename, ';')
	if err != nil {
		return nil, fmt.Errorf("read elevation file: %w", err)
	}
	return rows, nil
}

// Overrides node elevations by osm node id. Returns the number of updated nodes.
func ApplyElevation(base *graph.GraphBase, attributes *attr.GraphAttributes, rows List[ElevationRow]) int {
	count := 0
	for _, row := range rows {
		node, ok := base.GetNodeIndex(row.ID)
		if !ok {
			continue
		}
		attributes.SetNodeElevation(node, float32(row.Elevation))
		count += 1
	}
	slog.Debug(fmt.Sprintf("applied %v of %v elevations", count, rows.Length()))
	return count
}
