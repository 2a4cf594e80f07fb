package parser

import (
	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/geo"
	. "github.com/ttpr0/go-mosp/util"
)

//*******************************************
// parser structs
//*******************************************

// Node referenced by a valid way. Count is the number of way references,
// ends of ways count twice so that they always become graph nodes.
type TempNode struct {
	Point geo.Coord
	Count int32
	// node is contained in the data
	Seen bool
}

type OSMNode struct {
	ID    int64
	Point geo.Coord
	Attr  attr.NodeAttribs
}

type OSMEdge struct {
	NodeA int
	NodeB int
	Attr  attr.EdgeAttribs
	Nodes List[geo.Coord]
}
