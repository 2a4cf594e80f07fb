package graph

import (
	"github.com/ttpr0/go-mosp/geo"
)

//*******************************************
// graph structs
//*******************************************

type Edge struct {
	NodeA int32
	NodeB int32
}

type Node struct {
	Loc geo.Coord
}

//*******************************************
// edgeref struct
//*******************************************

// Reference to an edge as seen from the node whose adjacency is traversed.
type EdgeRef struct {
	EdgeID  int32
	OtherID int32
}
