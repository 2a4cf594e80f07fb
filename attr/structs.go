package attr

//*******************************************
// graph attributes
//*******************************************

type EdgeAttribs struct {
	Type RoadType
	// metres
	Length float32
	// km/h, 0 if unknown
	Maxspeed byte
	// foot=yes or foot=designated
	Foot   bool
	Oneway bool
}

type NodeAttribs struct {
	// metres above sea level
	Elevation    float32
	HasElevation bool
}
