package main

//**********************************************************
// alternatives
//**********************************************************

// Start is given either as coordinate ([lon, lat]) or as node id.
type AlternativesRequest struct {
	Profile   string    `json:"profile" validate:"required"`
	Start     []float32 `json:"start" validate:"required_without=StartNode,omitempty,len=2"`
	StartNode *int64    `json:"start_node"`

	// if given only routes to these locations are returned
	Targets     [][]float32 `json:"targets" validate:"omitempty,dive,len=2"`
	TargetNodes []int64     `json:"target_nodes"`

	// overrides of the profile alternative options
	MaxCount      *int     `json:"max_count" validate:"omitempty,gte=0"`
	MaxSimilarity *float64 `json:"max_similarity" validate:"omitempty,gte=0,lte=1"`
	MinLength     *float64 `json:"min_length" validate:"omitempty,gte=0"`
	MaxLength     *float64 `json:"max_length" validate:"omitempty,gte=0"`
}

//**********************************************************
// frontier
//**********************************************************

// Source is given as node id, or as location if lon and lat are set.
type FrontierRequest struct {
	Profile string   `json:"profile" validate:"required"`
	Source  *int64   `json:"source" validate:"required_without=Lon"`
	Lon     *float64 `json:"lon" validate:"required_with=Lat,omitempty,gte=-180,lte=180"`
	Lat     *float64 `json:"lat" validate:"required_with=Lon,omitempty,gte=-90,lte=90"`
	// node id to return the labels of, the summary of all nodes if absent
	Target *int64 `json:"target"`
	// "json", "dot" or "svg"
	Format   string `json:"format" validate:"omitempty,oneof=json dot svg"`
	Detailed bool   `json:"detailed"`
}
