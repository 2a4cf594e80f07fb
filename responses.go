package main

import (
	"github.com/ttpr0/go-mosp/geo"
	"github.com/ttpr0/go-mosp/mosp"
)

type ErrorResponse struct {
	Request string `json:"request"`
	Error   any    `json:"error"`
}

func NewErrorResponse(request string, error any) ErrorResponse {
	return ErrorResponse{
		Request: request,
		Error:   error,
	}
}

//**********************************************************
// alternatives
//**********************************************************

// Feature collection of the route alternatives.
type AlternativesResponse struct {
	Type       string        `json:"type"`
	Features   []geo.Feature `json:"features"`
	RequestID  string        `json:"request_id"`
	Profile    string        `json:"profile"`
	Source     int64         `json:"source"`
	Objectives []string      `json:"objectives,omitempty"`
	// false if the search stopped at the iteration budget
	Complete bool `json:"complete"`
}

func NewAlternativesResponse(features []geo.Feature) AlternativesResponse {
	if features == nil {
		features = []geo.Feature{}
	}
	return AlternativesResponse{
		Type:     "FeatureCollection",
		Features: features,
		Complete: true,
	}
}

//**********************************************************
// profiles
//**********************************************************

type ProfileSummary struct {
	Name       string   `json:"name"`
	Dim        int      `json:"dim"`
	Objectives []string `json:"objectives,omitempty"`
	NodeCount  int      `json:"node_count"`
	EdgeCount  int      `json:"edge_count"`
	Normalized bool     `json:"normalized"`
	Pruning    string   `json:"pruning"`
}

type ProfilesResponse struct {
	Profiles []ProfileSummary `json:"profiles"`
}

//**********************************************************
// frontier
//**********************************************************

// Ideal is the componentwise minimum cost of the target.
type FrontierResponse struct {
	RequestID  string          `json:"request_id"`
	Profile    string          `json:"profile"`
	Source     int64           `json:"source"`
	Objectives []string        `json:"objectives,omitempty"`
	Stats      FrontierStats   `json:"stats"`
	Ideal      []float64       `json:"ideal,omitempty"`
	Nodes      []NodeSummary   `json:"nodes,omitempty"`
	Labels     []LabelResponse `json:"labels,omitempty"`
}

type FrontierStats struct {
	Iterations int     `json:"iterations"`
	Pushed     int     `json:"pushed"`
	Replaced   int     `json:"replaced"`
	Pruned     int     `json:"pruned"`
	Settled    int     `json:"settled"`
	Dropped    int     `json:"dropped"`
	Seconds    float64 `json:"seconds"`
}

func NewFrontierStats(stats mosp.Stats) FrontierStats {
	return FrontierStats{
		Iterations: stats.Iterations,
		Pushed:     stats.Pushed,
		Replaced:   stats.Replaced,
		Pruned:     stats.Pruned,
		Settled:    stats.Settled,
		Dropped:    stats.Dropped,
		Seconds:    stats.Duration.Seconds(),
	}
}

// Frontier size of a reachable node with its lexicographically best
// and most recently settled cost. Ideal is the componentwise minimum
// over the frontier.
type NodeSummary struct {
	Node   int64     `json:"node"`
	Count  int       `json:"count"`
	Best   []float64 `json:"best"`
	Latest []float64 `json:"latest"`
	Ideal  []float64 `json:"ideal"`
}

type LabelResponse struct {
	Cost []float64 `json:"cost"`
	Path []int64   `json:"path"`
}
