package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ttpr0/go-mosp/algorithm"
	"github.com/ttpr0/go-mosp/cache"
	"github.com/ttpr0/go-mosp/geo"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
	"github.com/ttpr0/go-mosp/render"
	"github.com/ttpr0/go-mosp/routing"
	"golang.org/x/exp/slog"
)

//**********************************************************
// alternatives
//**********************************************************

func (self *Service) HandleAlternativesRequest(ctx context.Context, req AlternativesRequest) Result {
	opt := self.manager.GetProfile(req.Profile)
	if !opt.HasValue() {
		return NotFound(fmt.Sprintf("profile %v not found", req.Profile))
	}
	profile := opt.Value
	g := profile.GetGraph()

	var source int32
	var ok bool
	if req.StartNode != nil {
		source, ok = g.GetNodeIndex(*req.StartNode)
	} else {
		source, ok = g.GetClosestNode(geo.Coord{req.Start[0], req.Start[1]})
	}
	if !ok {
		return NotFound("start not found in graph")
	}
	targets := make([]int32, 0, len(req.Targets)+len(req.TargetNodes))
	for _, loc := range req.Targets {
		node, _ := g.GetClosestNode(geo.Coord{loc[0], loc[1]})
		targets = append(targets, node)
	}
	for _, id := range req.TargetNodes {
		node, ok := g.GetNodeIndex(id)
		if !ok {
			return NotFound(fmt.Sprintf("target node %v not found", id))
		}
		targets = append(targets, node)
	}
	options := _AlternativeOptions(profile.Options().Alternatives, req)

	key := cache.HashKey("alternatives", profile.Name(), source, targets, options)
	data, hit, err := self.results.Get(ctx, key)
	switch {
	case err != nil:
		cacheLookups.WithLabelValues("error").Inc()
		slog.Warn("cache lookup failed: " + err.Error())
	case hit:
		cacheLookups.WithLabelValues("hit").Inc()
		var resp _CachedAlternatives
		if err := json.Unmarshal(data, &resp); err == nil {
			resp.RequestID = GetRequestID(ctx)
			return OK(resp)
		}
		slog.Warn("dropping undecodable cached result")
	default:
		cacheLookups.WithLabelValues("miss").Inc()
	}

	frontiers, err := profile.Solve(ctx, source)
	complete := true
	if err != nil {
		if !errors.Is(err, mosp.ErrBudgetExceeded) {
			return _SearchFailed(err)
		}
		slog.Warn(fmt.Sprintf("search of profile %v: %v", profile.Name(), err))
		complete = false
	}

	attributes := profile.GetAttributes()
	var routes []routing.Route
	if len(targets) > 0 {
		for _, target := range targets {
			routes = append(routes, routing.TargetAlternatives(g, attributes, frontiers, target)...)
		}
	} else {
		routes = routing.SelectAlternatives(g, attributes, frontiers, options)
	}
	features := make([]geo.Feature, 0, len(routes))
	for i := range routes {
		features = append(features, routes[i].ToFeature(g, attributes, profile.ObjectiveNames()))
	}

	resp := NewAlternativesResponse(features)
	resp.Profile = profile.Name()
	resp.Source = g.GetNodeID(source)
	resp.Objectives = profile.ObjectiveNames()
	resp.Complete = complete

	// cached without request id
	if complete {
		self._StoreResult(ctx, key, resp)
	}
	resp.RequestID = GetRequestID(ctx)
	return OK(resp)
}

// Stored response with the features kept encoded.
type _CachedAlternatives struct {
	AlternativesResponse
	Features json.RawMessage `json:"features"`
}

// Applies the request overrides to the profile defaults.
func _AlternativeOptions(options routing.AlternativeOptions, req AlternativesRequest) routing.AlternativeOptions {
	if req.MaxCount != nil {
		options.MaxCount = *req.MaxCount
	}
	if req.MaxSimilarity != nil {
		options.MaxSimilarity = *req.MaxSimilarity
	}
	if req.MinLength != nil {
		options.MinLength = *req.MinLength
	}
	if req.MaxLength != nil {
		options.MaxLength = *req.MaxLength
	}
	return options
}

func (self *Service) _StoreResult(ctx context.Context, key string, value any) {
	data, err := json.Marshal(value)
	if err != nil {
		slog.Warn("encoding cached result failed: " + err.Error())
		return
	}
	if err := self.results.Set(ctx, key, data, self.ttl); err != nil {
		slog.Warn("storing cached result failed: " + err.Error())
	}
}

//**********************************************************
// profiles
//**********************************************************

func (self *Service) HandleProfilesRequest(ctx context.Context, req none) Result {
	resp := ProfilesResponse{
		Profiles: make([]ProfileSummary, 0, len(self.manager.ProfileNames())),
	}
	for _, name := range self.manager.ProfileNames() {
		profile := self.manager.GetProfile(name).Value
		g := profile.GetGraph()
		resp.Profiles = append(resp.Profiles, ProfileSummary{
			Name:       name,
			Dim:        g.Dim(),
			Objectives: profile.ObjectiveNames(),
			NodeCount:  g.NodeCount(),
			EdgeCount:  g.EdgeCount(),
			Normalized: profile.Options().Normalize,
			Pruning:    profile.Options().Pruning.String(),
		})
	}
	return OK(resp)
}

//**********************************************************
// frontier
//**********************************************************

func (self *Service) HandleFrontierRequest(ctx context.Context, req FrontierRequest) Result {
	opt := self.manager.GetProfile(req.Profile)
	if !opt.HasValue() {
		return NotFound(fmt.Sprintf("profile %v not found", req.Profile))
	}
	profile := opt.Value
	g := profile.GetGraph()

	var source int32
	var ok bool
	if req.Lon != nil && req.Lat != nil {
		source, ok = g.GetClosestNode(geo.Coord{float32(*req.Lon), float32(*req.Lat)})
		if !ok {
			return NotFound(fmt.Sprintf("no node close to %v, %v", *req.Lon, *req.Lat))
		}
	} else {
		if req.Source == nil {
			return BadRequest("source or lon and lat required")
		}
		source, ok = g.GetNodeIndex(*req.Source)
		if !ok {
			return NotFound(fmt.Sprintf("source %v not found", *req.Source))
		}
	}
	target := int32(-1)
	if req.Target != nil {
		target, ok = g.GetNodeIndex(*req.Target)
		if !ok {
			return NotFound(fmt.Sprintf("target %v not found", *req.Target))
		}
	}

	frontiers, err := profile.Solve(ctx, source)
	if err != nil && !errors.Is(err, mosp.ErrBudgetExceeded) {
		return _SearchFailed(err)
	}

	switch req.Format {
	case "dot", "svg":
		dot := render.ToDOT(g, frontiers, render.Options{Detailed: req.Detailed})
		if req.Format == "dot" {
			return Raw("text/vnd.graphviz", []byte(dot))
		}
		svg, err := render.RenderSVG(ctx, dot)
		if err != nil {
			return InternalError(err.Error())
		}
		return Raw("image/svg+xml", svg)
	}

	ideal, err := algorithm.CalcIdealPoints(g, source)
	if err != nil {
		return InternalError(err.Error())
	}
	ideal_point := func(node int32) []float64 {
		return ideal[int(node)*g.Dim() : int(node+1)*g.Dim()]
	}

	resp := FrontierResponse{
		RequestID:  GetRequestID(ctx),
		Profile:    profile.Name(),
		Source:     g.GetNodeID(source),
		Objectives: profile.ObjectiveNames(),
		Stats:      NewFrontierStats(frontiers.Stats()),
	}
	if target >= 0 {
		if frontiers.IsReachable(target) {
			resp.Ideal = ideal_point(target)
		}
		for _, label := range frontiers.Get(target) {
			resp.Labels = append(resp.Labels, LabelResponse{
				Cost: label.Cost,
				Path: _NodeIDs(g, label.Path()),
			})
		}
		return OK(resp)
	}
	for node := int32(0); node < int32(g.NodeCount()); node++ {
		if !frontiers.IsReachable(node) {
			continue
		}
		resp.Nodes = append(resp.Nodes, NodeSummary{
			Node:   g.GetNodeID(node),
			Count:  len(frontiers.Get(node)),
			Best:   frontiers.Best(node).Cost,
			Latest: frontiers.Latest(node).Cost,
			Ideal:  ideal_point(node),
		})
	}
	return OK(resp)
}

// Maps a failed search to its response, the status tells a timed out or
// canceled request apart from an internal failure.
func _SearchFailed(err error) Result {
	switch {
	case mosp.IsPreconditionError(err):
		return Unprocessable(err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return GatewayTimeout(err.Error())
	case errors.Is(err, mosp.ErrCanceled):
		return ServiceUnavailable(err.Error())
	default:
		return InternalError(err.Error())
	}
}

func _NodeIDs(g graph.IGraph, nodes []int32) []int64 {
	ids := make([]int64, len(nodes))
	for i, node := range nodes {
		ids[i] = g.GetNodeID(node)
	}
	return ids
}
