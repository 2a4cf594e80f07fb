package main

import (
	"context"
	"errors"
	"fmt"
	"reflect"
	"time"

	"github.com/ttpr0/go-mosp/attr"
	"github.com/ttpr0/go-mosp/graph"
	"github.com/ttpr0/go-mosp/mosp"
	"github.com/ttpr0/go-mosp/parser"
	. "github.com/ttpr0/go-mosp/util"
	"github.com/ttpr0/go-mosp/weighting"
	"golang.org/x/exp/slog"
)

//**********************************************************
// profile
//**********************************************************

// Graph of a profile together with its search settings.
type Profile struct {
	name    string
	options ProfileOptions
	g       *graph.Graph
	// nil for json graphs
	attributes *attr.GraphAttributes
	// nil unless normalized
	scaled *graph.MultiWeighting
}

type ProfileMeta struct {
	Source        string                     `json:"source"`
	HasAttributes bool                       `json:"has_attributes"`
	Weighting     weighting.WeightingOptions `json:"weighting"`
	NodeCount     int                        `json:"node_count"`
	EdgeCount     int                        `json:"edge_count"`
}

func _NewProfile(name string, options ProfileOptions, g *graph.Graph, attributes *attr.GraphAttributes) (*Profile, error) {
	profile := &Profile{
		name:       name,
		options:    options,
		g:          g,
		attributes: attributes,
	}
	if options.Normalize {
		scaled, err := mosp.Normalize(g)
		if err != nil {
			return nil, fmt.Errorf("normalize profile %v: %w", name, err)
		}
		profile.scaled = scaled
	}
	return profile, nil
}

// Builds the profile graph from its source and stores it under path.
func BuildProfile(ctx context.Context, name string, path string, options ProfileOptions) (*Profile, error) {
	slog.Info(fmt.Sprintf("building profile %v from %v", name, options.Source))
	var g *graph.Graph
	var attributes *attr.GraphAttributes
	var err error
	if options.IsGraphSource() {
		g, err = graph.ReadGraphJSONFromFile(options.Source)
		if err != nil {
			return nil, fmt.Errorf("read graph: %w", err)
		}
	} else {
		g, attributes, err = _BuildOSMGraph(ctx, options)
		if err != nil {
			return nil, err
		}
	}

	if err := graph.StoreGraph(g, path); err != nil {
		return nil, err
	}
	if attributes != nil {
		if err := attr.Store(attributes, path); err != nil {
			return nil, err
		}
	}
	meta := ProfileMeta{
		Source:        options.Source,
		HasAttributes: attributes != nil,
		Weighting:     options.Weighting,
		NodeCount:     g.NodeCount(),
		EdgeCount:     g.EdgeCount(),
	}
	if err := WriteJSONToFile(meta, path+"-meta"); err != nil {
		return nil, fmt.Errorf("store profile meta: %w", err)
	}
	return _NewProfile(name, options, g, attributes)
}

func _BuildOSMGraph(ctx context.Context, options ProfileOptions) (*graph.Graph, *attr.GraphAttributes, error) {
	decoder, ok := parser.GetDecoder(options.Decoder)
	if !ok {
		return nil, nil, fmt.Errorf("unknown decoder %q", options.Decoder)
	}
	base, attributes, err := parser.ParseGraphFile(ctx, options.Source, decoder)
	if err != nil {
		return nil, nil, err
	}
	if !options.KeepAllComponents {
		base, attributes, err = parser.KeepLargestComponent(base, attributes)
		if err != nil {
			return nil, nil, err
		}
	}
	if options.Elevation != "" {
		rows, err := parser.ReadElevationCSV(options.Elevation)
		if err != nil {
			return nil, nil, err
		}
		parser.ApplyElevation(base, attributes, rows)
	}
	g, err := weighting.BuildGraph(base, attributes, options.Weighting)
	if err != nil {
		return nil, nil, err
	}
	return g, attributes, nil
}

// Loads a stored profile. The weighting is recomputed from the stored
// attributes if the configured one differs.
func LoadProfile(name string, path string, options ProfileOptions) (*Profile, error) {
	meta, err := ReadJSONFromFile[ProfileMeta](path + "-meta")
	if err != nil {
		return nil, fmt.Errorf("load profile meta: %w", err)
	}
	if meta.Source != options.Source {
		return nil, fmt.Errorf("%w: stored profile %v was built from %v", ErrStaleProfile, name, meta.Source)
	}
	g, err := graph.LoadGraph(path)
	if err != nil {
		return nil, err
	}
	var attributes *attr.GraphAttributes
	if meta.HasAttributes {
		attributes, err = attr.Load(path)
		if err != nil {
			return nil, err
		}
		if !reflect.DeepEqual(meta.Weighting, options.Weighting) {
			slog.Info(fmt.Sprintf("recomputing weighting of profile %v", name))
			g, err = weighting.BuildGraph(g.GetBase(), attributes, options.Weighting)
			if err != nil {
				return nil, err
			}
		}
	}
	slog.Info(fmt.Sprintf("loaded profile %v: %v nodes, %v edges", name, g.NodeCount(), g.EdgeCount()))
	return _NewProfile(name, options, g, attributes)
}

var ErrStaleProfile = errors.New("stored profile does not match config")

func _ProfileExists(path string) bool {
	return FileExists(path + "-meta")
}

func (self *Profile) Name() string {
	return self.name
}
func (self *Profile) Options() ProfileOptions {
	return self.options
}
func (self *Profile) GetGraph() graph.IGraph {
	return self.g
}
func (self *Profile) GetAttributes() attr.IAttributes {
	if self.attributes == nil {
		return nil
	}
	return self.attributes
}

// Names of the cost dimensions, nil for json graphs.
func (self *Profile) ObjectiveNames() []string {
	if self.attributes == nil {
		return nil
	}
	return self.options.Weighting.ObjectiveNames()
}

// Runs a one-to-all search from source with the profile settings.
func (self *Profile) Solve(ctx context.Context, source int32) (*mosp.Frontiers, error) {
	opts := []mosp.Option{
		mosp.WithContext(ctx),
		mosp.WithPruning(self.options.Pruning),
		mosp.WithMaxIterations(self.options.MaxIterations),
	}
	if self.scaled != nil {
		opts = append(opts, mosp.WithScaledCosts(self.scaled))
	}
	start := time.Now()
	frontiers, err := mosp.OneToAll(self.g, source, self.g.Dim(), opts...)
	searchDuration.WithLabelValues(self.name).Observe(time.Since(start).Seconds())
	if frontiers != nil {
		searchLabels.WithLabelValues(self.name).Observe(float64(frontiers.Count()))
	}
	if err != nil {
		searchErrors.WithLabelValues(self.name).Inc()
	}
	return frontiers, err
}
