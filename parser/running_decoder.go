package parser

import (
	"github.com/ttpr0/go-mosp/attr"
	. "github.com/ttpr0/go-mosp/util"
)

// Decodes ways usable on foot.
type RunningDecoder struct {
}

var running_types = Dict[string, bool]{"primary": true, "primary_link": true, "secondary": true, "secondary_link": true,
	"tertiary": true, "tertiary_link": true, "residential": true, "living_street": true, "service": true, "track": true,
	"unclassified": true, "road": true, "footway": true, "path": true, "pedestrian": true, "cycleway": true,
	"steps": true, "bridleway": true}

func (self *RunningDecoder) IsValidHighway(tags Dict[string, string]) bool {
	if _IsFootDenied(tags) {
		return false
	}
	if _IsFootAllowed(tags.Get("foot")) && tags.ContainsKey("highway") {
		return true
	}
	return running_types.ContainsKey(tags.Get("highway"))
}
func (self *RunningDecoder) DecodeNode(tags Dict[string, string]) attr.NodeAttribs {
	ele, ok := _ParseElevation(tags.Get("ele"))
	return attr.NodeAttribs{Elevation: ele, HasElevation: ok}
}
func (self *RunningDecoder) DecodeEdge(tags Dict[string, string]) attr.EdgeAttribs {
	e := attr.EdgeAttribs{}
	e.Type = _GetType(tags.Get("highway"))
	e.Maxspeed = _ParseMaxspeed(tags.Get("maxspeed"))
	e.Foot = _IsFootAllowed(tags.Get("foot"))
	e.Oneway = tags.Get("oneway:foot") == "yes"
	return e
}

func _IsFootAllowed(foot string) bool {
	return foot == "yes" || foot == "designated"
}

func _IsFootDenied(tags Dict[string, string]) bool {
	switch tags.Get("foot") {
	case "no", "private":
		return true
	}
	switch tags.Get("access") {
	case "no", "private":
		return !_IsFootAllowed(tags.Get("foot"))
	}
	return false
}
