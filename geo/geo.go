package geo

import (
	"encoding/json"
	"math"
)

//*******************************************
// coordinates
//*******************************************

// Longitude, latitude in degrees.
type Coord [2]float32

func (self Coord) Lon() float64 {
	return float64(self[0])
}
func (self Coord) Lat() float64 {
	return float64(self[1])
}

type CoordArray []Coord

const EARTH_RADIUS = 6371000.0

// Great-circle distance in metres.
func HaversineDistance(a, b Coord) float64 {
	lat_a := a.Lat() * math.Pi / 180
	lat_b := b.Lat() * math.Pi / 180
	d_lat := lat_b - lat_a
	d_lon := (b.Lon() - a.Lon()) * math.Pi / 180

	h := math.Sin(d_lat/2)*math.Sin(d_lat/2) + math.Cos(lat_a)*math.Cos(lat_b)*math.Sin(d_lon/2)*math.Sin(d_lon/2)
	return 2 * EARTH_RADIUS * math.Asin(math.Min(1, math.Sqrt(h)))
}

// Summed haversine distance along the line.
func LineLength(line CoordArray) float64 {
	length := 0.0
	for i := 1; i < len(line); i++ {
		length += HaversineDistance(line[i-1], line[i])
	}
	return length
}

//*******************************************
// geojson
//*******************************************

type Geometry interface {
	Type() string
}

type Point struct {
	coords Coord
}

func NewPoint(coord Coord) Point {
	return Point{coords: coord}
}
func (self *Point) Type() string {
	return "Point"
}
func (self *Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string `json:"type"`
		Coordinates Coord  `json:"coordinates"`
	}{"Point", self.coords})
}

type LineString struct {
	coords CoordArray
}

func NewLineString(coords CoordArray) LineString {
	return LineString{coords: coords}
}
func (self *LineString) Type() string {
	return "LineString"
}
func (self *LineString) Coordinates() CoordArray {
	return self.coords
}
func (self *LineString) MarshalJSON() ([]byte, error) {
	return json.Marshal(struct {
		Type        string     `json:"type"`
		Coordinates CoordArray `json:"coordinates"`
	}{"LineString", self.coords})
}

type Feature struct {
	Type       string         `json:"type"`
	Geometry   Geometry       `json:"geometry"`
	Properties map[string]any `json:"properties"`
}

func NewFeature(geom Geometry, props map[string]any) Feature {
	return Feature{
		Type:       "Feature",
		Geometry:   geom,
		Properties: props,
	}
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

func NewFeatureCollection(features []Feature) FeatureCollection {
	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}
