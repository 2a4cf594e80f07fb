package parser

import (
	"math"
	"strconv"
	"strings"

	"github.com/ttpr0/go-mosp/attr"
)

//*******************************************
// utility methods
//*******************************************

func _IsOneway(oneway string, str_type attr.RoadType) bool {
	if str_type == attr.MOTORWAY || str_type == attr.TRUNK || str_type == attr.MOTORWAY_LINK || str_type == attr.TRUNK_LINK {
		return true
	} else if oneway == "yes" {
		return true
	}
	return false
}

func _GetType(typ string) attr.RoadType {
	return attr.RoadTypeFromString(typ)
}

// Parses a maxspeed tag into km/h, 0 if missing or unparsable.
//
// Handles plain numbers, "mph" values and the "walk"/"none" keywords.
func _ParseMaxspeed(maxspeed string) byte {
	maxspeed = strings.TrimSpace(maxspeed)
	switch maxspeed {
	case "":
		return 0
	case "walk":
		return 10
	case "none":
		return 130
	}
	factor := 1.0
	if strings.HasSuffix(maxspeed, "mph") {
		factor = 1.609344
		maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "mph"))
	} else if strings.HasSuffix(maxspeed, "km/h") {
		maxspeed = strings.TrimSpace(strings.TrimSuffix(maxspeed, "km/h"))
	}
	v, err := strconv.ParseFloat(maxspeed, 64)
	if err != nil || v <= 0 {
		return 0
	}
	return byte(math.Min(255, math.Round(v*factor)))
}

// Parses an ele tag in metres ("312", "312.5", "312 m").
func _ParseElevation(ele string) (float32, bool) {
	ele = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(ele), "m"))
	if ele == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(ele, 32)
	if err != nil {
		return 0, false
	}
	return float32(v), true
}

func _GetORSTravelSpeed(streettype attr.RoadType, maxspeed string, tracktype string, surface string) int32 {
	var speed int32

	// check if maxspeed is set
	if maxspeed != "" {
		speed = int32(_ParseMaxspeed(maxspeed))
		if speed == 0 {
			speed = 20
		}
		speed = int32(0.9 * float32(speed))
	}

	// set defaults
	if maxspeed == "" {
		switch streettype {
		case attr.MOTORWAY:
			speed = 100
		case attr.TRUNK:
			speed = 85
		case attr.MOTORWAY_LINK, attr.TRUNK_LINK:
			speed = 60
		case attr.PRIMARY:
			speed = 65
		case attr.SECONDARY:
			speed = 60
		case attr.TERTIARY:
			speed = 50
		case attr.PRIMARY_LINK, attr.SECONDARY_LINK:
			speed = 50
		case attr.TERTIARY_LINK:
			speed = 40
		case attr.UNCLASSIFIED:
			speed = 30
		case attr.RESIDENTIAL:
			speed = 30
		case attr.LIVING_STREET:
			speed = 10
		case attr.ROAD:
			speed = 20
		case attr.TRACK:
			if tracktype == "" {
				speed = 15
			} else {
				switch tracktype {
				case "grade1":
					speed = 40
				case "grade2":
					speed = 30
				case "grade3":
					speed = 20
				case "grade4":
					speed = 15
				case "grade5":
					speed = 10
				default:
					speed = 15
				}
			}
		default:
			speed = 20
		}
	}

	// check if surface is set
	if surface != "" {
		switch surface {
		case "cement", "compacted":
			if speed > 80 {
				speed = 80
			}
		case "fine_gravel":
			if speed > 60 {
				speed = 60
			}
		case "paving_stones", "metal", "bricks":
			if speed > 40 {
				speed = 40
			}
		case "grass", "wood", "sett", "grass_paver", "gravel", "unpaved", "ground", "dirt", "pebblestone", "tartan":
			if speed > 30 {
				speed = 30
			}
		case "cobblestone", "clay":
			if speed > 20 {
				speed = 20
			}
		case "earth", "stone", "rocky", "sand":
			if speed > 15 {
				speed = 15
			}
		case "mud":
			if speed > 10 {
				speed = 10
			}
		}
	}

	if speed == 0 {
		speed = 10
	}
	return speed
}
