package weighting

import (
	"errors"

	"gopkg.in/yaml.v3"
)

//*******************************************
// objective type
//*******************************************

type ObjectiveType byte

const (
	LENGTH    ObjectiveType = 0
	CLIMB     ObjectiveType = 1
	GRADE     ObjectiveType = 2
	TURNS     ObjectiveType = 3
	ROAD_TYPE ObjectiveType = 4
	SPEED     ObjectiveType = 5
)

func (self ObjectiveType) String() string {
	switch self {
	case LENGTH:
		return "length"
	case CLIMB:
		return "climb"
	case GRADE:
		return "grade"
	case TURNS:
		return "turns"
	case ROAD_TYPE:
		return "road_type"
	case SPEED:
		return "speed"
	default:
		panic("unknown objective type")
	}
}
func (self ObjectiveType) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}
func (self *ObjectiveType) UnmarshalText(data []byte) error {
	typ, err := ObjectiveTypeFromString(string(data))
	if err != nil {
		return err
	}
	*self = typ
	return nil
}
func (self ObjectiveType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *ObjectiveType) UnmarshalYAML(value *yaml.Node) error {
	return self.UnmarshalText([]byte(value.Value))
}

func ObjectiveTypeFromString(s string) (ObjectiveType, error) {
	switch s {
	case "length":
		return LENGTH, nil
	case "climb":
		return CLIMB, nil
	case "grade":
		return GRADE, nil
	case "turns":
		return TURNS, nil
	case "road_type":
		return ROAD_TYPE, nil
	case "speed":
		return SPEED, nil
	default:
		return LENGTH, errors.New("unknown objective type: " + s)
	}
}

//*******************************************
// preferences
//*******************************************

type ElevationPreference byte

const (
	FLAT  ElevationPreference = 0
	STEEP ElevationPreference = 1
)

func (self ElevationPreference) String() string {
	switch self {
	case FLAT:
		return "flat"
	case STEEP:
		return "steep"
	default:
		panic("unknown elevation preference")
	}
}
func (self ElevationPreference) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}
func (self *ElevationPreference) UnmarshalText(data []byte) error {
	switch string(data) {
	case "flat":
		*self = FLAT
	case "steep":
		*self = STEEP
	default:
		return errors.New("unknown elevation preference: " + string(data))
	}
	return nil
}
func (self ElevationPreference) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *ElevationPreference) UnmarshalYAML(value *yaml.Node) error {
	return self.UnmarshalText([]byte(value.Value))
}

type TurnPreference byte

const (
	MANY_TURNS TurnPreference = 0
	FEW_TURNS  TurnPreference = 1
)

func (self TurnPreference) String() string {
	switch self {
	case MANY_TURNS:
		return "many"
	case FEW_TURNS:
		return "few"
	default:
		panic("unknown turn preference")
	}
}
func (self TurnPreference) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}
func (self *TurnPreference) UnmarshalText(data []byte) error {
	switch string(data) {
	case "many":
		*self = MANY_TURNS
	case "few":
		*self = FEW_TURNS
	default:
		return errors.New("unknown turn preference: " + string(data))
	}
	return nil
}
func (self TurnPreference) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *TurnPreference) UnmarshalYAML(value *yaml.Node) error {
	return self.UnmarshalText([]byte(value.Value))
}

// Growth of a penalty with its input.
type PenaltyType byte

const (
	LINEAR      PenaltyType = 0
	EXPONENTIAL PenaltyType = 1
)

func (self PenaltyType) String() string {
	switch self {
	case LINEAR:
		return "linear"
	case EXPONENTIAL:
		return "exponential"
	default:
		panic("unknown penalty type")
	}
}
func (self PenaltyType) MarshalText() ([]byte, error) {
	return []byte(self.String()), nil
}
func (self *PenaltyType) UnmarshalText(data []byte) error {
	switch string(data) {
	case "linear":
		*self = LINEAR
	case "exponential":
		*self = EXPONENTIAL
	default:
		return errors.New("unknown penalty type: " + string(data))
	}
	return nil
}
func (self PenaltyType) MarshalYAML() (any, error) {
	return self.String(), nil
}
func (self *PenaltyType) UnmarshalYAML(value *yaml.Node) error {
	return self.UnmarshalText([]byte(value.Value))
}
