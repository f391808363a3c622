package engine

import "strings"

// Vice is a habit the user is trying to avoid.
type Vice string

const (
	ViceSmoking     Vice = "smoking"
	ViceEnergyDrink Vice = "energy"
)

func (v Vice) IsValid() bool {
	switch v {
	case ViceSmoking, ViceEnergyDrink:
		return true
	default:
		return false
	}
}

func (v Vice) Label() string {
	switch v {
	case ViceSmoking:
		return "Smoking"
	case ViceEnergyDrink:
		return "Energy Drinks"
	default:
		return string(v)
	}
}

// ParseVice parses user input to a Vice.
// Supported: smoking, smoke, cigs, energy, energy-drink, energy_drink.
func ParseVice(input string) (Vice, error) {
	s := strings.TrimSpace(strings.ToLower(input))
	switch s {
	case "smoking", "smoke", "cigs", "cigarettes":
		return ViceSmoking, nil
	case "energy", "energy-drink", "energy_drink", "energydrink":
		return ViceEnergyDrink, nil
	default:
		return "", ParseError{Kind: "vice", Input: input}
	}
}

var Vices = []Vice{ViceSmoking, ViceEnergyDrink}
