package engine

import "time"

// Reef is the aquarium mood derived from the vitals.
type Reef struct {
	Organisms int
	// Murky is the toxicity state, set by any smoking incident today.
	Murky bool
	// Glitching is the instability state, set by any energy drink today.
	Glitching bool
}

func ReefFor(s VitalsState) Reef {
	return Reef{
		Organisms: max(1, s.XP/XPPerOrganism),
		Murky:     s.SmokingIncidents > 0,
		Glitching: s.EnergyDrinkIncidents > 0,
	}
}

// Countdown is the time left until a target instant.
type Countdown struct {
	Days    int
	Hours   int
	Minutes int
	Seconds int
	Done    bool
}

// Remaining computes the countdown from now to target. Past targets yield Done.
func Remaining(now, target time.Time) Countdown {
	d := target.Sub(now)
	if d <= 0 {
		return Countdown{Done: true}
	}
	secs := int(d / time.Second)
	return Countdown{
		Days:    secs / 86400,
		Hours:   secs / 3600 % 24,
		Minutes: secs / 60 % 60,
		Seconds: secs % 60,
	}
}
