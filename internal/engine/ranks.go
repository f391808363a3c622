package engine

// Rank is a named tier unlocked at a level threshold.
type Rank struct {
	Level int
	Title string
	Icon  string
}

// DefaultRanks is the rank ladder in ascending level order.
var DefaultRanks = []Rank{
	{Level: 1, Title: "INITIATE", Icon: "trophy"},
	{Level: 5, Title: "ADEPT", Icon: "zap"},
	{Level: 10, Title: "ELITE", Icon: "flame"},
	{Level: 20, Title: "TITAN", Icon: "trophy"},
}

// ResolveRank returns the entry of table with the greatest Level <= level.
// table must be sorted ascending; the first entry is the fallback.
func ResolveRank(table []Rank, level int) Rank {
	if len(table) == 0 {
		return Rank{}
	}
	for i := len(table) - 1; i >= 0; i-- {
		if level >= table[i].Level {
			return table[i]
		}
	}
	return table[0]
}

// RankForXP resolves the default ladder for a total XP value.
func RankForXP(xp int) Rank {
	return ResolveRank(DefaultRanks, LevelForXP(xp))
}

// RoadmapStep is one rank with its unlock state.
type RoadmapStep struct {
	Rank     Rank
	Unlocked bool
	Current  bool
	// XPToUnlock is how much more XP the rank needs; 0 once unlocked.
	XPToUnlock int
}

// Roadmap lists the default ladder relative to xp.
func Roadmap(xp int) []RoadmapStep {
	level := LevelForXP(xp)
	current := ResolveRank(DefaultRanks, level)
	out := make([]RoadmapStep, 0, len(DefaultRanks))
	for _, r := range DefaultRanks {
		step := RoadmapStep{
			Rank:     r,
			Unlocked: level >= r.Level,
			Current:  r == current,
		}
		if !step.Unlocked {
			step.XPToUnlock = XPRequiredForLevel(r.Level) - xp
		}
		out = append(out, step)
	}
	return out
}

// NextRank returns the first locked rank, or false at the top of the ladder.
func NextRank(xp int) (Rank, bool) {
	level := LevelForXP(xp)
	for _, r := range DefaultRanks {
		if r.Level > level {
			return r, true
		}
	}
	return Rank{}, false
}
