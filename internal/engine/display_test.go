package engine

import (
	"testing"
	"time"
)

func TestResolveRank(t *testing.T) {
	table := []Rank{
		{Level: 0, Title: "INITIATE"},
		{Level: 5, Title: "ADEPT"},
		{Level: 10, Title: "ELITE"},
		{Level: 20, Title: "TITAN"},
	}
	tests := []struct {
		level int
		want  string
	}{
		{0, "INITIATE"},
		{4, "INITIATE"},
		{5, "ADEPT"},
		{7, "ADEPT"},
		{10, "ELITE"},
		{19, "ELITE"},
		{20, "TITAN"},
		{99, "TITAN"},
	}
	for _, tt := range tests {
		if got := ResolveRank(table, tt.level); got.Title != tt.want {
			t.Fatalf("ResolveRank(%d)=%s, want %s", tt.level, got.Title, tt.want)
		}
	}

	// Below every threshold falls back to the first entry.
	if got := ResolveRank(DefaultRanks, 0); got.Title != "INITIATE" {
		t.Fatalf("fallback rank=%s, want INITIATE", got.Title)
	}
	if got := RankForXP(450); got.Title != "ADEPT" {
		t.Fatalf("RankForXP(450)=%s, want ADEPT", got.Title)
	}
}

func TestRoadmap(t *testing.T) {
	steps := Roadmap(450) // level 5
	if len(steps) != len(DefaultRanks) {
		t.Fatalf("steps=%d", len(steps))
	}
	if !steps[0].Unlocked || !steps[1].Unlocked || !steps[1].Current || steps[0].Current {
		t.Fatalf("unexpected unlock state: %+v", steps[:2])
	}
	if steps[2].Unlocked || steps[2].XPToUnlock != 450 {
		t.Fatalf("ELITE step=%+v, want locked with 450 to go", steps[2])
	}
	next, ok := NextRank(450)
	if !ok || next.Title != "ELITE" {
		t.Fatalf("NextRank=%+v,%v", next, ok)
	}
	if _, ok := NextRank(5000); ok {
		t.Fatalf("expected no rank above TITAN")
	}
}

func TestReefFor(t *testing.T) {
	if got := ReefFor(VitalsState{XP: 149}).Organisms; got != 2 {
		t.Fatalf("organisms(149)=%d, want 2", got)
	}
	if got := ReefFor(VitalsState{XP: 0}).Organisms; got != 1 {
		t.Fatalf("organisms(0)=%d, want 1", got)
	}
	r := ReefFor(VitalsState{XP: 500, SmokingIncidents: 1})
	if !r.Murky || r.Glitching || r.Organisms != 10 {
		t.Fatalf("reef=%+v", r)
	}
	if r := ReefFor(VitalsState{EnergyDrinkIncidents: 2}); r.Murky || !r.Glitching {
		t.Fatalf("reef=%+v", r)
	}
}

func TestRemaining(t *testing.T) {
	target := time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC)
	now := target.Add(-(3*24*time.Hour + 5*time.Hour + 7*time.Minute + 9*time.Second))

	got := Remaining(now, target)
	want := Countdown{Days: 3, Hours: 5, Minutes: 7, Seconds: 9}
	if got != want {
		t.Fatalf("Remaining=%+v, want %+v", got, want)
	}
	if got := Remaining(target.Add(time.Minute), target); !got.Done || got.Days != 0 {
		t.Fatalf("past target=%+v, want Done", got)
	}
}

func TestAchievements(t *testing.T) {
	c := &Calendar{logs: nil}
	checker := NewAchievementChecker(VitalsState{XP: 450, WaterLiters: 2}, c, day(2025, time.March, 5))
	earned := map[string]bool{}
	for _, a := range checker.GetAchievements() {
		earned[a.ID] = a.Earned
	}
	if !earned["first_steps"] || !earned["adept"] || earned["elite"] {
		t.Fatalf("level achievements=%v", earned)
	}
	if !earned["clean_day"] {
		t.Fatalf("expected clean_day")
	}
	if earned["first_log"] {
		t.Fatalf("first_log earned with no logs")
	}
	if checker.CountEarned() != 3 || checker.CountTotal() != 12 {
		t.Fatalf("earned=%d total=%d", checker.CountEarned(), checker.CountTotal())
	}
}
