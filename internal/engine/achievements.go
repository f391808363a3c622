package engine

import "time"

// Achievement represents a badge the user can earn.
type Achievement struct {
	ID          string
	Name        string
	Description string
	Icon        string
	Earned      bool
}

// AchievementChecker calculates which achievements have been earned.
type AchievementChecker struct {
	vitals   VitalsState
	calendar *Calendar
	today    time.Time
}

func NewAchievementChecker(vitals VitalsState, calendar *Calendar, today time.Time) *AchievementChecker {
	return &AchievementChecker{
		vitals:   vitals,
		calendar: calendar,
		today:    today,
	}
}

// GetAchievements returns all achievements with their earned status.
func (c *AchievementChecker) GetAchievements() []Achievement {
	return []Achievement{
		// Level milestones
		c.levelAchievement("first_steps", "First Steps", "Reach level 2", "🌱", 2),
		c.levelAchievement("adept", "Adept", "Reach level 5", "⚡", 5),
		c.levelAchievement("elite", "Elite", "Reach level 10", "🔥", 10),
		c.levelAchievement("titan", "Titan", "Reach level 20", "🏆", 20),

		// Streaks
		c.streakAchievement("iron_week", "Iron Week", "Hit the gym 3 days running", "💪", HabitGym, 3),
		c.streakAchievement("smoke_free_week", "Clear Lungs", "7 smoke-free days in a row", "🚭", HabitNoSmoking, 7),
		c.streakAchievement("smoke_free_month", "Clean Air", "30 smoke-free days in a row", "🌬️", HabitNoSmoking, 30),
		c.streakAchievement("hydro_week", "Hydro Homie", "Hydrated 7 days in a row", "💧", HabitHydrated, 7),
		c.streakAchievement("deep_diver", "Deep Diver", "Deep work 5 days in a row", "🧠", HabitDeepWork, 5),

		// Logging
		c.loggedAchievement("first_log", "Dear Diary", "Log any day in the tracker", "📅", 1),
		c.loggedAchievement("consistent", "Consistency is Key", "Log 30 days in the tracker", "📆", 30),

		// Today
		c.cleanDayAchievement("clean_day", "Clean Slate", "No vices and 2L of water today", "✨"),
	}
}

// CountEarned returns how many achievements have been earned.
func (c *AchievementChecker) CountEarned() int {
	count := 0
	for _, a := range c.GetAchievements() {
		if a.Earned {
			count++
		}
	}
	return count
}

// CountTotal returns total number of achievements.
func (c *AchievementChecker) CountTotal() int {
	return len(c.GetAchievements())
}

func (c *AchievementChecker) levelAchievement(id, name, desc, icon string, level int) Achievement {
	earned := c.vitals.Level() >= level
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) streakAchievement(id, name, desc, icon string, h Habit, days int) Achievement {
	earned := c.calendar != nil && c.calendar.Streak(c.today, h) >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) loggedAchievement(id, name, desc, icon string, days int) Achievement {
	earned := c.calendar != nil && c.calendar.Len() >= days
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}

func (c *AchievementChecker) cleanDayAchievement(id, name, desc, icon string) Achievement {
	v := c.vitals
	earned := v.SmokingIncidents == 0 && v.EnergyDrinkIncidents == 0 && v.WaterLiters >= 2
	return Achievement{ID: id, Name: name, Description: desc, Icon: icon, Earned: earned}
}
