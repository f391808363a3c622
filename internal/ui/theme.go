package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Peak theme (CLI + TUI).
// Kept intentionally small: reusable styles and a few emojis.

const (
	IconPeak     = "⛰️"
	IconSparkle  = "✨"
	IconDone     = "✅"
	IconTrophy   = "🏆"
	IconBolt     = "⚡"
	IconFlame    = "🔥"
	IconWater    = "💧"
	IconBook     = "📘"
	IconCig      = "🚬"
	IconGym      = "🏋️"
	IconCalendar = "📅"
	IconFish     = "🐟"
	IconTimer    = "⏳"
	IconWarn     = "⚠️"
	IconError    = "🧨"
	IconUndo     = "↩️"
	IconLock     = "🔒"
	IconGrad     = "🎓"
	IconNext     = "➜"
)

var (
	cPrimary = lipgloss.Color("45")  // cyan
	cAccent  = lipgloss.Color("141") // purple
	cGood    = lipgloss.Color("42")  // green
	cWarn    = lipgloss.Color("214") // orange
	cBad     = lipgloss.Color("196") // red
	cMuted   = lipgloss.Color("244") // gray
	cGold    = lipgloss.Color("220") // gold
	cWater   = lipgloss.Color("39")  // blue
)

var (
	Title = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	H2    = lipgloss.NewStyle().Bold(true).Foreground(cAccent)
	Muted = lipgloss.NewStyle().Foreground(cMuted)
	Key   = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	Good  = lipgloss.NewStyle().Bold(true).Foreground(cGood)
	Warn  = lipgloss.NewStyle().Bold(true).Foreground(cWarn)
	Bad   = lipgloss.NewStyle().Bold(true).Foreground(cBad)
	Gold  = lipgloss.NewStyle().Bold(true).Foreground(cGold)
	Water = lipgloss.NewStyle().Bold(true).Foreground(cWater)

	Panel       = lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(cMuted).Padding(0, 1)
	PanelTitle  = lipgloss.NewStyle().Bold(true).Foreground(cPrimary)
	SelectedDay = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("0")).Background(cPrimary)

	BadgeLevelUp = lipgloss.NewStyle().Bold(true).Foreground(cGold).Render("LEVEL UP")
)

func Heading(icon string, title string) string {
	icon = strings.TrimSpace(icon)
	if icon != "" {
		icon += " "
	}
	return Title.Render(icon + title)
}

func LabelValue(label string, value any) string {
	return fmt.Sprintf("%s %v", Key.Render(label+":"), value)
}

// RankStyle colors a rank title the way the dashboard does.
func RankStyle(title string) lipgloss.Style {
	switch title {
	case "ADEPT":
		return Title
	case "ELITE":
		return H2
	case "TITAN":
		return Gold
	default:
		return Muted.Bold(true)
	}
}

// RankIcon maps a rank icon tag to an emoji.
func RankIcon(tag string) string {
	switch tag {
	case "zap":
		return IconBolt
	case "flame":
		return IconFlame
	default:
		return IconTrophy
	}
}

func Check(ok bool) string {
	if ok {
		return Good.Render("●")
	}
	return Muted.Render("○")
}

// ProgressBar renders value/total as a fixed-width bar.
func ProgressBar(value int, total int, width int) string {
	if total <= 0 {
		total = 1
	}
	if width <= 3 {
		width = 3
	}
	if value < 0 {
		value = 0
	}
	if value > total {
		value = total
	}
	filled := value * width / total
	return "[" + strings.Repeat("#", filled) + strings.Repeat("-", width-filled) + "]"
}

// Liters formats a water amount without trailing zeros.
func Liters(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0") + "L"
}

// Reef draws one fish per organism, up to limit, wrapping every perRow
// fish (0 keeps one line). The water is tinted by the reef's mood.
func Reef(organisms int, murky, glitching bool, limit, perRow int) string {
	n := min(organisms, limit)
	var b strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			if perRow > 0 && i%perRow == 0 {
				b.WriteString("\n")
			} else {
				b.WriteString(" ")
			}
		}
		b.WriteString("><>")
	}
	fish := b.String()
	switch {
	case murky:
		fish = Muted.Render(fish)
	case glitching:
		fish = Warn.Render(fish)
	default:
		fish = Water.Render(fish)
	}
	if organisms > limit {
		fish += " " + Muted.Render(fmt.Sprintf("+%d more", organisms-limit))
	}
	return fish
}

// ReefMood names the reef state: clear, murky, glitching or both.
func ReefMood(murky, glitching bool) string {
	var mood []string
	if murky {
		mood = append(mood, Bad.Render("murky"))
	}
	if glitching {
		mood = append(mood, Warn.Render("glitching"))
	}
	if len(mood) == 0 {
		return Good.Render("clear")
	}
	return strings.Join(mood, ", ")
}
