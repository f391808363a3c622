package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"peak/internal/engine"
	"peak/internal/ui"
)

type boardModel struct {
	ctx  context.Context
	svc  *engine.Service
	opts BoardOptions

	width  int
	height int

	now       time.Time
	countdown engine.Countdown
	vitals    engine.VitalsState

	confirmReset bool
	lastLog      string
}

type tickMsg time.Time

func newBoardModel(ctx context.Context, svc *engine.Service, opts BoardOptions) boardModel {
	now := svc.Now()
	return boardModel{
		ctx:       ctx,
		svc:       svc,
		opts:      opts,
		now:       now,
		countdown: engine.Remaining(now, opts.Target),
		vitals:    svc.Vitals().Snapshot(),
		lastLog:   "Loaded.",
	}
}

// tick schedules the next countdown refresh. The loop ends with the program.
func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m boardModel) Init() tea.Cmd {
	return tick()
}

// Update applies mutations synchronously: the engines assume a single writer.
func (m boardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.now = time.Time(msg)
		m.countdown = engine.Remaining(m.now, m.opts.Target)
		return m, tick()
	case tea.KeyMsg:
		if m.confirmReset {
			return m.handleConfirm(msg.String())
		}
		return m.handleKey(msg.String())
	}
	return m, nil
}

func (m boardModel) handleConfirm(key string) (tea.Model, tea.Cmd) {
	m.confirmReset = false
	switch key {
	case "y", "Y":
		if err := m.svc.ResetAll(m.ctx); err != nil {
			m.lastLog = "Reset failed: " + err.Error()
		} else {
			m.lastLog = "All progress cleared."
		}
		m.vitals = m.svc.Vitals().Snapshot()
	default:
		m.lastLog = "Reset cancelled."
	}
	return m, nil
}

func (m boardModel) handleKey(key string) (tea.Model, tea.Cmd) {
	v := m.svc.Vitals()
	before := m.vitals

	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "r":
		m.svc.Reload(m.ctx)
		m.svc.Logger().Printf("dashboard refresh: %s", engine.DateKey(m.svc.Now()))
		m.vitals = m.svc.Vitals().Snapshot()
		m.lastLog = fmt.Sprintf("Refreshed at %s.", m.svc.Now().Format("15:04:05"))
		return m, nil
	case "R":
		m.confirmReset = true
		m.lastLog = "Reset ALL progress? This cannot be undone. (y/N)"
		return m, nil
	case "w":
		m.vitals = v.AdjustHydration(m.ctx, engine.HydrationStep)
	case "W":
		m.vitals = v.AdjustHydration(m.ctx, -engine.HydrationStep)
	case "s":
		m.vitals = v.AdjustStudyHours(m.ctx, engine.StudyStep)
	case "S":
		m.vitals = v.AdjustStudyHours(m.ctx, -engine.StudyStep)
	case "1":
		m.vitals = v.LogAvoidance(m.ctx, engine.ViceSmoking)
	case "!":
		m.vitals = v.UndoAvoidance(m.ctx, engine.ViceSmoking)
	case "2":
		m.vitals = v.LogAvoidance(m.ctx, engine.ViceEnergyDrink)
	case "@":
		m.vitals = v.UndoAvoidance(m.ctx, engine.ViceEnergyDrink)
	case "x":
		m.vitals = v.RecordResistance(m.ctx, engine.ViceSmoking)
	case "z":
		m.vitals = v.RecordResistance(m.ctx, engine.ViceEnergyDrink)
	case "f":
		m.vitals = v.LogFocusSession(m.ctx)
	case "g":
		return m.toggleHabit(engine.HabitGym), nil
	case "h":
		return m.toggleHabit(engine.HabitHydrated), nil
	case "n":
		return m.toggleHabit(engine.HabitNoSmoking), nil
	case "d":
		return m.toggleHabit(engine.HabitDeepWork), nil
	default:
		return m, nil
	}

	m.lastLog = describeChange(before, m.vitals)
	return m, nil
}

// toggleHabit flips h in today's log and reports the outcome.
func (m boardModel) toggleHabit(h engine.Habit) boardModel {
	rec, err := m.svc.Calendar().Toggle(m.ctx, m.svc.Today(), h)
	if err != nil {
		m.lastLog = h.Label() + " toggle failed: " + err.Error()
		return m
	}
	m.lastLog = fmt.Sprintf("%s today: %v", h.Label(), h.Satisfied(rec))
	return m
}

func describeChange(before, after engine.VitalsState) string {
	var parts []string
	if d := after.XP - before.XP; d != 0 {
		parts = append(parts, fmt.Sprintf("%+d XP", d))
	}
	if after.WaterLiters != before.WaterLiters {
		parts = append(parts, "water "+ui.Liters(after.WaterLiters))
	}
	if after.StudyHours != before.StudyHours {
		parts = append(parts, fmt.Sprintf("study %dh", after.StudyHours))
	}
	if after.SmokingIncidents != before.SmokingIncidents {
		parts = append(parts, fmt.Sprintf("smoking %d", after.SmokingIncidents))
	}
	if after.EnergyDrinkIncidents != before.EnergyDrinkIncidents {
		parts = append(parts, fmt.Sprintf("energy %d", after.EnergyDrinkIncidents))
	}
	if len(parts) == 0 {
		return "No change."
	}
	msg := strings.Join(parts, ", ")
	if after.Level() > before.Level() {
		msg += "  " + ui.BadgeLevelUp
	}
	return msg
}

func (m boardModel) View() string {
	header := m.renderHeader()
	sidebar := m.renderSidebar()
	main := m.renderMain()
	footer := m.renderFooter()

	// Simple 2-column layout.
	leftW := 30
	if m.width > 0 {
		maxLeft := m.width / 2
		if maxLeft < leftW {
			leftW = maxLeft
		}
		if leftW < 20 {
			leftW = 20
		}
	}

	linesLeft := strings.Split(sidebar, "\n")
	linesRight := strings.Split(main, "\n")
	rows := max(len(linesLeft), len(linesRight))

	var body strings.Builder
	for i := 0; i < rows; i++ {
		l := ""
		r := ""
		if i < len(linesLeft) {
			l = linesLeft[i]
		}
		if i < len(linesRight) {
			r = linesRight[i]
		}
		body.WriteString(padRight(l, leftW))
		body.WriteString("  ")
		body.WriteString(r)
		body.WriteString("\n")
	}

	return header + "\n" + body.String() + footer
}

func (m boardModel) renderHeader() string {
	cd := m.countdown
	timer := fmt.Sprintf("%dd %02dh %02dm %02ds", cd.Days, cd.Hours, cd.Minutes, cd.Seconds)
	if cd.Done {
		timer = "target reached"
	}
	s := m.vitals
	rank := s.Rank()
	bar := ui.ProgressBar(s.Progress(), engine.XPPerLevel, 30)
	return ui.Panel.Render(fmt.Sprintf("%s | %s %s\n%s %s | Level %d | %d / %d XP %s",
		m.opts.Label, ui.IconTimer, timer,
		ui.RankIcon(rank.Icon), ui.RankStyle(rank.Title).Render(rank.Title),
		s.Level(), s.Progress(), engine.XPPerLevel, bar))
}

func (m boardModel) renderSidebar() string {
	lines := []string{ui.PanelTitle.Render("Keys")}
	lines = append(lines, "- w/W: water +/-")
	lines = append(lines, "- s/S: study +/-")
	lines = append(lines, "- 1/!: smoking log/undo")
	lines = append(lines, "- 2/@: energy log/undo")
	lines = append(lines, "- x/z: resist smoke/energy")
	lines = append(lines, "- f: deep work session")
	lines = append(lines, "- g/h/n/d: gym, hydrated,")
	lines = append(lines, "  no-smoking, deep work")
	lines = append(lines, "- r: refresh   R: reset")
	lines = append(lines, "- q: quit")
	return strings.Join(lines, "\n")
}

func (m boardModel) renderMain() string {
	s := m.vitals
	out := []string{ui.PanelTitle.Render("Vitals")}
	out = append(out, fmt.Sprintf("- %s Hydration   %s", ui.IconWater, ui.Liters(s.WaterLiters)))
	out = append(out, fmt.Sprintf("- %s Deep Work   %d hrs", ui.IconBook, s.StudyHours))
	out = append(out, fmt.Sprintf("- %s Smoking     %d", ui.IconCig, s.SmokingIncidents))
	out = append(out, fmt.Sprintf("- %s Energy      %d", ui.IconBolt, s.EnergyDrinkIncidents))
	out = append(out, "")

	reef := engine.ReefFor(s)
	out = append(out, ui.PanelTitle.Render("Reef"))
	out = append(out, ui.Reef(reef.Organisms, reef.Murky, reef.Glitching, 24, 0)+"  ("+ui.ReefMood(reef.Murky, reef.Glitching)+")")
	out = append(out, "")

	today := m.svc.Today()
	rec := m.svc.Calendar().Record(today)
	out = append(out, fmt.Sprintf("Today (%s, %s day)", engine.DateKey(today), engine.WorkoutKindFor(today.Weekday())))
	out = append(out, fmt.Sprintf("%s gym  %s no-smoking  %s hydrated  %s deep-work",
		ui.Check(rec.GymAttended), ui.Check(rec.Habits.NoSmoking), ui.Check(rec.Habits.Hydrated), ui.Check(rec.Habits.DeepWork)))
	return strings.Join(out, "\n")
}

func (m boardModel) renderFooter() string {
	return "\n" + m.lastLog
}

func padRight(s string, width int) string {
	w := lipgloss.Width(s)
	if width <= 0 || w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
