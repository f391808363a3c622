package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"peak/internal/engine"
	"peak/internal/storage"
	"peak/internal/ui"
)

// resolveDate returns the day named by flag, or today when flag is empty.
func resolveDate(svc *engine.Service, flag string) (time.Time, error) {
	if strings.TrimSpace(flag) == "" {
		return svc.Today(), nil
	}
	return engine.ParseDate(strings.TrimSpace(flag))
}

func printDay(out io.Writer, day time.Time, rec storage.DailyLog) {
	fmt.Fprintln(out, ui.Heading(ui.IconCalendar, day.Format("Monday, Jan 2 2006")))
	fmt.Fprintf(out, "- %s %s\n", ui.Check(rec.GymAttended), engine.HabitGym.Label())
	fmt.Fprintf(out, "- %s %s: %s\n", ui.Check(rec.StudyHours > 0), engine.HabitStudy.Label(), strconv.FormatFloat(rec.StudyHours, 'f', -1, 64))
	fmt.Fprintf(out, "- %s %s\n", ui.Check(rec.Habits.NoSmoking), engine.HabitNoSmoking.Label())
	fmt.Fprintf(out, "- %s %s\n", ui.Check(rec.Habits.Hydrated), engine.HabitHydrated.Label())
	fmt.Fprintf(out, "- %s %s\n", ui.Check(rec.Habits.DeepWork), engine.HabitDeepWork.Label())
}

func newLogCmd(a *app) *cobra.Command {
	var date string

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show or edit the daily log (gym, uni hours, habits)",
	}
	cmd.PersistentFlags().StringVar(&date, "date", "", "Day to act on (YYYY-MM-DD, default today)")

	show := &cobra.Command{
		Use:   "show",
		Short: "Show a day's log and planned workout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := resolveDate(svc, date)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			printDay(out, day, svc.Calendar().Record(day))
			fmt.Fprintln(out, "")

			w := engine.WorkoutFor(day)
			fmt.Fprintf(out, "%s %s %s\n", ui.IconGym, ui.H2.Render(w.Name), ui.Muted.Render("("+w.Focus+")"))
			for _, ex := range w.Exercises {
				fmt.Fprintf(out, "- %s %s %s\n", ex.Name, ui.Key.Render(ex.Sets+"x"+ex.Reps), ui.Muted.Render(ex.Note))
			}
			return nil
		},
	}

	gym := &cobra.Command{
		Use:   "gym",
		Short: "Toggle gym attendance",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return toggleHabit(a, cmd, date, engine.HabitGym)
		},
	}

	study := &cobra.Command{
		Use:   "study <hours>",
		Short: "Set uni hours (0-12, half-hour steps)",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("hours is required")
			}
			if _, err := strconv.ParseFloat(args[0], 64); err != nil {
				return fmt.Errorf("invalid hours %q: %w", args[0], err)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			hours, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			day, err := resolveDate(svc, date)
			if err != nil {
				return err
			}
			rec := svc.Calendar().SetField(ctx, day, engine.LogPatch{StudyHours: &hours})
			printDay(cmd.OutOrStdout(), day, rec)
			return nil
		},
	}

	habit := &cobra.Command{
		Use:   "habit <no-smoking|hydrated|deep-work>",
		Short: "Toggle a daily habit",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("habit is required (no-smoking|hydrated|deep-work)")
			}
			h, err := engine.ParseHabit(args[0])
			if err != nil {
				return err
			}
			if !h.IsFlag() {
				return fmt.Errorf("habit %q cannot be toggled; use `peak log study <hours>`", h)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := engine.ParseHabit(args[0])
			if err != nil {
				return err
			}
			return toggleHabit(a, cmd, date, h)
		},
	}

	cmd.AddCommand(show, gym, study, habit)
	return cmd
}

func toggleHabit(a *app, cmd *cobra.Command, date string, h engine.Habit) error {
	ctx := context.Background()
	svc, cleanup, err := a.openService(ctx)
	if err != nil {
		return err
	}
	defer cleanup()

	day, err := resolveDate(svc, date)
	if err != nil {
		return err
	}
	rec, err := svc.Calendar().Toggle(ctx, day, h)
	if err != nil {
		return err
	}
	printDay(cmd.OutOrStdout(), day, rec)
	return nil
}

func newCalendarCmd(a *app) *cobra.Command {
	var month string

	cmd := &cobra.Command{
		Use:   "calendar",
		Short: "Show a month of logs (G gym, S study, * both, · logged)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := svc.Today()
			year, mon := today.Year(), today.Month()
			if month != "" {
				t, err := time.ParseInLocation("2006-01", month, time.Local)
				if err != nil {
					return fmt.Errorf("invalid month %q (want YYYY-MM): %w", month, err)
				}
				year, mon = t.Year(), t.Month()
			}

			grid := svc.Calendar().Month(year, mon)
			renderMonth(cmd.OutOrStdout(), grid, engine.DateKey(today))
			return nil
		},
	}

	cmd.Flags().StringVarP(&month, "month", "m", "", "Month to show (YYYY-MM, default current)")
	return cmd
}

// renderMonth prints a Monday-first grid. Each cell is four columns wide.
func renderMonth(out io.Writer, g engine.MonthGrid, todayKey string) {
	fmt.Fprintln(out, ui.Heading(ui.IconCalendar, fmt.Sprintf("%s %d", g.Month, g.Year)))
	fmt.Fprintln(out, ui.Muted.Render(" Mo  Tu  We  Th  Fr  Sa  Su"))

	var b strings.Builder
	col := 0
	for i := 0; i < g.FirstWeekdayIndex; i++ {
		b.WriteString("    ")
		col++
	}
	for _, c := range g.Days {
		b.WriteString(dayCell(c, c.Date == todayKey))
		col++
		if col%7 == 0 {
			b.WriteString("\n")
		}
	}
	if col%7 != 0 {
		b.WriteString("\n")
	}
	fmt.Fprint(out, b.String())
}

func dayCell(c engine.DayCell, today bool) string {
	mark := " "
	switch {
	case c.Gym && c.Study:
		mark = "*"
	case c.Gym:
		mark = "G"
	case c.Study:
		mark = "S"
	case c.HasRecord:
		mark = "·"
	}
	num := fmt.Sprintf("%2d", c.Day)
	if today {
		num = ui.SelectedDay.Render(num)
	}
	switch mark {
	case "G", "*":
		mark = ui.Good.Render(mark)
	case "S":
		mark = ui.H2.Render(mark)
	}
	return " " + num + mark
}
