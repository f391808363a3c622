package root

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"peak/internal/engine"
	"peak/internal/ui"
)

// parseStep accepts "+" or "-" (and their word forms) and returns the sign.
func parseStep(arg string) (int, error) {
	switch arg {
	case "+", "up", "add", "inc":
		return 1, nil
	case "-", "down", "remove", "dec":
		return -1, nil
	default:
		return 0, engine.ParseError{Kind: "step", Input: arg}
	}
}

func exactStep(cmd *cobra.Command, args []string) error {
	if len(args) != 1 {
		return errors.New("expected + or -")
	}
	_, err := parseStep(args[0])
	return err
}

// printDelta reports what a mutation changed and flags a level-up.
func printDelta(out io.Writer, before, after engine.VitalsState) {
	if d := after.XP - before.XP; d > 0 {
		fmt.Fprintf(out, "%s %s\n", ui.IconSparkle, ui.Good.Render(fmt.Sprintf("+%d XP", d)))
	}
	if after.Level() > before.Level() {
		r := after.Rank()
		fmt.Fprintf(out, "%s Level %d %s\n", ui.BadgeLevelUp, after.Level(), ui.RankStyle(r.Title).Render(r.Title))
	}
	fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d  %s %d/%d XP", after.Level(), ui.ProgressBar(after.Progress(), engine.XPPerLevel, 20), after.Progress(), engine.XPPerLevel)))
}

func newStatusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show today's vitals, level and rank",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := svc.Vitals().Snapshot()
			r := s.Rank()
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconPeak, "Status "+s.Date))
			fmt.Fprintln(out, ui.LabelValue("Rank", ui.RankIcon(r.Icon)+" "+ui.RankStyle(r.Title).Render(r.Title)))
			fmt.Fprintln(out, ui.LabelValue("Level", s.Level()))
			fmt.Fprintln(out, ui.LabelValue("XP", fmt.Sprintf("%d total  %s %d/%d", s.XP, ui.ProgressBar(s.Progress(), engine.XPPerLevel, 20), s.Progress(), engine.XPPerLevel)))
			if next, ok := engine.NextRank(s.XP); ok {
				fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Next rank %s at level %d (%d XP to go)", next.Title, next.Level, engine.XPRequiredForLevel(next.Level)-s.XP)))
			}
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("Vitals"))
			fmt.Fprintf(out, "- %s Hydration: %s\n", ui.IconWater, ui.Water.Render(ui.Liters(s.WaterLiters)))
			fmt.Fprintf(out, "- %s Deep work: %d hrs\n", ui.IconBook, s.StudyHours)
			for _, v := range engine.Vices {
				n := s.Incidents(v)
				style := ui.Good
				if n > 0 {
					style = ui.Bad
				}
				fmt.Fprintf(out, "- %s %s: %s\n", viceIcon(v), v.Label(), style.Render(fmt.Sprint(n)))
			}
			fmt.Fprintln(out, "")

			w := engine.WorkoutFor(svc.Today())
			fmt.Fprintf(out, "%s %s %s\n", ui.IconGym, ui.H2.Render(w.Name), ui.Muted.Render("("+w.Focus+")"))
			return nil
		},
	}
	return cmd
}

func viceIcon(v engine.Vice) string {
	if v == engine.ViceSmoking {
		return ui.IconCig
	}
	return ui.IconBolt
}

func newWaterCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "water <+|->",
		Short: "Add or remove 0.5L of water",
		Args:  exactStep,
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, _ := parseStep(args[0])
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v := svc.Vitals()
			before := v.Snapshot()
			after := v.AdjustHydration(ctx, float64(sign)*engine.HydrationStep)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Hydration: %s\n", ui.IconWater, ui.Water.Render(ui.Liters(after.WaterLiters)))
			printDelta(out, before, after)
			return nil
		},
	}
	return cmd
}

func newStudyCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "study <+|->",
		Short: "Add or remove one hour of deep work",
		Args:  exactStep,
		RunE: func(cmd *cobra.Command, args []string) error {
			sign, _ := parseStep(args[0])
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v := svc.Vitals()
			before := v.Snapshot()
			after := v.AdjustStudyHours(ctx, sign*engine.StudyStep)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "%s Deep work: %d hrs\n", ui.IconBook, after.StudyHours)
			printDelta(out, before, after)
			return nil
		},
	}
	return cmd
}

func newFocusCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Log a deep-work session (+20 XP)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v := svc.Vitals()
			before := v.Snapshot()
			after := v.LogFocusSession(ctx)
			printDelta(cmd.OutOrStdout(), before, after)
			return nil
		},
	}
	return cmd
}

func newViceCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "vice",
		Short: "Log, undo or resist a vice (smoking|energy)",
	}
	cmd.AddCommand(
		newViceActionCmd(a, "log", "Log one incident", func(ctx context.Context, v *engine.Vitals, kind engine.Vice) engine.VitalsState {
			return v.LogAvoidance(ctx, kind)
		}),
		newViceActionCmd(a, "undo", "Remove one incident logged by mistake", func(ctx context.Context, v *engine.Vitals, kind engine.Vice) engine.VitalsState {
			return v.UndoAvoidance(ctx, kind)
		}),
		newViceActionCmd(a, "resist", "Record resisting an urge (+15 XP)", func(ctx context.Context, v *engine.Vitals, kind engine.Vice) engine.VitalsState {
			return v.RecordResistance(ctx, kind)
		}),
	)
	return cmd
}

type viceAction func(ctx context.Context, v *engine.Vitals, kind engine.Vice) engine.VitalsState

func newViceActionCmd(a *app, use, short string, action viceAction) *cobra.Command {
	cmd := &cobra.Command{
		Use:   use + " <smoking|energy>",
		Short: short,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("vice is required (smoking|energy)")
			}
			_, err := engine.ParseVice(args[0])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := engine.ParseVice(args[0])
			if err != nil {
				return err
			}
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			v := svc.Vitals()
			before := v.Snapshot()
			after := action(ctx, v, kind)

			out := cmd.OutOrStdout()
			n := after.Incidents(kind)
			style := ui.Good
			if n > 0 {
				style = ui.Bad
			}
			fmt.Fprintf(out, "%s %s today: %s\n", viceIcon(kind), kind.Label(), style.Render(fmt.Sprint(n)))
			printDelta(out, before, after)
			return nil
		},
	}
	return cmd
}
