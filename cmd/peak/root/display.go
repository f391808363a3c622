package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"time"

	"github.com/spf13/cobra"

	"peak/internal/engine"
	"peak/internal/schedule"
	"peak/internal/ui"
)

func newRanksCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "ranks",
		Short: "Show the rank roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := svc.Vitals().Snapshot()
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Rank Roadmap"))
			fmt.Fprintln(out, ui.Muted.Render(fmt.Sprintf("Level %d, %d XP total", s.Level(), s.XP)))
			fmt.Fprintln(out, "")
			for _, step := range engine.Roadmap(s.XP) {
				r := step.Rank
				line := fmt.Sprintf("%s %-9s level %2d", ui.RankIcon(r.Icon), r.Title, r.Level)
				switch {
				case step.Current:
					fmt.Fprintf(out, "- %s %s\n", ui.RankStyle(r.Title).Render(line), ui.Good.Render("(current)"))
				case step.Unlocked:
					fmt.Fprintf(out, "- %s %s\n", line, ui.Good.Render(ui.IconDone))
				default:
					fmt.Fprintf(out, "- %s %s\n", ui.Muted.Render(line), ui.Muted.Render(fmt.Sprintf("%s %d XP to go", ui.IconLock, step.XPToUnlock)))
				}
			}
			return nil
		},
	}
	return cmd
}

func newReefCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reef",
		Short: "Show the aquarium: organisms grow with XP, vices cloud the water",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			s := svc.Vitals().Snapshot()
			reef := engine.ReefFor(s)
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconFish, "Reef"))
			fmt.Fprintln(out, ui.LabelValue("Organisms", reef.Organisms))
			fmt.Fprintln(out, ui.Reef(reef.Organisms, reef.Murky, reef.Glitching, 40, 10))
			switch {
			case reef.Murky && reef.Glitching:
				fmt.Fprintln(out, ui.Bad.Render("Water is murky and the reef is glitching."))
			case reef.Murky:
				fmt.Fprintln(out, ui.Bad.Render("Water is murky: smoking logged today."))
			case reef.Glitching:
				fmt.Fprintln(out, ui.Warn.Render("Reef is glitching: energy drink logged today."))
			default:
				fmt.Fprintln(out, ui.Good.Render("Water is clear."))
			}
			return nil
		},
	}
	return cmd
}

func formatCountdown(cd engine.Countdown) string {
	if cd.Done {
		return "target reached"
	}
	return fmt.Sprintf("%dd %02dh %02dm %02ds", cd.Days, cd.Hours, cd.Minutes, cd.Seconds)
}

func newCountdownCmd(a *app) *cobra.Command {
	var watch bool

	cmd := &cobra.Command{
		Use:   "countdown",
		Short: "Show the time left until the configured target",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.cfg.Target(time.Now())
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			label := ui.Title.Render(a.cfg.CountdownLabel)

			if !watch {
				fmt.Fprintf(out, "%s %s %s\n", ui.IconTimer, label, formatCountdown(engine.Remaining(time.Now(), target)))
				return nil
			}

			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
			defer stop()
			return watchCountdown(ctx, out, label, target)
		},
	}

	cmd.Flags().BoolVarP(&watch, "watch", "w", false, "Refresh every second until interrupted")
	return cmd
}

func watchCountdown(ctx context.Context, out io.Writer, label string, target time.Time) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	err := schedule.Every(ctx, time.Second, func(now time.Time) {
		cd := engine.Remaining(now, target)
		fmt.Fprintf(out, "\r%s %s %s   ", ui.IconTimer, label, formatCountdown(cd))
		if cd.Done {
			cancel()
		}
	})
	fmt.Fprintln(out)
	if errors.Is(err, context.Canceled) {
		return nil
	}
	return err
}
