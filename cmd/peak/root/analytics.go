package root

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"peak/internal/engine"
	"peak/internal/ui"
)

func newAnalyticsCmd(a *app) *cobra.Command {
	var days int

	cmd := &cobra.Command{
		Use:   "analytics",
		Short: "Summarize recent logs, streaks and achievements",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if days < 1 {
				return fmt.Errorf("--days must be at least 1 (got %d)", days)
			}
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			today := svc.Today()
			cal := svc.Calendar()
			out := cmd.OutOrStdout()

			sum := cal.Summary(today.AddDate(0, 0, -(days-1)), today)
			fmt.Fprintln(out, ui.Heading(ui.IconSparkle, fmt.Sprintf("Last %d days", days)))
			printSummary(out, sum)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render(ui.IconFlame+" Streaks"))
			for _, h := range engine.Habits {
				n := cal.Streak(today, h)
				style := ui.Muted
				if n > 0 {
					style = ui.Good
				}
				fmt.Fprintf(out, "- %-12s %s\n", h.Label(), style.Render(fmt.Sprintf("%d days", n)))
			}
			fmt.Fprintln(out, "")

			checker := engine.NewAchievementChecker(svc.Vitals().Snapshot(), cal, today)
			fmt.Fprintln(out, ui.H2.Render(fmt.Sprintf("%s Achievements %d/%d", ui.IconTrophy, checker.CountEarned(), checker.CountTotal())))
			for _, ach := range checker.GetAchievements() {
				if ach.Earned {
					fmt.Fprintf(out, "- %s %s %s\n", ach.Icon, ui.Gold.Render(ach.Name), ui.Muted.Render(ach.Description))
				} else {
					fmt.Fprintf(out, "- %s %s %s\n", ui.IconLock, ui.Muted.Render(ach.Name), ui.Muted.Render(ach.Description))
				}
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&days, "days", "d", 7, "Window size in days, ending today")
	return cmd
}

func printSummary(out io.Writer, s engine.Summary) {
	fmt.Fprintln(out, ui.Muted.Render(s.From+" .. "+s.To))
	fmt.Fprintln(out, ui.LabelValue("Days logged", fmt.Sprintf("%d/%d", s.DaysLogged, s.Days)))
	fmt.Fprintln(out, ui.LabelValue("Gym", fmt.Sprintf("%d  %s", s.GymDays, ui.ProgressBar(s.GymDays, s.Days, 14))))
	fmt.Fprintln(out, ui.LabelValue("Uni hours", strconv.FormatFloat(s.StudyHours, 'f', -1, 64)))
	fmt.Fprintln(out, ui.LabelValue("No smoking", fmt.Sprintf("%d  %s", s.NoSmokingDays, ui.ProgressBar(s.NoSmokingDays, s.Days, 14))))
	fmt.Fprintln(out, ui.LabelValue("Hydrated", fmt.Sprintf("%d  %s", s.HydratedDays, ui.ProgressBar(s.HydratedDays, s.Days, 14))))
	fmt.Fprintln(out, ui.LabelValue("Deep work", fmt.Sprintf("%d  %s", s.DeepWorkDays, ui.ProgressBar(s.DeepWorkDays, s.Days, 14))))
}
