package root

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/spf13/cobra"

	"peak/internal/engine"
	"peak/internal/ui"
)

func parseTaskID(arg string) (int, error) {
	n, err := strconv.Atoi(arg)
	if err != nil || n < 1 {
		return 0, engine.ParseError{Kind: "task number", Input: arg}
	}
	return n, nil
}

func taskMarker(ts engine.TaskStatus) string {
	switch {
	case ts.Done:
		return ui.Good.Render("[x]")
	case ts.Next:
		return ui.Title.Render("[" + ui.IconNext + "]")
	default:
		return ui.Muted.Render("[ ]")
	}
}

func printModule(out io.Writer, ms engine.ModuleStatus, details bool) {
	fmt.Fprintf(out, "%s %s\n", ui.H2.Render(ms.Module.Name), ui.Muted.Render(fmt.Sprintf("(%s, %d/%d complete)", ms.Module.ID, ms.Completed, len(ms.Tasks))))
	if details {
		fmt.Fprintln(out, ui.LabelValue("Tech", ms.Module.Tech))
		fmt.Fprintln(out, ui.LabelValue("Advice", ms.Module.Advice))
		fmt.Fprintln(out, ui.LabelValue("Structure", ms.Module.Structure))
	}
	for _, ts := range ms.Tasks {
		text := ts.Task.Text
		switch {
		case ts.Done:
			text = ui.Muted.Render(text)
		case ts.Next:
			text = ui.Key.Render(text) + " " + ui.Muted.Render("(next)")
		}
		fmt.Fprintf(out, "  %s %d. %s\n", taskMarker(ts), ts.Task.ID, text)
	}
}

func printTask(out io.Writer, ms engine.ModuleStatus, ts engine.TaskStatus) {
	fmt.Fprintf(out, "%s %s %s\n", taskMarker(ts), ui.H2.Render(ts.Task.Text), ui.Muted.Render("("+ms.Module.Name+")"))
	fmt.Fprintln(out, ts.Task.Specifics)
	if ts.Task.Prev != "" {
		fmt.Fprintln(out, ui.LabelValue("Previous", ts.Task.Prev))
	}
	if ts.Task.Next != "" {
		fmt.Fprintln(out, ui.LabelValue("Next step", ts.Task.Next))
	}
}

func newUniCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "uni",
		Short: "Show the academic roadmap",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconGrad, "Academic Roadmap"))
			for _, ms := range svc.Academics().Modules() {
				fmt.Fprintln(out, "")
				printModule(out, ms, false)
			}
			return nil
		},
	}

	show := &cobra.Command{
		Use:   "show <module> [task]",
		Short: "Show module guidance or a task's details",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 || len(args) > 2 {
				return errors.New("usage: peak uni show <module> [task]")
			}
			if len(args) == 2 {
				_, err := parseTaskID(args[1])
				return err
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			out := cmd.OutOrStdout()
			if len(args) == 1 {
				ms, err := svc.Academics().Module(args[0])
				if err != nil {
					return err
				}
				printModule(out, ms, true)
				return nil
			}
			task, _ := parseTaskID(args[1])
			ms, ts, err := svc.Academics().Task(args[0], task)
			if err != nil {
				return err
			}
			printTask(out, ms, ts)
			return nil
		},
	}

	toggle := &cobra.Command{
		Use:   "toggle <module> <task>",
		Short: "Mark a task done or open again",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 2 {
				return errors.New("usage: peak uni toggle <module> <task>")
			}
			_, err := parseTaskID(args[1])
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			task, _ := parseTaskID(args[1])
			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			if _, err := svc.Academics().Toggle(ctx, args[0], task); err != nil {
				return err
			}
			ms, err := svc.Academics().Module(args[0])
			if err != nil {
				return err
			}
			printModule(cmd.OutOrStdout(), ms, false)
			return nil
		},
	}

	cmd.AddCommand(show, toggle)
	return cmd
}
