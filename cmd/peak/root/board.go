package root

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"peak/internal/tui"
)

func newBoardCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "board",
		Short: "Open the TUI dashboard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			target, err := a.cfg.Target(time.Now())
			if err != nil {
				return err
			}

			ctx := context.Background()
			svc, cleanup, err := a.openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			return tui.RunBoard(ctx, svc, cmd.OutOrStdout(), tui.BoardOptions{
				Label:  a.cfg.CountdownLabel,
				Target: target,
			})
		},
	}

	return cmd
}
