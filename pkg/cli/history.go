package cli

import (
	"context"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func historyCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "history",
		Usage: "List stored conversations",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			summaries, err := repo.ListConversations(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to list conversations")
			}

			renderSummaries(c.Root().Writer, summaries)
			return nil
		},
	}
}
