package cli

import (
	"context"
	"fmt"

	"github.com/scholaragent/scholaragent/pkg/usecase/papers"
	"github.com/urfave/cli/v3"
)

func papersCommand() *cli.Command {
	var (
		cfg    config
		remove string
	)

	flags := append(globalFlags(&cfg),
		&cli.StringFlag{
			Name:        "delete",
			Aliases:     []string{"d"},
			Usage:       "Delete the paper with this filename instead of listing",
			Destination: &remove,
		},
	)

	return &cli.Command{
		Name:  "papers",
		Usage: "List uploaded papers, or delete one",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			client, err := cfg.newPapers()
			if err != nil {
				return err
			}
			uc := papers.New(client)

			if remove != "" {
				if err := uc.Delete(ctx, remove); err != nil {
					return err
				}
				fmt.Fprintf(c.Root().Writer, "Deleted %s\n", remove)
				return nil
			}

			list, err := uc.List(ctx)
			if err != nil {
				return err
			}
			renderPapers(c.Root().Writer, list)
			return nil
		},
	}
}
