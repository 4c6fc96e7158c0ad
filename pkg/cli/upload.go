package cli

import (
	"context"
	"fmt"

	"github.com/scholaragent/scholaragent/pkg/usecase/papers"
	"github.com/urfave/cli/v3"
)

func uploadCommand() *cli.Command {
	var (
		cfg  config
		file string
	)

	flags := append(globalFlags(&cfg),
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "Path to a PDF file",
			Required:    true,
			Destination: &file,
		},
	)

	return &cli.Command{
		Name:  "upload",
		Usage: "Upload a PDF for indexing",
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

			result, err := papers.New(client).Upload(ctx, file)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "%s uploaded (%d chunks): %s\n",
				result.Filename, result.NumChunks, result.Message)
			return nil
		},
	}
}
