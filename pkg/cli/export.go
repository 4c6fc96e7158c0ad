package cli

import (
	"context"
	"fmt"

	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/usecase/export"
	"github.com/urfave/cli/v3"
)

func exportCommand() *cli.Command {
	var (
		cfg    config
		id     string
		format string
		outDir string
	)

	flags := append(globalFlags(&cfg),
		&cli.StringFlag{
			Name:        "id",
			Aliases:     []string{"i"},
			Usage:       "Conversation ID",
			Required:    true,
			Destination: &id,
		},
		&cli.StringFlag{
			Name:        "format",
			Aliases:     []string{"f"},
			Usage:       "Export format (markdown, bibtex, pdf)",
			Value:       string(model.ExportMarkdown),
			Destination: &format,
		},
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Directory to write the artifact into",
			Value:       ".",
			Destination: &outDir,
		},
	)

	return &cli.Command{
		Name:  "export",
		Usage: "Download a conversation artifact",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			exporter, err := cfg.newExporter()
			if err != nil {
				return err
			}

			path, err := export.New(exporter).ExportAs(ctx,
				model.ExportFormat(format), model.ConversationID(id), outDir)
			if err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "Exported to %s\n", path)
			return nil
		},
	}
}
