package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/urfave/cli/v3"
)

func showCommand() *cli.Command {
	var (
		cfg config
		id  string
	)

	flags := append(globalFlags(&cfg),
		&cli.StringFlag{
			Name:        "id",
			Aliases:     []string{"i"},
			Usage:       "Conversation ID",
			Required:    true,
			Destination: &id,
		},
	)

	return &cli.Command{
		Name:  "show",
		Usage: "Print one stored conversation",
		Flags: flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			repo, err := cfg.newRepository()
			if err != nil {
				return err
			}

			conv, err := repo.GetConversation(ctx, model.ConversationID(id))
			if err != nil {
				return goerr.Wrap(err, "failed to get conversation", goerr.V("conversation_id", id))
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "%s  %s\n\n", conv.ID, conv.Title)
			for _, msg := range conv.Messages {
				renderMessage(w, msg)
			}
			return nil
		},
	}
}
