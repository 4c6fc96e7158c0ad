package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/urfave/cli/v3"
)

func deleteCommand() *cli.Command {
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
		Name:  "delete",
		Usage: "Delete a stored conversation",
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

			if err := repo.DeleteConversation(ctx, model.ConversationID(id)); err != nil {
				return goerr.Wrap(err, "failed to delete conversation", goerr.V("conversation_id", id))
			}

			fmt.Fprintf(c.Root().Writer, "Deleted %s\n", id)
			return nil
		},
	}
}
