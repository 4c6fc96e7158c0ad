package cli

import (
	"context"

	"github.com/urfave/cli/v3"
)

type Error struct {
	Code    int
	Message string
}

func Run(ctx context.Context, argv []string) *Error {
	cmd := &cli.Command{
		Name:  "scholaragent",
		Usage: "Chat with your research papers",
		Commands: []*cli.Command{
			chatCommand(),
			historyCommand(),
			showCommand(),
			deleteCommand(),
			uploadCommand(),
			papersCommand(),
			exportCommand(),
			statusCommand(),
		},
	}

	if err := cmd.Run(ctx, argv); err != nil {
		return &Error{
			Code:    1,
			Message: err.Error(),
		}
	}

	return nil
}
