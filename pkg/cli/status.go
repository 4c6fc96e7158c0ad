package cli

import (
	"context"
	"fmt"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func readiness(ok bool) string {
	if ok {
		return "ready"
	}
	return "unavailable"
}

func statusCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "status",
		Usage: "Check backend health",
		Flags: globalFlags(&cfg),
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, err := cfg.setup(ctx)
			if err != nil {
				return err
			}

			health, err := cfg.newHealth()
			if err != nil {
				return err
			}

			h, err := health.Check(ctx)
			if err != nil {
				return goerr.Wrap(err, "backend is unreachable", goerr.V("base_url", cfg.baseURL))
			}

			w := c.Root().Writer
			fmt.Fprintf(w, "status:    %s\n", h.Status)
			fmt.Fprintf(w, "vector_db: %s\n", readiness(h.VectorDB))
			fmt.Fprintf(w, "llm:       %s\n", readiness(h.LLM))
			return nil
		},
	}
}
