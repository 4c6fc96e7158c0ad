package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/briandowns/spinner"
	"github.com/chzyer/readline"
	"github.com/m-mizutani/goerr/v2"
	"github.com/scholaragent/scholaragent/pkg/model"
	"github.com/scholaragent/scholaragent/pkg/repository"
	"github.com/scholaragent/scholaragent/pkg/usecase/chat"
	"github.com/scholaragent/scholaragent/pkg/usecase/export"
	"github.com/scholaragent/scholaragent/pkg/usecase/papers"
	"github.com/scholaragent/scholaragent/pkg/usecase/view"
	"github.com/scholaragent/scholaragent/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func chatCommand() *cli.Command {
	var cfg config

	return &cli.Command{
		Name:  "chat",
		Usage: "Interactive session: upload papers, manage them, ask questions",
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
			answer, err := cfg.newAnswer()
			if err != nil {
				return err
			}
			papersClient, err := cfg.newPapers()
			if err != nil {
				return err
			}
			exporter, err := cfg.newExporter()
			if err != nil {
				return err
			}

			sh := &shell{
				w:       c.Root().Writer,
				nav:     view.New(),
				repo:    repo,
				papers:  papers.New(papersClient),
				exports: export.New(exporter),
			}
			sh.session = chat.New(chat.NewInput{
				Repo:      repo,
				Answer:    answer,
				OnRefresh: sh.refreshSummaries,
			})

			return sh.run(ctx)
		},
	}
}

// shell drives the three screens over a readline loop. The navigator decides
// which screen is active and whether chat is reachable yet; the session and
// the usecases do the actual work.
type shell struct {
	w       io.Writer
	nav     *view.Navigator
	session *chat.Session
	repo    repository.Repository
	papers  *papers.UseCase
	exports *export.Trigger

	summaries []model.ConversationSummary
}

func (sh *shell) run(ctx context.Context) error {
	rl, err := readline.New("> ")
	if err != nil {
		return goerr.Wrap(err, "failed to initialize readline")
	}
	defer rl.Close()

	fmt.Fprintf(sh.w, "ScholarAgent. Type /help for commands, /exit to quit.\n")
	sh.refreshSummaries(ctx)

	for {
		rl.SetPrompt(sh.prompt())
		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if err != nil {
			return nil
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "/") {
			if quit := sh.handleCommand(ctx, line); quit {
				return nil
			}
			continue
		}

		sh.handleInput(ctx, line)
	}
}

func (sh *shell) prompt() string {
	screen := sh.nav.Active()
	if screen == view.ScreenChat {
		if id := sh.session.ID(); id != "" {
			return fmt.Sprintf("[chat %s]> ", id)
		}
		return "[chat]> "
	}
	return fmt.Sprintf("[%s]> ", screen)
}

func (sh *shell) handleCommand(ctx context.Context, line string) bool {
	fields := strings.Fields(line)
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "/exit", "/quit":
		return true

	case "/help":
		sh.printHelp()

	case "/upload":
		sh.cmdUpload(ctx, args)

	case "/papers":
		sh.cmdPapers(ctx)

	case "/rm":
		sh.cmdRemovePaper(ctx, args)

	case "/chat":
		if err := sh.nav.Goto(view.ScreenChat); err != nil {
			fmt.Fprintf(sh.w, "Upload a PDF first to unlock chat\n")
		}

	case "/new":
		sh.session.Reset()
		fmt.Fprintf(sh.w, "Started a new chat\n")

	case "/history":
		sh.refreshSummaries(ctx)
		renderSummaries(sh.w, sh.summaries)

	case "/load":
		sh.cmdLoad(ctx, args)

	case "/delete":
		sh.cmdDelete(ctx, args)

	case "/export":
		sh.cmdExport(ctx, args)

	default:
		fmt.Fprintf(sh.w, "Unknown command %s (try /help)\n", cmd)
	}

	return false
}

// handleInput treats plain text as a question when the chat screen is active
func (sh *shell) handleInput(ctx context.Context, line string) {
	if sh.nav.Active() != view.ScreenChat {
		fmt.Fprintf(sh.w, "Switch to chat first (/chat) to ask questions\n")
		return
	}

	fmt.Fprintf(sh.w, "you> %s\n", line)

	sp := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(os.Stderr))
	sp.Suffix = " Thinking..."
	sp.Start()
	err := sh.session.Submit(ctx, line)
	sp.Stop()

	if err != nil {
		switch {
		case errors.Is(err, chat.ErrSubmitInFlight):
			fmt.Fprintf(sh.w, "Still working on the previous question\n")
		case errors.Is(err, chat.ErrEmptyMessage):
			// Blank lines never reach Submit; nothing to report
		default:
			fmt.Fprintf(sh.w, "Submit failed: %s\n", err)
		}
		return
	}

	msgs := sh.session.Messages()
	if len(msgs) == 0 {
		return
	}
	last := msgs[len(msgs)-1]
	if last.Role == model.RoleAssistant {
		renderMessage(sh.w, last)
	}
}

func (sh *shell) cmdUpload(ctx context.Context, args []string) {
	if len(args) == 0 {
		_ = sh.nav.Goto(view.ScreenUpload)
		fmt.Fprintf(sh.w, "Upload screen. Use /upload <path-to-pdf>\n")
		return
	}

	result, err := sh.papers.Upload(ctx, args[0])
	if err != nil {
		fmt.Fprintf(sh.w, "Upload failed: %s\n", err)
		return
	}

	fmt.Fprintf(sh.w, "%s uploaded (%d chunks)\n", result.Filename, result.NumChunks)
	sh.nav.UnlockChat()
}

func (sh *shell) cmdPapers(ctx context.Context) {
	_ = sh.nav.Goto(view.ScreenPapers)

	list, err := sh.papers.List(ctx)
	if err != nil {
		fmt.Fprintf(sh.w, "Failed to list papers: %s\n", err)
		return
	}
	renderPapers(sh.w, list)
}

func (sh *shell) cmdRemovePaper(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(sh.w, "Usage: /rm <filename>\n")
		return
	}

	if err := sh.papers.Delete(ctx, args[0]); err != nil {
		fmt.Fprintf(sh.w, "Failed to delete paper: %s\n", err)
		return
	}
	fmt.Fprintf(sh.w, "Deleted %s\n", args[0])
}

func (sh *shell) cmdLoad(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(sh.w, "Usage: /load <conversation-id>\n")
		return
	}

	id := model.ConversationID(args[0])
	if err := sh.session.Load(ctx, id); err != nil {
		if errors.Is(err, repository.ErrConversationNotFound) {
			fmt.Fprintf(sh.w, "No such conversation: %s\n", id)
		} else {
			fmt.Fprintf(sh.w, "Failed to load conversation: %s\n", err)
		}
		return
	}

	for _, msg := range sh.session.Messages() {
		renderMessage(sh.w, msg)
	}
	if err := sh.nav.Goto(view.ScreenChat); err != nil {
		fmt.Fprintf(sh.w, "Loaded %s. Upload a PDF to unlock chat before asking more\n", id)
	}
}

func (sh *shell) cmdDelete(ctx context.Context, args []string) {
	var id model.ConversationID
	switch {
	case len(args) > 0:
		id = model.ConversationID(args[0])
	case sh.session.ID() != "":
		id = sh.session.ID()
	default:
		fmt.Fprintf(sh.w, "Usage: /delete <conversation-id>\n")
		return
	}

	if err := sh.session.DeleteActive(ctx, id); err != nil {
		fmt.Fprintf(sh.w, "Failed to delete conversation: %s\n", err)
		return
	}
	fmt.Fprintf(sh.w, "Deleted %s\n", id)
	sh.refreshSummaries(ctx)
}

func (sh *shell) cmdExport(ctx context.Context, args []string) {
	if len(args) == 0 {
		fmt.Fprintf(sh.w, "Usage: /export <markdown|bibtex|pdf> [conversation-id]\n")
		return
	}

	format := model.ExportFormat(args[0])
	id := sh.session.ID()
	if len(args) > 1 {
		id = model.ConversationID(args[1])
	}

	path, err := sh.exports.ExportAs(ctx, format, id, ".")
	if err != nil {
		switch {
		case errors.Is(err, export.ErrNoConversation):
			fmt.Fprintf(sh.w, "Nothing to export yet\n")
		case errors.Is(err, model.ErrInvalidExportFormat):
			fmt.Fprintf(sh.w, "Unknown format %q (markdown, bibtex, pdf)\n", args[0])
		default:
			fmt.Fprintf(sh.w, "Export failed: %s\n", err)
		}
		return
	}
	fmt.Fprintf(sh.w, "Exported to %s\n", path)
}

// refreshSummaries refetches the conversation list. Best effort: a failed
// refresh only logs.
func (sh *shell) refreshSummaries(ctx context.Context) {
	summaries, err := sh.repo.ListConversations(ctx)
	if err != nil {
		logging.From(ctx).Warn("failed to refresh conversation list", "error", err)
		return
	}
	sh.summaries = summaries
}

func (sh *shell) printHelp() {
	fmt.Fprint(sh.w, `Commands:
  /upload [file.pdf]   Switch to the upload screen, or upload a PDF
  /papers              List uploaded papers
  /rm <filename>       Delete an uploaded paper
  /chat                Switch to the chat screen
  /new                 Start a new chat
  /history             List saved chats
  /load <id>           Load a saved chat
  /delete [id]         Delete a chat (current one if no id given)
  /export <fmt> [id]   Export a chat as markdown, bibtex, or pdf
  /help                Show this help
  /exit                Quit
Anything else is sent as a question when the chat screen is active.
`)
}
