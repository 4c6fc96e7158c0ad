package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/scholaragent/scholaragent/pkg/model"
)

const sourceSnippetLen = 150

// renderMessage writes one turn the way the chat screen shows it
func renderMessage(w io.Writer, msg model.Message) {
	if msg.Role == model.RoleUser {
		fmt.Fprintf(w, "you> %s\n", msg.Content)
		return
	}

	fmt.Fprintf(w, "%s\n", msg.Content)
	renderReasoning(w, msg.Reasoning)
	renderSources(w, msg.Sources)
}

func renderReasoning(w io.Writer, steps []model.ReasoningStep) {
	if len(steps) == 0 {
		return
	}

	fmt.Fprintf(w, "\nAgent reasoning:\n")
	for _, step := range steps {
		fmt.Fprintf(w, "  - %s: %s\n", step.Step, step.Description)
	}
}

func renderSources(w io.Writer, sources []model.Source) {
	groups := model.GroupSources(sources)
	if len(groups) == 0 {
		return
	}

	fmt.Fprintf(w, "\nSources:\n")
	for _, group := range groups {
		noun := "chunks"
		if len(group.Sources) == 1 {
			noun = "chunk"
		}
		fmt.Fprintf(w, "  [%s] %d %s\n", group.PaperName, len(group.Sources), noun)

		for _, src := range group.Sources {
			var meta []string
			if src.Page > 0 {
				meta = append(meta, fmt.Sprintf("p.%d", src.Page))
			}
			if src.Score > 0 {
				meta = append(meta, fmt.Sprintf("%.0f%% match", src.Score*100))
			}
			if len(meta) > 0 {
				fmt.Fprintf(w, "    (%s) %q\n", strings.Join(meta, ", "), snippet(src.Content))
			} else {
				fmt.Fprintf(w, "    %q\n", snippet(src.Content))
			}
		}
	}
}

func renderSummaries(w io.Writer, summaries []model.ConversationSummary) {
	if len(summaries) == 0 {
		fmt.Fprintf(w, "No saved chats\n")
		return
	}

	for _, s := range summaries {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d messages\n", s.ID, s.Title, s.CreatedAt, s.MessageCount)
	}
}

func renderPapers(w io.Writer, papers []model.Paper) {
	if len(papers) == 0 {
		fmt.Fprintf(w, "No papers uploaded\n")
		return
	}

	for _, p := range papers {
		status := "pending"
		if p.Indexed {
			status = "indexed"
		}
		fmt.Fprintf(w, "%s\t%s\t%.1f MB\t%s\n", p.Filename, p.PaperID, p.SizeMB, status)
	}
}

// snippet truncates source content for display
func snippet(s string) string {
	s = strings.ReplaceAll(s, "\n", " ")
	runes := []rune(s)
	if len(runes) <= sourceSnippetLen {
		return s
	}
	return string(runes[:sourceSnippetLen]) + "..."
}
