package model

import (
	"github.com/m-mizutani/goerr/v2"
)

var ErrInvalidExportFormat = goerr.New("invalid export format")

type ExportFormat string

const (
	ExportMarkdown ExportFormat = "markdown"
	ExportBibTeX   ExportFormat = "bibtex"
	ExportPDF      ExportFormat = "pdf"
)

// Validate checks if the export format is valid
func (f ExportFormat) Validate() error {
	switch f {
	case ExportMarkdown, ExportBibTeX, ExportPDF:
		return nil
	default:
		return goerr.Wrap(ErrInvalidExportFormat, "unsupported format", goerr.V("format", f))
	}
}

// ArtifactName returns the deterministic local filename for an exported
// conversation.
func (f ExportFormat) ArtifactName(id ConversationID) string {
	switch f {
	case ExportBibTeX:
		return "references_" + string(id) + ".bib"
	case ExportPDF:
		return "conversation_" + string(id) + ".pdf"
	default:
		return "conversation_" + string(id) + ".md"
	}
}
