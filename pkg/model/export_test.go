package model_test

import (
	"errors"
	"testing"

	"github.com/m-mizutani/gt"
	"github.com/scholaragent/scholaragent/pkg/model"
)

func TestExportFormatValidate(t *testing.T) {
	for _, f := range []model.ExportFormat{model.ExportMarkdown, model.ExportBibTeX, model.ExportPDF} {
		gt.NoError(t, f.Validate())
	}

	err := model.ExportFormat("docx").Validate()
	gt.True(t, errors.Is(err, model.ErrInvalidExportFormat))
}

func TestArtifactName(t *testing.T) {
	id := model.ConversationID("conv_123")
	gt.Equal(t, model.ExportMarkdown.ArtifactName(id), "conversation_conv_123.md")
	gt.Equal(t, model.ExportBibTeX.ArtifactName(id), "references_conv_123.bib")
	gt.Equal(t, model.ExportPDF.ArtifactName(id), "conversation_conv_123.pdf")
}
