package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPDFParser_ExtractsTextFromGeneratedPDF(t *testing.T) {
	// Use the renderer to produce a real PDF and read it back
	renderer := NewPDFRendererService()
	pdfBytes, err := renderer.RenderCV(sampleCvJSON)
	require.NoError(t, err)

	parser := NewPDFParserService()
	text, err := parser.ExtractText(pdfBytes)
	require.NoError(t, err)
	assert.Contains(t, text, "Jane Doe")
	assert.Contains(t, text, "Backend Engineer")
}

func TestPDFParser_RejectsGarbageInput(t *testing.T) {
	parser := NewPDFParserService()

	_, err := parser.ExtractText([]byte("definitely not a pdf"))
	assert.Error(t, err)
}

func TestCleanText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"collapses blank lines", "a\n\n\nb\n", "a\nb"},
		{"trims line whitespace", "  a  \n\t b \n", "a\nb"},
		{"empty input", "   \n \n", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CleanText(tt.input))
		})
	}
}
