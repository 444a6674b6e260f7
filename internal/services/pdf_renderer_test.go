package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCvJSON = `{
	"personal_info": {"name": "Jane Doe", "email": "jane@example.com", "phone": "+1 555 0100", "address": "Berlin"},
	"experiences": [
		{"title": "Backend Engineer", "company": "Acme", "dates": "2020 - 2024", "description": "Built Go services."}
	],
	"education": [
		{"school": "TU Berlin", "department": "Computer Science", "degree": "BSc", "dates": "2016 - 2020"}
	],
	"skills": ["Go", "PostgreSQL", "Docker"]
}`

func TestPDFRenderer_RenderValidData(t *testing.T) {
	renderer := NewPDFRendererService()

	output, err := renderer.RenderCV(sampleCvJSON)
	require.NoError(t, err)
	require.NotEmpty(t, output)
	assert.Equal(t, "%PDF-", string(output[:5]))
}

func TestPDFRenderer_UnparsableData(t *testing.T) {
	renderer := NewPDFRendererService()

	_, err := renderer.RenderCV("this is not json at all")
	assert.ErrorIs(t, err, ErrUnparsableData)
}

func TestPDFRenderer_EmptySchemaIsTerminal(t *testing.T) {
	renderer := NewPDFRendererService()

	_, err := renderer.RenderCV(`{}`)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestPDFRenderer_NullStringsCountAsEmpty(t *testing.T) {
	renderer := NewPDFRendererService()

	_, err := renderer.RenderCV(`{
		"personal_info": {"name": "null", "email": "NULL", "phone": " null ", "address": ""},
		"skills": ["null", ""]
	}`)
	assert.ErrorIs(t, err, ErrEmptyResult)
}

func TestPDFRenderer_PartialDataStillRenders(t *testing.T) {
	renderer := NewPDFRendererService()

	output, err := renderer.RenderCV(`{"skills": ["Go"]}`)
	require.NoError(t, err)
	assert.NotEmpty(t, output)
}

func TestSafeGet(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"plain value", "Jane", "Jane"},
		{"padded value", "  Jane  ", "Jane"},
		{"null literal", "null", ""},
		{"null uppercase", "NULL", ""},
		{"null padded", " null ", ""},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, safeGet(tt.input))
		})
	}
}
