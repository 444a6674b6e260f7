package models

// PipelineRequest is the pre-validated input of one generation run. It only
// lives for the duration of the run and is never persisted.
type PipelineRequest struct {
	FileContent         []byte
	FileName            string
	APIKey              string
	JobDescription      string
	GenerateCoverLetter bool
}

// GenerateRequest mirrors the multipart form fields of the generate
// endpoints. The file itself is validated separately by the handler.
type GenerateRequest struct {
	APIKey              string `form:"apiKey" validate:"required"`
	JobDescription      string `form:"jobDescription" validate:"required_if=GenerateCoverLetter true"`
	GenerateCoverLetter bool   `form:"generateCoverLetter"`
}

// GeneratedFile is the final artifact of one run.
type GeneratedFile struct {
	Content     []byte
	FileName    string
	ContentType string
}

const (
	PlainCvFileName     = "ATS_Friendly_CV.pdf"
	CoverLetterFileName = "Cover_Letter.txt"
	ArchiveFileName     = "CV_and_Cover_Letter.zip"

	PdfContentType     = "application/pdf"
	ZipContentType     = "application/zip"
	GenericContentType = "application/octet-stream"
)
