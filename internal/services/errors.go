package services

import "errors"

// Sentinel errors raised by the pipeline collaborators. Handlers and the
// orchestrator match on these with errors.Is and only ever show the client
// the sanitized text from UserMessage.
var (
	ErrEncryptedDocument = errors.New("encrypted PDF documents are not supported")
	ErrNoTextContent     = errors.New("no text content found in PDF")

	ErrUpstreamRejected    = errors.New("the AI service rejected the request")
	ErrUpstreamUnavailable = errors.New("the AI service could not be reached")
	ErrEmptyCompletion     = errors.New("the AI service returned an empty response")

	ErrUnparsableData = errors.New("structured CV data could not be parsed")
	ErrEmptyResult    = errors.New("no usable CV fields were produced")

	ErrArchive = errors.New("failed to build the download archive")

	ErrQueueFull     = errors.New("the server is busy, please try again later")
	ErrStreamTimeout = errors.New("the operation took too long and was aborted")
)

// UserMessage converts any pipeline failure into text that is safe to show
// the client. Internal detail stays in the server log.
func UserMessage(err error) string {
	switch {
	case errors.Is(err, ErrEncryptedDocument):
		return "Encrypted PDF files are not supported. Please upload an unprotected copy."
	case errors.Is(err, ErrNoTextContent):
		return "No readable text was found in the uploaded PDF."
	case errors.Is(err, ErrUpstreamRejected):
		return "The AI service rejected the request. Please check that your API key is valid."
	case errors.Is(err, ErrUpstreamUnavailable):
		return "The AI service could not be reached. Please check your API key and try again."
	case errors.Is(err, ErrEmptyCompletion):
		return "The AI service returned an empty response. Please try again."
	case errors.Is(err, ErrUnparsableData):
		return "The CV could not be converted into a structured format."
	case errors.Is(err, ErrEmptyResult):
		return "No usable information could be extracted from the CV."
	case errors.Is(err, ErrArchive):
		return "The download package could not be created."
	case errors.Is(err, ErrQueueFull):
		return "The server is handling too many conversions right now. Please try again shortly."
	case errors.Is(err, ErrStreamTimeout):
		return "The conversion took too long and was aborted. Please try again."
	default:
		return "An unexpected error occurred while processing your CV."
	}
}
