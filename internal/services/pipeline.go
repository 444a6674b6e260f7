package services

import (
	"context"
	"fmt"
	"log"

	"atscv/cv-converter/internal/models"
)

type PipelineService interface {
	// Run drives the full pipeline for one request and reports everything
	// through the stream: per-stage progress, then either DOWNLOAD_READY with
	// a single-use token or exactly one ERROR event.
	Run(ctx context.Context, req models.PipelineRequest, stream *ProgressStream)

	// Generate runs the same pipeline synchronously and returns the artifact
	// directly instead of staging it for download.
	Generate(ctx context.Context, req models.PipelineRequest) (*models.GeneratedFile, error)
}

type pipelineService struct {
	pdfParser PDFParserService
	gemini    GeminiService
	renderer  PDFRendererService
	zipper    ZipService
	store     FileStore
}

func NewPipelineService(
	pdfParser PDFParserService,
	gemini GeminiService,
	renderer PDFRendererService,
	zipper ZipService,
	store FileStore,
) PipelineService {
	return &pipelineService{
		pdfParser: pdfParser,
		gemini:    gemini,
		renderer:  renderer,
		zipper:    zipper,
		store:     store,
	}
}

// Run implements PipelineService.
func (p *pipelineService) Run(ctx context.Context, req models.PipelineRequest, stream *ProgressStream) {
	file, err := p.generate(ctx, req, stream.Send)
	if err != nil {
		log.Printf("❌ Pipeline failed for %s: %v\n", req.FileName, err)
		stream.Send(models.NewProgressEvent(models.StageError, UserMessage(err)))
		stream.CompleteError(err)
		return
	}

	stream.Send(models.NewProgressEvent(models.StageSavingFile, "Preparing your file for download..."))
	token := p.store.Save(file.Content)

	log.Printf("✅ Pipeline completed for %s, artifact %s staged as %s\n", req.FileName, file.FileName, token)

	stream.Send(models.NewDownloadReadyEvent(file.FileName, token))
	stream.CompleteSuccess()
}

// Generate implements PipelineService.
func (p *pipelineService) Generate(ctx context.Context, req models.PipelineRequest) (*models.GeneratedFile, error) {
	return p.generate(ctx, req, func(models.ProgressEvent) {})
}

// generate performs the extract -> structure -> render -> (optional cover
// letter + zip) sequence. Stages run strictly in order; the first failure
// aborts the rest.
func (p *pipelineService) generate(
	ctx context.Context,
	req models.PipelineRequest,
	emit func(models.ProgressEvent),
) (*models.GeneratedFile, error) {
	emit(models.NewProgressEvent(models.StageExtractingText, "Extracting text from your CV..."))
	cvText, err := p.pdfParser.ExtractText(req.FileContent)
	if err != nil {
		return nil, fmt.Errorf("failed to extract text: %w", err)
	}

	emit(models.NewProgressEvent(models.StageProcessingCV, "The AI is analyzing your CV..."))
	structuredCvData, err := p.gemini.StructureCV(ctx, req.APIKey, cvText)
	if err != nil {
		return nil, fmt.Errorf("failed to structure CV: %w", err)
	}

	cvPdfBytes, err := p.renderer.RenderCV(structuredCvData)
	if err != nil {
		return nil, fmt.Errorf("failed to render CV: %w", err)
	}

	if !req.GenerateCoverLetter {
		return &models.GeneratedFile{
			Content:     cvPdfBytes,
			FileName:    models.PlainCvFileName,
			ContentType: models.PdfContentType,
		}, nil
	}

	emit(models.NewProgressEvent(models.StageGeneratingCoverLetter, "Writing your cover letter, this is the last step..."))
	coverLetter, err := p.gemini.GenerateCoverLetter(ctx, req.APIKey, structuredCvData, req.JobDescription)
	if err != nil {
		return nil, fmt.Errorf("failed to generate cover letter: %w", err)
	}

	emit(models.NewProgressEvent(models.StageZippingFiles, "Packaging your files..."))
	archive, err := p.zipper.CreateArchive(map[string][]byte{
		models.PlainCvFileName:     cvPdfBytes,
		models.CoverLetterFileName: []byte(coverLetter),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to package files: %w", err)
	}

	return &models.GeneratedFile{
		Content:     archive,
		FileName:    models.ArchiveFileName,
		ContentType: models.ZipContentType,
	}, nil
}
