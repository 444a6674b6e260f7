package handlers

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/valyala/fasthttp"

	"atscv/cv-converter/internal/config"
	"atscv/cv-converter/internal/models"
	"atscv/cv-converter/internal/services"
)

type GenerateHandler struct {
	pipeline services.PipelineService
	worker   services.Worker
	validate *validator.Validate
	cfg      *config.Config
}

func NewGenerateHandler(
	pipeline services.PipelineService,
	worker services.Worker,
	cfg *config.Config,
) *GenerateHandler {
	return &GenerateHandler{
		pipeline: pipeline,
		worker:   worker,
		validate: validator.New(),
		cfg:      cfg,
	}
}

// HandleGenerateStream handles POST /generate-stream. It validates the
// request, hands the pipeline run to the worker pool and immediately starts
// streaming progress events over SSE.
func (h *GenerateHandler) HandleGenerateStream(c *fiber.Ctx) error {
	req, reason := h.parseAndValidate(c)
	if reason != "" {
		return c.Status(fiber.StatusBadRequest).SendString(reason)
	}

	stream := services.NewProgressStream(h.cfg.Stream.Buffer, h.cfg.Stream.Lifetime)

	if err := h.worker.EnqueueJob(services.PipelineJob{Request: *req, Stream: stream}); err != nil {
		// Still complete the stream over SSE so the client sees one ERROR
		// event followed by end-of-stream.
		stream.Send(models.NewProgressEvent(models.StageError, services.UserMessage(err)))
		stream.CompleteError(err)
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		if err := writeSSE(w, models.NewProgressEvent(models.StageConnectionEstablished, "Connection established.")); err != nil {
			stream.Disconnect()
			return
		}

		for event := range stream.Events() {
			if err := writeSSE(w, event); err != nil {
				log.Printf("⚠️  Client disconnected mid-stream: %v\n", err)
				stream.Disconnect()
				return
			}
		}
	}))

	return nil
}

// HandleGenerate handles POST /generate, the synchronous variant: the
// artifact bytes come back in the response body instead of via token.
func (h *GenerateHandler) HandleGenerate(c *fiber.Ctx) error {
	req, reason := h.parseAndValidate(c)
	if reason != "" {
		return c.Status(fiber.StatusBadRequest).SendString(reason)
	}

	file, err := h.pipeline.Generate(c.UserContext(), *req)
	if err != nil {
		log.Printf("❌ Synchronous generation failed for %s: %v\n", req.FileName, err)
		return c.Status(fiber.StatusInternalServerError).SendString(services.UserMessage(err))
	}

	c.Set(fiber.HeaderContentType, file.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", file.FileName))
	return c.Send(file.Content)
}

// parseAndValidate applies every request check before any pipeline work. A
// non-empty reason means the request must be rejected with a 400.
func (h *GenerateHandler) parseAndValidate(c *fiber.Ctx) (*models.PipelineRequest, string) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		return nil, "Please select a PDF file to upload."
	}

	if fileHeader.Size == 0 {
		return nil, "The uploaded file is empty."
	}

	if fileHeader.Size > h.cfg.Storage.MaxFileSize {
		return nil, fmt.Sprintf("The uploaded file is too large. Max size: %d bytes.", h.cfg.Storage.MaxFileSize)
	}

	contentType := fileHeader.Header.Get(fiber.HeaderContentType)
	if contentType != models.PdfContentType && !strings.HasSuffix(strings.ToLower(fileHeader.Filename), ".pdf") {
		return nil, "Only PDF files are supported."
	}

	form := models.GenerateRequest{
		APIKey:              c.FormValue("apiKey"),
		JobDescription:      c.FormValue("jobDescription"),
		GenerateCoverLetter: c.FormValue("generateCoverLetter") == "true",
	}

	if err := h.validate.Struct(form); err != nil {
		var ve validator.ValidationErrors
		if errors.As(err, &ve) && len(ve) > 0 {
			switch ve[0].Field() {
			case "APIKey":
				return nil, "apiKey is required."
			case "JobDescription":
				return nil, "jobDescription is required when generateCoverLetter is true."
			}
		}
		return nil, "Invalid request."
	}

	src, err := fileHeader.Open()
	if err != nil {
		return nil, "The uploaded file could not be read."
	}
	defer src.Close()

	content, err := io.ReadAll(src)
	if err != nil {
		return nil, "The uploaded file could not be read."
	}

	return &models.PipelineRequest{
		FileContent:         content,
		FileName:            fileHeader.Filename,
		APIKey:              form.APIKey,
		JobDescription:      form.JobDescription,
		GenerateCoverLetter: form.GenerateCoverLetter,
	}, ""
}

func writeSSE(w *bufio.Writer, event models.ProgressEvent) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}

	if _, err := fmt.Fprintf(w, "data: %s\n\n", payload); err != nil {
		return err
	}

	return w.Flush()
}
