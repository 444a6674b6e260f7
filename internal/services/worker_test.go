package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"atscv/cv-converter/internal/models"
)

type completingPipeline struct{}

func (completingPipeline) Run(_ context.Context, _ models.PipelineRequest, stream *ProgressStream) {
	stream.Send(models.NewProgressEvent(models.StageExtractingText, "working"))
	stream.CompleteSuccess()
}

func (completingPipeline) Generate(context.Context, models.PipelineRequest) (*models.GeneratedFile, error) {
	return &models.GeneratedFile{}, nil
}

func TestWorker_ProcessesEnqueuedJob(t *testing.T) {
	w := NewWorker(completingPipeline{}, 1, 4)
	w.Start(context.Background())
	defer w.Stop()

	stream := NewProgressStream(16, time.Minute)
	err := w.EnqueueJob(PipelineJob{Request: models.PipelineRequest{FileName: "cv.pdf"}, Stream: stream})
	require.NoError(t, err)

	select {
	case <-stream.Done():
	case <-time.After(time.Second):
		t.Fatal("job was never processed")
	}
	assert.NoError(t, stream.Err())
}

func TestWorker_RejectsWhenQueueSaturated(t *testing.T) {
	// Never started, so nothing drains the queue
	w := NewWorker(completingPipeline{}, 1, 1)

	first := PipelineJob{Stream: NewProgressStream(1, time.Minute)}
	second := PipelineJob{Stream: NewProgressStream(1, time.Minute)}

	require.NoError(t, w.EnqueueJob(first))
	assert.ErrorIs(t, w.EnqueueJob(second), ErrQueueFull)
}

func TestWorker_RejectsAfterStop(t *testing.T) {
	w := NewWorker(completingPipeline{}, 1, 4)
	w.Start(context.Background())
	w.Stop()

	err := w.EnqueueJob(PipelineJob{Stream: NewProgressStream(1, time.Minute)})
	assert.ErrorIs(t, err, ErrQueueFull)
}
