package services

import (
	"context"
	"log"
	"sync"

	"atscv/cv-converter/internal/models"
)

type PipelineJob struct {
	Request models.PipelineRequest
	Stream  *ProgressStream
}

type Worker interface {
	Start(ctx context.Context)
	Stop()
	EnqueueJob(job PipelineJob) error
}

// worker decouples the HTTP accept path from the pipeline: the handler hands
// a job over and returns the open stream immediately while a pool goroutine
// drives the run.
type worker struct {
	pipeline    PipelineService
	jobQueue    chan PipelineJob
	concurrency int
	wg          sync.WaitGroup
	stopChan    chan struct{}
}

func NewWorker(pipeline PipelineService, concurrency, queueSize int) Worker {
	return &worker{
		pipeline:    pipeline,
		jobQueue:    make(chan PipelineJob, queueSize),
		concurrency: concurrency,
		stopChan:    make(chan struct{}),
	}
}

// Start implements Worker.
func (w *worker) Start(ctx context.Context) {
	log.Printf("🚀 Starting worker pool with %d workers\n", w.concurrency)

	for i := 0; i < w.concurrency; i++ {
		w.wg.Add(1)
		go w.processJobs(ctx, i+1)
	}
}

// Stop implements Worker.
func (w *worker) Stop() {
	log.Println("🛑 Stopping worker pool...")
	close(w.stopChan)
	w.wg.Wait()
	log.Println("✅ Worker pool stopped")
}

// EnqueueJob implements Worker. It fails fast instead of blocking the accept
// path: a full queue or a stopping server returns ErrQueueFull and the
// caller completes the stream itself.
func (w *worker) EnqueueJob(job PipelineJob) error {
	select {
	case <-w.stopChan:
		return ErrQueueFull
	default:
	}

	select {
	case w.jobQueue <- job:
		return nil
	default:
		log.Println("⚠️  Job queue saturated, rejecting request")
		return ErrQueueFull
	}
}

func (w *worker) processJobs(ctx context.Context, workerID int) {
	defer w.wg.Done()

	for {
		select {
		case <-w.stopChan:
			log.Printf("👷 Worker #%d stopped\n", workerID)
			return
		case job := <-w.jobQueue:
			log.Printf("👷 Worker #%d processing %s\n", workerID, job.Request.FileName)
			w.pipeline.Run(ctx, job.Request, job.Stream)
		}
	}
}
