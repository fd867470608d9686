package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dgallion1/md2conf/internal/convert"
	"github.com/dgallion1/md2conf/internal/stats"
)

// Worker converts one queued file at a time.
type Worker struct {
	conv    *convert.Converter
	latency *stats.Latency
	log     *slog.Logger
}

func NewWorker(latency *stats.Latency, log *slog.Logger) *Worker {
	return &Worker{
		conv:    convert.New(),
		latency: latency,
		log:     log,
	}
}

// Process runs the render and assemble phases for a job.
func (w *Worker) Process(ctx context.Context, job *Job) {
	log := w.log.With("job_id", job.ID, "filename", job.Filename)
	start := time.Now()

	if err := ctx.Err(); err != nil {
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "cancelled")
		return
	}

	// Phase 1: Markdown to HTML
	job.SetStatus(StatusRendering, "rendering")
	html, err := w.conv.Render(job.Source())
	if err != nil {
		log.Error("render failed", "error", err)
		job.AddError(err.Error())
		job.SetStatus(StatusFailed, "rendering")
		return
	}

	// Phase 2: HTML to storage format
	job.SetStatus(StatusConverting, "converting")
	res, err := convert.Assemble(html)
	if err != nil {
		log.Error("conversion failed", "error", err)
		job.AddError(fmt.Sprintf("convert: %s", err))
		job.SetStatus(StatusFailed, "converting")
		return
	}

	res.Title = w.conv.Title(job.Source())

	w.latency.Since(start)
	job.SetResult(res)
	job.releaseSource()
	job.SetStatus(StatusCompleted, "done")
	log.Info("conversion complete",
		"page_id", res.PageID,
		"title", res.Title,
		"links", len(res.Links),
		"images", len(res.Images),
		"duration_ms", time.Since(start).Milliseconds(),
	)
}
