// Package progrock provides the Progrock implementation of the telemetry adapter.
package progrock

import (
	"context"

	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"
	"go.trai.ch/appindicator/internal/core/ports"
)

var _ ports.Telemetry = (*Recorder)(nil)

// Recorder implements the ports.Telemetry interface using the vito/progrock library.
// Updates go to a tape, which keeps per-phase counts and timing, and to a
// Replayer, which surfaces the output of failed phases in the debug log.
type Recorder struct {
	w      progrock.Writer
	rec    *progrock.Recorder
	tape   *progrock.Tape
	logger ports.Logger
}

// New creates a new Recorder with a default tape.
func New(logger ports.Logger) *Recorder {
	tape := progrock.NewTape()
	r := NewRecorder(progrock.MultiWriter{tape, NewReplayer(logger)})
	r.tape = tape
	r.logger = logger
	return r
}

// NewRecorder creates a new Recorder with the given writer.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Record starts recording a new vertex for one installation phase.
func (r *Recorder) Record(ctx context.Context, name string) (context.Context, ports.Vertex) {
	v := r.rec.Vertex(digest.FromString(name), name)
	vertex := &Vertex{vertex: v}
	return ports.ContextWithVertex(ctx, vertex), vertex
}

// Close flushes and closes the recording session, logging a summary of the
// recorded phases when a tape is attached.
func (r *Recorder) Close() error {
	err := r.w.Close()

	if r.tape != nil && r.logger != nil {
		r.logger.Debug("installation summary",
			"phases", r.tape.TotalCount(),
			"completed", r.tape.CompletedCount(),
			"failed", r.tape.ErroredCount(),
			"duration", r.tape.Duration().String(),
		)
	}

	return err
}
