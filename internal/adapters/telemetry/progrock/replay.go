package progrock

import (
	"bytes"
	"sync"

	"github.com/vito/progrock"
	"go.trai.ch/appindicator/internal/core/ports"
)

var _ progrock.Writer = (*Replayer)(nil)

// Replayer is a progrock.Writer that buffers the output of each vertex and
// replays it through the logger when the vertex fails or is canceled.
// Output of vertices that complete successfully is dropped.
type Replayer struct {
	logger ports.Logger

	mu     sync.Mutex
	stdout map[string]*bytes.Buffer
	stderr map[string]*bytes.Buffer
}

// NewReplayer creates a Replayer logging through logger.
func NewReplayer(logger ports.Logger) *Replayer {
	return &Replayer{
		logger: logger,
		stdout: make(map[string]*bytes.Buffer),
		stderr: make(map[string]*bytes.Buffer),
	}
}

// WriteStatus implements progrock.Writer.
func (r *Replayer) WriteStatus(status *progrock.StatusUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, l := range status.Logs {
		switch l.Stream {
		case progrock.LogStream_STDOUT:
			_, _ = bufferFor(r.stdout, l.Vertex).Write(l.Data)
		case progrock.LogStream_STDERR:
			_, _ = bufferFor(r.stderr, l.Vertex).Write(l.Data)
		}
	}

	for _, v := range status.Vertexes {
		if v.Completed == nil {
			continue
		}
		if v.Error != nil || v.Canceled {
			r.replay(v)
		}
		delete(r.stdout, v.Id)
		delete(r.stderr, v.Id)
	}

	return nil
}

func (r *Replayer) replay(v *progrock.Vertex) {
	reason := "canceled"
	if v.Error != nil {
		reason = *v.Error
	}
	r.logger.Debug("phase failed", "phase", v.Name, "error", reason)

	if out, ok := r.stdout[v.Id]; ok && out.Len() > 0 {
		r.logger.Debug("phase output", "phase", v.Name, "stream", "stdout", "output", out.String())
	}
	if out, ok := r.stderr[v.Id]; ok && out.Len() > 0 {
		r.logger.Debug("phase output", "phase", v.Name, "stream", "stderr", "output", out.String())
	}
}

// Close implements progrock.Writer.
func (r *Replayer) Close() error {
	return nil
}

func bufferFor(m map[string]*bytes.Buffer, id string) *bytes.Buffer {
	buf, ok := m[id]
	if !ok {
		buf = &bytes.Buffer{}
		m[id] = buf
	}
	return buf
}
