// Package captionfile loads transcripts from caption-triple JSON files:
// an array of {"text", "start", "duration"} records as produced by
// third-party captioning services.
package captionfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/mzakyi/viral-clip-generator/internal/ports"
	"github.com/mzakyi/viral-clip-generator/internal/types"
)

type Adapter struct {
	path string
}

// New returns an adapter reading the given file. An empty path means the
// caller has no captions; Fetch will report ErrNoCaptions.
func New(path string) *Adapter {
	return &Adapter{path: path}
}

func (a *Adapter) Fetch(_ context.Context, _ string) (types.Transcript, error) {
	if a.path == "" {
		return types.Transcript{}, ports.ErrNoCaptions
	}
	b, err := os.ReadFile(a.path)
	if err != nil {
		if os.IsNotExist(err) {
			return types.Transcript{}, ports.ErrNoCaptions
		}
		return types.Transcript{}, fmt.Errorf("read captions: %w", err)
	}

	var segs []types.Segment
	if err := json.Unmarshal(b, &segs); err != nil {
		return types.Transcript{}, fmt.Errorf("parse captions %s: %w", a.path, err)
	}
	for i := range segs {
		segs[i].Text = strings.TrimSpace(segs[i].Text)
		// Upstream caption data occasionally carries negative durations;
		// clamp at the boundary so the engine never sees them.
		if segs[i].Duration < 0 {
			segs[i].Duration = 0
		}
	}
	return types.Transcript{Segments: segs}, nil
}
