// Package recorder appends published density grids to hourly zstd compressed
// JSONL files.
package recorder

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/klauspost/compress/zstd"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/swarm-scape/pb"
)

const prefix = "density"

type Recorder struct {
	baseDir string
	now     func() time.Time

	mu      sync.Mutex
	curHour string
	f       *os.File
	enc     *zstd.Encoder
	w       *bufio.Writer
}

func New(baseDir string) *Recorder {
	return &Recorder{
		baseDir: baseDir,
		now:     time.Now,
	}
}

func (r *Recorder) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.closeLocked()
}

// Record writes one grid as a JSON line, switching file when the hour changes.
func (r *Recorder) Record(grid *pb.DensityGrid) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	hour := r.now().UTC().Format("2006-01-02-15")
	if hour != r.curHour {
		if err := r.rotateLocked(hour); err != nil {
			return err
		}
	}

	b, err := protojson.Marshal(grid)
	if err != nil {
		return err
	}
	if _, err := r.w.Write(b); err != nil {
		return err
	}
	if err := r.w.WriteByte('\n'); err != nil {
		return err
	}
	return r.w.Flush()
}

// Run records every grid received until ctx is done or grids is closed.
func (r *Recorder) Run(ctx context.Context, grids <-chan *pb.DensityGrid, logger golog.Logger) {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	for {
		select {
		case <-ctx.Done():
			return
		case g, ok := <-grids:
			if !ok {
				return
			}
			if err := r.Record(g); err != nil {
				logger.Errorf("failed to record density grid: %v", err)
			}
		}
	}
}

func (r *Recorder) rotateLocked(hour string) error {
	if err := r.closeLocked(); err != nil {
		return err
	}
	path := r.pathForHour(hour)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return err
	}
	enc, err := zstd.NewWriter(f, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		_ = f.Close()
		return err
	}
	r.f = f
	r.enc = enc
	r.w = bufio.NewWriterSize(enc, 64*1024)
	r.curHour = hour
	return nil
}

func (r *Recorder) closeLocked() error {
	var err1 error
	if r.w != nil {
		_ = r.w.Flush()
	}
	if r.enc != nil {
		err1 = r.enc.Close()
		r.enc = nil
	}
	if r.f != nil {
		_ = r.f.Close()
		r.f = nil
	}
	r.w = nil
	return err1
}

func (r *Recorder) pathForHour(hour string) string {
	return filepath.Join(r.baseDir, fmt.Sprintf("%s-%s.jsonl.zst", prefix, hour))
}

// ReadFile decodes every grid of a recorded file, in order.
func ReadFile(path string) ([]*pb.DensityGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	dec, err := zstd.NewReader(f)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	return readLines(dec)
}

func readLines(src io.Reader) ([]*pb.DensityGrid, error) {
	sc := bufio.NewScanner(src)
	sc.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	var out []*pb.DensityGrid
	for sc.Scan() {
		if len(sc.Bytes()) == 0 {
			continue
		}
		g := &pb.DensityGrid{}
		if err := protojson.Unmarshal(sc.Bytes(), g); err != nil {
			return out, fmt.Errorf("failed to decode line %d: %w", len(out)+1, err)
		}
		out = append(out, g)
	}
	return out, sc.Err()
}
