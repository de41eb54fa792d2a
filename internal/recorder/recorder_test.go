package recorder

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/lao-tseu-is-alive/swarm-scape/pb"
)

func grid(timeMs int64, cells ...int32) *pb.DensityGrid {
	return &pb.DensityGrid{GridSize: 2, Cells: cells, TimeMs: timeMs}
}

func TestRecorder_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	r := New(dir)
	at := time.Date(2026, 3, 1, 10, 15, 0, 0, time.UTC)
	r.now = func() time.Time { return at }

	for i := int64(0); i < 3; i++ {
		if err := r.Record(grid(i*1000, 1, 0, 2, int32(i))); err != nil {
			t.Fatalf("Record %d: %v", i, err)
		}
	}
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	got, err := ReadFile(filepath.Join(dir, "density-2026-03-01-10.jsonl.zst"))
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("read %d grids; want 3", len(got))
	}
	for i, g := range got {
		if g.GetTimeMs() != int64(i)*1000 || g.GetGridSize() != 2 || g.GetCells()[3] != int32(i) {
			t.Errorf("grid %d = %v", i, g)
		}
	}
}

func TestRecorder_RotatesHourly(t *testing.T) {
	dir := t.TempDir()
	r := New(dir)
	at := time.Date(2026, 3, 1, 10, 59, 0, 0, time.UTC)
	r.now = func() time.Time { return at }

	if err := r.Record(grid(1, 1, 1, 1, 1)); err != nil {
		t.Fatal(err)
	}
	at = at.Add(2 * time.Minute)
	if err := r.Record(grid(2, 2, 2, 2, 2)); err != nil {
		t.Fatal(err)
	}
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}

	files, err := filepath.Glob(filepath.Join(dir, "density-*.jsonl.zst"))
	if err != nil {
		t.Fatal(err)
	}
	if len(files) != 2 {
		t.Fatalf("files = %v; want one per hour", files)
	}
	for _, f := range files {
		grids, err := ReadFile(f)
		if err != nil || len(grids) != 1 {
			t.Errorf("%s: %d grids, err %v", f, len(grids), err)
		}
	}
}

func TestRecorder_Run(t *testing.T) {
	dir := t.TempDir()
	r := New(dir)
	grids := make(chan *pb.DensityGrid, 2)
	grids <- grid(10, 0, 0, 0, 1)
	grids <- grid(20, 0, 0, 1, 1)
	close(grids)

	r.Run(context.Background(), grids, nil)
	if err := r.Close(); err != nil {
		t.Fatal(err)
	}
	files, _ := filepath.Glob(filepath.Join(dir, "*.zst"))
	total := 0
	for _, f := range files {
		g, err := ReadFile(f)
		if err != nil {
			t.Fatalf("ReadFile(%s): %v", f, err)
		}
		total += len(g)
	}
	if total != 2 {
		t.Errorf("recorded %d grids; want 2", total)
	}
}
