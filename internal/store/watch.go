package store

import (
	"context"
	"sort"
	"time"

	golog "github.com/tochemey/goakt/v3/log"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
)

type EventKind int

const (
	Added EventKind = iota + 1
	Changed
	Removed
)

func (k EventKind) String() string {
	switch k {
	case Added:
		return "added"
	case Changed:
		return "changed"
	case Removed:
		return "removed"
	default:
		return "unknown"
	}
}

// Event is one membership change of the stored population. Removed events
// carry only the id.
type Event struct {
	Kind   EventKind
	Config flock.AgentConfig
}

// PopulationSink receives the events; simulation.Engine implements it.
type PopulationSink interface {
	AddAgent(ctx context.Context, cfg flock.AgentConfig) error
	ChangeAgent(ctx context.Context, cfg flock.AgentConfig) error
	RemoveAgent(ctx context.Context, id string) error
}

func sameFloat(a, b *float64) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

func sameRecord(a, b flock.AgentConfig) bool {
	if (a.Color == nil) != (b.Color == nil) || (a.Color != nil && *a.Color != *b.Color) {
		return false
	}
	return sameFloat(a.InitialX, b.InitialX) && sameFloat(a.InitialY, b.InitialY) && sameFloat(a.InitialZ, b.InitialZ)
}

// Diff lists the events turning prev into next, ordered by id.
func Diff(prev, next map[string]flock.AgentConfig) []Event {
	var events []Event
	for id, cfg := range next {
		old, ok := prev[id]
		switch {
		case !ok:
			events = append(events, Event{Kind: Added, Config: cfg})
		case !sameRecord(old, cfg):
			events = append(events, Event{Kind: Changed, Config: cfg})
		}
	}
	for id := range prev {
		if _, ok := next[id]; !ok {
			events = append(events, Event{Kind: Removed, Config: flock.AgentConfig{ID: id}})
		}
	}
	sort.Slice(events, func(i, j int) bool {
		return events[i].Config.ID < events[j].Config.ID
	})
	return events
}

// Watch polls the table every interval and emits the differences. The first
// poll reports every existing record as added. The channel is closed when ctx is done.
func (s *Store) Watch(ctx context.Context, interval time.Duration, logger golog.Logger) <-chan Event {
	if interval <= 0 {
		interval = 500 * time.Millisecond
	}
	if logger == nil {
		logger = golog.DiscardLogger
	}
	out := make(chan Event, 64)

	go func() {
		defer close(out)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		known := map[string]flock.AgentConfig{}
		for {
			records, err := s.List(ctx)
			if err != nil {
				if ctx.Err() != nil {
					return
				}
				logger.Warnf("store poll failed: %v", err)
			} else {
				next := make(map[string]flock.AgentConfig, len(records))
				for _, r := range records {
					next[r.ID] = r
				}
				for _, ev := range Diff(known, next) {
					select {
					case out <- ev:
					case <-ctx.Done():
						return
					}
				}
				known = next
			}

			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
			}
		}
	}()
	return out
}

// Feed forwards events to sink until the channel closes or ctx is done.
// A failing event is logged and skipped.
func Feed(ctx context.Context, events <-chan Event, sink PopulationSink, logger golog.Logger) {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	for {
		var ev Event
		select {
		case <-ctx.Done():
			return
		case e, ok := <-events:
			if !ok {
				return
			}
			ev = e
		}

		var err error
		switch ev.Kind {
		case Added:
			err = sink.AddAgent(ctx, ev.Config)
		case Changed:
			err = sink.ChangeAgent(ctx, ev.Config)
		case Removed:
			err = sink.RemoveAgent(ctx, ev.Config.ID)
		}
		if err != nil {
			logger.Warnf("agent %s %s: %v", ev.Config.ID, ev.Kind, err)
		}
	}
}
