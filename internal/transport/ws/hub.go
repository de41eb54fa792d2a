// Package ws streams world snapshots and density grids to websocket observers
// and accepts population and parameter commands from them.
package ws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gorilla/websocket"
	golog "github.com/tochemey/goakt/v3/log"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/advisor"
	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
)

const (
	TypeSnapshot = "snapshot"
	TypeDensity  = "density"
	TypeAck      = "ack"

	CmdSetParameters = "setParameters"
	CmdAddAgent      = "addAgent"
	CmdRemoveAgent   = "removeAgent"
	CmdReset         = "reset"

	CmdSuggestParameters = "suggestParameters"
	CmdAdjustHeights     = "adjustHeights"

	commandTimeout = 5 * time.Second
)

// ErrNoAdvisor rejects advisor commands on a hub without Advice.
var ErrNoAdvisor = errors.New("no advisor configured")

// Controller is the part of the simulation engine the hub drives.
type Controller interface {
	SetParameters(ctx context.Context, p flock.Parameters) error
	AddAgent(ctx context.Context, cfg flock.AgentConfig) error
	RemoveAgent(ctx context.Context, id string) error
	ResetPopulation(ctx context.Context, fallbackCount int) error
	Snapshot(ctx context.Context) (*pb.WorldSnapshot, error)
}

// Advice runs the advisors for observers. Whatever they return is already
// applied to the world when the call comes back.
type Advice interface {
	SuggestParameters(ctx context.Context, desired string) (advisor.ParameterResponse, error)
	AdjustHeights(ctx context.Context) (advisor.HeightResponse, error)
}

// Frame is the envelope of every server message. Data holds the protojson
// encoding of a snapshot or density grid, or the advisor answer of an ack.
type Frame struct {
	Type    string          `json:"type"`
	Command string          `json:"command,omitempty"`
	Data    json.RawMessage `json:"data,omitempty"`
	OK      bool            `json:"ok,omitempty"`
	Error   string          `json:"error,omitempty"`
}

// Command is a client request.
type Command struct {
	Type          string             `json:"type"`
	Params        *flock.Parameters  `json:"params,omitempty"`
	Agent         *flock.AgentConfig `json:"agent,omitempty"`
	ID            string             `json:"id,omitempty"`
	FallbackCount int                `json:"fallbackCount,omitempty"`
	// DesiredSwarmBehavior is the free text sent to the parameter advisor.
	DesiredSwarmBehavior string `json:"desiredSwarmBehavior,omitempty"`
}

type Hub struct {
	ctrl   Controller
	logger golog.Logger

	upgrader websocket.Upgrader
	nextID   atomic.Uint64

	mu      sync.Mutex
	clients map[uint64]chan []byte

	// SnapshotEvery throttles snapshot frames; density frames are never throttled.
	SnapshotEvery time.Duration
	lastSnapshot  time.Time

	// Advice serves the advisor commands; nil rejects them.
	Advice        Advice
	AdviceTimeout time.Duration
}

func NewHub(ctrl Controller, logger golog.Logger) *Hub {
	if logger == nil {
		logger = golog.DiscardLogger
	}
	return &Hub{
		ctrl:   ctrl,
		logger: logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  16 * 1024,
			WriteBufferSize: 64 * 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		clients:       make(map[uint64]chan []byte),
		SnapshotEvery: 100 * time.Millisecond,
		AdviceTimeout: 30 * time.Second,
	}
}

// Clients is the number of connected observers.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

func encodeFrame(kind string, msg proto.Message) ([]byte, error) {
	data, err := protojson.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("failed to encode %s: %w", kind, err)
	}
	return json.Marshal(Frame{Type: kind, Data: data})
}

// Broadcast sends msg to every observer. Slow observers miss frames.
func (h *Hub) Broadcast(kind string, msg proto.Message) error {
	b, err := encodeFrame(kind, msg)
	if err != nil {
		return err
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, out := range h.clients {
		select {
		case out <- b:
		default:
		}
	}
	return nil
}

// Run forwards the engine outputs until ctx is done.
func (h *Hub) Run(ctx context.Context, snapshots <-chan *pb.WorldSnapshot, density <-chan *pb.DensityGrid) {
	for {
		select {
		case <-ctx.Done():
			return
		case s, ok := <-snapshots:
			if !ok {
				snapshots = nil
				continue
			}
			if time.Since(h.lastSnapshot) < h.SnapshotEvery || h.Clients() == 0 {
				continue
			}
			h.lastSnapshot = time.Now()
			if err := h.Broadcast(TypeSnapshot, s); err != nil {
				h.logger.Warnf("snapshot broadcast: %v", err)
			}
		case g, ok := <-density:
			if !ok {
				density = nil
				continue
			}
			if err := h.Broadcast(TypeDensity, g); err != nil {
				h.logger.Warnf("density broadcast: %v", err)
			}
		}
	}
}

func (h *Hub) register(out chan []byte) uint64 {
	id := h.nextID.Add(1)
	h.mu.Lock()
	h.clients[id] = out
	h.mu.Unlock()
	return id
}

func (h *Hub) unregister(id uint64) {
	h.mu.Lock()
	delete(h.clients, id)
	h.mu.Unlock()
}

func (h *Hub) Handler() http.HandlerFunc {
	return func(rw http.ResponseWriter, r *http.Request) {
		conn, err := h.upgrader.Upgrade(rw, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()

		out := make(chan []byte, 64)
		id := h.register(out)
		defer h.unregister(id)
		h.logger.Infof("observer %d connected from %s", id, r.RemoteAddr)

		ctx, cancel := context.WithCancel(r.Context())
		defer cancel()

		if snap, err := h.ctrl.Snapshot(ctx); err == nil {
			if b, err := encodeFrame(TypeSnapshot, snap); err == nil {
				out <- b
			}
		}

		// Writer goroutine.
		writeErr := make(chan error, 1)
		go func() {
			for {
				select {
				case <-ctx.Done():
					writeErr <- ctx.Err()
					return
				case b := <-out:
					_ = conn.SetWriteDeadline(time.Now().Add(5 * time.Second))
					if err := conn.WriteMessage(websocket.TextMessage, b); err != nil {
						writeErr <- err
						return
					}
				}
			}
		}()

		for {
			_ = conn.SetReadDeadline(time.Now().Add(60 * time.Second))
			_, msg, err := conn.ReadMessage()
			if err != nil {
				break
			}
			reply := h.handleCommand(ctx, msg)
			select {
			case out <- reply:
			default:
			}
		}

		cancel()
		_ = conn.WriteControl(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, "bye"), time.Now().Add(time.Second))
		select {
		case <-writeErr:
		case <-time.After(500 * time.Millisecond):
		}
		h.logger.Infof("observer %d disconnected", id)
	}
}

func (h *Hub) handleCommand(ctx context.Context, raw []byte) []byte {
	var cmd Command
	err := json.Unmarshal(raw, &cmd)
	if err != nil {
		err = fmt.Errorf("bad command: %w", err)
	}

	var result any
	if err == nil {
		timeout := commandTimeout
		if cmd.Type == CmdSuggestParameters || cmd.Type == CmdAdjustHeights {
			timeout = h.AdviceTimeout
		}
		cctx, cancel := context.WithTimeout(ctx, timeout)
		result, err = h.execute(cctx, cmd)
		cancel()
	}

	ack := Frame{Type: TypeAck, Command: cmd.Type, OK: err == nil}
	if err == nil && result != nil {
		if ack.Data, err = json.Marshal(result); err != nil {
			ack.OK = false
		}
	}
	if err != nil {
		ack.Error = err.Error()
	}
	b, _ := json.Marshal(ack)
	return b
}

// execute runs cmd; only advisor commands return a result.
func (h *Hub) execute(ctx context.Context, cmd Command) (any, error) {
	switch cmd.Type {
	case CmdSuggestParameters:
		if h.Advice == nil {
			return nil, ErrNoAdvisor
		}
		if strings.TrimSpace(cmd.DesiredSwarmBehavior) == "" {
			return nil, fmt.Errorf("%s needs a desiredSwarmBehavior", cmd.Type)
		}
		return h.Advice.SuggestParameters(ctx, cmd.DesiredSwarmBehavior)
	case CmdAdjustHeights:
		if h.Advice == nil {
			return nil, ErrNoAdvisor
		}
		return h.Advice.AdjustHeights(ctx)
	default:
		return nil, h.control(ctx, cmd)
	}
}

func (h *Hub) control(ctx context.Context, cmd Command) error {
	switch cmd.Type {
	case CmdSetParameters:
		if cmd.Params == nil {
			return fmt.Errorf("%s needs params", cmd.Type)
		}
		return h.ctrl.SetParameters(ctx, *cmd.Params)
	case CmdAddAgent:
		if cmd.Agent == nil || cmd.Agent.ID == "" {
			return fmt.Errorf("%s needs an agent with an id", cmd.Type)
		}
		return h.ctrl.AddAgent(ctx, *cmd.Agent)
	case CmdRemoveAgent:
		if cmd.ID == "" {
			return fmt.Errorf("%s needs an id", cmd.Type)
		}
		return h.ctrl.RemoveAgent(ctx, cmd.ID)
	case CmdReset:
		return h.ctrl.ResetPopulation(ctx, cmd.FallbackCount)
	default:
		return fmt.Errorf("unknown command %q", cmd.Type)
	}
}
