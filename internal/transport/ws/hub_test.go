package ws

import (
	"context"
	"encoding/json"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"google.golang.org/protobuf/encoding/protojson"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/advisor"
	"github.com/lao-tseu-is-alive/swarm-scape/pb"
	"github.com/lao-tseu-is-alive/swarm-scape/pkg/flock"
)

type fakeController struct {
	mu      sync.Mutex
	params  flock.Parameters
	added   []string
	removed []string
	resets  []int
}

func (f *fakeController) SetParameters(_ context.Context, p flock.Parameters) error {
	if err := p.Validate(); err != nil {
		return err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.params = p
	return nil
}

func (f *fakeController) AddAgent(_ context.Context, cfg flock.AgentConfig) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.added = append(f.added, cfg.ID)
	return nil
}

func (f *fakeController) RemoveAgent(_ context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.removed = append(f.removed, id)
	return nil
}

func (f *fakeController) ResetPopulation(_ context.Context, n int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.resets = append(f.resets, n)
	return nil
}

func (f *fakeController) Snapshot(context.Context) (*pb.WorldSnapshot, error) {
	return &pb.WorldSnapshot{
		Frame:  42,
		Agents: []*pb.AgentState{{Id: "local-0", Color: flock.DefaultColor}},
	}, nil
}

type fakeAdvice struct {
	mu      sync.Mutex
	desired []string
}

func (f *fakeAdvice) SuggestParameters(_ context.Context, desired string) (advisor.ParameterResponse, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.desired = append(f.desired, desired)
	return advisor.ParameterResponse{Cohesion: 3, Separation: 0.5, Alignment: 2}, nil
}

func (f *fakeAdvice) AdjustHeights(context.Context) (advisor.HeightResponse, error) {
	return advisor.HeightResponse{AdjustedHeights: []float64{0, 1}, Explanation: "raised the crowded cells"}, nil
}

func dial(t *testing.T, hub *Hub) *websocket.Conn {
	t.Helper()
	srv := httptest.NewServer(hub.Handler())
	t.Cleanup(srv.Close)
	url := "ws" + strings.TrimPrefix(srv.URL, "http")
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("Dial: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func readFrame(t *testing.T, conn *websocket.Conn) Frame {
	t.Helper()
	_ = conn.SetReadDeadline(time.Now().Add(3 * time.Second))
	var f Frame
	if err := conn.ReadJSON(&f); err != nil {
		t.Fatalf("ReadJSON: %v", err)
	}
	return f
}

func TestHub_InitialSnapshotAndBroadcast(t *testing.T) {
	hub := NewHub(&fakeController{}, nil)
	conn := dial(t, hub)

	f := readFrame(t, conn)
	if f.Type != TypeSnapshot {
		t.Fatalf("first frame type = %q; want %q", f.Type, TypeSnapshot)
	}
	var snap pb.WorldSnapshot
	if err := protojson.Unmarshal(f.Data, &snap); err != nil {
		t.Fatalf("decode snapshot: %v", err)
	}
	if snap.GetFrame() != 42 || len(snap.GetAgents()) != 1 {
		t.Errorf("snapshot = %v", &snap)
	}
	if hub.Clients() != 1 {
		t.Errorf("Clients = %d; want 1", hub.Clients())
	}

	if err := hub.Broadcast(TypeDensity, &pb.DensityGrid{GridSize: 2, Cells: []int32{1, 0, 0, 3}}); err != nil {
		t.Fatalf("Broadcast: %v", err)
	}
	f = readFrame(t, conn)
	var grid pb.DensityGrid
	if f.Type != TypeDensity || protojson.Unmarshal(f.Data, &grid) != nil {
		t.Fatalf("frame = %+v; want a density grid", f)
	}
	if grid.GetCells()[3] != 3 {
		t.Errorf("grid = %v", &grid)
	}
}

func TestHub_Commands(t *testing.T) {
	ctrl := &fakeController{}
	conn := dial(t, NewHub(ctrl, nil))
	readFrame(t, conn)

	p := flock.DefaultParameters().WithWeights(4, 1, 0.5)
	bad := p
	bad.SpeedLimit = -1

	tests := []struct {
		name   string
		cmd    Command
		raw    string
		wantOK bool
	}{
		{name: "set parameters", cmd: Command{Type: CmdSetParameters, Params: &p}, wantOK: true},
		{name: "invalid parameters", cmd: Command{Type: CmdSetParameters, Params: &bad}},
		{name: "missing parameters", cmd: Command{Type: CmdSetParameters}},
		{name: "add agent", cmd: Command{Type: CmdAddAgent, Agent: &flock.AgentConfig{ID: "ws-1"}}, wantOK: true},
		{name: "add agent without id", cmd: Command{Type: CmdAddAgent, Agent: &flock.AgentConfig{}}},
		{name: "remove agent", cmd: Command{Type: CmdRemoveAgent, ID: "ws-1"}, wantOK: true},
		{name: "reset", cmd: Command{Type: CmdReset, FallbackCount: 12}, wantOK: true},
		{name: "unknown", cmd: Command{Type: "explode"}},
		{name: "garbage", raw: "{not json"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var err error
			if tt.raw != "" {
				err = conn.WriteMessage(websocket.TextMessage, []byte(tt.raw))
			} else {
				err = conn.WriteJSON(tt.cmd)
			}
			if err != nil {
				t.Fatalf("write: %v", err)
			}
			f := readFrame(t, conn)
			if f.Type != TypeAck || f.OK != tt.wantOK {
				t.Errorf("reply = %+v; want ack ok=%v", f, tt.wantOK)
			}
			if !tt.wantOK && f.Error == "" {
				t.Error("rejected command without an error message")
			}
		})
	}

	ctrl.mu.Lock()
	defer ctrl.mu.Unlock()
	if ctrl.params != p {
		t.Errorf("params = %+v; want %+v", ctrl.params, p)
	}
	if len(ctrl.added) != 1 || len(ctrl.removed) != 1 || len(ctrl.resets) != 1 || ctrl.resets[0] != 12 {
		t.Errorf("controller saw added=%v removed=%v resets=%v", ctrl.added, ctrl.removed, ctrl.resets)
	}
}

func TestHub_AdviceCommands(t *testing.T) {
	adv := &fakeAdvice{}
	hub := NewHub(&fakeController{}, nil)
	hub.Advice = adv
	conn := dial(t, hub)
	readFrame(t, conn)

	send := func(t *testing.T, cmd Command) Frame {
		t.Helper()
		if err := conn.WriteJSON(cmd); err != nil {
			t.Fatalf("write: %v", err)
		}
		return readFrame(t, conn)
	}

	t.Run("suggest parameters replies with the weights", func(t *testing.T) {
		f := send(t, Command{Type: CmdSuggestParameters, DesiredSwarmBehavior: "tightly packed"})
		if f.Type != TypeAck || !f.OK || f.Command != CmdSuggestParameters {
			t.Fatalf("reply = %+v; want a successful suggestParameters ack", f)
		}
		var w advisor.Weights
		if err := json.Unmarshal(f.Data, &w); err != nil {
			t.Fatalf("decode weights: %v", err)
		}
		if w != (advisor.Weights{Cohesion: 3, Separation: 0.5, Alignment: 2}) {
			t.Errorf("weights = %+v", w)
		}
	})

	t.Run("suggest parameters needs a description", func(t *testing.T) {
		f := send(t, Command{Type: CmdSuggestParameters, DesiredSwarmBehavior: "   "})
		if f.OK || f.Error == "" {
			t.Errorf("reply = %+v; want a rejection", f)
		}
	})

	t.Run("adjust heights replies with the explanation", func(t *testing.T) {
		f := send(t, Command{Type: CmdAdjustHeights})
		if !f.OK || f.Command != CmdAdjustHeights {
			t.Fatalf("reply = %+v; want a successful adjustHeights ack", f)
		}
		var resp advisor.HeightResponse
		if err := json.Unmarshal(f.Data, &resp); err != nil {
			t.Fatalf("decode heights: %v", err)
		}
		if resp.Explanation != "raised the crowded cells" || len(resp.AdjustedHeights) != 2 {
			t.Errorf("response = %+v", resp)
		}
	})

	adv.mu.Lock()
	defer adv.mu.Unlock()
	if len(adv.desired) != 1 || adv.desired[0] != "tightly packed" {
		t.Errorf("advisor saw %q; want only the non-empty description", adv.desired)
	}
}

func TestHub_AdviceCommandsWithoutAdvisor(t *testing.T) {
	conn := dial(t, NewHub(&fakeController{}, nil))
	readFrame(t, conn)

	for _, cmd := range []Command{
		{Type: CmdSuggestParameters, DesiredSwarmBehavior: "exploring slowly"},
		{Type: CmdAdjustHeights},
	} {
		t.Run(cmd.Type, func(t *testing.T) {
			if err := conn.WriteJSON(cmd); err != nil {
				t.Fatalf("write: %v", err)
			}
			f := readFrame(t, conn)
			if f.OK || f.Error != ErrNoAdvisor.Error() {
				t.Errorf("reply = %+v; want %q", f, ErrNoAdvisor)
			}
		})
	}
}

func TestHub_Run(t *testing.T) {
	hub := NewHub(&fakeController{}, nil)
	hub.SnapshotEvery = 0
	conn := dial(t, hub)
	readFrame(t, conn)

	ctx, cancel := context.WithCancel(context.Background())
	snapshots := make(chan *pb.WorldSnapshot, 1)
	density := make(chan *pb.DensityGrid, 1)
	done := make(chan struct{})
	go func() {
		hub.Run(ctx, snapshots, density)
		close(done)
	}()

	snapshots <- &pb.WorldSnapshot{Frame: 7}
	f := readFrame(t, conn)
	var snap pb.WorldSnapshot
	if f.Type != TypeSnapshot || protojson.Unmarshal(f.Data, &snap) != nil || snap.GetFrame() != 7 {
		t.Errorf("frame = %+v; want snapshot 7", f)
	}

	density <- &pb.DensityGrid{GridSize: 1, Cells: []int32{5}}
	if f := readFrame(t, conn); f.Type != TypeDensity {
		t.Errorf("frame type = %q; want density", f.Type)
	}

	cancel()
	select {
	case <-done:
	case <-time.After(3 * time.Second):
		t.Fatal("Run did not return after cancellation")
	}
}

func TestCommand_JSON(t *testing.T) {
	var cmd Command
	raw := `{"type":"addAgent","agent":{"id":"x","initialX":1.5,"color":"#FFFFFF"}}`
	if err := json.Unmarshal([]byte(raw), &cmd); err != nil {
		t.Fatal(err)
	}
	if cmd.Agent == nil || cmd.Agent.InitialX == nil || *cmd.Agent.InitialX != 1.5 || cmd.Agent.InitialY != nil {
		t.Errorf("decoded %+v", cmd.Agent)
	}
}
