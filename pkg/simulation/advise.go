package simulation

import (
	"context"
	"fmt"

	"github.com/lao-tseu-is-alive/swarm-scape/internal/advisor"
)

// NewAdvisor builds the advisor selected by the configuration.
func NewAdvisor(cfg *Config) (advisor.Advisor, error) {
	switch cfg.Advisor.Mode {
	case AdvisorRemote:
		r, err := advisor.NewRemote(cfg.Advisor.URL, cfg.AdvisorTimeout())
		if err != nil {
			return nil, err
		}
		return r, nil
	case "", AdvisorHeuristic:
		return advisor.NewHeuristic(), nil
	default:
		return nil, fmt.Errorf("%w: unknown advisor mode %q", ErrInvalidConfig, cfg.Advisor.Mode)
	}
}

// AdjustHeights sends the latest density grid and the current heights to adv
// and installs the heights it returns. On any failure the map is left as it was.
func (e *Engine) AdjustHeights(ctx context.Context, adv advisor.HeightAdvisor) (advisor.HeightResponse, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return advisor.HeightResponse{}, err
	}
	size := e.cfg.Map.GridSize
	density := snap.GetDensity().GetCells()
	if len(density) != size*size {
		// no grid published yet
		density = make([]int32, size*size)
	}
	req := advisor.HeightRequest{
		SwarmDensityData: density,
		CurrentHeights:   snap.GetHeights(),
		MapWidth:         size,
		MapHeight:        size,
	}
	resp, err := adv.AdjustHeights(ctx, req)
	if err != nil {
		return advisor.HeightResponse{}, fmt.Errorf("height advisor failed: %w", err)
	}
	if err := e.SetHeights(ctx, resp.AdjustedHeights); err != nil {
		return advisor.HeightResponse{}, err
	}
	e.logger.Infof("heightmap adjusted: %s", resp.Explanation)
	return resp, nil
}

// SuggestParameters asks adv for weights matching the described behaviour
// and applies them. Limits and perception radius are never touched.
func (e *Engine) SuggestParameters(ctx context.Context, adv advisor.ParameterAdvisor, desired string) (advisor.ParameterResponse, error) {
	snap, err := e.Snapshot(ctx)
	if err != nil {
		return advisor.ParameterResponse{}, err
	}
	current := ParametersFromProto(snap.GetParams())
	req, err := advisor.NewParameterRequest(desired, &advisor.Weights{
		Cohesion:   current.Cohesion,
		Separation: current.Separation,
		Alignment:  current.Alignment,
	})
	if err != nil {
		return advisor.ParameterResponse{}, err
	}
	w, err := adv.SuggestParameters(ctx, req)
	if err != nil {
		return advisor.ParameterResponse{}, fmt.Errorf("parameter advisor failed: %w", err)
	}
	// the call may have taken a while: only the weights are replaced, on
	// the parameters the world holds by now
	if err := e.SetWeights(ctx, w.Cohesion, w.Separation, w.Alignment); err != nil {
		return advisor.ParameterResponse{}, err
	}
	e.logger.Infof("parameters suggested for %q: %+v", desired, w)
	return w, nil
}

// Advice binds an engine to one advisor.
type Advice struct {
	engine *Engine
	adv    advisor.Advisor
}

// WithAdvisor returns the engine's advisor operations bound to adv.
func (e *Engine) WithAdvisor(adv advisor.Advisor) *Advice {
	return &Advice{engine: e, adv: adv}
}

func (a *Advice) SuggestParameters(ctx context.Context, desired string) (advisor.ParameterResponse, error) {
	return a.engine.SuggestParameters(ctx, a.adv, desired)
}

func (a *Advice) AdjustHeights(ctx context.Context) (advisor.HeightResponse, error) {
	return a.engine.AdjustHeights(ctx, a.adv)
}
