package advisor

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/lao-tseu-is-alive/swarm-scape/pkg/heightmap"
)

const (
	// WeightMin and WeightMax bound suggested weights to the range of the UI sliders.
	WeightMin = 0.0
	WeightMax = 5.0

	heuristicLow   = 1.0
	heuristicHigh  = 10.0
	heuristicBlend = 0.7
)

// DefaultWeights are the reference steering weights.
var DefaultWeights = Weights{Cohesion: 1.0, Separation: 1.5, Alignment: 1.0}

// Heuristic is a deterministic, offline advisor. Heights rise in proportion to
// the density, are smoothed over 3x3 neighbourhoods and blended with the
// current map. Parameter suggestions come from keywords in the description.
type Heuristic struct{}

// NewHeuristic returns the local advisor.
func NewHeuristic() *Heuristic {
	return &Heuristic{}
}

// AdjustHeights implements HeightAdvisor.
func (h *Heuristic) AdjustHeights(ctx context.Context, req HeightRequest) (HeightResponse, error) {
	if err := ctx.Err(); err != nil {
		return HeightResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return HeightResponse{}, err
	}

	var peak int32
	peakCell, total := 0, 0
	for i, d := range req.SwarmDensityData {
		total += int(d)
		if d > peak {
			peak, peakCell = d, i
		}
	}
	if peak <= 0 {
		return HeightResponse{
			AdjustedHeights: append([]float64(nil), req.CurrentHeights...),
			Explanation:     "No agents were counted on the map, heights were left unchanged.",
		}, nil
	}

	target := make([]float64, len(req.SwarmDensityData))
	for i, d := range req.SwarmDensityData {
		target[i] = heuristicLow + (heuristicHigh-heuristicLow)*float64(max(d, 0))/float64(peak)
	}
	target = heightmap.Smooth(target, req.MapWidth, req.MapHeight)
	adjusted := heightmap.Blend(req.CurrentHeights, target, heuristicBlend)
	raised := 0
	for i, v := range adjusted {
		adjusted[i] = math.Max(heightmap.MinHeight, math.Min(heightmap.MaxHeight, v))
		if adjusted[i] > req.CurrentHeights[i] {
			raised++
		}
	}

	return HeightResponse{
		AdjustedHeights: adjusted,
		Explanation: fmt.Sprintf(
			"Counted %d agents. The densest cell (x=%d, z=%d) holds %d of them. Heights were scaled "+
				"proportionally to density into [%.0f, %.0f], smoothed over each 3x3 neighbourhood and "+
				"blended %.0f%% with the previous map; %d of %d cells were raised.",
			total, peakCell%req.MapWidth, peakCell/req.MapWidth, peak,
			heuristicLow, heuristicHigh, heuristicBlend*100, raised, len(adjusted)),
	}, nil
}

type keywordRule struct {
	words []string
	apply func(w *Weights)
}

var keywordRules = []keywordRule{
	{
		words: []string{"cohes", "together", "tight", "cluster", "group", "huddle"},
		apply: func(w *Weights) { w.Cohesion = w.Cohesion*1.8 + 0.5; w.Separation *= 0.8 },
	},
	{
		words: []string{"dispers", "spread", "scatter", "loose", "apart", "sparse"},
		apply: func(w *Weights) { w.Separation = w.Separation*1.8 + 0.5; w.Cohesion *= 0.4 },
	},
	{
		words: []string{"align", "same direction", "school", "march", "orderly", "parallel"},
		apply: func(w *Weights) { w.Alignment = w.Alignment*1.8 + 0.5 },
	},
	{
		words: []string{"chaos", "chaotic", "random", "erratic", "changing direction", "swirl"},
		apply: func(w *Weights) { w.Alignment *= 0.3; w.Separation += 0.5 },
	},
	{
		words: []string{"calm", "default", "balanced", "natural"},
		apply: func(w *Weights) { *w = DefaultWeights },
	},
}

// SuggestParameters implements ParameterAdvisor. Rules apply in order to the
// current weights; an unrecognised description returns them unchanged.
func (h *Heuristic) SuggestParameters(ctx context.Context, req ParameterRequest) (ParameterResponse, error) {
	if err := ctx.Err(); err != nil {
		return ParameterResponse{}, err
	}
	if err := req.Validate(); err != nil {
		return ParameterResponse{}, err
	}
	w, err := req.Current(DefaultWeights)
	if err != nil {
		return ParameterResponse{}, err
	}

	desired := strings.ToLower(req.DesiredSwarmBehavior)
	for _, rule := range keywordRules {
		for _, word := range rule.words {
			if strings.Contains(desired, word) {
				rule.apply(&w)
				break
			}
		}
	}
	return Weights{
		Cohesion:   clampWeight(w.Cohesion),
		Separation: clampWeight(w.Separation),
		Alignment:  clampWeight(w.Alignment),
	}, nil
}

func clampWeight(v float64) float64 {
	if math.IsNaN(v) {
		return WeightMin
	}
	v = math.Max(WeightMin, math.Min(WeightMax, v))
	return math.Round(v*100) / 100
}
