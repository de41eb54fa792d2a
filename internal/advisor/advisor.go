// Package advisor defines the heightmap and parameter advisors consulted by the
// simulation, with a local heuristic implementation and a remote HTTP one.
package advisor

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

var (
	// ErrInvalidRequest is returned before any work is done when a request is malformed.
	ErrInvalidRequest = errors.New("invalid advisor request")
	// ErrInvalidResponse is returned when an advisor answers with data that does not fit the request.
	ErrInvalidResponse = errors.New("invalid advisor response")
)

// HeightRequest asks for a new heightmap given the latest density grid.
type HeightRequest struct {
	SwarmDensityData []int32   `json:"swarmDensityData"`
	CurrentHeights   []float64 `json:"currentHeights"`
	MapWidth         int       `json:"mapWidth"`
	MapHeight        int       `json:"mapHeight"`
}

// Validate checks the grid dimensions against both arrays.
func (r HeightRequest) Validate() error {
	if r.MapWidth <= 0 || r.MapHeight <= 0 {
		return fmt.Errorf("%w: map is %dx%d", ErrInvalidRequest, r.MapWidth, r.MapHeight)
	}
	cells := r.MapWidth * r.MapHeight
	if len(r.SwarmDensityData) != cells {
		return fmt.Errorf("%w: density has %d cells, map has %d", ErrInvalidRequest, len(r.SwarmDensityData), cells)
	}
	if len(r.CurrentHeights) != cells {
		return fmt.Errorf("%w: heights have %d cells, map has %d", ErrInvalidRequest, len(r.CurrentHeights), cells)
	}
	return nil
}

// HeightResponse carries the adjusted map and a human readable explanation.
type HeightResponse struct {
	AdjustedHeights []float64 `json:"adjustedHeights"`
	Explanation     string    `json:"explanation"`
}

// Check verifies the response fits the request it answers.
func (r HeightResponse) Check(req HeightRequest) error {
	if len(r.AdjustedHeights) != req.MapWidth*req.MapHeight {
		return fmt.Errorf("%w: got %d heights, want %d", ErrInvalidResponse, len(r.AdjustedHeights), req.MapWidth*req.MapHeight)
	}
	for i, h := range r.AdjustedHeights {
		if math.IsNaN(h) || math.IsInf(h, 0) {
			return fmt.Errorf("%w: height %d is not finite", ErrInvalidResponse, i)
		}
	}
	return nil
}

// Weights are the three steering weights a parameter advisor works on.
type Weights struct {
	Cohesion   float64 `json:"cohesion"`
	Separation float64 `json:"separation"`
	Alignment  float64 `json:"alignment"`
}

// ParameterRequest describes the behaviour wanted from the swarm in free text.
// CurrentParameters is the JSON encoding of the current Weights, empty when
// starting from defaults.
type ParameterRequest struct {
	DesiredSwarmBehavior string `json:"desiredSwarmBehavior"`
	CurrentParameters    string `json:"currentParameters,omitempty"`
}

// NewParameterRequest encodes current into the request.
func NewParameterRequest(desired string, current *Weights) (ParameterRequest, error) {
	req := ParameterRequest{DesiredSwarmBehavior: desired}
	if current != nil {
		b, err := json.Marshal(current)
		if err != nil {
			return req, fmt.Errorf("failed to encode current parameters: %w", err)
		}
		req.CurrentParameters = string(b)
	}
	return req, nil
}

// Validate requires a non-blank behaviour description.
func (r ParameterRequest) Validate() error {
	if strings.TrimSpace(r.DesiredSwarmBehavior) == "" {
		return fmt.Errorf("%w: desired swarm behavior is empty", ErrInvalidRequest)
	}
	return nil
}

// Current decodes CurrentParameters, falling back to def when it is empty.
func (r ParameterRequest) Current(def Weights) (Weights, error) {
	if strings.TrimSpace(r.CurrentParameters) == "" {
		return def, nil
	}
	w := def
	if err := json.Unmarshal([]byte(r.CurrentParameters), &w); err != nil {
		return def, fmt.Errorf("%w: current parameters: %v", ErrInvalidRequest, err)
	}
	return w, nil
}

// ParameterResponse is the suggested set of weights.
type ParameterResponse = Weights

// HeightAdvisor reshapes the heightmap from the swarm density.
type HeightAdvisor interface {
	AdjustHeights(ctx context.Context, req HeightRequest) (HeightResponse, error)
}

// ParameterAdvisor turns a behaviour description into steering weights.
type ParameterAdvisor interface {
	SuggestParameters(ctx context.Context, req ParameterRequest) (ParameterResponse, error)
}

// Advisor serves both kinds of advice.
type Advisor interface {
	HeightAdvisor
	ParameterAdvisor
}

const heightResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["adjustedHeights", "explanation"],
  "properties": {
    "adjustedHeights": {"type": "array", "items": {"type": "number"}},
    "explanation": {"type": "string"}
  }
}`

const parameterResponseSchema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "object",
  "required": ["cohesion", "separation", "alignment"],
  "properties": {
    "cohesion": {"type": "number", "minimum": 0},
    "separation": {"type": "number", "minimum": 0},
    "alignment": {"type": "number", "minimum": 0}
  }
}`

var (
	heightSchema    = jsonschema.MustCompileString("mem://advisor/height-response.json", heightResponseSchema)
	parameterSchema = jsonschema.MustCompileString("mem://advisor/parameter-response.json", parameterResponseSchema)
)

// decodeValidated checks raw against schema before decoding it into out.
func decodeValidated(raw []byte, schema *jsonschema.Schema, out any) error {
	var doc any
	if err := json.Unmarshal(raw, &doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := schema.Validate(doc); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidResponse, err)
	}
	return nil
}
