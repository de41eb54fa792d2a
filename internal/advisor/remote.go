package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	adjustHeightsPath     = "/adjustHeightMap"
	suggestParametersPath = "/suggestParameters"
	maxResponseBytes      = 1 << 20
)

// Remote calls an advisor service over HTTP. Requests and replies are the JSON
// encodings of the request and response types; replies are validated against
// a JSON schema before use.
type Remote struct {
	baseURL string
	client  *http.Client
}

// NewRemote targets baseURL (for example "http://localhost:3400").
func NewRemote(baseURL string, timeout time.Duration) (*Remote, error) {
	if strings.TrimSpace(baseURL) == "" {
		return nil, fmt.Errorf("advisor base url is empty")
	}
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Remote{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
	}, nil
}

// AdjustHeights implements HeightAdvisor.
func (r *Remote) AdjustHeights(ctx context.Context, req HeightRequest) (HeightResponse, error) {
	if err := req.Validate(); err != nil {
		return HeightResponse{}, err
	}
	var resp HeightResponse
	if err := r.call(ctx, adjustHeightsPath, req, heightSchema, &resp); err != nil {
		return HeightResponse{}, err
	}
	if err := resp.Check(req); err != nil {
		return HeightResponse{}, err
	}
	return resp, nil
}

// SuggestParameters implements ParameterAdvisor.
func (r *Remote) SuggestParameters(ctx context.Context, req ParameterRequest) (ParameterResponse, error) {
	if err := req.Validate(); err != nil {
		return ParameterResponse{}, err
	}
	var resp ParameterResponse
	if err := r.call(ctx, suggestParametersPath, req, parameterSchema, &resp); err != nil {
		return ParameterResponse{}, err
	}
	return resp, nil
}

func (r *Remote) call(ctx context.Context, path string, in any, schema *jsonschema.Schema, out any) error {
	body, err := json.Marshal(in)
	if err != nil {
		return fmt.Errorf("failed to encode advisor request: %w", err)
	}
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, r.baseURL+path, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("failed to build advisor request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	httpResp, err := r.client.Do(httpReq)
	if err != nil {
		return fmt.Errorf("advisor call %s failed: %w", path, err)
	}
	defer httpResp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(httpResp.Body, maxResponseBytes))
	if err != nil {
		return fmt.Errorf("failed to read advisor response: %w", err)
	}
	if httpResp.StatusCode != http.StatusOK {
		return fmt.Errorf("advisor call %s: unexpected status %s: %s", path, httpResp.Status, bytes.TrimSpace(raw))
	}
	return decodeValidated(raw, schema, out)
}
