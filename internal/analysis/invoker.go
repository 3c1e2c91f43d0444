package analysis

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Failure classes of an analysis invocation. Callers map these to
// distinct user-facing messages, so they must stay distinguishable.
var (
	// ErrServiceUnavailable: the function endpoint could not be reached
	// or did not answer in time.
	ErrServiceUnavailable = errors.New("analysis service unavailable")
	// ErrUpstreamModel: the function answered with an application-level
	// error object.
	ErrUpstreamModel = errors.New("analysis model error")
	// ErrMalformedResponse: the function answered but the payload is
	// missing the expected result field.
	ErrMalformedResponse = errors.New("malformed analysis response")
)

// Narrator produces a narrative for formatted assessment content.
type Narrator interface {
	Invoke(ctx context.Context, kind, content, analysisType string) (string, error)
}

type invokeRequest struct {
	Type         string `json:"type"`
	Content      string `json:"content"`
	AnalysisType string `json:"analysisType,omitempty"`
}

type invokeResponse struct {
	Result string `json:"result"`
	Error  string `json:"error"`
}

// Invoker calls the remote serverless analysis function over HTTP.
// No automatic retry: a retry is the caller re-invoking with the same
// content.
type Invoker struct {
	endpoint string
	client   *http.Client
}

// NewInvoker creates an invoker for the given function endpoint.
func NewInvoker(endpoint string, timeout time.Duration) *Invoker {
	return &Invoker{
		endpoint: endpoint,
		client:   &http.Client{Timeout: timeout},
	}
}

// Invoke sends the formatted content and returns the narrative result.
func (i *Invoker) Invoke(ctx context.Context, kind, content, analysisType string) (string, error) {
	body, err := json.Marshal(invokeRequest{Type: kind, Content: content, AnalysisType: analysisType})
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, i.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := i.client.Do(req)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}

	var parsed invokeResponse
	if err := json.Unmarshal(raw, &parsed); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return "", fmt.Errorf("%w: status %d", ErrServiceUnavailable, resp.StatusCode)
		}
		return "", fmt.Errorf("%w: %v", ErrMalformedResponse, err)
	}

	if parsed.Error != "" {
		return "", fmt.Errorf("%w: %s", ErrUpstreamModel, parsed.Error)
	}
	if parsed.Result == "" {
		return "", fmt.Errorf("%w: missing result field", ErrMalformedResponse)
	}
	return parsed.Result, nil
}
