package monday

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Transport executes a single GraphQL request and returns the decoded data
// payload. It is the narrow seam between the retrieval core and the HTTP
// layer; tests substitute a fake, and retry or timeout policy lives behind
// this interface, not in the core.
type Transport interface {
	Execute(ctx context.Context, query string, variables map[string]any, headers map[string]string) (json.RawMessage, error)
}

// graphqlRequest is the POST body of a GraphQL call.
type graphqlRequest struct {
	Query     string         `json:"query"`
	Variables map[string]any `json:"variables,omitempty"`
}

// graphqlResponse is the response envelope: data plus an optional errors
// array.
type graphqlResponse struct {
	Data   json.RawMessage `json:"data"`
	Errors []graphqlError  `json:"errors"`
}

type graphqlError struct {
	Message    string `json:"message"`
	Extensions struct {
		Code       string `json:"code"`
		StatusCode int    `json:"status_code"`
	} `json:"extensions"`
}

// httpTransport is the default Transport, posting to a fixed endpoint over
// net/http.
type httpTransport struct {
	endpoint string
	client   *http.Client
}

func (t *httpTransport) Execute(ctx context.Context, query string, variables map[string]any, headers map[string]string) (json.RawMessage, error) {
	payload, err := json.Marshal(graphqlRequest{Query: query, Variables: variables})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("do request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(resp.Body)
		var envelope graphqlResponse
		if json.Unmarshal(respBody, &envelope) == nil && len(envelope.Errors) > 0 {
			first := envelope.Errors[0]
			return nil, newAPIError(resp.StatusCode, first.Extensions.Code, first.Message)
		}
		msg := string(respBody)
		if msg == "" {
			msg = resp.Status
		}
		return nil, newAPIError(resp.StatusCode, "", msg)
	}

	var envelope graphqlResponse
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if len(envelope.Errors) > 0 {
		first := envelope.Errors[0]
		status := first.Extensions.StatusCode
		if status == 0 {
			status = resp.StatusCode
		}
		return nil, newAPIError(status, first.Extensions.Code, first.Message)
	}
	return envelope.Data, nil
}
