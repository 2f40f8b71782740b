package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"go.uber.org/zap"

	apperrors "tiffin/internal/errors"
)

// apiClient is the shared HTTP plumbing for the remote service clients.
// A 404 from the remote becomes a NotFoundError; every other failure,
// transport or HTTP, becomes an UpstreamError. No retries.
type apiClient struct {
	httpClient *http.Client
	baseURL    string
	logger     *zap.Logger
}

func (c *apiClient) getJSON(ctx context.Context, path string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return apperrors.NewUpstreamError("building request", err)
	}

	return c.do(req, path, out)
}

func (c *apiClient) postJSON(ctx context.Context, path string, body interface{}) error {
	data, err := json.Marshal(body)
	if err != nil {
		return apperrors.NewUpstreamError("encoding request body", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(data))
	if err != nil {
		return apperrors.NewUpstreamError("building request", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, path, nil)
}

func (c *apiClient) do(req *http.Request, path string, out interface{}) error {
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("remote call failed", zap.String("path", path), zap.Error(err))
		return apperrors.NewUpstreamError(fmt.Sprintf("calling %s", path), err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return apperrors.NewNotFoundError(fmt.Sprintf("%s not found", path))
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		c.logger.Warn("remote call returned error status", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return apperrors.NewUpstreamError(fmt.Sprintf("calling %s: status %d", path, resp.StatusCode), nil)
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return apperrors.NewUpstreamError(fmt.Sprintf("decoding %s response", path), err)
	}

	return nil
}
