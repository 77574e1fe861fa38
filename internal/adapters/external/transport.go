package external

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"syscall"

	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const maxResponseBytes = 4 << 20

// HTTPClient interface for HTTP requests (for testing)
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// classifyTransportError maps a failed round trip onto a transport error type.
func classifyTransportError(provider string, err error) error {
	switch {
	case stderrors.Is(err, context.DeadlineExceeded):
		return errors.NewTimeoutError(provider+" request timed out", err)
	case stderrors.Is(err, context.Canceled):
		return errors.Wrap(errors.ErrorTypeUnknown, provider+" request cancelled", err)
	}

	var netErr net.Error
	if stderrors.As(err, &netErr) && netErr.Timeout() {
		return errors.NewTimeoutError(provider+" request timed out", err)
	}

	switch {
	case stderrors.Is(err, syscall.ENETUNREACH), stderrors.Is(err, syscall.ENETDOWN):
		return errors.NewNoConnectivityError("no network connectivity", err)
	case stderrors.Is(err, syscall.ECONNREFUSED), stderrors.Is(err, syscall.EHOSTUNREACH),
		stderrors.Is(err, syscall.ECONNRESET):
		return errors.NewServerUnavailableError(provider+" is unreachable", err)
	}

	var dnsErr *net.DNSError
	if stderrors.As(err, &dnsErr) {
		return errors.NewServerUnavailableError(provider+" host cannot be resolved", err)
	}

	return errors.Wrap(errors.ErrorTypeUnknown, provider+" request failed", err)
}

// getJSON performs one GET and decodes a 2xx body into out.
func getJSON(ctx context.Context, client HTTPClient, provider, url string, out interface{}, logger ports.Logger) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return errors.NewInvalidRequestError("failed to build "+provider+" request", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return classifyTransportError(provider, err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && logger != nil {
			logger.Warn("Failed to close response body", ports.F("provider", provider), ports.F("error", closeErr))
		}
	}()

	switch {
	case resp.StatusCode >= http.StatusInternalServerError:
		return errors.NewServerUnavailableError(fmt.Sprintf("%s returned status %d", provider, resp.StatusCode), nil)
	case resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices:
		return errors.NewInvalidResponseError(fmt.Sprintf("%s returned status %d", provider, resp.StatusCode), nil)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseBytes))
	if err != nil {
		return errors.NewInvalidResponseError("failed to read "+provider+" response", err)
	}

	if err := json.Unmarshal(body, out); err != nil {
		return errors.NewDecodingError("failed to decode "+provider+" response", err)
	}

	return nil
}
