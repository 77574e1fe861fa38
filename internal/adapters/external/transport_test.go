package external

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"net/http/httptest"
	"os"
	"syscall"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/pkg/errors"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestClassifyTransportError(t *testing.T) {
	dial := func(errno syscall.Errno) error {
		return &net.OpError{Op: "dial", Net: "tcp", Err: os.NewSyscallError("connect", errno)}
	}

	tests := []struct {
		name     string
		err      error
		expected errors.ErrorType
	}{
		{"DeadlineExceeded", context.DeadlineExceeded, errors.ErrorTypeTimeout},
		{"NetTimeout", &net.OpError{Op: "read", Err: timeoutErr{}}, errors.ErrorTypeTimeout},
		{"NetworkUnreachable", dial(syscall.ENETUNREACH), errors.ErrorTypeNoConnectivity},
		{"NetworkDown", dial(syscall.ENETDOWN), errors.ErrorTypeNoConnectivity},
		{"ConnectionRefused", dial(syscall.ECONNREFUSED), errors.ErrorTypeServerUnavailable},
		{"HostUnreachable", dial(syscall.EHOSTUNREACH), errors.ErrorTypeServerUnavailable},
		{"DNSFailure", &net.DNSError{Err: "no such host", Name: "api.example.com", IsNotFound: true}, errors.ErrorTypeServerUnavailable},
		{"Cancelled", context.Canceled, errors.ErrorTypeUnknown},
		{"Other", stderrors.New("tls: bad certificate"), errors.ErrorTypeUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := classifyTransportError("weatherapi", tt.err)
			assert.Equal(t, tt.expected, errors.TypeOf(err))
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestGetJSON_StatusMapping(t *testing.T) {
	tests := []struct {
		name     string
		status   int
		body     string
		expected errors.ErrorType
	}{
		{"ServerError", http.StatusBadGateway, `{}`, errors.ErrorTypeServerUnavailable},
		{"ClientError", http.StatusForbidden, `{}`, errors.ErrorTypeInvalidResponse},
		{"BadJSON", http.StatusOK, `{"current":`, errors.ErrorTypeDecoding},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte(tt.body))
			}))
			defer server.Close()

			var out map[string]interface{}
			err := getJSON(context.Background(), server.Client(), "weatherapi", server.URL, &out, nil)
			assert.Equal(t, tt.expected, errors.TypeOf(err))
		})
	}
}

func TestGetJSON_InvalidURL(t *testing.T) {
	var out map[string]interface{}
	err := getJSON(context.Background(), http.DefaultClient, "weatherapi", "://bad url", &out, nil)
	assert.Equal(t, errors.ErrorTypeInvalidRequest, errors.TypeOf(err))
}

func TestGetJSON_ConnectionRefused(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	var out map[string]interface{}
	err := getJSON(context.Background(), http.DefaultClient, "weatherapi", url, &out, nil)
	require.Error(t, err)
	assert.Equal(t, errors.ErrorTypeServerUnavailable, errors.TypeOf(err))
}
