package exchange

import (
	"context"
	"crypto/x509"
	"errors"
	"fmt"
	"io"
	"net"
	"net/url"
	"os"
	"syscall"
	"testing"

	"github.com/aholstenson/cors-inspector/pkg/network"
	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want network.FailureKind
	}{{
		name: "canceled",
		err:  &url.Error{Op: "Get", URL: "http://host", Err: context.Canceled},
		want: network.FailureCanceled,
	}, {
		name: "deadline",
		err:  &url.Error{Op: "Get", URL: "http://host", Err: context.DeadlineExceeded},
		want: network.FailureTimeout,
	}, {
		name: "no such host",
		err:  &net.DNSError{Err: "no such host", Name: "host.invalid", IsNotFound: true},
		want: network.FailureDNS,
	}, {
		name: "dns timeout",
		err:  &net.DNSError{Err: "i/o timeout", Name: "host", IsTimeout: true},
		want: network.FailureTimeout,
	}, {
		name: "connection refused",
		err: &net.OpError{
			Op:  "dial",
			Net: "tcp",
			Err: os.NewSyscallError("connect", syscall.ECONNREFUSED),
		},
		want: network.FailureRefused,
	}, {
		name: "unknown authority",
		err:  &url.Error{Op: "Get", URL: "https://host", Err: x509.UnknownAuthorityError{}},
		want: network.FailureTLS,
	}, {
		name: "fetch rejected",
		err:  fmt.Errorf("%w: TypeError: Failed to fetch", ErrFetchRejected),
		want: network.FailureCORS,
	}, {
		name: "invalid request",
		err:  fmt.Errorf("%w: parse \"://x\": missing protocol scheme", ErrInvalidRequest),
		want: network.FailureRequest,
	}, {
		name: "unsupported scheme",
		err:  errors.New(`Get "ftp://host": unsupported protocol scheme "ftp"`),
		want: network.FailureRequest,
	}, {
		name: "refused by message",
		err:  errors.New("dial tcp 127.0.0.1:1: connect: connection refused"),
		want: network.FailureRefused,
	}, {
		name: "timeout by message",
		err:  errors.New("read tcp 127.0.0.1:1: i/o timeout"),
		want: network.FailureTimeout,
	}, {
		name: "truncated body",
		err:  io.ErrUnexpectedEOF,
		want: network.FailureNetwork,
	}}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.err))
		})
	}
}
