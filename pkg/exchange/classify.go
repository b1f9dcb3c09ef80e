package exchange

import (
	"context"
	"crypto/tls"
	"crypto/x509"
	"errors"
	"net"
	"strings"
	"syscall"

	"github.com/aholstenson/cors-inspector/pkg/network"
)

// ErrFetchRejected is wrapped by transports whose exchange was rejected by a
// browser, which does not say whether CORS or the network was the cause.
var ErrFetchRejected = errors.New("fetch rejected")

// Classify maps the error of a failed exchange to a failure kind. Typed
// errors are checked first; errors that only carry a message are matched on
// well known suffixes.
func Classify(err error) network.FailureKind {
	if errors.Is(err, context.Canceled) {
		return network.FailureCanceled
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return network.FailureTimeout
	}
	if errors.Is(err, ErrFetchRejected) {
		return network.FailureCORS
	}
	if errors.Is(err, ErrInvalidRequest) {
		return network.FailureRequest
	}

	var dnsError *net.DNSError
	if errors.As(err, &dnsError) {
		if dnsError.IsTimeout {
			return network.FailureTimeout
		}
		return network.FailureDNS
	}

	if errors.Is(err, syscall.ECONNREFUSED) {
		return network.FailureRefused
	}

	if isTLSError(err) {
		return network.FailureTLS
	}

	var netError net.Error
	if errors.As(err, &netError) && netError.Timeout() {
		return network.FailureTimeout
	}

	return classifyMessage(err.Error())
}

func isTLSError(err error) bool {
	var verificationError *tls.CertificateVerificationError
	var recordHeaderError tls.RecordHeaderError
	var unknownAuthorityError x509.UnknownAuthorityError
	var hostnameError x509.HostnameError
	var certificateInvalidError x509.CertificateInvalidError

	return errors.As(err, &verificationError) ||
		errors.As(err, &recordHeaderError) ||
		errors.As(err, &unknownAuthorityError) ||
		errors.As(err, &hostnameError) ||
		errors.As(err, &certificateInvalidError)
}

func classifyMessage(msg string) network.FailureKind {
	switch {
	case strings.Contains(msg, "unsupported protocol scheme"),
		strings.HasSuffix(msg, "no Host in request URL"):
		return network.FailureRequest
	case strings.HasSuffix(msg, "connection refused"),
		strings.Contains(msg, "actively refused"):
		return network.FailureRefused
	case strings.HasSuffix(msg, "no such host"):
		return network.FailureDNS
	case strings.HasSuffix(msg, "i/o timeout"),
		strings.HasSuffix(msg, "TLS handshake timeout"):
		return network.FailureTimeout
	}
	return network.FailureNetwork
}
