package remoteadmin

import (
	"context"
	"io"
	"net"
	"net/http"
	"time"
)

// deadlineTransport puts a deadline on every request. The deadline stays
// active until the response body is closed so that reading the body is
// covered as well.
type deadlineTransport struct {
	base    http.RoundTripper
	timeout time.Duration
}

func newDeadlineTransport(timeout time.Duration) *deadlineTransport {
	dialer := &net.Dialer{Timeout: timeout}
	return &deadlineTransport{
		base: &http.Transport{
			Proxy:                 http.ProxyFromEnvironment,
			DialContext:           dialer.DialContext,
			TLSHandshakeTimeout:   timeout,
			ResponseHeaderTimeout: timeout,
			DisableKeepAlives:     true,
		},
		timeout: timeout,
	}
}

func (t *deadlineTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx, cancel := context.WithTimeout(req.Context(), t.timeout)
	resp, err := t.base.RoundTrip(req.WithContext(ctx))
	if err != nil {
		cancel()
		return nil, err
	}
	resp.Body = &cancelOnClose{ReadCloser: resp.Body, cancel: cancel}
	return resp, nil
}

type cancelOnClose struct {
	io.ReadCloser
	cancel context.CancelFunc
}

func (b *cancelOnClose) Close() error {
	err := b.ReadCloser.Close()
	b.cancel()
	return err
}
