package nets

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"sync"
	"time"

	"github.com/reusee/turing/logs"
	"golang.org/x/net/proxy"
)

type HTTPClient = *http.Client

const requestTimeout = 30 * time.Second

// HTTPClient reaches local addresses directly and everything else through
// the configured proxy, if any. SOCKS proxies are dialed; HTTP proxies are
// handed to the transport.
func (Module) HTTPClient(
	proxyAddr ProxyAddr,
	isLocalAddr IsLocalAddr,
	logger logs.Logger,
) HTTPClient {
	direct := &net.Dialer{
		Timeout: 10 * time.Second,
	}
	getProxyURL := sync.OnceValues(func() (*url.URL, error) {
		return parseProxy(proxyAddr)
	})
	getSOCKS := sync.OnceValues(func() (proxy.ContextDialer, error) {
		u, err := getProxyURL()
		if err != nil || u == nil || u.Scheme != "socks5" {
			return nil, err
		}
		dialer, err := proxy.FromURL(u, direct)
		if err != nil {
			return nil, err
		}
		contextDialer, ok := dialer.(proxy.ContextDialer)
		if !ok {
			return nil, fmt.Errorf("proxy %s cannot dial with context", u.Redacted())
		}
		return contextDialer, nil
	})

	dial := func(ctx context.Context, network, addr string) (net.Conn, error) {
		if isLocalAddr(addr) {
			return direct.DialContext(ctx, network, addr)
		}
		socks, err := getSOCKS()
		if err != nil {
			return nil, err
		}
		if socks == nil {
			return direct.DialContext(ctx, network, addr)
		}
		logger.DebugContext(ctx, "dial via proxy", "addr", addr)
		return socks.DialContext(ctx, network, addr)
	}

	httpProxy := func(req *http.Request) (*url.URL, error) {
		if isLocalAddr(req.URL.Host) {
			return nil, nil
		}
		u, err := getProxyURL()
		if err != nil || u == nil || u.Scheme == "socks5" {
			return nil, err
		}
		return u, nil
	}

	return &http.Client{
		Timeout: requestTimeout,
		Transport: &http.Transport{
			Proxy:               httpProxy,
			DialContext:         dial,
			TLSHandshakeTimeout: 10 * time.Second,
			MaxIdleConnsPerHost: 2,
		},
	}
}
