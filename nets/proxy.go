package nets

import (
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/logs"
	"github.com/reusee/turing/modes"
	"github.com/reusee/turing/vars"
)

// ProxyAddr is the proxy for outbound record store requests.
type ProxyAddr string

var proxyEnvs = []string{
	"TURING_PROXY",
	"ALL_PROXY", "all_proxy",
	"HTTPS_PROXY", "https_proxy",
	"HTTP_PROXY", "http_proxy",
	"SOCKS_PROXY", "socks_proxy",
}

func (Module) ProxyAddr(
	mode modes.Mode,
	loader configs.Loader,
	logger logs.Logger,
) (ret ProxyAddr) {
	if mode == modes.ModeDevelopment {
		// tests talk to local servers only
		return ""
	}
	defer func() {
		if ret != "" {
			logger.Info("proxy", "addr", ret)
		}
	}()

	candidates := []ProxyAddr{
		configs.First[ProxyAddr](loader, "proxy_addr"),
	}
	for _, name := range proxyEnvs {
		candidates = append(candidates, ProxyAddr(os.Getenv(name)))
	}
	return vars.FirstNonZero(candidates...)
}

// parseProxy accepts URLs and bare host:port, which means socks5.
func parseProxy(addr ProxyAddr) (*url.URL, error) {
	if addr == "" {
		return nil, nil
	}
	str := string(addr)
	if !strings.Contains(str, "://") {
		str = "socks5://" + str
	}
	u, err := url.Parse(str)
	if err != nil {
		return nil, fmt.Errorf("bad proxy %q: %w", addr, err)
	}
	if u.Scheme == "socks" {
		u.Scheme = "socks5"
	}
	if u.Host == "" {
		return nil, fmt.Errorf("bad proxy %q: no host", addr)
	}
	return u, nil
}
