package nets

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/reusee/dscope"
	"github.com/reusee/turing/configs"
	"github.com/reusee/turing/modes"
)

func TestHTTPClientLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	}))
	defer server.Close()

	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		// local addresses never use the proxy
		func() ProxyAddr {
			return "127.0.0.1:1"
		},
	).Call(func(
		client HTTPClient,
		proxyAddr ProxyAddr,
	) {
		if proxyAddr == "" {
			t.Fatal()
		}
		resp, err := client.Get(server.URL)
		if err != nil {
			t.Fatal(err)
		}
		defer resp.Body.Close()
		body, err := io.ReadAll(resp.Body)
		if err != nil {
			t.Fatal(err)
		}
		if string(body) != "ok" {
			t.Fatalf("got %q", body)
		}
	})
}

func TestHTTPClientBadProxy(t *testing.T) {
	dscope.New(
		modes.ForTest(t),
		new(Module),
		dscope.Provide(configs.NewLoader(nil, "")),
	).Fork(
		func() ProxyAddr {
			return "socks5://"
		},
	).Call(func(
		client HTTPClient,
	) {
		// 192.0.2.0/24 is neither loopback nor private
		_, err := client.Get("http://192.0.2.1/")
		if err == nil {
			t.Fatal("should error")
		}
	})
}
