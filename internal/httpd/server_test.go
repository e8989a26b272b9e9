package httpd

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startLocal(t *testing.T) *Handle {
	t.Helper()
	h, err := New(Config{Addr: "127.0.0.1:0"}).Start()
	require.NoError(t, err)
	t.Cleanup(func() { _ = h.Shutdown(context.Background()) })
	return h
}

func TestRootRoute(t *testing.T) {
	route := RootRoute("ESP Access Point")
	assert.Equal(t, "/", route.Path)
	assert.Equal(t, http.MethodGet, route.Method)

	rec := httptest.NewRecorder()
	route.Handler(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html", rec.Header().Get("Content-Type"))
	body := rec.Body.String()
	assert.Contains(t, body, "ESP32")
	assert.Contains(t, body, "192.168.4.1")
	assert.Contains(t, body, "SSID: ESP Access Point")
	assert.Contains(t, body, "<title>ESP32 Web Server</title>")
}

func TestRenderIndex_EscapesSSID(t *testing.T) {
	page := string(RenderIndex("<b>net</b>"))
	assert.NotContains(t, page, "<b>net</b>")
	assert.Contains(t, page, "&lt;b&gt;net&lt;/b&gt;")
}

func TestHandle_RouteResolution(t *testing.T) {
	h := startLocal(t)

	var calls atomic.Int32
	root := RootRoute("test")
	handler := root.Handler
	root.Handler = func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		handler(w, r)
	}
	h.RegisterRoutes([]Route{root})

	base := "http://" + h.Addr().String()

	resp, err := http.Get(base + "/")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/html", resp.Header.Get("Content-Type"))
	assert.Contains(t, string(body), "ESP32")
	assert.Contains(t, string(body), "192.168.4.1")
	assert.Equal(t, int32(1), calls.Load())

	for _, path := range []string{"/index.html", "/status", "/a/b"} {
		resp, err := http.Get(base + path)
		require.NoError(t, err)
		_ = resp.Body.Close()
		assert.Equal(t, http.StatusNotFound, resp.StatusCode, path)
	}

	resp, err = http.Post(base+"/", "text/plain", strings.NewReader("x"))
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.NotEqual(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, int32(1), calls.Load(), "handler invoked for a non-matching request")
}

func TestHandle_NotFoundBeforeRegistration(t *testing.T) {
	h := startLocal(t)

	resp, err := http.Get("http://" + h.Addr().String() + "/")
	require.NoError(t, err)
	_ = resp.Body.Close()
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestHandle_RegisterRoutesOnce(t *testing.T) {
	h := startLocal(t)

	h.RegisterRoutes([]Route{RootRoute("a"), RootRoute("dup")})
	h.RegisterRoutes([]Route{{Path: "/other", Method: http.MethodGet, Handler: func(http.ResponseWriter, *http.Request) {}}})

	routes := h.Routes()
	require.Len(t, routes, 1)
	assert.Equal(t, "/", routes[0].Path)
}

func TestHandle_ConcurrentRequests(t *testing.T) {
	h := startLocal(t)
	h.RegisterRoutes([]Route{RootRoute("test")})
	url := "http://" + h.Addr().String() + "/"

	var wg sync.WaitGroup
	errs := make(chan error, 20)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			resp, err := http.Get(url)
			if err != nil {
				errs <- err
				return
			}
			_ = resp.Body.Close()
			if resp.StatusCode != http.StatusOK {
				errs <- errors.New(resp.Status)
			}
		}()
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Error(err)
	}
}

func TestServer_StartListenFailure(t *testing.T) {
	bindErr := errors.New("address in use")
	srv := New(Config{
		Addr: ":80",
		Listen: func(network, address string) (net.Listener, error) {
			return nil, bindErr
		},
	})

	h, err := srv.Start()
	assert.Nil(t, h)

	var serverErr *ServerError
	require.ErrorAs(t, err, &serverErr)
	assert.Equal(t, "listen", serverErr.Op)
	assert.Equal(t, ":80", serverErr.Addr)
	assert.ErrorIs(t, err, bindErr)
}

func TestHandle_Port(t *testing.T) {
	h := startLocal(t)
	assert.NotZero(t, h.Port())
}

func TestConfig_Defaults(t *testing.T) {
	c := Config{}.withDefaults()
	assert.Equal(t, DefaultAddr, c.Addr)
	assert.NotZero(t, c.ShutdownTimeout)
	assert.NotNil(t, c.Listen)
}
