package httpd

import (
	"bytes"
	_ "embed"
	"html/template"
	"net/http"

	"github.com/muurk/softap/internal/ap"
)

// Route binds a method and path to a handler.
type Route struct {
	Path    string
	Method  string
	Handler http.HandlerFunc
}

type routeKey struct {
	method string
	path   string
}

func (r Route) key() routeKey {
	return routeKey{method: r.Method, path: r.Path}
}

//go:embed index.html
var indexTemplate string

var indexPage = template.Must(template.New("index").Parse(indexTemplate))

type pageData struct {
	SSID string
	URL  string
}

// RenderIndex renders the diagnostic page for an access point named ssid.
func RenderIndex(ssid string) []byte {
	var buf bytes.Buffer
	// The template and data are fixed; execution cannot fail.
	_ = indexPage.Execute(&buf, pageData{SSID: ssid, URL: "http://" + ap.GatewayAddress})
	return buf.Bytes()
}

// RootRoute returns the GET / route serving the diagnostic page. The page
// is rendered once; the handler only writes it.
func RootRoute(ssid string) Route {
	page := RenderIndex(ssid)
	return Route{
		Path:   "/",
		Method: http.MethodGet,
		Handler: func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "text/html")
			w.WriteHeader(http.StatusOK)
			_, _ = w.Write(page)
		},
	}
}
