// Package apitest stands up a local stand-in for the messaging API so
// package tests can exercise real HTTP exchanges.
package apitest

import (
	"bytes"
	"io"
	"mime"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/example/infobip-go/api"
	"github.com/example/infobip-go/configuration"
)

// APIKey is the credential every test client sends.
const APIKey = "test-api-key"

// Server routes requests to canned replies registered per method and path.
type Server struct {
	*httptest.Server
	router chi.Router
}

// NewServer starts a server that fails the test on any unrouted request.
func NewServer(t testing.TB) *Server {
	t.Helper()

	r := chi.NewRouter()
	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("apitest: unexpected request %s %s", req.Method, req.URL.Path)
		w.WriteHeader(http.StatusNotFound)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		t.Errorf("apitest: unexpected method %s %s", req.Method, req.URL.Path)
		w.WriteHeader(http.StatusMethodNotAllowed)
	})

	srv := &Server{Server: httptest.NewServer(r), router: r}
	t.Cleanup(srv.Close)
	return srv
}

// Client returns an api.Client pointed at the server with API key auth.
func (s *Server) Client(t testing.TB, opts ...api.Option) *api.Client {
	t.Helper()
	client, err := api.NewClient(configuration.WithAPIKey(s.URL, APIKey), opts...)
	if err != nil {
		t.Fatalf("apitest: new client: %v", err)
	}
	return client
}

// Reply answers method+pattern with status and a JSON body. Patterns use chi
// syntax, e.g. "/sms/1/bulks" or "/2fa/2/applications/{appId}".
func (s *Server) Reply(method, pattern string, status int, body string) *Route {
	route := &Route{}
	s.router.MethodFunc(method, pattern, func(w http.ResponseWriter, req *http.Request) {
		data, _ := io.ReadAll(req.Body)
		route.record(Call{
			Method: req.Method,
			Path:   req.URL.Path,
			Query:  req.URL.Query(),
			Header: req.Header.Clone(),
			Body:   data,
		})
		if body != "" {
			w.Header().Set("Content-Type", "application/json")
		}
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	})
	return route
}

// Route collects the calls served by one registration.
type Route struct {
	mu    sync.Mutex
	calls []Call
}

func (r *Route) record(c Call) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, c)
}

// Calls returns a snapshot of the recorded calls.
func (r *Route) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]Call(nil), r.calls...)
}

// Last returns the most recent call, failing the test when there is none.
func (r *Route) Last(t testing.TB) Call {
	t.Helper()
	calls := r.Calls()
	if len(calls) == 0 {
		t.Fatalf("apitest: route was never called")
	}
	return calls[len(calls)-1]
}

// Call is one request as the server saw it.
type Call struct {
	Method string
	Path   string
	Query  url.Values
	Header http.Header
	Body   []byte
}

// Part is one multipart/form-data part.
type Part struct {
	Name     string
	FileName string
	Value    string
}

// Parts decodes a multipart body in wire order.
func (c Call) Parts(t testing.TB) []Part {
	t.Helper()
	mediaType, params, err := mime.ParseMediaType(c.Header.Get("Content-Type"))
	if err != nil || !strings.HasPrefix(mediaType, "multipart/") {
		t.Fatalf("apitest: not a multipart body: %q (%v)", c.Header.Get("Content-Type"), err)
	}

	var parts []Part
	reader := multipart.NewReader(bytes.NewReader(c.Body), params["boundary"])
	for {
		p, err := reader.NextPart()
		if err == io.EOF {
			return parts
		}
		if err != nil {
			t.Fatalf("apitest: read part: %v", err)
		}
		data, err := io.ReadAll(p)
		if err != nil {
			t.Fatalf("apitest: read part %s: %v", p.FormName(), err)
		}
		parts = append(parts, Part{Name: p.FormName(), FileName: p.FileName(), Value: string(data)})
	}
}
