package holdcloud

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/holdcloud/hcctl/constants"
	"github.com/holdcloud/hcctl/lib/auth"
	"github.com/holdcloud/hcctl/models"
)

const (
	testUsername = "dev@example.com"
	testPassword = "s3cret"
)

// A request the fake platform received.
type recordedRequest struct {
	Method    string
	Path      string
	Query     string
	Token     string
	RequestID string
	Body      string
	Header    http.Header
}

// In-memory stand-in for the platform API, mounted under /api/v1.
type fakePlatform struct {
	t      *testing.T
	server *httptest.Server

	mu       sync.Mutex
	logins   int
	issued   int
	valid    map[string]bool
	requests []recordedRequest
	// Queued statuses returned (once each) by API calls before the real handler runs
	forced []int
	apps   []models.Service
	states map[int][]string

	// Called before a login is answered, if set
	onLogin func()
	// Status returned by /login, 0 for normal behavior
	loginStatus int
	// Token returned by /login, "" to issue fresh ones
	loginToken *string
}

func newFakePlatform(t *testing.T) *fakePlatform {
	t.Helper()

	p := &fakePlatform{
		t:      t,
		valid:  map[string]bool{},
		states: map[int][]string{},
	}
	p.server = httptest.NewServer(http.HandlerFunc(p.handle))
	t.Cleanup(p.server.Close)
	return p
}

func (p *fakePlatform) baseURL() string {
	return p.server.URL + "/api/v1"
}

func (p *fakePlatform) newClient(t *testing.T, opts ...Option) *Client {
	t.Helper()

	c, err := New(testUsername, testPassword, p.baseURL(), opts...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return c
}

// Marks every issued token as expired.
func (p *fakePlatform) expireTokens() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.valid = map[string]bool{}
}

// Queue statuses to return for the next API calls.
func (p *fakePlatform) force(statuses ...int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.forced = append(p.forced, statuses...)
}

func (p *fakePlatform) loginCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.logins
}

func (p *fakePlatform) recorded() []recordedRequest {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]recordedRequest(nil), p.requests...)
}

// Recorded requests other than logins.
func (p *fakePlatform) apiRequests() []recordedRequest {
	var out []recordedRequest
	for _, r := range p.recorded() {
		if r.Path != "/api/v1/login" {
			out = append(out, r)
		}
	}
	return out
}

func (p *fakePlatform) handle(w http.ResponseWriter, r *http.Request) {
	body, _ := io.ReadAll(r.Body)

	p.mu.Lock()
	p.requests = append(p.requests, recordedRequest{
		Method:    r.Method,
		Path:      r.URL.Path,
		Query:     r.URL.RawQuery,
		Token:     r.Header.Get(constants.TokenHeader),
		RequestID: r.Header.Get(constants.RequestIDHeader),
		Body:      string(body),
		Header:    r.Header.Clone(),
	})
	p.mu.Unlock()

	if r.URL.Path == "/api/v1/login" {
		p.handleLogin(w, r, body)
		return
	}

	p.mu.Lock()
	if !p.valid[r.Header.Get(constants.TokenHeader)] {
		p.mu.Unlock()
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "token expired"})
		return
	}
	if len(p.forced) > 0 {
		status := p.forced[0]
		p.forced = p.forced[1:]
		p.mu.Unlock()
		writeJSON(w, status, map[string]string{"message": http.StatusText(status)})
		return
	}
	p.mu.Unlock()

	p.route(w, r, body)
}

func (p *fakePlatform) handleLogin(w http.ResponseWriter, r *http.Request, body []byte) {
	if p.onLogin != nil {
		p.onLogin()
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	p.logins++

	if p.loginStatus != 0 {
		writeJSON(w, p.loginStatus, map[string]string{"message": "login rejected"})
		return
	}

	var req models.LoginRequest
	if err := json.Unmarshal(body, &req); err != nil || r.Method != http.MethodPost {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": "bad login request"})
		return
	}
	if req.Username != testUsername || req.Password != auth.Digest(testPassword) {
		writeJSON(w, http.StatusUnauthorized, map[string]string{"message": "wrong username or password"})
		return
	}

	var token string
	if p.loginToken != nil {
		token = *p.loginToken
	} else {
		p.issued++
		token = fmt.Sprintf("token-%d", p.issued)
	}
	if token != "" {
		p.valid[token] = true
	}
	writeJSON(w, http.StatusOK, models.LoginResponse{JWEToken: token})
}

func (p *fakePlatform) route(w http.ResponseWriter, r *http.Request, body []byte) {
	path := strings.TrimPrefix(r.URL.Path, "/api/v1/")

	var projectID, appID int
	var action string
	switch {
	case scan(path, "project/%d/unionservices", &projectID) && r.Method == http.MethodGet:
		p.listServices(w, r)
	case scan(path, "project/%d/containerapps", &projectID) && r.Method == http.MethodPost:
		p.createApp(w, body)
	case scan(path, "containerapp/%d/%s", &appID, &action):
		switch {
		case action == "instances" && r.Method == http.MethodPost:
			writeJSON(w, http.StatusOK, map[string]any{})
		case action == "state" && r.Method == http.MethodGet:
			writeJSON(w, http.StatusOK, models.AppState{State: p.nextState(appID)})
		case action == "restart" && r.Method == http.MethodPost:
			writeJSON(w, http.StatusOK, "restarting")
		default:
			writeJSON(w, http.StatusNotFound, map[string]string{"message": "no route"})
		}
	case scan(path, "containerapp/%d", &appID) && r.Method == http.MethodDelete:
		writeJSON(w, http.StatusOK, "deleted")
	default:
		writeJSON(w, http.StatusNotFound, map[string]string{"message": "no route"})
	}
}

func (p *fakePlatform) listServices(w http.ResponseWriter, r *http.Request) {
	p.mu.Lock()
	defer p.mu.Unlock()

	items := append([]models.Service{}, p.apps...)
	writeJSON(w, http.StatusOK, models.ServiceList{Items: items, TotalItems: len(items)})
}

func (p *fakePlatform) createApp(w http.ResponseWriter, body []byte) {
	var spec models.ContainerAppSpec
	if err := json.Unmarshal(body, &spec); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"message": err.Error()})
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	for _, app := range p.apps {
		if app.Name == spec.Name {
			writeJSON(w, http.StatusConflict, map[string]string{"message": "name taken"})
			return
		}
	}

	id := 100 + len(p.apps)
	p.apps = append(p.apps, models.Service{ID: id, Name: spec.Name, Kind: spec.Kind, Description: spec.Description})
	writeJSON(w, http.StatusOK, models.ContainerApp{ID: id})
}

// Pops the next scripted state of an app, repeating the last one.
func (p *fakePlatform) nextState(appID int) string {
	p.mu.Lock()
	defer p.mu.Unlock()

	states := p.states[appID]
	if len(states) == 0 {
		return "Running"
	}
	state := states[0]
	if len(states) > 1 {
		p.states[appID] = states[1:]
	}
	return state
}

// Matches path against a Sscanf pattern, requiring every verb to be filled.
func scan(path, pattern string, args ...any) bool {
	n, err := fmt.Sscanf(path, pattern, args...)
	return err == nil && n == len(args) && fmt.Sprintf(pattern, deref(args)...) == path
}

func deref(args []any) []any {
	out := make([]any, len(args))
	for i, a := range args {
		switch v := a.(type) {
		case *int:
			out[i] = *v
		case *string:
			out[i] = *v
		}
	}
	return out
}

// Long enough for concurrent callers to pile up behind an in-flight login.
func sleepShort() {
	time.Sleep(100 * time.Millisecond)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
