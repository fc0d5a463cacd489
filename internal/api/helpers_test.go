package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/mathquiz/backend/internal/api"
	"github.com/mathquiz/backend/internal/domain/child"
	"github.com/mathquiz/backend/internal/domain/questionbank"
	"github.com/mathquiz/backend/internal/grader"
	"github.com/mathquiz/backend/internal/live"
	"github.com/mathquiz/backend/internal/service"
	"github.com/mathquiz/backend/internal/store"
)

const (
	testCookie   = "math_sess"
	testPassword = "open sesame"
)

type testApp struct {
	server  *httptest.Server
	client  *http.Client
	catalog *questionbank.Catalog
}

type appOptions struct {
	dailyLimit  int
	adminPerMin int
}

func newTestApp(t *testing.T, opts appOptions) *testApp {
	t.Helper()
	if opts.dailyLimit == 0 {
		opts.dailyLimit = 400
	}
	if opts.adminPerMin == 0 {
		opts.adminPerMin = 5
	}

	db, err := store.NewSQLite(filepath.Join(t.TempDir(), "api.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}

	catalog, err := questionbank.BuildCatalog(questionbank.RecipeV1, questionbank.RecipeV2)
	if err != nil {
		t.Fatalf("build catalog: %v", err)
	}

	now := time.Date(2024, 3, 9, 10, 0, 0, 0, time.UTC)
	clock := service.Clock(func() time.Time { return now })
	roster := child.NewRoster(
		child.Child{Name: "alleia", BankVersion: 1},
		child.Child{Name: "althafandra", BankVersion: 2},
	)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	sessions := service.NewSessionManager(db, roster, clock, logger)
	statsSvc := service.NewStatsService(db, clock)
	hub := live.NewHub(statsSvc, logger)
	quiz := service.NewQuizService(
		sessions,
		statsSvc,
		catalog,
		service.NewPicker(rand.NewSource(3)),
		grader.NewArithmeticGrader(catalog),
		hub,
		service.QuizConfig{DailyLimit: opts.dailyLimit, RewardPerCorrect: 50},
		logger,
	)
	admin, err := service.NewAdminService(db, testPassword, logger)
	if err != nil {
		t.Fatalf("admin service: %v", err)
	}

	handler := api.NewHandler(api.Deps{
		Sessions:   sessions,
		Stats:      statsSvc,
		Quiz:       quiz,
		Admin:      admin,
		Live:       hub,
		CookieName: testCookie,
	}, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, handler, opts.adminPerMin)
	server := httptest.NewServer(api.Logging(logger)(mux))

	t.Cleanup(func() {
		server.Close()
		hub.Close()
		db.Close()
	})

	jar, _ := cookiejar.New(nil)
	client := &http.Client{
		Jar: jar,
		CheckRedirect: func(*http.Request, []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	return &testApp{server: server, client: client, catalog: catalog}
}

func (a *testApp) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := a.client.Get(a.server.URL + path)
	if err != nil {
		t.Fatalf("GET %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func (a *testApp) post(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	var buf bytes.Buffer
	switch b := body.(type) {
	case string:
		buf.WriteString(b)
	default:
		if err := json.NewEncoder(&buf).Encode(b); err != nil {
			t.Fatalf("encode body: %v", err)
		}
	}
	resp, err := a.client.Post(a.server.URL+path, "application/json", &buf)
	if err != nil {
		t.Fatalf("POST %s: %v", path, err)
	}
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

// selectChild binds name to the client's session.
func (a *testApp) selectChild(t *testing.T, name string) {
	t.Helper()
	resp := a.get(t, "/home/"+name)
	if resp.StatusCode != http.StatusSeeOther || resp.Header.Get("Location") != "/quiz" {
		t.Fatalf("select %s: status %d location %q", name, resp.StatusCode, resp.Header.Get("Location"))
	}
}

func (a *testApp) nextQuestion(t *testing.T) api.QuestionResponse {
	t.Helper()
	resp := a.get(t, "/api/question")
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("GET /api/question: status %d", resp.StatusCode)
	}
	var q api.QuestionResponse
	decode(t, resp, &q)
	if !q.OK {
		t.Fatalf("expected ok question, got %+v", q)
	}
	return q
}

func decode(t *testing.T, resp *http.Response, v any) {
	t.Helper()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		t.Fatalf("decode response: %v", err)
	}
}

func expectStatus(t *testing.T, resp *http.Response, want int) {
	t.Helper()
	if resp.StatusCode != want {
		body, _ := io.ReadAll(resp.Body)
		t.Fatalf("%s %s: expected status %d, got %d: %s",
			resp.Request.Method, resp.Request.URL.Path, want, resp.StatusCode, body)
	}
}
