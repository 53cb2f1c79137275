package routes

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/container"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/application/services"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/email"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/observability/logging"
	"github.com/MeadowlarkTravel/meadowlark-go/internal/infrastructure/persistence/newsletter"
	"github.com/MeadowlarkTravel/meadowlark-go/pkg/config"
	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func quietLogger(t *testing.T) *logging.ChanneledLogger {
	t.Helper()
	logger, err := logging.NewChanneledLogger(&logging.LoggerConfig{
		OutputToFile:    false,
		OutputToConsole: false,
	})
	if err != nil {
		t.Fatalf("failed to create test logger: %v", err)
	}
	return logger
}

// failingRepo simulates the signup store being unavailable
type failingRepo struct{}

func (failingRepo) Save(ctx context.Context, signup *newsletter.Signup) error {
	return errors.New("connection refused")
}

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeNotifier records sends on a channel so tests can wait for the
// async confirmation email.
type fakeNotifier struct {
	sent chan sentMail
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{sent: make(chan sentMail, 4)}
}

func (f *fakeNotifier) Send(to, subject, htmlBody string) error {
	f.sent <- sentMail{To: to, Subject: subject, Body: htmlBody}
	return nil
}

// newTestEngine builds the full router over test doubles. Nil arguments
// select the harmless defaults.
func newTestEngine(t *testing.T, repo newsletter.Repository, notifier services.OrderNotifier, uploadDir string) *gin.Engine {
	t.Helper()
	logger := quietLogger(t)
	if repo == nil {
		repo = newsletter.NewMemoryRepository()
	}
	if notifier == nil {
		notifier = email.NewDisabled(logger)
	}
	if uploadDir == "" {
		uploadDir = t.TempDir()
	}
	return SetupRoutes(container.NewContainer(logger, repo, notifier, uploadDir))
}

func doRequest(engine *gin.Engine, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	engine.ServeHTTP(w, req)
	return w
}

// sessionCookie pulls the session cookie out of a response so a later
// request can continue the same session.
func sessionCookie(t *testing.T, w *httptest.ResponseRecorder) *http.Cookie {
	t.Helper()
	for _, ck := range w.Result().Cookies() {
		if ck.Name == config.SessionCookieName {
			return ck
		}
	}
	t.Fatal("response did not set a session cookie")
	return nil
}

func TestHomePage(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET / = %d, want 200", w.Code)
	}
	body := w.Body.String()
	if !strings.Contains(body, "Meadowlark Travel") {
		t.Error("home page missing site name")
	}
	if !strings.Contains(body, "weatherWidget") {
		t.Error("home page missing the weather widget")
	}
}

func TestUnknownRouteRenders404(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/no-such-page", nil))

	if w.Code != http.StatusNotFound {
		t.Fatalf("GET /no-such-page = %d, want 404", w.Code)
	}
	if !strings.Contains(w.Body.String(), "404") {
		t.Error("response is not the rendered not-found page")
	}
}

func TestNurseryRhymeData(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/data/nursery-rhyme", nil))

	if w.Code != http.StatusOK {
		t.Fatalf("GET /data/nursery-rhyme = %d, want 200", w.Code)
	}
	var payload map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &payload); err != nil {
		t.Fatalf("response is not JSON: %v", err)
	}
	want := map[string]string{
		"animal":    "squirrel",
		"bodyPart":  "tail",
		"adjective": "bushy",
		"noun":      "heck",
	}
	for key, value := range want {
		if payload[key] != value {
			t.Errorf("payload[%q] = %q, want %q", key, payload[key], value)
		}
	}
}

func TestEpicFailIsRecovered(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/epic-fail", nil))

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("GET /epic-fail = %d, want 500", w.Code)
	}
	if !strings.Contains(w.Body.String(), "500") {
		t.Error("response is not the rendered server-error page")
	}
	if strings.Contains(w.Body.String(), "epic fail") {
		t.Error("panic value leaked into the response body")
	}
}

func TestAboutPage(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	t.Run("shows a fortune", func(t *testing.T) {
		w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/about", nil))
		if w.Code != http.StatusOK {
			t.Fatalf("GET /about = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `class="fortune"`) {
			t.Error("about page missing the fortune block")
		}
	})

	t.Run("test harness hidden by default", func(t *testing.T) {
		w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/about", nil))
		if strings.Contains(w.Body.String(), "qa/tests-about.js") {
			t.Error("test harness shown without ?test=1")
		}
	})

	t.Run("test harness shown on request", func(t *testing.T) {
		w := doRequest(engine, httptest.NewRequest(http.MethodGet, "/about?test=1", nil))
		if !strings.Contains(w.Body.String(), "qa/tests-about.js") {
			t.Error("test harness missing with ?test=1")
		}
	})
}

func TestProcessFormResponseVariants(t *testing.T) {
	engine := newTestEngine(t, nil, nil, "")

	t.Run("xhr gets json", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process?form=groupRate", strings.NewReader("name=Joe&email=joe@example.com"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("X-Requested-With", "XMLHttpRequest")

		w := doRequest(engine, req)
		if w.Code != http.StatusOK {
			t.Fatalf("POST /process = %d, want 200", w.Code)
		}
		if !strings.Contains(w.Body.String(), `"success":true`) {
			t.Errorf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("browser gets redirect", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/process?form=groupRate", strings.NewReader("name=Joe&email=joe@example.com"))
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		req.Header.Set("Accept", "text/html,application/xhtml+xml")

		w := doRequest(engine, req)
		if w.Code != http.StatusSeeOther {
			t.Fatalf("POST /process = %d, want 303", w.Code)
		}
		if loc := w.Header().Get("Location"); loc != "/thank-you" {
			t.Errorf("Location = %q, want /thank-you", loc)
		}
	})
}
