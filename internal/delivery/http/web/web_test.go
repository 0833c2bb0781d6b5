package web_test

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"social-workflow-web/internal/delivery/http/middleware"
	"social-workflow-web/internal/delivery/http/web"
	"social-workflow-web/internal/domain"
	"social-workflow-web/internal/repository/memory"
	"social-workflow-web/internal/usecase"
	"social-workflow-web/pkg/signupapi"
	"social-workflow-web/pkg/validation"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type stubGateway struct {
	mu   sync.Mutex
	sent []domain.SignupRequest
	err  error
}

func (g *stubGateway) Submit(ctx context.Context, req domain.SignupRequest) (*domain.SignupAck, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.sent = append(g.sent, req)
	if g.err != nil {
		return nil, g.err
	}
	return &domain.SignupAck{StatusCode: http.StatusOK}, nil
}

type browser struct {
	t    *testing.T
	srv  *httptest.Server
	http *http.Client
}

func newBrowser(t *testing.T, gateway domain.SignupGateway) *browser {
	t.Helper()
	store := usecase.NewSessionStore(memory.NewSessionRepository(time.Hour))

	r := gin.New()
	r.Use(middleware.ErrorHandler(), middleware.Session(time.Hour, false), middleware.CSRFMiddleware(false))
	web.NewHandler(r, web.Deps{
		SignupUC:      usecase.NewSignupUsecase(store, gateway, validation.New()),
		PostCreatorUC: usecase.NewPostCreatorUsecase(store),
		SelectionUC:   usecase.NewSelectionUsecase(store),
	})

	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	b := &browser{t: t, srv: srv, http: &http.Client{
		Jar: jar,
		CheckRedirect: func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}}
	b.get("/")
	return b
}

func (b *browser) get(path string) (int, string) {
	b.t.Helper()
	res, err := b.http.Get(b.srv.URL + path)
	require.NoError(b.t, err)
	defer res.Body.Close()
	raw, err := io.ReadAll(res.Body)
	require.NoError(b.t, err)
	return res.StatusCode, string(raw)
}

// post submits a form the way the pages do and returns the status and redirect target.
func (b *browser) post(path string, form url.Values) (int, string) {
	b.t.Helper()
	if form == nil {
		form = url.Values{}
	}
	u, _ := url.Parse(b.srv.URL)
	for _, ck := range b.http.Jar.Cookies(u) {
		if ck.Name == middleware.CSRFTokenCookieName {
			form.Set(middleware.CSRFTokenFormField, ck.Value)
		}
	}
	res, err := b.http.PostForm(b.srv.URL+path, form)
	require.NoError(b.t, err)
	res.Body.Close()
	return res.StatusCode, res.Header.Get("Location")
}

func signupForm() url.Values {
	return url.Values{
		"sets":              {"1"},
		"businessName":      {"Joe's Cafe"},
		"businessType":      {"restaurant"},
		"email":             {"joe@cafe.com"},
		"website":           {""},
		"targetAudience":    {"young professionals"},
		"mainGoals":         {"Drive more sales"},
		"currentChallenges": {"low engagement"},
	}
}

func TestDashboardShowsStaticFigures(t *testing.T) {
	b := newBrowser(t, &stubGateway{})

	code, page := b.get("/")
	require.Equal(t, http.StatusOK, code)
	for _, s := range []string{"89%", "45.2K", "+12.5%", "Best time to post today: 3:00 PM", "Trending topic in your industry: Innovation"} {
		assert.Contains(t, page, s)
	}
	assert.Contains(t, page, `class="nav-item active" style="width:100%;margin-bottom:6px">Dashboard</button>`)

	code, location := b.post("/nav/calendar", nil)
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/", location)

	_, page = b.get("/")
	assert.Contains(t, page, `class="nav-item active" style="width:100%;margin-bottom:6px">Content Calendar</button>`)
}

func TestNavbarReturnsToPage(t *testing.T) {
	b := newBrowser(t, &stubGateway{})

	code, location := b.post("/navbar/help", url.Values{"return_to": {"/studio"}})
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/studio", location)

	_, location = b.post("/navbar/help", url.Values{"return_to": {"//evil.example.com"}})
	assert.Equal(t, "/", location)

	_, page := b.get("/studio")
	assert.Contains(t, page, `class="nav-item help active"`)
}

func TestSignupSubmitSuccessShowsFlashOnce(t *testing.T) {
	gw := &stubGateway{}
	b := newBrowser(t, gw)

	code, location := b.post("/signup/submit", signupForm())
	require.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/signup", location)

	require.Len(t, gw.sent, 1)
	assert.Equal(t, "Joe's Cafe", gw.sent[0].BusinessName)
	assert.Equal(t, []domain.Goal{domain.GoalDriveSales}, gw.sent[0].MainGoals)
	assert.Equal(t, []domain.Platform{}, gw.sent[0].SocialPlatforms)

	_, page := b.get("/signup")
	assert.Contains(t, page, `data-status="succeeded"`)
	assert.NotContains(t, page, `value="Joe&#39;s Cafe"`, "draft cleared after success")

	_, page = b.get("/signup")
	assert.NotContains(t, page, `data-status=`)
}

func TestSignupSubmitFailureKeepsDraft(t *testing.T) {
	gw := &stubGateway{err: &signupapi.StatusError{StatusCode: http.StatusInternalServerError, Status: "500 Internal Server Error"}}
	b := newBrowser(t, gw)

	b.post("/signup/submit", signupForm())

	_, page := b.get("/signup")
	assert.Contains(t, page, `data-status="rejected"`)
	assert.Contains(t, page, `value="Joe&#39;s Cafe"`)
	assert.Contains(t, page, `value="Drive more sales" checked`)
	assert.Len(t, gw.sent, 1)
}

func TestSignupSubmitInvalidNeverSends(t *testing.T) {
	gw := &stubGateway{err: errors.New("must not be called")}
	b := newBrowser(t, gw)

	form := signupForm()
	form.Set("email", "joe-at-cafe")
	b.post("/signup/submit", form)

	_, page := b.get("/signup")
	assert.Contains(t, page, `data-status="invalid"`)
	assert.Contains(t, page, "Business Email: Please enter a valid email address")
	assert.Empty(t, gw.sent)
}

func TestSignupFieldAndToggle(t *testing.T) {
	b := newBrowser(t, &stubGateway{})

	code, location := b.post("/signup/field", url.Values{"name": {"businessType"}, "value": {"salon"}})
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/signup", location)

	b.post("/signup/toggle", url.Values{"category": {"socialPlatforms"}, "value": {"YouTube"}, "included": {"true"}})
	b.post("/signup/toggle", url.Values{"category": {"socialPlatforms"}, "value": {"LinkedIn"}, "included": {"true"}})
	b.post("/signup/toggle", url.Values{"category": {"socialPlatforms"}, "value": {"YouTube"}, "included": {"false"}})

	_, page := b.get("/signup")
	assert.Contains(t, page, `<option value="salon" selected>`)
	assert.Contains(t, page, `value="LinkedIn" checked`)
	assert.NotContains(t, page, `value="YouTube" checked`)

	code, _ = b.post("/signup/field", url.Values{"name": {"favouriteColour"}, "value": {"blue"}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestStudioToggles(t *testing.T) {
	b := newBrowser(t, &stubGateway{})

	_, page := b.get("/studio")
	for _, s := range []string{"15K - 20K", "4.2%", "3:00 PM Today"} {
		assert.Contains(t, page, s)
	}

	b.post("/studio/platform", url.Values{"platform": {"instagram"}, "included": {"true"}})
	b.post("/studio/platform", url.Values{"platform": {"instagram"}, "included": {"true"}})
	code, location := b.post("/studio/type", url.Values{"type": {"event"}})
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/studio", location)

	_, page = b.get("/studio")
	assert.Equal(t, 1, strings.Count(page, `aria-pressed="true">Instagram`))
	assert.Contains(t, page, `aria-pressed="true">Event`)
	assert.Contains(t, page, `name="included" value="false"`, "active platform button switches it off")

	code, _ = b.post("/studio/platform", url.Values{"platform": {"myspace"}, "included": {"true"}})
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestPostCreatorWizard(t *testing.T) {
	b := newBrowser(t, &stubGateway{})

	_, page := b.get("/create")
	assert.Contains(t, page, "What would you like to share?")

	code, location := b.post("/create/type", url.Values{"type": {"tips"}})
	assert.Equal(t, http.StatusSeeOther, code)
	assert.Equal(t, "/create", location)

	_, page = b.get("/create")
	assert.Contains(t, page, "Add Your Content")

	b.post("/create/next", url.Values{"draft": {"Three ways to brew better coffee"}})
	_, page = b.get("/create")
	assert.Contains(t, page, "When should we post this?")

	b.post("/create/timing", url.Values{"timing": {"best_time"}})
	b.post("/create/back", nil)
	_, page = b.get("/create")
	assert.Contains(t, page, "Three ways to brew better coffee")

	b.post("/create/back", nil)
	b.post("/create/back", nil)
	_, page = b.get("/create")
	assert.Contains(t, page, `data-step="1"`)
}
