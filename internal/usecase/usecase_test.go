package usecase_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"social-workflow-web/internal/domain"
	"social-workflow-web/internal/repository/memory"
	"social-workflow-web/internal/usecase"
	"social-workflow-web/pkg/apperror"
	"social-workflow-web/pkg/logger"
	"social-workflow-web/pkg/signupapi"
	"social-workflow-web/pkg/validation"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Mock Gateway
type MockSignupGateway struct {
	mock.Mock
}

func (m *MockSignupGateway) Submit(ctx context.Context, req domain.SignupRequest) (*domain.SignupAck, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.SignupAck), args.Error(1)
}

func validRequest() domain.SignupRequest {
	return domain.SignupRequest{
		BusinessName:      "Joe's Cafe",
		BusinessType:      domain.BusinessRestaurant,
		Email:             "joe@cafe.com",
		MainGoals:         []domain.Goal{},
		SocialPlatforms:   []domain.Platform{},
		TargetAudience:    "young professionals",
		CurrentChallenges: "low engagement",
	}
}

func newSignupUC(gw domain.SignupGateway) domain.SignupUsecase {
	return usecase.NewSignupUsecase(usecase.NewSessionStore(memory.NewSessionRepository(time.Hour)), gw, validation.New())
}

func TestSignupValidation(t *testing.T) {
	gw := new(MockSignupGateway)
	uc := newSignupUC(gw)

	t.Run("valid record has no messages", func(t *testing.T) {
		assert.Empty(t, uc.Validate(validRequest()))
	})

	t.Run("required fields", func(t *testing.T) {
		msgs := uc.Validate(domain.NewSignupRequest())
		assert.Len(t, msgs, 4) // name, email, audience, challenges
		assert.Contains(t, msgs, "Business Name: This field is required")
	})

	t.Run("whitespace only counts as empty", func(t *testing.T) {
		req := validRequest()
		req.TargetAudience = "   "
		assert.Equal(t, []string{"Ideal Customer: This field is required"}, uc.Validate(req))
	})

	t.Run("business type outside the table", func(t *testing.T) {
		req := validRequest()
		req.BusinessType = "pizza"
		assert.Len(t, uc.Validate(req), 1)
	})

	t.Run("duplicate or unknown set entries", func(t *testing.T) {
		req := validRequest()
		req.MainGoals = []domain.Goal{domain.GoalDriveSales, domain.GoalDriveSales}
		req.SocialPlatforms = []domain.Platform{"MySpace"}
		assert.Len(t, uc.Validate(req), 2)
	})

	t.Run("website is optional and free text", func(t *testing.T) {
		req := validRequest()
		req.Website = "joescafe"
		assert.Empty(t, uc.Validate(req))
	})
}

func TestSignupSubmit(t *testing.T) {
	ctx := context.Background()

	t.Run("invalid email is rejected before any network call", func(t *testing.T) {
		gw := new(MockSignupGateway)
		uc := newSignupUC(gw)
		req := validRequest()
		req.Email = "joe-at-cafe"

		res := uc.Submit(ctx, req)

		assert.Equal(t, domain.SubmitInvalid, res.Status)
		assert.Contains(t, res.FieldErrors, "Business Email: Please enter a valid email address")
		gw.AssertNotCalled(t, "Submit", mock.Anything, mock.Anything)
	})

	t.Run("success", func(t *testing.T) {
		gw := new(MockSignupGateway)
		gw.On("Submit", ctx, validRequest()).Return(&domain.SignupAck{StatusCode: 201, Body: json.RawMessage(`{"ok":true}`)}, nil).Once()
		uc := newSignupUC(gw)

		res := uc.Submit(ctx, validRequest())

		assert.True(t, res.Succeeded())
		assert.NotEmpty(t, res.Message)
		assert.Equal(t, 201, res.StatusCode)
		gw.AssertExpectations(t)
	})

	cases := []struct {
		name   string
		err    error
		status domain.SubmitStatus
	}{
		{"network failure", &signupapi.NetworkError{Err: errors.New("connection refused")}, domain.SubmitNetworkFailure},
		{"non-success status", &signupapi.StatusError{StatusCode: 502, Status: "502 Bad Gateway"}, domain.SubmitRejected},
		{"malformed response", &signupapi.MalformedResponseError{StatusCode: 200, Err: errors.New("bad json")}, domain.SubmitMalformedResponse},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			gw := new(MockSignupGateway)
			gw.On("Submit", ctx, mock.Anything).Return(nil, tc.err).Once()
			uc := newSignupUC(gw)

			res := uc.Submit(ctx, validRequest())

			assert.Equal(t, tc.status, res.Status)
			assert.NotEmpty(t, res.Message, "every failure has a user-visible message")
			gw.AssertNumberOfCalls(t, "Submit", 1)
		})
	}
}

func TestSignupSessionFlow(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown field is a bad request and leaves the draft alone", func(t *testing.T) {
		uc := newSignupUC(new(MockSignupGateway))

		_, err := uc.UpdateField(ctx, "s1", "password", "hunter2")

		var appErr *apperror.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, http.StatusBadRequest, appErr.Code)
		form, err := uc.GetForm(ctx, "s1")
		require.NoError(t, err)
		assert.Equal(t, domain.NewSignupRequest(), form)
	})

	t.Run("failed submission keeps the draft", func(t *testing.T) {
		gw := new(MockSignupGateway)
		gw.On("Submit", ctx, mock.Anything).Return(nil, &signupapi.NetworkError{Err: errors.New("down")})
		uc := newSignupUC(gw)
		_, err := uc.UpdateField(ctx, "s2", domain.FieldBusinessName, "Joe's Cafe")
		require.NoError(t, err)
		req := validRequest()
		for _, f := range []struct {
			name  domain.FieldName
			value string
		}{
			{domain.FieldEmail, req.Email},
			{domain.FieldBusinessType, string(req.BusinessType)},
			{domain.FieldTargetAudience, req.TargetAudience},
			{domain.FieldCurrentChallenges, req.CurrentChallenges},
		} {
			_, err := uc.UpdateField(ctx, "s2", f.name, f.value)
			require.NoError(t, err)
		}

		res, err := uc.SubmitSession(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, domain.SubmitNetworkFailure, res.Status)

		form, err := uc.GetForm(ctx, "s2")
		require.NoError(t, err)
		assert.Equal(t, "Joe's Cafe", form.BusinessName)

		last, err := uc.TakeLastResult(ctx, "s2")
		require.NoError(t, err)
		require.NotNil(t, last)
		assert.Equal(t, domain.SubmitNetworkFailure, last.Status)

		again, err := uc.TakeLastResult(ctx, "s2")
		require.NoError(t, err)
		assert.Nil(t, again, "result is shown once")
	})

	t.Run("reset discards the draft", func(t *testing.T) {
		uc := newSignupUC(new(MockSignupGateway))
		_, err := uc.UpdateField(ctx, "s3", domain.FieldEmail, "a@b.co")
		require.NoError(t, err)

		require.NoError(t, uc.Reset(ctx, "s3"))

		form, err := uc.GetForm(ctx, "s3")
		require.NoError(t, err)
		assert.Empty(t, form.Email)
	})

	t.Run("missing session id", func(t *testing.T) {
		uc := newSignupUC(new(MockSignupGateway))
		_, err := uc.SubmitSession(ctx, "")
		assert.Error(t, err)
	})
}

// blockingGateway holds every call until release is closed.
type blockingGateway struct {
	calls   int32
	entered chan struct{}
	release chan struct{}
}

func (g *blockingGateway) Submit(ctx context.Context, req domain.SignupRequest) (*domain.SignupAck, error) {
	atomic.AddInt32(&g.calls, 1)
	g.entered <- struct{}{}
	<-g.release
	return &domain.SignupAck{StatusCode: 200}, nil
}

func TestSubmitSessionSingleInFlight(t *testing.T) {
	ctx := context.Background()
	gw := &blockingGateway{entered: make(chan struct{}, 1), release: make(chan struct{})}
	uc := newSignupUC(gw)
	fillForm(t, uc, "busy", validRequest())

	var wg sync.WaitGroup
	var first domain.SubmitResult
	wg.Add(1)
	go func() {
		defer wg.Done()
		first, _ = uc.SubmitSession(ctx, "busy")
	}()
	<-gw.entered

	second, err := uc.SubmitSession(ctx, "busy")
	require.NoError(t, err)
	assert.Equal(t, domain.SubmitInProgress, second.Status)

	// the redirected page shows why nothing happened
	shown, err := uc.TakeLastResult(ctx, "busy")
	require.NoError(t, err)
	require.NotNil(t, shown)
	assert.Equal(t, domain.SubmitInProgress, shown.Status)

	// the form stays editable while the request is in flight
	_, err = uc.UpdateField(ctx, "busy", domain.FieldWebsite, "https://joes.cafe")
	require.NoError(t, err)

	close(gw.release)
	wg.Wait()

	assert.True(t, first.Succeeded())
	assert.Equal(t, int32(1), atomic.LoadInt32(&gw.calls))

	last, err := uc.TakeLastResult(ctx, "busy")
	require.NoError(t, err)
	require.NotNil(t, last)
	assert.True(t, last.Succeeded(), "the finished submission replaces the in-progress notice")
}

// slowRepo adds a round trip after each read, as a remote store would.
type slowRepo struct {
	domain.SessionRepository
	delay time.Duration
}

func (r slowRepo) Get(ctx context.Context, id string) (*domain.UISession, error) {
	sess, err := r.SessionRepository.Get(ctx, id)
	time.Sleep(r.delay)
	return sess, err
}

func TestUsecasesShareSessionLock(t *testing.T) {
	ctx := context.Background()
	store := usecase.NewSessionStore(slowRepo{memory.NewSessionRepository(time.Hour), 2 * time.Millisecond})
	signupUC := usecase.NewSignupUsecase(store, new(MockSignupGateway), validation.New())
	selectionUC := usecase.NewSelectionUsecase(store)
	creatorUC := usecase.NewPostCreatorUsecase(store)

	lost := 0
	for i := 0; i < 50; i++ {
		sid := fmt.Sprintf("visitor-%d", i)
		var wg sync.WaitGroup
		wg.Add(3)
		go func() {
			defer wg.Done()
			_, err := signupUC.UpdateField(ctx, sid, domain.FieldBusinessName, "Joe's Cafe")
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := selectionUC.SelectNav(ctx, sid, domain.NavAnalytics)
			assert.NoError(t, err)
		}()
		go func() {
			defer wg.Done()
			_, err := creatorUC.Next(ctx, sid)
			assert.NoError(t, err)
		}()
		wg.Wait()

		form, err := signupUC.GetForm(ctx, sid)
		require.NoError(t, err)
		sel, err := selectionUC.GetSelections(ctx, sid)
		require.NoError(t, err)
		wizard, err := creatorUC.GetPostCreator(ctx, sid)
		require.NoError(t, err)
		if form.BusinessName != "Joe's Cafe" || sel.Dashboard.ActiveNav != domain.NavAnalytics || wizard.Step != domain.StepAddContent {
			lost++
		}
	}
	assert.Zero(t, lost)
}

func TestRejectedBodyStaysOutOfAppLog(t *testing.T) {
	var buf bytes.Buffer
	prev := logger.Log
	logger.Log = slog.New(slog.NewJSONHandler(&buf, nil))
	t.Cleanup(func() { logger.Log = prev })

	gw := new(MockSignupGateway)
	gw.On("Submit", mock.Anything, mock.Anything).Return(nil, &signupapi.StatusError{
		StatusCode: 400,
		Status:     "400 Bad Request",
		Body:       `{"error":"duplicate","email":"joe@cafe.com"}`,
	}).Once()

	res := newSignupUC(gw).Submit(context.Background(), validRequest())

	assert.Equal(t, domain.SubmitRejected, res.Status)
	assert.Contains(t, buf.String(), "Signup rejected by endpoint")
	assert.NotContains(t, buf.String(), "joe@cafe.com")
}

func fillForm(t *testing.T, uc domain.SignupUsecase, sid string, req domain.SignupRequest) {
	t.Helper()
	ctx := context.Background()
	scalars := map[domain.FieldName]string{
		domain.FieldBusinessName:      req.BusinessName,
		domain.FieldBusinessType:      string(req.BusinessType),
		domain.FieldEmail:             req.Email,
		domain.FieldWebsite:           req.Website,
		domain.FieldTargetAudience:    req.TargetAudience,
		domain.FieldCurrentChallenges: req.CurrentChallenges,
	}
	for name, value := range scalars {
		_, err := uc.UpdateField(ctx, sid, name, value)
		require.NoError(t, err)
	}
	for _, g := range req.MainGoals {
		_, err := uc.ToggleSetMembership(ctx, sid, domain.CategoryMainGoals, string(g), true)
		require.NoError(t, err)
	}
	for _, p := range req.SocialPlatforms {
		_, err := uc.ToggleSetMembership(ctx, sid, domain.CategorySocialPlatforms, string(p), true)
		require.NoError(t, err)
	}
}

// End to end against a real HTTP endpoint: exactly one POST whose body
// round-trips to the eight field values.
func TestJoesCafeEndToEnd(t *testing.T) {
	var (
		calls int32
		mu    sync.Mutex
		got   domain.SignupRequest
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		raw, _ := io.ReadAll(r.Body)
		mu.Lock()
		_ = json.Unmarshal(raw, &got)
		mu.Unlock()
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"message":"received"}`))
	}))
	defer srv.Close()

	uc := usecase.NewSignupUsecase(usecase.NewSessionStore(memory.NewSessionRepository(time.Hour)), signupapi.New(srv.URL+"/api/signup", time.Second), validation.New())
	ctx := context.Background()

	want := domain.SignupRequest{
		BusinessName:      "Joe's Cafe",
		BusinessType:      domain.BusinessRestaurant,
		Email:             "joe@cafe.com",
		Website:           "",
		TargetAudience:    "young professionals",
		MainGoals:         []domain.Goal{"Drive more sales", "Build community"},
		SocialPlatforms:   []domain.Platform{"Instagram"},
		CurrentChallenges: "low engagement",
	}
	fillForm(t, uc, "joe", want)

	res, err := uc.SubmitSession(ctx, "joe")
	require.NoError(t, err)

	assert.Equal(t, domain.SubmitSucceeded, res.Status)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	mu.Lock()
	assert.Equal(t, want.BusinessName, got.BusinessName)
	assert.Equal(t, want.BusinessType, got.BusinessType)
	assert.Equal(t, want.Email, got.Email)
	assert.Equal(t, want.Website, got.Website)
	assert.Equal(t, want.TargetAudience, got.TargetAudience)
	assert.Equal(t, want.CurrentChallenges, got.CurrentChallenges)
	assert.ElementsMatch(t, want.MainGoals, got.MainGoals)
	assert.ElementsMatch(t, want.SocialPlatforms, got.SocialPlatforms)
	mu.Unlock()

	form, err := uc.GetForm(ctx, "joe")
	require.NoError(t, err)
	assert.Equal(t, domain.NewSignupRequest(), form, "draft discarded after success")
}

func TestPostCreatorUsecase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewPostCreatorUsecase(usecase.NewSessionStore(memory.NewSessionRepository(time.Hour)))

	s, err := uc.Back(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, domain.StepChooseType, s.Step)

	s, err = uc.ChooseType(ctx, "w", domain.PostService)
	require.NoError(t, err)
	assert.Equal(t, domain.StepAddContent, s.Step)

	_, err = uc.UpdateDraft(ctx, "w", "Spring offer")
	require.NoError(t, err)
	_, err = uc.Next(ctx, "w")
	require.NoError(t, err)
	s, err = uc.ChooseTiming(ctx, "w", domain.TimingPickTime)
	require.NoError(t, err)

	assert.Equal(t, domain.PostCreatorState{
		Step:     domain.StepSchedule,
		PostType: domain.PostService,
		Draft:    "Spring offer",
		Timing:   domain.TimingPickTime,
	}, s)

	_, err = uc.ChooseTiming(ctx, "w", "never")
	var appErr *apperror.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusBadRequest, appErr.Code)

	persisted, err := uc.GetPostCreator(ctx, "w")
	require.NoError(t, err)
	assert.Equal(t, s, persisted)
}

func TestSelectionUsecase(t *testing.T) {
	ctx := context.Background()
	uc := usecase.NewSelectionUsecase(usecase.NewSessionStore(memory.NewSessionRepository(time.Hour)))

	_, err := uc.SelectNav(ctx, "v", domain.NavAnalytics)
	require.NoError(t, err)
	_, err = uc.ToggleStudioPlatform(ctx, "v", domain.StudioInstagram, true)
	require.NoError(t, err)
	_, err = uc.SelectStudioContentType(ctx, "v", domain.StudioEvent)
	require.NoError(t, err)
	sel, err := uc.SelectNavbar(ctx, "v", domain.NavbarResults)
	require.NoError(t, err)

	assert.Equal(t, domain.NavAnalytics, sel.Dashboard.ActiveNav)
	assert.Equal(t, []domain.StudioPlatform{domain.StudioInstagram}, sel.Studio.Platforms)
	assert.Equal(t, domain.StudioEvent, sel.Studio.ContentType)
	assert.Equal(t, domain.NavbarResults, sel.Navbar.Active)

	_, err = uc.SelectNav(ctx, "v", "billing")
	assert.Error(t, err)
	sel, err = uc.GetSelections(ctx, "v")
	require.NoError(t, err)
	assert.Equal(t, domain.NavAnalytics, sel.Dashboard.ActiveNav)
}

func TestHealthUsecase(t *testing.T) {
	ok := usecase.NewHealthUsecase("memory", nil).Check(context.Background())
	assert.Equal(t, map[string]string{"status": "ok", "session_store": "memory"}, ok)

	down := usecase.NewHealthUsecase("redis", func(ctx context.Context) error {
		return errors.New("connection refused")
	}).Check(context.Background())
	assert.Equal(t, "degraded", down["status"])
	assert.Equal(t, "connection refused", down["session_store_error"])
}
