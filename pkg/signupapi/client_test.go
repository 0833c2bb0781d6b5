package signupapi_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"social-workflow-web/internal/domain"
	"social-workflow-web/pkg/signupapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRequest() domain.SignupRequest {
	return domain.SignupRequest{
		BusinessName:      "Joe's Cafe",
		BusinessType:      domain.BusinessRestaurant,
		Email:             "joe@cafe.com",
		TargetAudience:    "young professionals",
		MainGoals:         []domain.Goal{domain.GoalDriveSales},
		SocialPlatforms:   []domain.Platform{},
		CurrentChallenges: "low engagement",
	}
}

func TestSubmitSendsJSON(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/api/signup", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var body map[string]interface{}
		require.NoError(t, json.Unmarshal(raw, &body))
		assert.Equal(t, "restaurant", body["businessType"])
		assert.Equal(t, []interface{}{}, body["socialPlatforms"])
		assert.Equal(t, "", body["website"])

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		_, _ = w.Write([]byte(`{"id":"abc"}`))
	}))
	defer srv.Close()

	client := signupapi.New(srv.URL+"/api/signup", time.Second)
	ack, err := client.Submit(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, ack.StatusCode)
	assert.JSONEq(t, `{"id":"abc"}`, string(ack.Body))
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestSubmitEmptyBodyIsAcknowledged(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	ack, err := signupapi.New(srv.URL, time.Second).Submit(context.Background(), sampleRequest())

	require.NoError(t, err)
	assert.Nil(t, ack.Body)
}

func TestSubmitNonSuccessStatus(t *testing.T) {
	var calls int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		http.Error(w, "upstream exploded", http.StatusServiceUnavailable)
	}))
	defer srv.Close()

	_, err := signupapi.New(srv.URL, time.Second).Submit(context.Background(), sampleRequest())

	var statusErr *signupapi.StatusError
	require.True(t, errors.As(err, &statusErr))
	assert.Equal(t, http.StatusServiceUnavailable, statusErr.StatusCode)
	assert.Contains(t, statusErr.Body, "upstream exploded")
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls), "no retry")
}

func TestSubmitMalformedResponse(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("<html>ok</html>"))
	}))
	defer srv.Close()

	_, err := signupapi.New(srv.URL, time.Second).Submit(context.Background(), sampleRequest())

	var malformed *signupapi.MalformedResponseError
	require.True(t, errors.As(err, &malformed))
	assert.Equal(t, http.StatusOK, malformed.StatusCode)
}

func TestSubmitNetworkFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	_, err := signupapi.New(url, time.Second).Submit(context.Background(), sampleRequest())

	var netErr *signupapi.NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestSubmitTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-release
	}))
	defer srv.Close()
	defer close(release)

	_, err := signupapi.New(srv.URL, 50*time.Millisecond).Submit(context.Background(), sampleRequest())

	var netErr *signupapi.NetworkError
	assert.True(t, errors.As(err, &netErr))
}
