package handlers

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"

	"github.com/promptopia/promptopia-api/internal/application"
	"github.com/promptopia/promptopia-api/pkg/helpers"
)

const testFrontendURL = "http://front.test"

// newAuthRouter mounts the auth handler the way the auth module does,
// with the token exchange pointed at a local stub.
func newAuthRouter(t *testing.T, token http.HandlerFunc) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	srv := httptest.NewServer(token)
	t.Cleanup(srv.Close)
	oauthCfg := &oauth2.Config{
		ClientID:     "client",
		ClientSecret: "secret",
		Endpoint: oauth2.Endpoint{
			AuthURL:   srv.URL + "/auth",
			TokenURL:  srv.URL + "/token",
			AuthStyle: oauth2.AuthStyleInParams,
		},
	}
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	identity := application.NewIdentityService(nil, oauthCfg, nil, nil, logger)
	h := NewAuthHandler(identity, logger, helpers.NewCookie("localhost", false), testFrontendURL)

	r := gin.New()
	r.GET("/api/auth/google/login", h.GoogleLogin)
	r.GET("/api/auth/google/callback", h.GoogleCallback)
	return r
}

func responseCookie(res *http.Response, name string) *http.Cookie {
	for _, ck := range res.Cookies() {
		if ck.Name == name {
			return ck
		}
	}
	return nil
}

func TestGoogleLoginRedirectsWithStateCookie(t *testing.T) {
	r := newAuthRouter(t, func(w http.ResponseWriter, _ *http.Request) {})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/google/login", nil))

	require.Equal(t, http.StatusFound, w.Code)
	loc := w.Header().Get("Location")
	assert.Contains(t, loc, "/auth?")

	state := responseCookie(w.Result(), helpers.OAuthStateCookie)
	require.NotNil(t, state, "consent redirect must pin a state cookie")
	assert.NotEmpty(t, state.Value)
	assert.True(t, state.HttpOnly)
	assert.Contains(t, loc, "state="+state.Value)
}

func TestGoogleCallbackDeniesOnStateMismatch(t *testing.T) {
	r := newAuthRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("token endpoint must not be reached on a state mismatch")
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=evil&code=c", nil)
	req.AddCookie(&http.Cookie{Name: helpers.OAuthStateCookie, Value: "expected"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontendURL, w.Header().Get("Location"))
	assert.Nil(t, responseCookie(w.Result(), helpers.SessionCookie))
}

func TestGoogleCallbackDeniesWithoutStateCookie(t *testing.T) {
	r := newAuthRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		t.Error("token endpoint must not be reached without a state cookie")
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=s&code=c", nil))

	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontendURL, w.Header().Get("Location"))
	assert.Nil(t, responseCookie(w.Result(), helpers.SessionCookie))
}

func TestGoogleCallbackDeniesWhenExchangeFails(t *testing.T) {
	r := newAuthRouter(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "no", http.StatusInternalServerError)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/auth/google/callback?state=nonce&code=bad", nil)
	req.AddCookie(&http.Cookie{Name: helpers.OAuthStateCookie, Value: "nonce"})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	// Failure sends the browser home without a session, never a 5xx.
	require.Equal(t, http.StatusFound, w.Code)
	assert.Equal(t, testFrontendURL, w.Header().Get("Location"))
	assert.Nil(t, responseCookie(w.Result(), helpers.SessionCookie))
}
