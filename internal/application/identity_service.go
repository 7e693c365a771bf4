package application

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/promptopia/promptopia-api/internal/apperr"
	"github.com/promptopia/promptopia-api/internal/domain/entity"
	repo "github.com/promptopia/promptopia-api/internal/domain/repository"
	"github.com/promptopia/promptopia-api/pkg/helpers"
	"github.com/promptopia/promptopia-api/pkg/validation"
)

// ErrSignInDenied is the fail-closed result of the identity bridge: any
// failure during sign-in denies the session instead of surfacing a 500.
var ErrSignInDenied = errors.New("sign-in denied")

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

// Profile is what the external identity provider tells us about the
// signed-in identity.
type Profile struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// SessionUser is the session object exposed to authorization display
// logic.
type SessionUser struct {
	ID       string `json:"id"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Image    string `json:"image,omitempty"`
}

// IdentityService bridges the external OAuth flow into the user
// directory: it ensures a User exists for the signed-in identity before
// granting a session.
type IdentityService struct {
	Repo   repo.UserRepository
	OAuth  *oauth2.Config
	JWT    *helpers.JWTManager
	Redis  *redis.Client
	Logger *logrus.Logger

	// overridable in tests
	fetchProfile func(ctx context.Context, tok *oauth2.Token) (*Profile, error)
}

func NewIdentityService(r repo.UserRepository, oauthCfg *oauth2.Config, jwt *helpers.JWTManager, rdb *redis.Client, logger *logrus.Logger) *IdentityService {
	s := &IdentityService{Repo: r, OAuth: oauthCfg, JWT: jwt, Redis: rdb, Logger: logger}
	s.fetchProfile = s.fetchProfileHTTP
	return s
}

// AuthCodeURL returns the provider consent URL bound to the given state
// nonce.
func (s *IdentityService) AuthCodeURL(state string) string {
	return s.OAuth.AuthCodeURL(state, oauth2.AccessTypeOnline)
}

// SignIn completes the callback: exchanges the code, reads the profile
// and ensures a directory entry exists. Every failure is logged and
// collapsed into ErrSignInDenied.
func (s *IdentityService) SignIn(ctx context.Context, code string) (*entity.User, error) {
	tok, err := s.OAuth.Exchange(ctx, code)
	if err != nil {
		s.deny("oauth code exchange failed", err)
		return nil, ErrSignInDenied
	}
	p, err := s.fetchProfile(ctx, tok)
	if err != nil {
		s.deny("fetching identity profile failed", err)
		return nil, ErrSignInDenied
	}
	u, err := s.EnsureUser(ctx, p)
	if err != nil {
		s.deny("ensuring user exists failed", err)
		return nil, ErrSignInDenied
	}
	return u, nil
}

// EnsureUser looks a user up by email and creates one on first sign-in.
// The lookup-then-create sequence is an optimization only: under a
// concurrent first sign-in the unique index on email decides the winner
// and the loser re-reads the surviving row.
func (s *IdentityService) EnsureUser(ctx context.Context, p *Profile) (*entity.User, error) {
	if p.Email == "" {
		return nil, apperr.Validation("identity profile has no email")
	}
	u, err := s.Repo.GetByEmail(ctx, p.Email)
	if err == nil {
		return u, nil
	}
	if !apperr.IsKind(err, apperr.KindNotFound) {
		return nil, err
	}

	username := DeriveUsername(p.Name)
	if !validation.ValidUsername(username) {
		return nil, apperr.Validation("derived username %q is not valid", username)
	}
	nu := &entity.User{Email: p.Email, Username: username, Image: p.Picture}
	if err := s.Repo.Create(ctx, nu); err != nil {
		if apperr.IsKind(err, apperr.KindConflict) {
			// Lost the race: another request created the row first.
			return s.Repo.GetByEmail(ctx, p.Email)
		}
		return nil, err
	}
	return nu, nil
}

// IssueSession writes the redis session hash and returns a signed session
// token for the cookie.
func (s *IdentityService) IssueSession(ctx context.Context, u *entity.User) (string, time.Time, error) {
	sid := uuid.NewString()
	token, exp, err := s.JWT.GenerateSessionToken(u.ID, sid)
	if err != nil {
		return "", time.Time{}, err
	}
	key := helpers.SessionKey(u.ID)
	fields := map[string]any{
		"id":         u.ID,
		"email":      u.Email,
		"username":   u.Username,
		"image":      u.Image,
		"sid":        sid,
		"created_at": time.Now().UTC().Format(time.RFC3339Nano),
	}
	pipe := s.Redis.Pipeline()
	pipe.HSet(ctx, key, fields)
	pipe.Expire(ctx, key, s.JWT.TTL)
	if _, err := pipe.Exec(ctx); err != nil {
		return "", time.Time{}, err
	}
	return token, exp, nil
}

// Session resolves the session object for a signed-in user id, verifying
// the token's session id still matches the stored one.
func (s *IdentityService) Session(ctx context.Context, userID, sid string) (*SessionUser, error) {
	data, err := s.Redis.HGetAll(ctx, helpers.SessionKey(userID)).Result()
	if err != nil || len(data) == 0 {
		return nil, apperr.NotFound("session not found")
	}
	if sid != "" && data["sid"] != sid {
		return nil, apperr.NotFound("session superseded")
	}
	return &SessionUser{
		ID:       data["id"],
		Email:    data["email"],
		Username: data["username"],
		Image:    data["image"],
	}, nil
}

// Logout drops the redis session hash.
func (s *IdentityService) Logout(ctx context.Context, userID string) error {
	return s.Redis.Del(ctx, helpers.SessionKey(userID)).Err()
}

func (s *IdentityService) fetchProfileHTTP(ctx context.Context, tok *oauth2.Token) (*Profile, error) {
	client := s.OAuth.Client(ctx, tok)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("userinfo returned status %d", resp.StatusCode)
	}
	p := &Profile{}
	if err := json.NewDecoder(resp.Body).Decode(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *IdentityService) deny(msg string, err error) {
	if s.Logger != nil {
		s.Logger.WithError(err).Warn(msg)
	}
}

// DeriveUsername lowercases the display name and strips all whitespace.
func DeriveUsername(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "")
}
