package session

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"media-verse/pkg/jwt"
	"media-verse/pkg/logger"

	"github.com/gorilla/sessions"
	"github.com/redis/go-redis/v9"
)

const (
	userIDKey     = "user_id"
	revokedPrefix = "session:revoked:"
	cookieMaxAge  = 7 * 24 * 3600
)

// Provider resolves the authenticated user of a request from either a bearer
// token or a cookie session. Revoked token ids live in Redis until they expire.
type Provider struct {
	jwtService  *jwt.Service
	store       sessions.Store
	name        string
	redisClient *redis.Client
	logger      *logger.Logger
}

func NewProvider(jwtService *jwt.Service, store sessions.Store, name string, redisClient *redis.Client, log *logger.Logger) *Provider {
	return &Provider{
		jwtService:  jwtService,
		store:       store,
		name:        name,
		redisClient: redisClient,
		logger:      log,
	}
}

func NewCookieStore(secret string, secure bool) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options = &sessions.Options{
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
	}
	return store
}

// CurrentUserID returns the identity behind r, or false for anonymous requests.
func (p *Provider) CurrentUserID(r *http.Request) (string, bool) {
	if token := BearerToken(r); token != "" {
		claims, err := p.jwtService.ValidateToken(token)
		if err != nil {
			return "", false
		}
		revoked, err := p.isRevoked(r.Context(), claims.ID)
		if err != nil {
			p.logger.Error("Failed to check token revocation: %v", err)
			return "", false
		}
		if revoked || claims.UserID == "" {
			return "", false
		}
		return claims.UserID, true
	}

	sess, err := p.store.Get(r, p.name)
	if err != nil {
		return "", false
	}
	userID, ok := sess.Values[userIDKey].(string)
	if !ok || userID == "" {
		return "", false
	}
	return userID, true
}

// Start binds userID to a cookie session and issues a bearer token for API clients.
func (p *Provider) Start(w http.ResponseWriter, r *http.Request, userID string) (string, error) {
	sess, err := p.store.Get(r, p.name)
	if err != nil && sess == nil {
		return "", fmt.Errorf("failed to load session: %w", err)
	}
	sess.Values[userIDKey] = userID
	if err := sess.Save(r, w); err != nil {
		return "", fmt.Errorf("failed to save session: %w", err)
	}

	token, err := p.jwtService.GenerateToken(userID)
	if err != nil {
		return "", err
	}
	return token, nil
}

// End destroys the cookie session and revokes the presented bearer token, if any.
func (p *Provider) End(w http.ResponseWriter, r *http.Request) error {
	if token := BearerToken(r); token != "" {
		if claims, err := p.jwtService.ValidateToken(token); err == nil {
			if err := p.revoke(r.Context(), claims); err != nil {
				return err
			}
		}
	}

	sess, err := p.store.Get(r, p.name)
	if sess == nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	delete(sess.Values, userIDKey)
	sess.Options.MaxAge = -1
	if err := sess.Save(r, w); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}

func (p *Provider) revoke(ctx context.Context, claims *jwt.Claims) error {
	if p.redisClient == nil || claims.ID == "" || claims.ExpiresAt == nil {
		return nil
	}
	ttl := time.Until(claims.ExpiresAt.Time)
	if ttl <= 0 {
		return nil
	}
	if err := p.redisClient.Set(ctx, revokedPrefix+claims.ID, "1", ttl).Err(); err != nil {
		return fmt.Errorf("failed to revoke token: %w", err)
	}
	return nil
}

func (p *Provider) isRevoked(ctx context.Context, tokenID string) (bool, error) {
	if p.redisClient == nil || tokenID == "" {
		return false, nil
	}
	err := p.redisClient.Get(ctx, revokedPrefix+tokenID).Err()
	if errors.Is(err, redis.Nil) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

// BearerToken extracts the token from an "Authorization: Bearer <token>" header.
func BearerToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
