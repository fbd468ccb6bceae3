package auth

import (
	"crypto/rand"
	"encoding/base64"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"artmarket/internal/domain/access"
	"artmarket/internal/domain/users"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	stateCookie = "oauth_state"
	roleCookie  = "oauth_role"
	googleIss   = "https://accounts.google.com"
)

type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
	// FrontendRedirect receives ?token=... after sign-in. Empty means the
	// token is returned as JSON.
	FrontendRedirect string
}

func (g *GoogleConfig) oauth() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     g.ClientID,
		ClientSecret: g.ClientSecret,
		RedirectURL:  g.RedirectURL,
		Scopes: []string{
			"openid",
			"email",
			"profile",
		},
		Endpoint: google.Endpoint,
	}
}

func randomState() (string, error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// GET /api/auth/google?role=artist|collector
func (h *Handler) GoogleStart(c *gin.Context) {
	role := access.RoleCollector
	if v := c.Query("role"); v != "" {
		r, ok := access.ParseRole(v)
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "role must be artist or collector"})
			return
		}
		role = r
	}

	state, err := randomState()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to generate state"})
		return
	}

	// 5 minutes, HttpOnly
	c.SetCookie(stateCookie, state, 300, "/", "", false, true)
	c.SetCookie(roleCookie, string(role), 300, "/", "", false, true)

	c.Redirect(http.StatusFound, h.Google.oauth().AuthCodeURL(state, oauth2.AccessTypeOnline))
}

// GET /api/auth/google/callback
func (h *Handler) GoogleCallback(c *gin.Context) {
	state := c.Query("state")
	code := c.Query("code")
	if code == "" || state == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "missing code/state"})
		return
	}

	cookieState, err := c.Cookie(stateCookie)
	if err != nil || cookieState != state {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid oauth state"})
		return
	}

	ctx := c.Request.Context()
	tok, err := h.Google.oauth().Exchange(ctx, code)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "failed to exchange code"})
		return
	}

	rawIDToken, ok := tok.Extra("id_token").(string)
	if !ok || rawIDToken == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing id_token"})
		return
	}

	claims, err := h.verifyIDToken(c, rawIDToken)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	role := access.RoleCollector
	if v, err := c.Cookie(roleCookie); err == nil {
		if r, ok := access.ParseRole(v); ok {
			role = r
		}
	}

	u, err := h.Users.FindOrCreateGoogle(ctx, users.GoogleIdentity{
		Sub:      claims.Sub,
		Email:    claims.Email,
		FullName: firstNonEmpty(claims.Name, strings.TrimSpace(claims.GivenName+" "+claims.FamilyName)),
	}, role)
	if err != nil {
		log.Error().Err(err).Str("email", claims.Email).Msg("google sign-in")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create user"})
		return
	}

	token, err := h.Tokens.Issue(u.Principal())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not create token"})
		return
	}

	if h.Google.FrontendRedirect == "" {
		c.JSON(http.StatusOK, loginResponse{Token: token, Role: u.Role, FullName: u.FullName, Email: u.Email})
		return
	}
	c.Redirect(http.StatusFound, h.Google.FrontendRedirect+"?token="+url.QueryEscape(token))
}

type googleIDClaims struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

func (h *Handler) verifyIDToken(c *gin.Context, rawIDToken string) (*googleIDClaims, error) {
	ctx := c.Request.Context()

	provider, err := oidc.NewProvider(ctx, googleIss)
	if err != nil {
		return nil, errors.New("failed to init google oidc provider")
	}

	verifier := provider.Verifier(&oidc.Config{
		ClientID: h.Google.ClientID,
	})

	idToken, err := verifier.Verify(ctx, rawIDToken)
	if err != nil {
		return nil, errors.New("invalid id_token")
	}

	var claims googleIDClaims
	if err := idToken.Claims(&claims); err != nil {
		return nil, errors.New("failed to decode token claims")
	}
	if claims.Email == "" || claims.Sub == "" {
		return nil, errors.New("token missing required claims")
	}
	if !claims.EmailVerified {
		return nil, errors.New("google email is not verified")
	}
	return &claims, nil
}

func firstNonEmpty(s ...string) string {
	for _, v := range s {
		if v != "" {
			return v
		}
	}
	return ""
}
