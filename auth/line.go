package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"
)

const (
	profileURL = "https://api.line.me/v2/profile"
	issuerURL  = "https://access.line.me"
)

// Endpoint is LINE Login's OAuth2 endpoint pair.
var Endpoint = oauth2.Endpoint{
	AuthURL:  "https://access.line.me/oauth2/v2.1/authorize",
	TokenURL: "https://api.line.me/oauth2/v2.1/token",
}

// Profile holds the claims LINE returns for a logged-in user. Email comes
// from the token response's id_token, not the profile endpoint, and is empty
// when the user declined the email permission.
type Profile struct {
	UserID      string `json:"userId"`
	DisplayName string `json:"displayName"`
	PictureURL  string `json:"pictureUrl"`
	Email       string `json:"-"`
}

// LineClient drives the browser-redirect LINE Login handshake:
// authorization request, code-for-token exchange, profile fetch.
type LineClient struct {
	conf *oauth2.Config
	http *http.Client
}

func NewLineClient(channelID int64, channelSecret, callbackURL string) *LineClient {
	return &LineClient{
		conf: &oauth2.Config{
			ClientID:     strconv.FormatInt(channelID, 10),
			ClientSecret: channelSecret,
			Endpoint:     Endpoint,
			RedirectURL:  callbackURL,
			Scopes:       []string{"profile", "openid", "email"},
		},
		http: http.DefaultClient,
	}
}

// AuthCodeURL returns the provider consent URL for the given state.
func (c *LineClient) AuthCodeURL(state string) string {
	return c.conf.AuthCodeURL(state)
}

// Exchange trades the callback code for an access token, fetches the user's
// profile with it and folds in the id_token's email claim when one verifies.
func (c *LineClient) Exchange(ctx context.Context, code string) (*Profile, error) {
	token, err := c.conf.Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("exchanging authorization code: %w", err)
	}

	profile, err := c.fetchProfile(ctx, token.AccessToken)
	if err != nil {
		return nil, err
	}

	if raw, ok := token.Extra("id_token").(string); ok && raw != "" {
		profile.Email = c.emailFromIDToken(raw)
	}
	return profile, nil
}

type idTokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// emailFromIDToken verifies the HS256 id_token LINE signs with the channel
// secret and returns its email claim. An id_token that fails verification
// just yields no email; it never fails the login.
func (c *LineClient) emailFromIDToken(raw string) string {
	claims := &idTokenClaims{}
	_, err := jwt.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return []byte(c.conf.ClientSecret), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(issuerURL),
		jwt.WithAudience(c.conf.ClientID),
	)
	if err != nil {
		return ""
	}
	return claims.Email
}

func (c *LineClient) fetchProfile(ctx context.Context, accessToken string) (*Profile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, profileURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sending profile request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New("profile request rejected")
	}

	var profile Profile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("decoding profile: %w", err)
	}

	if profile.UserID == "" {
		return nil, errors.New("profile response missing user id")
	}
	return &profile, nil
}
