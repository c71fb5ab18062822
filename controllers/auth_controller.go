package controllers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/indunissanka/qbread/auth"
	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/middleware"
	"github.com/indunissanka/qbread/services"
	"github.com/indunissanka/qbread/session"
	"go.uber.org/zap"
)

// stateCookie guards the OAuth handshake against forged callbacks.
const (
	stateCookie    = "line_oauth_state"
	stateCookieAge = 600
)

// LineAuthenticator is the slice of the LINE client the controller needs.
type LineAuthenticator interface {
	AuthCodeURL(state string) string
	Exchange(ctx context.Context, code string) (*auth.Profile, error)
}

type AuthController struct {
	line       LineAuthenticator
	sessions   session.Store
	users      *services.UserService
	guard      *middleware.Auth
	sessionAge int
}

func NewAuthController(line LineAuthenticator, sessions session.Store, users *services.UserService, guard *middleware.Auth, sessionAge int) *AuthController {
	return &AuthController{
		line:       line,
		sessions:   sessions,
		users:      users,
		guard:      guard,
		sessionAge: sessionAge,
	}
}

// Login starts the browser-redirect handshake.
func (ac *AuthController) Login(c *gin.Context) {
	state := uuid.NewString()
	c.SetCookie(stateCookie, state, stateCookieAge, "/", "", false, true)
	c.Redirect(http.StatusFound, ac.line.AuthCodeURL(state))
}

// Callback completes the handshake: state check, code exchange, user upsert,
// session creation. Any failure lands the browser back on /login.
func (ac *AuthController) Callback(c *gin.Context) {
	state, err := c.Cookie(stateCookie)
	if err != nil || state == "" || c.Query("state") != state {
		logger.Log.Warn("LINE callback with bad state")
		c.Redirect(http.StatusFound, "/login")
		return
	}
	c.SetCookie(stateCookie, "", -1, "/", "", false, true)

	code := c.Query("code")
	if code == "" {
		c.Redirect(http.StatusFound, "/login")
		return
	}

	profile, err := ac.line.Exchange(c.Request.Context(), code)
	if err != nil {
		logger.Log.Error("LINE code exchange failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	user, err := ac.users.FindOrCreateFromProfile(c.Request.Context(), profile)
	if err != nil {
		logger.Log.Error("User upsert failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	sessionID, err := ac.sessions.Create(c.Request.Context(), user.ID)
	if err != nil {
		logger.Log.Error("Session creation failed", zap.Error(err))
		c.Redirect(http.StatusFound, "/login")
		return
	}

	c.SetCookie(session.CookieName, sessionID, ac.sessionAge, "/", "", false, true)
	c.Redirect(http.StatusFound, "/")
}

// CurrentUser returns the logged-in user, or 401.
func (ac *AuthController) CurrentUser(c *gin.Context) {
	user, ok, err := ac.guard.Resolve(c)
	if err != nil {
		logger.Log.Error("Session user lookup failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
		return
	}
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authenticated"})
		return
	}
	c.JSON(http.StatusOK, user)
}

// Logout destroys the session server-side.
func (ac *AuthController) Logout(c *gin.Context) {
	if sessionID, err := c.Cookie(session.CookieName); err == nil && sessionID != "" {
		if err := ac.sessions.Destroy(c.Request.Context(), sessionID); err != nil {
			logger.Log.Error("Session destroy failed", zap.Error(err))
		}
	}
	c.SetCookie(session.CookieName, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
}
