package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/indunissanka/qbread/logger"
	"github.com/indunissanka/qbread/models"
	"github.com/indunissanka/qbread/repository"
	"github.com/indunissanka/qbread/session"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const UserContextKey = "currentUser"

// Auth resolves the session cookie into a user and exposes the two request
// guards. The resolved user lives in the per-request gin context; there is
// no process-wide current user.
type Auth struct {
	sessions session.Store
	users    repository.UserRepository
}

func NewAuth(sessions session.Store, users repository.UserRepository) *Auth {
	return &Auth{
		sessions: sessions,
		users:    users,
	}
}

// Resolve looks up the user behind the request's session cookie. Missing
// cookie, expired session or vanished user all read as "not authenticated";
// a failed store or database lookup comes back as a non-nil error instead.
func (a *Auth) Resolve(c *gin.Context) (*models.User, bool, error) {
	if val, ok := c.Get(UserContextKey); ok {
		if user, ok := val.(*models.User); ok {
			return user, true, nil
		}
	}

	sessionID, err := c.Cookie(session.CookieName)
	if err != nil || sessionID == "" {
		return nil, false, nil
	}

	userID, found, err := a.sessions.UserID(c.Request.Context(), sessionID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}

	user, err := a.users.FindByID(c.Request.Context(), userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	c.Set(UserContextKey, user)
	return user, true, nil
}

func abortLookupFailure(c *gin.Context, err error) {
	logger.Log.Error("Session user lookup failed", zap.Error(err))
	c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{"message": "Internal server error"})
}

// RequireAuth admits any logged-in user.
func (a *Auth) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		_, ok, err := a.Resolve(c)
		if err != nil {
			abortLookupFailure(c, err)
			return
		}
		if !ok {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Unauthorized"})
			return
		}
		c.Next()
	}
}

// RequireAdmin admits only users with the admin role.
func (a *Auth) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok, err := a.Resolve(c)
		if err != nil {
			abortLookupFailure(c, err)
			return
		}
		if !ok || user.Role != models.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Admin access required"})
			return
		}
		c.Next()
	}
}

// CurrentUser returns the user stashed by a guard, if any.
func CurrentUser(c *gin.Context) (*models.User, bool) {
	if val, ok := c.Get(UserContextKey); ok {
		if user, ok := val.(*models.User); ok {
			return user, true
		}
	}
	return nil, false
}
