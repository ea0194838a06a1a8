package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsamuelsen/disaster-response/internal/adapters/http/dto"
	"github.com/jsamuelsen/disaster-response/internal/domain"
	"github.com/jsamuelsen/disaster-response/internal/platform/config"
	"github.com/jsamuelsen/disaster-response/internal/platform/logging"
)

const (
	// ContextKeyUser is the gin context key of the authenticated User.
	ContextKeyUser = "user"

	defaultUserHeader = "X-User-ID"
)

// Roles known to the user directory.
const (
	RoleAdmin       = "admin"
	RoleContributor = "contributor"
	RoleViewer      = "viewer"
)

// User is the caller identified by the user header.
type User struct {
	ID   string
	Role string
}

// Directory resolves user ids to roles from the static auth config.
type Directory struct {
	header string
	users  map[string]string
}

// NewDirectory builds a Directory from cfg.
func NewDirectory(cfg config.AuthConfig) *Directory {
	header := cfg.Header
	if header == "" {
		header = defaultUserHeader
	}
	return &Directory{header: header, users: cfg.Users}
}

// Lookup returns the user with id, if known.
func (d *Directory) Lookup(id string) (User, bool) {
	role, ok := d.users[id]
	if !ok {
		return User{}, false
	}
	return User{ID: id, Role: role}, true
}

// RequireUser rejects requests without a known user header with 401.
func RequireUser(dir *Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(dir.header))
		if id == "" {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "Missing "+dir.header+" header")
			return
		}

		user, ok := dir.Lookup(id)
		if !ok {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "Invalid user ID")
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// OptionalUser identifies the caller when the header is sent. Without it
// the request runs as the system user; an unknown id is still rejected.
func OptionalUser(dir *Directory) gin.HandlerFunc {
	return func(c *gin.Context) {
		id := strings.TrimSpace(c.GetHeader(dir.header))
		if id == "" {
			c.Set(ContextKeyUser, User{ID: domain.SystemUser})
			c.Next()
			return
		}

		user, ok := dir.Lookup(id)
		if !ok {
			dto.AbortWithCode(c, dto.ErrorCodeUnauthorized, "Invalid user ID")
			return
		}

		setUser(c, user)
		c.Next()
	}
}

// RequireRole rejects callers without role with 403. It must run after
// RequireUser.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c).Role != role {
			dto.AbortWithCode(c, dto.ErrorCodeForbidden, "insufficient permissions: role "+role+" required")
			return
		}
		c.Next()
	}
}

// CurrentUser returns the caller, or the system user when none was set.
func CurrentUser(c *gin.Context) User {
	if v, ok := c.Get(ContextKeyUser); ok {
		if u, ok := v.(User); ok {
			return u
		}
	}
	return User{ID: domain.SystemUser}
}

func setUser(c *gin.Context, user User) {
	c.Set(ContextKeyUser, user)
	c.Request = c.Request.WithContext(logging.WithUserID(c.Request.Context(), user.ID))
}
