package middleware

import (
	"net/http"
	"os"

	"service_engine_x/internal/auth"
	"service_engine_x/internal/usecase"
	"service_engine_x/pkg"

	"github.com/gin-gonic/gin"
)

const (
	ContextOrgID  = "org_id"
	ContextUserID = "user_id"
	ContextRole   = "role"
)

var errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Authentication required", http.StatusUnauthorized)

// RequireAuth resolves the bearer credential before any resource is touched.
// Session JWTs and opaque API tokens share the Authorization header; both
// resolve to an org scope stored on the context.
func RequireAuth(authUC usecase.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := auth.ExtractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		identity, err := authUC.VerifyBearer(c.Request.Context(), token)
		if err != nil {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		c.Set(ContextOrgID, identity.OrgID)
		c.Set(ContextUserID, identity.UserID)
		c.Set(ContextRole, identity.Role)
		c.Next()
	}
}

// RequireInternalKey guards the operator surface with a shared secret header.
// With no key configured the surface is unreachable.
func RequireInternalKey() gin.HandlerFunc {
	return func(c *gin.Context) {
		key := os.Getenv("INTERNAL_API_KEY")
		if key == "" || c.GetHeader("X-Internal-Key") != key {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		c.Next()
	}
}

// OrgID pulls the authenticated organization scope off the context.
func OrgID(c *gin.Context) string {
	return c.GetString(ContextOrgID)
}

// UserID pulls the authenticated user off the context.
func UserID(c *gin.Context) string {
	return c.GetString(ContextUserID)
}
