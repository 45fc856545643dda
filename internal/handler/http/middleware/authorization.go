package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/dto"
	"github.com/mikiasgoitom/Notebook/internal/metrics"
)

const basicChallenge = `Basic realm="notebook"`

// Authorize evaluates the policy rule table for the request path after
// authentication has run. Missing credentials yield an unauthorized
// challenge; an authenticated principal that fails a role rule, and any
// request hitting a deny-all rule, are forbidden.
func Authorize(policy *Policy) gin.HandlerFunc {
	return func(c *gin.Context) {
		requirement := policy.Evaluate(c.Request.URL.Path)
		principal, authenticated := PrincipalFromContext(c)

		switch requirement.Kind {
		case KindPermitAll:
			c.Next()

		case KindDenyAll:
			metrics.AuthzDeniedTotal.WithLabelValues("deny_all").Inc()
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Access denied"})

		case KindRequireAuthenticated:
			if !authenticated {
				unauthorized(c)
				return
			}
			c.Next()

		case KindRequireRole:
			if !authenticated {
				unauthorized(c)
				return
			}
			if principal.Role != requirement.Role {
				metrics.AuthzDeniedTotal.WithLabelValues("require_role").Inc()
				c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "Access denied"})
				return
			}
			c.Next()
		}
	}
}

func unauthorized(c *gin.Context) {
	metrics.AuthzDeniedTotal.WithLabelValues("unauthenticated").Inc()
	c.Header("WWW-Authenticate", basicChallenge)
	c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Authentication required"})
}
