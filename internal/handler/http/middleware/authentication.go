package middleware

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/mikiasgoitom/Notebook/internal/domain/entity"
	"github.com/mikiasgoitom/Notebook/internal/handler/http/dto"
	"github.com/mikiasgoitom/Notebook/internal/metrics"
	"github.com/mikiasgoitom/Notebook/internal/usecase"
	usecasecontract "github.com/mikiasgoitom/Notebook/internal/usecase/contract"
)

// PrincipalKey is the gin context key carrying the authenticated
// principal for the current request only.
const PrincipalKey = "auth.principal"

// BasicAuth resolves the request's Basic credentials to a principal.
// Requests without credentials pass through anonymous and are judged by
// the authorization stage. Presented credentials that fail — unknown
// user, wrong password or a denied account state — abort with one
// generic unauthorized response; the specific reason is only logged and
// counted internally.
func BasicAuth(auth usecasecontract.IAuthUseCase) gin.HandlerFunc {
	return func(c *gin.Context) {
		username, password, ok := c.Request.BasicAuth()
		if !ok {
			c.Next()
			return
		}

		principal, err := auth.Authenticate(c.Request.Context(), username, password)
		if err != nil {
			var stateErr *usecase.AccountStateError
			switch {
			case errors.As(err, &stateErr):
				metrics.AuthOutcomesTotal.WithLabelValues(string(stateErr.State)).Inc()
			case errors.Is(err, usecase.ErrInvalidCredentials):
				metrics.AuthOutcomesTotal.WithLabelValues("invalid_credentials").Inc()
			default:
				metrics.AuthOutcomesTotal.WithLabelValues("error").Inc()
			}
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Invalid credentials"})
			return
		}

		metrics.AuthOutcomesTotal.WithLabelValues("success").Inc()
		c.Set(PrincipalKey, principal)
		c.Next()
	}
}

// PrincipalFromContext returns the authenticated principal for the
// request, if any.
func PrincipalFromContext(c *gin.Context) (*entity.Principal, bool) {
	v, ok := c.Get(PrincipalKey)
	if !ok {
		return nil, false
	}
	principal, ok := v.(*entity.Principal)
	return principal, ok
}
