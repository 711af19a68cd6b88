package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/shopstack/accounts-service/internal/core/domain"
)

// claimsContextKey is where the session middleware stores the decoded claims.
const claimsContextKey = "claims"

// ctxClaims extracts the session claims injected by the Session middleware.
// Absence means the middleware did not run or the token never carried an
// identity; either way the request is unauthenticated.
func ctxClaims(c echo.Context) (*domain.Claims, error) {
	claims, _ := c.Get(claimsContextKey).(*domain.Claims)
	if claims == nil || claims.ID == "" {
		return nil, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return claims, nil
}
