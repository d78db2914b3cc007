package middleware

import (
	"context"
	"net/http"
	"strings"

	"rotaclick/internal/domain/entities"
	"rotaclick/internal/infrastructure/identity"
	"rotaclick/pkg"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const actorContextKey = "rotaclick.actor"

var (
	errUnauthorized = pkg.NewDomainErrorSimple("UNAUTHORIZED", "Missing or invalid bearer token", http.StatusUnauthorized)
	errForbidden    = pkg.NewDomainErrorSimple("FORBIDDEN", "Not allowed for this role", http.StatusForbidden)
)

type TokenVerifier interface {
	Verify(token string) (*identity.Claims, error)
}

// CarrierResolver finds the carrier owned by a user. Carrier tokens issued
// before the carrier was registered carry no carrier_id claim.
type CarrierResolver func(ctx context.Context, userID string) (string, error)

// RequireAuth validates the bearer token and stores the caller on the gin
// context. Any failure ends the request with 401.
func RequireAuth(verifier TokenVerifier, resolve CarrierResolver, logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		claims, err := verifier.Verify(token)
		if err != nil {
			logger.Info("[auth][middleware] token rejected", zap.String("path", c.FullPath()), zap.Error(err))
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}

		actor := claims.Actor()
		if actor.Role == entities.RoleCarrier && actor.CarrierID == "" && resolve != nil {
			carrierID, err := resolve(c.Request.Context(), actor.UserID)
			if err != nil {
				logger.Error("[auth][middleware] carrier lookup failed", zap.String("user_id", actor.UserID), zap.Error(err))
				appErr := pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
				c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
				return
			}
			actor.CarrierID = carrierID
		}

		SetActor(c, actor)
		c.Next()
	}
}

// RequireRole must run after RequireAuth.
func RequireRole(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := ActorFrom(c)
		if !ok {
			c.AbortWithStatusJSON(errUnauthorized.HTTPStatus, errUnauthorized.ToHTTPError())
			return
		}
		for _, r := range roles {
			if actor.Role == r {
				c.Next()
				return
			}
		}
		c.AbortWithStatusJSON(errForbidden.HTTPStatus, errForbidden.ToHTTPError())
	}
}

// SetActor attaches the authenticated caller to the request.
func SetActor(c *gin.Context, actor entities.Actor) {
	c.Set(actorContextKey, actor)
}

func ActorFrom(c *gin.Context) (entities.Actor, bool) {
	v, ok := c.Get(actorContextKey)
	if !ok {
		return entities.Actor{}, false
	}
	actor, ok := v.(entities.Actor)
	return actor, ok
}

