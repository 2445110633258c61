package middleware

import (
	"github.com/gin-gonic/gin"

	"github.com/cisnux-seed/transaction-service/internal/apierrors"
	"github.com/cisnux-seed/transaction-service/internal/services"
	"github.com/cisnux-seed/transaction-service/internal/utils"
)

// Header names injected by the API gateway for external consumers.
const (
	HeaderConsumerID   = "X-Consumer-Custom-ID"
	HeaderForwardedFor = "X-Forwarded-For"
	HeaderAPIKey       = "X-API-Key"

	callerContextKey = "callerContext"
)

// ConsumerIdentity requires the gateway identity headers and binds them as a
// services.CallerContext for the handlers. The API key is also accepted as a
// query parameter, which some gateways use on path-parameter routes.
func ConsumerIdentity() gin.HandlerFunc {
	return func(c *gin.Context) {
		apiKey := c.GetHeader(HeaderAPIKey)
		if apiKey == "" {
			apiKey = c.Query(HeaderAPIKey)
		}

		caller := services.CallerContext{
			ExternalServiceID: c.GetHeader(HeaderConsumerID),
			APIKeyID:          apiKey,
			IPAddress:         c.GetHeader(HeaderForwardedFor),
			UserAgent:         c.Request.UserAgent(),
		}

		if caller.ExternalServiceID == "" || caller.APIKeyID == "" || caller.IPAddress == "" || caller.UserAgent == "" {
			apiErr := apierrors.NewUnauthenticated("missing consumer identity headers")
			c.JSON(apiErr.StatusCode, utils.NewErrorResponse(apiErr.StatusCode, apiErr.Message))
			c.Abort()
			return
		}

		c.Set(callerContextKey, caller)
		c.Next()
	}
}

// CallerFromContext returns the consumer identity bound by ConsumerIdentity.
func CallerFromContext(c *gin.Context) (services.CallerContext, bool) {
	v, ok := c.Get(callerContextKey)
	if !ok {
		return services.CallerContext{}, false
	}
	caller, ok := v.(services.CallerContext)
	return caller, ok
}
