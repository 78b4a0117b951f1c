package middleware

import (
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-planner/errors"
	"github.com/johnquangdev/meeting-planner/internal/adapter/dto/common"
	"github.com/johnquangdev/meeting-planner/internal/infrastructure/cache"
)

// RateLimit rejects clients that exceed limiter's budget, keyed by client IP.
// Limiter failures let the request through.
func RateLimit(limiter cache.Limiter, logger *zap.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ip := c.RealIP()

			allowed, err := limiter.Allow(c.Request().Context(), ip)
			if err != nil {
				logger.Warn("ratelimit.unavailable", zap.String("ip", ip), zap.Error(err))
				return next(c)
			}
			if !allowed {
				logger.Info("ratelimit.rejected",
					zap.String("ip", ip),
					zap.String("path", c.Path()),
				)
				return respondError(c, errors.ErrRateLimited())
			}
			return next(c)
		}
	}
}

func respondError(c echo.Context, appErr errors.AppError) error {
	return c.JSON(appErr.HTTPCode, common.ErrorResponse{
		Error: appErr.Message,
		Code:  appErr.Code.String(),
	})
}
