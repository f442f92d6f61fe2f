package health

import (
	"context"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/movesure/dispatch/internal/pkg/database"
	"github.com/movesure/dispatch/internal/pkg/logger"
)

// Checker defines the interface for health checking dependencies
type Checker interface {
	CheckHealth(ctx context.Context) error
}

// PostgresChecker checks PostgreSQL connection health
type PostgresChecker struct {
	client *database.PostgresClient
}

// NewPostgresChecker creates a new PostgreSQL health checker
func NewPostgresChecker(client *database.PostgresClient) *PostgresChecker {
	return &PostgresChecker{client: client}
}

// CheckHealth checks if PostgreSQL is healthy
func (p *PostgresChecker) CheckHealth(ctx context.Context) error {
	if p.client == nil {
		return nil
	}
	return p.client.Ping(ctx)
}

// RedisChecker checks Redis connection health
type RedisChecker struct {
	client *database.RedisClient
}

// NewRedisChecker creates a new Redis health checker
func NewRedisChecker(client *database.RedisClient) *RedisChecker {
	return &RedisChecker{client: client}
}

// CheckHealth checks if Redis is healthy
func (r *RedisChecker) CheckHealth(ctx context.Context) error {
	if r.client == nil {
		return nil
	}
	return r.client.Ping(ctx)
}

// Pinger is satisfied by connection wrappers that expose a Ping
type Pinger interface {
	Ping() error
}

// NSQChecker checks NSQ daemon connectivity
type NSQChecker struct {
	producer Pinger
}

// NewNSQChecker creates a new NSQ health checker
func NewNSQChecker(producer Pinger) *NSQChecker {
	return &NSQChecker{producer: producer}
}

// CheckHealth checks if the NSQ daemon is reachable
func (n *NSQChecker) CheckHealth(ctx context.Context) error {
	if n.producer == nil {
		return nil
	}
	return n.producer.Ping()
}

// Service manages health checks for multiple dependencies
type Service struct {
	checkers map[string]Checker
}

// NewService creates a new health service
func NewService() *Service {
	return &Service{
		checkers: make(map[string]Checker),
	}
}

// AddChecker registers a health checker for a dependency
func (s *Service) AddChecker(name string, checker Checker) {
	s.checkers[name] = checker
}

// Response represents the health check response
type Response struct {
	Status       string                    `json:"status"`
	Timestamp    time.Time                 `json:"timestamp"`
	Service      string                    `json:"service"`
	Version      string                    `json:"version,omitempty"`
	Dependencies map[string]DependencyInfo `json:"dependencies"`
}

// DependencyInfo represents health info for a dependency
type DependencyInfo struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

// CheckAll performs health checks on all registered dependencies
func (s *Service) CheckAll(ctx context.Context) Response {
	response := Response{
		Status:       "healthy",
		Timestamp:    time.Now(),
		Dependencies: make(map[string]DependencyInfo),
	}

	for name, checker := range s.checkers {
		if err := checker.CheckHealth(ctx); err != nil {
			logger.Error("Health check failed",
				logger.String("dependency", name),
				logger.Err(err))

			response.Dependencies[name] = DependencyInfo{
				Status: "unhealthy",
				Error:  err.Error(),
			}
			response.Status = "unhealthy"
		} else {
			response.Dependencies[name] = DependencyInfo{
				Status: "healthy",
			}
		}
	}

	return response
}

// RegisterHealthEndpoints registers the health check endpoints
func RegisterHealthEndpoints(e *echo.Echo, serviceName, version string, healthService *Service) {
	healthGroup := e.Group("/health")

	// Basic health check (for load balancers)
	healthGroup.GET("", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":    "ok",
			"service":   serviceName,
			"timestamp": time.Now(),
		})
	})

	// Readiness probe with dependency checks
	healthGroup.GET("/ready", func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 3*time.Second)
		defer cancel()

		response := healthService.CheckAll(ctx)
		response.Service = serviceName
		response.Version = version

		if response.Status == "unhealthy" {
			return c.JSON(http.StatusServiceUnavailable, response)
		}
		return c.JSON(http.StatusOK, response)
	})

	// Liveness probe
	healthGroup.GET("/live", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]interface{}{
			"status":  "alive",
			"service": serviceName,
		})
	})
}
