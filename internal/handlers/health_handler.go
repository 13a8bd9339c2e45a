package handlers

import (
	"context"
	"net/http"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gin-gonic/gin"
)

type Checker interface {
	Ping(ctx context.Context) error
}

type HealthCheck struct {
	Name      string `json:"name"`
	Healthy   bool   `json:"healthy"`
	LatencyMS int64  `json:"latency_ms"`
	Error     string `json:"error,omitempty"`
}

type HealthHandler struct {
	environment string
	checkers    map[string]Checker
	shutdown    atomic.Bool
}

// NewHealthHandler takes named dependencies to probe on /readyz. Nil
// checkers are skipped.
func NewHealthHandler(environment string, checkers map[string]Checker) *HealthHandler {
	active := make(map[string]Checker, len(checkers))
	for name, c := range checkers {
		if c != nil {
			active[name] = c
		}
	}
	return &HealthHandler{environment: environment, checkers: active}
}

// MarkShuttingDown makes liveness and readiness fail so load balancers
// drain the instance.
func (h *HealthHandler) MarkShuttingDown() {
	h.shutdown.Store(true)
}

func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok", "env": h.environment})
}

func (h *HealthHandler) Liveness(c *gin.Context) {
	if h.shutdown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *HealthHandler) Readiness(c *gin.Context) {
	if h.shutdown.Load() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "shutting_down"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		checks = make([]HealthCheck, 0, len(h.checkers))
	)

	for name, checker := range h.checkers {
		wg.Add(1)
		go func() {
			defer wg.Done()

			start := time.Now()
			err := checker.Ping(ctx)

			check := HealthCheck{
				Name:      name,
				Healthy:   err == nil,
				LatencyMS: time.Since(start).Milliseconds(),
			}
			if err != nil {
				check.Error = err.Error()
			}

			mu.Lock()
			checks = append(checks, check)
			mu.Unlock()
		}()
	}
	wg.Wait()

	status, code := "ok", http.StatusOK
	for _, check := range checks {
		if !check.Healthy {
			status, code = "degraded", http.StatusServiceUnavailable
			break
		}
	}

	c.JSON(code, gin.H{"status": status, "checks": checks})
}
