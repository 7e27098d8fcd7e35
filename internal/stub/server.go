package stub

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/divyam007142/Railway-reservation/internal/domain"
	"github.com/divyam007142/Railway-reservation/internal/logger"
)

const (
	claimsKey = "claims"
)

// Server is the development API server implementing the reservation REST
// contract against an in-memory store.
type Server struct {
	store     *Store
	jwtSecret string
	tokenTTL  time.Duration
}

// NewServer creates a Server
func NewServer(store *Store, jwtSecret string, tokenTTL time.Duration) *Server {
	return &Server{store: store, jwtSecret: jwtSecret, tokenTTL: tokenTTL}
}

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(requestLogger())

	api := r.Group("/api")
	{
		api.POST("/auth/login", s.handleLogin)
		api.POST("/auth/register", s.handleRegister)

		api.GET("/trains", s.handleListTrains)
		api.GET("/trains/search", s.handleSearchTrains)
		api.POST("/trains", s.requireAuth(), s.requireRole(domain.RoleAdmin), s.handleCreateTrain)
		api.DELETE("/trains/:id", s.requireAuth(), s.requireRole(domain.RoleAdmin), s.handleDeleteTrain)

		api.POST("/bookings", s.requireAuth(), s.requireRole(domain.RolePassenger), s.handleCreateBooking)
		api.GET("/bookings/my-bookings", s.requireAuth(), s.requireRole(domain.RolePassenger), s.handleMyBookings)
		api.DELETE("/bookings/:pnr", s.requireAuth(), s.requireRole(domain.RolePassenger), s.handleCancelBooking)
		api.GET("/bookings/pnr/:pnr", s.handleLookupPNR)
		api.GET("/bookings/all", s.requireAuth(), s.requireRole(domain.RoleAdmin), s.handleAllBookings)

		api.GET("/reports/summary", s.requireAuth(), s.requireRole(domain.RoleAdmin), s.handleSummary)
	}

	return r
}

// abort writes the API error envelope the client parses.
func abort(c *gin.Context, status int, detail string) {
	c.AbortWithStatusJSON(status, gin.H{"detail": detail})
}

func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		logger.Info("request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", time.Since(start)),
		)
	}
}

// requireAuth verifies the bearer token and stashes its claims.
func (s *Server) requireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			abort(c, http.StatusUnauthorized, "Not authenticated")
			return
		}
		claims, err := ParseToken(s.jwtSecret, strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			abort(c, http.StatusUnauthorized, "Invalid or expired token")
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// requireRole enforces the role claim set by requireAuth.
func (s *Server) requireRole(role domain.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := mustClaims(c)
		if claims == nil || claims.Role != role.String() {
			abort(c, http.StatusForbidden, "Insufficient permissions")
			return
		}
		c.Next()
	}
}

func mustClaims(c *gin.Context) *Claims {
	value, exists := c.Get(claimsKey)
	if !exists {
		return nil
	}
	claims, ok := value.(*Claims)
	if !ok {
		return nil
	}
	return claims
}
