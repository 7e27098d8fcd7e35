package stub

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/divyam007142/Railway-reservation/internal/dto"
)

func (s *Server) handleLogin(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}

	identity, err := s.store.Authenticate(req.Username, req.Password)
	if err != nil {
		abort(c, http.StatusUnauthorized, "Invalid username or password")
		return
	}

	token, err := IssueToken(s.jwtSecret, *identity, s.tokenTTL)
	if err != nil {
		abort(c, http.StatusInternalServerError, "Could not issue token")
		return
	}

	c.JSON(http.StatusOK, dto.AuthResponse{
		AccessToken: token,
		TokenType:   "bearer",
		User:        *identity,
	})
}

func (s *Server) handleRegister(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}
	if len(req.Password) < 6 {
		abort(c, http.StatusBadRequest, "Password must be at least 6 characters")
		return
	}
	if req.Username == "" || req.FullName == "" {
		abort(c, http.StatusBadRequest, "Username and full name are required")
		return
	}

	if err := s.store.Register(&req); err != nil {
		if errors.Is(err, ErrUserExists) {
			abort(c, http.StatusBadRequest, "Username already exists")
			return
		}
		abort(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Registration successful"})
}

func (s *Server) handleListTrains(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.ListTrains())
}

func (s *Server) handleSearchTrains(c *gin.Context) {
	source := c.Query("source")
	destination := c.Query("destination")
	c.JSON(http.StatusOK, s.store.SearchTrains(source, destination))
}

func (s *Server) handleCreateTrain(c *gin.Context) {
	var req dto.TrainCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}
	if ok, msg := req.Validate(); !ok {
		abort(c, http.StatusBadRequest, msg)
		return
	}

	c.JSON(http.StatusCreated, s.store.AddTrain(&req))
}

func (s *Server) handleDeleteTrain(c *gin.Context) {
	if err := s.store.DeleteTrain(c.Param("id")); err != nil {
		abort(c, http.StatusNotFound, "Train not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Train deleted successfully"})
}

func (s *Server) handleCreateBooking(c *gin.Context) {
	claims := mustClaims(c)

	var req dto.BookingCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abort(c, http.StatusBadRequest, err.Error())
		return
	}
	if req.PassengerName == "" || req.PassengerAge <= 0 || req.PassengerPhone == "" {
		abort(c, http.StatusBadRequest, "Passenger details are incomplete")
		return
	}

	outcome, err := s.store.CreateBooking(claims.Username, &req)
	if err != nil {
		if errors.Is(err, ErrTrainNotFound) {
			abort(c, http.StatusNotFound, "Train not found")
			return
		}
		abort(c, http.StatusInternalServerError, "Booking failed")
		return
	}

	c.JSON(http.StatusCreated, outcome)
}

func (s *Server) handleMyBookings(c *gin.Context) {
	claims := mustClaims(c)
	c.JSON(http.StatusOK, s.store.BookingsFor(claims.Username))
}

func (s *Server) handleAllBookings(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.AllBookings())
}

func (s *Server) handleCancelBooking(c *gin.Context) {
	claims := mustClaims(c)

	err := s.store.CancelBooking(claims.Username, c.Param("pnr"))
	switch {
	case err == nil:
		c.JSON(http.StatusOK, dto.CancelResponse{Message: "Booking cancelled successfully"})
	case errors.Is(err, ErrBookingNotFound):
		abort(c, http.StatusNotFound, "Booking not found")
	case errors.Is(err, ErrNotOwner):
		abort(c, http.StatusForbidden, "Booking belongs to another user")
	case errors.Is(err, ErrNotCancellable):
		abort(c, http.StatusBadRequest, "Only confirmed bookings can be cancelled")
	default:
		abort(c, http.StatusInternalServerError, "Cancellation failed")
	}
}

func (s *Server) handleLookupPNR(c *gin.Context) {
	booking, err := s.store.LookupPNR(c.Param("pnr"))
	if err != nil {
		abort(c, http.StatusNotFound, "Booking not found")
		return
	}
	c.JSON(http.StatusOK, booking)
}

func (s *Server) handleSummary(c *gin.Context) {
	c.JSON(http.StatusOK, s.store.Summary())
}
