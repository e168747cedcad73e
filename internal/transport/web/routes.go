package web

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakobmalmgren/Bonza-ai/internal/booking"
)

func (s *Server) addRoutes() {
	s.engine.GET(s.conf.LivenessEndpoint, s.livenessHandler)

	api := s.engine.Group("/api")
	{
		bookings := api.Group("/bookings")
		{
			bookings.GET("", s.listBookingsHandler)
			bookings.POST("", s.createBookingHandler)
			bookings.GET("/:bookingId", s.getBookingHandler)
			bookings.PUT("/:bookingId", s.updateBookingHandler)
			bookings.DELETE("/:bookingId", s.deleteBookingHandler)
		}
	}
}

func (s *Server) livenessHandler(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

func (s *Server) createBookingHandler(c *gin.Context) {
	var input booking.CreateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		jsonError(c, http.StatusBadRequest, gin.H{"error": "malformed request body"})

		return
	}

	bkg, err := s.bManager.Create(c.Request.Context(), &input)
	if err != nil {
		s.respondError(c, err)

		return
	}

	jsonSuccess(c, http.StatusCreated, gin.H{"booking": bkg})
}

func (s *Server) listBookingsHandler(c *gin.Context) {
	bookings, err := s.bManager.List(c.Request.Context())
	if err != nil {
		s.respondError(c, err)

		return
	}

	jsonSuccess(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (s *Server) getBookingHandler(c *gin.Context) {
	bkg, err := s.bManager.Get(c.Request.Context(), c.Param("bookingId"))
	if err != nil {
		s.respondError(c, err)

		return
	}

	jsonSuccess(c, http.StatusOK, gin.H{"booking": bkg})
}

func (s *Server) updateBookingHandler(c *gin.Context) {
	var input booking.UpdateInput

	if err := c.ShouldBindJSON(&input); err != nil {
		jsonError(c, http.StatusBadRequest, gin.H{"error": "malformed request body"})

		return
	}

	bkg, err := s.bManager.Update(c.Request.Context(), c.Param("bookingId"), &input)
	if err != nil {
		s.respondError(c, err)

		return
	}

	jsonSuccess(c, http.StatusOK, gin.H{"booking": bkg})
}

func (s *Server) deleteBookingHandler(c *gin.Context) {
	id := c.Param("bookingId")

	if err := s.bManager.Cancel(c.Request.Context(), id); err != nil {
		s.respondError(c, err)

		return
	}

	jsonSuccess(c, http.StatusOK, gin.H{
		"message":   "your booking has been cancelled",
		"bookingId": id,
	})
}
