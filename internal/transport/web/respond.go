package web

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jakobmalmgren/Bonza-ai/internal/booking"
)

func jsonSuccess(c *gin.Context, code int, body gin.H) {
	body["success"] = true
	c.JSON(code, body)
}

func jsonError(c *gin.Context, code int, body gin.H) {
	body["success"] = false
	c.JSON(code, body)
}

// respondError maps core errors onto the HTTP envelope. Validation,
// inventory and capacity failures are the client's to fix; conflicts
// are safe to retry from scratch; everything else is a server fault.
func (s *Server) respondError(c *gin.Context, err error) {
	if inputErr := booking.IsInputError(err); inputErr != nil {
		jsonError(c, http.StatusBadRequest, gin.H{
			"error":  "invalid booking request",
			"fields": inputErr.Fields(),
		})

		return
	}

	if invErr := booking.IsInventoryError(err); invErr != nil {
		jsonError(c, http.StatusBadRequest, gin.H{
			"error":  "some room types are missing or have too few rooms available",
			"failed": invErr.Issues(),
		})

		return
	}

	if capErr := booking.IsCapacityError(err); capErr != nil {
		jsonError(c, http.StatusBadRequest, gin.H{"error": capErr.Error()})

		return
	}

	switch {
	case errors.Is(err, booking.ErrBookingNotFound):
		jsonError(c, http.StatusNotFound, gin.H{"error": "booking not found"})
	case errors.Is(err, booking.ErrInventoryConflict),
		errors.Is(err, booking.ErrCancellationConflict):
		jsonError(c, http.StatusConflict, gin.H{
			"error": "inventory changed while processing, retry the request",
		})
	default:
		s.l.LogErrorf("Request failed: %v", err)
		jsonError(c, http.StatusInternalServerError, gin.H{
			"error": http.StatusText(http.StatusInternalServerError),
		})
	}
}
