package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/menaget/ordermgmt/internal/domain"
)

// writeError maps service failures to status codes: unknown ids are a client
// error, everything else is a server error with the cause logged, not leaked.
func writeError(c *gin.Context, err error) {
	if errors.Is(err, domain.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}

	log.Ctx(c.Request.Context()).Error().Err(err).Msg("request failed")
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

func writeValidationError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}

// objectIDParam parses the :id path segment. A malformed id is a validation
// failure, not a miss.
func objectIDParam(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		writeValidationError(c, errors.New("id must be a valid object id"))
		return primitive.NilObjectID, false
	}

	return id, true
}
