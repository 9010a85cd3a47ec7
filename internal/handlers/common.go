package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"
)

type OkResponse struct {
	Ok      bool   `json:"ok"`
	Message string `json:"message,omitempty"`
}

type ErrorResponse struct {
	Ok      bool   `json:"ok" example:"false"`
	Message string `json:"message" example:"something went wrong"`
}

// okFalse is the shape for business failures: the request was handled, the
// answer is no. Transport-level failures use real status codes instead.
func okFalse(c *gin.Context, message string) {
	c.JSON(http.StatusOK, OkResponse{Ok: false, Message: message})
}

func badRequest(c *gin.Context, message string) {
	c.JSON(http.StatusBadRequest, ErrorResponse{Ok: false, Message: message})
}

func forbidden(c *gin.Context) {
	c.JSON(http.StatusForbidden, ErrorResponse{Ok: false, Message: "permission denied"})
}

// internalError logs the real cause and hides it from the caller.
func internalError(c *gin.Context, err error) {
	log.Error().Err(err).Str("path", c.FullPath()).Msg("request failed")
	c.JSON(http.StatusInternalServerError, ErrorResponse{Ok: false, Message: "internal server error"})
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	value, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		badRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(value), true
}
