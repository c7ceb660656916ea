package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"warga-be-svc/pkg/logger"
	"warga-be-svc/pkg/utils"
)

// parseIDParam reads the :id path parameter as an unsigned integer. On
// failure it writes the 400 response itself and returns ok=false.
func parseIDParam(c *gin.Context, log *logger.Logger) (uint, bool) {
	idParam := c.Param("id")
	id, err := strconv.ParseUint(idParam, 10, 32)
	if err != nil {
		log.WithError(err).WithField("id", idParam).Error("Invalid ID param")
		utils.BadRequestResponse(c, "Invalid ID parameter", err)
		return 0, false
	}
	return uint(id), true
}
