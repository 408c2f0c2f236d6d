package controllers

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/yeremiapane/restaurant-concierge/services"
	"github.com/yeremiapane/restaurant-concierge/utils"
)

var (
	ErrInvalidID   = errors.New("invalid id")
	ErrInvalidBody = errors.New("invalid request body")
)

var kindStatus = map[services.ErrorKind]int{
	services.KindNotFound:    http.StatusNotFound,
	services.KindConflict:    http.StatusConflict,
	services.KindValidation:  http.StatusBadRequest,
	services.KindUnavailable: http.StatusInternalServerError,
}

// respondServiceError memetakan ServiceError ke status HTTP. Detail error database
// hanya masuk log, tidak dikirim ke client.
func respondServiceError(c *gin.Context, err error) {
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		utils.RespondErrorKind(c, http.StatusServiceUnavailable, string(services.KindUnavailable), "request cancelled")
		return
	}

	kind := services.KindOf(err)
	code, ok := kindStatus[kind]
	if !ok {
		code = http.StatusInternalServerError
	}

	message := err.Error()
	var svcErr *services.ServiceError
	if errors.As(err, &svcErr) {
		message = svcErr.Message
	}
	if code >= 500 {
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		if svcErr == nil {
			message = "internal error"
		}
	}

	utils.RespondErrorKind(c, code, string(kind), message)
}

func respondBindError(c *gin.Context, err error) {
	utils.RespondErrorKind(c, http.StatusBadRequest, string(services.KindValidation), ErrInvalidBody.Error()+": "+err.Error())
}

func parseID(c *gin.Context, param string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 32)
	if err != nil || id == 0 {
		utils.RespondErrorKind(c, http.StatusBadRequest, string(services.KindValidation), ErrInvalidID.Error())
		return 0, false
	}
	return uint(id), true
}
