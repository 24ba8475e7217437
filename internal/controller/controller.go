// Package controller holds the helpers shared by the faculty and student HTTP controllers.
package controller

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/lshigami/ExamPortal/internal/apperror"
	"github.com/lshigami/ExamPortal/internal/auth"
	"github.com/lshigami/ExamPortal/internal/dto"
	"github.com/lshigami/ExamPortal/internal/middleware"
	"github.com/rs/zerolog/log"
)

// RespondError writes err with the status of its kind. Details are only shown
// for client errors; persistence failures get a generic message.
func RespondError(ctx *gin.Context, op string, err error) {
	status := apperror.HTTPStatus(err)
	if !apperror.IsClientError(err) {
		log.Error().Err(err).Str("request_id", middleware.RequestIDFrom(ctx)).Msg(op + ": service error")
		ctx.JSON(status, dto.ErrorResponse{Message: "internal server error"})
		return
	}
	log.Warn().Err(err).Str("request_id", middleware.RequestIDFrom(ctx)).Msg(op + ": rejected")
	ctx.JSON(status, dto.ErrorResponse{Message: http.StatusText(status), Details: []string{err.Error()}})
}

// BindError reports a body that failed to decode or validate.
func BindError(ctx *gin.Context, op string, err error) {
	log.Warn().Err(err).Str("request_id", middleware.RequestIDFrom(ctx)).Msg(op + ": failed to bind JSON")
	var details []string
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		for _, fe := range verrs {
			details = append(details, fe.Namespace()+" failed on '"+fe.Tag()+"'")
		}
	} else {
		details = []string{err.Error()}
	}
	ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid request body", Details: details})
}

// ParseID reads a positive numeric path parameter, writing a 400 when it is not one.
func ParseID(ctx *gin.Context, name string) (uint, bool) {
	val, err := strconv.ParseUint(ctx.Param(name), 10, 32)
	if err != nil || val == 0 {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{Message: "Invalid " + name + " format"})
		return 0, false
	}
	return uint(val), true
}

// MustCaller returns the authenticated caller, writing a 401 when there is none.
func MustCaller(ctx *gin.Context) (auth.Caller, bool) {
	caller, ok := middleware.CallerFrom(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{Message: "authorization required"})
		return auth.Caller{}, false
	}
	return caller, true
}
