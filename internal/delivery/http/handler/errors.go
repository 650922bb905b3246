package handler

import (
	"errors"
	"net/http"
	"strconv"

	"supply-chain-viz/internal/logger"
	"supply-chain-viz/internal/middleware"
	appErrors "supply-chain-viz/pkg/errors"
	"supply-chain-viz/pkg/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

const internalErrorMessage = "Internal server error"

// respondError maps service errors onto HTTP status codes.
func respondError(c *gin.Context, err error) {
	var appErr *appErrors.AppError
	if errors.As(err, &appErr) {
		switch appErr.Code {
		case appErrors.CodeValidation:
			utils.ValidationErrorResponse(c, http.StatusBadRequest, appErr.Message, utils.ValidationDetails(appErr.Err))
			return
		case appErrors.CodeNotFound:
			utils.ErrorResponse(c, http.StatusNotFound, appErr.Message)
			return
		case appErrors.CodeConflict:
			utils.ErrorResponse(c, http.StatusConflict, appErr.Message)
			return
		case appErrors.CodeInternal:
			logInternal(c, err)
			utils.ErrorResponse(c, http.StatusInternalServerError, appErr.Message)
			return
		}
	}

	logInternal(c, err)
	utils.ErrorResponse(c, http.StatusInternalServerError, internalErrorMessage)
}

func logInternal(c *gin.Context, err error) {
	_ = c.Error(err)
	logger.WithRequestID(middleware.GetRequestID(c)).Error("Unhandled error",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Error(err),
	)
}

// respondBindError answers malformed input and type mismatches with 400.
func respondBindError(c *gin.Context, message string, err error) {
	if limit, ok := middleware.IsBodyTooLarge(err); ok {
		middleware.RespondBodyTooLarge(c, limit)
		return
	}
	utils.ValidationErrorResponse(c, http.StatusBadRequest, message, utils.ValidationDetails(err))
}

func parseIDParam(c *gin.Context, resource string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid "+resource+" ID")
		return 0, false
	}
	return id, true
}
