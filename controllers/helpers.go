package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/yeremiapane/sangem-ordering/services"
	"github.com/yeremiapane/sangem-ordering/session"
	"github.com/yeremiapane/sangem-ordering/utils"
)

var errInternal = errors.New("something went wrong, please refresh and try again")

// respondServiceError maps service errors onto HTTP codes.
func respondServiceError(c *gin.Context, err error) {
	switch {
	case services.IsValidation(err),
		errors.Is(err, services.ErrInvalidStatus),
		errors.Is(err, services.ErrInvalidPartnerStatus):
		utils.RespondError(c, http.StatusBadRequest, err)
	case errors.Is(err, services.ErrInvalidCredentials):
		utils.RespondError(c, http.StatusUnauthorized, err)
	case errors.Is(err, services.ErrForbidden):
		utils.RespondError(c, http.StatusForbidden, err)
	case errors.Is(err, services.ErrNotFound), errors.Is(err, services.ErrNoPartner):
		utils.RespondError(c, http.StatusNotFound, err)
	case errors.Is(err, services.ErrOrderClosed), errors.Is(err, services.ErrEmailTaken),
		errors.Is(err, services.ErrPartnerUnavailable):
		utils.RespondError(c, http.StatusConflict, err)
	default:
		utils.ErrorLogger.Errorf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		utils.RespondError(c, http.StatusInternalServerError, errInternal)
	}
}

func currentSession(c *gin.Context) (session.Session, bool) {
	sess, ok := session.From(c)
	if !ok {
		utils.RespondError(c, http.StatusUnauthorized, errors.New("unauthorized"))
	}
	return sess, ok
}

func uintParam(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return uint(id), true
}

// listQuery splits a comma separated query value, dropping blanks.
func listQuery(c *gin.Context, name string) []string {
	var out []string
	for _, v := range c.QueryArray(name) {
		for _, part := range strings.Split(v, ",") {
			if part = strings.TrimSpace(part); part != "" {
				out = append(out, part)
			}
		}
	}
	return out
}

func floatQuery(c *gin.Context, name string) (float64, bool) {
	raw := c.Query(name)
	if raw == "" {
		return 0, true
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, errors.New("invalid "+name))
		return 0, false
	}
	return v, true
}
