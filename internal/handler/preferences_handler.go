package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/service"
)

// PreferencesHandler is the HTTP face of C7.
type PreferencesHandler struct {
	preferences *service.PreferencesService
}

func NewPreferencesHandler(preferences *service.PreferencesService) *PreferencesHandler {
	return &PreferencesHandler{preferences: preferences}
}

func (h *PreferencesHandler) Get(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	prefs, err := h.preferences.Get(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PreferencesToDTO(prefs))
}

func (h *PreferencesHandler) Update(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var req dto.UpdatePreferencesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	prefs, err := h.preferences.Update(userID, service.UpdatePreferencesInput{
		Timezone:              req.Timezone,
		DefaultReminderOffset: req.DefaultReminderOffset,
		PushEnabled:           req.PushEnabled,
		DailyDigestEnabled:    req.DailyDigestEnabled,
		DailyDigestHour:       req.DailyDigestHour,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PreferencesToDTO(prefs))
}

// Timezones backs the client's timezone picker.
func (h *PreferencesHandler) Timezones(c *gin.Context) {
	c.JSON(http.StatusOK, service.Timezones())
}
