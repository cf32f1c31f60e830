package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/remindengine/core/internal/dto"
	"github.com/remindengine/core/internal/middleware"
	"github.com/remindengine/core/internal/service"
)

// PushHandler is the HTTP face of the Push Registry (C5).
type PushHandler struct {
	push *service.PushService
}

func NewPushHandler(push *service.PushService) *PushHandler {
	return &PushHandler{push: push}
}

func (h *PushHandler) VAPIDPublicKey(c *gin.Context) {
	key, enabled := h.push.VAPIDPublicKey()
	c.JSON(http.StatusOK, dto.VAPIDPublicKeyResponse{PublicKey: key, Enabled: enabled})
}

func (h *PushHandler) Subscribe(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var req dto.SubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}

	sub, err := h.push.Subscribe(userID, service.SubscribeInput{
		Endpoint:  req.Endpoint,
		P256dhKey: req.Keys.P256dh,
		AuthKey:   req.Keys.Auth,
		UserAgent: req.UserAgent,
	})
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.PushSubscriptionToDTO(sub))
}

func (h *PushHandler) Unsubscribe(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	var req dto.UnsubscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		RespondValidation(c, err.Error())
		return
	}
	if err := h.push.Unsubscribe(userID, req.Endpoint); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *PushHandler) List(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	subs, err := h.push.ListByUser(userID)
	if err != nil {
		RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.PushSubscriptionsToDTO(subs))
}

func (h *PushHandler) Delete(c *gin.Context) {
	userID := middleware.MustGetUserID(c)
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		RespondValidation(c, "invalid subscription id")
		return
	}
	if err := h.push.Delete(userID, id); err != nil {
		RespondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}
