package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/motorent/internal/model"
	"github.com/motorent/internal/service"
)

type chatOptionsPayload struct {
	Options []model.ChatbotOption `json:"options"`
}

// ShowChatOptions returns the editable chat option list for the admin panel.
func (a *API) ShowChatOptions(c *gin.Context) {
	options, err := service.NewChatbotService(a.adminClient(c)).Options(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}

// SaveChatOptions bulk-replaces the chat option list. New options get their
// surrogate key server-side here, so the stored list never relies on array
// position for identity.
func (a *API) SaveChatOptions(c *gin.Context) {
	var payload chatOptionsPayload
	if !bindJSON(c, &payload, "invalid chat options payload") {
		return
	}

	svc := service.NewChatbotService(a.adminClient(c))
	if err := svc.SaveOptions(c.Request.Context(), payload.Options); err != nil {
		a.respondServiceError(c, err)
		return
	}

	options, err := svc.Options(c.Request.Context())
	if err != nil {
		a.respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"options": options})
}
