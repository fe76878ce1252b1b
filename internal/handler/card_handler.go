package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"petslife-service/internal/middleware"
	"petslife-service/internal/models"
	"petslife-service/internal/service"
	"petslife-service/pkg/response"

	"github.com/gin-gonic/gin"
)

type CardHandler struct {
	cardService   *service.CardService
	friendService *service.FriendService
	uploadService *service.UploadService
	sessions      *service.SessionRegistry
}

func NewCardHandler(cardService *service.CardService, friendService *service.FriendService, uploadService *service.UploadService, sessions *service.SessionRegistry) *CardHandler {
	return &CardHandler{
		cardService:   cardService,
		friendService: friendService,
		uploadService: uploadService,
		sessions:      sessions,
	}
}

// ListCards godoc
// @Summary List the cards visible to the signed-in user
// @Description Cards owned by the viewer's friend group, filtered by the animal-name search term. Running this refresh clears the session's stale flag.
// @Tags cards
// @Produce json
// @Security BearerAuth
// @Param search query string false "Animal name search term (case-insensitive substring)"
// @Success 200 {object} map[string]interface{}
// @Router /cards [get]
func (h *CardHandler) ListCards(c *gin.Context) {
	userID := middleware.UserID(c)
	session := h.sessions.Session(userID)

	// a search query param is a search submission
	if term, ok := c.GetQuery("search"); ok {
		session.SetSearchTerm(term)
	}

	group, err := h.friendService.FriendGroup(c.Request.Context(), userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	cards, err := h.cardService.ListVisible(c.Request.Context(), group, session.SearchTerm())
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	session.CompleteRefresh()

	c.JSON(http.StatusOK, gin.H{"cards": cards, "friendGroup": group})
}

// GetStale reports whether the session's card list needs a refresh.
func (h *CardHandler) GetStale(c *gin.Context) {
	session := h.sessions.Session(middleware.UserID(c))
	c.JSON(http.StatusOK, gin.H{"stale": session.Dirty()})
}

// CreateCard godoc
// @Summary Publish a new pet card
// @Tags cards
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.CardAttributes true "Card attributes"
// @Success 201 {object} models.Card
// @Failure 422 {object} map[string]interface{} "Veterinarians cannot publish cards"
// @Router /cards [post]
func (h *CardHandler) CreateCard(c *gin.Context) {
	var attrs models.CardAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	userID := middleware.UserID(c)
	card, err := h.cardService.Create(c.Request.Context(), userID, &attrs)
	if err != nil {
		if errors.Is(err, service.ErrVetOwnedCard) {
			c.JSON(http.StatusUnprocessableEntity, response.Error(response.CodeVetOwnedCard))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	h.sessions.Session(userID).MarkDirty()

	c.JSON(http.StatusCreated, card)
}

func (h *CardHandler) UpdateCard(c *gin.Context) {
	var attrs models.CardAttributes
	if err := c.ShouldBindJSON(&attrs); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	userID := middleware.UserID(c)
	card, err := h.cardService.Update(c.Request.Context(), userID, c.Param("id"), &attrs)
	if err != nil {
		h.writeCardError(c, err)
		return
	}
	h.sessions.Session(userID).MarkDirty()

	c.JSON(http.StatusOK, card)
}

func (h *CardHandler) DeleteCard(c *gin.Context) {
	userID := middleware.UserID(c)
	if err := h.cardService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		h.writeCardError(c, err)
		return
	}
	h.sessions.Session(userID).MarkDirty()

	c.JSON(http.StatusOK, gin.H{"message": "card deleted"})
}

// UploadPhoto godoc
// @Summary Attach a photo to a card
// @Description Starts the asynchronous photo upload; poll /uploads/{targetId} for the outcome
// @Tags cards
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Card ID"
// @Param image formData file true "Card photo"
// @Success 202 {object} models.UploadStatusResponse
// @Router /cards/{id}/photo [post]
func (h *CardHandler) UploadPhoto(c *gin.Context) {
	userID := middleware.UserID(c)
	cardID := c.Param("id")

	card, err := h.cardService.Get(c.Request.Context(), cardID)
	if err != nil {
		h.writeCardError(c, err)
		return
	}
	if !h.cardService.IsOwner(card, userID) {
		c.JSON(http.StatusForbidden, response.Error(response.CodeNotOwner))
		return
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}
	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	objectName := fmt.Sprintf("cards/%s", cardID)
	task := h.uploadService.Start(userID, cardID, objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"),
		func(ctx context.Context, url string) error {
			return h.cardService.AttachPhoto(ctx, cardID, url)
		})

	c.JSON(http.StatusAccepted, task.Status())
}

func (h *CardHandler) writeCardError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, service.ErrCardNotFound):
		c.JSON(http.StatusNotFound, response.Error(response.CodeCardNotFound))
	case errors.Is(err, service.ErrNotOwner):
		c.JSON(http.StatusForbidden, response.Error(response.CodeNotOwner))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// Register routes
func (h *CardHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	cards := r.Group("/cards")
	{
		cards.Use(auth)
		cards.GET("", h.ListCards)
		cards.GET("/stale", h.GetStale)
		cards.POST("", h.CreateCard)
		cards.PUT("/:id", h.UpdateCard)
		cards.DELETE("/:id", h.DeleteCard)
		cards.POST("/:id/photo", h.UploadPhoto)
	}
}
