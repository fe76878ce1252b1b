package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"petslife-service/internal/middleware"
	"petslife-service/internal/models"
	"petslife-service/internal/service"
	"petslife-service/pkg/response"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

type FriendHandler struct {
	friendService *service.FriendService
}

func NewFriendHandler(friendService *service.FriendService) *FriendHandler {
	return &FriendHandler{friendService: friendService}
}

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// SendRequest creates a pending friend request towards the given receiver.
// A duplicate send is absorbed, not an error the user has to deal with.
func (h *FriendHandler) SendRequest(c *gin.Context) {
	var req models.SendFriendRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	err := h.friendService.Send(c.Request.Context(), middleware.UserID(c), req.ReceiverID)
	switch {
	case err == nil:
		c.JSON(http.StatusCreated, gin.H{"message": "friend request sent"})
	case errors.Is(err, service.ErrRequestExists):
		c.JSON(http.StatusOK, response.Error(response.CodeRequestExists))
	case errors.Is(err, service.ErrSameKind), errors.Is(err, service.ErrSelfRequest):
		c.JSON(http.StatusUnprocessableEntity, response.Error(response.CodeSameKind))
	case errors.Is(err, service.ErrUserNotFound):
		c.JSON(http.StatusNotFound, response.Error(response.CodeUserNotFound))
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
	}
}

// AcceptRequest accepts the pending request sent by :userId to the
// signed-in user.
func (h *FriendHandler) AcceptRequest(c *gin.Context) {
	err := h.friendService.Accept(c.Request.Context(), c.Param("userId"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeRequestNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend request accepted"})
}

// RejectRequest rejects the request sent by :userId to the signed-in user.
func (h *FriendHandler) RejectRequest(c *gin.Context) {
	err := h.friendService.Reject(c.Request.Context(), c.Param("userId"), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeRequestNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend request rejected"})
}

// CancelRequest is the sender-side withdrawal: the signed-in user rejects
// its own request towards :userId. Withdrawing an accepted request is the
// unfriend path.
func (h *FriendHandler) CancelRequest(c *gin.Context) {
	err := h.friendService.Reject(c.Request.Context(), middleware.UserID(c), c.Param("userId"))
	if err != nil {
		if errors.Is(err, service.ErrRequestNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeRequestNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "friend request cancelled"})
}

func (h *FriendHandler) GetPendingRequests(c *gin.Context) {
	pending, err := h.friendService.ListPending(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"requests": pending, "count": len(pending)})
}

// GetFriends returns the viewer's friend group, the identifiers whose cards
// the viewer may see. Always contains the viewer itself.
func (h *FriendHandler) GetFriends(c *gin.Context) {
	group, err := h.friendService.FriendGroup(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"friendGroup": group})
}

// SubscribePending upgrades to a websocket and streams the pending-request
// inbox: the full current list on connect and again after every change.
// Clients replace their copy wholesale on each message.
func (h *FriendHandler) SubscribePending(c *gin.Context) {
	userID := middleware.UserID(c)

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	defer conn.Close()

	ctx, cancel := context.WithCancel(c.Request.Context())
	defer cancel()

	snapshots, err := h.friendService.SubscribePending(ctx, userID)
	if err != nil {
		slog.Error("Failed to subscribe to pending requests", "userId", userID, "error", err)
		return
	}

	// drain client frames only to notice the close
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	for snapshot := range snapshots {
		if err := conn.WriteJSON(gin.H{"requests": snapshot, "count": len(snapshot)}); err != nil {
			return
		}
	}
}

// Register routes
func (h *FriendHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	friends := r.Group("/friends")
	{
		friends.Use(auth)
		friends.GET("", h.GetFriends)
		friends.POST("/requests", h.SendRequest)
		friends.GET("/requests", h.GetPendingRequests)
		friends.GET("/requests/subscribe", h.SubscribePending)
		friends.POST("/requests/:userId/accept", h.AcceptRequest)
		friends.POST("/requests/:userId/reject", h.RejectRequest)
		friends.POST("/requests/:userId/cancel", h.CancelRequest)
	}
}
