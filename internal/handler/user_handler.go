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

type UserHandler struct {
	userService   service.UserService
	uploadService *service.UploadService
}

func NewUserHandler(userService service.UserService, uploadService *service.UploadService) *UserHandler {
	return &UserHandler{userService: userService, uploadService: uploadService}
}

// Register godoc
// @Summary Register a new user
// @Description Register a pet owner, or a veterinarian when a CRMV license number is provided
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.RegisterRequest true "User registration data"
// @Success 201 {object} models.UserResponse "User created successfully"
// @Failure 400 {object} map[string]interface{} "Bad request - invalid input data"
// @Failure 409 {object} map[string]interface{} "Email or username already taken"
// @Router /auth/register [post]
func (h *UserHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	user, err := h.userService.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserAlreadyExists) {
			c.JSON(http.StatusConflict, response.Error(response.CodeUserExists))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to register user"})
		return
	}

	c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary User login
// @Description Authenticate with email and password, returns a JWT token and the profile
// @Tags auth
// @Accept json
// @Produce json
// @Param request body models.LoginRequest true "User login credentials"
// @Success 200 {object} map[string]interface{} "Login successful"
// @Failure 401 {object} map[string]interface{} "Invalid credentials"
// @Router /auth/login [post]
func (h *UserHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	token, user, err := h.userService.Login(c.Request.Context(), &req)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "invalid credentials"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

// GetProfile godoc
// @Summary Get the signed-in user's profile
// @Tags users
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]interface{} "Profile not found"
// @Router /users/profile [get]
func (h *UserHandler) GetProfile(c *gin.Context) {
	profile, err := h.userService.Resolve(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeUserNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UpdateProfile godoc
// @Summary Edit name and username
// @Tags users
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.UpdateProfileRequest true "New profile fields"
// @Success 200 {object} models.UserResponse
// @Router /users/profile [put]
func (h *UserHandler) UpdateProfile(c *gin.Context) {
	var req models.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	profile, err := h.userService.UpdateProfile(c.Request.Context(), middleware.UserID(c), &req)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeUserNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, profile)
}

// UploadAvatar godoc
// @Summary Attach a new avatar image
// @Description Starts the asynchronous avatar upload; poll /uploads/{targetId} for the outcome
// @Tags users
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param image formData file true "Avatar image"
// @Success 202 {object} models.UploadStatusResponse
// @Router /users/profile/avatar [post]
func (h *UserHandler) UploadAvatar(c *gin.Context) {
	userID := middleware.UserID(c)

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

	objectName := fmt.Sprintf("avatars/%s", userID)
	task := h.uploadService.Start(userID, userID, objectName, file, fileHeader.Size, fileHeader.Header.Get("Content-Type"),
		func(ctx context.Context, url string) error {
			return h.userService.AttachAvatar(ctx, userID, url)
		})

	c.JSON(http.StatusAccepted, task.Status())
}

// SearchUser godoc
// @Summary Look up a user by exact username
// @Tags users
// @Produce json
// @Security BearerAuth
// @Param username query string true "Username to look up"
// @Success 200 {object} models.UserResponse
// @Failure 404 {object} map[string]interface{} "No such user"
// @Router /users/search [get]
func (h *UserHandler) SearchUser(c *gin.Context) {
	username := c.Query("username")
	if username == "" {
		c.JSON(http.StatusBadRequest, response.Error(response.CodeParamInvalid))
		return
	}

	user, err := h.userService.SearchByUsername(c.Request.Context(), username)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeUserNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// GetUser resolves any identifier, e.g. a search result target.
func (h *UserHandler) GetUser(c *gin.Context) {
	user, err := h.userService.Resolve(c.Request.Context(), c.Param("id"))
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, response.Error(response.CodeUserNotFound))
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Register routes
func (h *UserHandler) RegisterRoutes(r *gin.RouterGroup, auth gin.HandlerFunc) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", h.Register)
		authGroup.POST("/login", h.Login)
	}
	users := r.Group("/users")
	{
		users.Use(auth)
		users.GET("/profile", h.GetProfile)
		users.PUT("/profile", h.UpdateProfile)
		users.POST("/profile/avatar", h.UploadAvatar)
		users.GET("/search", h.SearchUser)
		users.GET("/:id", h.GetUser)
	}
}
