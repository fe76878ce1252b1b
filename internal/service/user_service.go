package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"petslife-service/internal/adapters/kafka"
	"petslife-service/internal/models"
	"petslife-service/internal/repository"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Custom errors
var (
	ErrUserNotFound       = errors.New("user not found")
	ErrUserAlreadyExists  = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

type UserService interface {
	Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error)
	Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error)
	// Resolve returns the profile for any identifier, signed-in user or
	// search target alike. A miss is ErrUserNotFound, never fatal.
	Resolve(ctx context.Context, id string) (*models.UserResponse, error)
	SearchByUsername(ctx context.Context, username string) (*models.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserResponse, error)
	AttachAvatar(ctx context.Context, userID, photoURL string) error
}

type userService struct {
	repo          repository.UserRepository
	events        EventPublisher
	jwtSecret     string
	jwtExpiration time.Duration
}

func NewUserService(repo repository.UserRepository, events EventPublisher, jwtSecret string, jwtExpiration time.Duration) UserService {
	return &userService{
		repo:          repo,
		events:        events,
		jwtSecret:     jwtSecret,
		jwtExpiration: jwtExpiration,
	}
}

// generateJWT creates a new JWT token for the user
func (s *userService) generateJWT(user *models.User) (string, error) {
	claims := jwt.MapClaims{
		"user_id":  user.ID,
		"email":    user.Email,
		"username": user.Username,
		"kind":     string(user.Kind),
		"exp":      time.Now().Add(s.jwtExpiration).Unix(),
		"iat":      time.Now().Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.jwtSecret))
}

func (s *userService) Register(ctx context.Context, req *models.RegisterRequest) (*models.UserResponse, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	if taken, err := s.repo.FindByUsername(ctx, req.Username); err != nil && !errors.Is(err, repository.ErrRecordNotFound) {
		return nil, fmt.Errorf("failed to check existing username: %w", err)
	} else if taken != nil {
		return nil, ErrUserAlreadyExists
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	kind := models.UserKindRegular
	if req.CRMV != "" {
		kind = models.UserKindVeterinarian
	}

	user := models.User{
		ID:       uuid.NewString(),
		Name:     req.Name,
		Username: req.Username,
		Email:    req.Email,
		Password: string(hashedPassword),
		Kind:     kind,
		CRMV:     req.CRMV,
	}

	if err := s.repo.Create(ctx, &user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return user.ToResponse(), nil
}

func (s *userService) Login(ctx context.Context, req *models.LoginRequest) (string, *models.UserResponse, error) {
	user, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return "", nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)); err != nil {
		return "", nil, ErrInvalidCredentials
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", nil, err
	}
	return token, user.ToResponse(), nil
}

func (s *userService) Resolve(ctx context.Context, id string) (*models.UserResponse, error) {
	user, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *userService) SearchByUsername(ctx context.Context, username string) (*models.UserResponse, error) {
	user, err := s.repo.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return user.ToResponse(), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *models.UpdateProfileRequest) (*models.UserResponse, error) {
	if err := s.repo.UpdateProfile(ctx, userID, req.Name, req.Username); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return s.Resolve(ctx, userID)
}

// AttachAvatar links an uploaded avatar address to the profile. Called by
// the upload pipeline once the transfer has completed.
func (s *userService) AttachAvatar(ctx context.Context, userID, photoURL string) error {
	if err := s.repo.UpdatePhotoURL(ctx, userID, photoURL); err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return err
	}
	publishEvent(ctx, s.events, kafka.EventAvatarAttached, userID, userID)
	return nil
}
