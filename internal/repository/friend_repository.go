package repository

import (
	"context"
	"errors"
	"log/slog"

	"petslife-service/internal/models"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// FriendRepository stores friend requests and carries the change channel the
// live pending-request view is built on. Every mutation publishes the
// receiver's channel; subscribers re-query and replace their copy wholesale.
type FriendRepository interface {
	Create(ctx context.Context, request *models.FriendRequest) error
	Find(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error)
	UpdateStatus(ctx context.Context, senderID, receiverID string, status models.FriendRequestStatus) error
	ListPending(ctx context.Context, receiverID string) ([]models.FriendRequest, error)
	ListAcceptedBySender(ctx context.Context, senderID string) ([]models.FriendRequest, error)
	ListAcceptedByReceiver(ctx context.Context, receiverID string) ([]models.FriendRequest, error)
	SubscribeChanges(ctx context.Context, receiverID string) (<-chan struct{}, error)
}

type friendRepository struct {
	db          *gorm.DB
	redisClient *redis.Client
}

func NewFriendRepository(db *gorm.DB, redisClient *redis.Client) FriendRepository {
	return &friendRepository{db: db, redisClient: redisClient}
}

func changeChannel(receiverID string) string {
	return "friend_requests:" + receiverID
}

func (r *friendRepository) publishChange(ctx context.Context, receiverID string) {
	if r.redisClient == nil {
		return
	}
	if err := r.redisClient.Publish(ctx, changeChannel(receiverID), "sync").Err(); err != nil {
		slog.Warn("Failed to publish friend request change", "receiverId", receiverID, "error", err)
	}
}

func (r *friendRepository) Create(ctx context.Context, request *models.FriendRequest) error {
	if err := r.db.WithContext(ctx).Create(request).Error; err != nil {
		return err
	}
	r.publishChange(ctx, request.ReceiverID)
	return nil
}

func (r *friendRepository) Find(ctx context.Context, senderID, receiverID string) (*models.FriendRequest, error) {
	var request models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		First(&request).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrRecordNotFound
		}
		return nil, err
	}
	return &request, nil
}

func (r *friendRepository) UpdateStatus(ctx context.Context, senderID, receiverID string, status models.FriendRequestStatus) error {
	result := r.db.WithContext(ctx).Model(&models.FriendRequest{}).
		Where("sender_id = ? AND receiver_id = ?", senderID, receiverID).
		Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrRecordNotFound
	}
	r.publishChange(ctx, receiverID)
	return nil
}

func (r *friendRepository) ListPending(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendRequestStatusPending).
		Find(&requests).Error
	return requests, err
}

func (r *friendRepository) ListAcceptedBySender(ctx context.Context, senderID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("sender_id = ? AND status = ?", senderID, models.FriendRequestStatusAccepted).
		Find(&requests).Error
	return requests, err
}

func (r *friendRepository) ListAcceptedByReceiver(ctx context.Context, receiverID string) ([]models.FriendRequest, error) {
	var requests []models.FriendRequest
	err := r.db.WithContext(ctx).
		Where("receiver_id = ? AND status = ?", receiverID, models.FriendRequestStatusAccepted).
		Find(&requests).Error
	return requests, err
}

// SubscribeChanges delivers one signal per mutation addressed to receiverID.
// The channel closes when ctx is cancelled.
func (r *friendRepository) SubscribeChanges(ctx context.Context, receiverID string) (<-chan struct{}, error) {
	pubsub := r.redisClient.Subscribe(ctx, changeChannel(receiverID))
	if _, err := pubsub.Receive(ctx); err != nil {
		pubsub.Close()
		return nil, err
	}

	signals := make(chan struct{}, 1)
	go func() {
		defer close(signals)
		defer pubsub.Close()

		redisCh := pubsub.Channel()
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-redisCh:
				if !ok {
					return
				}
				select {
				case signals <- struct{}{}:
				default:
					// a signal is already queued, snapshot re-query covers both
				}
			}
		}
	}()

	return signals, nil
}
