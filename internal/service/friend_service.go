package service

import (
	"context"
	"errors"
	"log/slog"

	"petslife-service/internal/adapters/kafka"
	"petslife-service/internal/models"
	"petslife-service/internal/repository"
)

var (
	ErrRequestExists   = errors.New("friend request already exists")
	ErrRequestNotFound = errors.New("friend request not found")
	ErrSameKind        = errors.New("friend requests must pair a regular user with a veterinarian")
	ErrSelfRequest     = errors.New("cannot send a friend request to yourself")
)

// FriendService is the request ledger plus the friend-group derivation on
// top of it.
type FriendService struct {
	friendRepo repository.FriendRepository
	userRepo   repository.UserRepository
	events     EventPublisher
}

func NewFriendService(friendRepo repository.FriendRepository, userRepo repository.UserRepository, events EventPublisher) *FriendService {
	return &FriendService{friendRepo: friendRepo, userRepo: userRepo, events: events}
}

// Send creates a pending request for the ordered pair (senderID,
// receiverID). Duplicates are absorbed as ErrRequestExists without touching
// the existing record. Requests only pair the two kinds: two regular users
// or two vets cannot befriend each other.
func (s *FriendService) Send(ctx context.Context, senderID, receiverID string) error {
	if senderID == receiverID {
		return ErrSelfRequest
	}

	sender, err := s.userRepo.FindByID(ctx, senderID)
	if err != nil {
		return userLookupErr(err)
	}
	receiver, err := s.userRepo.FindByID(ctx, receiverID)
	if err != nil {
		return userLookupErr(err)
	}
	if sender.Kind == receiver.Kind {
		return ErrSameKind
	}

	if _, err := s.friendRepo.Find(ctx, senderID, receiverID); err == nil {
		return ErrRequestExists
	} else if !errors.Is(err, repository.ErrRecordNotFound) {
		return err
	}

	return s.friendRepo.Create(ctx, &models.FriendRequest{
		SenderID:   senderID,
		ReceiverID: receiverID,
		Status:     models.FriendRequestStatusPending,
	})
}

// Accept transitions the request to accepted. Only the receiver may accept.
func (s *FriendService) Accept(ctx context.Context, senderID, receiverID string) error {
	err := s.friendRepo.UpdateStatus(ctx, senderID, receiverID, models.FriendRequestStatusAccepted)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	publishEvent(ctx, s.events, kafka.EventFriendshipAccepted, senderID+"_"+receiverID, receiverID)
	return nil
}

// Reject transitions the request to rejected. Either party may reject; the
// sender rejecting its own pending request is the cancel/unfriend path.
func (s *FriendService) Reject(ctx context.Context, senderID, receiverID string) error {
	err := s.friendRepo.UpdateStatus(ctx, senderID, receiverID, models.FriendRequestStatusRejected)
	if err != nil {
		if errors.Is(err, repository.ErrRecordNotFound) {
			return ErrRequestNotFound
		}
		return err
	}
	return nil
}

// ListPending returns the receiver's inbox, each request enriched with the
// resolved sender profile. Requests whose sender can no longer be resolved
// are skipped.
func (s *FriendService) ListPending(ctx context.Context, receiverID string) ([]models.PendingRequestResponse, error) {
	requests, err := s.friendRepo.ListPending(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	responses := make([]models.PendingRequestResponse, 0, len(requests))
	for _, request := range requests {
		sender, err := s.userRepo.FindByID(ctx, request.SenderID)
		if err != nil {
			if errors.Is(err, repository.ErrRecordNotFound) {
				slog.Warn("Pending request from unknown sender", "senderId", request.SenderID)
				continue
			}
			return nil, err
		}
		responses = append(responses, models.PendingRequestResponse{
			SenderID:   request.SenderID,
			ReceiverID: request.ReceiverID,
			Status:     request.Status,
			Sender:     sender.ToResponse(),
			CreatedAt:  request.CreatedAt,
		})
	}
	return responses, nil
}

// ListAccepted returns the accepted requests where id is the sender, and
// those where id is the receiver.
func (s *FriendService) ListAccepted(ctx context.Context, id string) (sent, received []models.FriendRequest, err error) {
	sent, err = s.friendRepo.ListAcceptedBySender(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	received, err = s.friendRepo.ListAcceptedByReceiver(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return sent, received, nil
}

// FriendGroup derives the flat set of identifiers whose cards the viewer may
// see: the viewer itself plus every accepted counterparty in either
// direction.
func (s *FriendService) FriendGroup(ctx context.Context, viewerID string) ([]string, error) {
	sent, received, err := s.ListAccepted(ctx, viewerID)
	if err != nil {
		return nil, err
	}

	seen := map[string]bool{viewerID: true}
	group := []string{viewerID}
	for _, request := range received {
		if !seen[request.SenderID] {
			seen[request.SenderID] = true
			group = append(group, request.SenderID)
		}
	}
	for _, request := range sent {
		if !seen[request.ReceiverID] {
			seen[request.ReceiverID] = true
			group = append(group, request.ReceiverID)
		}
	}
	return group, nil
}

// SubscribePending is the live view of the receiver's inbox. Each delivery
// is the full current pending list; consumers replace their local copy
// wholesale, no diffing. An initial snapshot is delivered on subscribe and
// the channel closes when ctx is cancelled.
func (s *FriendService) SubscribePending(ctx context.Context, receiverID string) (<-chan []models.PendingRequestResponse, error) {
	signals, err := s.friendRepo.SubscribeChanges(ctx, receiverID)
	if err != nil {
		return nil, err
	}

	snapshots := make(chan []models.PendingRequestResponse, 1)
	go func() {
		defer close(snapshots)

		push := func() bool {
			pending, err := s.ListPending(ctx, receiverID)
			if err != nil {
				if ctx.Err() == nil {
					slog.Error("Failed to refresh pending requests", "receiverId", receiverID, "error", err)
				}
				return true
			}
			select {
			case snapshots <- pending:
				return true
			case <-ctx.Done():
				return false
			}
		}

		if !push() {
			return
		}
		for {
			select {
			case <-ctx.Done():
				return
			case _, ok := <-signals:
				if !ok {
					return
				}
				if !push() {
					return
				}
			}
		}
	}()

	return snapshots, nil
}

func userLookupErr(err error) error {
	if errors.Is(err, repository.ErrRecordNotFound) {
		return ErrUserNotFound
	}
	return err
}
