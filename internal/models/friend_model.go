package models

import (
	"time"
)

// FriendRequestStatus is the lifecycle state of a friend request.
type FriendRequestStatus string

const (
	FriendRequestStatusPending  FriendRequestStatus = "pending"
	FriendRequestStatusAccepted FriendRequestStatus = "accepted"
	FriendRequestStatusRejected FriendRequestStatus = "rejected"
)

// FriendRequest is a directed proposal to form a friendship. The ordered
// pair (SenderID, ReceiverID) is the record identity: at most one live
// request exists per direction.
type FriendRequest struct {
	SenderID   string              `gorm:"primaryKey;type:uuid" json:"senderId"`
	ReceiverID string              `gorm:"primaryKey;type:uuid" json:"receiverId"`
	Status     FriendRequestStatus `gorm:"not null;type:varchar(20);default:'pending'" json:"status"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PendingRequestResponse is a pending request enriched with the resolved
// sender profile, as delivered to the receiver's inbox.
type PendingRequestResponse struct {
	SenderID   string              `json:"senderId"`
	ReceiverID string              `json:"receiverId"`
	Status     FriendRequestStatus `json:"status"`
	Sender     *UserResponse       `json:"sender"`
	CreatedAt  time.Time           `json:"createdAt"`
}

// SendFriendRequest is the client payload for sending a request.
type SendFriendRequest struct {
	ReceiverID string `json:"receiverId" binding:"required"`
}
