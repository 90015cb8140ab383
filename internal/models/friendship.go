package models

import (
	"time"
)

// Friendship is an undirected edge between two users, stored in canonical
// orientation: LoUserID is always the lexicographically smaller id. The
// unique index over (lo_user_id, hi_user_id) is the storage backstop for the
// one-row-per-pair invariant; the service normalizes and pre-checks before
// every insert.
type Friendship struct {
	FriendshipID string `gorm:"type:char(36);primaryKey"`
	LoUserID     string `gorm:"type:char(36);not null;index:idx_friendship_pair,unique"`
	HiUserID     string `gorm:"type:char(36);not null;index:idx_friendship_pair,unique;index"`
	CreatedAt    time.Time
}

// TableName overrides the table name for Friendship
func (Friendship) TableName() string {
	return "friendships"
}

// NormalizePair returns the two user ids in canonical (lo, hi) order.
func NormalizePair(a, b string) (string, string) {
	if a > b {
		return b, a
	}
	return a, b
}
