package services

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/socialgraph/friendsdb/internal/models"
	"github.com/socialgraph/friendsdb/internal/store"
	"github.com/socialgraph/friendsdb/internal/types"
	"gorm.io/gorm"
)

// FriendshipEdge is the result of a successful link: the edge id and its
// endpoints in canonical orientation.
type FriendshipEdge struct {
	ID        string    `json:"id"`
	Source    string    `json:"source"`
	Target    string    `json:"target"`
	CreatedAt time.Time `json:"createdAt"`
}

// LinkUsers creates the friendship edge between two users. The pair is
// normalized to canonical order before any check, so Link(A,B) and
// Link(B,A) resolve to the same stored row.
func LinkUsers(db *gorm.DB, userA, userB string) (FriendshipEdge, error) {
	if userA == userB {
		return FriendshipEdge{}, types.SelfLink(userA)
	}
	lo, hi := models.NormalizePair(userA, userB)

	var result FriendshipEdge
	err := db.Transaction(func(tx *gorm.DB) error {
		// Lock both endpoints in canonical order. Concurrent Link calls for
		// the same pair queue up here regardless of argument order, and a
		// racing DeleteUser cannot pull an endpoint out from under the edge.
		for _, id := range []string{lo, hi} {
			if _, err := store.GetUserForUpdate(tx, id); err != nil {
				if errors.Is(err, store.ErrNotFound) {
					return types.NotFound("user %s not found", id)
				}
				return err
			}
		}

		if _, err := store.FindFriendship(tx, lo, hi); err == nil {
			return types.AlreadyLinked(lo, hi)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		edge := models.Friendship{
			FriendshipID: uuid.NewString(),
			LoUserID:     lo,
			HiUserID:     hi,
			CreatedAt:    time.Now().UTC(),
		}
		if err := store.InsertFriendship(tx, &edge); err != nil {
			// The pair index caught a race the pre-check missed.
			if errors.Is(err, store.ErrUniqueViolation) {
				return types.AlreadyLinked(lo, hi)
			}
			return err
		}

		result = FriendshipEdge{
			ID:        edge.FriendshipID,
			Source:    edge.LoUserID,
			Target:    edge.HiUserID,
			CreatedAt: edge.CreatedAt,
		}
		return nil
	})
	return result, err
}

// UnlinkUsers removes the friendship edge between two users. Removal is
// tolerant of unknown user ids, but a missing edge is still reported.
func UnlinkUsers(db *gorm.DB, userA, userB string) error {
	lo, hi := models.NormalizePair(userA, userB)

	return db.Transaction(func(tx *gorm.DB) error {
		rows, err := store.DeleteFriendship(tx, lo, hi)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.NotFound("no friendship between %s and %s", lo, hi)
		}
		return nil
	})
}
