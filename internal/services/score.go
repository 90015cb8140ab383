package services

import (
	"github.com/socialgraph/friendsdb/internal/models"
	"github.com/socialgraph/friendsdb/internal/store"
	"gorm.io/gorm"
)

// Popularity score for a user U:
//
//	score(U) = |F(U)| + 0.5 * |⋃ over f in F(U) of (H(U) ∩ H(f))|
//
// where F(U) is the set of direct friends and H(U) the set of attached
// hobby ids. A hobby shared with several friends still counts once, so a
// single popular hobby cannot inflate the score across the friend list.
// The score is recomputed on every read; any edge or hobby mutation would
// invalidate a cached value.

// popularityScore computes the score within the caller's transaction.
// Friends and the user's hobbies resolve with one read each; the shared
// hobby overlap is a single DISTINCT count over the link table rather than
// one round trip per friend.
func popularityScore(tx *gorm.DB, userID string, friendIDs []string) (float64, error) {
	if len(friendIDs) == 0 {
		return 0, nil
	}

	hobbyIDs, err := store.ListHobbyIDsForUser(tx, userID)
	if err != nil {
		return 0, err
	}

	shared, err := countSharedHobbies(tx, friendIDs, hobbyIDs)
	if err != nil {
		return 0, err
	}

	return float64(len(friendIDs)) + 0.5*float64(shared), nil
}

// countSharedHobbies counts the distinct hobby ids from the given set that
// at least one of the given users also holds.
func countSharedHobbies(tx *gorm.DB, friendIDs, hobbyIDs []string) (int64, error) {
	if len(friendIDs) == 0 || len(hobbyIDs) == 0 {
		return 0, nil
	}

	var count int64
	err := tx.Model(&models.UserHobby{}).
		Distinct("hobby_id").
		Where("user_id IN ?", friendIDs).
		Where("hobby_id IN ?", hobbyIDs).
		Count(&count).Error
	return count, err
}
