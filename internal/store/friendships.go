package store

import (
	"github.com/socialgraph/friendsdb/internal/models"
	"gorm.io/gorm"
)

// InsertFriendship persists an edge already normalized to canonical (lo, hi)
// order. Returns ErrUniqueViolation when the pair index rejects the write,
// which the service reports as an already-linked race.
func InsertFriendship(db *gorm.DB, edge *models.Friendship) error {
	return translate(db.Create(edge).Error)
}

// FindFriendship fetches the edge for a canonical pair.
func FindFriendship(db *gorm.DB, loID, hiID string) (models.Friendship, error) {
	var edge models.Friendship
	err := db.Where("lo_user_id = ? AND hi_user_id = ?", loID, hiID).First(&edge).Error
	return edge, translate(err)
}

// DeleteFriendship removes the edge for a canonical pair and reports how
// many rows went away (0 or 1).
func DeleteFriendship(db *gorm.DB, loID, hiID string) (int64, error) {
	result := db.Where("lo_user_id = ? AND hi_user_id = ?", loID, hiID).Delete(&models.Friendship{})
	return result.RowsAffected, translate(result.Error)
}

// CountFriendshipsForUser counts edges incident to a user on either side.
func CountFriendshipsForUser(db *gorm.DB, id string) (int64, error) {
	var count int64
	err := db.Model(&models.Friendship{}).
		Where("lo_user_id = ? OR hi_user_id = ?", id, id).
		Count(&count).Error
	return count, translate(err)
}

// ListFriendIDsForUser returns the ids of every user directly connected to
// the given user, from either edge orientation.
func ListFriendIDsForUser(db *gorm.DB, id string) ([]string, error) {
	var edges []models.Friendship
	if err := db.Where("lo_user_id = ? OR hi_user_id = ?", id, id).Find(&edges).Error; err != nil {
		return nil, translate(err)
	}

	friends := make([]string, 0, len(edges))
	for _, edge := range edges {
		if edge.LoUserID == id {
			friends = append(friends, edge.HiUserID)
		} else {
			friends = append(friends, edge.LoUserID)
		}
	}
	return friends, nil
}

// ListAllFriendships returns every edge in canonical orientation.
func ListAllFriendships(db *gorm.DB) ([]models.Friendship, error) {
	var edges []models.Friendship
	err := db.Order("lo_user_id, hi_user_id").Find(&edges).Error
	return edges, translate(err)
}
