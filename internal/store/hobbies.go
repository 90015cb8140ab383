package store

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/socialgraph/friendsdb/internal/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// FindHobbyByName fetches a hobby row by name.
func FindHobbyByName(db *gorm.DB, name string) (models.Hobby, error) {
	var hobby models.Hobby
	err := db.Where("name = ?", name).First(&hobby).Error
	return hobby, translate(err)
}

// FindOrCreateHobby returns the hobby row for a name, creating it on first
// use. A concurrent create of the same name loses against the name unique
// index and falls back to re-reading the winner's row.
func FindOrCreateHobby(db *gorm.DB, name string) (models.Hobby, error) {
	hobby, err := FindHobbyByName(db, name)
	if err == nil {
		return hobby, nil
	}
	if !errors.Is(err, ErrNotFound) {
		return models.Hobby{}, err
	}

	hobby = models.Hobby{
		HobbyID:   uuid.NewString(),
		Name:      name,
		CreatedAt: time.Now().UTC(),
	}
	if err := translate(db.Create(&hobby).Error); err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			return FindHobbyByName(db, name)
		}
		return models.Hobby{}, err
	}
	return hobby, nil
}

// UpsertUserHobby links a user to a hobby. Re-attaching an existing pair is
// a no-op thanks to the DO NOTHING conflict clause over the composite key.
func UpsertUserHobby(db *gorm.DB, userID, hobbyID string) error {
	link := models.UserHobby{UserID: userID, HobbyID: hobbyID}
	return translate(db.Clauses(clause.OnConflict{DoNothing: true}).Create(&link).Error)
}

// DeleteUserHobby removes a user-hobby link and reports how many rows went
// away (0 or 1).
func DeleteUserHobby(db *gorm.DB, userID, hobbyID string) (int64, error) {
	result := db.Where("user_id = ? AND hobby_id = ?", userID, hobbyID).Delete(&models.UserHobby{})
	return result.RowsAffected, translate(result.Error)
}

// DeleteUserHobbiesForUser removes every hobby link owned by a user, as part
// of user deletion.
func DeleteUserHobbiesForUser(db *gorm.DB, userID string) error {
	return translate(db.Where("user_id = ?", userID).Delete(&models.UserHobby{}).Error)
}

// ListHobbyNamesForUser returns the names of every hobby attached to a user.
func ListHobbyNamesForUser(db *gorm.DB, userID string) ([]string, error) {
	var names []string
	err := db.Model(&models.Hobby{}).
		Joins("JOIN user_hobbies ON user_hobbies.hobby_id = hobbies.hobby_id").
		Where("user_hobbies.user_id = ?", userID).
		Order("hobbies.name").
		Pluck("hobbies.name", &names).Error
	return names, translate(err)
}

// ListHobbyIDsForUser returns the hobby ids attached to a user.
func ListHobbyIDsForUser(db *gorm.DB, userID string) ([]string, error) {
	var ids []string
	err := db.Model(&models.UserHobby{}).
		Where("user_id = ?", userID).
		Pluck("hobby_id", &ids).Error
	return ids, translate(err)
}

// ListUserHobbyLinks returns every user-hobby link in the store, for
// set-oriented projections that need all users' hobby sets in one read.
func ListUserHobbyLinks(db *gorm.DB) ([]models.UserHobby, error) {
	var links []models.UserHobby
	err := db.Find(&links).Error
	return links, translate(err)
}

// ListAllHobbies returns every hobby row.
func ListAllHobbies(db *gorm.DB) ([]models.Hobby, error) {
	var hobbies []models.Hobby
	err := db.Order("name").Find(&hobbies).Error
	return hobbies, translate(err)
}
