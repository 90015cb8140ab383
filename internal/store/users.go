package store

import (
	"errors"

	"github.com/socialgraph/friendsdb/internal/models"
	"gorm.io/gorm"
)

// The store package is the persistence adapter for the graph service. Every
// function takes the *gorm.DB (or transaction handle) it should run on and
// executes exactly one set-oriented read or write. No business rules live
// here; invariants are enforced by internal/services.

// InsertUser persists a new user row. Returns ErrDuplicateKey when the name
// unique index rejects the write.
func InsertUser(db *gorm.DB, user *models.User) error {
	if err := translate(db.Create(user).Error); err != nil {
		if errors.Is(err, ErrUniqueViolation) {
			return ErrDuplicateKey
		}
		return err
	}
	return nil
}

// GetUser fetches a user row by id.
func GetUser(db *gorm.DB, id string) (models.User, error) {
	var user models.User
	err := db.Where("user_id = ?", id).First(&user).Error
	return user, translate(err)
}

// GetUserForUpdate fetches a user row under a row lock, serializing
// concurrent mutations of the same user for the rest of the transaction.
func GetUserForUpdate(tx *gorm.DB, id string) (models.User, error) {
	var user models.User
	err := tx.Clauses(lockingClause(tx)...).Where("user_id = ?", id).First(&user).Error
	return user, translate(err)
}

// FindUserByName fetches a user row by display name.
func FindUserByName(db *gorm.DB, name string) (models.User, error) {
	var user models.User
	err := db.Where("name = ?", name).First(&user).Error
	return user, translate(err)
}

// UpdateUser applies the supplied column values to an existing user row.
func UpdateUser(db *gorm.DB, id string, fields map[string]interface{}) error {
	result := db.Model(&models.User{}).Where("user_id = ?", id).Updates(fields)
	if err := translate(result.Error); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// DeleteUser removes a user row.
func DeleteUser(db *gorm.DB, id string) error {
	result := db.Where("user_id = ?", id).Delete(&models.User{})
	if err := translate(result.Error); err != nil {
		return err
	}
	if result.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ListAllUsers returns every user row.
func ListAllUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("name").Find(&users).Error
	return users, translate(err)
}
