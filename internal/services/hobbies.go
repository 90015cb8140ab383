package services

import (
	"errors"
	"strings"

	"github.com/socialgraph/friendsdb/internal/store"
	"github.com/socialgraph/friendsdb/internal/types"
	"gorm.io/gorm"
)

// AttachHobby links a hobby to a user by name, creating the hobby record on
// first use. Re-attaching an already-attached hobby is an idempotent no-op
// success. Returns the user's refreshed aggregated view.
func AttachHobby(db *gorm.DB, userID, hobbyName string) (UserView, error) {
	hobbyName = strings.TrimSpace(hobbyName)
	if err := validateHobbyName(hobbyName); err != nil {
		return UserView{}, err
	}

	var view UserView
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := store.GetUserForUpdate(tx, userID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.NotFound("user %s not found", userID)
			}
			return err
		}

		hobby, err := store.FindOrCreateHobby(tx, hobbyName)
		if err != nil {
			return err
		}

		if err := store.UpsertUserHobby(tx, user.UserID, hobby.HobbyID); err != nil {
			return err
		}

		view, err = aggregateUser(tx, user)
		return err
	})
	return view, err
}

// DetachHobby removes the link between a user and a hobby name. Both an
// unknown hobby name and a missing link report not-found. The hobby record
// itself is never deleted.
func DetachHobby(db *gorm.DB, userID, hobbyName string) error {
	hobbyName = strings.TrimSpace(hobbyName)

	return db.Transaction(func(tx *gorm.DB) error {
		hobby, err := store.FindHobbyByName(tx, hobbyName)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.NotFound("hobby %q not found", hobbyName)
			}
			return err
		}

		rows, err := store.DeleteUserHobby(tx, userID, hobby.HobbyID)
		if err != nil {
			return err
		}
		if rows == 0 {
			return types.NotFound("user %s does not have hobby %q", userID, hobbyName)
		}
		return nil
	})
}
