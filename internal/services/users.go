package services

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/socialgraph/friendsdb/internal/models"
	"github.com/socialgraph/friendsdb/internal/store"
	"github.com/socialgraph/friendsdb/internal/types"
	"gorm.io/gorm"
)

// UserView is the aggregated read model for a single user: stored fields
// plus the derived friend list, hobby list and popularity score. It is
// computed on every read, never stored.
type UserView struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Age       int       `json:"age"`
	CreatedAt time.Time `json:"createdAt"`
	Friends   []string  `json:"friends"`
	Hobbies   []string  `json:"hobbies"`
	Score     float64   `json:"score"`
}

// UserSummary is the flat row used by the list endpoint.
type UserSummary struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Age  int    `json:"age"`
}

// CreateUser validates and persists a new user, returning its aggregated
// view (no friends, no hobbies, score 0).
func CreateUser(db *gorm.DB, name string, age int) (UserView, error) {
	if err := validateUserName(name); err != nil {
		return UserView{}, err
	}
	if err := validateAge(age); err != nil {
		return UserView{}, err
	}

	var view UserView
	err := db.Transaction(func(tx *gorm.DB) error {
		if _, err := store.FindUserByName(tx, name); err == nil {
			return types.DuplicateName(name)
		} else if !errors.Is(err, store.ErrNotFound) {
			return err
		}

		user := models.User{
			UserID:    uuid.NewString(),
			Name:      name,
			Age:       age,
			CreatedAt: time.Now().UTC(),
		}
		if err := store.InsertUser(tx, &user); err != nil {
			// Lost a race against a concurrent create holding the same name.
			if errors.Is(err, store.ErrDuplicateKey) {
				return types.DuplicateName(name)
			}
			return err
		}

		var err error
		view, err = aggregateUser(tx, user)
		return err
	})
	return view, err
}

// GetUser returns the aggregated view for a user id.
func GetUser(db *gorm.DB, id string) (UserView, error) {
	var view UserView
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := store.GetUser(tx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.NotFound("user %s not found", id)
			}
			return err
		}

		view, err = aggregateUser(tx, user)
		return err
	})
	return view, err
}

// UpdateUser applies an optional rename and/or age change, re-validating
// whatever was supplied, and returns the refreshed aggregated view.
func UpdateUser(db *gorm.DB, id string, name *string, age *int) (UserView, error) {
	if name != nil {
		if err := validateUserName(*name); err != nil {
			return UserView{}, err
		}
	}
	if age != nil {
		if err := validateAge(*age); err != nil {
			return UserView{}, err
		}
	}

	var view UserView
	err := db.Transaction(func(tx *gorm.DB) error {
		user, err := store.GetUserForUpdate(tx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.NotFound("user %s not found", id)
			}
			return err
		}

		fields := map[string]interface{}{}
		if name != nil && *name != user.Name {
			if holder, err := store.FindUserByName(tx, *name); err == nil {
				if holder.UserID != id {
					return types.DuplicateName(*name)
				}
			} else if !errors.Is(err, store.ErrNotFound) {
				return err
			}
			fields["name"] = *name
			user.Name = *name
		}
		if age != nil && *age != user.Age {
			fields["age"] = *age
			user.Age = *age
		}

		if len(fields) > 0 {
			if err := store.UpdateUser(tx, id, fields); err != nil {
				if errors.Is(err, store.ErrUniqueViolation) {
					return types.DuplicateName(*name)
				}
				return err
			}
		}

		view, err = aggregateUser(tx, user)
		return err
	})
	return view, err
}

// DeleteUser removes a user and its hobby links. Deletion is a hard
// precondition on zero incident friendships; edges are never cascaded.
func DeleteUser(db *gorm.DB, id string) error {
	return db.Transaction(func(tx *gorm.DB) error {
		if _, err := store.GetUserForUpdate(tx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return types.NotFound("user %s not found", id)
			}
			return err
		}

		edges, err := store.CountFriendshipsForUser(tx, id)
		if err != nil {
			return err
		}
		if edges > 0 {
			return types.HasActiveEdges(id, edges)
		}

		if err := store.DeleteUserHobbiesForUser(tx, id); err != nil {
			return err
		}
		if err := store.DeleteUser(tx, id); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				// The row lock should prevent this; treat it as a race.
				return types.Conflict("user %s was removed concurrently", id)
			}
			return err
		}
		return nil
	})
}

// ListUsers returns a flat summary of every user, ordered by name.
func ListUsers(db *gorm.DB) ([]UserSummary, error) {
	users, err := store.ListAllUsers(db)
	if err != nil {
		return nil, err
	}

	summaries := make([]UserSummary, 0, len(users))
	for _, user := range users {
		summaries = append(summaries, UserSummary{
			ID:   user.UserID,
			Name: user.Name,
			Age:  user.Age,
		})
	}
	return summaries, nil
}

// aggregateUser builds the read model for one user within the caller's
// transaction so the friend list, hobby list and score come from a single
// consistent snapshot.
func aggregateUser(tx *gorm.DB, user models.User) (UserView, error) {
	friends, err := store.ListFriendIDsForUser(tx, user.UserID)
	if err != nil {
		return UserView{}, err
	}
	sort.Strings(friends)

	hobbyNames, err := store.ListHobbyNamesForUser(tx, user.UserID)
	if err != nil {
		return UserView{}, err
	}

	score, err := popularityScore(tx, user.UserID, friends)
	if err != nil {
		return UserView{}, err
	}

	return UserView{
		ID:        user.UserID,
		Name:      user.Name,
		Age:       user.Age,
		CreatedAt: user.CreatedAt,
		Friends:   friends,
		Hobbies:   hobbyNames,
		Score:     score,
	}, nil
}
