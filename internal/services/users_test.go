package services_test

import (
	"testing"

	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/testutil"
	"github.com/socialgraph/friendsdb/internal/types"
	"gorm.io/gorm"
)

// mustCreateUser creates a user or fails the test
func mustCreateUser(t *testing.T, db *gorm.DB, name string, age int) services.UserView {
	t.Helper()
	view, err := services.CreateUser(db, name, age)
	if err != nil {
		t.Fatalf("Failed to create user %s: %v", name, err)
	}
	return view
}

func TestCreateUser_RoundTrip(t *testing.T) {
	db := testutil.OpenTestDB(t)

	created := mustCreateUser(t, db, "alice_01", 30)
	if created.ID == "" {
		t.Fatal("Expected a generated user id")
	}
	if created.CreatedAt.IsZero() {
		t.Error("Expected a creation timestamp")
	}

	got, err := services.GetUser(db, created.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.Name != "alice_01" || got.Age != 30 {
		t.Errorf("Expected alice_01/30, got %s/%d", got.Name, got.Age)
	}
	if got.Score != 0 {
		t.Errorf("Expected score 0 for a fresh user, got %v", got.Score)
	}
	if len(got.Friends) != 0 || len(got.Hobbies) != 0 {
		t.Errorf("Expected empty friends and hobbies, got %v / %v", got.Friends, got.Hobbies)
	}
}

func TestCreateUser_Validation(t *testing.T) {
	db := testutil.OpenTestDB(t)

	cases := []struct {
		label string
		name  string
		age   int
		field string
	}{
		{"name too short", "a", 30, "name"},
		{"name with spaces", "bad name", 30, "name"},
		{"name with symbols", "nope!", 30, "name"},
		{"age zero", "valid_name", 0, "age"},
		{"age too high", "valid_name", 150, "age"},
	}

	for _, tc := range cases {
		_, err := services.CreateUser(db, tc.name, tc.age)
		if types.KindOf(err) != types.KindValidationFailed {
			t.Errorf("%s: expected validation failure, got %v", tc.label, err)
			continue
		}
		if de := err.(*types.DomainError); de.Field != tc.field {
			t.Errorf("%s: expected field %q, got %q", tc.label, tc.field, de.Field)
		}
	}
}

func TestCreateUser_DuplicateName(t *testing.T) {
	db := testutil.OpenTestDB(t)

	mustCreateUser(t, db, "taken", 25)

	_, err := services.CreateUser(db, "taken", 40)
	if types.KindOf(err) != types.KindDuplicateName {
		t.Fatalf("Expected DuplicateName, got %v", err)
	}
}

func TestGetUser_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)

	_, err := services.GetUser(db, "no-such-id")
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestUpdateUser_Rename(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "before", 20)
	mustCreateUser(t, db, "other_user", 33)

	newName := "after"
	updated, err := services.UpdateUser(db, user.ID, &newName, nil)
	if err != nil {
		t.Fatalf("Failed to rename: %v", err)
	}
	if updated.Name != "after" || updated.Age != 20 {
		t.Errorf("Expected after/20, got %s/%d", updated.Name, updated.Age)
	}

	got, err := services.GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if got.Name != "after" {
		t.Errorf("Rename did not persist, got %s", got.Name)
	}

	// Renaming onto another user's name must be rejected
	collision := "other_user"
	_, err = services.UpdateUser(db, user.ID, &collision, nil)
	if types.KindOf(err) != types.KindDuplicateName {
		t.Fatalf("Expected DuplicateName on collision, got %v", err)
	}

	// Re-submitting the user's own name is not a collision
	same := "after"
	if _, err := services.UpdateUser(db, user.ID, &same, nil); err != nil {
		t.Fatalf("Own-name update should succeed, got %v", err)
	}
}

func TestUpdateUser_AgeOnly(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "aging", 20)

	age := 21
	updated, err := services.UpdateUser(db, user.ID, nil, &age)
	if err != nil {
		t.Fatalf("Failed to update age: %v", err)
	}
	if updated.Name != "aging" || updated.Age != 21 {
		t.Errorf("Expected aging/21, got %s/%d", updated.Name, updated.Age)
	}

	bad := 0
	_, err = services.UpdateUser(db, user.ID, nil, &bad)
	if types.KindOf(err) != types.KindValidationFailed {
		t.Fatalf("Expected validation failure for age 0, got %v", err)
	}
}

func TestUpdateUser_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)

	age := 30
	_, err := services.UpdateUser(db, "missing", nil, &age)
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestDeleteUser_BlockedByEdges(t *testing.T) {
	db := testutil.OpenTestDB(t)

	a := mustCreateUser(t, db, "edge_a", 30)
	b := mustCreateUser(t, db, "edge_b", 31)

	if _, err := services.LinkUsers(db, a.ID, b.ID); err != nil {
		t.Fatalf("Failed to link: %v", err)
	}

	err := services.DeleteUser(db, a.ID)
	if types.KindOf(err) != types.KindHasActiveEdges {
		t.Fatalf("Expected HasActiveEdges, got %v", err)
	}

	// Removing the edge unblocks deletion
	if err := services.UnlinkUsers(db, a.ID, b.ID); err != nil {
		t.Fatalf("Failed to unlink: %v", err)
	}
	if err := services.DeleteUser(db, a.ID); err != nil {
		t.Fatalf("Expected delete to succeed after unlink, got %v", err)
	}

	_, err = services.GetUser(db, a.ID)
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("Deleted user still readable: %v", err)
	}
}

func TestDeleteUser_CleansHobbyLinks(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "hobbyist", 28)
	if _, err := services.AttachHobby(db, user.ID, "Reading"); err != nil {
		t.Fatalf("Failed to attach hobby: %v", err)
	}

	if err := services.DeleteUser(db, user.ID); err != nil {
		t.Fatalf("Failed to delete user: %v", err)
	}

	// The hobby record survives; only the link is gone. A new user attaching
	// the same name reuses the record and starts with just that one hobby.
	other := mustCreateUser(t, db, "successor", 29)
	view, err := services.AttachHobby(db, other.ID, "Reading")
	if err != nil {
		t.Fatalf("Failed to re-attach hobby: %v", err)
	}
	if len(view.Hobbies) != 1 || view.Hobbies[0] != "Reading" {
		t.Errorf("Expected [Reading], got %v", view.Hobbies)
	}
}

func TestDeleteUser_NotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)

	err := services.DeleteUser(db, "missing")
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestListUsers(t *testing.T) {
	db := testutil.OpenTestDB(t)

	mustCreateUser(t, db, "zeta", 40)
	mustCreateUser(t, db, "alpha", 22)

	users, err := services.ListUsers(db)
	if err != nil {
		t.Fatalf("Failed to list users: %v", err)
	}
	if len(users) != 2 {
		t.Fatalf("Expected 2 users, got %d", len(users))
	}
	if users[0].Name != "alpha" || users[1].Name != "zeta" {
		t.Errorf("Expected name order [alpha zeta], got [%s %s]", users[0].Name, users[1].Name)
	}
}
