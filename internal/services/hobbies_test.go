package services_test

import (
	"testing"

	"github.com/socialgraph/friendsdb/internal/models"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/testutil"
	"github.com/socialgraph/friendsdb/internal/types"
)

func TestAttachHobby_LazyCreateOnce(t *testing.T) {
	db := testutil.OpenTestDB(t)

	a := mustCreateUser(t, db, "reader_a", 30)
	b := mustCreateUser(t, db, "reader_b", 31)

	if _, err := services.AttachHobby(db, a.ID, "Reading"); err != nil {
		t.Fatalf("Failed to attach: %v", err)
	}
	if _, err := services.AttachHobby(db, b.ID, "Reading"); err != nil {
		t.Fatalf("Failed to attach: %v", err)
	}

	// Two users, one hobby record
	var count int64
	if err := db.Model(&models.Hobby{}).Where("name = ?", "Reading").Count(&count).Error; err != nil {
		t.Fatalf("Failed to count hobbies: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected exactly one Reading record, got %d", count)
	}
}

func TestAttachHobby_Idempotent(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "repeat", 30)

	if _, err := services.AttachHobby(db, user.ID, "Music"); err != nil {
		t.Fatalf("First attach failed: %v", err)
	}
	view, err := services.AttachHobby(db, user.ID, "Music")
	if err != nil {
		t.Fatalf("Repeated attach should be a no-op success, got %v", err)
	}
	if len(view.Hobbies) != 1 {
		t.Errorf("Expected one hobby after double attach, got %v", view.Hobbies)
	}

	var links int64
	if err := db.Model(&models.UserHobby{}).Where("user_id = ?", user.ID).Count(&links).Error; err != nil {
		t.Fatalf("Failed to count links: %v", err)
	}
	if links != 1 {
		t.Errorf("Expected exactly one link row, got %d", links)
	}
}

func TestAttachHobby_Validation(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "picky", 30)

	if _, err := services.AttachHobby(db, user.ID, "x"); types.KindOf(err) != types.KindValidationFailed {
		t.Errorf("Expected validation failure for short name, got %v", err)
	}
	if _, err := services.AttachHobby(db, user.ID, "  "); types.KindOf(err) != types.KindValidationFailed {
		t.Errorf("Expected validation failure for blank name, got %v", err)
	}
}

func TestAttachHobby_UserNotFound(t *testing.T) {
	db := testutil.OpenTestDB(t)

	_, err := services.AttachHobby(db, "missing", "Reading")
	if types.KindOf(err) != types.KindNotFound {
		t.Fatalf("Expected NotFound, got %v", err)
	}
}

func TestDetachHobby(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "detacher", 30)
	other := mustCreateUser(t, db, "bystander", 31)

	if _, err := services.AttachHobby(db, user.ID, "Chess"); err != nil {
		t.Fatalf("Failed to attach: %v", err)
	}

	// Unknown hobby name
	if err := services.DetachHobby(db, user.ID, "Curling"); types.KindOf(err) != types.KindNotFound {
		t.Errorf("Expected NotFound for unknown hobby, got %v", err)
	}

	// Known hobby, but no link for this user
	if err := services.DetachHobby(db, other.ID, "Chess"); types.KindOf(err) != types.KindNotFound {
		t.Errorf("Expected NotFound for missing link, got %v", err)
	}

	if err := services.DetachHobby(db, user.ID, "Chess"); err != nil {
		t.Fatalf("Failed to detach: %v", err)
	}

	view, err := services.GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	if len(view.Hobbies) != 0 {
		t.Errorf("Expected empty hobbies after detach, got %v", view.Hobbies)
	}

	// The hobby record itself survives the detach
	var count int64
	if err := db.Model(&models.Hobby{}).Where("name = ?", "Chess").Count(&count).Error; err != nil {
		t.Fatalf("Failed to count hobbies: %v", err)
	}
	if count != 1 {
		t.Errorf("Expected hobby record to remain, got %d rows", count)
	}
}

func TestAttachHobby_SortedNames(t *testing.T) {
	db := testutil.OpenTestDB(t)

	user := mustCreateUser(t, db, "sorted", 30)
	for _, name := range []string{"Woodworking", "Astronomy", "Chess"} {
		if _, err := services.AttachHobby(db, user.ID, name); err != nil {
			t.Fatalf("Failed to attach %s: %v", name, err)
		}
	}

	view, err := services.GetUser(db, user.ID)
	if err != nil {
		t.Fatalf("Failed to get user: %v", err)
	}
	expected := []string{"Astronomy", "Chess", "Woodworking"}
	if len(view.Hobbies) != len(expected) {
		t.Fatalf("Expected %d hobbies, got %v", len(expected), view.Hobbies)
	}
	for i, name := range expected {
		if view.Hobbies[i] != name {
			t.Errorf("Expected hobby %d to be %s, got %s", i, name, view.Hobbies[i])
		}
	}
}
