package handlers_test

import (
	"fmt"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/socialgraph/friendsdb/internal/handlers"
	"github.com/socialgraph/friendsdb/internal/services"
	"github.com/socialgraph/friendsdb/internal/testutil"
	"gorm.io/gorm"
)

// setupGraphApp wires the friendship, hobby and graph routes
func setupGraphApp(t *testing.T) (*fiber.App, *gorm.DB) {
	t.Helper()
	db := testutil.OpenTestDB(t)

	app := fiber.New()
	friendshipHandler := &handlers.FriendshipHandler{DB: db}
	hobbyHandler := &handlers.HobbyHandler{DB: db}
	graphHandler := &handlers.GraphHandler{DB: db}
	app.Post("/api/friendships", friendshipHandler.LinkUsers)
	app.Delete("/api/friendships", friendshipHandler.UnlinkUsers)
	app.Post("/api/users/:id/hobbies", hobbyHandler.AttachHobbies)
	app.Delete("/api/users/:id/hobbies/:name", hobbyHandler.DetachHobby)
	app.Get("/api/graph", graphHandler.GetGraph)

	return app, db
}

func createPair(t *testing.T, db *gorm.DB) (services.UserView, services.UserView) {
	t.Helper()
	a, err := services.CreateUser(db, "pair_a", 30)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	b, err := services.CreateUser(db, "pair_b", 31)
	if err != nil {
		t.Fatalf("Failed to create user: %v", err)
	}
	return a, b
}

func TestLinkHandler(t *testing.T) {
	app, db := setupGraphApp(t)
	a, b := createPair(t, db)

	body := fmt.Sprintf(`{"userA":%q,"userB":%q}`, a.ID, b.ID)
	req := httptest.NewRequest("POST", "/api/friendships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 201)

	var edge services.FriendshipEdge
	testutil.ParseJSON(t, resp, &edge)
	if edge.Source > edge.Target {
		t.Errorf("Edge not in canonical order: (%s,%s)", edge.Source, edge.Target)
	}

	// Swapped order is a conflict, not a second edge
	swapped := fmt.Sprintf(`{"userA":%q,"userB":%q}`, b.ID, a.ID)
	req = httptest.NewRequest("POST", "/api/friendships", strings.NewReader(swapped))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 409)
}

func TestLinkHandler_SelfLink(t *testing.T) {
	app, db := setupGraphApp(t)
	a, _ := createPair(t, db)

	body := fmt.Sprintf(`{"userA":%q,"userB":%q}`, a.ID, a.ID)
	req := httptest.NewRequest("POST", "/api/friendships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 400)
}

func TestUnlinkHandler_NotFound(t *testing.T) {
	app, db := setupGraphApp(t)
	a, b := createPair(t, db)

	body := fmt.Sprintf(`{"userA":%q,"userB":%q}`, a.ID, b.ID)
	req := httptest.NewRequest("DELETE", "/api/friendships", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 404)
}

func TestAttachHobbiesHandler_SingleAndList(t *testing.T) {
	app, db := setupGraphApp(t)
	a, _ := createPair(t, db)

	// Single string form
	req := httptest.NewRequest("POST", "/api/users/"+a.ID+"/hobbies", strings.NewReader(`{"hobbies":"Reading"}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 200)

	// List form
	req = httptest.NewRequest("POST", "/api/users/"+a.ID+"/hobbies", strings.NewReader(`{"hobbies":["Music","Chess"]}`))
	req.Header.Set("Content-Type", "application/json")
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 200)

	var view services.UserView
	testutil.ParseJSON(t, resp, &view)
	if len(view.Hobbies) != 3 {
		t.Errorf("Expected 3 hobbies, got %v", view.Hobbies)
	}
}

func TestDetachHobbyHandler(t *testing.T) {
	app, db := setupGraphApp(t)
	a, _ := createPair(t, db)

	if _, err := services.AttachHobby(db, a.ID, "Chess"); err != nil {
		t.Fatalf("Failed to attach: %v", err)
	}

	req := httptest.NewRequest("DELETE", "/api/users/"+a.ID+"/hobbies/Chess", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 204)

	// Second detach: the link is gone
	req = httptest.NewRequest("DELETE", "/api/users/"+a.ID+"/hobbies/Chess", nil)
	resp, err = app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 404)
}

func TestGraphHandler(t *testing.T) {
	app, db := setupGraphApp(t)
	a, b := createPair(t, db)

	if _, err := services.LinkUsers(db, a.ID, b.ID); err != nil {
		t.Fatalf("Failed to link: %v", err)
	}

	req := httptest.NewRequest("GET", "/api/graph", nil)
	resp, err := app.Test(req)
	if err != nil {
		t.Fatalf("Failed to execute request: %v", err)
	}
	testutil.AssertStatus(t, resp, 200)

	var result services.GraphResult
	testutil.ParseJSON(t, resp, &result)
	if len(result.Nodes) != 2 {
		t.Errorf("Expected 2 nodes, got %d", len(result.Nodes))
	}
	if len(result.Edges) != 1 {
		t.Errorf("Expected 1 edge, got %d", len(result.Edges))
	}
}
