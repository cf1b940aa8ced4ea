package server

import (
	"net/http"
	"testing"
	"time"

	"lostlink/internal/models"
)

func TestRegister_CreatesUser(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "unused"})

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"phone_number":     "010-1111-2222",
		"real_name":        "Dana Choi",
		"nickname":         "dana",
		"ci":               "ci-dana",
		"identity_subject": "sub-dana",
	})
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["message"] != "User registered successfully" {
		t.Fatalf("unexpected message: %v", body["message"])
	}
	if body["userId"] == nil {
		t.Fatal("expected userId in response")
	}

	var user models.User
	if err := db.Where("identity_subject = ?", "sub-dana").First(&user).Error; err != nil {
		t.Fatalf("user not persisted: %v", err)
	}
	if !user.IsActive {
		t.Fatal("new user should be active")
	}
}

func TestRegister_MissingFields(t *testing.T) {
	t.Parallel()
	app, _ := newTestApp(t, stubVerifier{subject: "unused"})

	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"phone_number": "010-1111-2222",
		"nickname":     "incomplete",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestRegister_Conflict(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "unused"})
	seedUser(t, db, "taken", "sub-taken")

	// Same nickname, everything else fresh.
	resp := doJSON(t, app, http.MethodPost, "/api/auth/register", "", map[string]interface{}{
		"phone_number":     "010-3333-4444",
		"real_name":        "Copy Cat",
		"nickname":         "taken",
		"ci":               "ci-copycat",
		"identity_subject": "sub-copycat",
	})
	if resp.StatusCode != http.StatusConflict {
		t.Fatalf("expected 409, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "User with this info already exists." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestUpdateMyProfile(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "sub-me"})
	user := seedUser(t, db, "oldnick", "sub-me")

	resp := doJSON(t, app, http.MethodPatch, "/api/users/me", "tok", map[string]interface{}{
		"nickname": "newnick",
		"real_name": "should be ignored",
	})
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.Nickname != "newnick" {
		t.Fatalf("expected newnick, got %s", reloaded.Nickname)
	}
	// real_name is not on the allow-list.
	if reloaded.RealName != user.RealName {
		t.Fatalf("real_name must not be patchable, got %s", reloaded.RealName)
	}
}

func TestUpdateMyProfile_EmptyPatch(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "sub-me"})
	seedUser(t, db, "unchanged", "sub-me")

	resp := doJSON(t, app, http.MethodPatch, "/api/users/me", "tok", map[string]interface{}{
		"real_name": "only off-list keys",
	})
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
	body := decodeBody(t, resp)
	if body["error"] != "No fields to update provided." {
		t.Fatalf("unexpected error message: %v", body["error"])
	}
}

func TestDeactivateMyAccount(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "sub-me"})
	user := seedUser(t, db, "quitter", "sub-me")

	resp := doJSON(t, app, http.MethodDelete, "/api/users/me", "tok", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var reloaded models.User
	if err := db.First(&reloaded, user.ID).Error; err != nil {
		t.Fatalf("reload: %v", err)
	}
	if reloaded.IsActive {
		t.Fatal("expected account deactivated")
	}
}

func TestGetMyPosts(t *testing.T) {
	t.Parallel()
	app, db := newTestApp(t, stubVerifier{subject: "sub-me"})
	me := seedUser(t, db, "poster", "sub-me")
	other := seedUser(t, db, "otherposter", "sub-other")

	base := time.Date(2026, 7, 1, 9, 0, 0, 0, time.UTC)
	if err := db.Create(&models.MissingPerson{
		ReporterID: me.ID, Name: "Mine", LastSeenAt: base,
		LastSeenLocation: "Here", Status: models.StatusMissing, CreatedAt: base,
	}).Error; err != nil {
		t.Fatalf("create person report: %v", err)
	}
	if err := db.Create(&models.MissingAnimal{
		OwnerID: me.ID, AnimalType: "cat", AnimalName: "Mine Too", LastSeenAt: base,
		LastSeenLocation: "Here", Status: models.StatusMissing, CreatedAt: base.Add(time.Hour),
	}).Error; err != nil {
		t.Fatalf("create animal report: %v", err)
	}
	if err := db.Create(&models.MissingPerson{
		ReporterID: other.ID, Name: "Not Mine", LastSeenAt: base,
		LastSeenLocation: "There", Status: models.StatusMissing, CreatedAt: base,
	}).Error; err != nil {
		t.Fatalf("create other report: %v", err)
	}

	resp := doJSON(t, app, http.MethodGet, "/api/users/me/posts", "tok", nil)
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var posts []models.MyPostEntry
	decodeInto(t, resp, &posts)
	if len(posts) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(posts))
	}
	if posts[0].Type != models.ReportTypeAnimal {
		t.Fatalf("expected newest (animal) first, got %+v", posts[0])
	}
}
