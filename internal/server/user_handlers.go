package server

import (
	"log/slog"

	"lostlink/internal/middleware"
	"lostlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RegisterRequest represents the user registration payload
type RegisterRequest struct {
	PhoneNumber     string `json:"phone_number"`
	RealName        string `json:"real_name"`
	Nickname        string `json:"nickname"`
	CI              string `json:"ci"`
	IdentitySubject string `json:"identity_subject"`
	ProfileImageURL string `json:"profile_image_url"`
}

// Register handles POST /api/auth/register
//
// Registration is the one endpoint a token holder without an account can
// reach; it links the external identity subject to a local user row.
func (s *Server) Register(c *fiber.Ctx) error {
	var req RegisterRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.PhoneNumber == "" || req.RealName == "" || req.Nickname == "" ||
		req.CI == "" || req.IdentitySubject == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing required registration fields."))
	}

	conflict, err := s.userRepo.HasConflict(c.UserContext(), req.Nickname, req.CI, req.IdentitySubject)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	if conflict {
		return models.RespondWithError(c, fiber.StatusConflict,
			models.NewConflictError("User with this info already exists."))
	}

	user := &models.User{
		PhoneNumber:     req.PhoneNumber,
		RealName:        req.RealName,
		Nickname:        req.Nickname,
		CI:              req.CI,
		IdentitySubject: req.IdentitySubject,
		ProfileImageURL: req.ProfileImageURL,
		IsActive:        true,
	}

	// The precheck is not atomic with the insert; a racing registration still
	// surfaces as a unique-constraint conflict from Create.
	if err := s.userRepo.Create(c.UserContext(), user); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user registered",
		slog.Uint64("user_id", uint64(user.ID)),
		slog.String("nickname", user.Nickname))

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
		"userId":  user.ID,
	})
}

// GetMyProfile handles GET /api/users/me
func (s *Server) GetMyProfile(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(s.currentUser(c))
}

// UpdateMyProfile handles PATCH /api/users/me
//
// Only nickname and profile image are caller-mutable; identity fields stay
// fixed for the life of the account.
func (s *Server) UpdateMyProfile(c *fiber.Ctx) error {
	patch, err := models.ParsePatch(c.Body(), "nickname", "profile_image_url")
	if err != nil {
		return models.RespondAppError(c, err)
	}

	user := s.currentUser(c)
	if err := s.userRepo.UpdateProfile(c.UserContext(), user.ID, patch); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Profile updated successfully",
	})
}

// DeactivateMyAccount handles DELETE /api/users/me
//
// Deactivation keeps the row so existing reports and sightings stay
// attributable; the session resolver keeps accepting the account, matching
// the soft-delete semantics of the profile store.
func (s *Server) DeactivateMyAccount(c *fiber.Ctx) error {
	user := s.currentUser(c)
	if err := s.userRepo.Deactivate(c.UserContext(), user.ID); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "user deactivated",
		slog.Uint64("user_id", uint64(user.ID)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "User account deactivated successfully.",
	})
}

// GetMyPosts handles GET /api/users/me/posts
func (s *Server) GetMyPosts(c *fiber.Ctx) error {
	user := s.currentUser(c)
	posts, err := s.feedRepo.MyPosts(c.UserContext(), user.ID)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(posts)
}
