package server

import (
	"log/slog"
	"time"

	"lostlink/internal/middleware"
	"lostlink/internal/models"
	"lostlink/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreatePersonRequest represents the missing-person report payload
type CreatePersonRequest struct {
	MissingPersonName string    `json:"missing_person_name"`
	Gender            string    `json:"gender"`
	AgeAtMissing      *int      `json:"age_at_missing"`
	Height            *float64  `json:"height"`
	Weight            *float64  `json:"weight"`
	LastSeenAt        time.Time `json:"last_seen_at"`
	LastSeenLocation  string    `json:"last_seen_location"`
	Description       string    `json:"description"`
	MainPhotoURL      string    `json:"main_photo_url"`
}

// personPatchFields is the allow-list for PATCH /api/missing-persons/:id.
// Unknown keys are ignored rather than rejected.
var personPatchFields = []string{
	"status", "missing_person_name", "gender", "age_at_missing",
	"height", "weight", "last_seen_at", "last_seen_location",
	"description", "main_photo_url",
}

// CreateMissingPerson handles POST /api/missing-persons
func (s *Server) CreateMissingPerson(c *fiber.Ctx) error {
	var req CreatePersonRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.MissingPersonName == "" || req.LastSeenAt.IsZero() || req.LastSeenLocation == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing required fields: missing_person_name, last_seen_at, last_seen_location."))
	}

	user := s.currentUser(c)
	report := &models.MissingPerson{
		ReporterID:       user.ID,
		Name:             req.MissingPersonName,
		Gender:           req.Gender,
		AgeAtMissing:     req.AgeAtMissing,
		Height:           req.Height,
		Weight:           req.Weight,
		LastSeenAt:       req.LastSeenAt,
		LastSeenLocation: req.LastSeenLocation,
		Description:      req.Description,
		MainPhotoURL:     req.MainPhotoURL,
		Status:           models.StatusMissing,
	}

	if err := s.personRepo.Create(c.UserContext(), report); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "missing person report created",
		slog.Uint64("report_id", uint64(report.ID)))
	middleware.ReportsCreated.WithLabelValues("person").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Missing person report registered successfully",
		"reportId": report.ID,
	})
}

// ListMissingPersons handles GET /api/missing-persons
func (s *Server) ListMissingPersons(c *fiber.Ctx) error {
	reports, err := s.personRepo.List(c.UserContext(), parseLimit(c))
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reports)
}

// GetMissingPerson handles GET /api/missing-persons/:id
func (s *Server) GetMissingPerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	report, err := s.personRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// UpdateMissingPerson handles PATCH /api/missing-persons/:id
//
// The ownership check runs before the body is inspected, so a non-owner
// gets 403 (or 404 for an absent report) even with an empty patch.
func (s *Server) UpdateMissingPerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	user := s.currentUser(c)
	if err := repository.CheckOwnership(c.UserContext(), s.personRepo, id, user.ID); err != nil {
		return models.RespondAppError(c, err)
	}

	patch, err := models.ParsePatch(c.Body(), personPatchFields...)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	if err := s.personRepo.Update(c.UserContext(), id, patch); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report updated successfully",
	})
}

// DeleteMissingPerson handles DELETE /api/missing-persons/:id
func (s *Server) DeleteMissingPerson(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	user := s.currentUser(c)
	if err := repository.CheckOwnership(c.UserContext(), s.personRepo, id, user.ID); err != nil {
		return models.RespondAppError(c, err)
	}

	if err := s.personRepo.Delete(c.UserContext(), id); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "missing person report deleted",
		slog.Uint64("report_id", uint64(id)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report deleted successfully",
	})
}
