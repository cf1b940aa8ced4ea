package server

import (
	"log/slog"
	"time"

	"lostlink/internal/middleware"
	"lostlink/internal/models"
	"lostlink/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreateAnimalRequest represents the missing-animal report payload
type CreateAnimalRequest struct {
	AnimalType       string    `json:"animal_type"`
	Breed            string    `json:"breed"`
	AnimalName       string    `json:"animal_name"`
	Gender           string    `json:"gender"`
	Age              *int      `json:"age"`
	LastSeenAt       time.Time `json:"last_seen_at"`
	LastSeenLocation string    `json:"last_seen_location"`
	Description      string    `json:"description"`
	MainPhotoURL     string    `json:"main_photo_url"`
}

var animalPatchFields = []string{
	"status", "animal_type", "breed", "animal_name", "gender", "age",
	"last_seen_at", "last_seen_location", "description", "main_photo_url",
}

// CreateMissingAnimal handles POST /api/missing-animals
func (s *Server) CreateMissingAnimal(c *fiber.Ctx) error {
	var req CreateAnimalRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.AnimalType == "" || req.LastSeenAt.IsZero() || req.LastSeenLocation == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Missing required fields: animal_type, last_seen_at, last_seen_location."))
	}

	user := s.currentUser(c)
	report := &models.MissingAnimal{
		OwnerID:          user.ID,
		AnimalType:       req.AnimalType,
		Breed:            req.Breed,
		AnimalName:       req.AnimalName,
		Gender:           req.Gender,
		Age:              req.Age,
		LastSeenAt:       req.LastSeenAt,
		LastSeenLocation: req.LastSeenLocation,
		Description:      req.Description,
		MainPhotoURL:     req.MainPhotoURL,
		Status:           models.StatusMissing,
	}

	if err := s.animalRepo.Create(c.UserContext(), report); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "missing animal report created",
		slog.Uint64("report_id", uint64(report.ID)))
	middleware.ReportsCreated.WithLabelValues("animal").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":  "Missing animal report registered successfully",
		"reportId": report.ID,
	})
}

// ListMissingAnimals handles GET /api/missing-animals
func (s *Server) ListMissingAnimals(c *fiber.Ctx) error {
	reports, err := s.animalRepo.List(c.UserContext(), parseLimit(c))
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(reports)
}

// GetMissingAnimal handles GET /api/missing-animals/:id
func (s *Server) GetMissingAnimal(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	report, err := s.animalRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(report)
}

// UpdateMissingAnimal handles PATCH /api/missing-animals/:id
func (s *Server) UpdateMissingAnimal(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	user := s.currentUser(c)
	if err := repository.CheckOwnership(c.UserContext(), s.animalRepo, id, user.ID); err != nil {
		return models.RespondAppError(c, err)
	}

	patch, err := models.ParsePatch(c.Body(), animalPatchFields...)
	if err != nil {
		return models.RespondAppError(c, err)
	}

	if err := s.animalRepo.Update(c.UserContext(), id, patch); err != nil {
		return models.RespondAppError(c, err)
	}

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report updated successfully",
	})
}

// DeleteMissingAnimal handles DELETE /api/missing-animals/:id
func (s *Server) DeleteMissingAnimal(c *fiber.Ctx) error {
	id, ok := parseID(c)
	if !ok {
		return nil
	}

	user := s.currentUser(c)
	if err := repository.CheckOwnership(c.UserContext(), s.animalRepo, id, user.ID); err != nil {
		return models.RespondAppError(c, err)
	}

	if err := s.animalRepo.Delete(c.UserContext(), id); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "missing animal report deleted",
		slog.Uint64("report_id", uint64(id)))

	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message": "Report deleted successfully",
	})
}
