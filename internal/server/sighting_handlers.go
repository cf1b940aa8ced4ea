package server

import (
	"log/slog"
	"time"

	"lostlink/internal/middleware"
	"lostlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateSightingRequest represents the sighting payload for both report kinds
type CreateSightingRequest struct {
	SightingAt       time.Time `json:"sighting_at"`
	SightingLocation string    `json:"sighting_location"`
	Description      string    `json:"description"`
	SightingPhotoURL string    `json:"sighting_photo_url"`
}

func (r *CreateSightingRequest) validate() *models.AppError {
	if r.SightingAt.IsZero() || r.SightingLocation == "" {
		return models.NewValidationError("Missing required fields: sighting_at, sighting_location.")
	}
	return nil
}

// CreatePersonSighting handles POST /api/missing-persons/:id/sightings
//
// Anyone signed in can attach a sighting; ownership of the report is not
// required. A nonexistent parent surfaces as 404 via the FK violation.
func (s *Server) CreatePersonSighting(c *fiber.Ctx) error {
	reportID, ok := parseID(c)
	if !ok {
		return nil
	}

	var req CreateSightingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := req.validate(); err != nil {
		return models.RespondAppError(c, err)
	}

	user := s.currentUser(c)
	sighting := &models.PersonSighting{
		MissingPersonID:  reportID,
		ReporterID:       user.ID,
		SightingAt:       req.SightingAt,
		SightingLocation: req.SightingLocation,
		Description:      req.Description,
		SightingPhotoURL: req.SightingPhotoURL,
	}

	if err := s.sightingRepo.CreatePersonSighting(c.UserContext(), sighting); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "person sighting created",
		slog.Uint64("report_id", uint64(reportID)),
		slog.Uint64("sighting_id", uint64(sighting.ID)))
	middleware.SightingsCreated.WithLabelValues("person").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Sighting report registered successfully",
		"sightingId": sighting.ID,
	})
}

// ListPersonSightings handles GET /api/missing-persons/:id/sightings
func (s *Server) ListPersonSightings(c *fiber.Ctx) error {
	reportID, ok := parseID(c)
	if !ok {
		return nil
	}

	sightings, err := s.sightingRepo.ListPersonSightings(c.UserContext(), reportID)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sightings)
}

// CreateAnimalSighting handles POST /api/missing-animals/:id/sightings
func (s *Server) CreateAnimalSighting(c *fiber.Ctx) error {
	reportID, ok := parseID(c)
	if !ok {
		return nil
	}

	var req CreateSightingRequest
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}
	if err := req.validate(); err != nil {
		return models.RespondAppError(c, err)
	}

	user := s.currentUser(c)
	sighting := &models.AnimalSighting{
		MissingAnimalID:  reportID,
		ReporterID:       user.ID,
		SightingAt:       req.SightingAt,
		SightingLocation: req.SightingLocation,
		Description:      req.Description,
		SightingPhotoURL: req.SightingPhotoURL,
	}

	if err := s.sightingRepo.CreateAnimalSighting(c.UserContext(), sighting); err != nil {
		return models.RespondAppError(c, err)
	}

	middleware.Logger.InfoContext(c.UserContext(), "animal sighting created",
		slog.Uint64("report_id", uint64(reportID)),
		slog.Uint64("sighting_id", uint64(sighting.ID)))
	middleware.SightingsCreated.WithLabelValues("animal").Inc()

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":    "Sighting report registered successfully",
		"sightingId": sighting.ID,
	})
}

// ListAnimalSightings handles GET /api/missing-animals/:id/sightings
func (s *Server) ListAnimalSightings(c *fiber.Ctx) error {
	reportID, ok := parseID(c)
	if !ok {
		return nil
	}

	sightings, err := s.sightingRepo.ListAnimalSightings(c.UserContext(), reportID)
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sightings)
}

// GetAllSightings handles GET /api/sightings/all
//
// Returns every sighting of both kinds for the map view, each labeled with
// its report type and the missing person's or animal's name.
func (s *Server) GetAllSightings(c *fiber.Ctx) error {
	sightings, err := s.feedRepo.AllSightings(c.UserContext())
	if err != nil {
		return models.RespondAppError(c, err)
	}
	return c.Status(fiber.StatusOK).JSON(sightings)
}
