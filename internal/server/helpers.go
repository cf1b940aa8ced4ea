package server

import (
	"strconv"

	"lostlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

const defaultListLimit = 20

// parseID parses the ":id" route parameter. On failure it writes the 400
// response itself and returns ok=false; the handler should just return nil.
func parseID(c *fiber.Ctx) (uint, bool) {
	raw := c.Params("id")
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		_ = models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid ID format"))
		return 0, false
	}
	return uint(id), true
}

// parseLimit reads the "limit" query parameter, falling back to the default
// for absent, unparsable, or non-positive values.
func parseLimit(c *fiber.Ctx) int {
	limit := c.QueryInt("limit", defaultListLimit)
	if limit <= 0 {
		return defaultListLimit
	}
	return limit
}
