package server

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"lostlink/internal/middleware"
	"lostlink/internal/models"

	"github.com/gofiber/fiber/v2"
)

// RequireUser resolves the caller's identity token to a registered user.
//
// Missing or malformed credentials yield 401, a token the verifier rejects
// yields 403, and a valid token whose subject has no account yields 404
// (the client should send the user through registration). The resolved
// user is stored in Locals for downstream handlers.
func (s *Server) RequireUser() fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Unauthorized: No token provided."))
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
			return models.RespondWithError(c, fiber.StatusUnauthorized,
				models.NewUnauthenticatedError("Unauthorized: No token provided."))
		}

		subject, err := s.verifier.Verify(c.UserContext(), parts[1])
		if err != nil {
			return models.RespondWithError(c, fiber.StatusForbidden,
				models.NewForbiddenError("Forbidden: Invalid token."))
		}

		user, err := s.userRepo.GetBySubject(c.UserContext(), subject)
		if err != nil {
			var appErr *models.AppError
			if errors.As(err, &appErr) && appErr.Code == "NOT_FOUND" {
				return models.RespondWithError(c, fiber.StatusNotFound,
					models.NewNotFoundErrorWithMessage("User not found in our database."))
			}
			middleware.Logger.ErrorContext(c.UserContext(), "failed to resolve user from token",
				slog.String("error", err.Error()))
			return models.RespondAppError(c, err)
		}

		c.Locals("currentUser", user)
		c.Locals("userID", user.ID)

		// Propagate user ID into the request context for structured logging
		ctx := context.WithValue(c.UserContext(), middleware.UserIDKey, user.ID)
		c.SetUserContext(ctx)

		return c.Next()
	}
}

// currentUser returns the user resolved by RequireUser. Only call from
// handlers registered behind that middleware.
func (s *Server) currentUser(c *fiber.Ctx) *models.User {
	return c.Locals("currentUser").(*models.User)
}
