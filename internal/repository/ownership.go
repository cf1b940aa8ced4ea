package repository

import (
	"context"

	"lostlink/internal/models"
)

// Ownable is implemented by repositories whose rows are owned by exactly one
// user. OwnerOf returns the owning user's id, or a NotFound AppError when no
// row exists.
type Ownable interface {
	OwnerOf(ctx context.Context, id uint) (uint, error)
}

// CheckOwnership verifies that actorID owns the resource with the given id.
// Existence is checked before ownership: a missing row is NotFound, an
// existing row with a different owner is Forbidden. Ownership is binary and
// non-delegable; there is no admin override.
func CheckOwnership(ctx context.Context, res Ownable, id, actorID uint) error {
	ownerID, err := res.OwnerOf(ctx, id)
	if err != nil {
		return err
	}
	if ownerID != actorID {
		return models.NewForbiddenError("Forbidden. You do not have permission to modify this report.")
	}
	return nil
}
