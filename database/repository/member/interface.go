package memberRepo

import (
	"context"

	"clubhub/models"
)

// MemberRepository defines methods for member data access.
type MemberRepository interface {
	// GetByID retrieves a member by its unique ID.
	GetByID(id string) (*models.Member, error)
	// GetByEmail retrieves a member by its email address.
	GetByEmail(email string) (*models.Member, error)
	// GetAll retrieves all members.
	GetAll() ([]models.Member, error)
	// WithEmail retrieves members that have a non-empty email address.
	WithEmail(ctx context.Context) ([]models.Member, error)
	// Create inserts a new member record.
	Create(member *models.Member) error
	// Update modifies an existing member record.
	Update(member *models.Member) error
	// Delete removes a member record by its ID.
	Delete(id string) error
}
