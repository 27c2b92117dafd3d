package resourceRepo

import "clubhub/models"

// ResourceRepository defines methods for resource library data access.
type ResourceRepository interface {
	GetByID(id string) (*models.Resource, error)
	GetAll() ([]models.Resource, error)
	Create(resource *models.Resource) error
	Update(resource *models.Resource) error
	Delete(id string) error
}
