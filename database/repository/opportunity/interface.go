package opportunityRepo

import "clubhub/models"

// OpportunityRepository defines methods for opportunity board data access.
type OpportunityRepository interface {
	GetByID(id string) (*models.Opportunity, error)
	GetAll() ([]models.Opportunity, error)
	Create(opportunity *models.Opportunity) error
	Update(opportunity *models.Opportunity) error
	Delete(id string) error
}
