package repositories

import "formhub/internal/models"

// TemplateRepository defines the interface for template data access.
type TemplateRepository interface {
	Create(template *models.Template) error
	GetAll() ([]models.Template, error)
	GetByID(id uint) (*models.Template, error)
}
