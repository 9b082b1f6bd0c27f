package repositories

import (
	"errors"
	"fmt"

	"formhub/internal/models"

	"gorm.io/gorm"
)

// GORMTemplateRepository is a GORM implementation of TemplateRepository.
type GORMTemplateRepository struct {
	db *gorm.DB
}

// NewGORMTemplateRepository creates a new instance of GORMTemplateRepository.
func NewGORMTemplateRepository(db *gorm.DB) *GORMTemplateRepository {
	return &GORMTemplateRepository{
		db: db,
	}
}

// Create persists a new template in the database.
func (r *GORMTemplateRepository) Create(template *models.Template) error {
	if err := r.db.Create(template).Error; err != nil {
		return fmt.Errorf("failed to create template: %w", err)
	}
	return nil
}

// GetAll retrieves all templates from the database.
func (r *GORMTemplateRepository) GetAll() ([]models.Template, error) {
	var templates []models.Template
	if err := r.db.Find(&templates).Error; err != nil {
		return nil, fmt.Errorf("failed to get all templates: %w", err)
	}
	return templates, nil
}

// GetByID retrieves a single template by its ID from the database.
func (r *GORMTemplateRepository) GetByID(id uint) (*models.Template, error) {
	var template models.Template
	if err := r.db.First(&template, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("template with ID %d: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get template by ID %d: %w", id, err)
	}
	return &template, nil
}
