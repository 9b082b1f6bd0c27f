package repositories

import (
	"errors"
	"fmt"

	"formhub/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GORMResponseRepository is a GORM implementation of ResponseRepository.
type GORMResponseRepository struct {
	db *gorm.DB
}

// NewGORMResponseRepository creates a new instance of GORMResponseRepository.
func NewGORMResponseRepository(db *gorm.DB) *GORMResponseRepository {
	return &GORMResponseRepository{
		db: db,
	}
}

// Create persists a new response row. Associations are omitted so only
// the foreign keys themselves are written; the database constraints
// decide whether they reference real rows.
func (r *GORMResponseRepository) Create(response *models.Response) error {
	if err := r.db.Omit(clause.Associations).Create(response).Error; err != nil {
		return fmt.Errorf("failed to create response: %w", err)
	}
	return nil
}

// GetByUserAndTemplate retrieves the earliest response row for the
// given user and template.
func (r *GORMResponseRepository) GetByUserAndTemplate(userID, templateID uint) (*models.Response, error) {
	var response models.Response
	err := r.db.
		Order("id").
		First(&response, "user_id = ? AND template_id = ?", userID, templateID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("response for user %d and template %d: %w", userID, templateID, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get response for user %d and template %d: %w", userID, templateID, err)
	}
	return &response, nil
}

// UpdateAnswers overwrites the answers column of a single row.
func (r *GORMResponseRepository) UpdateAnswers(id uint, answers models.JSONValue) error {
	res := r.db.Model(&models.Response{}).Where("id = ?", id).Update("answers", answers)
	if res.Error != nil {
		return fmt.Errorf("failed to update answers for response %d: %w", id, res.Error)
	}
	if res.RowsAffected == 0 {
		return fmt.Errorf("response with ID %d: %w", id, ErrNotFound)
	}
	return nil
}
