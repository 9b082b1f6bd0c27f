package repositories

import "formhub/internal/models"

// ResponseRepository defines the interface for response data access.
// A (userID, templateID) pair may match several rows; GetByUserAndTemplate
// and UpdateAnswers act on the earliest-inserted one.
type ResponseRepository interface {
	Create(response *models.Response) error
	GetByUserAndTemplate(userID, templateID uint) (*models.Response, error)
	UpdateAnswers(id uint, answers models.JSONValue) error
}
