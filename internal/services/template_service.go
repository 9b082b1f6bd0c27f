package services

import (
	"log"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/pkg/rabbitmq"
)

// TemplateService handles business logic related to form templates.
type TemplateService struct {
	repo     repositories.TemplateRepository
	mqClient *rabbitmq.Client
}

// NewTemplateService creates a new TemplateService. mqClient may be
// nil, in which case no events are published.
func NewTemplateService(repo repositories.TemplateRepository, mqClient *rabbitmq.Client) *TemplateService {
	return &TemplateService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// RegisterTemplate persists a new template. The labels and questions
// documents are stored exactly as submitted.
func (s *TemplateService) RegisterTemplate(template *models.Template) error {
	if err := s.repo.Create(template); err != nil {
		return err
	}

	if s.mqClient != nil {
		err := s.mqClient.Publish(rabbitmq.EventTemplateRegistered, map[string]interface{}{
			"templateId": template.ID,
			"title":      template.Title,
			"authorName": template.AuthorName,
		})
		if err != nil {
			// Event delivery is best-effort; the template is already saved.
			log.Printf("Failed to publish template event: %v", err)
		}
	}
	return nil
}

// GetAllTemplates retrieves all templates.
func (s *TemplateService) GetAllTemplates() ([]models.Template, error) {
	return s.repo.GetAll()
}

// GetTemplateByID retrieves a single template by its ID.
func (s *TemplateService) GetTemplateByID(id uint) (*models.Template, error) {
	return s.repo.GetByID(id)
}
