package services

import (
	"encoding/json"
	"fmt"
	"log"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/pkg/rabbitmq"
)

// ResponseService handles business logic for answer submissions.
type ResponseService struct {
	repo     repositories.ResponseRepository
	mqClient *rabbitmq.Client
}

// NewResponseService creates a new ResponseService. mqClient may be
// nil, in which case no events are published.
func NewResponseService(repo repositories.ResponseRepository, mqClient *rabbitmq.Client) *ResponseService {
	return &ResponseService{
		repo:     repo,
		mqClient: mqClient,
	}
}

// RegisterAnswers persists a new response row. Whether userID and
// templateID reference real rows is left to the database foreign keys.
func (s *ResponseService) RegisterAnswers(userID, templateID uint, answers models.JSONValue) error {
	response := &models.Response{
		UserID:     userID,
		TemplateID: templateID,
		Answers:    answers,
	}
	if err := s.repo.Create(response); err != nil {
		return err
	}

	s.publish(rabbitmq.EventAnswersSubmitted, userID, templateID)
	return nil
}

// GetUserResponse returns the stored answers for the pair, or
// repositories.ErrNotFound when nothing has been submitted yet.
func (s *ResponseService) GetUserResponse(userID, templateID uint) (models.JSONValue, error) {
	response, err := s.repo.GetByUserAndTemplate(userID, templateID)
	if err != nil {
		return nil, err
	}
	return response.Answers, nil
}

// EditAnswers shallow-merges the incoming answers into the stored
// document: incoming keys override same-named keys, untouched keys
// survive. The read and the write are two separate statements, so
// concurrent edits to the same row are last-write-wins.
func (s *ResponseService) EditAnswers(userID, templateID uint, answers models.JSONValue) error {
	response, err := s.repo.GetByUserAndTemplate(userID, templateID)
	if err != nil {
		return err
	}

	merged, err := mergeAnswers(response.Answers, answers)
	if err != nil {
		return fmt.Errorf("failed to merge answers: %w", err)
	}
	if err := s.repo.UpdateAnswers(response.ID, merged); err != nil {
		return err
	}

	s.publish(rabbitmq.EventAnswersUpdated, userID, templateID)
	return nil
}

func (s *ResponseService) publish(kind string, userID, templateID uint) {
	if s.mqClient == nil {
		return
	}
	err := s.mqClient.Publish(kind, map[string]interface{}{
		"userId":     userID,
		"templateId": templateID,
	})
	if err != nil {
		// Event delivery is best-effort; the row is already written.
		log.Printf("Failed to publish %s event: %v", kind, err)
	}
}

// mergeAnswers computes the shallow merge of two answer documents. A
// stored value that is not a JSON object contributes nothing; an
// incoming value that is not a JSON object replaces the stored one
// wholesale.
func mergeAnswers(existing, incoming models.JSONValue) (models.JSONValue, error) {
	var in map[string]json.RawMessage
	if err := json.Unmarshal(incoming, &in); err != nil {
		return incoming, nil
	}

	merged := make(map[string]json.RawMessage)
	if len(existing) > 0 {
		// Ignore errors: a non-object stored value has no keys to keep.
		_ = json.Unmarshal(existing, &merged)
	}
	for key, value := range in {
		merged[key] = value
	}

	out, err := json.Marshal(merged)
	if err != nil {
		return nil, err
	}
	return models.JSONValue(out), nil
}
