package handlers

import (
	"errors"
	"log"
	"strconv"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// ResponseHandler handles HTTP requests for answer submissions.
type ResponseHandler struct {
	service  *services.ResponseService
	validate *validator.Validate
}

// NewResponseHandler creates a new ResponseHandler.
func NewResponseHandler(service *services.ResponseService) *ResponseHandler {
	return &ResponseHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the response routes with the Fiber app.
func (h *ResponseHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/registerAnswers", h.HandleRegisterAnswers)
	router.Get("/userResponse", h.HandleGetUserResponse)
	router.Post("/editAnswers", h.HandleEditAnswers)
}

// AnswersRequest is the request body for both submitting and editing
// answers. A zero userId or templateId fails the required check, so
// zero IDs count as missing.
type AnswersRequest struct {
	UserID     uint             `json:"userId" validate:"required"`
	TemplateID uint             `json:"templateId" validate:"required"`
	Answers    models.JSONValue `json:"answers"`
}

// HandleRegisterAnswers stores a first answer submission for a
// (user, template) pair. Duplicate submissions create additional rows.
func (h *ResponseHandler) HandleRegisterAnswers(c *fiber.Ctx) error {
	var req AnswersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing answers request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The template information is not complete",
		})
	}

	if err := h.validate.Struct(req); err != nil || !req.Answers.Present() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The template information is not complete",
		})
	}

	if err := h.service.RegisterAnswers(req.UserID, req.TemplateID, req.Answers); err != nil {
		log.Printf("Error registering answers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Answers saved successfully",
	})
}

// HandleGetUserResponse returns the stored answers for the pair given
// in the query string. No stored row is a 204, not an error.
func (h *ResponseHandler) HandleGetUserResponse(c *fiber.Ctx) error {
	userID, err1 := strconv.ParseUint(c.Query("userId"), 10, 32)
	templateID, err2 := strconv.ParseUint(c.Query("templateId"), 10, 32)
	if err1 != nil || err2 != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Missing parameters",
		})
	}

	answers, err := h.service.GetUserResponse(uint(userID), uint(templateID))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.SendStatus(fiber.StatusNoContent)
		}
		log.Printf("Error getting user response: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Server error",
			"error":   err.Error(),
		})
	}

	return c.JSON(answers)
}

// HandleEditAnswers merges the submitted answers into an existing row.
// Editing never creates a row.
func (h *ResponseHandler) HandleEditAnswers(c *fiber.Ctx) error {
	var req AnswersRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing edit request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete request body",
		})
	}

	if err := h.validate.Struct(req); err != nil || !req.Answers.Present() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Incomplete request body",
		})
	}

	if err := h.service.EditAnswers(req.UserID, req.TemplateID, req.Answers); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "Response not found",
			})
		}
		log.Printf("Error editing answers: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"message": "Answers updated successfully",
	})
}
