package handlers

import (
	"errors"
	"log"

	"formhub/internal/models"
	"formhub/internal/repositories"
	"formhub/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

// TemplateHandler handles HTTP requests for form templates.
type TemplateHandler struct {
	service  *services.TemplateService
	validate *validator.Validate
}

// NewTemplateHandler creates a new TemplateHandler.
func NewTemplateHandler(service *services.TemplateService) *TemplateHandler {
	return &TemplateHandler{
		service:  service,
		validate: validator.New(),
	}
}

// RegisterRoutes registers the template routes with the Fiber app.
func (h *TemplateHandler) RegisterRoutes(router fiber.Router) {
	router.Post("/registerTemplate", h.HandleRegisterTemplate)
	router.Get("/getTemplates", h.HandleGetTemplates)
	router.Get("/templates/:id", h.HandleGetTemplateByID)
}

// RegisterTemplateRequest represents the request body for template
// registration. IsPublic is a pointer so a missing field can be told
// apart from an explicit false; a non-boolean value fails body parsing.
type RegisterTemplateRequest struct {
	Title       string           `json:"title" validate:"required"`
	Description string           `json:"description" validate:"required"`
	Topic       string           `json:"topic" validate:"required"`
	IsPublic    *bool            `json:"isPublic" validate:"required"`
	Labels      models.JSONValue `json:"labels"`
	Questions   models.JSONValue `json:"questions"`
	AuthorName  string           `json:"authorName" validate:"required"`
}

// HandleRegisterTemplate persists a new template.
func (h *TemplateHandler) HandleRegisterTemplate(c *fiber.Ctx) error {
	var req RegisterTemplateRequest
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing template request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The template information is not complete",
		})
	}

	if err := h.validate.Struct(req); err != nil || !req.Labels.Present() || !req.Questions.Present() {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "The template information is not complete",
		})
	}

	template := &models.Template{
		Title:       req.Title,
		Description: req.Description,
		Topic:       req.Topic,
		IsPublic:    *req.IsPublic,
		Labels:      req.Labels,
		Questions:   req.Questions,
		AuthorName:  req.AuthorName,
	}
	if err := h.service.RegisterTemplate(template); err != nil {
		log.Printf("Error registering template: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Template saved successfully",
	})
}

// HandleGetTemplates returns every stored template. An empty catalog
// is reported as not found rather than an empty list.
func (h *TemplateHandler) HandleGetTemplates(c *fiber.Ctx) error {
	templates, err := h.service.GetAllTemplates()
	if err != nil {
		log.Printf("Error getting templates: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	if len(templates) == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"message": "No templates found",
		})
	}
	return c.JSON(templates)
}

// HandleGetTemplateByID returns a single template.
func (h *TemplateHandler) HandleGetTemplateByID(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid template id",
		})
	}

	template, err := h.service.GetTemplateByID(uint(id))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
				"message": "No template data found",
			})
		}
		log.Printf("Error getting template %d: %v", id, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": err.Error(),
		})
	}
	return c.JSON(template)
}
