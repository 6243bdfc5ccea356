package handler

import (
	"taskgen/internal/dto"
	"taskgen/internal/middleware"
	"taskgen/internal/service"
	"taskgen/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// DocumentHandler handles document-related HTTP requests
type DocumentHandler struct {
	service   service.DocumentService
	validator *validation.Validator
}

// NewDocumentHandler creates a new DocumentHandler instance
func NewDocumentHandler(service service.DocumentService, validator *validation.Validator) *DocumentHandler {
	return &DocumentHandler{
		service:   service,
		validator: validator,
	}
}

// CreateDocument godoc
// @Summary Create a document
// @Tags documents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateDocumentRequest true "Document fields"
// @Success 201 {object} dto.DocumentResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /documents [post]
func (h *DocumentHandler) CreateDocument(c *fiber.Ctx) error {
	var req dto.CreateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	userID, _ := c.Locals(middleware.UserIDKey).(string)
	document, err := h.service.CreateDocument(c.Context(), userID, &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(document)
}

// GetDocument godoc
// @Summary Get a document with its problems
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{documentId} [get]
func (h *DocumentHandler) GetDocument(c *fiber.Ctx) error {
	document, err := h.service.GetDocument(c.Context(), c.Params("documentId"))
	if err != nil {
		return err
	}
	return c.JSON(document)
}

// ListDocuments godoc
// @Summary List the signed-in user's documents
// @Tags documents
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.DocumentResponse
// @Router /documents [get]
func (h *DocumentHandler) ListDocuments(c *fiber.Ctx) error {
	userID, _ := c.Locals(middleware.UserIDKey).(string)
	documents, err := h.service.ListDocuments(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(documents)
}

// UpdateDocument godoc
// @Summary Update a document
// @Tags documents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path string true "Document ID"
// @Param request body dto.UpdateDocumentRequest true "Fields to change"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{documentId} [put]
func (h *DocumentHandler) UpdateDocument(c *fiber.Ctx) error {
	var req dto.UpdateDocumentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	document, err := h.service.UpdateDocument(c.Context(), c.Params("documentId"), &req)
	if err != nil {
		return err
	}
	return c.JSON(document)
}

// DeleteDocument godoc
// @Summary Delete a document
// @Tags documents
// @Security ApiKeyAuth
// @Param documentId path string true "Document ID"
// @Success 204 "No Content"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{documentId} [delete]
func (h *DocumentHandler) DeleteDocument(c *fiber.Ctx) error {
	if err := h.service.DeleteDocument(c.Context(), c.Params("documentId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ListStudents godoc
// @Summary List students of a class
// @Tags students
// @Produce json
// @Security ApiKeyAuth
// @Param class query string true "Class name"
// @Success 200 {array} dto.StudentResponse
// @Router /students [get]
func (h *DocumentHandler) ListStudents(c *fiber.Ctx) error {
	className := c.Query("class")
	if className == "" {
		return fiber.NewError(fiber.StatusBadRequest, "class query parameter is required")
	}

	students, err := h.service.ListStudents(c.Context(), className)
	if err != nil {
		return err
	}
	return c.JSON(students)
}

// Worksheets godoc
// @Summary Render a document for a list of students
// @Description Returns one sheet per student, each containing every problem of the document rendered with that student's data
// @Tags documents
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path string true "Document ID"
// @Param request body dto.WorksheetsRequest true "Students to render for"
// @Success 200 {object} dto.WorksheetsResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{documentId}/worksheets [post]
func (h *DocumentHandler) Worksheets(c *fiber.Ctx) error {
	var req dto.WorksheetsRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateWorksheetsRequest(&req); len(errs) > 0 {
		return errs
	}

	sheets, err := h.service.Worksheets(c.Context(), c.Params("documentId"), &req)
	if err != nil {
		return err
	}
	return c.JSON(sheets)
}
