package handler

import (
	"taskgen/internal/dto"
	"taskgen/internal/service"
	"taskgen/internal/validation"

	"github.com/gofiber/fiber/v2"
)

// ProblemHandler handles problem-related HTTP requests
type ProblemHandler struct {
	service   service.ProblemService
	validator *validation.Validator
}

// NewProblemHandler creates a new ProblemHandler instance
func NewProblemHandler(service service.ProblemService, validator *validation.Validator) *ProblemHandler {
	return &ProblemHandler{
		service:   service,
		validator: validator,
	}
}

// CreateProblem godoc
// @Summary Add a problem to a document
// @Description Creates a problem of the given kind inside the document
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param documentId path string true "Document ID"
// @Param request body dto.CreateProblemRequest true "Problem configuration"
// @Success 201 {object} dto.ProblemResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /documents/{documentId}/problems [post]
func (h *ProblemHandler) CreateProblem(c *fiber.Ctx) error {
	var req dto.CreateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateCreateProblemRequest(&req); len(errs) > 0 {
		return errs
	}

	problem, err := h.service.CreateProblem(c.Context(), c.Params("documentId"), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(problem)
}

// GetProblem godoc
// @Summary Get a problem
// @Description Returns the configuration of a single problem
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Success 200 {object} dto.ProblemResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId} [get]
func (h *ProblemHandler) GetProblem(c *fiber.Ctx) error {
	problem, err := h.service.GetProblem(c.Context(), c.Params("problemId"))
	if err != nil {
		return err
	}
	return c.JSON(problem)
}

// UpdateProblem godoc
// @Summary Update a problem
// @Description Changes the text override or subproblem count. The kind of an existing problem cannot change.
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Param request body dto.UpdateProblemRequest true "Fields to change"
// @Success 200 {object} dto.ProblemResponse
// @Failure 400 {object} middleware.ValidationErrorResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId} [put]
func (h *ProblemHandler) UpdateProblem(c *fiber.Ctx) error {
	var req dto.UpdateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if errs := h.validator.ValidateUpdateProblemRequest(&req); len(errs) > 0 {
		return errs
	}

	problem, err := h.service.UpdateProblem(c.Context(), c.Params("problemId"), &req)
	if err != nil {
		return err
	}
	return c.JSON(problem)
}

// DeleteProblem godoc
// @Summary Delete a problem
// @Tags problems
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Success 204 "No Content"
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId} [delete]
func (h *ProblemHandler) DeleteProblem(c *fiber.Ctx) error {
	if err := h.service.DeleteProblem(c.Context(), c.Params("problemId")); err != nil {
		return err
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// DuplicateProblem godoc
// @Summary Duplicate a problem into another document
// @Description Copies the problem configuration under a fresh identity; the copy generates its own student data
// @Tags problems
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Param request body dto.DuplicateProblemRequest true "Target document"
// @Success 201 {object} dto.ProblemResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId}/duplicate [post]
func (h *ProblemHandler) DuplicateProblem(c *fiber.Ctx) error {
	var req dto.DuplicateProblemRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}
	if req.TargetDocumentID == "" {
		return fiber.NewError(fiber.StatusBadRequest, "target_document_id is required")
	}

	problem, err := h.service.DuplicateProblem(c.Context(), c.Params("problemId"), req.TargetDocumentID)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(problem)
}

// ExampleText godoc
// @Summary Render a preview of a problem
// @Description Generates fresh random data on every call, so repeated requests differ
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Success 200 {object} dto.ProblemTextsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId}/example [get]
func (h *ProblemHandler) ExampleText(c *fiber.Ctx) error {
	texts, err := h.service.ExampleText(c.Context(), c.Params("problemId"))
	if err != nil {
		return err
	}
	return c.JSON(texts)
}

// StudentText godoc
// @Summary Render a problem for one student
// @Description Deterministic for a given problem and student; repeated calls return the same text
// @Tags problems
// @Produce json
// @Security ApiKeyAuth
// @Param problemId path string true "Problem ID"
// @Param studentId path string true "Student ID"
// @Success 200 {object} dto.ProblemTextsResponse
// @Failure 404 {object} middleware.ErrorResponse
// @Router /problems/{problemId}/students/{studentId}/text [get]
func (h *ProblemHandler) StudentText(c *fiber.Ctx) error {
	texts, err := h.service.StudentText(c.Context(), c.Params("problemId"), c.Params("studentId"))
	if err != nil {
		return err
	}
	return c.JSON(texts)
}

// ListKinds godoc
// @Summary List registered problem kinds
// @Tags kinds
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {array} dto.KindResponse
// @Router /kinds [get]
func (h *ProblemHandler) ListKinds(c *fiber.Ctx) error {
	kinds, err := h.service.ListKinds(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(kinds)
}

// CreateText godoc
// @Summary Add a custom text template for a kind
// @Tags kinds
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body dto.CreateTextRequest true "Template texts"
// @Success 201 {object} dto.TextResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /texts [post]
func (h *ProblemHandler) CreateText(c *fiber.Ctx) error {
	var req dto.CreateTextRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "invalid request body")
	}

	text, err := h.service.CreateText(c.Context(), &req)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(text)
}

// ListTextsByKind godoc
// @Summary List text templates of a kind
// @Tags kinds
// @Produce json
// @Security ApiKeyAuth
// @Param kindId path string true "Kind identifier"
// @Success 200 {array} dto.TextResponse
// @Failure 400 {object} middleware.ErrorResponse
// @Router /kinds/{kindId}/texts [get]
func (h *ProblemHandler) ListTextsByKind(c *fiber.Ctx) error {
	texts, err := h.service.ListTextsByKind(c.Context(), c.Params("kindId"))
	if err != nil {
		return err
	}
	return c.JSON(texts)
}
