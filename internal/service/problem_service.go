package service

import (
	"context"

	"taskgen/internal/domain"
	"taskgen/internal/dto"
	"taskgen/internal/logger"
	"taskgen/internal/problems"
	"taskgen/internal/render"

	"go.uber.org/zap"
)

// ProblemService exposes the public operations of a problem entity:
// configuration CRUD, preview text, per-student text and duplication.
type ProblemService interface {
	CreateProblem(ctx context.Context, documentID string, req *dto.CreateProblemRequest) (*dto.ProblemResponse, error)
	GetProblem(ctx context.Context, problemID string) (*dto.ProblemResponse, error)
	UpdateProblem(ctx context.Context, problemID string, req *dto.UpdateProblemRequest) (*dto.ProblemResponse, error)
	DeleteProblem(ctx context.Context, problemID string) error
	DuplicateProblem(ctx context.Context, problemID, targetDocumentID string) (*dto.ProblemResponse, error)

	// ExampleText renders a preview with fresh randomness on every call.
	ExampleText(ctx context.Context, problemID string) (*dto.ProblemTextsResponse, error)
	// StudentText renders the reproducible per-student assignment.
	StudentText(ctx context.Context, problemID, studentID string) (*dto.ProblemTextsResponse, error)

	ListKinds(ctx context.Context) ([]dto.KindResponse, error)
	CreateText(ctx context.Context, req *dto.CreateTextRequest) (*dto.TextResponse, error)
	ListTextsByKind(ctx context.Context, kindID string) ([]dto.TextResponse, error)
}

type problemService struct {
	problemRepo  domain.ProblemRepository
	textRepo     domain.ProblemTextRepository
	documentRepo domain.DocumentRepository
	studentRepo  domain.StudentRepository
	registry     *problems.Registry
	sheetCache   SheetCacheService
}

// NewProblemService creates a new instance of problemService. sheetCache
// may be nil, in which case student texts are regenerated on every call.
func NewProblemService(
	problemRepo domain.ProblemRepository,
	textRepo domain.ProblemTextRepository,
	documentRepo domain.DocumentRepository,
	studentRepo domain.StudentRepository,
	registry *problems.Registry,
	sheetCache SheetCacheService,
) ProblemService {
	return &problemService{
		problemRepo:  problemRepo,
		textRepo:     textRepo,
		documentRepo: documentRepo,
		studentRepo:  studentRepo,
		registry:     registry,
		sheetCache:   sheetCache,
	}
}

func (s *problemService) CreateProblem(ctx context.Context, documentID string, req *dto.CreateProblemRequest) (*dto.ProblemResponse, error) {
	document, err := s.documentRepo.GetDocumentByID(ctx, documentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load document", err)
	}
	if document == nil {
		return nil, domain.NewDocumentNotFoundError(documentID)
	}

	problem := domain.NewProblem(documentID, req.KindID)
	problem.TextID = req.TextID
	if req.SubproblemCount > 0 {
		problem.SubproblemCount = req.SubproblemCount
	}

	if err := s.validateProblem(ctx, problem); err != nil {
		return nil, err
	}
	if err := s.problemRepo.CreateProblem(ctx, problem); err != nil {
		return nil, domain.NewInternalError("Failed to save problem", err)
	}
	return toProblemResponse(problem), nil
}

func (s *problemService) GetProblem(ctx context.Context, problemID string) (*dto.ProblemResponse, error) {
	problem, err := s.loadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}
	return toProblemResponse(problem), nil
}

// UpdateProblem applies the request to the stored entity. The kind is
// recomputed from storage, never trusted from the caller, so kind and
// behavior cannot diverge.
func (s *problemService) UpdateProblem(ctx context.Context, problemID string, req *dto.UpdateProblemRequest) (*dto.ProblemResponse, error) {
	problem, err := s.loadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	if req.TextID != nil {
		problem.TextID = *req.TextID
	}
	if req.SubproblemCount != nil {
		problem.SubproblemCount = *req.SubproblemCount
	}

	if err := s.validateProblem(ctx, problem); err != nil {
		return nil, err
	}
	if err := s.problemRepo.UpdateProblem(ctx, problem); err != nil {
		return nil, domain.NewInternalError("Failed to update problem", err)
	}
	return toProblemResponse(problem), nil
}

func (s *problemService) DeleteProblem(ctx context.Context, problemID string) error {
	if _, err := s.loadProblem(ctx, problemID); err != nil {
		return err
	}
	if err := s.problemRepo.DeleteProblem(ctx, problemID); err != nil {
		return domain.NewInternalError("Failed to delete problem", err)
	}
	return nil
}

// DuplicateProblem copies a problem into the target document under a
// fresh identity. No rendered text is copied because none is stored; the
// copy generates its own per-student data from its new identity.
func (s *problemService) DuplicateProblem(ctx context.Context, problemID, targetDocumentID string) (*dto.ProblemResponse, error) {
	problem, err := s.loadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}

	target, err := s.documentRepo.GetDocumentByID(ctx, targetDocumentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load target document", err)
	}
	if target == nil {
		return nil, domain.NewDocumentNotFoundError(targetDocumentID)
	}

	duplicate := problem.Duplicate(targetDocumentID)
	if err := s.validateProblem(ctx, duplicate); err != nil {
		return nil, err
	}
	if err := s.problemRepo.CreateProblem(ctx, duplicate); err != nil {
		return nil, domain.NewInternalError("Failed to save duplicated problem", err)
	}
	return toProblemResponse(duplicate), nil
}

func (s *problemService) ExampleText(ctx context.Context, problemID string) (*dto.ProblemTextsResponse, error) {
	problem, err := s.loadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}
	texts, err := s.renderProblem(ctx, problem, problems.ExampleSeed())
	if err != nil {
		return nil, err
	}
	return &dto.ProblemTextsResponse{ProblemID: problem.ID, KindID: problem.KindID, Texts: texts}, nil
}

func (s *problemService) StudentText(ctx context.Context, problemID, studentID string) (*dto.ProblemTextsResponse, error) {
	problem, err := s.loadProblem(ctx, problemID)
	if err != nil {
		return nil, err
	}
	student, err := s.studentRepo.GetStudentByID(ctx, studentID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load student", err)
	}
	if student == nil {
		return nil, domain.NewStudentNotFoundError(studentID)
	}

	// Student texts are deterministic for an unchanged problem, so a
	// cached copy is as good as a regenerated one.
	if s.sheetCache != nil {
		if cached, err := s.sheetCache.GetSheet(ctx, problem, student.ID); err != nil {
			logger.Get().Warn("sheet cache read failed, regenerating",
				zap.Error(err),
				zap.String("problemID", problem.ID),
				zap.String("studentID", student.ID))
		} else if cached != nil {
			return &dto.ProblemTextsResponse{ProblemID: problem.ID, KindID: problem.KindID, Texts: cached}, nil
		}
	}

	texts, err := s.renderProblem(ctx, problem, problems.AssignmentSeed(problem.ID, student.ID))
	if err != nil {
		return nil, err
	}

	if s.sheetCache != nil {
		if err := s.sheetCache.PutSheet(ctx, problem, student.ID, texts); err != nil {
			logger.Get().Warn("sheet cache write failed",
				zap.Error(err),
				zap.String("problemID", problem.ID),
				zap.String("studentID", student.ID))
		}
	}
	return &dto.ProblemTextsResponse{ProblemID: problem.ID, KindID: problem.KindID, Texts: texts}, nil
}

func (s *problemService) ListKinds(ctx context.Context) ([]dto.KindResponse, error) {
	ids := s.registry.Identifiers()
	result := make([]dto.KindResponse, 0, len(ids))
	for _, id := range ids {
		kind, err := s.registry.Resolve(id)
		if err != nil {
			return nil, err
		}
		resp := dto.KindResponse{Identifier: id}
		if tpl := kind.DefaultTemplate(); tpl != nil {
			resp.DefaultInstruction = tpl.Instruction
			resp.DefaultSolution = tpl.Solution
		}
		result = append(result, resp)
	}
	return result, nil
}

func (s *problemService) CreateText(ctx context.Context, req *dto.CreateTextRequest) (*dto.TextResponse, error) {
	if _, err := s.registry.Resolve(req.KindID); err != nil {
		return nil, err
	}

	text := &domain.ProblemText{
		KindID:      req.KindID,
		Instruction: req.Instruction,
		Solution:    req.Solution,
	}
	if err := text.Validate(); err != nil {
		return nil, err
	}
	if err := s.textRepo.CreateText(ctx, text); err != nil {
		return nil, domain.NewInternalError("Failed to save problem text", err)
	}
	return toTextResponse(text), nil
}

func (s *problemService) ListTextsByKind(ctx context.Context, kindID string) ([]dto.TextResponse, error) {
	if _, err := s.registry.Resolve(kindID); err != nil {
		return nil, err
	}
	texts, err := s.textRepo.GetTextsByKindID(ctx, kindID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to list problem texts", err)
	}
	result := make([]dto.TextResponse, len(texts))
	for i, text := range texts {
		result[i] = *toTextResponse(text)
	}
	return result, nil
}

func (s *problemService) loadProblem(ctx context.Context, problemID string) (*domain.Problem, error) {
	problem, err := s.problemRepo.GetProblemByID(ctx, problemID)
	if err != nil {
		return nil, domain.NewInternalError("Failed to load problem", err)
	}
	if problem == nil {
		return nil, domain.NewProblemNotFoundError(problemID)
	}
	return problem, nil
}

// validateProblem enforces the persistence invariants: the kind must be
// registered and a text override must belong to the same kind.
func (s *problemService) validateProblem(ctx context.Context, problem *domain.Problem) error {
	if err := problem.Validate(); err != nil {
		return err
	}
	if _, err := s.registry.Resolve(problem.KindID); err != nil {
		return err
	}
	if problem.TextID != "" {
		text, err := s.textRepo.GetTextByID(ctx, problem.TextID)
		if err != nil {
			return domain.NewInternalError("Failed to load problem text", err)
		}
		if text == nil {
			return domain.NewValidationError("problem text does not exist: " + problem.TextID)
		}
		if text.KindID != problem.KindID {
			return domain.NewValidationError("kinds of the problem and its text must match")
		}
	}
	return nil
}

// renderProblem resolves the template (override first, then the kind's
// default) and runs generation and rendering for every subproblem.
func (s *problemService) renderProblem(ctx context.Context, problem *domain.Problem, seed problems.Seed) ([]render.Text, error) {
	kind, err := s.registry.Resolve(problem.KindID)
	if err != nil {
		return nil, err
	}

	var tpl render.Template
	if problem.TextID != "" {
		text, err := s.textRepo.GetTextByID(ctx, problem.TextID)
		if err != nil {
			return nil, domain.NewInternalError("Failed to load problem text", err)
		}
		if text == nil {
			return nil, domain.NewValidationError("problem text does not exist: " + problem.TextID)
		}
		tpl = render.Template{Instruction: text.Instruction, Solution: text.Solution}
	} else if defaultTpl := kind.DefaultTemplate(); defaultTpl != nil {
		tpl = *defaultTpl
	} else {
		return nil, domain.NewNoTemplateError(problem.KindID)
	}

	data, err := problems.GenerateAll(kind, problem.SubproblemCount, seed)
	if err != nil {
		return nil, domain.NewInternalError("Failed to generate problem data", err)
	}

	rawData := make([]map[string]any, len(data))
	for i, datum := range data {
		rawData[i] = datum
	}
	texts, err := render.RenderAll(tpl, rawData)
	if err != nil {
		return nil, err
	}
	return texts, nil
}

func toProblemResponse(p *domain.Problem) *dto.ProblemResponse {
	return &dto.ProblemResponse{
		ID:              p.ID,
		DocumentID:      p.DocumentID,
		KindID:          p.KindID,
		TextID:          p.TextID,
		SubproblemCount: p.SubproblemCount,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

func toTextResponse(t *domain.ProblemText) *dto.TextResponse {
	return &dto.TextResponse{
		ID:          t.ID,
		KindID:      t.KindID,
		Instruction: t.Instruction,
		Solution:    t.Solution,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}
