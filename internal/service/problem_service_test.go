package service

import (
	"context"
	"errors"
	"math/rand"
	"testing"
	"time"

	"taskgen/internal/domain"
	"taskgen/internal/dto"
	"taskgen/internal/problems"
	"taskgen/internal/render"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// testKind is a minimal deterministic kind for exercising the service.
type testKind struct {
	id       string
	template *render.Template
}

func (k testKind) Identifier() string { return k.id }

func (k testKind) Generate(r *rand.Rand) (problems.Data, error) {
	n := r.Intn(900) + 100
	return problems.Data{"number": n, "double": 2 * n}, nil
}

func (k testKind) DefaultTemplate() *render.Template { return k.template }

func newTestRegistry(t *testing.T, kinds ...problems.Kind) *problems.Registry {
	t.Helper()
	reg := problems.NewRegistry()
	for _, kind := range kinds {
		require.NoError(t, reg.Register(kind))
	}
	return reg
}

var defaultTestTemplate = &render.Template{
	Instruction: "Double the number @number.",
	Solution:    "The result is @double.",
}

type serviceFixture struct {
	problemRepo  *MockProblemRepository
	textRepo     *MockProblemTextRepository
	documentRepo *MockDocumentRepository
	studentRepo  *MockStudentRepository
	service      ProblemService
}

func newServiceFixture(t *testing.T, registry *problems.Registry) *serviceFixture {
	t.Helper()
	f := &serviceFixture{
		problemRepo:  new(MockProblemRepository),
		textRepo:     new(MockProblemTextRepository),
		documentRepo: new(MockDocumentRepository),
		studentRepo:  new(MockStudentRepository),
	}
	f.service = NewProblemService(f.problemRepo, f.textRepo, f.documentRepo, f.studentRepo, registry, nil)
	return f
}

func TestCreateProblem(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	document := &domain.Document{ID: "DOC1", UserID: "USER1", Title: "Test"}

	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(document, nil)
		f.problemRepo.On("CreateProblem", mock.Anything, mock.AnythingOfType("*domain.Problem")).Return(nil)

		resp, err := f.service.CreateProblem(context.Background(), "DOC1", &dto.CreateProblemRequest{
			KindID:          "doubling",
			SubproblemCount: 3,
		})
		require.NoError(t, err)
		assert.Equal(t, "DOC1", resp.DocumentID)
		assert.Equal(t, "doubling", resp.KindID)
		assert.Equal(t, 3, resp.SubproblemCount)
		f.problemRepo.AssertExpectations(t)
	})

	t.Run("DefaultsToSingleSubproblem", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(document, nil)
		f.problemRepo.On("CreateProblem", mock.Anything, mock.AnythingOfType("*domain.Problem")).Return(nil)

		resp, err := f.service.CreateProblem(context.Background(), "DOC1", &dto.CreateProblemRequest{
			KindID: "doubling",
		})
		require.NoError(t, err)
		assert.Equal(t, 1, resp.SubproblemCount)
	})

	t.Run("UnknownKind", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(document, nil)

		_, err := f.service.CreateProblem(context.Background(), "DOC1", &dto.CreateProblemRequest{
			KindID: "nonexistent",
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnknownKind, domainErr.Code)
		f.problemRepo.AssertNotCalled(t, "CreateProblem", mock.Anything, mock.Anything)
	})

	t.Run("DocumentNotFound", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.CreateProblem(context.Background(), "MISSING", &dto.CreateProblemRequest{
			KindID: "doubling",
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDocumentNotFound, domainErr.Code)
	})

	t.Run("TextOfDifferentKindRejected", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(document, nil)
		f.textRepo.On("GetTextByID", mock.Anything, "TXT1").Return(&domain.ProblemText{
			ID:          "TXT1",
			KindID:      "other_kind",
			Instruction: "i",
			Solution:    "s",
		}, nil)

		_, err := f.service.CreateProblem(context.Background(), "DOC1", &dto.CreateProblemRequest{
			KindID: "doubling",
			TextID: "TXT1",
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeValidation, domainErr.Code)
		f.problemRepo.AssertNotCalled(t, "CreateProblem", mock.Anything, mock.Anything)
	})
}

func TestUpdateProblem(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	stored := func() *domain.Problem {
		return &domain.Problem{
			ID:              "PRB1",
			DocumentID:      "DOC1",
			KindID:          "doubling",
			SubproblemCount: 1,
		}
	}

	t.Run("ChangesCountOnly", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(stored(), nil)
		f.problemRepo.On("UpdateProblem", mock.Anything, mock.AnythingOfType("*domain.Problem")).Return(nil)

		count := 5
		resp, err := f.service.UpdateProblem(context.Background(), "PRB1", &dto.UpdateProblemRequest{
			SubproblemCount: &count,
		})
		require.NoError(t, err)
		assert.Equal(t, 5, resp.SubproblemCount)
		// The stored kind survives every update.
		assert.Equal(t, "doubling", resp.KindID)
	})

	t.Run("InvalidCountRejected", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(stored(), nil)

		count := 0
		_, err := f.service.UpdateProblem(context.Background(), "PRB1", &dto.UpdateProblemRequest{
			SubproblemCount: &count,
		})
		require.Error(t, err)
		f.problemRepo.AssertNotCalled(t, "UpdateProblem", mock.Anything, mock.Anything)
	})

	t.Run("NotFound", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.UpdateProblem(context.Background(), "MISSING", &dto.UpdateProblemRequest{})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeProblemNotFound, domainErr.Code)
	})
}

func TestDuplicateProblem(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	original := &domain.Problem{
		ID:              "PRB1",
		DocumentID:      "DOC1",
		KindID:          "doubling",
		SubproblemCount: 4,
	}

	t.Run("CopiesConfigurationUnderFreshIdentity", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(original, nil)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC2").Return(&domain.Document{ID: "DOC2"}, nil)
		f.problemRepo.On("CreateProblem", mock.Anything, mock.MatchedBy(func(p *domain.Problem) bool {
			return p.ID == "" && p.DocumentID == "DOC2" && p.KindID == "doubling" && p.SubproblemCount == 4
		})).Return(nil)

		resp, err := f.service.DuplicateProblem(context.Background(), "PRB1", "DOC2")
		require.NoError(t, err)
		assert.Equal(t, "DOC2", resp.DocumentID)
		f.problemRepo.AssertExpectations(t)
	})

	t.Run("TargetDocumentMissing", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(original, nil)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.DuplicateProblem(context.Background(), "PRB1", "MISSING")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDocumentNotFound, domainErr.Code)
	})
}

func TestStudentText(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	problem := &domain.Problem{
		ID:              "PRB1",
		DocumentID:      "DOC1",
		KindID:          "doubling",
		SubproblemCount: 2,
	}
	student := &domain.Student{ID: "STU1", Name: "Ana"}

	t.Run("DeterministicAcrossCalls", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(student, nil)

		first, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)
		second, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)

		assert.Equal(t, first.Texts, second.Texts)
		assert.Len(t, first.Texts, 2)
	})

	t.Run("DifferentStudentsGetDifferentText", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(student, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU2").Return(&domain.Student{ID: "STU2", Name: "Bor"}, nil)

		first, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)
		second, err := f.service.StudentText(context.Background(), "PRB1", "STU2")
		require.NoError(t, err)

		assert.NotEqual(t, first.Texts, second.Texts)
	})

	t.Run("StudentNotFound", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.StudentText(context.Background(), "PRB1", "MISSING")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStudentNotFound, domainErr.Code)
	})

	t.Run("CacheHitSkipsGeneration", func(t *testing.T) {
		mockCache := new(MockCache)
		sheetCache := NewSheetCacheService(mockCache, time.Hour)

		f := &serviceFixture{
			problemRepo:  new(MockProblemRepository),
			textRepo:     new(MockProblemTextRepository),
			documentRepo: new(MockDocumentRepository),
			studentRepo:  new(MockStudentRepository),
		}
		f.service = NewProblemService(f.problemRepo, f.textRepo, f.documentRepo, f.studentRepo, registry, sheetCache)

		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(student, nil)
		mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).
			Return(`[{"instruction":"cached i","solution":"cached s"}]`, nil)

		resp, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)
		require.Len(t, resp.Texts, 1)
		assert.Equal(t, "cached i", resp.Texts[0].Instruction)
		mockCache.AssertNotCalled(t, "Set", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("CacheMissGeneratesAndStores", func(t *testing.T) {
		mockCache := new(MockCache)
		sheetCache := NewSheetCacheService(mockCache, time.Hour)

		f := &serviceFixture{
			problemRepo:  new(MockProblemRepository),
			textRepo:     new(MockProblemTextRepository),
			documentRepo: new(MockDocumentRepository),
			studentRepo:  new(MockStudentRepository),
		}
		f.service = NewProblemService(f.problemRepo, f.textRepo, f.documentRepo, f.studentRepo, registry, sheetCache)

		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(student, nil)
		mockCache.On("Get", mock.Anything, mock.AnythingOfType("string")).Return("", domain.ErrCacheMiss)
		mockCache.On("Set", mock.Anything, mock.AnythingOfType("string"), mock.AnythingOfType("string"), time.Hour).Return(nil)

		resp, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)
		assert.Len(t, resp.Texts, 2)
		mockCache.AssertExpectations(t)
	})
}

func TestExampleText(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	problem := &domain.Problem{
		ID:              "PRB1",
		DocumentID:      "DOC1",
		KindID:          "doubling",
		SubproblemCount: 1,
	}

	f := newServiceFixture(t, registry)
	f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)

	resp, err := f.service.ExampleText(context.Background(), "PRB1")
	require.NoError(t, err)
	require.Len(t, resp.Texts, 1)
	assert.Contains(t, resp.Texts[0].Instruction, "Double the number ")
	assert.Contains(t, resp.Texts[0].Solution, "The result is ")
}

func TestRenderProblemTemplateResolution(t *testing.T) {
	t.Run("OverrideWinsOverDefault", func(t *testing.T) {
		registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
		problem := &domain.Problem{
			ID:              "PRB1",
			DocumentID:      "DOC1",
			KindID:          "doubling",
			TextID:          "TXT1",
			SubproblemCount: 1,
		}

		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(&domain.Student{ID: "STU1", Name: "Ana"}, nil)
		f.textRepo.On("GetTextByID", mock.Anything, "TXT1").Return(&domain.ProblemText{
			ID:          "TXT1",
			KindID:      "doubling",
			Instruction: "Custom: @number",
			Solution:    "Custom: @double",
		}, nil)

		resp, err := f.service.StudentText(context.Background(), "PRB1", "STU1")
		require.NoError(t, err)
		assert.Contains(t, resp.Texts[0].Instruction, "Custom: ")
	})

	t.Run("NoTemplateAnywhereFails", func(t *testing.T) {
		registry := newTestRegistry(t, testKind{id: "bare"})
		problem := &domain.Problem{
			ID:              "PRB1",
			DocumentID:      "DOC1",
			KindID:          "bare",
			SubproblemCount: 1,
		}

		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problem, nil)

		_, err := f.service.ExampleText(context.Background(), "PRB1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeNoTemplate, domainErr.Code)
	})
}

func TestListKinds(t *testing.T) {
	registry := newTestRegistry(t,
		testKind{id: "doubling", template: defaultTestTemplate},
		testKind{id: "bare"},
	)
	f := newServiceFixture(t, registry)

	kinds, err := f.service.ListKinds(context.Background())
	require.NoError(t, err)
	require.Len(t, kinds, 2)
	assert.Equal(t, "bare", kinds[0].Identifier)
	assert.Empty(t, kinds[0].DefaultInstruction)
	assert.Equal(t, "doubling", kinds[1].Identifier)
	assert.Equal(t, defaultTestTemplate.Instruction, kinds[1].DefaultInstruction)
}

func TestCreateText(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})

	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.textRepo.On("CreateText", mock.Anything, mock.AnythingOfType("*domain.ProblemText")).Return(nil)

		resp, err := f.service.CreateText(context.Background(), &dto.CreateTextRequest{
			KindID:      "doubling",
			Instruction: "i @number",
			Solution:    "s @double",
		})
		require.NoError(t, err)
		assert.Equal(t, "doubling", resp.KindID)
	})

	t.Run("UnknownKindRejected", func(t *testing.T) {
		f := newServiceFixture(t, registry)

		_, err := f.service.CreateText(context.Background(), &dto.CreateTextRequest{
			KindID:      "nonexistent",
			Instruction: "i",
			Solution:    "s",
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeUnknownKind, domainErr.Code)
		f.textRepo.AssertNotCalled(t, "CreateText", mock.Anything, mock.Anything)
	})
}

func TestDeleteProblem(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})

	t.Run("Success", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(&domain.Problem{
			ID: "PRB1", DocumentID: "DOC1", KindID: "doubling", SubproblemCount: 1,
		}, nil)
		f.problemRepo.On("DeleteProblem", mock.Anything, "PRB1").Return(nil)

		require.NoError(t, f.service.DeleteProblem(context.Background(), "PRB1"))
		f.problemRepo.AssertExpectations(t)
	})

	t.Run("RepositoryFailureWrapped", func(t *testing.T) {
		f := newServiceFixture(t, registry)
		f.problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(nil, errors.New("ora-600"))

		err := f.service.DeleteProblem(context.Background(), "PRB1")
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeInternal, domainErr.Code)
	})
}
