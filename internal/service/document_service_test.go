package service

import (
	"context"
	"testing"

	"taskgen/internal/domain"
	"taskgen/internal/dto"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type documentFixture struct {
	documentRepo *MockDocumentRepository
	problemRepo  *MockProblemRepository
	studentRepo  *MockStudentRepository
	service      DocumentService
}

func newDocumentFixture(t *testing.T, problemService ProblemService) *documentFixture {
	t.Helper()
	f := &documentFixture{
		documentRepo: new(MockDocumentRepository),
		problemRepo:  new(MockProblemRepository),
		studentRepo:  new(MockStudentRepository),
	}
	f.service = NewDocumentService(f.documentRepo, f.problemRepo, f.studentRepo, problemService)
	return f
}

func TestCreateDocument(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		f := newDocumentFixture(t, nil)
		f.documentRepo.On("CreateDocument", mock.Anything, mock.AnythingOfType("*domain.Document")).Return(nil)

		resp, err := f.service.CreateDocument(context.Background(), "USER1", &dto.CreateDocumentRequest{
			Title: "Linear equations revision",
		})
		require.NoError(t, err)
		assert.Equal(t, "Linear equations revision", resp.Title)
		f.documentRepo.AssertExpectations(t)
	})

	t.Run("EmptyTitleRejected", func(t *testing.T) {
		f := newDocumentFixture(t, nil)

		_, err := f.service.CreateDocument(context.Background(), "USER1", &dto.CreateDocumentRequest{})
		require.Error(t, err)
		f.documentRepo.AssertNotCalled(t, "CreateDocument", mock.Anything, mock.Anything)
	})
}

func TestGetDocument(t *testing.T) {
	f := newDocumentFixture(t, nil)
	f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(&domain.Document{
		ID: "DOC1", UserID: "USER1", Title: "Test",
	}, nil)
	f.problemRepo.On("GetProblemsByDocumentID", mock.Anything, "DOC1").Return([]*domain.Problem{
		{ID: "PRB1", DocumentID: "DOC1", KindID: "doubling", SubproblemCount: 1},
		{ID: "PRB2", DocumentID: "DOC1", KindID: "doubling", SubproblemCount: 3},
	}, nil)

	resp, err := f.service.GetDocument(context.Background(), "DOC1")
	require.NoError(t, err)
	require.Len(t, resp.Problems, 2)
	assert.Equal(t, "PRB1", resp.Problems[0].ID)
}

func TestWorksheets(t *testing.T) {
	registry := newTestRegistry(t, testKind{id: "doubling", template: defaultTestTemplate})
	problems := []*domain.Problem{
		{ID: "PRB1", DocumentID: "DOC1", KindID: "doubling", SubproblemCount: 1},
		{ID: "PRB2", DocumentID: "DOC1", KindID: "doubling", SubproblemCount: 2},
	}

	newWorksheetFixture := func(t *testing.T) (*documentFixture, *MockProblemRepository) {
		problemRepo := new(MockProblemRepository)
		studentRepo := new(MockStudentRepository)
		problemService := NewProblemService(problemRepo, new(MockProblemTextRepository), new(MockDocumentRepository), studentRepo, registry, nil)

		f := &documentFixture{
			documentRepo: new(MockDocumentRepository),
			problemRepo:  problemRepo,
			studentRepo:  studentRepo,
		}
		f.service = NewDocumentService(f.documentRepo, f.problemRepo, f.studentRepo, problemService)
		return f, problemRepo
	}

	t.Run("OneSheetPerStudentInRequestOrder", func(t *testing.T) {
		f, problemRepo := newWorksheetFixture(t)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(&domain.Document{
			ID: "DOC1", UserID: "USER1", Title: "Test",
		}, nil)
		problemRepo.On("GetProblemsByDocumentID", mock.Anything, "DOC1").Return(problems, nil)
		problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problems[0], nil)
		problemRepo.On("GetProblemByID", mock.Anything, "PRB2").Return(problems[1], nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(&domain.Student{ID: "STU1", Name: "Ana"}, nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU2").Return(&domain.Student{ID: "STU2", Name: "Bor"}, nil)

		resp, err := f.service.Worksheets(context.Background(), "DOC1", &dto.WorksheetsRequest{
			StudentIDs: []string{"STU1", "STU2"},
		})
		require.NoError(t, err)
		require.Len(t, resp.Sheets, 2)

		assert.Equal(t, "STU1", resp.Sheets[0].StudentID)
		assert.Equal(t, "Ana", resp.Sheets[0].StudentName)
		assert.Equal(t, "STU2", resp.Sheets[1].StudentID)

		// Every sheet renders every problem, in document order.
		require.Len(t, resp.Sheets[0].Problems, 2)
		assert.Equal(t, "PRB1", resp.Sheets[0].Problems[0].ProblemID)
		assert.Len(t, resp.Sheets[0].Problems[1].Texts, 2)

		// Different students see different numbers for the same problem.
		assert.NotEqual(t, resp.Sheets[0].Problems[0].Texts, resp.Sheets[1].Problems[0].Texts)
	})

	t.Run("RepeatedCallsAreIdentical", func(t *testing.T) {
		f, problemRepo := newWorksheetFixture(t)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(&domain.Document{
			ID: "DOC1", UserID: "USER1", Title: "Test",
		}, nil)
		problemRepo.On("GetProblemsByDocumentID", mock.Anything, "DOC1").Return(problems, nil)
		problemRepo.On("GetProblemByID", mock.Anything, "PRB1").Return(problems[0], nil)
		problemRepo.On("GetProblemByID", mock.Anything, "PRB2").Return(problems[1], nil)
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(&domain.Student{ID: "STU1", Name: "Ana"}, nil)

		first, err := f.service.Worksheets(context.Background(), "DOC1", &dto.WorksheetsRequest{StudentIDs: []string{"STU1"}})
		require.NoError(t, err)
		second, err := f.service.Worksheets(context.Background(), "DOC1", &dto.WorksheetsRequest{StudentIDs: []string{"STU1"}})
		require.NoError(t, err)

		assert.Equal(t, first.Sheets, second.Sheets)
	})

	t.Run("UnknownStudentFailsWholeRequest", func(t *testing.T) {
		f, problemRepo := newWorksheetFixture(t)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(&domain.Document{
			ID: "DOC1", UserID: "USER1", Title: "Test",
		}, nil)
		problemRepo.On("GetProblemsByDocumentID", mock.Anything, "DOC1").Return(problems, nil)
		problemRepo.On("GetProblemByID", mock.Anything, mock.AnythingOfType("string")).Return(problems[0], nil).Maybe()
		f.studentRepo.On("GetStudentByID", mock.Anything, "STU1").Return(&domain.Student{ID: "STU1", Name: "Ana"}, nil).Maybe()
		f.studentRepo.On("GetStudentByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.Worksheets(context.Background(), "DOC1", &dto.WorksheetsRequest{
			StudentIDs: []string{"STU1", "MISSING"},
		})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeStudentNotFound, domainErr.Code)
	})

	t.Run("DocumentNotFound", func(t *testing.T) {
		f, _ := newWorksheetFixture(t)
		f.documentRepo.On("GetDocumentByID", mock.Anything, "MISSING").Return(nil, nil)

		_, err := f.service.Worksheets(context.Background(), "MISSING", &dto.WorksheetsRequest{StudentIDs: []string{"STU1"}})
		var domainErr *domain.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, domain.CodeDocumentNotFound, domainErr.Code)
	})
}

func TestUpdateDocument(t *testing.T) {
	f := newDocumentFixture(t, nil)
	f.documentRepo.On("GetDocumentByID", mock.Anything, "DOC1").Return(&domain.Document{
		ID: "DOC1", UserID: "USER1", Title: "Old title",
	}, nil)
	f.documentRepo.On("UpdateDocument", mock.Anything, mock.MatchedBy(func(d *domain.Document) bool {
		return d.Title == "New title"
	})).Return(nil)

	title := "New title"
	resp, err := f.service.UpdateDocument(context.Background(), "DOC1", &dto.UpdateDocumentRequest{Title: &title})
	require.NoError(t, err)
	assert.Equal(t, "New title", resp.Title)
	f.documentRepo.AssertExpectations(t)
}
