package service

import (
	"context"
	"time"

	"taskgen/internal/domain"

	"github.com/stretchr/testify/mock"
)

type MockProblemRepository struct {
	mock.Mock
}

func (m *MockProblemRepository) CreateProblem(ctx context.Context, problem *domain.Problem) error {
	args := m.Called(ctx, problem)
	return args.Error(0)
}

func (m *MockProblemRepository) GetProblemByID(ctx context.Context, id string) (*domain.Problem, error) {
	args := m.Called(ctx, id)
	if p, ok := args.Get(0).(*domain.Problem); ok {
		return p, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProblemRepository) GetProblemsByDocumentID(ctx context.Context, documentID string) ([]*domain.Problem, error) {
	args := m.Called(ctx, documentID)
	if ps, ok := args.Get(0).([]*domain.Problem); ok {
		return ps, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProblemRepository) UpdateProblem(ctx context.Context, problem *domain.Problem) error {
	args := m.Called(ctx, problem)
	return args.Error(0)
}

func (m *MockProblemRepository) DeleteProblem(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockProblemTextRepository struct {
	mock.Mock
}

func (m *MockProblemTextRepository) CreateText(ctx context.Context, text *domain.ProblemText) error {
	args := m.Called(ctx, text)
	return args.Error(0)
}

func (m *MockProblemTextRepository) GetTextByID(ctx context.Context, id string) (*domain.ProblemText, error) {
	args := m.Called(ctx, id)
	if t, ok := args.Get(0).(*domain.ProblemText); ok {
		return t, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProblemTextRepository) GetTextsByKindID(ctx context.Context, kindID string) ([]*domain.ProblemText, error) {
	args := m.Called(ctx, kindID)
	if ts, ok := args.Get(0).([]*domain.ProblemText); ok {
		return ts, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockProblemTextRepository) DeleteText(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDocumentRepository struct {
	mock.Mock
}

func (m *MockDocumentRepository) CreateDocument(ctx context.Context, document *domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) GetDocumentByID(ctx context.Context, id string) (*domain.Document, error) {
	args := m.Called(ctx, id)
	if d, ok := args.Get(0).(*domain.Document); ok {
		return d, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) GetDocumentsByUserID(ctx context.Context, userID string) ([]*domain.Document, error) {
	args := m.Called(ctx, userID)
	if ds, ok := args.Get(0).([]*domain.Document); ok {
		return ds, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDocumentRepository) UpdateDocument(ctx context.Context, document *domain.Document) error {
	args := m.Called(ctx, document)
	return args.Error(0)
}

func (m *MockDocumentRepository) DeleteDocument(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockStudentRepository struct {
	mock.Mock
}

func (m *MockStudentRepository) CreateStudent(ctx context.Context, student *domain.Student) error {
	args := m.Called(ctx, student)
	return args.Error(0)
}

func (m *MockStudentRepository) GetStudentByID(ctx context.Context, id string) (*domain.Student, error) {
	args := m.Called(ctx, id)
	if s, ok := args.Get(0).(*domain.Student); ok {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockStudentRepository) GetStudentsByClassName(ctx context.Context, className string) ([]*domain.Student, error) {
	args := m.Called(ctx, className)
	if ss, ok := args.Get(0).([]*domain.Student); ok {
		return ss, args.Error(1)
	}
	return nil, args.Error(1)
}

type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) CreateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) GetUserByGoogleID(ctx context.Context, googleID string) (*domain.User, error) {
	args := m.Called(ctx, googleID)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) GetUserByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if u, ok := args.Get(0).(*domain.User); ok {
		return u, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockUserRepository) UpdateUser(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (string, error) {
	args := m.Called(ctx, key)
	return args.String(0), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, value string, expiration time.Duration) error {
	args := m.Called(ctx, key, value, expiration)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Ping(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
