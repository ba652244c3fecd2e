package mocks

import (
	"github.com/stretchr/testify/mock"
	"github.com/vytor/santree/internal/tree"
)

// MockGameBuilder is a mock implementation of services.GameBuilder
type MockGameBuilder struct {
	mock.Mock
}

func (m *MockGameBuilder) Build(text string) (*tree.Game, error) {
	args := m.Called(text)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*tree.Game), args.Error(1)
}
