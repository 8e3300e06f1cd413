package mocks

import (
	"context"
	"errors"

	"github.com/godilite/interview-coach/internal/chat"
)

// MockChatService is a mock implementation of chat.Service.
type MockChatService struct {
	StartChatFunc func(ctx context.Context) (chat.StartResponse, error)
	ChatFunc      func(ctx context.Context, req chat.Request) (chat.Response, error)
}

func (m *MockChatService) StartChat(ctx context.Context) (chat.StartResponse, error) {
	if m.StartChatFunc != nil {
		return m.StartChatFunc(ctx)
	}
	return chat.StartResponse{}, errors.New("StartChatFunc not implemented")
}

func (m *MockChatService) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	if m.ChatFunc != nil {
		return m.ChatFunc(ctx, req)
	}
	return chat.Response{}, errors.New("ChatFunc not implemented")
}
