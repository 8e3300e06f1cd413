// Package chat defines the interviewer chat protocol and an HTTP client for
// an external chat API speaking it.
package chat

import "context"

// Roles used in a conversation history.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type StartResponse struct {
	Message             string    `json:"message"`
	ConversationID      string    `json:"conversation_id"`
	ConversationHistory []Message `json:"conversation_history,omitempty"`
}

type Request struct {
	ConversationHistory []Message `json:"conversation_history"`
	Message             string    `json:"message"`
	QuestionCount       int       `json:"question_count"`
}

// Response is one interviewer turn. Rating is set when the turn ended with a
// performance evaluation.
type Response struct {
	Message             string    `json:"message"`
	Rating              string    `json:"rating,omitempty"`
	ConversationHistory []Message `json:"conversation_history"`
	QuestionCount       int       `json:"question_count"`
}

// Service is implemented by anything able to run an interview conversation.
type Service interface {
	StartChat(ctx context.Context) (StartResponse, error)
	Chat(ctx context.Context, req Request) (Response, error)
}
