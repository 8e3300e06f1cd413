// Package interviewer runs a mock job interview on top of a language model
// and implements chat.Service without an external chat API.
package interviewer

import (
	"context"
	_ "embed"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/godilite/interview-coach/internal/chat"
)

// DefaultRatingAfter is the number of answered questions that triggers a rating.
const DefaultRatingAfter = 3

const (
	greeting = "Hi"

	ratingRequest = `Please rate my performance now. Include a clear percentage score like this: "Your score is X%" ` +
		`Also mention percentage score for technical skills, communication skills, and overall satisfaction`
)

//go:embed prompt.txt
var defaultSystemPrompt string

var ErrEmptyReply = errors.New("model returned an empty reply")

// Model produces the next assistant message for a conversation.
type Model interface {
	Complete(ctx context.Context, history []chat.Message) (string, error)
}

type Interviewer struct {
	model        Model
	systemPrompt string
	ratingAfter  int
	logger       *zap.Logger
	newID        func() string
}

type Option func(*Interviewer)

func WithSystemPrompt(prompt string) Option {
	return func(i *Interviewer) {
		if prompt != "" {
			i.systemPrompt = prompt
		}
	}
}

// WithRatingAfter sets how many answers are collected before a rating.
func WithRatingAfter(n int) Option {
	return func(i *Interviewer) {
		if n > 0 {
			i.ratingAfter = n
		}
	}
}

func WithLogger(logger *zap.Logger) Option {
	return func(i *Interviewer) {
		if logger != nil {
			i.logger = logger
		}
	}
}

func New(model Model, opts ...Option) (*Interviewer, error) {
	if model == nil {
		return nil, fmt.Errorf("interviewer model is required")
	}
	i := &Interviewer{
		model:        model,
		systemPrompt: defaultSystemPrompt,
		ratingAfter:  DefaultRatingAfter,
		logger:       zap.NewNop(),
		newID:        uuid.NewString,
	}
	for _, opt := range opts {
		opt(i)
	}
	i.logger = i.logger.Named("interviewer")
	return i, nil
}

// StartChat implements chat.Service.
func (i *Interviewer) StartChat(ctx context.Context) (chat.StartResponse, error) {
	history := []chat.Message{
		{Role: chat.RoleSystem, Content: i.systemPrompt},
		{Role: chat.RoleUser, Content: greeting},
	}

	reply, err := i.complete(ctx, history)
	if err != nil {
		return chat.StartResponse{}, err
	}
	history = append(history, chat.Message{Role: chat.RoleAssistant, Content: reply})

	id := i.newID()
	i.logger.Info("interview started", zap.String("conversation_id", id))

	return chat.StartResponse{
		Message:             reply,
		ConversationID:      id,
		ConversationHistory: history,
	}, nil
}

// Chat implements chat.Service. Every ratingAfter answered questions the
// model is asked for a rating, which is returned in Response.Rating and
// resets the question counter.
func (i *Interviewer) Chat(ctx context.Context, req chat.Request) (chat.Response, error) {
	history := i.withSystemPrompt(req.ConversationHistory)
	history = append(history, chat.Message{Role: chat.RoleUser, Content: req.Message})

	if IsOffTopic(req.Message) {
		history = append(history, chat.Message{Role: chat.RoleAssistant, Content: OffTopicReply})
		return chat.Response{
			Message:             OffTopicReply,
			ConversationHistory: history,
			QuestionCount:       req.QuestionCount,
		}, nil
	}

	reply, err := i.complete(ctx, history)
	if err != nil {
		return chat.Response{}, err
	}
	history = append(history, chat.Message{Role: chat.RoleAssistant, Content: reply})

	resp := chat.Response{
		Message:       reply,
		QuestionCount: req.QuestionCount + 1,
	}

	if resp.QuestionCount >= i.ratingAfter {
		history = append(history, chat.Message{Role: chat.RoleUser, Content: ratingRequest})
		rating, err := i.complete(ctx, history)
		if err != nil {
			return chat.Response{}, fmt.Errorf("request rating: %w", err)
		}
		history = append(history, chat.Message{Role: chat.RoleAssistant, Content: rating})

		resp.Rating = rating
		resp.QuestionCount = 0
		i.logger.Info("rating produced", zap.Int("history_len", len(history)))
	}

	resp.ConversationHistory = history
	return resp, nil
}

// withSystemPrompt copies history and makes sure it opens with the system prompt.
func (i *Interviewer) withSystemPrompt(history []chat.Message) []chat.Message {
	out := make([]chat.Message, 0, len(history)+4)
	if len(history) == 0 || history[0].Role != chat.RoleSystem {
		out = append(out, chat.Message{Role: chat.RoleSystem, Content: i.systemPrompt})
	}
	return append(out, history...)
}

func (i *Interviewer) complete(ctx context.Context, history []chat.Message) (string, error) {
	reply, err := i.model.Complete(ctx, history)
	if err != nil {
		i.logger.Error("model call failed", zap.Error(err))
		return "", fmt.Errorf("generate reply: %w", err)
	}
	if reply == "" {
		return "", ErrEmptyReply
	}
	return reply, nil
}
