package feedback

import (
	"context"
	"strings"
	"time"
)

// Service implements feedback rules over the repository.
type Service struct {
	repo Repository
	now  func() time.Time
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, now: time.Now}
}

// Submit stores a public submission. Only the message is mandatory.
func (s *Service) Submit(ctx context.Context, name, email, message string) error {
	message = strings.TrimSpace(message)
	if message == "" {
		return ErrMessageRequired
	}

	return s.repo.Insert(ctx, &Feedback{
		Name:      strings.TrimSpace(name),
		Email:     strings.TrimSpace(email),
		Message:   message,
		CreatedAt: s.now().UTC(),
	})
}

// List returns all submissions still retained by the store.
func (s *Service) List(ctx context.Context) ([]Feedback, error) {
	return s.repo.List(ctx)
}
