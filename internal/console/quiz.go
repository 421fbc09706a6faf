package console

import (
	"context"
	"errors"

	"github.com/DanRulev/flashcards/internal/models"
	"github.com/DanRulev/flashcards/internal/service"
)

type QuizSI interface {
	Quiz(ctx context.Context, count string, p service.Prompter) (string, error)
	HardestCard() string
	ResetStats() string
}

func (c *Console) ask(ctx context.Context) error {
	count, err := c.Ask("How many times to ask?")
	if err != nil {
		return err
	}

	msg, err := c.service.Quiz(ctx, count, c)
	if msg != "" {
		c.Say(msg)
	}
	if errors.Is(err, models.ErrEmptyStore) || errors.Is(err, models.ErrInvalidCount) {
		return nil
	}
	return err
}
