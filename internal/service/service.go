package service

import (
	"context"

	"github.com/DanRulev/flashcards/internal/models"
	"go.uber.org/zap"
)

type CardStoreI interface {
	Len() int
	HasTerm(term string) bool
	Add(term, definition string) error
	Remove(term string) error
	Export() []models.Card
	Import(records []models.Card)
}

type QuizStoreI interface {
	RunQuiz(n int, answer func(models.Card) (string, error), report func(models.Verdict)) error
	Hardest() models.Hardest
	ResetStats()
}

type StoreI interface {
	CardStoreI
	QuizStoreI
}

type CardFileRI interface {
	LoadCards(ctx context.Context, path string) ([]models.Card, error)
	SaveCards(ctx context.Context, path string, cards []models.Card) error
}

type LogRI interface {
	SaveLog(ctx context.Context, path string, lines []string) error
}

type RepositoryI interface {
	CardFileRI
	LogRI
}

type Service struct {
	*CardS
	*QuizS
}

func InitServices(store StoreI, repo RepositoryI, log *zap.Logger) *Service {
	return &Service{
		CardS: NewCardService(store, repo, repo, log),
		QuizS: NewQuizService(store, log),
	}
}
