package service

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/flashcards/internal/models"
	"go.uber.org/zap"
)

// Prompter is the conversation a quiz runs over.
type Prompter interface {
	Ask(question string) (string, error)
	Say(text string)
}

type QuizS struct {
	store QuizStoreI
	log   *zap.Logger
}

func NewQuizService(store QuizStoreI, log *zap.Logger) *QuizS {
	return &QuizS{
		store: store,
		log:   log,
	}
}

// Quiz asks count questions through p, reporting each verdict as soon as the
// answer is checked. The returned message is empty when the quiz ran.
func (q *QuizS) Quiz(ctx context.Context, count string, p Prompter) (string, error) {
	n, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || n < 0 {
		return fmt.Sprintf("\"%s\" is not a valid number.", count), fmt.Errorf("%w: %q", models.ErrInvalidCount, count)
	}

	asked := 0
	err = q.store.RunQuiz(n, func(card models.Card) (string, error) {
		if err := ctx.Err(); err != nil {
			return "", err
		}
		asked++
		return p.Ask(fmt.Sprintf("Print the definition of \"%s\":", card.Term))
	}, func(v models.Verdict) {
		p.Say(verdictFormat(v))
	})
	if errors.Is(err, models.ErrEmptyStore) {
		return "There are no cards to ask.", err
	}
	if err != nil {
		q.log.Warn("quiz interrupted", zap.Int("asked", asked), zap.Int("requested", n), zap.Error(err))
		return "", err
	}

	q.log.Debug("quiz finished", zap.Int("asked", asked))
	return "", nil
}

func (q *QuizS) HardestCard() string {
	return hardestFormat(q.store.Hardest())
}

func (q *QuizS) ResetStats() string {
	q.store.ResetStats()
	q.log.Debug("card statistics reset")
	return "Card statistics have been reset."
}

func verdictFormat(v models.Verdict) string {
	switch {
	case v.Correct:
		return "Correct!"
	case v.Matched:
		return fmt.Sprintf("Wrong. The right answer is \"%s\", but your definition is correct for \"%s\".", v.Card.Definition, v.MatchedTerm)
	default:
		return fmt.Sprintf("Wrong. The right answer is \"%s\".", v.Card.Definition)
	}
}

func hardestFormat(h models.Hardest) string {
	if len(h.Terms) == 0 {
		return "There are no cards with errors."
	}

	quoted := make([]string, len(h.Terms))
	for i, term := range h.Terms {
		quoted[i] = `"` + term + `"`
	}

	if len(quoted) == 1 {
		return fmt.Sprintf("The hardest card is %s. You have %d errors answering it", quoted[0], h.Mistakes)
	}
	return fmt.Sprintf("The hardest cards are %s. You have %d errors answering them", strings.Join(quoted, ", "), h.Mistakes)
}
