package service

import (
	"context"
	"io"
	"math/rand"
	"testing"

	"github.com/DanRulev/flashcards/internal/models"
	mock_service "github.com/DanRulev/flashcards/internal/service/mock"
	"github.com/DanRulev/flashcards/internal/storage/memory"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQuizServiceMock(t *testing.T, ctrl *gomock.Controller, setupMock func(*mock_service.MockStoreI)) *QuizS {
	store := mock_service.NewMockStoreI(ctrl)
	if setupMock != nil {
		setupMock(store)
	}

	return NewQuizService(store, zap.NewNop())
}

// runQuizWith plays the given cards, in order, through the callbacks RunQuiz receives.
func runQuizWith(verdicts ...models.Verdict) func(int, func(models.Card) (string, error), func(models.Verdict)) error {
	return func(n int, answer func(models.Card) (string, error), report func(models.Verdict)) error {
		for i := 0; i < n; i++ {
			v := verdicts[i%len(verdicts)]
			if _, err := answer(v.Card); err != nil {
				return err
			}
			report(v)
		}
		return nil
	}
}

func TestQuizS_Quiz(t *testing.T) {
	t.Parallel()

	france := models.Card{Term: "France", Definition: "Paris"}

	tests := []struct {
		name          string
		count         string
		answers       []string
		f             func(*mock_service.MockStoreI)
		want          string
		wantErr       error
		wantQuestions []string
		wantSaid      []string
	}{
		{
			name:    "correct answer",
			count:   "1",
			answers: []string{"Paris"},
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(1, gomock.Any(), gomock.Any()).DoAndReturn(
					runQuizWith(models.Verdict{Card: france, Answer: "Paris", Correct: true}),
				)
			},
			wantQuestions: []string{`Print the definition of "France":`},
			wantSaid:      []string{"Correct!"},
		},
		{
			name:    "wrong answers",
			count:   " 2 ",
			answers: []string{"Lyon", "Tokyo"},
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(2, gomock.Any(), gomock.Any()).DoAndReturn(
					runQuizWith(
						models.Verdict{Card: france, Answer: "Lyon"},
						models.Verdict{Card: france, Answer: "Tokyo", Matched: true, MatchedTerm: "Japan"},
					),
				)
			},
			wantQuestions: []string{`Print the definition of "France":`, `Print the definition of "France":`},
			wantSaid: []string{
				`Wrong. The right answer is "Paris".`,
				`Wrong. The right answer is "Paris", but your definition is correct for "Japan".`,
			},
		},
		{
			name:    "definition of a card with empty term",
			count:   "1",
			answers: []string{"Nowhere"},
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(1, gomock.Any(), gomock.Any()).DoAndReturn(
					runQuizWith(models.Verdict{Card: france, Answer: "Nowhere", Matched: true}),
				)
			},
			wantQuestions: []string{`Print the definition of "France":`},
			wantSaid:      []string{`Wrong. The right answer is "Paris", but your definition is correct for "".`},
		},
		{
			name:    "zero questions",
			count:   "0",
			answers: nil,
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(0, gomock.Any(), gomock.Any()).Return(nil)
			},
		},
		{
			name:    "empty store",
			count:   "3",
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(3, gomock.Any(), gomock.Any()).Return(models.ErrEmptyStore)
			},
			want:    "There are no cards to ask.",
			wantErr: models.ErrEmptyStore,
		},
		{
			name:    "not a number",
			count:   "many",
			want:    `"many" is not a valid number.`,
			wantErr: models.ErrInvalidCount,
		},
		{
			name:    "negative number",
			count:   "-2",
			want:    `"-2" is not a valid number.`,
			wantErr: models.ErrInvalidCount,
		},
		{
			name:    "input ends mid quiz",
			count:   "2",
			answers: []string{"Paris"},
			f: func(ms *mock_service.MockStoreI) {
				ms.EXPECT().RunQuiz(2, gomock.Any(), gomock.Any()).DoAndReturn(
					runQuizWith(models.Verdict{Card: france, Answer: "Paris", Correct: true}),
				)
			},
			wantErr:       io.EOF,
			wantQuestions: []string{`Print the definition of "France":`, `Print the definition of "France":`},
			wantSaid:      []string{"Correct!"},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizS := newQuizServiceMock(t, ctrl, tt.f)
			prompter := &scriptedPrompter{answers: tt.answers}

			got, err := quizS.Quiz(context.Background(), tt.count, prompter)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantQuestions, prompter.questions)
			assert.Equal(t, tt.wantSaid, prompter.said)
		})
	}
}

func TestQuizS_Quiz_CanceledContext(t *testing.T) {
	t.Parallel()

	store := memory.NewCards(rand.New(rand.NewSource(7)))
	store.Import([]models.Card{{Term: "France", Definition: "Paris"}})
	quizS := NewQuizService(store, zap.NewNop())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	prompter := &scriptedPrompter{answers: []string{"Paris"}}
	_, err := quizS.Quiz(ctx, "1", prompter)

	require.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, prompter.questions)
}

func TestQuizS_Quiz_WithStore(t *testing.T) {
	t.Parallel()

	store := memory.NewCards(rand.New(rand.NewSource(7)))
	store.Import([]models.Card{
		{Term: "France", Definition: "Paris"},
		{Term: "Japan", Definition: "Tokyo"},
	})
	quizS := NewQuizService(store, zap.NewNop())

	prompter := &scriptedPrompter{answers: []string{"Paris", "Paris", "Paris", "Paris"}}
	_, err := quizS.Quiz(context.Background(), "4", prompter)
	require.NoError(t, err)

	require.Len(t, prompter.questions, 4)
	require.Len(t, prompter.said, 4)

	wrong := 0
	for i, question := range prompter.questions {
		if question == `Print the definition of "Japan":` {
			wrong++
			assert.Equal(t, `Wrong. The right answer is "Tokyo", but your definition is correct for "France".`, prompter.said[i])
		} else {
			assert.Equal(t, "Correct!", prompter.said[i])
		}
	}

	hardest := store.Hardest()
	if wrong == 0 {
		assert.Empty(t, hardest.Terms)
	} else {
		assert.Equal(t, models.Hardest{Terms: []string{"Japan"}, Mistakes: wrong}, hardest)
	}
}

func TestQuizS_HardestCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		hardest models.Hardest
		want    string
	}{
		{
			name:    "no errors",
			hardest: models.Hardest{},
			want:    "There are no cards with errors.",
		},
		{
			name:    "one card",
			hardest: models.Hardest{Terms: []string{"France"}, Mistakes: 2},
			want:    `The hardest card is "France". You have 2 errors answering it`,
		},
		{
			name:    "several cards",
			hardest: models.Hardest{Terms: []string{"A", "C"}, Mistakes: 3},
			want:    `The hardest cards are "A", "C". You have 3 errors answering them`,
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			quizS := newQuizServiceMock(t, ctrl, func(ms *mock_service.MockStoreI) {
				ms.EXPECT().Hardest().Return(tt.hardest)
			})

			assert.Equal(t, tt.want, quizS.HardestCard())
		})
	}
}

func TestQuizS_ResetStats(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	quizS := newQuizServiceMock(t, ctrl, func(ms *mock_service.MockStoreI) {
		ms.EXPECT().ResetStats()
	})

	assert.Equal(t, "Card statistics have been reset.", quizS.ResetStats())
}
