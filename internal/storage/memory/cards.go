package memory

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/DanRulev/flashcards/internal/models"
)

// Cards is the in-memory card store. It is owned by a single session and is
// not safe for concurrent use.
type Cards struct {
	rnd   *rand.Rand
	cards map[string]*models.Card
}

func NewCards(rnd *rand.Rand) *Cards {
	return &Cards{
		rnd:   rnd,
		cards: make(map[string]*models.Card),
	}
}

func (c *Cards) Len() int {
	return len(c.cards)
}

func (c *Cards) Lookup(term string) (models.Card, bool) {
	card, exists := c.cards[term]
	if !exists {
		return models.Card{}, false
	}
	return *card, true
}

func (c *Cards) HasTerm(term string) bool {
	_, exists := c.cards[term]
	return exists
}

func (c *Cards) HasDefinition(definition string) bool {
	_, found := c.byDefinition(definition)
	return found
}

func (c *Cards) Add(term, definition string) error {
	if c.HasTerm(term) {
		return fmt.Errorf("add %q: %w", term, models.ErrDuplicateTerm)
	}
	if c.HasDefinition(definition) {
		return fmt.Errorf("add %q: %w", term, models.ErrDuplicateDefinition)
	}

	c.cards[term] = &models.Card{Term: term, Definition: definition}
	return nil
}

func (c *Cards) Remove(term string) error {
	if !c.HasTerm(term) {
		return fmt.Errorf("remove %q: %w", term, models.ErrNotFound)
	}
	delete(c.cards, term)
	return nil
}

// Random picks a card uniformly among all stored cards.
func (c *Cards) Random() (models.Card, error) {
	if len(c.cards) == 0 {
		return models.Card{}, models.ErrEmptyStore
	}

	terms := c.terms()
	return *c.cards[terms[c.rnd.Intn(len(terms))]], nil
}

// CheckAnswer compares answer with the definition of the card stored under
// term. A wrong answer counts as a mistake and is matched against the other
// cards' definitions.
func (c *Cards) CheckAnswer(term, answer string) (models.Verdict, error) {
	card, exists := c.cards[term]
	if !exists {
		return models.Verdict{}, fmt.Errorf("check %q: %w", term, models.ErrNotFound)
	}

	if answer == card.Definition {
		return models.Verdict{Card: *card, Answer: answer, Correct: true}, nil
	}

	card.Mistakes++

	verdict := models.Verdict{Card: *card, Answer: answer}
	if other, found := c.byDefinition(answer); found {
		verdict.Matched = true
		verdict.MatchedTerm = other.Term
	}
	return verdict, nil
}

// RunQuiz asks n questions about randomly sampled cards. Cards are sampled
// with replacement, so one card can be asked several times.
func (c *Cards) RunQuiz(n int, answer func(models.Card) (string, error), report func(models.Verdict)) error {
	if len(c.cards) == 0 {
		return models.ErrEmptyStore
	}

	for i := 0; i < n; i++ {
		card, err := c.Random()
		if err != nil {
			return err
		}

		given, err := answer(card)
		if err != nil {
			return fmt.Errorf("question %d of %d: %w", i+1, n, err)
		}

		verdict, err := c.CheckAnswer(card.Term, given)
		if err != nil {
			return err
		}
		report(verdict)
	}

	return nil
}

// Hardest returns the cards with the most mistakes. Terms is empty when no
// card has a mistake.
func (c *Cards) Hardest() models.Hardest {
	maxMistakes := 0
	for _, card := range c.cards {
		if card.Mistakes > maxMistakes {
			maxMistakes = card.Mistakes
		}
	}
	if maxMistakes == 0 {
		return models.Hardest{}
	}

	hardest := models.Hardest{Mistakes: maxMistakes}
	for _, term := range c.terms() {
		if c.cards[term].Mistakes == maxMistakes {
			hardest.Terms = append(hardest.Terms, term)
		}
	}
	return hardest
}

func (c *Cards) ResetStats() {
	for _, card := range c.cards {
		card.Mistakes = 0
	}
}

// Export returns a copy of every card ordered by term.
func (c *Cards) Export() []models.Card {
	out := make([]models.Card, 0, len(c.cards))
	for _, term := range c.terms() {
		out = append(out, *c.cards[term])
	}
	return out
}

// Import stores every record, overwriting cards with the same term. The
// uniqueness checks of Add are not applied.
func (c *Cards) Import(records []models.Card) {
	for _, r := range records {
		card := r
		c.cards[card.Term] = &card
	}
}

func (c *Cards) byDefinition(definition string) (models.Card, bool) {
	for _, term := range c.terms() {
		if card := c.cards[term]; card.Definition == definition {
			return *card, true
		}
	}
	return models.Card{}, false
}

func (c *Cards) terms() []string {
	terms := make([]string, 0, len(c.cards))
	for term := range c.cards {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}
