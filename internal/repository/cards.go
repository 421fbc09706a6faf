package repository

import (
	"bufio"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/DanRulev/flashcards/internal/models"
	"github.com/DanRulev/flashcards/pkg/validator"
	"github.com/spf13/afero"
	"go.uber.org/multierr"
)

const fieldSeparator = "|"

type CardsR struct {
	fs afero.Fs
}

func NewCardsRepository(fs afero.Fs) *CardsR {
	return &CardsR{fs: fs}
}

// LoadCards reads a card file with one term|definition|mistakes record per
// line. Blank lines are skipped. Lines that cannot be parsed are skipped too:
// the valid cards are still returned together with an error wrapping
// models.ErrMalformedLine for each bad line.
func (c *CardsR) LoadCards(ctx context.Context, path string) ([]models.Card, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := c.fs.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open card file: %w", err)
	}
	defer f.Close()

	var (
		cards   []models.Card
		lineErr error
		lineNo  int
	)

	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}

		card, err := parseCard(line)
		if err != nil {
			lineErr = multierr.Append(lineErr, fmt.Errorf("line %d: %w", lineNo, err))
			continue
		}
		cards = append(cards, card)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read card file: %w", err)
	}

	return cards, lineErr
}

func (c *CardsR) SaveCards(ctx context.Context, path string, cards []models.Card) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	for _, card := range cards {
		sb.WriteString(formatCard(card))
		sb.WriteString("\n")
	}

	if err := afero.WriteFile(c.fs, path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write card file: %w", err)
	}
	return nil
}

func parseCard(line string) (models.Card, error) {
	parts := strings.Split(line, fieldSeparator)
	if len(parts) != 3 {
		return models.Card{}, fmt.Errorf("%w: want 3 fields, got %d", models.ErrMalformedLine, len(parts))
	}

	mistakes, err := strconv.Atoi(strings.TrimSpace(parts[2]))
	if err != nil {
		return models.Card{}, fmt.Errorf("%w: mistakes %q is not a number", models.ErrMalformedLine, parts[2])
	}

	card := models.Card{
		Term:       parts[0],
		Definition: parts[1],
		Mistakes:   mistakes,
	}
	if err := validator.ValidateStruct(card); err != nil {
		return models.Card{}, fmt.Errorf("%w: %v", models.ErrMalformedLine, err)
	}

	return card, nil
}

func formatCard(card models.Card) string {
	return strings.Join([]string{card.Term, card.Definition, strconv.Itoa(card.Mistakes)}, fieldSeparator)
}
