package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/DanRulev/flashcards/internal/models"
	"go.uber.org/multierr"
	"go.uber.org/zap"
)

type CardS struct {
	store CardStoreI
	files CardFileRI
	logs  LogRI
	log   *zap.Logger
}

func NewCardService(store CardStoreI, files CardFileRI, logs LogRI, log *zap.Logger) *CardS {
	return &CardS{
		store: store,
		files: files,
		logs:  logs,
		log:   log,
	}
}

// CheckTerm reports whether term is still free. It lets the console refuse a
// duplicate before asking for the definition.
func (c *CardS) CheckTerm(term string) (string, error) {
	if c.store.HasTerm(term) {
		return fmt.Sprintf("The card \"%s\" already exists.", term), models.ErrDuplicateTerm
	}
	return "", nil
}

func (c *CardS) AddCard(term, definition string) (string, error) {
	err := c.store.Add(term, definition)
	switch {
	case errors.Is(err, models.ErrDuplicateTerm):
		return fmt.Sprintf("The card \"%s\" already exists.", term), err
	case errors.Is(err, models.ErrDuplicateDefinition):
		return fmt.Sprintf("The definition \"%s\" already exists.", definition), err
	case err != nil:
		c.log.Error("failed to add card", zap.String("term", term), zap.Error(err))
		return fmt.Sprintf("Can't add \"%s\".", term), err
	}

	c.log.Debug("card added", zap.String("term", term), zap.Int("cards", c.store.Len()))
	return fmt.Sprintf("The pair (\"%s\":\"%s\") has been added.", term, definition), nil
}

func (c *CardS) RemoveCard(term string) (string, error) {
	if err := c.store.Remove(term); err != nil {
		if !errors.Is(err, models.ErrNotFound) {
			c.log.Error("failed to remove card", zap.String("term", term), zap.Error(err))
		}
		return fmt.Sprintf("Can't remove \"%s\": there is no such card.", term), err
	}

	c.log.Debug("card removed", zap.String("term", term), zap.Int("cards", c.store.Len()))
	return "The card has been removed.", nil
}

// ImportCards loads path into the store. Nothing is imported when the file
// cannot be read; unparsable lines are skipped and logged.
func (c *CardS) ImportCards(ctx context.Context, path string) (string, error) {
	cards, err := c.files.LoadCards(ctx, path)
	if err != nil && !errors.Is(err, models.ErrMalformedLine) {
		c.log.Warn("failed to load cards", zap.String("path", path), zap.Error(err))
		return "File not found", err
	}
	if err != nil {
		c.log.Warn("skipped malformed card lines",
			zap.String("path", path),
			zap.Int("skipped", len(multierr.Errors(err))),
			zap.Errors("errors", multierr.Errors(err)),
		)
	}

	c.store.Import(cards)
	c.log.Info("cards imported", zap.String("path", path), zap.Int("count", len(cards)))

	return fmt.Sprintf("%d cards have been loaded.", len(cards)), nil
}

func (c *CardS) ExportCards(ctx context.Context, path string) (string, error) {
	cards := c.store.Export()
	if err := c.files.SaveCards(ctx, path, cards); err != nil {
		c.log.Warn("failed to export cards", zap.String("path", path), zap.Error(err))
		return fmt.Sprintf("An error occurred while saving the file: %v", err), err
	}

	c.log.Info("cards exported", zap.String("path", path), zap.Int("count", len(cards)))
	return fmt.Sprintf("%d cards have been saved.", len(cards)), nil
}

func (c *CardS) SaveLog(ctx context.Context, path string, lines []string) (string, error) {
	if err := c.logs.SaveLog(ctx, path, lines); err != nil {
		c.log.Warn("failed to save log", zap.String("path", path), zap.Error(err))
		return fmt.Sprintf("An error occurred while saving the log: %v", err), err
	}

	return "The log has been saved.", nil
}
