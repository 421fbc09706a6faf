package console

import (
	"context"

	"go.uber.org/zap"
)

type CardSI interface {
	CheckTerm(term string) (string, error)
	AddCard(term, definition string) (string, error)
	RemoveCard(term string) (string, error)
	ImportCards(ctx context.Context, path string) (string, error)
	ExportCards(ctx context.Context, path string) (string, error)
	SaveLog(ctx context.Context, path string, lines []string) (string, error)
}

func (c *Console) addCard() error {
	term, err := c.Ask("The card:")
	if err != nil {
		return err
	}
	if msg, err := c.service.CheckTerm(term); err != nil {
		c.Say(msg)
		return nil
	}

	definition, err := c.Ask("The definition of the card:")
	if err != nil {
		return err
	}

	msg, err := c.service.AddCard(term, definition)
	if err != nil {
		c.log.Debug("card rejected", zap.String("term", term), zap.Error(err))
	}
	c.Say(msg)
	return nil
}

func (c *Console) removeCard() error {
	term, err := c.Ask("Which card?")
	if err != nil {
		return err
	}

	msg, err := c.service.RemoveCard(term)
	if err != nil {
		c.log.Debug("card not removed", zap.String("term", term), zap.Error(err))
	}
	c.Say(msg)
	return nil
}

func (c *Console) importCards(ctx context.Context, path string) {
	msg, _ := c.service.ImportCards(ctx, path)
	c.Say(msg)
}

func (c *Console) exportCards(ctx context.Context, path string) {
	msg, _ := c.service.ExportCards(ctx, path)
	c.Say(msg)
}

// saveLog writes the transcript so far, including the file name just typed.
func (c *Console) saveLog(ctx context.Context, path string) {
	msg, _ := c.service.SaveLog(ctx, path, c.transcript.Lines())
	c.Say(msg)
}
