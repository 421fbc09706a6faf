package console

import (
	"context"
	"strings"

	"go.uber.org/zap"
)

const (
	ActionAdd         = "add"
	ActionRemove      = "remove"
	ActionImport      = "import"
	ActionExport      = "export"
	ActionAsk         = "ask"
	ActionExit        = "exit"
	ActionLog         = "log"
	ActionHardestCard = "hardest card"
	ActionResetStats  = "reset stats"
)

const menuPrompt = "Input the action (add, remove, import, export, ask, exit, log, hardest card, reset stats):"

// handleAction runs one menu action. done reports that the session is over.
func (c *Console) handleAction(ctx context.Context, action string) (done bool, err error) {
	switch strings.TrimSpace(action) {
	case ActionAdd:
		err = c.addCard()
	case ActionRemove:
		err = c.removeCard()
	case ActionImport:
		err = c.askFile(func(path string) { c.importCards(ctx, path) })
	case ActionExport:
		err = c.askFile(func(path string) { c.exportCards(ctx, path) })
	case ActionAsk:
		err = c.ask(ctx)
	case ActionLog:
		err = c.askFile(func(path string) { c.saveLog(ctx, path) })
	case ActionHardestCard:
		c.Say(c.service.HardestCard())
	case ActionResetStats:
		c.Say(c.service.ResetStats())
	case ActionExit:
		c.Say("Bye bye!")
		return true, nil
	default:
		c.log.Debug("unknown action", zap.String("action", action))
		c.Say(`Unknown action "` + action + `".`)
	}

	return false, err
}

func (c *Console) askFile(handle func(path string)) error {
	path, err := c.Ask("File name:")
	if err != nil {
		return err
	}
	handle(path)
	return nil
}
