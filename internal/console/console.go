package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/DanRulev/flashcards/internal/storage/transcript"
	"go.uber.org/zap"
)

type ServiceI interface {
	CardSI
	QuizSI
}

// Options are the files handled around the interactive loop.
type Options struct {
	ImportPath string
	ExportPath string
}

// Console runs one interactive session. Everything it prints and reads is
// recorded in its transcript.
type Console struct {
	in         *bufio.Reader
	out        io.Writer
	transcript *transcript.Transcript
	service    ServiceI
	log        *zap.Logger
	opts       Options
}

func NewConsole(in io.Reader, out io.Writer, service ServiceI, log *zap.Logger, opts Options) *Console {
	return &Console{
		in:         bufio.NewReader(in),
		out:        out,
		transcript: transcript.New(),
		service:    service,
		log:        log,
		opts:       opts,
	}
}

// Run imports the startup file, serves actions until exit or end of input and
// then exports to the shutdown file.
func (c *Console) Run(ctx context.Context) error {
	if c.opts.ImportPath != "" {
		c.importCards(ctx, c.opts.ImportPath)
	}

	err := c.serve(ctx)

	if c.opts.ExportPath != "" {
		c.exportCards(context.WithoutCancel(ctx), c.opts.ExportPath)
	}

	return err
}

func (c *Console) serve(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		c.Say("\n" + menuPrompt)
		action, err := c.read()
		if err == nil {
			var done bool
			done, err = c.handleAction(ctx, action)
			if done {
				return nil
			}
		}

		if errors.Is(err, io.EOF) {
			c.log.Info("input closed, ending session")
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// Ask prints question and waits for the answer.
func (c *Console) Ask(question string) (string, error) {
	c.Say(question)
	return c.read()
}

func (c *Console) Say(text string) {
	c.transcript.Append(text)
	if _, err := fmt.Fprintln(c.out, text); err != nil {
		c.log.Warn("failed to write output", zap.Error(err))
	}
}

// read returns the next input line without its line ending. Lines have no
// length limit; a last line without a newline is still returned.
func (c *Console) read() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read input: %w", err)
	}
	if err != nil && line == "" {
		return "", io.EOF
	}

	line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
	c.transcript.Append(line)
	return line, nil
}
