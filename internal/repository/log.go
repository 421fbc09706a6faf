package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/afero"
)

type LogR struct {
	fs afero.Fs
}

func NewLogRepository(fs afero.Fs) *LogR {
	return &LogR{fs: fs}
}

// SaveLog writes lines to path, one per line, replacing any existing file.
func (l *LogR) SaveLog(ctx context.Context, path string, lines []string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	var sb strings.Builder
	for _, line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}

	if err := afero.WriteFile(l.fs, path, []byte(sb.String()), 0o644); err != nil {
		return fmt.Errorf("write log file: %w", err)
	}
	return nil
}
