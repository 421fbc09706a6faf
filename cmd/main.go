package main

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"fmt"
	"log"
	"math/rand"
	"os"

	"github.com/DanRulev/flashcards/internal/config"
	"github.com/DanRulev/flashcards/internal/console"
	"github.com/DanRulev/flashcards/internal/repository"
	"github.com/DanRulev/flashcards/internal/service"
	"github.com/DanRulev/flashcards/internal/storage/memory"
	"github.com/google/uuid"
	"github.com/spf13/afero"
	"go.uber.org/zap"
)

func setupLogger(cfg config.LogConfig, env string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	if env == "development" {
		zapCfg = zap.NewDevelopmentConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.Level)
	if err != nil {
		return nil, fmt.Errorf("failed to parse log level: %w", err)
	}
	zapCfg.Level = level
	zapCfg.OutputPaths = []string{cfg.Output}
	zapCfg.ErrorOutputPaths = []string{cfg.Output}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return logger.With(zap.String("session", uuid.NewString())), nil
}

func newSeed(seed int64) (int64, error) {
	if seed != 0 {
		return seed, nil
	}

	var b [8]byte
	if _, err := crand.Read(b[:]); err != nil {
		return 0, fmt.Errorf("read random seed: %w", err)
	}
	return int64(binary.LittleEndian.Uint64(b[:])), nil
}

func main() {
	cfg, err := config.Init(os.Args[1:], os.Stderr)
	if err != nil {
		log.Fatal("failed load config " + err.Error())
		return
	}

	logger, err := setupLogger(cfg.Log, cfg.Env)
	if err != nil {
		log.Fatal(err.Error())
		return
	}
	defer logger.Sync() //nolint:errcheck

	seed, err := newSeed(cfg.Quiz.Seed)
	if err != nil {
		logger.Fatal("failed to seed quiz", zap.Error(err))
	}

	store := memory.NewCards(rand.New(rand.NewSource(seed)))
	repos := repository.NewRepository(afero.NewOsFs())
	services := service.InitServices(store, repos, logger)

	session := console.NewConsole(os.Stdin, os.Stdout, services, logger, console.Options{
		ImportPath: cfg.Files.Import,
		ExportPath: cfg.Files.Export,
	})

	logger.Info("session started", zap.Int64("seed", seed))
	if err := session.Run(context.Background()); err != nil {
		logger.Fatal("session failed", zap.Error(err))
	}
}
