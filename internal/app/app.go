// Package app wires one full run: config, sources, seen state, pipeline,
// optional Telegram delivery, and the seen-state update afterwards.
package app

import (
	"context"
	"fmt"

	"newsbrief/internal/config"
	"newsbrief/internal/logger"
	"newsbrief/internal/metrics"
	"newsbrief/internal/pipeline"
	"newsbrief/internal/sources"
	"newsbrief/internal/storage"
	"newsbrief/internal/telegram"
)

// Run executes one brief generation pass and returns its result for the
// caller (the monitoring server caches it).
func Run(ctx context.Context) (*pipeline.Result, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	all, err := sources.Load(cfg.SourcesPath)
	if err != nil {
		return nil, fmt.Errorf("load sources: %w", err)
	}
	enabled := sources.Enabled(all)
	if len(enabled) == 0 {
		return nil, fmt.Errorf("no enabled sources in %s", cfg.SourcesPath)
	}
	logger.Info("sources loaded", "enabled", len(enabled), "total", len(all))

	store := storage.NewSeenStore(cfg.SeenStorePath, cfg.SeenTTLHours)
	if err := store.Load(); err != nil {
		// A broken store means re-seeing old articles, not a failed run.
		logger.Warn("seen store unreadable, starting fresh", "error", err)
	}

	res, err := pipeline.Run(ctx, enabled, store.SeenIDs(), cfg)
	if err != nil {
		metrics.Global.SetError(err.Error())
		return nil, err
	}

	if cfg.TelegramToken != "" && res.Brief.ArticleCount > 0 {
		if err := deliver(res, cfg); err != nil {
			logger.Error("brief delivery failed", "error", err)
		}
	}

	for _, a := range res.Brief.Articles {
		store.MarkSeen(a)
	}
	store.Prune()
	if err := store.Save(); err != nil {
		logger.Error("failed to save seen store", "error", err)
	}

	return res, nil
}

// deliver formats the brief for Telegram, shrinking the per-story text if
// the message would exceed Telegram's length limit.
func deliver(res *pipeline.Result, cfg *config.Config) error {
	msg := FormatBrief(res, len(res.Brief.Articles))

	// Telegram caps messages around 4096 chars.
	for limit := len(res.Brief.Articles) - 1; len(msg) > 4000 && limit > 0; limit-- {
		msg = FormatBrief(res, limit)
	}

	logger.Info("delivering brief", "chars", len(msg))
	return telegram.SendMessage(cfg.TelegramToken, cfg.TelegramChatID, msg)
}
