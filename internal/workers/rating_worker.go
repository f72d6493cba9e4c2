package workers

import (
	"context"
	"time"

	"gorm.io/gorm"

	"freelancehub_backend/internal/logger"
	"freelancehub_backend/internal/services"
)

const ratingWorkerName = "rating_worker"

type RatingWorkerConfig struct {
	Interval    time.Duration
	BatchSize   int
	Concurrency int
}

// RatingWorker периодически оценивает новые посты и пересчитывает уровни опыта.
type RatingWorker struct {
	db       *gorm.DB
	aiRating services.AIRatingService
	combined services.CombinedRatingService
	cfg      RatingWorkerConfig
}

func NewRatingWorker(db *gorm.DB, aiRating services.AIRatingService, combined services.CombinedRatingService, cfg RatingWorkerConfig) *RatingWorker {
	if cfg.Interval <= 0 {
		cfg.Interval = time.Hour
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = 100
	}
	if cfg.Concurrency <= 0 {
		cfg.Concurrency = 1
	}
	return &RatingWorker{db: db, aiRating: aiRating, combined: combined, cfg: cfg}
}

// Start запускает воркер в отдельной горутине
func (w *RatingWorker) Start(ctx context.Context) {
	go w.Run(ctx)
}

// Run блокируется до отмены ctx.
func (w *RatingWorker) Run(ctx context.Context) {
	ticker := time.NewTicker(w.cfg.Interval)
	defer ticker.Stop()

	logger.Info("Rating worker started", "interval", w.cfg.Interval.String())
	for {
		select {
		case <-ctx.Done():
			logger.Info("Rating worker stopped")
			return
		case <-ticker.C:
			w.RunOnce(ctx)
		}
	}
}

// RunOnce выполняет один проход: сначала неоцененные посты, потом уровни.
func (w *RatingWorker) RunOnce(ctx context.Context) {
	db := w.db
	if db != nil {
		db = db.WithContext(ctx)
	}

	rated, err := w.aiRating.AnalyzeUnratedPosts(ctx, db, w.cfg.BatchSize)
	logger.WorkerLog(ratingWorkerName, "analyze_unrated_posts", err, "rated", rated)
	if ctx.Err() != nil {
		return
	}

	updated, err := w.combined.RecomputeAllTiers(ctx, db, w.cfg.Concurrency)
	logger.WorkerLog(ratingWorkerName, "recompute_tiers", err, "updated", updated)
}
