// Package etl coordinates mapping runs: one stem snapshot routed through
// every registered rule, destination records appended, run stats recorded.
package etl

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/kafka"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/logger"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/mapping"
	"github.com/thehyve/omop-etl-wrapper/pkg/observability/metrics"
)

const (
	StatusCompleted = "completed"
	StatusFailed    = "failed"
)

// StemSource provides the immutable stem snapshot a run operates on.
type StemSource interface {
	Snapshot(ctx context.Context) ([]models.StemRecord, error)
}

type Service struct {
	source   StemSource
	registry *mapping.Registry
	engine   *mapping.Engine
	writer   Writer
	stats    StatsRecorder
	producer *kafka.Producer
}

func NewService(source StemSource, registry *mapping.Registry, engine *mapping.Engine, writer Writer, stats StatsRecorder, producer *kafka.Producer) *Service {
	return &Service{
		source:   source,
		registry: registry,
		engine:   engine,
		writer:   writer,
		stats:    stats,
		producer: producer,
	}
}

// RunTable maps the current stem snapshot into one destination table. When
// clear is set the destination is emptied first, making the run idempotent;
// without it a re-run appends duplicates, which is the caller's choice.
func (s *Service) RunTable(ctx context.Context, table string, clear bool) (models.MappingRun, error) {
	rule, ok := s.registry.ByTable(table)
	if !ok {
		return models.MappingRun{}, fmt.Errorf("no mapping rule registered for table %q", table)
	}

	records, err := s.source.Snapshot(ctx)
	if err != nil {
		return models.MappingRun{}, err
	}

	return s.runRule(ctx, rule, records, clear)
}

// RunAll maps one stem snapshot into every registered destination table. The
// rules are independent: each sees the same snapshot and writes only its own
// table, so a failed rule fails its own run without touching the others.
func (s *Service) RunAll(ctx context.Context, clear bool) ([]models.MappingRun, error) {
	records, err := s.source.Snapshot(ctx)
	if err != nil {
		return nil, err
	}

	runs := make([]models.MappingRun, 0, len(s.registry.Rules()))
	for _, rule := range s.registry.Rules() {
		run, err := s.runRule(ctx, rule, records, clear)
		if err != nil {
			return runs, err
		}
		runs = append(runs, run)
	}
	return runs, nil
}

func (s *Service) runRule(ctx context.Context, rule mapping.Rule, records []models.StemRecord, clear bool) (models.MappingRun, error) {
	run := models.MappingRun{
		ID:        uuid.New(),
		Table:     rule.Table,
		Domain:    rule.Domain,
		StartedAt: time.Now().UTC(),
	}

	if clear {
		if err := s.writer.Clear(ctx, rule.Table); err != nil {
			return s.fail(ctx, run, err)
		}
	}

	result, err := s.engine.Apply(ctx, rule, records)
	if err != nil {
		return s.fail(ctx, run, err)
	}

	if err := s.writer.Append(ctx, rule.Table, result.Records); err != nil {
		return s.fail(ctx, run, err)
	}

	completed := time.Now().UTC()
	run.Mapped = result.Mapped
	run.Unmapped = result.Unmapped
	run.OtherDomain = result.OtherDomain
	run.Status = StatusCompleted
	run.CompletedAt = &completed

	s.record(ctx, run)
	metrics.ObserveRun(run.Mapped, run.Unmapped, run.OtherDomain, false)

	logger.Log.WithFields(map[string]interface{}{
		"run_id":       run.ID.String(),
		"table":        run.Table,
		"domain":       string(run.Domain),
		"mapped":       run.Mapped,
		"unmapped":     run.Unmapped,
		"other_domain": run.OtherDomain,
	}).Info("Mapping run completed")

	s.publish(ctx, run)
	return run, nil
}

func (s *Service) fail(ctx context.Context, run models.MappingRun, cause error) (models.MappingRun, error) {
	completed := time.Now().UTC()
	run.Status = StatusFailed
	run.ErrorMsg = cause.Error()
	run.CompletedAt = &completed

	s.record(ctx, run)
	metrics.ObserveRun(0, 0, 0, true)

	logger.Log.WithError(cause).WithFields(map[string]interface{}{
		"run_id": run.ID.String(),
		"table":  run.Table,
	}).Error("Mapping run failed")

	return run, cause
}

func (s *Service) record(ctx context.Context, run models.MappingRun) {
	if s.stats == nil {
		return
	}
	if err := s.stats.Record(ctx, run); err != nil {
		logger.Log.WithError(err).Warn("Failed to record mapping run stats")
	}
}

func (s *Service) publish(ctx context.Context, run models.MappingRun) {
	if s.producer == nil {
		return
	}
	payload := map[string]interface{}{
		"run_id":       run.ID.String(),
		"table":        run.Table,
		"domain":       string(run.Domain),
		"mapped":       run.Mapped,
		"unmapped":     run.Unmapped,
		"other_domain": run.OtherDomain,
		"status":       run.Status,
	}
	if err := s.producer.PublishEvent(ctx, "domain-routed", "mapper-service", payload); err != nil {
		logger.Log.WithError(err).Warn("Failed to publish mapping run event")
	}
}
