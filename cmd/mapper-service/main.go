package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/thehyve/omop-etl-wrapper/pkg/cdm"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/config"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/database"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/kafka"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/logger"
	"github.com/thehyve/omop-etl-wrapper/pkg/common/models"
	"github.com/thehyve/omop-etl-wrapper/pkg/etl"
	"github.com/thehyve/omop-etl-wrapper/pkg/mapping"
	"github.com/thehyve/omop-etl-wrapper/pkg/observability/metrics"
	"github.com/thehyve/omop-etl-wrapper/pkg/schema"
	"github.com/thehyve/omop-etl-wrapper/pkg/stem"
	"github.com/thehyve/omop-etl-wrapper/pkg/vocabulary"
	"gorm.io/gorm"
)

type MapperService struct {
	service  *etl.Service
	registry *mapping.Registry
}

func main() {
	logger.Init()
	metrics.Init()
	cfg := config.Load()
	schemas := schema.FromConfig(cfg)

	db, err := database.GetPostgres()
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to connect to PostgreSQL")
	}
	defer database.ClosePostgres()

	if cfg.AutoMigrate {
		if err := cdm.Migrate(db, schemas); err != nil {
			logger.Log.WithError(err).Fatal("Failed to provision destination tables")
		}
	}

	// Rules are data: file-based when a rules dir is configured, built-in
	// otherwise.
	rules := mapping.DefaultRules()
	if cfg.RulesDir != "" {
		rules, err = mapping.LoadRules(cfg.RulesDir)
		if err != nil {
			logger.Log.WithError(err).Fatal("Failed to load mapping rules")
		}
	}
	registry, err := mapping.NewRegistry(rules...)
	if err != nil {
		logger.Log.WithError(err).Fatal("Invalid mapping rule configuration")
	}

	resolver, err := buildResolver(cfg, schemas, db)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to build vocabulary resolver")
	}

	source, err := stem.NewRepository(db, schemas)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to resolve stem schema")
	}

	stats, err := etl.NewGormStats(db, schemas)
	if err != nil {
		logger.Log.WithError(err).Fatal("Failed to resolve cdm schema")
	}
	if err := stats.EnsureTable(); err != nil {
		logger.Log.WithError(err).Fatal("Failed to provision mapping_run table")
	}

	producer := kafka.NewProducer(cfg.RoutedTopic)
	defer producer.Close()

	mapper := &MapperService{
		service: etl.NewService(
			source,
			registry,
			mapping.NewEngine(resolver),
			etl.NewGormWriter(db, schemas),
			stats,
			producer,
		),
		registry: registry,
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumer := kafka.NewConsumer(cfg.StemLoadedTopic, "mapper-service")
	defer consumer.Close()

	go func() {
		if err := consumer.Consume(ctx, mapper.processEvent); err != nil && err != context.Canceled {
			logger.Log.WithError(err).Fatal("Consumer error")
		}
	}()

	router := mux.NewRouter()
	router.HandleFunc("/health", healthCheck).Methods("GET")
	router.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		metrics.WritePrometheus(w)
	}).Methods("GET")
	router.HandleFunc("/api/v1/rules", mapper.handleListRules).Methods("GET")
	router.HandleFunc("/api/v1/runs", mapper.handleRun).Methods("POST")

	server := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.ServerHost, cfg.ServerPort),
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	go func() {
		logger.Log.WithFields(map[string]interface{}{
			"host": cfg.ServerHost,
			"port": cfg.ServerPort,
		}).Info("Mapper Service started")

		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.WithError(err).Fatal("Failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Log.Info("Shutting down Mapper Service...")
	cancel()

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Log.WithError(err).Error("Server forced to shutdown")
	}

	logger.Log.Info("Mapper Service stopped")
}

// buildResolver picks the vocabulary source: a YAML catalog when configured,
// otherwise the concept table in the vocabulary schema, fronted by the Redis
// lookup cache.
func buildResolver(cfg *config.Config, schemas schema.Map, db *gorm.DB) (vocabulary.Resolver, error) {
	if cfg.VocabCatalogPath != "" {
		return vocabulary.LoadSnapshot(cfg.VocabCatalogPath)
	}
	store, err := vocabulary.NewStore(db, schemas)
	if err != nil {
		return nil, err
	}
	return vocabulary.NewCachedResolver(store, database.GetRedis(), cfg.VocabCacheTTL), nil
}

func healthCheck(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy"}`))
}

func (s *MapperService) processEvent(ctx context.Context, event models.Event) error {
	logger.Log.WithFields(map[string]interface{}{
		"event_id": event.ID,
	}).Info("Stem load event received, starting mapping runs")

	_, err := s.service.RunAll(ctx, true)
	return err
}

type runRequest struct {
	Table string `json:"table,omitempty"`
	Clear bool   `json:"clear"`
}

func (s *MapperService) handleRun(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request", http.StatusBadRequest)
		return
	}

	var (
		runs []models.MappingRun
		err  error
	)
	if req.Table != "" {
		var run models.MappingRun
		run, err = s.service.RunTable(r.Context(), req.Table, req.Clear)
		runs = append(runs, run)
	} else {
		runs, err = s.service.RunAll(r.Context(), req.Clear)
	}
	if err != nil {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]interface{}{
			"error": err.Error(),
			"runs":  runs,
		})
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"runs": runs})
}

func (s *MapperService) handleListRules(w http.ResponseWriter, r *http.Request) {
	type ruleSummary struct {
		Table   string   `json:"table"`
		Domain  string   `json:"domain"`
		Columns []string `json:"columns"`
	}
	summaries := make([]ruleSummary, 0)
	for _, rule := range s.registry.Rules() {
		summaries = append(summaries, ruleSummary{
			Table:   rule.Table,
			Domain:  string(rule.Domain),
			Columns: rule.ColumnNames(),
		})
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{"rules": summaries})
}
