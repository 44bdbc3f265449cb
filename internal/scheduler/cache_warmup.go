package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"

	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/internal/usecases/reporting"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
	"github.com/Shivarajkushals/Dashboard/pkg/metrics"
)

const warmupTimeout = 2 * time.Minute

// CacheWarmupService recarrega periodicamente as listas de filtros no cache
type CacheWarmupService struct {
	scheduler       *gocron.Scheduler
	config          config.Warmup
	reporter        reporting.Reporter
	ctx             context.Context
	running         bool
	mutex           sync.Mutex
	lastStartedAt   time.Time
	lastCompletedAt time.Time
	lastError       string
}

func NewCacheWarmupService(reporter reporting.Reporter, cfg config.Warmup) *CacheWarmupService {
	log.L.WithFields(log.Fields{
		"cron_schedule": cfg.CronSchedule,
		"enabled":       cfg.Enabled,
	}).Info("Configuração do aquecimento de cache carregada")

	return &CacheWarmupService{
		scheduler: gocron.NewScheduler(time.Local),
		config:    cfg,
		reporter:  reporter,
		ctx:       context.Background(),
	}
}

// Start agenda o aquecimento e para o agendador quando ctx for cancelado
func (s *CacheWarmupService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		log.L.Info("Aquecimento de cache desabilitado por configuração")
		return nil
	}

	s.mutex.Lock()
	s.ctx = ctx
	s.mutex.Unlock()

	log.L.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador de aquecimento de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(s.RunWarmup)
	if err != nil {
		return fmt.Errorf("erro ao agendar aquecimento de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		log.L.Info("Parando agendador de aquecimento de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunWarmup executa uma rodada de aquecimento. Rodadas concorrentes são ignoradas.
func (s *CacheWarmupService) RunWarmup() {
	ctx, ok := s.begin()
	if !ok {
		log.L.Info("Aquecimento de cache já em andamento, ignorando")
		return
	}

	s.execute(ctx)
}

// TriggerManualRun dispara o aquecimento em background. Retorna false se já houver uma rodada em andamento.
func (s *CacheWarmupService) TriggerManualRun() bool {
	ctx, ok := s.begin()
	if !ok {
		log.L.Info("Aquecimento de cache já em andamento, ignorando solicitação manual")
		return false
	}

	log.L.Info("Iniciando aquecimento manual de cache")
	go s.execute(ctx)
	return true
}

// begin marca a rodada como em andamento. Quem recebe ok=true deve chamar execute.
func (s *CacheWarmupService) begin() (context.Context, bool) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.running {
		return nil, false
	}

	s.running = true
	s.lastStartedAt = time.Now()
	return s.ctx, true
}

func (s *CacheWarmupService) execute(parent context.Context) {
	ctx, cancel := context.WithTimeout(parent, warmupTimeout)
	defer cancel()
	ctx, _ = log.WithCorrelationID(ctx)

	start := time.Now()
	err := s.reporter.RefreshLists(ctx)
	metrics.RecordCacheWarmup(err)

	s.mutex.Lock()
	s.running = false
	s.lastCompletedAt = time.Now()
	s.lastError = ""
	if err != nil {
		s.lastError = err.Error()
	}
	s.mutex.Unlock()

	logger := log.ForContext(ctx).WithField("duration", time.Since(start).String())
	if err != nil {
		logger.WithError(err).Error("Erro no aquecimento de cache")
		return
	}
	logger.Info("Aquecimento de cache concluído")
}

// GetStatus retorna o estado atual do aquecimento
func (s *CacheWarmupService) GetStatus() map[string]any {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	return map[string]any{
		"running":           s.running,
		"cron":              s.config.CronSchedule,
		"enabled":           s.config.Enabled,
		"last_started_at":   s.lastStartedAt,
		"last_completed_at": s.lastCompletedAt,
		"last_error":        s.lastError,
	}
}
