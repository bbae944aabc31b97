package scheduler

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/go-co-op/gocron"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/sales-panel-api/internal/config"
	"github.com/vfg2006/sales-panel-api/internal/usecases/dashboarding"
	"github.com/vfg2006/sales-panel-api/pkg/cache"
	"github.com/vfg2006/sales-panel-api/pkg/metrics"
)

// Gatilhos de execução do limpador
const (
	TriggerCron   = "cron"
	TriggerManual = "manual"
)

// CacheJanitorConfig representa a configuração do limpador de caches
type CacheJanitorConfig struct {
	CronSchedule   string
	Enabled        bool
	MetadataWarmup bool
	WarmupTimeout  time.Duration
}

// CacheJanitorService remove periodicamente as entradas expiradas dos caches e,
// se habilitado, recarrega os metadados antes que algum usuário precise deles
type CacheJanitorService struct {
	scheduler          *gocron.Scheduler
	config             CacheJanitorConfig
	maintainer         dashboarding.CacheMaintainer
	extra              []cache.Purger
	runMutex           sync.Mutex
	running            bool
	lastRunStartedAt   time.Time
	lastRunCompletedAt time.Time
	lastRunTrigger     string
	lastPurged         int
	lastWarmupError    string
}

// NewCacheJanitorService cria o limpador. extra recebe caches que não pertencem ao
// painel (ex.: sessões).
func NewCacheJanitorService(
	maintainer dashboarding.CacheMaintainer,
	appConfig *config.Config,
	extra ...cache.Purger,
) *CacheJanitorService {
	janitorConfig := CacheJanitorConfig{
		CronSchedule:   appConfig.CacheJanitor.CronSchedule,
		Enabled:        appConfig.CacheJanitor.Enabled,
		MetadataWarmup: appConfig.CacheJanitor.MetadataWarmup,
		WarmupTimeout:  30 * time.Second,
	}

	logrus.WithFields(logrus.Fields{
		"cron_schedule":   janitorConfig.CronSchedule,
		"enabled":         janitorConfig.Enabled,
		"metadata_warmup": janitorConfig.MetadataWarmup,
	}).Info("Configuração do limpador de cache carregada")

	return &CacheJanitorService{
		scheduler:  gocron.NewScheduler(time.Local),
		config:     janitorConfig,
		maintainer: maintainer,
		extra:      extra,
	}
}

// Start agenda o limpador e o para quando ctx for cancelado
func (s *CacheJanitorService) Start(ctx context.Context) error {
	if !s.config.Enabled {
		logrus.Info("Limpador de cache desabilitado por configuração")
		return nil
	}

	logrus.WithField("cron", s.config.CronSchedule).Info("Iniciando agendador do limpador de cache")

	_, err := s.scheduler.Cron(s.config.CronSchedule).Do(func() {
		s.RunOnce(ctx, TriggerCron)
	})
	if err != nil {
		return fmt.Errorf("erro ao agendar limpador de cache: %w", err)
	}

	s.scheduler.StartAsync()

	go func() {
		<-ctx.Done()
		logrus.Info("Parando agendador do limpador de cache")
		s.scheduler.Stop()
	}()

	return nil
}

// RunOnce executa uma limpeza. Devolve false quando outra execução já está em andamento.
func (s *CacheJanitorService) RunOnce(ctx context.Context, trigger string) bool {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.WithField("trigger", trigger).Info("Limpeza de cache já em andamento, ignorando")
		return false
	}
	s.running = true
	s.lastRunStartedAt = time.Now()
	s.lastRunTrigger = trigger
	s.runMutex.Unlock()

	defer func() {
		s.runMutex.Lock()
		s.running = false
		s.lastRunCompletedAt = time.Now()
		s.runMutex.Unlock()
	}()

	metrics.JanitorRuns.WithLabelValues(trigger).Inc()

	purged := s.purge()

	warmupError := ""
	if s.config.MetadataWarmup {
		warmCtx, cancel := context.WithTimeout(ctx, s.config.WarmupTimeout)
		if err := s.maintainer.WarmMetadata(warmCtx); err != nil {
			warmupError = err.Error()
			logrus.WithError(err).Error("Erro ao aquecer cache de metadados")
		}
		cancel()
	}

	s.runMutex.Lock()
	s.lastPurged = purged
	s.lastWarmupError = warmupError
	s.runMutex.Unlock()

	logrus.WithFields(logrus.Fields{
		"trigger": trigger,
		"purged":  purged,
	}).Info("Limpeza de cache concluída")

	return true
}

func (s *CacheJanitorService) purge() int {
	purgers := append(s.maintainer.Caches(), s.extra...)

	total := 0
	for _, p := range purgers {
		removed := p.PurgeExpired()
		if removed > 0 {
			metrics.JanitorPurged.WithLabelValues(p.Name()).Add(float64(removed))
		}
		total += removed
	}
	return total
}

// TriggerManualRun dispara uma limpeza em segundo plano
func (s *CacheJanitorService) TriggerManualRun() {
	s.runMutex.Lock()
	if s.running {
		s.runMutex.Unlock()
		logrus.Info("Limpeza de cache já em andamento, ignorando solicitação manual")
		return
	}
	s.runMutex.Unlock()

	logrus.Info("Iniciando limpeza manual de cache")
	go s.RunOnce(context.Background(), TriggerManual)
}

// GetStatus retorna o status atual do limpador
func (s *CacheJanitorService) GetStatus() map[string]any {
	s.runMutex.Lock()
	defer s.runMutex.Unlock()

	return map[string]any{
		"janitor_enabled":       s.config.Enabled,
		"janitor_cron":          s.config.CronSchedule,
		"metadata_warmup":       s.config.MetadataWarmup,
		"running":               s.running,
		"last_run_trigger":      s.lastRunTrigger,
		"last_run_started_at":   s.lastRunStartedAt,
		"last_run_completed_at": s.lastRunCompletedAt,
		"last_run_purged":       s.lastPurged,
		"last_warmup_error":     s.lastWarmupError,
	}
}
