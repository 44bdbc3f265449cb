package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/Shivarajkushals/Dashboard/internal/config"
	"github.com/Shivarajkushals/Dashboard/internal/usecases/reporting/mocks"
	"github.com/Shivarajkushals/Dashboard/pkg/log"
)

func TestCacheWarmupService_RunWarmup(t *testing.T) {
	log.SetupTestLogger()

	tests := []struct {
		name      string
		refresh   error
		wantError string
	}{
		{
			name: "sucesso",
		},
		{
			name:      "erro ao recarregar listas",
			refresh:   errors.New("connection refused"),
			wantError: "connection refused",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			reporter := mocks.NewMockReporter(ctrl)
			reporter.EXPECT().RefreshLists(gomock.Any()).Return(tt.refresh).Times(1)

			service := NewCacheWarmupService(reporter, config.Warmup{CronSchedule: "*/10 * * * *", Enabled: true})
			service.RunWarmup()

			status := service.GetStatus()
			assert.Equal(t, false, status["running"])
			assert.Equal(t, tt.wantError, status["last_error"])
			assert.False(t, status["last_completed_at"].(time.Time).IsZero())
		})
	}
}

func TestCacheWarmupService_SkipsConcurrentRun(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	service := NewCacheWarmupService(reporter, config.Warmup{Enabled: true})

	service.running = true

	service.RunWarmup()
	assert.False(t, service.TriggerManualRun())
}

func TestCacheWarmupService_TriggerManualRun(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	done := make(chan struct{})
	reporter.EXPECT().RefreshLists(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		close(done)
		return nil
	})

	service := NewCacheWarmupService(reporter, config.Warmup{Enabled: true})
	require.True(t, service.TriggerManualRun())

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("aquecimento manual não executou")
	}
}

func TestCacheWarmupService_StartDisabled(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := NewCacheWarmupService(mocks.NewMockReporter(ctrl), config.Warmup{Enabled: false})

	assert.NoError(t, service.Start(context.Background()))
}

func TestCacheWarmupService_StartInvalidCron(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	service := NewCacheWarmupService(mocks.NewMockReporter(ctrl), config.Warmup{Enabled: true, CronSchedule: "not a cron"})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	assert.Error(t, service.Start(ctx))
}

func TestCacheWarmupService_ManualRunsDoNotOverlap(t *testing.T) {
	log.SetupTestLogger()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	release := make(chan struct{})
	reporter.EXPECT().RefreshLists(gomock.Any()).DoAndReturn(func(ctx context.Context) error {
		<-release
		return nil
	}).Times(1)

	service := NewCacheWarmupService(reporter, config.Warmup{Enabled: true})

	// a primeira chamada marca a rodada antes de retornar, a segunda deve ser recusada
	require.True(t, service.TriggerManualRun())
	assert.False(t, service.TriggerManualRun())
	assert.Equal(t, true, service.GetStatus()["running"])

	close(release)

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, 2*time.Second, 10*time.Millisecond)
}

type warmupCtxKey struct{}

func TestCacheWarmupService_RunUsesStartContext(t *testing.T) {
	log.SetupTestLogger()

	ctx, cancel := context.WithCancel(context.WithValue(context.Background(), warmupCtxKey{}, "app"))
	defer cancel()

	ctrl := gomock.NewController(t)
	reporter := mocks.NewMockReporter(ctrl)
	reporter.EXPECT().RefreshLists(gomock.Any()).DoAndReturn(func(runCtx context.Context) error {
		assert.Equal(t, "app", runCtx.Value(warmupCtxKey{}))
		_, hasDeadline := runCtx.Deadline()
		assert.True(t, hasDeadline)
		return nil
	}).MinTimes(1)

	service := NewCacheWarmupService(reporter, config.Warmup{Enabled: true, CronSchedule: "0 0 1 1 *"})
	require.NoError(t, service.Start(ctx))

	service.RunWarmup()

	assert.Eventually(t, func() bool {
		return service.GetStatus()["running"] == false
	}, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "", service.GetStatus()["last_error"])
}
