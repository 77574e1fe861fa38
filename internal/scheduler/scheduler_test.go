package scheduler

import (
	"context"
	stderrors "errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"weatherforecast.app/internal/mocks"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

type countingController struct {
	refreshes atomic.Int32
}

func (c *countingController) Refresh() {
	c.refreshes.Add(1)
}

func (c *countingController) State() ports.RefreshState {
	return ports.RefreshState{}
}

type countingPurger struct {
	calls atomic.Int32
	err   error
}

func (p *countingPurger) PurgeExpired(ctx context.Context) (int64, error) {
	p.calls.Add(1)
	return 1, p.err
}

func setupLoggerMock(t *testing.T) *mocks.Logger {
	logger := mocks.NewLogger(t)
	logger.EXPECT().Debug(mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Info(mock.Anything, mock.Anything, mock.Anything).Maybe()
	logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	return logger
}

func TestNewRefreshScheduler_Validation(t *testing.T) {
	logger := setupLoggerMock(t)
	controller := &countingController{}

	tests := []struct {
		name   string
		config Config
	}{
		{name: "MissingController", config: Config{Logger: logger, Interval: time.Minute}},
		{name: "MissingLogger", config: Config{Controller: controller, Interval: time.Minute}},
		{name: "ZeroInterval", config: Config{Controller: controller, Logger: logger}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := NewRefreshScheduler(tt.config)
			assert.Nil(t, s)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestRefreshScheduler_TriggersRefresh(t *testing.T) {
	controller := &countingController{}
	purger := &countingPurger{}

	s, err := NewRefreshScheduler(Config{
		Controller: controller,
		Purger:     purger,
		Interval:   20 * time.Millisecond,
		Logger:     setupLoggerMock(t),
	})
	require.NoError(t, err)

	require.NoError(t, s.Start())
	assert.True(t, s.IsRunning())
	assert.Equal(t, int32(0), controller.refreshes.Load())

	assert.Eventually(t, func() bool {
		return controller.refreshes.Load() >= 2 && purger.calls.Load() >= 1
	}, 2*time.Second, 5*time.Millisecond)

	s.Stop()
	assert.False(t, s.IsRunning())
}

func TestRefreshScheduler_PurgeFailureIsLogged(t *testing.T) {
	purger := &countingPurger{err: stderrors.New("database is locked")}
	logger := mocks.NewLogger(t)
	logger.EXPECT().Warn("Failed to purge expired store entries", mock.Anything).Once()

	s, err := NewRefreshScheduler(Config{
		Controller: &countingController{},
		Purger:     purger,
		Interval:   time.Minute,
		Logger:     logger,
	})
	require.NoError(t, err)

	s.runPurge()
	assert.Equal(t, int32(1), purger.calls.Load())
}

func TestRefreshScheduler_StopBeforeStart(t *testing.T) {
	s, err := NewRefreshScheduler(Config{
		Controller: &countingController{},
		Interval:   time.Minute,
		Logger:     mocks.NewLogger(t),
	})
	require.NoError(t, err)

	s.Stop()
	assert.False(t, s.IsRunning())
}
