package refresh

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"weatherforecast.app/internal/core/forecast"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const (
	SourceCaller = "caller"
	SourceRetry  = "retry"
)

// Listener receives the outcomes of refresh cycles. Calls are serialized.
type Listener interface {
	OnFreshData(snapshot forecast.Snapshot)
	OnCachedData(cached forecast.CachedSnapshot, silently bool)
	OnError(err error)
}

type Orchestrator struct {
	fetcher  ports.ForecastFetcher
	store    ports.ForecastStore
	listener Listener
	logger   ports.Logger
	metrics  ports.RefreshMetrics
	clock    Clock

	freshness   forecast.FreshnessPolicy
	maxAttempts int
	delayUnit   time.Duration

	ctx    context.Context
	cancel context.CancelFunc
	legs   sync.WaitGroup

	mu           sync.Mutex
	inFlight     bool
	attemptCount int
	pending      Timer
	retryGen     uint64
	nextRetryAt  time.Time
	closed       bool

	notifyMu sync.Mutex
}

type Dependencies struct {
	Fetcher  ports.ForecastFetcher
	Store    ports.ForecastStore
	Listener Listener
	Config   ports.ConfigProvider
	Logger   ports.Logger
	Metrics  ports.RefreshMetrics
	Clock    Clock
}

func NewOrchestrator(deps Dependencies) (*Orchestrator, error) {
	if deps.Fetcher == nil {
		return nil, errors.NewValidationError("fetcher is required")
	}
	if deps.Store == nil {
		return nil, errors.NewValidationError("store is required")
	}
	if deps.Listener == nil {
		return nil, errors.NewValidationError("listener is required")
	}
	if deps.Config == nil {
		return nil, errors.NewValidationError("config is required")
	}
	if deps.Logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}

	cfg := deps.Config.GetRefreshConfig()
	if cfg.MaxRetryAttempts < 0 {
		return nil, errors.NewValidationError("max retry attempts cannot be negative")
	}
	if cfg.RetryDelayUnit <= 0 {
		return nil, errors.NewValidationError("retry delay unit must be positive")
	}

	metrics := deps.Metrics
	if metrics == nil {
		metrics = noopMetrics{}
	}
	clock := deps.Clock
	if clock == nil {
		clock = SystemClock()
	}

	ctx, cancel := context.WithCancel(context.Background())
	return &Orchestrator{
		fetcher:     deps.Fetcher,
		store:       deps.Store,
		listener:    deps.Listener,
		logger:      deps.Logger,
		metrics:     metrics,
		clock:       clock,
		freshness:   forecast.NewFreshnessPolicy(cfg.CacheExpiration),
		maxAttempts: cfg.MaxRetryAttempts,
		delayUnit:   cfg.RetryDelayUnit,
		ctx:         ctx,
		cancel:      cancel,
	}, nil
}

// Refresh starts one refresh cycle and returns immediately. The cache read always runs;
// the network fetch is skipped while another one is in flight.
func (o *Orchestrator) Refresh() {
	o.refresh(SourceCaller)
}

func (o *Orchestrator) refresh(source string) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	attempt := o.attemptCount
	dispatch := !o.inFlight
	o.inFlight = true
	if dispatch {
		o.legs.Add(2)
	} else {
		o.legs.Add(1)
	}
	o.mu.Unlock()

	cycleID := uuid.NewString()
	o.metrics.RecordCycle(source)
	o.logger.Debug("Refresh cycle started",
		ports.F("cycle_id", cycleID),
		ports.F("source", source),
		ports.F("attempt", attempt))

	go o.loadCached(cycleID, attempt)

	if !dispatch {
		o.settleFailure(cycleID, errors.NewRequestInProgressError("forecast request already in flight"))
		return
	}
	go o.fetch(cycleID)
}

func (o *Orchestrator) loadCached(cycleID string, attempt int) {
	defer o.legs.Done()

	stored, err := o.store.LoadLast(o.ctx)
	if err == nil && stored == nil {
		err = errors.NewNotFoundError("store returned no forecast")
	}
	if err != nil {
		if !errors.IsNotFoundError(err) {
			o.logger.Warn("Failed to load cached forecast",
				ports.F("cycle_id", cycleID),
				ports.F("error", err))
		}
		o.notify(func(l Listener) {
			l.OnError(errors.NewNoCachedDataError("no cached forecast available", err))
		})
		return
	}

	cached := forecast.CachedFromPorts(stored)
	silently := o.freshness.IsFresh(&cached, o.clock.Now()) && attempt == 0
	o.metrics.RecordCachedServed(silently)
	o.logger.Debug("Serving cached forecast",
		ports.F("cycle_id", cycleID),
		ports.F("saved_at", cached.SavedAt),
		ports.F("silently", silently))
	o.notify(func(l Listener) {
		l.OnCachedData(cached, silently)
	})
}

func (o *Orchestrator) fetch(cycleID string) {
	defer o.legs.Done()

	start := o.clock.Now()
	data, err := o.fetcher.Fetch(o.ctx)
	duration := o.clock.Now().Sub(start)

	var snapshot forecast.Snapshot
	if err == nil {
		snapshot, err = toSnapshot(data)
	}

	o.mu.Lock()
	o.inFlight = false
	if err == nil {
		o.attemptCount = 0
	}
	o.mu.Unlock()

	if err != nil {
		o.metrics.RecordFetch(Classify(err).Class.String(), duration)
		o.settleFailure(cycleID, err)
		return
	}

	o.metrics.RecordFetch("success", duration)
	if saveErr := o.store.Save(o.ctx, data); saveErr != nil {
		o.logger.Warn("Failed to persist fetched forecast",
			ports.F("cycle_id", cycleID),
			ports.F("error", saveErr))
	}

	o.logger.Info("Forecast refreshed",
		ports.F("cycle_id", cycleID),
		ports.F("provider", snapshot.Provider),
		ports.F("duration_ms", duration.Milliseconds()))
	o.notify(func(l Listener) {
		l.OnFreshData(snapshot)
	})
}

func toSnapshot(data *ports.ForecastData) (forecast.Snapshot, error) {
	if data == nil {
		return forecast.Snapshot{}, errors.NewDecodingError("fetcher returned no forecast", nil)
	}
	snapshot := forecast.FromPorts(data)
	if err := snapshot.IsValid(); err != nil {
		return forecast.Snapshot{}, errors.NewDecodingError("invalid forecast payload", err)
	}
	return snapshot, nil
}

func (o *Orchestrator) settleFailure(cycleID string, err error) {
	classification := Classify(err)

	switch classification.Class {
	case ClassSilent:
		o.logger.Debug("Fetch skipped",
			ports.F("cycle_id", cycleID),
			ports.F("reason", err.Error()))

	case ClassImmediateTerminal:
		o.resetAttempts()
		o.reportTerminal(cycleID, classification, errors.NewDisplayError(classification.Message, err))

	case ClassRetryable:
		o.retryOrGiveUp(cycleID, classification, err)

	default:
		o.resetAttempts()
		o.reportTerminal(cycleID, classification, err)
	}
}

func (o *Orchestrator) retryOrGiveUp(cycleID string, classification Classification, err error) {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	if o.attemptCount >= o.maxAttempts {
		o.attemptCount = 0
		o.mu.Unlock()
		o.reportTerminal(cycleID, classification, err)
		return
	}

	o.attemptCount++
	attempt := o.attemptCount
	delay := time.Duration(attempt) * o.delayUnit

	// At most one retry timer is pending.
	if o.pending != nil {
		o.pending.Stop()
	}
	o.retryGen++
	gen := o.retryGen
	o.nextRetryAt = o.clock.Now().Add(delay)
	o.pending = o.clock.AfterFunc(delay, func() {
		o.fireRetry(gen)
	})
	o.mu.Unlock()

	o.metrics.RecordRetryScheduled(attempt, delay)
	o.logger.Info("Fetch failed, retry scheduled",
		ports.F("cycle_id", cycleID),
		ports.F("attempt", attempt),
		ports.F("delay_ms", delay.Milliseconds()),
		ports.F("error", err))
}

func (o *Orchestrator) fireRetry(gen uint64) {
	o.mu.Lock()
	if o.retryGen == gen {
		o.pending = nil
		o.nextRetryAt = time.Time{}
	}
	o.mu.Unlock()

	o.refresh(SourceRetry)
}

func (o *Orchestrator) resetAttempts() {
	o.mu.Lock()
	o.attemptCount = 0
	o.mu.Unlock()
}

func (o *Orchestrator) reportTerminal(cycleID string, classification Classification, err error) {
	o.metrics.RecordTerminalError(classification.Class.String())
	o.logger.Error("Refresh failed",
		ports.F("cycle_id", cycleID),
		ports.F("class", classification.Class.String()),
		ports.F("error", err))
	o.notify(func(l Listener) {
		l.OnError(err)
	})
}

func (o *Orchestrator) notify(fn func(l Listener)) {
	o.notifyMu.Lock()
	defer o.notifyMu.Unlock()
	fn(o.listener)
}

// State returns the current retry machine state
func (o *Orchestrator) State() ports.RefreshState {
	o.mu.Lock()
	defer o.mu.Unlock()
	return ports.RefreshState{
		AttemptCount: o.attemptCount,
		MaxAttempts:  o.maxAttempts,
		InFlight:     o.inFlight,
		RetryPending: o.pending != nil,
		NextRetryAt:  o.nextRetryAt,
	}
}

// Close stops any pending retry, cancels in-flight work and waits for running legs.
// Refresh is a no-op afterwards.
func (o *Orchestrator) Close() {
	o.mu.Lock()
	if o.closed {
		o.mu.Unlock()
		return
	}
	o.closed = true
	if o.pending != nil {
		o.pending.Stop()
		o.pending = nil
		o.nextRetryAt = time.Time{}
	}
	o.mu.Unlock()

	o.cancel()
	o.legs.Wait()
}

var _ ports.RefreshController = (*Orchestrator)(nil)
