package display

import (
	stderrors "errors"
	"fmt"
	"sync"
	"time"

	"weatherforecast.app/internal/core/forecast"
	"weatherforecast.app/internal/core/refresh"
	"weatherforecast.app/internal/ports"
	"weatherforecast.app/pkg/errors"
)

const (
	SourceFresh  = "fresh"
	SourceCached = "cached"

	lastUpdatedLayout = "02 Jan 2006 15:04"
)

// Presenter turns refresh outcomes into the current display state.
// Rendering is idempotent: outcomes may arrive in any order within a cycle.
type Presenter struct {
	mu       sync.RWMutex
	snapshot *forecast.Snapshot
	source   string
	dataTime time.Time
	savedAt  *time.Time
	notice   string
	errMsg   string
	updated  time.Time

	logger ports.Logger
	now    func() time.Time
}

func NewPresenter(logger ports.Logger) (*Presenter, error) {
	if logger == nil {
		return nil, errors.NewValidationError("logger is required")
	}
	return &Presenter{logger: logger, now: time.Now}, nil
}

func (p *Presenter) OnFreshData(snapshot forecast.Snapshot) {
	p.mu.Lock()
	defer p.mu.Unlock()

	dataTime := snapshot.FetchedAt
	if dataTime.IsZero() {
		dataTime = p.now()
	}

	p.snapshot = &snapshot
	p.source = SourceFresh
	p.dataTime = dataTime
	p.savedAt = nil
	p.notice = ""
	p.errMsg = ""
	p.updated = p.now()

	p.logger.Debug("Displaying fresh forecast", ports.F("provider", snapshot.Provider))
}

func (p *Presenter) OnCachedData(cached forecast.CachedSnapshot, silently bool) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.snapshot != nil && !cached.SavedAt.After(p.dataTime) {
		p.logger.Debug("Ignoring cached forecast older than displayed data",
			ports.F("saved_at", cached.SavedAt),
			ports.F("displayed_at", p.dataTime))
		return
	}

	savedAt := cached.SavedAt
	snapshot := cached.Snapshot
	p.snapshot = &snapshot
	p.source = SourceCached
	p.dataTime = savedAt
	p.savedAt = &savedAt
	p.notice = ""
	if !silently {
		p.notice = LastUpdatedNotice(savedAt)
	}
	p.updated = p.now()
}

func (p *Presenter) OnError(err error) {
	if errors.IsNoCachedDataError(err) {
		p.logger.Debug("No cached forecast to display", ports.F("error", err))
		return
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	p.errMsg = ErrorMessage(err)
	p.updated = p.now()
}

// Current returns a copy of the display state
func (p *Presenter) Current() ports.DisplayState {
	p.mu.RLock()
	defer p.mu.RUnlock()

	state := ports.DisplayState{
		Source:    p.source,
		Notice:    p.notice,
		Error:     p.errMsg,
		UpdatedAt: p.updated,
	}
	if p.snapshot != nil {
		state.Forecast = forecast.ToPorts(*p.snapshot)
	}
	if p.savedAt != nil {
		savedAt := *p.savedAt
		state.SavedAt = &savedAt
	}
	return state
}

// LastUpdatedNotice formats the staleness notice shown with cached data
func LastUpdatedNotice(savedAt time.Time) string {
	return fmt.Sprintf("Last updated: %s", savedAt.Format(lastUpdatedLayout))
}

// ErrorMessage returns the user-facing text for an outcome error
func ErrorMessage(err error) string {
	var appErr *errors.AppError
	if stderrors.As(err, &appErr) && appErr.Type == errors.DisplayError {
		return appErr.Message
	}
	return refresh.Classify(err).Message
}

var (
	_ refresh.Listener      = (*Presenter)(nil)
	_ ports.ForecastDisplay = (*Presenter)(nil)
)
