package holiday

import (
	"context"
	"errors"

	"github.com/va6996/dateaware/log"
)

// Loader is a read-through cache: persisted copy first, remote source on a miss.
// There is no expiry and no de-duplication of concurrent cold fetches.
type Loader struct {
	store   Store
	source  Source
	metrics *Metrics
}

// NewLoader wires a store and a source. metrics may be nil.
func NewLoader(store Store, source Source, metrics *Metrics) *Loader {
	return &Loader{
		store:   store,
		source:  source,
		metrics: metrics,
	}
}

// GetHolidayMap returns the holiday map for year. It never fails: any error
// is logged and an empty map is returned.
func (l *Loader) GetHolidayMap(ctx context.Context, year int) Map {
	if m := l.loadCached(ctx, year); len(m) > 0 {
		l.metrics.hit()
		log.Debugf(ctx, "Holiday map for %d served from cache (%d entries)", year, len(m))
		return m
	}
	l.metrics.miss()

	if l.source == nil {
		return Map{}
	}

	m, err := l.source.Fetch(ctx, year)
	if err != nil {
		reason := fetchReason(err)
		l.metrics.fetchFailed(reason)
		log.WithField(ctx, "reason", reason).Errorf("Failed to download holiday data for %d: %v", year, err)
		return Map{}
	}
	if len(m) == 0 {
		log.Warnf(ctx, "Holiday source returned no dates for %d", year)
		return Map{}
	}

	if l.store != nil {
		if err := l.store.Save(ctx, year, m); err != nil {
			l.metrics.storeFailed("save")
			log.Warnf(ctx, "Failed to save holiday data for %d: %v", year, err)
		}
	}

	log.Infof(ctx, "Downloaded holiday data for %d (%d entries)", year, len(m))
	return m
}

func (l *Loader) loadCached(ctx context.Context, year int) Map {
	if l.store == nil {
		return nil
	}
	m, err := l.store.Load(ctx, year)
	if errors.Is(err, ErrNotCached) {
		return nil
	}
	if err != nil {
		l.metrics.storeFailed("load")
		log.Warnf(ctx, "Failed to load cached holiday data for %d: %v", year, err)
		return nil
	}
	return m
}
