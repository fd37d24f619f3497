package geocoding

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"placebook/config"
	"placebook/internal/domain/entity"
	"placebook/internal/domain/service"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
)

const (
	defaultHandleTTL         = 10 * time.Minute
	defaultSessionTTL        = 5 * time.Minute
	defaultSuggestionLimit   = 8
	anonymousSessionKey      = "anonymous"
	suggestionQuerySeparator = ", "
)

// Autocompleter implements service.SuggestionProvider. Each session gets its
// own debouncer; completion handles are kept per suggestion ID for Resolve.
type Autocompleter struct {
	provider service.PlaceProvider
	debounce time.Duration
	limit    int
	metrics  *Metrics
	logger   *slog.Logger

	handles  *cache.Cache // suggestion ID -> provider completion handle
	sessions *cache.Cache // session key -> *Debouncer
	mu       sync.Mutex
}

// NewAutocompleter creates the autocomplete adapter.
func NewAutocompleter(provider service.PlaceProvider, cfg *config.AutocompleteConfig, metrics *Metrics, logger *slog.Logger) *Autocompleter {
	debounce := DefaultDebounce
	handleTTL := defaultHandleTTL
	sessionTTL := defaultSessionTTL
	limit := defaultSuggestionLimit
	if cfg != nil {
		if cfg.Debounce > 0 {
			debounce = cfg.Debounce
		}
		if cfg.HandleTTL > 0 {
			handleTTL = cfg.HandleTTL
		}
		if cfg.SessionTTL > 0 {
			sessionTTL = cfg.SessionTTL
		}
		if cfg.ResultLimit > 0 {
			limit = cfg.ResultLimit
		}
	}

	sessions := cache.New(sessionTTL, sessionTTL)
	sessions.OnEvicted(func(_ string, value any) {
		if d, ok := value.(*Debouncer); ok {
			d.Close()
		}
	})

	return &Autocompleter{
		provider: provider,
		debounce: debounce,
		limit:    limit,
		metrics:  metrics,
		logger:   logger,
		handles:  cache.New(handleTTL, handleTTL*2),
		sessions: sessions,
	}
}

// NewSuggestionProvider exposes the autocompleter as the domain port.
func NewSuggestionProvider(a *Autocompleter) service.SuggestionProvider {
	return a
}

// Suggest debounces query within the session and returns suggestion-only locations.
func (a *Autocompleter) Suggest(ctx context.Context, sessionKey, query string) []entity.Location {
	return a.session(sessionKey).Submit(ctx, query)
}

// Resolve turns a suggestion into a located search result. It uses the
// retained completion handle and falls back to a text search on
// "name, address" when the handle is gone or cannot be resolved.
func (a *Autocompleter) Resolve(ctx context.Context, suggestion entity.Location) (*entity.Location, bool) {
	if handle, ok := a.handle(suggestion.ID); ok {
		started := time.Now()

		pm, err := a.provider.ResolveCompletion(ctx, handle)
		switch {
		case err != nil:
			a.metrics.Observe(OperationResolve, OutcomeError, started)
			a.logger.Warn("Resolving completion failed, falling back to search",
				slog.String("suggestion_id", suggestion.ID.String()),
				slog.Any("error", err),
			)
		case pm == nil:
			a.metrics.Observe(OperationResolve, OutcomeEmpty, started)
		default:
			a.metrics.Observe(OperationResolve, OutcomeSuccess, started)

			return locationFromPlacemark(*pm, suggestion), true
		}
	}

	query := joinNonEmpty(suggestionQuerySeparator, suggestion.Name, suggestion.Address)
	if query == "" {
		return nil, false
	}

	started := time.Now()

	placemarks, err := a.provider.Search(ctx, query, nil, 1)
	if err != nil {
		a.metrics.Observe(OperationResolve, OutcomeError, started)
		a.logger.Warn("Suggestion fallback search failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil, false
	}

	if len(placemarks) == 0 {
		a.metrics.Observe(OperationResolve, OutcomeEmpty, started)

		return nil, false
	}

	a.metrics.Observe(OperationResolve, OutcomeSuccess, started)

	return locationFromPlacemark(placemarks[0], suggestion), true
}

// EndSession resolves the session's pending request and forgets the session.
func (a *Autocompleter) EndSession(sessionKey string) {
	a.sessions.Delete(normalizeSessionKey(sessionKey))
}

// Close ends every open session. Pending callers receive an empty list.
func (a *Autocompleter) Close() {
	for key := range a.sessions.Items() {
		a.sessions.Delete(key)
	}
}

func (a *Autocompleter) session(sessionKey string) *Debouncer {
	key := normalizeSessionKey(sessionKey)

	a.mu.Lock()
	defer a.mu.Unlock()

	if value, ok := a.sessions.Get(key); ok {
		if d, ok := value.(*Debouncer); ok {
			// Refresh the expiration on every keystroke.
			a.sessions.SetDefault(key, d)

			return d
		}
	}

	d := NewDebouncer(a.debounce, a.fetch)
	a.sessions.SetDefault(key, d)

	return d
}

func (a *Autocompleter) handle(id uuid.UUID) (string, bool) {
	if id == uuid.Nil {
		return "", false
	}

	value, ok := a.handles.Get(id.String())
	if !ok {
		return "", false
	}

	handle, ok := value.(string)

	return handle, ok && handle != ""
}

// fetch is the debouncer callback: one upstream completion call per settled query.
func (a *Autocompleter) fetch(ctx context.Context, query string) []entity.Location {
	started := time.Now()

	completions, err := a.provider.Complete(ctx, query, a.limit)
	if err != nil {
		if ctx.Err() != nil {
			// Superseded or abandoned while in flight.
			return nil
		}

		a.metrics.Observe(OperationComplete, OutcomeError, started)
		a.logger.Warn("Autocomplete request failed",
			slog.String("query", query),
			slog.Any("error", err),
		)

		return nil
	}

	outcome := OutcomeSuccess
	if len(completions) == 0 {
		outcome = OutcomeEmpty
	}
	a.metrics.Observe(OperationComplete, outcome, started)

	now := time.Now()
	suggestions := make([]entity.Location, 0, len(completions))
	for _, c := range completions {
		suggestion := entity.NewLocation(entity.LocationParams{
			Name:    c.Title,
			Address: c.Subtitle,
			Origin:  entity.OriginSuggestion,
			Now:     now,
		})
		a.handles.SetDefault(suggestion.ID.String(), c.Handle)
		suggestions = append(suggestions, *suggestion)
	}

	return suggestions
}

// locationFromPlacemark builds a search_result location. Coordinates come
// from the provider; the suggestion fills in missing text.
func locationFromPlacemark(pm service.Placemark, suggestion entity.Location) *entity.Location {
	name := strings.TrimSpace(pm.Name)
	if name == "" {
		name = suggestion.Name
	}

	address := FormatAddress(pm)
	if address == "" {
		address = suggestion.Address
	}

	return entity.NewLocation(entity.LocationParams{
		ExternalPlaceID: pm.ExternalID,
		Name:            name,
		Address:         address,
		Coordinate:      pm.Coordinate,
		Origin:          entity.OriginSearchResult,
	})
}

func normalizeSessionKey(sessionKey string) string {
	if strings.TrimSpace(sessionKey) == "" {
		return anonymousSessionKey
	}

	return sessionKey
}

func joinNonEmpty(sep string, values ...string) string {
	parts := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			parts = append(parts, v)
		}
	}

	return strings.Join(parts, sep)
}
