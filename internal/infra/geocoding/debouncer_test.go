package geocoding

import (
	"context"
	"sync"
	"testing"
	"time"

	"placebook/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

const testDebounce = 20 * time.Millisecond

// recordingFetch returns a FetchFunc that remembers every query it was called with.
type recordingFetch struct {
	mu      sync.Mutex
	queries []string
}

func (r *recordingFetch) fetch(_ context.Context, query string) []entity.Location {
	r.mu.Lock()
	r.queries = append(r.queries, query)
	r.mu.Unlock()

	return []entity.Location{{Name: query, Origin: entity.OriginSuggestion}}
}

func (r *recordingFetch) calls() []string {
	r.mu.Lock()
	defer r.mu.Unlock()

	return append([]string(nil), r.queries...)
}

func receive(t *testing.T, ch <-chan []entity.Location) []entity.Location {
	t.Helper()

	select {
	case locations := <-ch:
		return locations
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for debounced result")

		return nil
	}
}

// verifyNoLeaks checks for goroutines started by the test itself. Cache
// janitors owned by other tests in the package run until process exit.
func verifyNoLeaks(t *testing.T) {
	t.Helper()

	goleak.VerifyNone(t,
		goleak.IgnoreTopFunction("github.com/patrickmn/go-cache.(*janitor).Run"),
	)
}

func TestDebouncer_FiresAfterQuietPeriod(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(testDebounce, rec.fetch)

	started := time.Now()
	locations := d.Submit(context.Background(), "pizza")

	assert.GreaterOrEqual(t, time.Since(started), testDebounce)
	require.Len(t, locations, 1)
	assert.Equal(t, "pizza", locations[0].Name)
	assert.Equal(t, []string{"pizza"}, rec.calls())
	assert.False(t, d.Pending())
}

func TestDebouncer_LastWriteWins(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(testDebounce, rec.fetch)
	ctx := context.Background()

	first := d.SubmitAsync(ctx, "p")
	second := d.SubmitAsync(ctx, "pi")
	third := d.SubmitAsync(ctx, "pizza")

	assert.Empty(t, receive(t, first))
	assert.Empty(t, receive(t, second))

	locations := receive(t, third)
	require.Len(t, locations, 1)
	assert.Equal(t, "pizza", locations[0].Name)

	// Only the last edit inside the window goes upstream.
	assert.Equal(t, []string{"pizza"}, rec.calls())
}

func TestDebouncer_SupersededResultsAreNonNil(t *testing.T) {
	defer verifyNoLeaks(t)

	d := NewDebouncer(time.Second, func(context.Context, string) []entity.Location { return nil })

	first := d.SubmitAsync(context.Background(), "a")
	d.Close()

	locations := receive(t, first)
	assert.NotNil(t, locations)
	assert.Empty(t, locations)
}

func TestDebouncer_BlankQuerySupersedesWithoutFetching(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(testDebounce, rec.fetch)
	ctx := context.Background()

	pending := d.SubmitAsync(ctx, "pizza")
	assert.Empty(t, d.Submit(ctx, "   "))
	assert.Empty(t, receive(t, pending))

	time.Sleep(3 * testDebounce)
	assert.Empty(t, rec.calls())
	assert.False(t, d.Pending())
}

func TestDebouncer_CallerCancellationReleasesSlot(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(time.Second, rec.fetch)

	ctx, cancel := context.WithTimeout(context.Background(), testDebounce)
	defer cancel()

	assert.Empty(t, d.Submit(ctx, "pizza"))
	assert.False(t, d.Pending())
	assert.Empty(t, rec.calls())
}

func TestDebouncer_AsyncCancellationReleasesSlot(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(time.Second, rec.fetch)

	ctx, cancel := context.WithCancel(context.Background())
	result := d.SubmitAsync(ctx, "pizza")
	cancel()

	assert.Empty(t, receive(t, result))
	assert.Eventually(t, func() bool { return !d.Pending() }, time.Second, 5*time.Millisecond)
	assert.Empty(t, rec.calls())
}

func TestDebouncer_SupersedeCancelsInFlightFetch(t *testing.T) {
	defer verifyNoLeaks(t)

	inFlight := make(chan struct{})
	canceled := make(chan struct{})

	d := NewDebouncer(testDebounce, func(ctx context.Context, query string) []entity.Location {
		if query == "slow" {
			close(inFlight)
			<-ctx.Done()
			close(canceled)

			return []entity.Location{{Name: "stale"}}
		}

		return []entity.Location{{Name: query}}
	})
	ctx := context.Background()

	slow := d.SubmitAsync(ctx, "slow")
	receiveSignal(t, inFlight)

	fast := d.SubmitAsync(ctx, "fast")

	assert.Empty(t, receive(t, slow))
	receiveSignal(t, canceled)

	locations := receive(t, fast)
	require.Len(t, locations, 1)
	assert.Equal(t, "fast", locations[0].Name)
}

func TestDebouncer_ClosedRejectsSubmissions(t *testing.T) {
	defer verifyNoLeaks(t)

	rec := &recordingFetch{}
	d := NewDebouncer(testDebounce, rec.fetch)

	pending := d.SubmitAsync(context.Background(), "pizza")
	d.Close()

	assert.Empty(t, receive(t, pending))
	assert.Empty(t, d.Submit(context.Background(), "pasta"))
	assert.Empty(t, rec.calls())
}

func receiveSignal(t *testing.T, ch <-chan struct{}) {
	t.Helper()

	select {
	case <-ch:
	case <-time.After(2 * time.Second):
		t.Fatal("timed out waiting for signal")
	}
}
