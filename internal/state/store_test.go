package state

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func newTestStore(opts ...Option) (*Store, *fakeClock) {
	clock := &fakeClock{t: time.Date(2025, 9, 1, 8, 0, 0, 0, time.UTC)}
	opts = append(opts, WithClock(clock.now))
	return NewStore(opts...), clock
}

func TestGetInitializesBotMode(t *testing.T) {
	s, _ := newTestStore()

	conv := s.Get("psid-1")
	require.Equal(t, ModeBot, conv.Mode)
	require.Equal(t, "psid-1", conv.SenderID)
	require.False(t, s.IsAdminMode("psid-1"))
}

func TestSetAdminModeSuppressesReplies(t *testing.T) {
	s, _ := newTestStore()

	s.SetAdminMode("psid-1")
	require.True(t, s.IsAdminMode("psid-1"))
	require.False(t, s.IsAdminMode("psid-2"))
}

func TestAdminModeAutoReleasesAfterTimeout(t *testing.T) {
	s, clock := newTestStore()

	s.SetAdminMode("psid-1")
	clock.advance(23 * time.Hour)
	require.True(t, s.IsAdminMode("psid-1"))

	clock.advance(time.Hour)
	require.False(t, s.IsAdminMode("psid-1"))

	// The transition is recorded, not just reported.
	require.Equal(t, ModeBot, s.Get("psid-1").Mode)
}

func TestAdminTimeoutNotRefreshedByActivity(t *testing.T) {
	s, clock := newTestStore()

	s.SetAdminMode("psid-1")
	clock.advance(12 * time.Hour)
	s.TouchUser("psid-1")
	require.True(t, s.IsAdminMode("psid-1"))

	clock.advance(12 * time.Hour)
	require.False(t, s.IsAdminMode("psid-1"))
}

func TestSetBotModeReleasesImmediately(t *testing.T) {
	s, _ := newTestStore()

	s.SetAdminMode("psid-1")
	s.SetBotMode("psid-1")
	require.False(t, s.IsAdminMode("psid-1"))
}

func TestWithAdminTimeoutOverride(t *testing.T) {
	s, clock := newTestStore(WithAdminTimeout(time.Minute))

	s.SetAdminMode("psid-1")
	clock.advance(59 * time.Second)
	require.True(t, s.IsAdminMode("psid-1"))
	clock.advance(time.Second)
	require.False(t, s.IsAdminMode("psid-1"))
}

func TestClearResetsState(t *testing.T) {
	s, _ := newTestStore()

	s.SetAdminMode("psid-1")
	s.Clear("psid-1")
	require.False(t, s.IsAdminMode("psid-1"))

	stats := s.Counts()
	require.Equal(t, 1, stats.Total) // IsAdminMode re-created it lazily
	require.Equal(t, 0, stats.Admin)
}

func TestCounts(t *testing.T) {
	s, clock := newTestStore()

	s.Get("a")
	s.SetAdminMode("b")
	s.SetAdminMode("c")

	stats := s.Counts()
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 2, stats.Admin)
	require.Equal(t, 0, stats.AdminReleases)

	// Expired takeovers are not counted as admin.
	clock.advance(25 * time.Hour)
	stats = s.Counts()
	require.Equal(t, 3, stats.Total)
	require.Equal(t, 0, stats.Admin)
}

func TestCountsTracksAdminReleases(t *testing.T) {
	s, clock := newTestStore()

	// One explicit release, one by timeout.
	s.SetAdminMode("a")
	s.SetBotMode("a")
	s.SetAdminMode("b")
	clock.advance(25 * time.Hour)
	require.False(t, s.IsAdminMode("b"))

	stats := s.Counts()
	require.Equal(t, 2, stats.AdminReleases)

	// Releasing a conversation already in bot mode is not a release.
	s.SetBotMode("a")
	require.Equal(t, 2, s.Counts().AdminReleases)
}
