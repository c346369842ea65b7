package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"avatarhub/internal/dashboard"
	"avatarhub/internal/model"
	"avatarhub/internal/repository"
	"avatarhub/internal/service"
)

func newFactory() Factory {
	return func() *dashboard.Dashboard {
		repo := repository.NewAvatarRepository(model.SeedAvatars(), nil)
		return dashboard.New(service.NewAvatarService(repo), dashboard.DefaultPageSize)
	}
}

func TestRegistry_CreateGet(t *testing.T) {
	reg := NewRegistry(newFactory(), Options{TTL: time.Hour})

	s := reg.Create()
	got, ok := reg.Get(s.ID)

	require.True(t, ok)
	assert.Same(t, s, got)
	_, ok = reg.Get("unknown")
	assert.False(t, ok)
}

func TestRegistry_SessionsAreIsolated(t *testing.T) {
	reg := NewRegistry(newFactory(), Options{TTL: time.Hour})
	ctx := context.Background()
	a, b := reg.Create(), reg.Create()

	require.NoError(t, a.Do(func(d *dashboard.Dashboard) error {
		d.OpenCreate()
		_, err := d.SubmitCreate(ctx)
		return err
	}))

	var totalA, totalB int
	_ = a.Do(func(d *dashboard.Dashboard) error {
		totalA = d.Snapshot(ctx, time.Now()).Stats.TotalAvatars
		return nil
	})
	_ = b.Do(func(d *dashboard.Dashboard) error {
		totalB = d.Snapshot(ctx, time.Now()).Stats.TotalAvatars
		return nil
	})
	assert.Equal(t, 4, totalA)
	assert.Equal(t, 3, totalB)
}

func TestRegistry_Expiry(t *testing.T) {
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	reg := NewRegistry(newFactory(), Options{TTL: time.Minute, Now: func() time.Time { return now }})

	old := reg.Create()
	now = now.Add(30 * time.Second)
	fresh := reg.Create()
	now = now.Add(45 * time.Second)

	_, ok := reg.Get(old.ID)
	assert.False(t, ok)
	_, ok = reg.Get(fresh.ID)
	assert.True(t, ok)
	assert.Equal(t, 1, reg.Len())
}

func TestMiddleware_ReusesCookieSession(t *testing.T) {
	e := echo.New()
	reg := NewRegistry(newFactory(), Options{TTL: time.Hour})
	var seen []string
	h := Middleware(reg)(func(c echo.Context) error {
		seen = append(seen, FromContext(c).ID)
		return c.NoContent(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, CookieName, cookies[0].Name)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(cookies[0])
	rec = httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	assert.Empty(t, rec.Result().Cookies(), "existing session sets no new cookie")
	require.Len(t, seen, 2)
	assert.Equal(t, seen[0], seen[1])
}

func TestMiddleware_UnknownCookieStartsNewSession(t *testing.T) {
	e := echo.New()
	reg := NewRegistry(newFactory(), Options{TTL: time.Hour})
	h := Middleware(reg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "stale"})
	rec := httptest.NewRecorder()
	require.NoError(t, h(e.NewContext(req, rec)))

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.NotEqual(t, "stale", cookies[0].Value)
	assert.Equal(t, 1, reg.Len())
}

func TestRegistry_ExpiryHandsOverTrackedImages(t *testing.T) {
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	var released []model.ImageRef
	reg := NewRegistry(newFactory(), Options{
		TTL:      time.Minute,
		Now:      func() time.Time { return now },
		OnExpire: func(s *Session) { released = append(released, s.Images()...) },
	})

	s := reg.Create()
	s.TrackImage("/images/a")
	s.TrackImage("")
	require.NoError(t, s.Do(func(d *dashboard.Dashboard) error {
		s.TrackImage("/images/b")
		return nil
	}))

	now = now.Add(2 * time.Minute)
	_, ok := reg.Get(s.ID)

	assert.False(t, ok)
	assert.Equal(t, []model.ImageRef{"/images/a", "/images/b"}, released)
}

func TestRegistry_ActiveSessionNeverExpires(t *testing.T) {
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	expired := 0
	reg := NewRegistry(newFactory(), Options{
		TTL:      time.Minute,
		Now:      func() time.Time { return now },
		OnExpire: func(*Session) { expired++ },
	})
	s := reg.Create()

	for i := 0; i < 10; i++ {
		now = now.Add(40 * time.Second)
		_, ok := reg.Get(s.ID)
		require.True(t, ok)
	}

	assert.Zero(t, expired)
}

func TestRegistry_SweepIsThrottled(t *testing.T) {
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	expired := 0
	reg := NewRegistry(newFactory(), Options{
		TTL:           time.Minute,
		SweepInterval: 10 * time.Minute,
		Now:           func() time.Time { return now },
		OnExpire:      func(*Session) { expired++ },
	})
	reg.Create()

	now = now.Add(2 * time.Minute)
	reg.Create()
	assert.Zero(t, expired, "no full sweep before the interval")

	now = now.Add(10 * time.Minute)
	reg.Create()
	assert.Equal(t, 2, expired)
}

func TestRegistry_CapEvictsLeastRecentlySeen(t *testing.T) {
	now := time.Date(2025, 5, 15, 9, 0, 0, 0, time.UTC)
	var evicted []string
	reg := NewRegistry(newFactory(), Options{
		TTL:         time.Hour,
		MaxSessions: 2,
		Now:         func() time.Time { return now },
		OnExpire:    func(s *Session) { evicted = append(evicted, s.ID) },
	})

	a := reg.Create()
	now = now.Add(time.Second)
	b := reg.Create()
	now = now.Add(time.Second)
	_, ok := reg.Get(a.ID)
	require.True(t, ok)
	now = now.Add(time.Second)

	c := reg.Create()

	assert.Equal(t, []string{b.ID}, evicted)
	assert.Equal(t, 2, reg.Len())
	_, ok = reg.Get(a.ID)
	assert.True(t, ok)
	_, ok = reg.Get(c.ID)
	assert.True(t, ok)
}

func TestMiddleware_CookielessRequestsStayCapped(t *testing.T) {
	e := echo.New()
	reg := NewRegistry(newFactory(), Options{TTL: time.Hour, MaxSessions: 5})
	h := Middleware(reg)(func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	for i := 0; i < 50; i++ {
		rec := httptest.NewRecorder()
		require.NoError(t, h(e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)))
	}

	assert.Equal(t, 5, reg.Len())
}
