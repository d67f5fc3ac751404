package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type fakeClock struct {
	now time.Time
}

func (f *fakeClock) Now() time.Time { return f.now }

func (f *fakeClock) Advance(d time.Duration) { f.now = f.now.Add(d) }

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2023, 6, 1, 12, 0, 0, 0, time.UTC)}
}

func TestGetReturnsFreshEntry(t *testing.T) {
	clock := newFakeClock()
	c := New(30*time.Minute, WithClock[string](clock.Now))

	c.Set("greeting", "hello")

	clock.Advance(29 * time.Minute)
	v, ok := c.Get("greeting")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestGetMissesExpiredEntry(t *testing.T) {
	clock := newFakeClock()
	c := New(30*time.Minute, WithClock[string](clock.Now))

	c.Set("greeting", "hello")

	clock.Advance(30 * time.Minute)
	_, ok := c.Get("greeting")
	assert.False(t, ok)
}

func TestGetMissesUnknownKey(t *testing.T) {
	c := New[int](time.Minute)
	_, ok := c.Get("nope")
	assert.False(t, ok)
}

func TestSetResetsFreshness(t *testing.T) {
	clock := newFakeClock()
	c := New(30*time.Minute, WithClock[string](clock.Now))

	c.Set("greeting", "hello")
	clock.Advance(25 * time.Minute)
	c.Set("greeting", "hello again")
	clock.Advance(10 * time.Minute)

	v, ok := c.Get("greeting")
	assert.True(t, ok)
	assert.Equal(t, "hello again", v)
}

func TestGetStaleIgnoresExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Minute, WithClock[string](clock.Now))

	c.Set("greeting", "hello")
	clock.Advance(2 * time.Hour)

	_, ok := c.Get("greeting")
	assert.False(t, ok)

	v, ok := c.GetStale("greeting")
	assert.True(t, ok)
	assert.Equal(t, "hello", v)
}

func TestClearRemovesEverything(t *testing.T) {
	c := New[int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)
	assert.Equal(t, 2, c.Len())

	c.Clear()
	assert.Equal(t, 0, c.Len())
	_, ok := c.GetStale("a")
	assert.False(t, ok)
}

func TestStatusReportsAgeAndExpiry(t *testing.T) {
	clock := newFakeClock()
	c := New(time.Minute, WithClock[any](clock.Now))

	c.Set("posts", []string{"a", "b", "c"})
	clock.Advance(30 * time.Second)
	c.Set("profile", "vibes")
	clock.Advance(45 * time.Second)

	status := c.Status()
	assert.Len(t, status, 2)

	assert.Equal(t, int64(75), status["posts"].AgeSeconds)
	assert.True(t, status["posts"].Expired)
	assert.Equal(t, 3, status["posts"].ItemCount)

	assert.Equal(t, int64(45), status["profile"].AgeSeconds)
	assert.False(t, status["profile"].Expired)
	assert.Equal(t, 0, status["profile"].ItemCount)
}
