package cache

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/goleak"
)

// cada caché detenido debe terminar su goroutine de limpieza
func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestSetGet(t *testing.T) {
	c := New[[]string](time.Minute, time.Minute)
	defer c.Stop()

	_, ok := c.Get("products:all")
	assert.False(t, ok)

	c.Set("products:all", []string{"1", "2"})
	got, ok := c.Get("products:all")
	assert.True(t, ok)
	assert.Equal(t, []string{"1", "2"}, got)
}

func TestExpiredEntriesAreMisses(t *testing.T) {
	c := New[int](10*time.Millisecond, time.Hour)
	defer c.Stop()

	c.Set("k", 1)
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("k")
	assert.False(t, ok)

	c.removeExpired()
	assert.Zero(t, c.Size())
}

func TestDeleteByPrefix(t *testing.T) {
	c := New[int](time.Minute, time.Minute)
	defer c.Stop()

	c.Set("products:list:a", 1)
	c.Set("products:list:b", 2)
	c.Set("products:all", 3)

	c.DeleteByPrefix("products:list:")
	assert.Equal(t, 1, c.Size())

	_, ok := c.Get("products:all")
	assert.True(t, ok)
}

func TestStopIsIdempotent(t *testing.T) {
	c := New[int](time.Minute, time.Millisecond)
	c.Stop()
	c.Stop()
}

func TestMaxEntriesEvictsSoonestToExpire(t *testing.T) {
	c := New[int](time.Minute, time.Hour)
	defer c.Stop()
	c.SetMaxEntries(2)

	c.Set("a", 1)
	time.Sleep(time.Millisecond)
	c.Set("b", 2)
	c.Set("c", 3)

	assert.Equal(t, 2, c.Size())
	_, ok := c.Get("a")
	assert.False(t, ok)
	_, ok = c.Get("c")
	assert.True(t, ok)

	// reescribir una clave existente no desaloja otra
	c.Set("b", 20)
	assert.Equal(t, 2, c.Size())
	got, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, got)
}

func TestMaxEntriesPrefersExpired(t *testing.T) {
	c := New[int](20*time.Millisecond, time.Hour)
	defer c.Stop()
	c.SetMaxEntries(2)

	c.Set("a", 1)
	c.Set("b", 2)
	time.Sleep(30 * time.Millisecond)
	c.Set("c", 3)

	assert.Equal(t, 1, c.Size())
	_, ok := c.Get("c")
	assert.True(t, ok)
}
