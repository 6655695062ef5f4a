package cache

import (
	"errors"
	"strconv"
	"sync"
	"testing"
)

func TestCache_GetSet(t *testing.T) {
	c := New[string, int](10)
	if _, ok := c.Get("missing"); ok {
		t.Error("Get on empty cache returned ok")
	}
	c.Set("a", 1)
	c.Set("a", 2)
	if v, ok := c.Get("a"); !ok || v != 2 {
		t.Errorf("Get(a) = %v, %v; want 2, true", v, ok)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, int](3)
	for i := range 3 {
		c.Set(i, i)
	}
	c.Get(0) // 1 is now the oldest
	c.Set(3, 3)

	if _, ok := c.Get(1); ok {
		t.Error("least recently used entry survived")
	}
	for _, k := range []int{0, 2, 3} {
		if _, ok := c.Get(k); !ok {
			t.Errorf("entry %d evicted", k)
		}
	}
	if c.Len() != 3 {
		t.Errorf("Len() = %d, want 3", c.Len())
	}
}

func TestCache_Unlimited(t *testing.T) {
	c := New[int, int](0)
	for i := range 1000 {
		c.Set(i, i)
	}
	if c.Len() != 1000 {
		t.Errorf("Len() = %d, want 1000", c.Len())
	}
}

func TestCache_GetOrCreate(t *testing.T) {
	c := New[string, int](4)
	calls := 0
	create := func() (int, error) {
		calls++
		return 7, nil
	}
	for range 3 {
		v, err := c.GetOrCreate("k", create)
		if err != nil || v != 7 {
			t.Fatalf("GetOrCreate = %v, %v", v, err)
		}
	}
	if calls != 1 {
		t.Errorf("create called %d times, want 1", calls)
	}

	boom := errors.New("boom")
	if _, err := c.GetOrCreate("bad", func() (int, error) { return 0, boom }); !errors.Is(err, boom) {
		t.Errorf("error = %v, want boom", err)
	}
	if _, ok := c.Get("bad"); ok {
		t.Error("failed create was cached")
	}

	st := c.Stats()
	if st.Hits != 2 || st.Misses != 3 || st.Len != 1 || st.Capacity != 4 {
		t.Errorf("Stats() = %+v", st)
	}
}

func TestCache_DeleteAndClear(t *testing.T) {
	c := New[string, int](4)
	c.Set("a", 1)
	c.Set("b", 2)
	if !c.Delete("a") || c.Delete("a") {
		t.Error("Delete should report presence once")
	}
	c.Clear()
	if c.Len() != 0 {
		t.Errorf("Len() after Clear = %d", c.Len())
	}
	c.Set("c", 3)
	if v, ok := c.Get("c"); !ok || v != 3 {
		t.Error("cache unusable after Clear")
	}
}

func TestCache_Concurrent(t *testing.T) {
	c := New[string, int](16)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				k := strconv.Itoa((g + i) % 32)
				c.Set(k, i)
				c.Get(k)
			}
		}()
	}
	wg.Wait()
	if c.Len() > 16 {
		t.Errorf("Len() = %d exceeds capacity", c.Len())
	}
}

func BenchmarkCacheGet(b *testing.B) {
	c := New[string, int](1000)
	for i := range 100 {
		c.Set(strconv.Itoa(i), i)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.Get("50")
	}
}
