// collectiontest package provides generic test cases and test doubles for
// set implementations.
package collectiontest

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/sync/errgroup"

	"github.com/trvswgnr/collectionmaxxing"
)

// MutableSet is the mutable side of the Set contract that the test suite
// exercises.
type MutableSet[T collectionmaxxing.ElementConstraint] interface {
	collectionmaxxing.Set[T]
	Add(v T)
	Delete(v T) bool
	Clear()
}

// TestMutableSet runs the common conformance cases against fresh sets
// returned by provider. The provider is called once per case; the release
// function it returns is called when the case is done.
func TestMutableSet(t *testing.T, provider func() (s MutableSet[uint8], release func())) {
	t.Run("AddAndHas", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		for _, v := range []uint8{0, 1, 128, 255, 1} {
			s.Add(v)
		}
		if s.Len() != 4 {
			t.Errorf("unexpected length: %d", s.Len())
		}
		for _, v := range []uint8{0, 1, 128, 255} {
			if !s.Has(v) {
				t.Errorf("should have %d", v)
			}
		}
		if s.Has(7) {
			t.Error("should not have 7")
		}
	})
	t.Run("Delete", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		s.Add(1)
		s.Add(2)
		if !s.Delete(1) {
			t.Error("delete of a present element should report true")
		}
		if s.Delete(1) {
			t.Error("delete of an absent element should report false")
		}
		if s.Has(1) {
			t.Error("should not have 1 after delete")
		}
		if !s.Has(2) {
			t.Error("should still have 2")
		}
	})
	t.Run("All", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		for _, v := range []uint8{3, 1, 4, 1, 5, 9, 2, 6} {
			s.Add(v)
		}
		got := slices.Sorted(s.All())
		if diff := cmp.Diff([]uint8{1, 2, 3, 4, 5, 6, 9}, got); diff != "" {
			t.Errorf("unexpected elements: (-want, +got) = %s", diff)
		}
	})
	t.Run("AllBreak", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		for i := range 10 {
			s.Add(uint8(i))
		}
		var count int
		for range s.All() {
			count++
			if count == 3 {
				break
			}
		}
		if count != 3 {
			t.Errorf("unexpected count: %d", count)
		}
	})
	t.Run("Clear", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		s.Add(1)
		s.Add(2)
		s.Clear()
		if s.Len() != 0 {
			t.Errorf("unexpected length: %d", s.Len())
		}
		s.Add(3)
		if !s.Has(3) || s.Len() != 1 {
			t.Error("set should be usable after clear")
		}
	})
}

// TestConcurrentMutableSet checks that concurrent callers do not corrupt
// the set. Run it only against implementations that serialize access.
func TestConcurrentMutableSet(t *testing.T, provider func() (s MutableSet[uint8], release func())) {
	t.Run("ConcurrentAddAndDelete", func(t *testing.T) {
		t.Parallel()

		s, release := provider()
		defer release()

		elems := make([]uint8, 64)
		for i := range elems {
			elems[i] = uint8(i)
		}
		rand.Shuffle(len(elems), func(i, j int) {
			elems[i], elems[j] = elems[j], elems[i]
		})

		var eg errgroup.Group
		for _, v := range elems {
			v := v
			eg.Go(func() error {
				s.Add(v)
				if !s.Has(v) {
					return fmt.Errorf("value %d should be present right after Add", v)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}
		if s.Len() != len(elems) {
			t.Errorf("unexpected length: got=%d want=%d", s.Len(), len(elems))
		}

		eg = errgroup.Group{}
		for _, v := range elems[:32] {
			v := v
			eg.Go(func() error {
				if !s.Delete(v) {
					return fmt.Errorf("value %d should be removed exactly once", v)
				}
				return nil
			})
		}
		if err := eg.Wait(); err != nil {
			t.Fatal(err)
		}
		if s.Len() != len(elems)-32 {
			t.Errorf("unexpected length: got=%d want=%d", s.Len(), len(elems)-32)
		}
	})
}

// BenchmarkAdd benchmarks Add on the given set, cycling through elems.
func BenchmarkAdd(b *testing.B, s MutableSet[uint8], elems []uint8) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		s.Add(elems[i%len(elems)])
	}
}
