package sortedset_test

import (
	"testing"

	"github.com/trvswgnr/collectionmaxxing/collectiontest"
	"github.com/trvswgnr/collectionmaxxing/sortedset"
)

func TestSet_Conformance(t *testing.T) {
	t.Parallel()

	collectiontest.TestMutableSet(t, func() (collectiontest.MutableSet[uint8], func()) {
		return sortedset.New[uint8](), func() {}
	})
}

func BenchmarkSet_Add(b *testing.B) {
	elems := make([]uint8, 256)
	for i := range elems {
		elems[i] = uint8(i)
	}
	collectiontest.BenchmarkAdd(b, sortedset.New[uint8](), elems)
}
