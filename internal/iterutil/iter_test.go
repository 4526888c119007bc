package iterutil_test

import (
	"iter"
	"slices"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/trvswgnr/collectionmaxxing/internal/iterutil"
)

func TestMap(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input []uint8
		want  []uint16
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "non-empty",
			input: []uint8{1, 2, 3},
			want:  []uint16{2, 4, 6},
		},
		{
			name:  "single element",
			input: []uint8{5},
			want:  []uint16{10},
		},
		{
			name:  "with duplicates",
			input: []uint8{1, 1, 2, 2, 3},
			want:  []uint16{2, 2, 4, 4, 6},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Create iterator and apply Map to double each value
			doubleFunc := func(v uint8) uint16 {
				return uint16(v) * 2
			}
			seq := slices.Values(tt.input)
			got := slices.Collect(iterutil.Map(seq, doubleFunc))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestMap_Break(t *testing.T) {
	t.Parallel()

	counter := uint8(0)
	seq := iter.Seq[uint8](func(yield func(uint8) bool) {
		for {
			if !yield(counter) {
				return
			}
			counter++
		}
	})

	doubleFunc := func(v uint8) uint16 {
		return uint16(v) * 2
	}

	for v := range iterutil.Map(seq, doubleFunc) {
		if v == 40 { // This is double of 20
			break
		}
	}

	if counter != 20 {
		t.Errorf("unexpected counter value: %d, should be exactly 20", counter)
	}
}

func TestFilter(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name  string
		input []uint8
		want  []uint8
	}{
		{
			name:  "empty",
			input: nil,
			want:  nil,
		},
		{
			name:  "all kept",
			input: []uint8{2, 4, 6},
			want:  []uint8{2, 4, 6},
		},
		{
			name:  "all dropped",
			input: []uint8{1, 3, 5},
			want:  nil,
		},
		{
			name:  "mixed",
			input: []uint8{1, 2, 3, 4, 5, 6},
			want:  []uint8{2, 4, 6},
		},
		{
			name:  "order preserved",
			input: []uint8{6, 2, 4},
			want:  []uint8{6, 2, 4},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			// Keep even values only
			evenFunc := func(v uint8) bool {
				return v%2 == 0
			}
			got := slices.Collect(iterutil.Filter(slices.Values(tt.input), evenFunc))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestFilter_Break(t *testing.T) {
	t.Parallel()

	counter := uint8(0)
	seq := iter.Seq[uint8](func(yield func(uint8) bool) {
		for i := uint8(0); i < 100; i++ {
			if !yield(i) {
				return
			}
			counter++
		}
	})

	evenFunc := func(v uint8) bool {
		return v%2 == 0
	}

	for v := range iterutil.Filter(seq, evenFunc) {
		if v == 20 {
			break
		}
	}

	if counter != 20 {
		t.Errorf("unexpected counter value: %d, should be exactly 20", counter)
	}
}

func TestConcat(t *testing.T) {
	t.Parallel()

	for _, tt := range []struct {
		name   string
		inputs [][]uint8
		want   []uint8
	}{
		{
			name:   "empty",
			inputs: [][]uint8{},
			want:   nil,
		},
		{
			name:   "single empty slice",
			inputs: [][]uint8{{}},
			want:   nil,
		},
		{
			name:   "single non-empty slice",
			inputs: [][]uint8{{1, 2, 3}},
			want:   []uint8{1, 2, 3},
		},
		{
			name:   "two slices",
			inputs: [][]uint8{{1, 2}, {3, 4}},
			want:   []uint8{1, 2, 3, 4},
		},
		{
			name:   "duplicates preserved",
			inputs: [][]uint8{{1, 2}, {2, 3}},
			want:   []uint8{1, 2, 2, 3},
		},
		{
			name:   "empty slice between",
			inputs: [][]uint8{{1}, {}, {2}},
			want:   []uint8{1, 2},
		},
	} {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			iters := make([]iter.Seq[uint8], 0, len(tt.inputs))
			for _, input := range tt.inputs {
				iters = append(iters, slices.Values(input))
			}

			got := slices.Collect(iterutil.Concat(iters...))

			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("unexpected result (-want +got):\n%s", diff)
			}
		})
	}
}

func TestConcat_Break(t *testing.T) {
	t.Parallel()

	counter := uint8(0)
	seq1 := iter.Seq[uint8](func(yield func(uint8) bool) {
		for i := uint8(0); i < 50; i++ {
			if !yield(i) {
				return
			}
			counter++
		}
	})

	seq2 := iter.Seq[uint8](func(yield func(uint8) bool) {
		for i := uint8(50); i < 100; i++ {
			if !yield(i) {
				return
			}
			counter++
		}
	})

	for v := range iterutil.Concat(seq1, seq2) {
		if v == 20 {
			break
		}
	}

	// Should have consumed elements 0-20 from seq1 and none from seq2
	if counter != 20 {
		t.Errorf("unexpected counter value: %d, should be exactly 20", counter)
	}
}
