package keyidx_test

import (
	"math"
	"reflect"
	"testing"

	"github.com/trvswgnr/collectionmaxxing/internal/keyidx"
)

const (
	intSize = 32 << (^uint(0) >> 63)
)

func mustForType[K any](t *testing.T) func(any) int {
	t.Helper()
	f, ok := keyidx.ForType[K]()
	if !ok {
		t.Fatalf("expected %s to be supported", reflect.TypeFor[K]())
	}
	return f
}

func TestForType(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name     string
		hashFunc func(any) int
		value    any
		want     uint64
	}

	var tests []testCase
	if intSize == 32 {
		tests = []testCase{
			{"int", mustForType[int](t), int(-42), 0xba15cf26},
			{"int8", mustForType[int8](t), int8(-42), 0x530b44e9},
			{"int16", mustForType[int16](t), int16(-42), 0xb81e9548},
			{"int32", mustForType[int32](t), int32(-42), 0xba15cf26},
			{"int64", mustForType[int64](t), int64(-42), 0x83ae2e92},
			{"uint", mustForType[uint](t), uint(42), 0x3195cc27},
			{"uint8", mustForType[uint8](t), uint8(42), 0x2f0c9f3d},
			{"uint16", mustForType[uint16](t), uint16(42), 0x2776ba6f},
			{"uint32", mustForType[uint32](t), uint32(42), 0x3195cc27},
			{"uint64", mustForType[uint64](t), uint64(42), 0x81e14877},
			{"float32", mustForType[float32](t), float32(42.0), 0xb4eab2af},
			{"float64", mustForType[float64](t), float64(42.0), 0x2887997e},
			{"string", mustForType[string](t), "test", 0xafd071e5},
		}
	} else {
		tests = []testCase{
			{"int", mustForType[int](t), int(-42), 0x8cf5318bfca3af52},
			{"int8", mustForType[int8](t), int8(-42), 0xaf648b4c860315e9},
			{"int16", mustForType[int16](t), int16(-42), 0xa99f007b6f689a8},
			{"int32", mustForType[int32](t), int32(-42), 0x994f4d653e29f3a6},
			{"int64", mustForType[int64](t), int64(-42), 0x8cf5318bfca3af52},
			{"uint", mustForType[uint](t), uint(42), 0xa8c7de32281a0d97},
			{"uint8", mustForType[uint8](t), uint8(42), 0xaf63a74c8601927d},
			{"uint16", mustForType[uint16](t), uint16(42), 0x8329e07b4eb954f},
			{"uint32", mustForType[uint32](t), uint32(42), 0x4d255c7f9dcde7c7},
			{"uint64", mustForType[uint64](t), uint64(42), 0xa8c7de32281a0d97},
			{"float32", mustForType[float32](t), float32(42.0), 0xe64108a69be87c0f},
			{"float64", mustForType[float64](t), float64(42.0), 0xe17c3355bfbe5a7e},
			{"string", mustForType[string](t), "test", 0xf9e6e6ef197c2b25},
		}
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.hashFunc(tt.value)
			if uint64(got) != tt.want {
				t.Errorf("expected %x, got %x", tt.want, uint64(got))
			}
		})
	}
}

func TestForType_Unsupported(t *testing.T) {
	t.Parallel()

	type named int
	type pair struct{ A, B int }

	if _, ok := keyidx.ForType[named](); ok {
		t.Error("expected named types to be unsupported")
	}
	if _, ok := keyidx.ForType[pair](); ok {
		t.Error("expected struct types to be unsupported")
	}
	if _, ok := keyidx.ForType[bool](); ok {
		t.Error("expected bool to be unsupported")
	}
	if _, ok := keyidx.ForType[uintptr](); ok {
		t.Error("expected uintptr to be unsupported")
	}
	if _, ok := keyidx.ForType[any](); ok {
		t.Error("expected interface types to be unsupported")
	}
}

func TestForType_ReturnsSameFunctionForSameType(t *testing.T) {
	t.Parallel()

	hashFunc1 := mustForType[int](t)
	hashFunc2 := mustForType[int](t)
	hashFunc3 := mustForType[int64](t)

	if reflect.ValueOf(hashFunc1).Pointer() != reflect.ValueOf(hashFunc2).Pointer() {
		t.Errorf("expected the same function for the same type, but got different functions")
	}
	if reflect.ValueOf(hashFunc1).Pointer() == reflect.ValueOf(hashFunc3).Pointer() {
		t.Errorf("expected different functions for different types, but got the same function")
	}
}

func TestForType_StringHashIsStable(t *testing.T) {
	t.Parallel()

	// The string hasher borrows a pooled buffer. A fresh buffer and a
	// recycled one must hash the same key alike.
	hashFunc := mustForType[string](t)
	first := hashFunc("stable")
	for range 8 {
		if got := hashFunc("stable"); got != first {
			t.Fatalf("expected %x on every call, got %x", first, got)
		}
	}
}

func TestForType_FloatZeroes(t *testing.T) {
	t.Parallel()

	hash64Func := mustForType[float64](t)
	if hash64Func(float64(0.0)) != hash64Func(math.Copysign(0, -1)) {
		t.Error("expected 0.0 and -0.0 to hash alike")
	}

	hash32Func := mustForType[float32](t)
	if hash32Func(float32(0.0)) != hash32Func(float32(math.Copysign(0, -1))) {
		t.Error("expected 0.0 and -0.0 to hash alike")
	}
}
