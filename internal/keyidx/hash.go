package keyidx

import (
	"bytes"
	"encoding/binary"
	"hash"
	"hash/fnv"
	"math"
	"sync"

	"github.com/goccy/go-reflect"

	"github.com/trvswgnr/collectionmaxxing"
)

const (
	// intSize is the size of an int in bytes.
	intSize = 32 << (^uint(0) >> 63)
)

var (
	// hashFuncMapMutex is a mutex for the hashFuncMap.
	hashFuncMapMutex = sync.RWMutex{}

	// hashFuncMap is a map that stores hash functions for different key types.
	hashFuncMap = map[string]func(any) int{}
)

// ForType returns a hash function for the given key type.
// The second return value reports whether the type is supported; callers
// fall back to a linear scan for unsupported key types.
// It uses a map to cache the hash functions for different types.
//
// Supported hash functions are consistent with the == operator:
// keys that are == hash to the same value.
func ForType[K collectionmaxxing.ElementConstraint]() (func(any) int, bool) {
	var zero K
	return forTypeAny(zero)
}

// forTypeAny retrieves or creates a hash function for the given type.
func forTypeAny(t any) (func(any) int, bool) {
	typ := reflect.TypeOf(t)
	if typ == nil {
		// Interface key types carry no single concrete type to hash by.
		return nil, false
	}
	name := typ.String()

	hashFuncMapMutex.RLock()
	if f, ok := hashFuncMap[name]; ok {
		hashFuncMapMutex.RUnlock()
		return f, true
	}

	hashFuncMapMutex.RUnlock()
	hashFuncMapMutex.Lock()
	defer hashFuncMapMutex.Unlock()
	if f, ok := hashFuncMap[name]; ok {
		return f, true
	}

	f, ok := createHashFuncAny(t)
	if !ok {
		return nil, false
	}
	hashFuncMap[name] = f
	return f, true
}

// createHashFuncAny creates a hash function for the given type.
// It uses the FNV-1a hash algorithm and supports the built-in numeric and
// string types. Named types and everything else report false.
func createHashFuncAny(t any) (func(any) int, bool) {
	hash := hash64
	if intSize == 32 {
		hash = hash32
	}

	switch t.(type) {
	case int:
		if intSize == 32 {
			return func(v any) int {
				var b [4]byte
				binary.BigEndian.PutUint32(b[:], uint32(v.(int)))
				return hash32(b[:])
			}, true
		}
		return func(v any) int {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(v.(int)))
			return hash64(b[:])
		}, true
	case int8:
		return func(v any) int {
			var b [1]byte
			b[0] = uint8(v.(int8))
			return hash(b[:])
		}, true
	case int16:
		return func(v any) int {
			var b [2]byte
			binary.BigEndian.PutUint16(b[:], uint16(v.(int16)))
			return hash(b[:])
		}, true
	case int32:
		return func(v any) int {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], uint32(v.(int32)))
			return hash(b[:])
		}, true
	case int64:
		return func(v any) int {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(v.(int64)))
			return hash(b[:])
		}, true
	case uint:
		if intSize == 32 {
			return func(v any) int {
				var b [4]byte
				binary.BigEndian.PutUint32(b[:], uint32(v.(uint)))
				return hash32(b[:])
			}, true
		}
		return func(v any) int {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], uint64(v.(uint)))
			return hash64(b[:])
		}, true
	case uint8:
		return func(v any) int {
			var b [1]byte
			b[0] = v.(uint8)
			return hash(b[:])
		}, true
	case uint16:
		return func(v any) int {
			var b [2]byte
			binary.BigEndian.PutUint16(b[:], v.(uint16))
			return hash(b[:])
		}, true
	case uint32:
		return func(v any) int {
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], v.(uint32))
			return hash(b[:])
		}, true
	case uint64:
		return func(v any) int {
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], v.(uint64))
			return hash(b[:])
		}, true
	case float32:
		return func(v any) int {
			f := v.(float32)
			if f == 0 {
				f = 0 // -0.0 and 0.0 are ==, so they must hash alike
			}
			var b [4]byte
			binary.BigEndian.PutUint32(b[:], math.Float32bits(f))
			return hash(b[:])
		}, true
	case float64:
		return func(v any) int {
			f := v.(float64)
			if f == 0 {
				f = 0
			}
			var b [8]byte
			binary.BigEndian.PutUint64(b[:], math.Float64bits(f))
			return hash(b[:])
		}, true
	case string:
		return func(v any) int {
			s := v.(string)

			b := bytesBufferPool.Get()
			defer bytesBufferPool.Put(b)

			_, _ = b.WriteString(s)
			return hash(b.Bytes())
		}, true
	default:
		return nil, false
	}
}

var hash32BufferPool = &resettablePool[hash.Hash32]{
	pool: sync.Pool{
		New: func() any {
			return fnv.New32a()
		},
	},
}

// hash64BufferPool is a pool for 64-bit FNV-1a hash objects.
var hash64BufferPool = &resettablePool[hash.Hash64]{
	pool: sync.Pool{
		New: func() any {
			return fnv.New64a()
		},
	},
}

// bytesBufferPool is a pool for bytes.Buffer objects.
// Buffers start empty: a fresh buffer and a reset one must produce the
// same bytes for the same key, or equal keys would land in different buckets.
var bytesBufferPool = &resettablePool[*bytes.Buffer]{
	pool: sync.Pool{
		New: func() any {
			return bytes.NewBuffer(make([]byte, 0, 4096))
		},
	},
}

// resetter is an interface that defines a Reset method.
// Types that implement this interface can be used with resettablePool.
type resetter interface {
	Reset()
}

// resettablePool is a generic pool for objects that implement the resetter interface.
// It uses a sync.Pool to manage the objects and ensures that they are reset before being reused.
type resettablePool[H resetter] struct {
	pool sync.Pool
}

// Put adds an object to the pool after resetting it.
func (p *resettablePool[H]) Put(h H) {
	h.Reset()
	p.pool.Put(h)
}

// Get retrieves an object from the pool.
func (p *resettablePool[H]) Get() H {
	return p.pool.Get().(H)
}

// hash32 computes a 32-bit FNV-1a hash of the given byte slice.
func hash32(b []byte) int {
	h := hash32BufferPool.Get()
	defer hash32BufferPool.Put(h)
	_, _ = h.Write(b[:])
	return int(h.Sum32())
}

// hash64 computes a 64-bit FNV-1a hash of the given byte slice.
func hash64(b []byte) int {
	h := hash64BufferPool.Get()
	defer hash64BufferPool.Put(h)
	_, _ = h.Write(b[:])
	return int(h.Sum64())
}
