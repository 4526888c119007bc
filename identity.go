package collectionmaxxing

import (
	"cmp"
	"reflect"
)

// Equaler is an interface for elements that define their own equality.
// It is probed when a collection resolves its default equality.
type Equaler[T ElementConstraint] interface {
	// Equal reports whether the receiver and other are equal.
	Equal(other T) bool
}

// Comparer is an interface for elements that define their own ordering.
// It is probed when a collection resolves its default ordering.
type Comparer[T ElementConstraint] interface {
	// Compare orders the receiver against other.
	// It returns a negative number when the receiver orders before other,
	// zero when they are equal, and a positive number otherwise.
	Compare(other T) int
}

// EqualFunc reports whether two elements are equal.
// An EqualFunc must be reflexive, symmetric and transitive.
type EqualFunc[T ElementConstraint] func(a, b T) bool

// CompareFunc orders two elements.
// It returns a negative number when a orders before b, zero when they are
// equal, and a positive number otherwise. A CompareFunc must define a total
// order and be consistent with the equality in use.
type CompareFunc[T ElementConstraint] func(a, b T) int

// DefaultEqual returns the default equality for the given element type.
// If the element type implements Equaler, its Equal method is used.
// Comparable types fall back to the == operator and every remaining type
// (including interface element types) falls back to reflect.DeepEqual.
// The resolution happens once, on the element type, not per element.
func DefaultEqual[T ElementConstraint]() EqualFunc[T] {
	var zero T
	return defaultEqualAny[T](zero)
}

func defaultEqualAny[T ElementConstraint](v any) EqualFunc[T] {
	switch v.(type) {
	case Equaler[T]:
		return func(a, b T) bool {
			var x any = a
			return x.(Equaler[T]).Equal(b)
		}

	default:
		return defaultEqualReflect[T](reflect.TypeOf(v))
	}
}

func defaultEqualReflect[T ElementConstraint](typ reflect.Type) EqualFunc[T] {
	if typ == nil || !typ.Comparable() {
		return func(a, b T) bool {
			return reflect.DeepEqual(a, b)
		}
	}
	return func(a, b T) bool {
		var x, y any = a, b
		return x == y
	}
}

// DefaultCompare returns the default ordering for the given element type.
// If the element type implements Comparer, its Compare method is used.
// Built-in ordered types and named types of an ordered kind compare with
// their natural order. Every remaining type compares as equal, so a sorted
// view of such elements keeps their insertion order.
// The resolution happens once, on the element type, not per element.
func DefaultCompare[T ElementConstraint]() CompareFunc[T] {
	var zero T
	return defaultCompareAny[T](zero)
}

func defaultCompareAny[T ElementConstraint](v any) CompareFunc[T] {
	switch v.(type) {
	case Comparer[T]:
		return func(a, b T) int {
			var x any = a
			return x.(Comparer[T]).Compare(b)
		}

	case int:
		return compareAs[int, T]()
	case int8:
		return compareAs[int8, T]()
	case int16:
		return compareAs[int16, T]()
	case int32:
		return compareAs[int32, T]()
	case int64:
		return compareAs[int64, T]()
	case uint:
		return compareAs[uint, T]()
	case uint8:
		return compareAs[uint8, T]()
	case uint16:
		return compareAs[uint16, T]()
	case uint32:
		return compareAs[uint32, T]()
	case uint64:
		return compareAs[uint64, T]()
	case float32:
		return compareAs[float32, T]()
	case float64:
		return compareAs[float64, T]()
	case string:
		return compareAs[string, T]()

	default:
		return defaultCompareReflect[T](reflect.TypeOf(v))
	}
}

func compareAs[O cmp.Ordered, T ElementConstraint]() CompareFunc[T] {
	return func(a, b T) int {
		var x, y any = a, b
		return cmp.Compare(x.(O), y.(O))
	}
}

func defaultCompareReflect[T ElementConstraint](typ reflect.Type) CompareFunc[T] {
	if typ == nil {
		return compareUnordered[T]()
	}
	switch typ.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Int(), reflect.ValueOf(b).Int())
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Uint(), reflect.ValueOf(b).Uint())
		}
	case reflect.Float32, reflect.Float64:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).Float(), reflect.ValueOf(b).Float())
		}
	case reflect.String:
		return func(a, b T) int {
			return cmp.Compare(reflect.ValueOf(a).String(), reflect.ValueOf(b).String())
		}
	default:
		return compareUnordered[T]()
	}
}

// compareUnordered is the ordering of last resort: every pair is equal.
func compareUnordered[T ElementConstraint]() CompareFunc[T] {
	return func(T, T) int {
		return 0
	}
}
