package slist

import (
	"cmp"
	"errors"
	"fmt"
	"math"
	"reflect"
)

// Number is a constraint satisfied by the built-in integer and
// floating-point types.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}

// Average returns the arithmetic mean of the values in ls. NaN values
// are skipped. It returns false if the list has no values to average.
func Average[N Number](ls *List[N]) (float64, bool) {
	return AverageFunc(ls, func(v N) (float64, bool) {
		f := float64(v)
		return f, !math.IsNaN(f)
	})
}

// AverageFunc returns the arithmetic mean of the values in ls as
// converted by conv. Values for which conv returns false are skipped.
// If no value is converted, AverageFunc returns false.
//
// For a list of mixed values, pass [AsFloat] as conv.
func AverageFunc[T comparable](ls *List[T], conv func(T) (float64, bool)) (float64, bool) {
	var sum float64
	var count int
	for v := range ls.All() {
		f, ok := conv(v)
		if !ok {
			continue
		}
		sum += f
		count++
	}

	if count == 0 {
		return 0, false
	}
	return sum / float64(count), true
}

// AsFloat converts v to a float64 if its underlying type is an integer
// or floating-point type. NaN is not considered to be a number.
func AsFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)

	var f float64
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		f = float64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		f = float64(rv.Uint())
	case reflect.Float32, reflect.Float64:
		f = rv.Float()
	default:
		return 0, false
	}

	return f, !math.IsNaN(f)
}

// Max returns the largest value in ls. It returns [ErrEmpty] if the
// list has no nodes. When several values compare equal to the maximum,
// the one closest to the tail is returned.
func Max[O cmp.Ordered](ls *List[O]) (O, error) {
	return MaxFrom(ls, nil)
}

// MaxFrom is like [Max] but only considers from and the nodes after it.
// If from is nil, it starts at the head of the list. If from is not a
// node of ls, [ErrForeignNode] is returned.
func MaxFrom[O cmp.Ordered](ls *List[O], from *Node[O]) (O, error) {
	return maxFrom(ls, from, func(a, b O) (int, error) {
		return cmp.Compare(a, b), nil
	})
}

// MaxFunc returns the largest value in ls according to compare, which
// should return a negative number, zero, or a positive number if a is
// less than, equal to, or greater than b. When several values compare
// equal to the maximum, the one closest to the tail wins.
//
// If compare returns an error, MaxFunc stops and returns an error that
// matches [ErrTypeMismatch] as well as the original error.
func MaxFunc[T comparable](ls *List[T], compare func(a, b T) (int, error)) (T, error) {
	return maxFrom(ls, nil, compare)
}

// MaxAny returns the largest value in a list of mixed values. Numbers
// of any type are compared numerically with each other and strings are
// compared lexically. Any other combination, including a lone value
// that is neither, results in [ErrTypeMismatch].
func MaxAny(ls *List[any]) (any, error) {
	return maxFrom(ls, nil, compareAny)
}

func maxFrom[T comparable](ls *List[T], from *Node[T], compare func(a, b T) (int, error)) (v T, err error) {
	switch {
	case from == nil:
		if ls.head == nil {
			return v, fmt.Errorf("max: %w", ErrEmpty)
		}
		from = ls.head
	case !ls.owns(from):
		return v, fmt.Errorf("max: %w", ErrForeignNode)
	}

	// A list with one node never compares anything otherwise.
	if _, err := compare(from.Val, from.Val); err != nil {
		return v, mismatch(err)
	}

	best := from
	for cur := from.next; cur != nil; cur = cur.next {
		c, err := compare(cur.Val, best.Val)
		if err != nil {
			return v, mismatch(err)
		}
		if c >= 0 {
			best = cur
		}
	}
	return best.Val, nil
}

func mismatch(err error) error {
	if errors.Is(err, ErrTypeMismatch) {
		return fmt.Errorf("max: %w", err)
	}
	return fmt.Errorf("max: %w: %w", ErrTypeMismatch, err)
}

func compareAny(a, b any) (int, error) {
	if c, ok := compareNumbers(reflect.ValueOf(a), reflect.ValueOf(b)); ok {
		return c, nil
	}

	if as, ok := a.(string); ok {
		if bs, ok := b.(string); ok {
			return cmp.Compare(as, bs), nil
		}
	}

	return 0, fmt.Errorf("%w: cannot compare %T with %T", ErrTypeMismatch, a, b)
}

type numKind int

const (
	notNumber numKind = iota
	signed
	unsigned
	floating
)

func kindOf(rv reflect.Value) numKind {
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return signed
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsigned
	case reflect.Float32, reflect.Float64:
		if math.IsNaN(rv.Float()) {
			return notNumber
		}
		return floating
	default:
		return notNumber
	}
}

// compareNumbers compares a and b numerically. Integers are only
// converted to float64 when the other side is a float, so large
// integers keep their precision.
func compareNumbers(a, b reflect.Value) (int, bool) {
	ak, bk := kindOf(a), kindOf(b)
	if ak == notNumber || bk == notNumber {
		return 0, false
	}

	switch {
	case ak == floating || bk == floating:
		af, _ := AsFloat(a.Interface())
		bf, _ := AsFloat(b.Interface())
		return cmp.Compare(af, bf), true
	case ak == signed && bk == signed:
		return cmp.Compare(a.Int(), b.Int()), true
	case ak == unsigned && bk == unsigned:
		return cmp.Compare(a.Uint(), b.Uint()), true
	case ak == signed:
		if a.Int() < 0 {
			return -1, true
		}
		return cmp.Compare(uint64(a.Int()), b.Uint()), true
	default:
		if b.Int() < 0 {
			return 1, true
		}
		return cmp.Compare(a.Uint(), uint64(b.Int())), true
	}
}
