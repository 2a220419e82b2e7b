package gen

import (
	"fmt"
	"iter"
)

// Generator produces a value of type T on each call to Next. Successive values
// are independent unless the constructor documents otherwise.
type Generator[T any] interface {
	Next() (T, error)
}

// Func adapts an ordinary function to a Generator.
type Func[T any] func() (T, error)

// Next calls f.
func (f Func[T]) Next() (T, error) {
	return f()
}

// Const returns a generator that always produces v.
func Const[T any](v T) Generator[T] {
	return Func[T](func() (T, error) { return v, nil })
}

// Map returns a generator that applies f to every value drawn from g.
func Map[T, U any](g Generator[T], f func(T) U) (Generator[U], error) {
	if g == nil || f == nil {
		return nil, fmt.Errorf("map: generator and function are required: %w", ErrInvalidArgument)
	}
	return Func[U](func() (U, error) {
		v, err := g.Next()
		if err != nil {
			var zero U
			return zero, err
		}
		return f(v), nil
	}), nil
}

// Seq returns g as a lazy, unbounded sequence. Each element is an independent
// draw; the sequence is not restartable. Iteration stops after the first
// error is yielded.
func Seq[T any](g Generator[T]) iter.Seq2[T, error] {
	return func(yield func(T, error) bool) {
		for {
			v, err := g.Next()
			if !yield(v, err) || err != nil {
				return
			}
		}
	}
}

// Take draws n values from g. On error it returns the values drawn before it.
func Take[T any](g Generator[T], n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("take: negative count %d: %w", n, ErrInvalidArgument)
	}
	out := make([]T, 0, n)
	for range n {
		v, err := g.Next()
		if err != nil {
			return out, err
		}
		out = append(out, v)
	}
	return out, nil
}
