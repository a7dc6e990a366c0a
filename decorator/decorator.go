package decorator

// Decorator wraps a value of type T, typically a function, adding behaviour before or
// after it runs.
type Decorator[T any] interface {
	// Decorate wraps obj and returns the wrapped value.
	Decorate(obj T) T
}

// The Func type is an adapter to allow the use of ordinary functions as Decorator.
type Func[T any] func(obj T) T

// Decorate calls f(obj).
func (f Func[T]) Decorate(obj T) T {
	return f(obj)
}

// Chain decorates obj with all decorators. The first decorator is the outermost one.
func Chain[T any](obj T, decorators ...Decorator[T]) T {
	for i := len(decorators) - 1; i >= 0; i-- {
		obj = decorators[i].Decorate(obj)
	}
	return obj
}
