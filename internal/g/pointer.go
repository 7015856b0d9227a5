package g

// Pointer returns pointer to copy of object
func Pointer[T any](o T) *T {
	return &o
}

// NilToNil receive function adopts function for converting any types to works with pointers
func NilToNil[I any, O any](f func(i I) O, i *I) *O {
	if i == nil {
		return nil
	}
	return Pointer(f(*i))
}

// Opt holds an optional value that is owned by the enclosing struct.
// The zero Opt is absent.
type Opt[T any] struct {
	Value T
	Set   bool
}

func NewOpt[T any](v T) Opt[T] {
	return Opt[T]{Value: v, Set: true}
}

// OptFromPointer returns an absent Opt for nil and a present copy of *p otherwise.
func OptFromPointer[T any](p *T) Opt[T] {
	if p == nil {
		return Opt[T]{}
	}
	return NewOpt(*p)
}

func (o Opt[T]) Get() (T, bool) {
	return o.Value, o.Set
}

// Pointer returns nil for an absent Opt and a pointer to a copy of the value otherwise.
func (o Opt[T]) Pointer() *T {
	if !o.Set {
		return nil
	}
	return Pointer(o.Value)
}

// OptEqual reports whether both values are absent, or both are present and eq holds.
func OptEqual[T any](a, b Opt[T], eq func(x, y T) bool) bool {
	if a.Set != b.Set {
		return false
	}
	return !a.Set || eq(a.Value, b.Value)
}
