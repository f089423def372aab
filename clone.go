package inputmask

// Cloner allows types to provide deep copy logic.
// Implementing this interface is required for use with Binder.
//
// The Clone method must return a deep copy where modifications to the clone
// do not affect the original value. Binder rewrites masked slices and maps
// in place, so those must be copied:
//
//	func (c Contact) Clone() Contact {
//	    phones := make([]string, len(c.Phones))
//	    copy(phones, c.Phones)
//	    return Contact{Name: c.Name, Phones: phones}
//	}
//
// For types with only scalar fields, Clone can return the receiver value:
//
//	func (c Contact) Clone() Contact { return c }
type Cloner[T any] interface {
	Clone() T
}
