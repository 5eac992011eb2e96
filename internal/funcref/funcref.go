// Package funcref provides opaque, comparable handles that identify function
// entities in the metadata store.
//
// The origin of each handle is the caller: the environment registers a
// function and receives a Ref back, then uses that Ref for every subsequent
// attribute application and query. Handles carry no behavior and keep nothing
// alive; discarding the function the handle was issued for does not
// invalidate the handle, it merely leaves its attribute table unreachable.
package funcref

import "github.com/google/uuid"

// AnonymousName is the declared-name placeholder reported for functions
// registered without a name.
const AnonymousName = "__ANON__"

// Ref is an opaque handle identifying one registered function. The zero Ref
// is invalid and never issued.
type Ref struct {
	id uuid.UUID
}

// New issues a fresh, unique Ref.
func New() Ref {
	return Ref{id: uuid.New()}
}

// IsZero reports whether the Ref is the invalid zero handle.
func (r Ref) IsZero() bool {
	return r.id == uuid.Nil
}

// String returns a short, stable textual form of the handle, for logging.
func (r Ref) String() string {
	return "fn-" + r.id.String()[:8]
}
