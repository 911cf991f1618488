package browse

// Optimistic tracks one optimistic mutation of a value: the caller applies
// the hoped-for state immediately, issues the request, and resolves with the
// server's answer once the round trip finishes.
//
// The server response is always treated as ground truth: Resolve returns the
// authoritative value on success even when it disagrees with the optimistic
// guess, and the pre-mutation snapshot on failure.
//
// Rapid repeated mutations are independent round trips sharing one tracker;
// the last response received wins. That can race with an earlier in-flight
// request, which matches the shipped behavior of the web client.
type Optimistic[T any] struct {
	snapshot T
	pending  bool
}

// Begin records the pre-mutation snapshot and returns the optimistic value
// to display while the request is outstanding.
func (o *Optimistic[T]) Begin(current, optimistic T) T {
	o.snapshot = current
	o.pending = true
	return optimistic
}

// Resolve finishes the mutation: the server value on success, the snapshot
// on failure.
func (o *Optimistic[T]) Resolve(server T, err error) T {
	o.pending = false
	if err != nil {
		return o.snapshot
	}
	return server
}

// Pending reports whether a mutation is awaiting its server response.
func (o *Optimistic[T]) Pending() bool { return o.pending }

// Snapshot returns the pre-mutation value.
func (o *Optimistic[T]) Snapshot() T { return o.snapshot }
