package sink

import (
	"sync/atomic"

	"github.com/pkg/errors"

	"github.com/hierlog/hierlog/core"
)

var (
	// ErrNoMembers indicates a router was constructed without members.
	ErrNoMembers = errors.New("sink: router needs at least one member")
	// ErrNilMember indicates a nil sink was passed as a router member.
	ErrNilMember = errors.New("sink: nil router member")
	// ErrIndexOutOfRange indicates SetActive was called with an index
	// outside the member list.
	ErrIndexOutOfRange = errors.New("sink: active index out of range")
)

// Router is a sink composed of a fixed list of member sinks with one
// runtime-selectable active member. It satisfies the Sink contract
// itself, so a logger can hold a Router like any other sink while output
// is switched between members at runtime.
//
// The member list is fixed at construction; only the active index moves.
type Router struct {
	members []Sink
	active  atomic.Int32
}

// Compile-time safety: *Router implements Sink and EncodingAware.
var (
	_ Sink          = (*Router)(nil)
	_ EncodingAware = (*Router)(nil)
)

// NewRouter creates a router over the given members with member 0 active.
// At least one member is required and no member may be nil.
func NewRouter(members ...Sink) (*Router, error) {
	if len(members) == 0 {
		return nil, ErrNoMembers
	}
	for i, m := range members {
		if m == nil {
			return nil, errors.Wrapf(ErrNilMember, "member %d", i)
		}
	}
	return &Router{members: append([]Sink(nil), members...)}, nil
}

// SetActive selects the member that subsequent hook calls dispatch to.
// Returns an error wrapping ErrIndexOutOfRange when index is outside
// [0, Len()-1].
//
// Dispatch is resolved per hook call, not captured at message start.
// Calling SetActive while a message is open therefore routes the
// remaining hooks of that message to the new member, pairing its
// StartMessage with another member's EndMessage. Callers must not switch
// the active member while a message is in flight.
func (r *Router) SetActive(index int) error {
	if index < 0 || index >= len(r.members) {
		return errors.Wrapf(ErrIndexOutOfRange,
			"could not activate member %d, maximum is %d", index, len(r.members)-1)
	}
	r.active.Store(int32(index))
	return nil
}

// Active returns the currently selected member.
func (r *Router) Active() Sink {
	return r.members[r.active.Load()]
}

// ActiveIndex returns the index of the currently selected member.
func (r *Router) ActiveIndex() int {
	return int(r.active.Load())
}

// Len returns the number of members.
func (r *Router) Len() int {
	return len(r.members)
}

// StartMessage dispatches to the active member.
func (r *Router) StartMessage(source core.Source, severity core.Severity) {
	r.Active().StartMessage(source, severity)
}

// Put dispatches to the active member.
func (r *Router) Put(source core.Source, value any) {
	r.Active().Put(source, value)
}

// PutBreak dispatches to the active member.
func (r *Router) PutBreak(brk core.LineBreak) {
	r.Active().PutBreak(brk)
}

// EndMessage dispatches to the active member.
func (r *Router) EndMessage(source core.Source) {
	r.Active().EndMessage(source)
}

// Encoding is fixed to EncodingBytes, the narrowest encoding every member
// can accept, regardless of what the members individually declare.
func (r *Router) Encoding() Encoding {
	return EncodingBytes
}
