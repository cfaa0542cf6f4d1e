package core

// Source identifies the logger node a message originates from. Sinks
// receive it with every hook call and typically only use it to print an
// identifying prefix or to cache the canonical name. The interface keeps
// sink implementations decoupled from the logger tree.
type Source interface {
	// Name returns the node's own name segment, empty for the root.
	Name() string

	// CanonicalName returns the separator-joined chain of names from the
	// root down to this node.
	CanonicalName() string
}
