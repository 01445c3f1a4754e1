// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

type (
	/*
	EventType says what kind of event is being delivered to a Node.
	Values below EVENT_TYPE_USER are reserved for this package,
	applications define their own starting from EVENT_TYPE_USER.
	*/
	EventType uint8

	/*
	Event is what the host event loop delivers to hierarchy Node s.
	*/
	Event struct {
		Type EventType
	}

	/*
	EventFilter is a hook installed on a Node that observes every event
	delivered to that Node before the Node's own handler runs.
	Returning true consumes the event, stopping its normal handling.
	*/
	EventFilter func(watched *Node, event *Event) bool

	/*
	EventHandler is the Node's own reaction to a delivered event,
	invoked after all filters passed the event through.
	*/
	EventHandler func(node *Node, event *Event)

	/*
	Node is an object of the application's parent/child object tree
	capable of receiving dispatched events.

	A Node owns its children: destroying a Node destroys the whole
	subtree under it. All Node operations belong to the host UI event
	loop goroutine, there is no internal locking.
	*/
	Node struct {
		name     string
		parent   *Node
		children []*Node

		filters []EventFilter
		handler EventHandler

		// retranslator watches this node (it is also one of children).
		// Kept as a direct reference so the per-node uniqueness lookup
		// is O(1) instead of a child scan.
		retranslator *Retranslator

		// asRetranslator is set on the retranslator's own node,
		// making it recognizable in a structural child scan.
		asRetranslator *Retranslator

		destroyed bool
	}
)

//goland:noinspection GoSnakeCaseUsage
const (
	EVENT_TYPE_LANGUAGE_CHANGE EventType = 1
	EVENT_TYPE_USER            EventType = 100
)

/*
NewNode creates a Node with the given name under parent.
Pass nil parent for a root (top-level) Node.
*/
func NewNode(name string, parent *Node) *Node {
	n := &Node{
		name:   name,
		parent: parent,
	}
	if parent != nil {
		parent.children = append(parent.children, n)
	}
	return n
}

/*
Name returns the Node's name. Nil safe.
*/
func (n *Node) Name() string {
	if n == nil {
		return ""
	}
	return n.name
}

/*
Parent returns the Node's parent, nil for a root Node. Nil safe.
*/
func (n *Node) Parent() *Node {
	if n == nil {
		return nil
	}
	return n.parent
}

/*
Children returns a copy of the Node's direct children list. Nil safe.
*/
func (n *Node) Children() []*Node {
	if n == nil || len(n.children) == 0 {
		return nil
	}
	return append([]*Node(nil), n.children...)
}

/*
AsRetranslator returns the Retranslator the current Node is the
hierarchy representation of, nil for ordinary nodes. Nil safe.
*/
func (n *Node) AsRetranslator() *Retranslator {
	if n == nil {
		return nil
	}
	return n.asRetranslator
}

/*
IsDestroyed reports whether the Node was already destroyed. Nil safe.
*/
func (n *Node) IsDestroyed() bool {
	return n == nil || n.destroyed
}

/*
SetEventHandler sets the Node's own event reaction,
replacing the previous one if any.
*/
func (n *Node) SetEventHandler(handler EventHandler) {
	if n.IsDestroyed() {
		return
	}
	n.handler = handler
}

/*
InstallEventFilter installs a hook observing every event delivered
to the current Node. Filters run in installation order, each may consume
the event. There is no way to uninstall a filter: its lifetime is the
Node's lifetime.
*/
func (n *Node) InstallEventFilter(filter EventFilter) {
	if n.IsDestroyed() || filter == nil {
		return
	}
	n.filters = append(n.filters, filter)
}

/*
Dispatch delivers the event to the current Node:
first through the installed filters (in order, any of them may consume
the event), then to the Node's own handler.

Events are not forwarded to children; the host event loop decides
which nodes an event is delivered to.

Nil safe, no-op on a destroyed Node.
*/
func (n *Node) Dispatch(event *Event) {
	if n.IsDestroyed() || event == nil {
		return
	}

	// Snapshot: a filter installing another filter must not grow
	// the list being iterated.
	filters := n.filters

	for _, filter := range filters {
		if filter(n, event) {
			return
		}
	}

	if n.handler != nil {
		n.handler(n, event)
	}
}

/*
Destroy destroys the Node and everything it owns: all children
(recursively, the ownership cascade), the installed event filters
and the attached Retranslator with its registration list.

A destroyed Node ignores Dispatch() and further mutations.
Nil safe, idempotent.
*/
func (n *Node) Destroy() {
	if n.IsDestroyed() {
		return
	}
	n.destroyed = true

	children := n.children
	n.children = nil
	for _, child := range children {
		child.Destroy()
	}

	n.filters = nil
	n.handler = nil

	if n.retranslator != nil {
		n.retranslator.discard()
		n.retranslator = nil
	}

	if r := n.asRetranslator; r != nil {
		r.discard()
		if n.parent != nil && n.parent.retranslator == r {
			n.parent.retranslator = nil
		}
		n.asRetranslator = nil
	}

	if parent := n.parent; parent != nil && !parent.destroyed {
		for i, child := range parent.children {
			if child == n {
				parent.children = append(parent.children[:i], parent.children[i+1:]...)
				break
			}
		}
	}
	n.parent = nil
}
