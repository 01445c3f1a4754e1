// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

type (
	/*
	Retranslator propagates the "language changed" notification through
	the object hierarchy, so widgets can re-read their translated
	strings without being recreated.

	Each hierarchy Node has at most one Retranslator. It lives as a
	child of the Node it watches and intercepts - through an event
	filter, so before the Node's own handling and without consuming
	anything - every event delivered to that Node. On a language change
	event it invokes every registered refresh callback in registration
	order and then raises its languageChange notification.

	The registration list only grows; there is no unregister. The
	Retranslator and its list are destroyed together with the owning
	Node (ownership cascade), there is no explicit teardown.
	*/
	Retranslator struct {
		Node

		retranslateFuncs []func()
		listeners        []func()
	}
)

/*
RetranslatorFor returns the Retranslator of the passed Node,
creating and attaching one if the Node doesn't have it yet.
At most one Retranslator per Node at all times.

Nil for a nil or destroyed Node.
*/
func RetranslatorFor(node *Node) *Retranslator {
	if node.IsDestroyed() {
		return nil
	}

	if node.retranslator != nil {
		return node.retranslator
	}

	r := &Retranslator{}
	r.Node.name = "retranslator"
	r.Node.parent = node
	r.Node.asRetranslator = r

	node.children = append(node.children, &r.Node)
	node.retranslator = r
	node.InstallEventFilter(r.eventFilter)

	return r
}

/*
AttachRetranslator registers retranslateFunc as a refresh callback
of the Node's Retranslator (reusing the existing one, creating it on the
first call) and invokes it once, synchronously, right away - so the
caller's initial state reflects the currently installed locale without
waiting for a future language change event.

Registration order is preserved and is the invocation order.
Duplicates are allowed, nothing is ever de-duplicated or unregistered.
*/
func AttachRetranslator(node *Node, retranslateFunc func()) {
	if retranslateFunc == nil {
		return
	}

	if r := RetranslatorFor(node); r != nil {
		r.retranslateFuncs = append(r.retranslateFuncs, retranslateFunc)
	}

	retranslateFunc()
}

/*
OnLanguageChange subscribes listener to the Retranslator's
"language changed" notification. Listeners are notified after all
refresh callbacks have run, in subscription order.

Nil safe.
*/
func (r *Retranslator) OnLanguageChange(listener func()) {
	if r == nil || listener == nil || r.Node.destroyed {
		return
	}
	r.listeners = append(r.listeners, listener)
}

/*
eventFilter is the hook the Retranslator watches its owner Node through.

A language change event triggers every registered refresh callback in
registration order, then the languageChange listeners. The iteration
runs over a snapshot of the list taken at event receipt: a callback
re-entrantly attaching another callback cannot corrupt the iteration,
the newcomer runs on the next language change.

Never consumes: whatever happened here, the event continues its normal
handling.
*/
func (r *Retranslator) eventFilter(watched *Node, event *Event) bool {

	if watched == r.Node.parent && event.Type == EVENT_TYPE_LANGUAGE_CHANGE {

		retranslateFuncs := r.retranslateFuncs
		for _, retranslateFunc := range retranslateFuncs {
			retranslateFunc()
		}

		listeners := r.listeners
		for _, listener := range listeners {
			listener()
		}
	}

	return false
}

/*
discard drops the registration and listener lists.
Called by the owning Node's Destroy() only.
*/
func (r *Retranslator) discard() {
	r.retranslateFuncs = nil
	r.listeners = nil
}
