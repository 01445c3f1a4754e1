// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func languageChangeEvent() *Event {
	return &Event{Type: EVENT_TYPE_LANGUAGE_CHANGE}
}

func countRetranslatorChildren(node *Node) int {
	count := 0
	for _, child := range node.Children() {
		if child.AsRetranslator() != nil {
			count++
		}
	}
	return count
}

func TestRetranslatorUniqueness(t *testing.T) {
	window := NewNode("window", nil)

	AttachRetranslator(window, func() {})
	AttachRetranslator(window, func() {})

	// Both calls reuse one Retranslator, and a structural scan of the
	// node's children sees exactly one.
	require.Equal(t, 1, countRetranslatorChildren(window))
	require.True(t, RetranslatorFor(window) == RetranslatorFor(window))
	require.Len(t, RetranslatorFor(window).retranslateFuncs, 2)
}

func TestAttachInvokesCallbackImmediately(t *testing.T) {
	window := NewNode("window", nil)

	invoked := 0
	AttachRetranslator(window, func() { invoked++ })

	require.Equal(t, 1, invoked)
}

func TestLanguageChangeInvokesInRegistrationOrder(t *testing.T) {
	window := NewNode("window", nil)

	var record []int
	for i := 0; i < 5; i++ {
		i := i
		AttachRetranslator(window, func() { record = append(record, i) })
	}

	// Drop the immediate invocations made by attach itself.
	record = nil

	window.Dispatch(languageChangeEvent())
	require.Equal(t, []int{0, 1, 2, 3, 4}, record)

	window.Dispatch(languageChangeEvent())
	require.Equal(t, []int{0, 1, 2, 3, 4, 0, 1, 2, 3, 4}, record)
}

func TestDuplicateCallbacksAllowed(t *testing.T) {
	window := NewNode("window", nil)

	invoked := 0
	callback := func() { invoked++ }
	AttachRetranslator(window, callback)
	AttachRetranslator(window, callback)

	invoked = 0
	window.Dispatch(languageChangeEvent())
	require.Equal(t, 2, invoked)
}

func TestOtherEventsPassThrough(t *testing.T) {
	window := NewNode("window", nil)

	var record []string
	window.SetEventHandler(func(_ *Node, event *Event) {
		record = append(record, "handler")
	})
	AttachRetranslator(window, func() { record = append(record, "retranslate") })

	record = nil
	window.Dispatch(&Event{Type: EVENT_TYPE_USER})
	require.Equal(t, []string{"handler"}, record)

	// The language change event is observed but not consumed: the
	// node's own handling still runs, after the callbacks.
	record = nil
	window.Dispatch(languageChangeEvent())
	require.Equal(t, []string{"retranslate", "handler"}, record)
}

func TestLanguageChangeNotificationAfterCallbacks(t *testing.T) {
	window := NewNode("window", nil)

	var record []string
	AttachRetranslator(window, func() { record = append(record, "retranslate") })
	RetranslatorFor(window).OnLanguageChange(func() { record = append(record, "notified") })

	record = nil
	window.Dispatch(languageChangeEvent())
	require.Equal(t, []string{"retranslate", "notified"}, record)
}

func TestReentrantAttachDuringDispatch(t *testing.T) {
	window := NewNode("window", nil)

	firstInvoked, secondInvoked := 0, 0
	AttachRetranslator(window, func() {
		firstInvoked++
		if firstInvoked == 2 {
			// Re-entrant registration from inside a dispatch pass.
			AttachRetranslator(window, func() { secondInvoked++ })
		}
	})
	require.Equal(t, 1, firstInvoked)

	// The newcomer is invoked once by attach itself, but runs within
	// the snapshot of the NEXT dispatch pass only.
	window.Dispatch(languageChangeEvent())
	require.Equal(t, 2, firstInvoked)
	require.Equal(t, 1, secondInvoked)

	window.Dispatch(languageChangeEvent())
	require.Equal(t, 3, firstInvoked)
	require.Equal(t, 2, secondInvoked)
}

func TestDestroyedNodeInvokesNothing(t *testing.T) {
	window := NewNode("window", nil)

	invoked := 0
	AttachRetranslator(window, func() { invoked++ })
	retranslator := RetranslatorFor(window)

	window.Destroy()
	require.True(t, window.IsDestroyed())
	require.True(t, retranslator.Node.IsDestroyed())
	require.Nil(t, window.Children())
	require.Nil(t, retranslator.retranslateFuncs)

	// A synthetic language change delivered after destruction.
	invoked = 0
	window.Dispatch(languageChangeEvent())
	require.Equal(t, 0, invoked)
}

func TestDestroyCascadesThroughSubtree(t *testing.T) {
	window := NewNode("window", nil)
	page := NewNode("page", window)
	label := NewNode("label", page)

	AttachRetranslator(page, func() {})
	require.Equal(t, 1, countRetranslatorChildren(page))

	window.Destroy()

	require.True(t, page.IsDestroyed())
	require.True(t, label.IsDestroyed())
	require.Nil(t, page.Children())

	page.Dispatch(languageChangeEvent()) // no-op, no panic
}

func BenchmarkLanguageChangeDispatch(b *testing.B) {
	window := NewNode("window", nil)
	for i := 0; i < 8; i++ {
		AttachRetranslator(window, func() {})
	}
	event := languageChangeEvent()
	for i := 0; i < b.N; i++ {
		window.Dispatch(event)
	}
}
