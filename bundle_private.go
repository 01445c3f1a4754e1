// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

/*
isValid ensures that the current Bundle object is not nil and initialized correctly
(not manually instantiated by the caller). Returns true if this is correct object.
*/
func (b *Bundle) isValid() bool {
	return b != nil && b.owner != nil && b.root != nil
}

/*
makeSubNode is a bundleNode constructor and initializer
that binds the created node to the current Bundle.
*/
func (b *Bundle) makeSubNode() *bundleNode {
	return &bundleNode{
		parent:   b,
		subNodes: make(map[string]*bundleNode),
		content:  make(map[string]string),
	}
}

/*
destroy releases the current Bundle making all its phrases unreachable.

The Core calls it while retiring a bundle that is being replaced
by a newly installed one. A destroyed Bundle behaves as an empty one:
Tr() keeps being nil safe and returns the "not found" special string.
*/
func (b *Bundle) destroy() {
	if !b.isValid() {
		return
	}

	b.root.applyRecursively(func(node *bundleNode) {
		for key := range node.content {
			delete(node.content, key)
		}
	})

	for key := range b.root.subNodes {
		delete(b.root.subNodes, key)
	}

	b.phrasesCount = 0
}
