// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"sync/atomic"
	"unsafe"
)

//goland:noinspection GoSnakeCaseUsage
const (
	_CORE_OFFLINE         uint32 = 0
	_CORE_STANDBY         uint32 = 1
	_CORE_INSTALL_PENDING uint32 = 2
	_CORE_READY           uint32 = 10
)

func (c *Core) isValid() bool {
	return c != nil
}

func (c *Core) changeState(from, to uint32) bool {
	return atomic.CompareAndSwapUint32(&c.state, from, to)
}

func (c *Core) changeStateForce(to uint32) {
	atomic.StoreUint32(&c.state, to)
}

func (c *Core) getState() uint32 {
	return atomic.LoadUint32(&c.state)
}

func strState(v uint32) string {
	switch v {
	case _CORE_OFFLINE:
		return "<offline, not initialized>"
	case _CORE_STANDBY:
		return "<standby mode, nothing installed>"
	case _CORE_INSTALL_PENDING:
		return "<installing translation bundles>"
	case _CORE_READY:
		return "<bundles installed, ready to use>"
	default:
		return "<unknown>"
	}
}

/*
getActiveBundle returns the Bundle currently occupying the requested
category's slot, nil if the slot is empty.
Caller must have validated the category.
*/
func (c *Core) getActiveBundle(category ResourceCategory) *Bundle {
	return (*Bundle)(atomic.LoadPointer(&c.slots[category]))
}

/*
setActiveBundle puts b into the requested category's slot atomically.
*/
func (c *Core) setActiveBundle(category ResourceCategory, b *Bundle) {
	atomic.StorePointer(&c.slots[category], unsafe.Pointer(b))
}

func (c *Core) setLocaleName(name string) {
	atomic.StorePointer(&c.localeName, unsafe.Pointer(&name))
}

func (c *Core) getLocaleName() string {
	p := (*string)(atomic.LoadPointer(&c.localeName))
	if p == nil {
		return ""
	}
	return *p
}

/*
makeBundle is Bundle constructor and initializer.
The caller MUST install it into one of the Core's slots.
*/
func (c *Core) makeBundle(name string) *Bundle {
	b := &Bundle{
		owner: c,
		name:  name,
	}

	b.root = b.makeSubNode()
	return b
}

/*
installSingleton populates a fresh Bundle through the passed loader and
swaps it into the category's slot:

 1. the new bundle is built aside, invisible;
 2. the previous bundle (if any) is deactivated and released;
 3. the new bundle is activated.

The new bundle is installed even when the loader reported a total miss,
so after the first install the slot always holds a defined bundle.
Consumers never observe two bundles of one category at once.
*/
func (c *Core) installSingleton(loader translationLoader, category ResourceCategory) {

	bundle := c.makeBundle(loader.localeName())
	loader.tryLoad(bundle)

	if old := c.getActiveBundle(category); old != nil {
		c.setActiveBundle(category, nil)
		old.destroy()
	}

	c.setActiveBundle(category, bundle)
}
