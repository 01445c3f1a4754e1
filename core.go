// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"io/fs"
	"strings"
	"unsafe"

	"github.com/qioalice/ekago/v2/ekaerr"

	"golang.org/x/text/language"
)

type (
	/*
	Core is the process-scoped owner of the localization state:
	the bundle storage and one active Bundle slot per resource category.

	Exactly one Core instance exists per process (the package keeps it
	and the package level functions delegate to it). It is initialized
	once at application start by Init() and torn down at application
	exit by Shutdown().

	All Core operations are meant to be called from the host UI event
	loop goroutine. Nothing here blocks or suspends; the slots are kept
	behind atomic pointers so a reader may never observe a partially
	swapped bundle, but the calls themselves are serialized by the event
	loop, not by this package.
	*/
	Core struct {

		/*
		state is a current state of the Core.
		The package provides to you some promises (contracts),
		to maintain which this variable exists.
		 - You cannot install bundles before Init() or after Shutdown().
		 - You cannot start an install while another one is in flight.
		*/
		state uint32

		storage fs.FS

		// One owned handle per resource category to the currently
		// installed Bundle, or nil. Nobody else may hold or free it.
		slots [_RESOURCE_CATEGORIES_COUNT]unsafe.Pointer

		// Canonical locale name of the last installed application
		// bundle, *string behind an atomic pointer.
		localeName unsafe.Pointer
	}
)

var (
	defaultCore Core
)

/*
Init binds the Core to the passed bundle storage and arms it.

The storage is any fs.FS (embed.FS, os.DirFS, fstest.MapFS, ...) holding
the translation bundle documents:

        lang/calamares_<canonical>.(toml|yml|yaml)
        lang/tz_<canonical>.(toml|yml|yaml)
        <branding prefix derived paths>

Returns an error if the Core is already initialized.
*/
func (c *Core) Init(storage fs.FS) *ekaerr.Error {
	const s = "Failed to initialize localization core. "
	switch {

	case !c.isValid():
		return ekaerr.IllegalState.
			New(s + "Core is not valid.").
			Throw()

	case storage == nil:
		return ekaerr.IllegalArgument.
			New(s + "Storage is nil.").
			Throw()

	case !c.changeState(_CORE_OFFLINE, _CORE_STANDBY):
		return ekaerr.IllegalState.
			New(s + "Core is already initialized.").
			Throw()
	}

	c.storage = storage
	return nil
}

/*
InstallTranslators computes the canonical name of the passed locale,
loads one translation bundle per resource category and swaps each of them
in as the process-wide active bundle of that category.

For each category the previous bundle (if any) is retired completely -
deactivated and released - before the new one becomes visible, so at any
observable instant a category has at most one active bundle.

A bundle that could not be loaded degrades to its category's default
translations, and if even those are unavailable an empty bundle is
installed; either way the category's slot is never left without a defined
bundle and the miss is only visible in the diagnostic log. The only
errors reported are misuse ones: Core not initialized, or another
InstallTranslators() in flight.

brandingPrefix addresses the branding bundles ("branding/mybrand/lang/
mybrand_"); pass the empty string if the product has none.
*/
func (c *Core) InstallTranslators(locale language.Tag, brandingPrefix string) *ekaerr.Error {
	const s = "Failed to install translation bundles. "

	if !c.isValid() {
		return ekaerr.IllegalState.
			New(s + "Core is not valid.").
			Throw()
	}

	if !(c.changeState(_CORE_STANDBY, _CORE_INSTALL_PENDING) ||
		c.changeState(_CORE_READY, _CORE_INSTALL_PENDING)) {

		allowedStates := []string{
			strState(_CORE_STANDBY),
			strState(_CORE_READY),
		}

		return ekaerr.IllegalState.
			New(s + "Core is not initialized or another install is in flight.").
			AddFields("calamares_allowed_states", strings.Join(allowedStates, ", ")).
			Throw()
	}

	// We got "lock" of c.state as _CORE_INSTALL_PENDING.
	// Whatever the loaders report, the bundles are installed and the
	// Core ends up _CORE_READY. Load misses are not install failures.
	defer c.changeStateForce(_CORE_READY)

	c.installSingleton(
		brandingLoader{makeLoaderBase(c, locale), brandingPrefix},
		RESOURCE_CATEGORY_BRANDING)

	c.installSingleton(
		timezoneLoader{makeLoaderBase(c, locale)},
		RESOURCE_CATEGORY_TIMEZONE)

	// Application strings go last, because we want the extracted
	// canonical name to be the one queryable afterwards.
	appLoader := applicationLoader{makeLoaderBase(c, locale)}
	c.installSingleton(appLoader, RESOURCE_CATEGORY_APPLICATION)
	c.setLocaleName(appLoader.localeName())

	return nil
}

/*
ActiveBundle returns the currently active Bundle of the requested
category, or nil if the Core holds nothing for it (not initialized,
nothing installed yet, unknown category).

Reminder:
It's safe to call Bundle.Tr() of nil Bundle.
You just will get an error string message. Not panic, not UB.
*/
func (c *Core) ActiveBundle(category ResourceCategory) *Bundle {
	if !c.isValid() || category >= _RESOURCE_CATEGORIES_COUNT {
		return nil
	}
	if c.getState() != _CORE_READY {
		return nil
	}
	return c.getActiveBundle(category)
}

/*
LocaleName returns the canonical locale name of the last
InstallTranslators() call, or the empty string before the first one.
*/
func (c *Core) LocaleName() string {
	if !c.isValid() {
		return ""
	}
	return c.getLocaleName()
}

/*
Tr is an alias for ActiveBundle(RESOURCE_CATEGORY_APPLICATION).Tr(key, args).
See Bundle.Tr() method for more details.
*/
func (c *Core) Tr(key string, args Args) string {
	return c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION).Tr(key, args)
}

/*
TrTimezone is an alias for ActiveBundle(RESOURCE_CATEGORY_TIMEZONE).Tr(key, args).
*/
func (c *Core) TrTimezone(key string, args Args) string {
	return c.ActiveBundle(RESOURCE_CATEGORY_TIMEZONE).Tr(key, args)
}

/*
TrBranding is an alias for ActiveBundle(RESOURCE_CATEGORY_BRANDING).Tr(key, args).
*/
func (c *Core) TrBranding(key string, args Args) string {
	return c.ActiveBundle(RESOURCE_CATEGORY_BRANDING).Tr(key, args)
}

/*
Shutdown retires every active bundle and detaches the Core from its
storage, returning it to the uninitialized state.

Returns an error if the Core was not initialized or an install
is in flight.
*/
func (c *Core) Shutdown() *ekaerr.Error {
	const s = "Failed to shutdown localization core. "

	if !c.isValid() {
		return ekaerr.IllegalState.
			New(s + "Core is not valid.").
			Throw()
	}

	if !(c.changeState(_CORE_STANDBY, _CORE_OFFLINE) ||
		c.changeState(_CORE_READY, _CORE_OFFLINE)) {

		return ekaerr.IllegalState.
			New(s + "Core is not initialized or an install is in flight.").
			Throw()
	}

	for category := ResourceCategory(0); category < _RESOURCE_CATEGORIES_COUNT; category++ {
		if old := c.getActiveBundle(category); old != nil {
			c.setActiveBundle(category, nil)
			old.destroy()
		}
	}

	c.setLocaleName("")
	c.storage = nil
	return nil
}
