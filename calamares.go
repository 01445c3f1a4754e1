// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"io/fs"

	"github.com/qioalice/ekago/v2/ekaerr"

	"golang.org/x/text/language"
)

//goland:noinspection GoSnakeCaseUsage
const (
	DEFAULT_DELIMITER byte = '/'
)

/*
Init initializes the process-wide localization Core
binding it to the passed bundle storage.

Call it once at application start. See Core.Init() for details.
*/
func Init(storage fs.FS) *ekaerr.Error {
	return defaultCore.Init(storage).Throw()
}

/*
Shutdown tears the process-wide localization Core down,
retiring every active bundle. See Core.Shutdown() for details.
*/
func Shutdown() *ekaerr.Error {
	return defaultCore.Shutdown().Throw()
}

/*
InstallTranslators resolves the passed locale to its canonical name,
loads a translation bundle for each resource category
and swaps them in as the process-wide active bundles.

See Core.InstallTranslators() for details.
*/
func InstallTranslators(locale language.Tag, brandingPrefix string) *ekaerr.Error {
	return defaultCore.InstallTranslators(locale, brandingPrefix).Throw()
}

/*
TranslatorLocaleName returns the canonical locale name
the last InstallTranslators() call was performed with.

Empty string if nothing was installed yet.
*/
func TranslatorLocaleName() string {
	return defaultCore.LocaleName()
}

/*
ActiveBundle returns the currently active Bundle of the requested category,
or nil if nothing is installed.

Reminder:
It's safe to call Bundle.Tr() of nil Bundle.
You just will get an error string message. Not panic, not UB.
*/
func ActiveBundle(category ResourceCategory) *Bundle {
	return defaultCore.ActiveBundle(category)
}

/*
Tr is an alias for ActiveBundle(RESOURCE_CATEGORY_APPLICATION).Tr(key, args).
See Bundle.Tr() method for more details.
*/
func Tr(key string, args Args) string {
	return defaultCore.Tr(key, args)
}

/*
TrTimezone is an alias for ActiveBundle(RESOURCE_CATEGORY_TIMEZONE).Tr(key, args).
*/
func TrTimezone(key string, args Args) string {
	return defaultCore.TrTimezone(key, args)
}

/*
TrBranding is an alias for ActiveBundle(RESOURCE_CATEGORY_BRANDING).Tr(key, args).
*/
func TrBranding(key string, args Args) string {
	return defaultCore.TrBranding(key, args)
}
