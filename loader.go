// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"path"

	"github.com/qioalice/ekago/v2/ekalog"

	"golang.org/x/text/language"
)

type (
	/*
	ResourceCategory allows you to know which translations a Bundle holds:
	Application strings? Timezone names? Branding strings?
	Each category has its own independent active bundle slot in the Core.
	*/
	ResourceCategory uint8
)

//goland:noinspection GoSnakeCaseUsage
const (
	/*
	There are a constants of ResourceCategory.
	In the source code you may determine using these constants
	which translations a Bundle object holds.
	*/
	RESOURCE_CATEGORY_APPLICATION ResourceCategory = 0
	RESOURCE_CATEGORY_TIMEZONE    ResourceCategory = 1
	RESOURCE_CATEGORY_BRANDING    ResourceCategory = 2
)

//goland:noinspection GoSnakeCaseUsage
const (
	_RESOURCE_CATEGORIES_COUNT = 3

	// Diagnostic lines about which translations were picked are nested
	// status detail, not top-level log entries.
	_LOG_SUBENTRY = " .. "
)

/*
String returns a human readable name of the current ResourceCategory.
*/
func (rc ResourceCategory) String() string {
	switch rc {
	case RESOURCE_CATEGORY_APPLICATION:
		return "Application"
	case RESOURCE_CATEGORY_TIMEZONE:
		return "Timezone"
	case RESOURCE_CATEGORY_BRANDING:
		return "Branding"
	default:
		return "<unknown>"
	}
}

type (
	/*
	translationLoader is a closed set of ways to populate a Bundle
	with translations of one resource category for one locale.

	tryLoad() reports whether any translations were loaded into dest.
	A false outcome is not an error: the caller installs the (possibly
	empty) bundle anyway and the miss is only visible in the logs.
	*/
	translationLoader interface {
		tryLoad(dest *Bundle) bool
		localeName() string
	}

	// Shared part of every loader: the bundle storage and the locale
	// with its precomputed canonical name.
	loaderBase struct {
		core *Core
		name string
	}

	// applicationLoader loads the application strings,
	// "lang/calamares_<canonical>" with the fixed "lang/calamares_en" default.
	applicationLoader struct {
		loaderBase
	}

	// timezoneLoader loads the translated timezone names,
	// "lang/tz_<canonical>" with the fixed "lang/tz_en" default.
	timezoneLoader struct {
		loaderBase
	}

	// brandingLoader loads the branding strings addressed by a caller
	// supplied prefix instead of a fixed bundle name.
	brandingLoader struct {
		loaderBase
		prefix string
	}
)

func makeLoaderBase(core *Core, locale language.Tag) loaderBase {
	return loaderBase{
		core: core,
		name: CanonicalLocaleName(locale),
	}
}

func (lb loaderBase) localeName() string {
	return lb.name
}

func (l applicationLoader) tryLoad(dest *Bundle) bool {
	if l.loadDocument(dest, "lang/calamares_"+l.name) {
		ekalog.Debug(_LOG_SUBENTRY + "Calamares using locale: " + l.name)
		return true
	}
	ekalog.Debug(_LOG_SUBENTRY + "Calamares using default, system locale not found: " + l.name)
	return l.loadDocument(dest, "lang/calamares_en")
}

func (l timezoneLoader) tryLoad(dest *Bundle) bool {
	if l.loadDocument(dest, "lang/tz_"+l.name) {
		ekalog.Debug(_LOG_SUBENTRY + "Calamares Timezones using locale: " + l.name)
		return true
	}
	ekalog.Debug(_LOG_SUBENTRY + "Calamares Timezones using default, system locale not found: " + l.name)
	return l.loadDocument(dest, "lang/tz_en")
}

/*
tryLoad of the brandingLoader differs from the fixed-name loaders:
the prefix is supplied by the caller ("branding/default/lang/mybrand_"),
bundle candidates are derived from it, and a total miss yields
an explicit false with nothing loaded instead of a default bundle.
*/
func (l brandingLoader) tryLoad(dest *Bundle) bool {
	if l.prefix == "" {
		return false
	}

	dir := path.Dir(l.prefix)
	base := path.Base(l.prefix)

	if !dirExists(l.core.storage, dir) {
		return false
	}

	for _, candidate := range brandingCandidates(base, l.name) {
		if l.loadDocument(dest, path.Join(dir, candidate)) {
			ekalog.Debug(_LOG_SUBENTRY + "Branding using locale: " + l.name)
			return true
		}
	}

	ekalog.Debug(_LOG_SUBENTRY + "Branding using default, system locale not found: " + l.name)

	// Mirrors the original behaviour: the default branding bundle is
	// addressed as the literal prefix followed by "en", no separator.
	// With a trailing-underscore prefix that lands on "<base>_en",
	// with any other prefix it misses.
	return l.loadDocument(dest, l.prefix+"en")
}
