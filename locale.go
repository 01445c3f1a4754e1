// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"strings"

	"github.com/qioalice/ekago/v2/ekastr"

	"golang.org/x/text/language"
)

var (
	serbianBase = language.MustParseBase("sr")
	latinScript = language.MustParseScript("Latn")
)

/*
CanonicalLocaleName computes the canonical name of the passed locale,
under which the translation bundles of that locale are addressed.

Rules:
 - BCP 47 separators are replaced by underscores ("de-DE" -> "de_DE"),
 - the undetermined (zero) locale is treated as the "C" placeholder
   and resolves to "en",
 - Serbian written in the Latin script resolves to the fixed literal
   "sr@latin" whatever the region is.

Pure function. Always returns a non empty string.
*/
func CanonicalLocaleName(locale language.Tag) string {

	if base, confidence := locale.Base(); confidence >= language.High && base == serbianBase {
		if script, confidence := locale.Script(); confidence == language.Exact && script == latinScript {
			return "sr@latin"
		}
	}

	name := strings.Replace(locale.String(), "-", "_", -1)
	if name == "" || name == "und" || name == "C" {
		name = "en"
	}

	return name
}

/*
ResolveLocale leniently parses an externally supplied locale string
("de_DE", "sr-Latn-RS", "sr_RS@latin", ...) into a locale value.

The POSIX "@latin" modifier is recognized and mapped to the Latin script.
An empty string, the "C" placeholder and everything unparseable resolve
to the undetermined locale (which CanonicalLocaleName() maps to "en").

Never fails.
*/
func ResolveLocale(s string) language.Tag {

	s = strings.TrimSpace(s)

	var latinModifier bool
	if idx := strings.IndexByte(s, '@'); idx != -1 {
		latinModifier = strings.EqualFold(s[idx+1:], "latin")
		s = s[:idx]
	}

	if s == "" || s == "C" {
		return language.Und
	}

	locale, legacyErr := language.Parse(s)
	if legacyErr != nil {
		return language.Und
	}

	if latinModifier {
		if composed, legacyErr := language.Compose(locale, latinScript); legacyErr == nil {
			locale = composed
		}
	}

	return locale
}

/*
IsWellFormedLocaleName reports whether passed s is a locale name
that is in the following format "xx_YY", where:
 - xx is a lower case chars of language name ("en", "ru", "sr"),
 - YY is a upper case chars of country name ("US", "GB", "RS").
*/
func IsWellFormedLocaleName(s string) bool {
	return len(s) == 5 &&
		ekastr.CharIsLowerCaseLetter(s[0]) &&
		ekastr.CharIsLowerCaseLetter(s[1]) &&
		ekastr.CharIsUpperCaseLetter(s[3]) &&
		ekastr.CharIsUpperCaseLetter(s[4]) &&
		s[2] == '_'
}
