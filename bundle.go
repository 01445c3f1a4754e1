// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"strings"
)

type (
	/*
	Bundle is a storage of all translated phrases for one locale
	of one resource category.

	You don't instantiate Bundle manually, the Core does it during
	InstallTranslators(). Getting the active bundle by ActiveBundle()
	allows you to transform your translated key to the desired
	language's phrase.

	WARNING!
	You must not instantiate this class manually!
	It's useless but safely.
	So you won't get panicked or UB.
	Manually instantiated Bundle objects are considered not initialized
	and provides to you the same behaviour as if it'd be nil.
	*/
	Bundle struct {
		owner        *Core
		root         *bundleNode
		name         string // canonical locale name, e.g. "de_DE", "sr@latin"
		phrasesCount uint64 // not only root bundleNode but all nested also
	}
)

/*
Tr tries to get translated language phrase by the specified translation key
and then tries to interpolate this phrase using passed args, if any.

Nil safe.
If this method is called on nil object, the special string is returned.

Special returned strings.
All of special returned strings has the same format:

        "i18nErr: <error_class>. Key: <translation_key>".
                <translation_key> is your translation key,
                <error_class> might be:

 - _SPTR_BUNDLE_IS_NIL:                Current Bundle object is nil,
 - _SPTR_TRANSLATION_KEY_IS_EMPTY:     Translation key is empty,
 - _SPTR_TRANSLATION_KEY_IS_INCORRECT: Translation key is invalid (incorrect separator),
 - _SPTR_TRANSLATION_NOT_FOUND:        Translation not found.
*/
func (b *Bundle) Tr(key string, args Args) string {

	switch {
	case !b.isValid():
		return sptr(_SPTR_BUNDLE_IS_NIL, key)
	case key == "":
		return sptr(_SPTR_TRANSLATION_KEY_IS_EMPTY, key)
	}

	var (
		prefix      string
		originalKey = key
	)

	for node := b.root; node != nil; {
		if idx := strings.IndexByte(key, DEFAULT_DELIMITER); idx != -1 {
			prefix, key = key[:idx], key[idx+1:]

			if len(key) == 0 || len(prefix) == 0 {
				return sptr(_SPTR_TRANSLATION_KEY_IS_INCORRECT, originalKey)
			}

			node = node.subNode(prefix, false)
			continue

		} else if translatedPhrase, found := node.content[key]; found {
			return format(translatedPhrase, args)

		} else {
			return sptr(_SPTR_TRANSLATION_NOT_FOUND, originalKey)
		}
	}

	return sptr(_SPTR_TRANSLATION_NOT_FOUND, originalKey)
}

/*
Name returns the canonical locale name the current Bundle was loaded for.

Keep in mind, the name reflects the requested locale, not the storage file
the phrases came from: a bundle that fell back to the default translations
still carries the originally requested canonical name.

Nil safe.
If this method is called on nil object, the empty string is returned.
*/
func (b *Bundle) Name() string {
	if !b.isValid() {
		return ""
	}
	return b.name
}

/*
PhrasesCount returns how many translated phrases the current Bundle holds,
counting all nested nodes.

Nil safe.
*/
func (b *Bundle) PhrasesCount() uint64 {
	if !b.isValid() {
		return 0
	}
	return b.phrasesCount
}

/*
IsEmpty reports whether the current Bundle holds no phrases at all.
A nil (or retired) Bundle is considered empty.
*/
func (b *Bundle) IsEmpty() bool {
	return b.PhrasesCount() == 0
}
