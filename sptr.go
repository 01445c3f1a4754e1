// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

type (
	_SpecialTranslationClass string
)

//goland:noinspection GoSnakeCaseUsage
const (
	__SPTR_PREFIX = _SpecialTranslationClass("i18nErr: ")
	__SPTR_SUFFIX = _SpecialTranslationClass(". Key: ")

	_SPTR_TRANSLATION_NOT_FOUND = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationNotFound") + __SPTR_SUFFIX

	_SPTR_BUNDLE_IS_NIL = __SPTR_PREFIX +
		_SpecialTranslationClass("BundleIsNil") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_KEY_IS_EMPTY = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationKeyIsEmpty") + __SPTR_SUFFIX

	_SPTR_TRANSLATION_KEY_IS_INCORRECT = __SPTR_PREFIX +
		_SpecialTranslationClass("TranslationKeyIsIncorrect") + __SPTR_SUFFIX
)

/*
Trivia:
Bundle.Tr() or Core.Tr() may have an error.
Not existed or empty translation key, not installed Bundle,
an errors of interpolation of language phrase with arguments, and others.

We need a way to say caller that there was an error.
I do not want to use *ekaerr.Error
as a 2nd return argument of Bundle.Tr() or Core.Tr() methods.
Caller's checks will be too hard to read.

There is another way.
A special strings. It's OK. Users will say:
"Ha, bad translations. Found an easter egg. Or visual translation bug."
And it's ok. It will not lead to some bad consequences. I mean, very bad.
The text just shows up untranslated-ish instead of crashing an installer.

So, sptr() is just a generator of that "easter egg" - a special string
that you (as a caller) may get instead of language phrase. If something went wrong.

And "_SPTR_" starts constants are classes for that generator.
*/
func sptr(class _SpecialTranslationClass, originalKey string) string {
	return string(class) + originalKey
}
