// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/require"
)

//goland:noinspection GoSnakeCaseUsage
const _TEST_BRANDING_PREFIX = "branding/default/lang/mybrand_"

func newTestStorage() fstest.MapFS {
	return fstest.MapFS{
		"lang/calamares_en.yml": &fstest.MapFile{Data: []byte(
			"Main:\n  Greetings: \"Welcome, {{name}}!\"\n")},
		"lang/calamares_de_DE.toml": &fstest.MapFile{Data: []byte(
			"[Main]\nGreetings = \"Willkommen, {{name}}!\"\n")},
		"lang/tz_en.yml": &fstest.MapFile{Data: []byte(
			"Europe:\n  Berlin: \"Berlin\"\n")},
		"lang/tz_de_DE.yml": &fstest.MapFile{Data: []byte(
			"Europe:\n  Berlin: \"Berlin (DE)\"\n")},
		"branding/default/lang/mybrand_en.toml": &fstest.MapFile{Data: []byte(
			"Product = \"My Distro\"\n")},
		"branding/default/lang/mybrand_de_DE.toml": &fstest.MapFile{Data: []byte(
			"Product = \"Meine Distro\"\n")},
	}
}

func newReadyCore(t *testing.T) *Core {
	c := new(Core)
	require.True(t, c.Init(newTestStorage()).IsNil())
	return c
}

func TestInstallPrimaryLocale(t *testing.T) {
	c := newReadyCore(t)
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), _TEST_BRANDING_PREFIX).IsNil())

	require.Equal(t, "de_DE", c.LocaleName())
	require.Equal(t, "Willkommen, Alice!", c.Tr("Main/Greetings", Args{"name": "Alice"}))
	require.Equal(t, "Berlin (DE)", c.TrTimezone("Europe/Berlin", nil))
	require.Equal(t, "Meine Distro", c.TrBranding("Product", nil))
}

func TestInstallFallsBackToDefault(t *testing.T) {
	c := newReadyCore(t)

	// "calamares_sr@latin" is absent from the storage, so the fixed
	// "calamares_en" default is picked, while the canonical name stays
	// the requested one.
	require.True(t, c.InstallTranslators(ResolveLocale("sr_RS@latin"), "").IsNil())

	require.Equal(t, "sr@latin", c.LocaleName())
	require.Equal(t, "sr@latin", c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION).Name())
	require.Equal(t, "Welcome, Alice!", c.Tr("Main/Greetings", Args{"name": "Alice"}))
}

func TestReinstallRetiresPreviousBundle(t *testing.T) {
	c := newReadyCore(t)

	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), "").IsNil())
	first := c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION)
	require.NotNil(t, first)
	require.False(t, first.IsEmpty())

	require.True(t, c.InstallTranslators(ResolveLocale("en_US"), "").IsNil())
	second := c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION)
	require.NotNil(t, second)

	// Exactly the second bundle is active, the first one is released.
	require.True(t, first != second)
	require.True(t, first.IsEmpty())
	require.Equal(t, "en_US", c.LocaleName())
	require.Equal(t, "Welcome, Alice!", c.Tr("Main/Greetings", Args{"name": "Alice"}))
}

func TestInstallAlwaysLeavesActiveBundle(t *testing.T) {
	c := new(Core)
	require.True(t, c.Init(fstest.MapFS{}).IsNil())

	// Nothing at all in the storage: every category still ends up with
	// a defined (empty) active bundle.
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), "").IsNil())

	for category := ResourceCategory(0); category < _RESOURCE_CATEGORIES_COUNT; category++ {
		bundle := c.ActiveBundle(category)
		require.NotNil(t, bundle, "category: %s", category)
		require.True(t, bundle.IsEmpty(), "category: %s", category)
	}

	require.Equal(t, sptr(_SPTR_TRANSLATION_NOT_FOUND, "Main/Greetings"),
		c.Tr("Main/Greetings", nil))
}

func TestBrandingBugCompatibleDefault(t *testing.T) {
	c := newReadyCore(t)

	// No "mybrand_sr@latin" branding bundle: the default is addressed
	// as the literal prefix+"en", which only resolves because the
	// prefix happens to end with an underscore.
	require.True(t, c.InstallTranslators(ResolveLocale("sr_RS@latin"), _TEST_BRANDING_PREFIX).IsNil())
	require.Equal(t, "My Distro", c.TrBranding("Product", nil))
}

func TestBrandingTotalMiss(t *testing.T) {
	c := newReadyCore(t)

	// Prefix pointing nowhere: nothing is loaded, but the category's
	// slot still holds a defined empty bundle.
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), "nope/brand_").IsNil())

	bundle := c.ActiveBundle(RESOURCE_CATEGORY_BRANDING)
	require.NotNil(t, bundle)
	require.True(t, bundle.IsEmpty())
}

func TestBrandingEmptyPrefix(t *testing.T) {
	c := newReadyCore(t)
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), "").IsNil())

	bundle := c.ActiveBundle(RESOURCE_CATEGORY_BRANDING)
	require.NotNil(t, bundle)
	require.True(t, bundle.IsEmpty())
}

func TestInstallBeforeInitFails(t *testing.T) {
	c := new(Core)
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), "").IsNotNil())
	require.Nil(t, c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION))
	require.Equal(t, "", c.LocaleName())
}

func TestDoubleInitFails(t *testing.T) {
	c := newReadyCore(t)
	require.True(t, c.Init(newTestStorage()).IsNotNil())
}

func TestShutdownRetiresEverything(t *testing.T) {
	c := newReadyCore(t)
	require.True(t, c.InstallTranslators(ResolveLocale("de_DE"), _TEST_BRANDING_PREFIX).IsNil())

	application := c.ActiveBundle(RESOURCE_CATEGORY_APPLICATION)
	require.False(t, application.IsEmpty())

	require.True(t, c.Shutdown().IsNil())

	require.True(t, application.IsEmpty())
	require.Equal(t, "", c.LocaleName())
	for category := ResourceCategory(0); category < _RESOURCE_CATEGORIES_COUNT; category++ {
		require.Nil(t, c.ActiveBundle(category))
	}

	// The lifecycle is restartable.
	require.True(t, c.Init(newTestStorage()).IsNil())
	require.True(t, c.InstallTranslators(ResolveLocale("en_US"), "").IsNil())
	require.Equal(t, "en_US", c.LocaleName())
}

func TestShutdownBeforeInitFails(t *testing.T) {
	require.True(t, new(Core).Shutdown().IsNotNil())
}
