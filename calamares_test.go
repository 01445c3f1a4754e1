// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"testing"

	"github.com/stretchr/testify/require"
)

/*
The package level API is a thin delegation to the one-per-process Core.
One lifecycle roundtrip is enough here; everything else is covered
by the per-instance Core tests.
*/
func TestPackageLevelLifecycle(t *testing.T) {
	require.True(t, Init(newTestStorage()).IsNil())
	defer func() { require.True(t, Shutdown().IsNil()) }()

	require.True(t, InstallTranslators(ResolveLocale("de_DE"), _TEST_BRANDING_PREFIX).IsNil())

	require.Equal(t, "de_DE", TranslatorLocaleName())
	require.Equal(t, "Willkommen, Alice!", Tr("Main/Greetings", Args{"name": "Alice"}))
	require.Equal(t, "Berlin (DE)", TrTimezone("Europe/Berlin", nil))
	require.Equal(t, "Meine Distro", TrBranding("Product", nil))
	require.NotNil(t, ActiveBundle(RESOURCE_CATEGORY_APPLICATION))
}
