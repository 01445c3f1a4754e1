// Copyright © 2021. All rights reserved.
// Author: Ghiunhan Mamut.
// Contacts: venerix@redcorelinux.org, https://github.com/V3n3RiX
// License: https://opensource.org/licenses/GPL-3.0

package calamares

import (
	"io/fs"
	"strings"

	"github.com/qioalice/ekago/v2/ekalog"

	"github.com/pelletier/go-toml"
	"gopkg.in/yaml.v3"
)

var (
	/*
	loadDocumentResolvers is a closed set of storage document flavours
	a translation bundle may be stored as.
	A bundle addressed as "lang/calamares_de_DE" is looked up as
	"lang/calamares_de_DE.toml", then ".yml", then ".yaml".
	*/
	loadDocumentResolvers = []struct {
		Unmarshaler func(d []byte, v interface{}) error
		Extension   string
	}{
		{
			Unmarshaler: toml.Unmarshal,
			Extension:   "toml",
		},
		{
			Unmarshaler: yaml.Unmarshal,
			Extension:   "yml",
		},
		{
			Unmarshaler: yaml.Unmarshal,
			Extension:   "yaml",
		},
	}
)

/*
loadDocument tries to read the storage document addressed by pathNoExt
(a slash separated storage path without extension), decode it
and scan the decoded content into dest.

Returns true only if at least one phrase ended up in dest.
Misses (no such document) are silent, broken documents are logged:
either way the outcome is just false, never an error.
*/
func (lb loaderBase) loadDocument(dest *Bundle, pathNoExt string) bool {

	for _, resolver := range loadDocumentResolvers {

		documentPath := pathNoExt + "." + resolver.Extension

		content, legacyErr := fs.ReadFile(lb.core.storage, documentPath)
		if legacyErr != nil {
			continue
		}

		rootMap := make(map[string]interface{})
		if legacyErr = resolver.Unmarshaler(content, &rootMap); legacyErr != nil {
			ekalog.Warn(_LOG_SUBENTRY + "Skipping undecodable bundle document: " + documentPath)
			continue
		}

		if len(rootMap) == 0 {
			continue
		}

		if err := dest.root.scan(rootMap); err.IsNotNil() {
			err.AddMessage("Skipping malformed bundle document.").
				AddFields("calamares_bundle_document", documentPath).
				LogAsWarn()
			continue
		}

		return !dest.IsEmpty()
	}

	return false
}

/*
dirExists reports whether name is an existing directory of the storage.
*/
func dirExists(storage fs.FS, name string) bool {
	fi, legacyErr := fs.Stat(storage, name)
	return legacyErr == nil && fi.IsDir()
}

/*
brandingCandidates builds the bundle names the branding translations
are probed by, most specific first:
the full canonical locale name, then the bare language
("mybrand_sr_RS" -> "mybrand_sr"). The separator is skipped when the
caller's prefix already ends with one.
*/
func brandingCandidates(base, localeName string) []string {

	separator := "_"
	if strings.HasSuffix(base, "_") || strings.HasSuffix(base, "-") {
		separator = ""
	}

	candidates := []string{base + separator + localeName}

	if idx := strings.IndexByte(localeName, '_'); idx != -1 {
		candidates = append(candidates, base+separator+localeName[:idx])
	}

	return candidates
}
