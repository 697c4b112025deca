// SPDX-License-Identifier: MPL-2.0

// Package pomfile models Maven project descriptors (pom.xml files): the
// in-memory Project type, the XML load/save codec, coordinate-token parsing,
// and scaffolding for brand-new descriptors.
package pomfile
