// SPDX-License-Identifier: MPL-2.0

package pomfile

import (
	"encoding/xml"
	"path/filepath"

	"github.com/charmbracelet/log"
)

// CreateOptions controls scaffolding of a brand-new descriptor.
type CreateOptions struct {
	// Packaging for the new descriptor; DefaultPackaging when empty.
	Packaging string

	// Standalone suppresses the ancestor search for a parent descriptor.
	Standalone bool
}

// NewProject builds a default descriptor for a file that does not exist yet
// at path. Unless opts.Standalone is set, the ancestor directories of path
// are searched for the nearest pom.xml; when one is found, its coordinates
// seed the new descriptor's parent reference. Search failures are soft: the
// result is simply a descriptor without a parent.
func NewProject(path string, opts CreateOptions) *Project {
	packaging := opts.Packaging
	if packaging == "" {
		packaging = DefaultPackaging
	}

	proj := &Project{
		XMLName:      xml.Name{Space: Namespace, Local: "project"},
		ModelVersion: ModelVersion,
		Packaging:    packaging,
	}

	if !opts.Standalone {
		proj.Parent = findAncestorParent(path)
	}

	return proj
}

// findAncestorParent walks up from the directory containing path, looking for
// the nearest pom.xml, and builds a parent reference pointing at it. Returns
// nil when no ancestor descriptor exists or one cannot be read.
func findAncestorParent(path string) *Parent {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil
	}

	dir := filepath.Dir(abs)
	for cur := filepath.Dir(dir); ; cur = filepath.Dir(cur) {
		candidate := filepath.Join(cur, DefaultFileName)
		if Exists(candidate) {
			parent, err := Load(candidate)
			if err != nil {
				log.Debug("ignoring unreadable ancestor pom", "path", candidate, "error", err)
				return nil
			}
			rel, err := filepath.Rel(dir, candidate)
			if err != nil {
				return nil
			}
			return &Parent{
				GroupID:      parent.EffectiveGroupID(),
				ArtifactID:   parent.ArtifactID,
				Version:      parent.EffectiveVersion(),
				RelativePath: filepath.ToSlash(rel),
			}
		}
		if cur == filepath.Dir(cur) {
			return nil
		}
	}
}
