// SPDX-License-Identifier: MPL-2.0

package pomfile

import (
	"encoding/xml"
	"errors"
	"fmt"
	"os"
)

const (
	// DefaultFileName is the conventional descriptor file name.
	DefaultFileName = "pom.xml"

	// DefaultPackaging is the packaging assumed when a descriptor omits it.
	DefaultPackaging = "jar"

	// ModelVersion is the POM model version written into new descriptors.
	ModelVersion = "4.0.0"

	// Namespace is the POM XML namespace written into new descriptors.
	Namespace = "http://maven.apache.org/POM/4.0.0"
)

var (
	// ErrRead is wrapped by errors returned when a descriptor exists but
	// cannot be read or decoded. Check with errors.Is(err, pomfile.ErrRead).
	ErrRead = errors.New("cannot read pom")

	// ErrWrite is wrapped by errors returned when persisting a descriptor fails.
	ErrWrite = errors.New("cannot write pom")

	// ErrInvalidCoordinates is wrapped by errors returned for malformed
	// coordinate tokens (currently only the empty token).
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

type (
	// Parent is the parent reference declared inside a descriptor. It is
	// read-only once loaded: pomkit never mutates a parent reference, only
	// the module list of the parent descriptor it points at.
	Parent struct {
		GroupID      string `xml:"groupId,omitempty"`
		ArtifactID   string `xml:"artifactId,omitempty"`
		Version      string `xml:"version,omitempty"`
		RelativePath string `xml:"relativePath,omitempty"`
	}

	// Project is a Maven project descriptor. Optional fields are empty
	// strings when absent; Modules preserves document order and must stay
	// duplicate-free.
	Project struct {
		XMLName      xml.Name `xml:"project"`
		ModelVersion string   `xml:"modelVersion,omitempty"`
		Parent       *Parent  `xml:"parent,omitempty"`
		GroupID      string   `xml:"groupId,omitempty"`
		ArtifactID   string   `xml:"artifactId,omitempty"`
		Version      string   `xml:"version,omitempty"`
		Packaging    string   `xml:"packaging,omitempty"`
		Modules      []string `xml:"modules>module,omitempty"`
	}
)

// Load reads and decodes the descriptor at path.
func Load(path string) (*Project, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrRead, path, err)
	}

	var proj Project
	if err := xml.Unmarshal(data, &proj); err != nil {
		return nil, fmt.Errorf("%w at %s: %w", ErrRead, path, err)
	}

	return &proj, nil
}

// Save encodes and writes the descriptor to path. Output is deterministic,
// so saving an unchanged descriptor reproduces the previous bytes exactly.
func Save(proj *Project, path string) error {
	data, err := xml.MarshalIndent(proj, "", "  ")
	if err != nil {
		return fmt.Errorf("%w at %s: %w", ErrWrite, path, err)
	}

	out := append([]byte(xml.Header), data...)
	out = append(out, '\n')

	if err := os.WriteFile(path, out, 0o644); err != nil {
		return fmt.Errorf("%w at %s: %w", ErrWrite, path, err)
	}

	return nil
}

// Exists reports whether a regular file exists at path.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// EffectiveGroupID returns the descriptor's group id, falling back to the
// parent reference when the descriptor's own is absent.
func (p *Project) EffectiveGroupID() string {
	if p.GroupID == "" && p.Parent != nil {
		return p.Parent.GroupID
	}
	return p.GroupID
}

// EffectiveVersion returns the descriptor's version, falling back to the
// parent reference when the descriptor's own is absent.
func (p *Project) EffectiveVersion() string {
	if p.Version == "" && p.Parent != nil {
		return p.Parent.Version
	}
	return p.Version
}

// EffectivePackaging returns the descriptor's packaging, defaulting to
// DefaultPackaging when the descriptor omits it.
func (p *Project) EffectivePackaging() string {
	if p.Packaging == "" {
		return DefaultPackaging
	}
	return p.Packaging
}

// Identity returns the one-line identity summary in the form
// "packaging groupId:artifactId:version", with group and version falling
// back to the parent reference.
func (p *Project) Identity() string {
	return fmt.Sprintf("%s %s:%s:%s",
		p.EffectivePackaging(), p.EffectiveGroupID(), p.ArtifactID, p.EffectiveVersion())
}
