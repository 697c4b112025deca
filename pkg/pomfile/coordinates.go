// SPDX-License-Identifier: MPL-2.0

package pomfile

import (
	"fmt"
	"path/filepath"
	"strings"
)

// ApplyCoordinates applies a compact "groupId:artifactId[:version]" token to
// the descriptor. A single-segment token sets only the artifact id. A version
// segment is always applied verbatim; without one, an existing version is
// cleared whenever the descriptor declares a parent, so the version stays
// inherited rather than duplicated. An artifact id of "." resolves to the
// name of the directory containing pomPath.
//
// The function is a pure field transformation: it performs no I/O beyond
// resolving pomPath to an absolute path for the "." case.
func ApplyCoordinates(token string, proj *Project, pomPath string) error {
	if token == "" {
		return fmt.Errorf("%w: empty token", ErrInvalidCoordinates)
	}

	parts := strings.SplitN(token, ":", 3)

	if len(parts) >= 2 {
		proj.GroupID = parts[0]
		proj.ArtifactID = parts[1]
	} else {
		proj.ArtifactID = parts[0]
	}

	if len(parts) == 3 {
		proj.Version = parts[2]
	} else if proj.Parent != nil {
		// Version is inherited from the parent; never duplicate it.
		proj.Version = ""
	}

	if proj.ArtifactID == "." {
		abs, err := filepath.Abs(pomPath)
		if err != nil {
			return fmt.Errorf("%w: resolving %s: %w", ErrInvalidCoordinates, pomPath, err)
		}
		proj.ArtifactID = filepath.Base(filepath.Dir(abs))
	}

	return nil
}
