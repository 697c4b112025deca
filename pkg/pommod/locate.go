// SPDX-License-Identifier: MPL-2.0

package pommod

import (
	"path/filepath"
	"strings"

	"pomkit/pkg/fspath"
	"pomkit/pkg/pomfile"

	"github.com/charmbracelet/log"
)

// LocateParent resolves the file system path of the parent descriptor that
// proj declares, relative to the descriptor file at pomPath. A relative path
// that does not name an .xml file is treated as a directory containing a
// pom.xml. The lookup is soft: a missing parent reference, missing
// relativePath, or absent file on disk all yield found == false without an
// error. Resolution happens against the canonical directory of pomPath so
// that `.`/`..` segments and symlinks cannot skew the result.
func LocateParent(proj *pomfile.Project, pomPath string) (path string, found bool, err error) {
	if proj.Parent == nil || proj.Parent.RelativePath == "" {
		return "", false, nil
	}

	rel := proj.Parent.RelativePath
	if !strings.HasSuffix(rel, ".xml") {
		rel += "/" + pomfile.DefaultFileName
	}
	log.Debug("searching for parent pom", "relativePath", rel)

	dir, err := fspath.CanonicalDir(pomPath)
	if err != nil {
		return "", false, err
	}

	candidate := filepath.Clean(filepath.Join(dir, filepath.FromSlash(rel)))
	if !pomfile.Exists(candidate) {
		log.Debug("no parent pom on disk, skipping registration", "path", candidate)
		return "", false, nil
	}

	log.Debug("parent pom found", "path", candidate)
	return candidate, true, nil
}
