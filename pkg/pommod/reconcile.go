// SPDX-License-Identifier: MPL-2.0

package pommod

import (
	"path/filepath"
	"slices"

	"pomkit/pkg/fspath"
	"pomkit/pkg/pomfile"

	"github.com/charmbracelet/log"
)

// EnsureModule loads the parent descriptor at parentPath and guarantees its
// module list contains the identifier for childDir (the canonical directory
// of the child descriptor). The identifier is childDir relative to the
// parent's directory, slash-separated. Insertion preserves existing order
// and is idempotent: when the module is already listed, nothing is written.
// Returns whether the parent was persisted. Read and write failures are
// fatal for the whole operation and propagate to the caller.
func EnsureModule(parentPath, childDir string) (bool, error) {
	parent, err := pomfile.Load(parentPath)
	if err != nil {
		return false, err
	}

	moduleID, err := fspath.RelSlash(filepath.Dir(parentPath), childDir)
	if err != nil {
		return false, err
	}

	if slices.Contains(parent.Modules, moduleID) {
		log.Debug("module already registered in parent pom", "module", moduleID, "parent", parentPath)
		return false, nil
	}

	parent.Modules = append(parent.Modules, moduleID)
	if err := pomfile.Save(parent, parentPath); err != nil {
		return false, err
	}

	log.Info("registered module in parent pom", "module", moduleID, "parent", parentPath)
	return true, nil
}

// Register locates proj's parent descriptor and, when one exists on disk,
// ensures it lists the child at pomPath as a module. Parent reconciliation
// runs before the child descriptor is written, so a failure here leaves the
// child file untouched. Returns whether the parent was modified.
func Register(proj *pomfile.Project, pomPath string) (bool, error) {
	parentPath, found, err := LocateParent(proj, pomPath)
	if err != nil || !found {
		return false, err
	}

	childDir, err := fspath.CanonicalDir(pomPath)
	if err != nil {
		return false, err
	}

	return EnsureModule(parentPath, childDir)
}
