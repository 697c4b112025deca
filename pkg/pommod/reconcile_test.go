// SPDX-License-Identifier: MPL-2.0

package pommod_test

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"pomkit/pkg/pomfile"
	"pomkit/pkg/pommod"
)

func TestEnsureModuleAddsEntry(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	parentPath := filepath.Join(base, "pom.xml")
	writePom(t, parentPath, &pomfile.Project{ArtifactID: "acme-parent", Modules: []string{"other"}})

	childDir := filepath.Join(base, "widget")
	if err := os.MkdirAll(childDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	written, err := pommod.EnsureModule(parentPath, childDir)
	if err != nil {
		t.Fatalf("EnsureModule() error = %v", err)
	}
	if !written {
		t.Error("EnsureModule() written = false, want true")
	}

	parent, err := pomfile.Load(parentPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	want := []string{"other", "widget"}
	if len(parent.Modules) != 2 || parent.Modules[0] != want[0] || parent.Modules[1] != want[1] {
		t.Errorf("Modules = %v, want %v", parent.Modules, want)
	}
}

func TestEnsureModuleIsIdempotent(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	parentPath := filepath.Join(base, "pom.xml")
	writePom(t, parentPath, &pomfile.Project{ArtifactID: "acme-parent"})

	childDir := filepath.Join(base, "widget")
	if err := os.MkdirAll(childDir, 0o755); err != nil {
		t.Fatalf("MkdirAll() error = %v", err)
	}

	if _, err := pommod.EnsureModule(parentPath, childDir); err != nil {
		t.Fatalf("first EnsureModule() error = %v", err)
	}
	first, err := os.ReadFile(parentPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}

	written, err := pommod.EnsureModule(parentPath, childDir)
	if err != nil {
		t.Fatalf("second EnsureModule() error = %v", err)
	}
	if written {
		t.Error("second EnsureModule() written = true, want no-op")
	}

	second, err := os.ReadFile(parentPath)
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if string(first) != string(second) {
		t.Error("second EnsureModule() changed the parent pom bytes")
	}

	parent, err := pomfile.Load(parentPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(parent.Modules) != 1 || parent.Modules[0] != "widget" {
		t.Errorf("Modules = %v, want exactly one widget entry", parent.Modules)
	}
}

func TestEnsureModuleUnreadableParentIsFatal(t *testing.T) {
	t.Parallel()

	base := t.TempDir()
	parentPath := filepath.Join(base, "pom.xml")
	if err := os.WriteFile(parentPath, []byte("<project><modules>"), 0o644); err != nil {
		t.Fatalf("WriteFile() error = %v", err)
	}

	_, err := pommod.EnsureModule(parentPath, filepath.Join(base, "widget"))
	if !errors.Is(err, pomfile.ErrRead) {
		t.Errorf("EnsureModule() error = %v, want errors.Is(err, ErrRead)", err)
	}
}

func TestRegisterThroughSymlinkedChildDir(t *testing.T) {
	t.Parallel()

	if runtime.GOOS == "windows" {
		t.Skip("symlink creation requires elevated privileges on Windows")
	}

	base := t.TempDir()
	parentPath := filepath.Join(base, "pom.xml")
	writePom(t, parentPath, &pomfile.Project{ArtifactID: "acme-parent"})

	childPath := filepath.Join(base, "widget", "pom.xml")
	proj := &pomfile.Project{
		ArtifactID: "widget",
		Parent:     &pomfile.Parent{RelativePath: ".."},
	}
	writePom(t, childPath, proj)

	link := filepath.Join(base, "link")
	if err := os.Symlink(filepath.Join(base, "widget"), link); err != nil {
		t.Fatalf("Symlink() error = %v", err)
	}

	// Addressing the child through the symlink must still produce the
	// canonical module identifier.
	written, err := pommod.Register(proj, filepath.Join(link, "pom.xml"))
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if !written {
		t.Fatal("Register() written = false, want true")
	}

	parent, err := pomfile.Load(parentPath)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if len(parent.Modules) != 1 || parent.Modules[0] != "widget" {
		t.Errorf("Modules = %v, want [widget]", parent.Modules)
	}
}

func TestRegisterWithoutParentIsNoOp(t *testing.T) {
	t.Parallel()

	childPath := filepath.Join(t.TempDir(), "pom.xml")
	proj := &pomfile.Project{ArtifactID: "widget"}
	writePom(t, childPath, proj)

	written, err := pommod.Register(proj, childPath)
	if err != nil {
		t.Fatalf("Register() error = %v", err)
	}
	if written {
		t.Error("Register() written = true without a parent reference")
	}
}
