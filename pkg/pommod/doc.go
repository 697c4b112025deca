// SPDX-License-Identifier: MPL-2.0

// Package pommod keeps a parent/child descriptor hierarchy consistent: it
// resolves a child's declared parent descriptor on disk and guarantees the
// parent's module list references the child's directory.
package pommod
