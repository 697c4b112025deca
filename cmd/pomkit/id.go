// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"errors"
	"fmt"

	"pomkit/internal/config"
	"pomkit/internal/issue"
	"pomkit/pkg/pomfile"
	"pomkit/pkg/pommod"

	"github.com/charmbracelet/log"
	packageurl "github.com/package-url/packageurl-go"
	"github.com/spf13/cobra"
)

var (
	idPackaging  string
	idFile       string
	idStandalone bool
	idAddModule  bool
	idPurl       bool

	// idCmd sets or reports the project id.
	idCmd = &cobra.Command{
		Use:   "id [groupId:artifactId[:version]]",
		Short: "Set or show the project id",
		Long: `Set or show the project id.

Without an argument, prints the current identity as
"packaging groupId:artifactId:version", with groupId and version falling
back to the parent reference when the pom omits them.

With a "groupId:artifactId[:version]" argument, the pom is created or
updated: a single segment sets only the artifact id, and "." as artifact id
resolves to the name of the pom's directory. When the pom declares a parent
and no version segment is given, the version is left to be inherited.
Unless --standalone is set, the parent pom is located via the declared
relativePath and this project is registered in its module list.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runID,
	}
)

func init() {
	idCmd.Flags().StringVar(&idPackaging, "as", "", "override the packaging (e.g. jar, war, pom)")
	idCmd.Flags().StringVarP(&idFile, "file", "f", "", "pom file to read or write (default pom.xml)")
	idCmd.Flags().BoolVarP(&idStandalone, "standalone", "s", false, "don't search for a parent pom")
	idCmd.Flags().BoolVarP(&idAddModule, "add-module", "m", true, "ensure the module is added to the parent pom")
	idCmd.Flags().BoolVar(&idPurl, "purl", false, "print the identity as a package URL")
}

func runID(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		// Config problems were already warned about during init; fall back
		// to defaults so the command itself still works.
		cfg = config.DefaultConfig()
	}

	pomPath := idFile
	if pomPath == "" {
		pomPath = cfg.PomFileName
	}

	if len(args) > 0 {
		if err := updatePom(args[0], pomPath, cfg); err != nil {
			return explain(cmd, err)
		}
	} else if !pomfile.Exists(pomPath) {
		fmt.Fprintln(cmd.OutOrStdout(), ErrorStyle.Render("No such file:")+" "+pomPath)
		renderIssue(cmd, issue.PomNotFoundId)
		return &ExitError{Code: 1}
	}

	summary, err := readProjectID(pomPath)
	if err != nil {
		return explain(cmd, err)
	}
	fmt.Fprintln(cmd.OutOrStdout(), summary)

	return nil
}

// updatePom loads or scaffolds the descriptor at pomPath, applies the
// coordinate token and packaging override, reconciles the parent pom's module
// list, and finally persists the descriptor. The parent is written before the
// child: a parent write failure leaves the child file untouched.
func updatePom(token, pomPath string, cfg *config.Config) error {
	var proj *pomfile.Project
	if pomfile.Exists(pomPath) {
		log.Debug("reading existing pom", "path", pomPath)
		loaded, err := pomfile.Load(pomPath)
		if err != nil {
			return issue.NewErrorContext().
				WithOperation("load pom").
				WithResource(pomPath).
				WithSuggestion("Check that the file contains valid XML").
				Wrap(err).
				BuildError()
		}
		proj = loaded
	} else {
		log.Debug("creating new pom", "path", pomPath)
		proj = pomfile.NewProject(pomPath, pomfile.CreateOptions{
			Packaging:  cfg.DefaultPackaging,
			Standalone: idStandalone,
		})
	}

	if err := pomfile.ApplyCoordinates(token, proj, pomPath); err != nil {
		return err
	}

	if idPackaging != "" {
		proj.Packaging = idPackaging
	}

	if idAddModule {
		if idStandalone {
			log.Info("standalone pom, skipping parent search", "path", pomPath)
		} else {
			if _, err := pommod.Register(proj, pomPath); err != nil {
				return issue.NewErrorContext().
					WithOperation("register module in parent pom").
					WithResource(pomPath).
					WithSuggestion("Check permissions and XML validity of the parent pom").
					Wrap(err).
					BuildError()
			}
		}
	}

	if err := pomfile.Save(proj, pomPath); err != nil {
		return issue.WrapWithContext(err, "write pom", pomPath)
	}

	return nil
}

// readProjectID loads the descriptor at pomPath and formats its identity,
// either as the conventional one-line summary or as a package URL.
func readProjectID(pomPath string) (string, error) {
	proj, err := pomfile.Load(pomPath)
	if err != nil {
		return "", issue.NewErrorContext().
			WithOperation("load pom").
			WithResource(pomPath).
			WithSuggestion("Check that the file contains valid XML").
			Wrap(err).
			BuildError()
	}

	if idPurl {
		purl := packageurl.NewPackageURL(
			packageurl.TypeMaven,
			proj.EffectiveGroupID(),
			proj.ArtifactID,
			proj.EffectiveVersion(),
			nil,
			"",
		)
		return purl.ToString(), nil
	}

	return proj.Identity(), nil
}

// explain optionally prints the rendered issue text for err (verbose mode
// only), then passes the error through.
func explain(cmd *cobra.Command, err error) error {
	if id, ok := issueFor(err); ok {
		renderIssue(cmd, id)
	}
	return err
}

// renderIssue prints the catalog entry for id to stderr in verbose mode.
func renderIssue(cmd *cobra.Command, id issue.Id) {
	if !verbose {
		return
	}
	if text, err := issue.Get(id).Render("dark"); err == nil {
		fmt.Fprintln(cmd.ErrOrStderr(), text)
	}
}

// issueFor maps an error to its catalog entry, preferring the operation
// recorded in an ActionableError over the raw sentinel.
func issueFor(err error) (issue.Id, bool) {
	var ae *issue.ActionableError
	if errors.As(err, &ae) && ae.Operation == "register module in parent pom" {
		return issue.ParentWriteFailedId, true
	}
	switch {
	case errors.Is(err, pomfile.ErrRead):
		return issue.PomParseErrorId, true
	case errors.Is(err, pomfile.ErrWrite):
		return issue.ParentWriteFailedId, true
	}
	return 0, false
}
