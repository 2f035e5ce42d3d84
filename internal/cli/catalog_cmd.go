package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epeat/internal/catalog"
	"github.com/alexanderramin/epeat/internal/cli/formatter"
)

var catalogNames = []string{"documentation", "self-rating", "tracker", "risks"}

func newCatalogCmd(app *App) *cobra.Command {
	var file string

	cmd := &cobra.Command{
		Use:       "catalog [" + strings.Join(catalogNames, "|") + "]",
		Short:     "Show checklist catalogs and their item keys",
		Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
		ValidArgs: catalogNames,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			if file != "" {
				return checkCatalogFile(out, file)
			}
			names := catalogNames
			if len(args) == 1 {
				names = args[:1]
			}
			for i, name := range names {
				if i > 0 {
					fmt.Fprintln(out)
				}
				fmt.Fprint(out, renderCatalog(app, name))
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&file, "file", "", "validate and show a catalog file instead")
	return cmd
}

func renderCatalog(app *App, name string) string {
	switch name {
	case "documentation":
		return formatter.FormatCatalog(app.Catalogs.Documentation)
	case "self-rating":
		return formatter.FormatCatalog(app.Catalogs.SelfRating)
	case "tracker":
		return formatter.FormatCatalog(app.Tracker)
	default:
		return formatter.FormatRisks(app.Catalogs.Risks)
	}
}

// checkCatalogFile reports every problem in a catalog file, or shows it.
func checkCatalogFile(w io.Writer, path string) error {
	f, err := catalog.Load(path)
	if err != nil {
		return err
	}
	if errs := catalog.Validate(f); len(errs) > 0 {
		for _, e := range errs {
			fmt.Fprintln(w, formatter.StyleRed.Render("✖ ")+e.Error())
		}
		return fmt.Errorf("%s: %d problem(s) found", path, len(errs))
	}
	if len(f.Sections) == 0 && len(f.Risks) == 0 {
		return errors.New(path + ": catalog has no sections or risks")
	}
	if len(f.Sections) > 0 {
		fmt.Fprint(w, formatter.FormatCatalog(f.Catalog()))
	}
	if len(f.Risks) > 0 {
		fmt.Fprint(w, formatter.FormatRisks(f.RiskList()))
	}
	return nil
}
