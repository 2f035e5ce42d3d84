package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexanderramin/epeat/internal/cli/formatter"
	"github.com/alexanderramin/epeat/internal/domain"
)

func newGuideCmd(app *App) *cobra.Command {
	return &cobra.Command{
		Use:   "guide",
		Short: "Explain the self-rating scale and documentation statuses",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Fprint(cmd.OutOrStdout(), guideText())
			return nil
		},
	}
}

func guideText() string {
	return formatter.FormatGuide(domain.RatingLevels()) + "\n\n" +
		formatter.Header("Documentation Status") + "\n" +
		formatter.FormatStatusGuide(domain.AllStatuses())
}
