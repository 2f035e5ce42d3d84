package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/alexanderramin/epeat/internal/answers"
	"github.com/alexanderramin/epeat/internal/assessment"
	"github.com/alexanderramin/epeat/internal/cli/formatter"
	"github.com/alexanderramin/epeat/internal/contract"
)

const (
	formatText     = "text"
	formatJSON     = "json"
	formatMarkdown = "markdown"
)

func newScoreCmd(app *App) *cobra.Command {
	var format string
	var raw bool

	cmd := &cobra.Command{
		Use:   "score FILE",
		Short: "Score an answers file without the interactive UI",
		Long: "Score a YAML answers file. Keys are the item keys shown by 'epeat catalog':\n\n" +
			"  documentation: {environmentalMaterials-0: complete}\n" +
			"  ratings:       {materialContent-0: 3}\n" +
			"  risks:         [testingGaps]\n" +
			"  tracker:       {rohs: partial}",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			switch format {
			case formatText, formatJSON, formatMarkdown:
			default:
				return fmt.Errorf("unknown format %q (want text, json or markdown)", format)
			}

			report, err := scoreFile(cmd.Context(), app, args[0])
			if err != nil {
				return err
			}
			return writeReport(cmd.OutOrStdout(), app, report, format, raw)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatText, "output format: text, json or markdown")
	cmd.Flags().BoolVar(&raw, "raw", false, "print markdown source instead of rendering it")

	return cmd
}

// scoreFile replays an answers file through fresh sessions and derives
// the report. Rejected answers fail the whole run.
func scoreFile(ctx context.Context, app *App, path string) (contract.Report, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	f, err := answers.Load(path)
	if err != nil {
		return contract.Report{}, err
	}

	obs := app.observer()
	session := assessment.NewSession(app.Catalogs, assessment.WithObserver(obs))
	tracker := assessment.NewTrackerSession(app.Tracker, assessment.WithObserver(obs))

	if err := answers.Apply(ctx, f, session, tracker); err != nil {
		app.logger().Warn("answers rejected", zap.String("path", path), zap.Error(err))
		return contract.Report{}, fmt.Errorf("answers file %s: %w", path, err)
	}

	var report contract.Report
	if f.HasAssessment() || !f.HasTracker() {
		res := session.Result()
		report.Assessment = &res
		app.logger().Info("assessment scored",
			zap.String("session_id", res.SessionID),
			zap.String("decision", string(res.Decision)),
			zap.Float64("overall", res.Scores.Overall))
	}
	if f.HasTracker() {
		res := tracker.Result()
		report.Tracker = &res
		app.logger().Info("tracker scored",
			zap.String("session_id", res.SessionID),
			zap.Int("percent", res.Percent),
			zap.String("readiness", string(res.Readiness)))
	}
	return report, nil
}

func writeReport(w io.Writer, app *App, report contract.Report, format string, raw bool) error {
	switch format {
	case formatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case formatMarkdown:
		md := formatter.MarkdownReport(report)
		if raw || !app.interactive() {
			_, err := io.WriteString(w, md)
			return err
		}
		out, err := formatter.RenderMarkdown(md)
		if err != nil {
			return err
		}
		_, err = io.WriteString(w, out)
		return err
	default:
		_, err := io.WriteString(w, formatter.FormatReport(report))
		return err
	}
}
