package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/johnquangdev/meeting-notes/internal/domain/entities"
	"github.com/johnquangdev/meeting-notes/internal/usecase/editor"
	"github.com/johnquangdev/meeting-notes/pkg/client"
)

var _ editor.API = (*client.Client)(nil)

type processOptions struct {
	title      string
	template   string
	notes      string
	actions    bool
	exportFmt  string
	out        string
	save       bool
	share      bool
	outputJSON bool
}

// processResult is what `process --json` prints
type processResult struct {
	MeetingID  string                 `json:"meeting_id"`
	Transcript string                 `json:"transcript"`
	Sections   map[string]string      `json:"sections"`
	Notes      string                 `json:"notes"`
	Actions    []*entities.ActionItem `json:"actions"`
	ExportURL  string                 `json:"export_url,omitempty"`
	ShareLink  string                 `json:"share_link,omitempty"`
	ExpiresAt  string                 `json:"expires_at,omitempty"`
}

// newProcessCommand creates the process command.
func newProcessCommand() *cobra.Command {
	opts := &processOptions{}
	cmd := &cobra.Command{
		Use:   "process <audio>",
		Short: "Transcribe a recording and extract notes through the API",
		Long: `Runs the full pipeline against a running API:

  transcribe → template extraction → action items (--actions)
  → save (--save) → export (--export pdf|word) → share link (--share)

Sharing requires the meeting to be saved, so --share implies --save.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runProcess(cmd, args[0], opts)
		},
	}

	cmd.Flags().StringVar(&opts.title, "title", "", "Meeting title (default: file name)")
	cmd.Flags().StringVar(&opts.template, "template", string(entities.TemplateProfessional), "Template: professional, academic, study-group")
	cmd.Flags().StringVar(&opts.notes, "notes", "", "Your own notes to include")
	cmd.Flags().BoolVar(&opts.actions, "actions", false, "Extract action items")
	cmd.Flags().StringVar(&opts.exportFmt, "export", "", "Export format: pdf or word")
	cmd.Flags().StringVar(&opts.out, "out", "", "Write the exported document to this path")
	cmd.Flags().BoolVar(&opts.save, "save", false, "Save the meeting")
	cmd.Flags().BoolVar(&opts.share, "share", false, "Create a share link")
	cmd.Flags().BoolVar(&opts.outputJSON, "json", false, "Print the result as JSON")
	return cmd
}

func runProcess(cmd *cobra.Command, audioPath string, opts *processOptions) error {
	ctx, cancel := withTimeout(cmd)
	defer cancel()

	f, err := os.Open(audioPath)
	if err != nil {
		return fmt.Errorf("failed to open audio: %w", err)
	}
	defer f.Close()

	api := newClient()
	ed := editor.New(api, logger)
	status := cmd.ErrOrStderr()

	m := entities.NewMeeting("")
	m.Title = opts.title
	if m.Title == "" {
		m.Title = strings.TrimSuffix(filepath.Base(audioPath), filepath.Ext(audioPath))
	}
	m.TemplateType = entities.NormalizeTemplateType(opts.template)
	s := editor.SetCurrentMeeting(editor.State{}, m)

	if err := api.WaitHealthy(ctx, 30*time.Second); err != nil {
		return fmt.Errorf("API at %s is not reachable: %w", serverURL, err)
	}

	fmt.Fprintln(status, "🎙️  Transcribing...")
	s, err = ed.Transcribe(ctx, s, f, filepath.Base(audioPath))
	if err != nil {
		return err
	}

	fmt.Fprintln(status, "🧩 Extracting template details...")
	sections, err := ed.ExtractTemplate(ctx, s, entities.TemplateFor(m.TemplateType).EmptySections())
	if err != nil {
		return err
	}

	if opts.actions {
		fmt.Fprintln(status, "✅ Extracting action items...")
		s, err = ed.ExtractActions(ctx, s)
		if err != nil {
			return err
		}
	}

	notes := editor.FormattedNotes(opts.notes, entities.TemplateFor(s.Meeting.TemplateType), sections)
	res := processResult{
		MeetingID:  s.Meeting.ID.String(),
		Transcript: s.Meeting.Transcript,
		Sections:   sections,
		Notes:      notes,
		Actions:    s.Actions,
	}

	if opts.save || opts.share {
		fmt.Fprintln(status, "💾 Saving meeting...")
		s, err = ed.Save(ctx, s, editor.SaveOptions{
			UserNotes:      opts.notes,
			Sections:       sections,
			KeepTranscript: true,
			KeepNotes:      true,
			SaveActions:    opts.actions,
		})
		if err != nil {
			return err
		}
	}

	if opts.exportFmt != "" {
		if err := exportTo(ctx, status, ed, s, opts, notes, &res); err != nil {
			return err
		}
	}

	if opts.share {
		link, err := ed.Share(ctx, s)
		if err != nil {
			return err
		}
		res.ShareLink = link.ShareLink
		res.ExpiresAt = link.ExpiresAt
	}

	logger.Debug("process.done", zap.String("meeting_id", res.MeetingID), zap.Int("actions", len(res.Actions)))
	return printResult(cmd, res, opts.outputJSON)
}

func exportTo(ctx context.Context, status io.Writer, ed *editor.Editor, s editor.State, opts *processOptions, notes string, res *processResult) error {
	fmt.Fprintf(status, "📄 Exporting %s...\n", opts.exportFmt)
	if opts.out == "" {
		exp, err := ed.Export(ctx, s, opts.exportFmt, notes, nil)
		if err != nil {
			return err
		}
		res.ExportURL = exp.URL
		return nil
	}

	out, err := os.Create(opts.out)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", opts.out, err)
	}
	exp, err := ed.Export(ctx, s, opts.exportFmt, notes, out)
	if cerr := out.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}
	res.ExportURL = exp.URL
	return nil
}

func printResult(cmd *cobra.Command, res processResult, asJSON bool) error {
	w := cmd.OutOrStdout()
	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(res)
	}

	fmt.Fprintf(w, "Meeting: %s\n\n", res.MeetingID)
	if res.Notes != "" {
		fmt.Fprintf(w, "%s\n\n", res.Notes)
	}
	if len(res.Actions) > 0 {
		fmt.Fprintln(w, "ACTION ITEMS:")
		for i, a := range res.Actions {
			fmt.Fprintf(w, "%d. %s (Assignee: %s, Due: %s)\n", i+1, a.ActionText, a.Assignee, a.DueDateOrDefault())
		}
		fmt.Fprintln(w)
	}
	if res.ExportURL != "" {
		fmt.Fprintf(w, "Export: %s\n", res.ExportURL)
	}
	if res.ShareLink != "" {
		fmt.Fprintf(w, "Share link (expires %s): %s\n", res.ExpiresAt, res.ShareLink)
	}
	return nil
}

func withTimeout(cmd *cobra.Command) (context.Context, context.CancelFunc) {
	return context.WithTimeout(cmd.Context(), timeout)
}
