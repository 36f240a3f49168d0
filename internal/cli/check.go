package cli

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/riordanpawley/marquee/internal/domain"
	"github.com/riordanpawley/marquee/internal/logging"
)

const checkTimeout = 5 * time.Second

var (
	colorPass  = color.New(color.FgGreen, color.Bold)
	colorFail  = color.New(color.FgRed, color.Bold)
	colorMuted = color.New(color.FgWhite, color.Faint)
)

func (a *App) checkCmd() *cobra.Command {
	var (
		accept  []string
		maxSize int64
	)

	cmd := &cobra.Command{
		Use:   "check FILE...",
		Short: "Check files against the upload rules",
		Long: `Check whether files would be accepted by the upload dialog.

Each file is inspected the same way the client does it: size first,
then type. The command fails if any file is rejected.`,
		Example: `  marquee check contract.pdf venue.png
  marquee check --accept .pdf --max-size 1048576 quote.pdf`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			constraints := cfg.UploadConstraints()
			if cmd.Flags().Changed("accept") {
				constraints.Accept = accept
			}
			if cmd.Flags().Changed("max-size") {
				constraints.MaxSizeBytes = maxSize
			}

			svc := a.attachmentsFn(cfg, logging.Discard())
			out := cmd.OutOrStdout()

			rejected := 0
			for _, path := range args {
				ctx, cancel := context.WithTimeout(cmd.Context(), checkTimeout)
				candidate, err := svc.Inspect(ctx, path)
				cancel()

				var d domain.UploadedFileDescriptor
				if err == nil {
					d, err = constraints.Validate(candidate)
				}
				if err != nil {
					rejected++
					fmt.Fprintf(out, "%s %s  %s\n", colorFail.Sprint("FAIL"), path, colorMuted.Sprint(reason(err)))
					continue
				}
				fmt.Fprintf(out, "%s %s  %s\n", colorPass.Sprint("PASS"), path,
					colorMuted.Sprintf("%s, %s", domain.FormatSize(d.SizeBytes), d.MimeType))
			}

			if rejected > 0 {
				return fmt.Errorf("%d of %d files rejected", rejected, len(args))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&accept, "accept", nil, "Accepted extensions or MIME types (overrides the config)")
	cmd.Flags().Int64Var(&maxSize, "max-size", 0, "Maximum size in bytes, 0 for unlimited (overrides the config)")

	return cmd
}

// reason turns an inspection or validation error into the text the upload
// dialog would show
func reason(err error) string {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		return verr.Error()
	case errors.Is(err, domain.ErrNotFound):
		return "File not found."
	case errors.Is(err, domain.ErrInvalidFile):
		return "Not a regular file."
	}
	return err.Error()
}
