package attachment

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/riordanpawley/marquee/internal/domain"
)

// CopyText places text on the system clipboard
func (s *Service) CopyText(ctx context.Context, text string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.writeText(text); err != nil {
		return &domain.AttachmentError{Op: "clipboard", Err: err}
	}
	return nil
}

// ReadImageFromClipboard reads image bytes from the system clipboard.
// atotto/clipboard only handles text, so images go through the platform
// tools: pngpaste or osascript on macOS, wl-paste or xclip on Linux.
func ReadImageFromClipboard(ctx context.Context) ([]byte, error) {
	switch runtime.GOOS {
	case "darwin":
		return readClipboardMacOS(ctx)
	case "linux":
		return readClipboardLinux(ctx)
	default:
		return nil, fmt.Errorf("clipboard images not supported on %s", runtime.GOOS)
	}
}

func readClipboardMacOS(ctx context.Context) ([]byte, error) {
	if hasCommand("pngpaste") {
		output, err := exec.CommandContext(ctx, "pngpaste", "-").Output()
		if err == nil && len(output) > 0 {
			return output, nil
		}
	}

	tmp, err := os.CreateTemp("", "marquee-clipboard-*.png")
	if err != nil {
		return nil, err
	}
	tmpPath := tmp.Name()
	tmp.Close()
	defer os.Remove(tmpPath)

	script := fmt.Sprintf(`
		try
			set theImage to the clipboard as «class PNGf»
			set theFileRef to open for access POSIX file %q with write permission
			write theImage to theFileRef
			close access theFileRef
			return "ok"
		on error
			return ""
		end try
	`, tmpPath)

	output, err := exec.CommandContext(ctx, "osascript", "-e", script).Output()
	if err != nil {
		return nil, fmt.Errorf("osascript: %w", err)
	}
	if strings.TrimSpace(string(output)) == "" {
		return nil, ErrClipboardEmpty
	}
	return os.ReadFile(tmpPath)
}

func readClipboardLinux(ctx context.Context) ([]byte, error) {
	if hasCommand("wl-paste") {
		output, err := exec.CommandContext(ctx, "wl-paste", "--type", "image/png").Output()
		if err == nil && len(output) > 0 {
			return output, nil
		}
	}

	if hasCommand("xclip") {
		for _, mimeType := range []string{"image/png", "image/jpeg"} {
			output, err := exec.CommandContext(ctx, "xclip", "-selection", "clipboard", "-t", mimeType, "-o").Output()
			if err == nil && len(output) > 0 {
				return output, nil
			}
		}
	}

	return nil, fmt.Errorf("no clipboard image tool found (tried wl-paste, xclip)")
}

// hasCommand checks if a command is available in PATH
func hasCommand(name string) bool {
	_, err := exec.LookPath(name)
	return err == nil
}
