// Package attachment inspects local files offered to the upload widget.
// Nothing is uploaded; the service only reports what a path holds.
package attachment

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/riordanpawley/marquee/internal/domain"
)

// ErrClipboardEmpty is returned when the clipboard holds neither a path nor an image
var ErrClipboardEmpty = errors.New("clipboard is empty or does not contain a file")

// Service inspects files on the local filesystem
type Service struct {
	scratchDir string
	logger     *slog.Logger

	readText  func() (string, error)
	writeText func(string) error
	readImage func(ctx context.Context) ([]byte, error)
}

// NewService creates a new attachment service. Clipboard images are
// written under scratchDir so they can be inspected like any other file.
func NewService(scratchDir string, logger *slog.Logger) *Service {
	return &Service{
		scratchDir: scratchDir,
		logger:     logger,
		readText:   clipboard.ReadAll,
		writeText:  clipboard.WriteAll,
		readImage:  ReadImageFromClipboard,
	}
}

// Inspect stats path and reports it as an upload candidate
func (s *Service) Inspect(ctx context.Context, path string) (domain.FileCandidate, error) {
	if err := ctx.Err(); err != nil {
		return domain.FileCandidate{}, err
	}

	path = CleanPath(path)
	if path == "" {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "inspect", Err: domain.ErrInvalidFile}
	}
	s.logger.Debug("inspecting file", "path", path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "inspect", Path: path, Err: err}
	}

	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "inspect", Path: abs, Err: domain.ErrNotFound}
	}
	if err != nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "inspect", Path: abs, Err: err}
	}
	if info.IsDir() {
		return domain.FileCandidate{}, &domain.AttachmentError{
			Op:   "inspect",
			Path: abs,
			Err:  fmt.Errorf("is a directory: %w", domain.ErrInvalidFile),
		}
	}

	mimeType := DetectMimeType(abs)
	return domain.FileCandidate{
		Name:       filepath.Base(abs),
		Path:       abs,
		SizeBytes:  info.Size(),
		MimeType:   mimeType,
		PreviewURI: PreviewURI(abs, mimeType),
	}, nil
}

// ClipboardPath reads a file path from the clipboard text
func (s *Service) ClipboardPath(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	text, err := s.readText()
	if err != nil {
		return "", &domain.AttachmentError{Op: "clipboard", Err: err}
	}

	first, _, _ := strings.Cut(strings.TrimSpace(text), "\n")
	path := CleanPath(first)
	if path == "" {
		return "", &domain.AttachmentError{Op: "clipboard", Err: ErrClipboardEmpty}
	}
	return path, nil
}

// FromClipboard inspects the file the clipboard refers to. A copied path
// wins; otherwise a copied image is saved to the scratch directory.
func (s *Service) FromClipboard(ctx context.Context) (domain.FileCandidate, error) {
	if path, err := s.ClipboardPath(ctx); err == nil {
		if _, statErr := os.Stat(path); statErr == nil {
			return s.Inspect(ctx, path)
		}
	}

	data, err := s.readImage(ctx)
	if err != nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "clipboard", Err: err}
	}
	if len(data) == 0 {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "clipboard", Err: ErrClipboardEmpty}
	}

	if err := os.MkdirAll(s.scratchDir, 0o755); err != nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "clipboard", Path: s.scratchDir, Err: err}
	}

	name := fmt.Sprintf("clipboard-%s%s", time.Now().Format("20060102-150405"), extensionFor(data))
	dest := filepath.Join(s.scratchDir, name)
	if err := os.WriteFile(dest, data, 0o644); err != nil {
		return domain.FileCandidate{}, &domain.AttachmentError{Op: "clipboard", Path: dest, Err: err}
	}

	s.logger.Debug("saved clipboard image", "path", dest, "bytes", len(data))
	return s.Inspect(ctx, dest)
}

// CleanPath normalizes a path as terminals paste it: surrounding quotes,
// file:// URIs, backslash-escaped spaces and a leading ~.
func CleanPath(raw string) string {
	p := strings.TrimSpace(raw)
	if len(p) >= 2 && (p[0] == '\'' || p[0] == '"') && p[len(p)-1] == p[0] {
		p = p[1 : len(p)-1]
	}

	if strings.HasPrefix(p, "file://") {
		if u, err := url.Parse(p); err == nil {
			p = u.Path
		}
	} else {
		p = strings.ReplaceAll(p, `\ `, " ")
	}

	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			p = filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}

// PreviewURI returns a file:// URI for images and "" for everything else
func PreviewURI(path, mimeType string) string {
	if !strings.HasPrefix(mimeType, "image/") {
		return ""
	}
	u := url.URL{Scheme: "file", Path: filepath.ToSlash(path)}
	return u.String()
}
