package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// FileCandidate describes a file the user offered before it is validated
type FileCandidate struct {
	Name       string
	Path       string
	SizeBytes  int64
	MimeType   string
	PreviewURI string
}

// UploadedFileDescriptor is the metadata of a file that passed validation.
// It never carries the file contents.
type UploadedFileDescriptor struct {
	Name       string `json:"name"`
	SizeBytes  int64  `json:"size_bytes"`
	MimeType   string `json:"mime_type"`
	PreviewURI string `json:"preview_uri,omitempty"`
}

// UploadConstraints bounds which files an upload widget accepts.
//
// Accept entries are extensions (".pdf"), MIME wildcards ("image/*") or exact
// MIME types ("application/pdf"). An empty Accept allows any type and a
// non-positive MaxSizeBytes disables the size check.
type UploadConstraints struct {
	Accept       []string
	MaxSizeBytes int64
}

// Validate checks size first, then type. On success it returns the
// descriptor for the candidate; on failure a *ValidationError.
func (u UploadConstraints) Validate(c FileCandidate) (UploadedFileDescriptor, error) {
	if c.SizeBytes < 0 {
		return UploadedFileDescriptor{}, &ValidationError{
			Reason:  ErrInvalidFile,
			Message: fmt.Sprintf("%s has an invalid size", c.Name),
		}
	}

	if u.MaxSizeBytes > 0 && c.SizeBytes > u.MaxSizeBytes {
		return UploadedFileDescriptor{}, &ValidationError{
			Reason: ErrFileTooLarge,
			Message: fmt.Sprintf("%s is %s, larger than the %s limit",
				c.Name, FormatSize(c.SizeBytes), FormatSize(u.MaxSizeBytes)),
		}
	}

	if !u.Accepts(c.Name, c.MimeType) {
		return UploadedFileDescriptor{}, &ValidationError{
			Reason: ErrUnsupportedType,
			Message: fmt.Sprintf("%s is not a supported file type (accepted: %s)",
				c.Name, strings.Join(u.Accept, ", ")),
		}
	}

	return UploadedFileDescriptor{
		Name:       c.Name,
		SizeBytes:  c.SizeBytes,
		MimeType:   c.MimeType,
		PreviewURI: c.PreviewURI,
	}, nil
}

// Accepts reports whether a file name or MIME type matches one of the accept patterns
func (u UploadConstraints) Accepts(name, mimeType string) bool {
	if len(u.Accept) == 0 {
		return true
	}

	ext := strings.ToLower(filepath.Ext(name))
	mimeType = strings.ToLower(mimeType)
	if i := strings.IndexByte(mimeType, ';'); i >= 0 {
		mimeType = strings.TrimSpace(mimeType[:i])
	}

	for _, pattern := range u.Accept {
		p := strings.ToLower(strings.TrimSpace(pattern))
		switch {
		case p == "":
			continue
		case strings.HasPrefix(p, "."):
			if ext == p {
				return true
			}
		case strings.HasSuffix(p, "/*"):
			if mimeType != "" && strings.HasPrefix(mimeType, strings.TrimSuffix(p, "*")) {
				return true
			}
		default:
			if mimeType == p {
				return true
			}
		}
	}
	return false
}

// FormatSize renders a byte count for display.
// Below 1024 it is whole bytes, below 1 MiB kilobytes, megabytes beyond that,
// both with one decimal place.
func FormatSize(size int64) string {
	const (
		KB = 1024
		MB = KB * 1024
	)

	switch {
	case size < KB:
		return fmt.Sprintf("%d B", size)
	case size < MB:
		return fmt.Sprintf("%.1f KB", float64(size)/float64(KB))
	default:
		return fmt.Sprintf("%.1f MB", float64(size)/float64(MB))
	}
}
