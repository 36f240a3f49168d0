package attachment

import (
	"mime"
	"path/filepath"
	"strings"

	"github.com/gabriel-vasile/mimetype"
)

const octetStream = "application/octet-stream"

// DetectMimeType reports the MIME type of the file at path, by extension
// first and by content otherwise. Parameters such as charset are dropped.
func DetectMimeType(path string) string {
	if byExt := mime.TypeByExtension(strings.ToLower(filepath.Ext(path))); byExt != "" {
		return stripParams(byExt)
	}

	m, err := mimetype.DetectFile(path)
	if err != nil {
		return octetStream
	}
	return stripParams(m.String())
}

// sniffMimeType reports the MIME type of raw content
func sniffMimeType(data []byte) string {
	return stripParams(mimetype.Detect(data).String())
}

func stripParams(mimeType string) string {
	base, _, _ := strings.Cut(mimeType, ";")
	return strings.TrimSpace(base)
}

// extensionFor returns the file extension for raw content, ".bin" when unknown
func extensionFor(data []byte) string {
	if ext := mimetype.Detect(data).Extension(); ext != "" {
		return ext
	}
	return ".bin"
}
