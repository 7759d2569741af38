package audiosummary

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/kailas-cloud/aiconsole/internal/domain"
)

// SupportedFormats lists the accepted audio extensions.
var SupportedFormats = []string{".wav", ".mp3"}

// ValidateAudioFile checks that path exists, is a regular file and has a
// supported extension (case-insensitive).
func ValidateAudioFile(path string) error {
	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return fmt.Errorf("%w: %s", domain.ErrAudioNotFound, path)
	}

	ext := strings.ToLower(filepath.Ext(path))
	if !slices.Contains(SupportedFormats, ext) {
		return fmt.Errorf("%w %q: supported formats: %s",
			domain.ErrUnsupportedAudioFormat, filepath.Ext(path), strings.Join(SupportedFormats, ", "))
	}
	return nil
}
