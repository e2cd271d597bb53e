// Package avatar provides avatar image handling: a gravatar URL for new
// accounts and local processing of uploaded avatar images.
package avatar

import (
	"crypto/md5"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/disintegration/imaging"
)

// avatarSize is the edge length avatars are normalized to.
const avatarSize = 250

// GravatarURL returns the gravatar URL for an email address.
func GravatarURL(email string) string {
	normalized := strings.ToLower(strings.TrimSpace(email))
	return fmt.Sprintf("http://www.gravatar.com/avatar/%x", md5.Sum([]byte(normalized)))
}

// Processor normalizes uploaded avatar images and stores them on disk.
type Processor struct {
	dir        string // filesystem directory avatars are written to
	publicPath string // URL path prefix the directory is served under
}

// NewProcessor creates a Processor writing into dir, served under publicPath.
// The directory is created if it does not exist.
func NewProcessor(dir, publicPath string) (*Processor, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create avatar directory: %w", err)
	}
	return &Processor{dir: dir, publicPath: publicPath}, nil
}

// Save decodes the uploaded image, crops and resizes it to a square avatar,
// and writes it as <ownerID><ext>. It returns the public URL path of the
// stored avatar. The extension is taken from the original filename, falling
// back to .jpg.
func (p *Processor) Save(ownerID, originalName string, r io.Reader) (string, error) {
	img, err := imaging.Decode(r)
	if err != nil {
		return "", fmt.Errorf("failed to decode avatar image: %w", err)
	}

	img = imaging.Fill(img, avatarSize, avatarSize, imaging.Center, imaging.Lanczos)

	ext := strings.ToLower(filepath.Ext(originalName))
	switch ext {
	case ".jpg", ".jpeg", ".png", ".gif":
	default:
		ext = ".jpg"
	}

	filename := ownerID + ext
	if err := imaging.Save(img, filepath.Join(p.dir, filename)); err != nil {
		return "", fmt.Errorf("failed to save avatar image: %w", err)
	}

	return path.Join(p.publicPath, filename), nil
}
