package avatar

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGravatarURL(t *testing.T) {
	// md5("user@example.com") = b58996c504c5638798eb6b511e6f49af
	url := GravatarURL("user@example.com")
	assert.Equal(t, "http://www.gravatar.com/avatar/b58996c504c5638798eb6b511e6f49af", url)

	t.Run("NormalizesCaseAndWhitespace", func(t *testing.T) {
		assert.Equal(t, url, GravatarURL("  User@Example.COM  "))
	})
}

func testImage(t *testing.T, width, height int) *bytes.Buffer {
	t.Helper()

	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for x := 0; x < width; x++ {
		for y := 0; y < height; y++ {
			img.Set(x, y, color.RGBA{R: uint8(x % 256), G: uint8(y % 256), A: 255})
		}
	}

	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, img))
	return &buf
}

func TestProcessorSave(t *testing.T) {
	dir := t.TempDir()
	p, err := NewProcessor(dir, "/avatars")
	require.NoError(t, err)

	t.Run("ResizesToSquare", func(t *testing.T) {
		url, err := p.Save("abc123", "photo.png", testImage(t, 600, 400))
		require.NoError(t, err)
		assert.Equal(t, "/avatars/abc123.png", url)

		stored, err := imaging.Open(filepath.Join(dir, "abc123.png"))
		require.NoError(t, err)
		bounds := stored.Bounds()
		assert.Equal(t, 250, bounds.Dx())
		assert.Equal(t, 250, bounds.Dy())
	})

	t.Run("UnknownExtensionFallsBackToJpg", func(t *testing.T) {
		url, err := p.Save("def456", "photo.webp", testImage(t, 300, 300))
		require.NoError(t, err)
		assert.Equal(t, "/avatars/def456.jpg", url)

		_, err = os.Stat(filepath.Join(dir, "def456.jpg"))
		assert.NoError(t, err)
	})

	t.Run("InvalidImage", func(t *testing.T) {
		_, err := p.Save("bad", "junk.png", bytes.NewReader([]byte("not an image")))
		assert.Error(t, err)
	})
}

func TestNewProcessorCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "avatars")
	_, err := NewProcessor(dir, "/avatars")
	require.NoError(t, err)
	assert.DirExists(t, dir)
}
