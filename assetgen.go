// SPDX-License-Identifier: EPL-2.0

package assetgen

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/go-audio/audio"

	"github.com/clarity-layer/assetgen/formats/wav"
	"github.com/clarity-layer/assetgen/icon"
	"github.com/clarity-layer/assetgen/sounds"
	"github.com/clarity-layer/assetgen/synth"
)

// Output file names inside the icon directory.
const (
	IconBundleName = "clarity.ico"
	IconPNGName    = "clarity_256.png"
)

// GenerateIcons renders the application icon at every bundle size and
// writes the ICO container plus a standalone PNG of the largest
// resolution into dir, creating it if missing. Returns the written
// paths in write order.
func GenerateIcons(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	images := make([]*image.NRGBA, 0, len(icon.BundleSizes))
	for _, size := range icon.BundleSizes {
		img, err := icon.Render(size)
		if err != nil {
			return nil, fmt.Errorf("rendering %dx%d: %w", size, size, err)
		}
		images = append(images, img)
	}

	icoPath := filepath.Join(dir, IconBundleName)
	if err := writeICO(icoPath, images); err != nil {
		return nil, err
	}

	pngPath := filepath.Join(dir, IconPNGName)
	if err := writePNG(pngPath, images[len(images)-1]); err != nil {
		return nil, err
	}

	return []string{icoPath, pngPath}, nil
}

// GenerateSounds synthesizes the default feedback palette and writes
// one <name>.wav per effect into dir, creating it if missing. Returns
// the written paths in palette order.
func GenerateSounds(dir string) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating %s: %w", dir, err)
	}

	effects, err := sounds.Default()
	if err != nil {
		return nil, err
	}

	paths := make([]string, 0, len(effects))
	for _, effect := range effects {
		buf, err := sounds.Render(effect)
		if err != nil {
			return nil, fmt.Errorf("rendering %s: %w", effect.Name, err)
		}

		path := filepath.Join(dir, effect.Name+".wav")
		if err := writeWAV(path, buf); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}

func writeICO(path string, images []*image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := icon.EncodeICO(f, images); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writePNG(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}

func writeWAV(path string, buf *audio.FloatBuffer) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}

	if err := wav.WriteMono16(f, synth.SampleRate, buf); err != nil {
		f.Close()
		return fmt.Errorf("encoding %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing %s: %w", path, err)
	}
	return nil
}
