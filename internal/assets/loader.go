// Package assets loads the per-game images and sounds embedded in the
// binary. Every failure degrades to a placeholder or a silent no-op and is
// logged; nothing here is fatal to gameplay.
package assets

import (
	"embed"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"io/fs"
	"path"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/wav"
)

// Asset categories under <game>/assets/.
const (
	CategoryImages = "images"
	CategorySounds = "sounds"
)

// PlaceholderSize is the edge length of the image substituted for a
// missing or undecodable one.
const PlaceholderSize = 50

// PlaceholderColor marks missing textures.
var PlaceholderColor = color.RGBA{R: 255, G: 0, B: 255, A: 255}

//go:embed data
var embedded embed.FS

// Embedded returns the assets compiled into the binary, rooted so that
// paths start with the game directory.
func Embedded() fs.FS {
	sub, err := fs.Sub(embedded, "data")
	if err != nil {
		panic(fmt.Sprintf("assets: embedded data missing: %v", err))
	}
	return sub
}

// Path returns the conventional location of an asset.
func Path(game, category, file string) string {
	return path.Join(game, "assets", category, file)
}

// Image is a decoded image. Placeholder is set when the real asset could
// not be loaded and a magenta square stands in for it.
type Image struct {
	image.Image
	Placeholder bool
}

// Sound is a fully decoded sound effect held in memory.
type Sound struct {
	Name   string
	buffer *beep.Buffer
}

// Format returns the sample format of the decoded data.
func (s *Sound) Format() beep.Format {
	return s.buffer.Format()
}

// Len returns the number of samples.
func (s *Sound) Len() int {
	return s.buffer.Len()
}

// Streamer returns a fresh streamer over the whole sound.
func (s *Sound) Streamer() beep.StreamSeeker {
	return s.buffer.Streamer(0, s.buffer.Len())
}

// Loader reads assets from a file system.
type Loader struct {
	fsys   fs.FS
	logger *log.Logger
}

// NewLoader creates a loader over fsys. A nil logger discards warnings.
func NewLoader(fsys fs.FS, logger *log.Logger) *Loader {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Loader{fsys: fsys, logger: logger}
}

// Image loads <game>/assets/images/<file>. On failure it logs a warning
// and returns a placeholder.
func (l *Loader) Image(game, file string) Image {
	p := Path(game, CategoryImages, file)
	img, err := l.decodeImage(p)
	if err != nil {
		l.logger.Warn("image unavailable, using placeholder", "path", p, "error", err)
		return Image{Image: Placeholder(), Placeholder: true}
	}
	return Image{Image: img}
}

func (l *Loader) decodeImage(p string) (image.Image, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", p, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	return img, nil
}

// Sound loads <game>/assets/sounds/<file> into memory. On failure it logs a
// warning and returns nil, which plays as silence.
func (l *Loader) Sound(game, file string) *Sound {
	p := Path(game, CategorySounds, file)
	snd, err := l.decodeSound(p)
	if err != nil {
		l.logger.Warn("sound unavailable", "path", p, "error", err)
		return nil
	}
	return snd
}

func (l *Loader) decodeSound(p string) (*Sound, error) {
	f, err := l.fsys.Open(p)
	if err != nil {
		return nil, fmt.Errorf("assets: open %s: %w", p, err)
	}
	defer f.Close()

	streamer, format, err := wav.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("assets: decode %s: %w", p, err)
	}
	defer streamer.Close()

	buf := beep.NewBuffer(format)
	buf.Append(streamer)
	if err := streamer.Err(); err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", p, err)
	}
	return &Sound{Name: path.Base(p), buffer: buf}, nil
}

// Placeholder returns the magenta square used for missing images.
func Placeholder() image.Image {
	img := image.NewRGBA(image.Rect(0, 0, PlaceholderSize, PlaceholderSize))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: PlaceholderColor}, image.Point{}, draw.Src)
	return img
}
