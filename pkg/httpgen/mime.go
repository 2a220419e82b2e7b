package httpgen

import (
	"fmt"
	mathrand "math/rand/v2"
	"slices"
	"strings"

	"github.com/getmockd/httpfixture/pkg/gen"
)

// MimeCategory is the major type of a MIME type table.
type MimeCategory int

// MIME categories with a curated table.
const (
	Application MimeCategory = iota
	Audio
	Image
	Multipart
	Text
	Video
)

var mimeCategoryNames = [...]string{"application", "audio", "image", "multipart", "text", "video"}

// MimeCategories lists every category in table order.
func MimeCategories() []MimeCategory {
	return []MimeCategory{Application, Audio, Image, Multipart, Text, Video}
}

func (c MimeCategory) String() string {
	if c < 0 || int(c) >= len(mimeCategoryNames) {
		return fmt.Sprintf("MimeCategory(%d)", int(c))
	}
	return mimeCategoryNames[c]
}

// ParseMimeCategory parses a category name such as "image". Matching is case
// insensitive.
func ParseMimeCategory(s string) (MimeCategory, error) {
	for i, name := range mimeCategoryNames {
		if strings.EqualFold(s, name) {
			return MimeCategory(i), nil
		}
	}
	return 0, fmt.Errorf("unknown MIME category %q: %w", s, gen.ErrInvalidArgument)
}

// =============================================================================
// MIME type tables
// =============================================================================

var mimeTables = [...][]string{
	Application: {
		"application/msword",                   // .doc
		"application/octet-stream",             // .bin, .exe
		"application/pdf",                      // .pdf
		"application/postscript",               // .ps, .ai, .eps
		"application/rtf",                      // .rtf
		"application/x-gtar",                   // .gtar
		"application/x-gzip",                   // .gz
		"application/x-java-archive",           // .jar
		"application/x-java-serialized-object", // .ser
		"application/x-java-vm",                // .class
		"application/x-tar",                    // .tar
		"application/zip",                      // .zip
	},
	Audio: {
		"audio/x-aiff", // .aiff
		"audio/basic",  // .ua
		"audio/x-midi", // .mid, .midi
		"audio/x-wav",  // .wav
	},
	Image: {
		"image/bmp",       // .bmp
		"image/gif",       // .gif
		"image/jpeg",      // .jpeg, .jpg, .jpe
		"image/tiff",      // .tiff, .tif
		"image/x-xbitmap", // .xbm
	},
	Multipart: {
		"multipart/x-gzip", // .gzip
		"multipart/x-zip",  // .zip
	},
	Text: {
		"text/html",     // .htm, .html
		"text/plain",    // .txt
		"text/richtext", // .rtf, .rtx
	},
	Video: {
		"video/mpeg",      // .mpg, .mpeg, .mpe
		"video/vnd.vivo",  // .viv, .vivo
		"video/quicktime", // .qt, .mov
		"video/x-msvideo", // .avi
	},
}

// MimeTypeValues returns a copy of the curated table for c, or nil for an
// unknown category.
func MimeTypeValues(c MimeCategory) []string {
	if c < 0 || int(c) >= len(mimeTables) {
		return nil
	}
	return slices.Clone(mimeTables[c])
}

// AllMimeTypeValues returns the union of every category table, in category
// order.
func AllMimeTypeValues() []string {
	var all []string
	for _, table := range mimeTables {
		all = append(all, table...)
	}
	return all
}

// =============================================================================
// Generators
// =============================================================================

// MimeTypes generates "major/minor" MIME type strings.
type MimeTypes struct {
	g gen.Generator[string]
}

// Next returns the next MIME type.
func (m *MimeTypes) Next() (string, error) {
	return m.g.Next()
}

// AllMimeTypes mixes every curated MIME type with random, syntactically
// shaped ones. Each curated type appears within the first few draws; the
// random generator fills the rest.
func AllMimeTypes(opts ...Option) *MimeTypes {
	o := applyOptions(opts)
	return &MimeTypes{
		g: must(gen.EnsureValues(o.rand, AllMimeTypeValues(), randomMimeTypes(o.rand))),
	}
}

// MimeTypesOf samples only from the curated table of c.
func MimeTypesOf(c MimeCategory, opts ...Option) (*MimeTypes, error) {
	values := MimeTypeValues(c)
	if values == nil {
		return nil, fmt.Errorf("mime types: unknown category %d: %w", int(c), gen.ErrInvalidArgument)
	}
	o := applyOptions(opts)
	g, err := gen.FixedValues(o.rand, values)
	if err != nil {
		return nil, err
	}
	return &MimeTypes{g: g}, nil
}

func mimeTypesOf(c MimeCategory, opts []Option) *MimeTypes {
	m, err := MimeTypesOf(c, opts...)
	if err != nil {
		panic("httpgen: " + err.Error())
	}
	return m
}

// ApplicationMimeTypes samples the application/* table.
func ApplicationMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Application, opts) }

// AudioMimeTypes samples the audio/* table.
func AudioMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Audio, opts) }

// ImageMimeTypes samples the image/* table.
func ImageMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Image, opts) }

// MultipartMimeTypes samples the multipart/* table.
func MultipartMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Multipart, opts) }

// TextMimeTypes samples the text/* table.
func TextMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Text, opts) }

// VideoMimeTypes samples the video/* table.
func VideoMimeTypes(opts ...Option) *MimeTypes { return mimeTypesOf(Video, opts) }

// randomMimeTypes builds "major/minor" strings: 10-20 lowercase letters, a
// slash, then 5-15 characters drawn 10:1 from lowercase letters and the
// symbols '-' and '.'.
func randomMimeTypes(r *mathrand.Rand) gen.Generator[string] {
	letters := gen.LowerLetters(r)
	symbols := must(gen.Chars(r, '-', '.'))

	major := must(gen.Strings(must(gen.Ints(r, 10, 20)), letters))
	minorChars := must(gen.Frequency(r,
		gen.Weighted[rune]{Gen: letters, Weight: 10},
		gen.Weighted[rune]{Gen: symbols, Weight: 1},
	))
	minor := must(gen.Strings(must(gen.Ints(r, 5, 15)), minorChars))

	return gen.Func[string](func() (string, error) {
		left, err := major.Next()
		if err != nil {
			return "", err
		}
		right, err := minor.Next()
		if err != nil {
			return "", err
		}
		return left + "/" + right, nil
	})
}
