// Package fonts resolves CSS-style font family names to gg text faces.
//
// A Resolver looks a family up among the installed system fonts and falls
// back to a bundled face (Go Regular) when the name is unknown, the system
// scan fails, or the font file cannot be parsed. Callers never see a
// resolution error; an unresolvable family simply renders in the fallback.
package fonts

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"sync"

	"github.com/go-text/typesetting/font"
	"github.com/go-text/typesetting/fontscan"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/text/cases"

	"github.com/gogpu/caption/internal/logging"
)

// ErrClosed is returned by operations on a closed Resolver.
var ErrClosed = errors.New("fonts: resolver closed")

// Option configures a Resolver.
type Option func(*options)

type options struct {
	system   bool
	cacheDir string
	fallback []byte
}

func defaultOptions() options {
	return options{
		system:   true,
		fallback: goregular.TTF,
	}
}

// WithSystemFonts enables or disables lookup among installed fonts.
// With lookup disabled every family resolves to the fallback face, which
// makes rendering independent of the host.
func WithSystemFonts(enabled bool) Option {
	return func(o *options) {
		o.system = enabled
	}
}

// WithCacheDir sets where the system font index is cached. The empty string
// lets fontscan pick a platform default.
func WithCacheDir(dir string) Option {
	return func(o *options) {
		o.cacheDir = dir
	}
}

// WithFallback replaces the bundled fallback font with TTF or OTF data.
func WithFallback(data []byte) Option {
	return func(o *options) {
		if len(data) > 0 {
			o.fallback = data
		}
	}
}

// Resolver maps family names to font sources. It is safe for concurrent use.
type Resolver struct {
	opts options
	fold cases.Caser

	mu       sync.Mutex
	fallback *text.FontSource
	sources  map[string]*text.FontSource
	owned    []*text.FontSource
	fontMap  *fontscan.FontMap
	scanned  bool
	closed   bool
}

// NewResolver creates a Resolver. It fails only if the fallback font data
// cannot be parsed.
func NewResolver(opts ...Option) (*Resolver, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	fallback, err := text.NewFontSource(o.fallback)
	if err != nil {
		return nil, fmt.Errorf("fonts: parse fallback font: %w", err)
	}

	return &Resolver{
		opts:     o,
		fold:     cases.Fold(),
		fallback: fallback,
		sources:  make(map[string]*text.FontSource),
	}, nil
}

// Fallback returns the source used for unresolvable families.
func (r *Resolver) Fallback() *text.FontSource {
	return r.fallback
}

// Source returns the font source for family. Lookups are cached, including
// misses.
func (r *Resolver) Source(family string) *text.FontSource {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := r.key(family)
	if r.closed {
		return r.fallback
	}
	if src, ok := r.sources[key]; ok {
		return src
	}

	src := r.lookup(family)
	if src == nil {
		logging.Logger().Debug("fonts: family not found, using fallback",
			slog.String("family", family),
			slog.String("fallback", r.fallback.Name()))
		src = r.fallback
	} else {
		r.owned = append(r.owned, src)
	}
	r.sources[key] = src
	return src
}

// Face returns a face for family at size pixels. Faces are lightweight and
// share the cached source.
func (r *Resolver) Face(family string, size float64) text.Face {
	return r.Source(family).Face(size)
}

// Close releases every source loaded from the system. Faces obtained from
// them earlier become invalid. The fallback stays usable, so a closed
// Resolver keeps answering every family with the fallback face.
func (r *Resolver) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.closed {
		return ErrClosed
	}
	r.closed = true

	var errs []error
	for _, src := range r.owned {
		errs = append(errs, src.Close())
	}
	r.owned = nil
	r.sources = nil
	return errors.Join(errs...)
}

// key folds family for case-insensitive caching. Casers are stateful, so
// r.mu must be held.
func (r *Resolver) key(family string) string {
	return r.fold.String(strings.TrimSpace(family))
}

// regular is the aspect a CSS "<size>px <family>" font selects.
var regular = font.Aspect{
	Style:   font.StyleNormal,
	Weight:  font.WeightNormal,
	Stretch: font.StretchNormal,
}

// lookup searches the system fonts for the regular face of family, or the
// closest aspect fontscan offers. Substituted families are rejected so an
// unknown name falls back instead of picking an arbitrary system font.
// r.mu must be held.
func (r *Resolver) lookup(family string) *text.FontSource {
	if !r.opts.system || strings.TrimSpace(family) == "" {
		return nil
	}
	fm := r.systemFonts()
	if fm == nil {
		return nil
	}

	fm.SetQuery(fontscan.Query{Families: []string{family}, Aspect: regular})
	face := fm.ResolveFace(' ')
	if face == nil {
		return nil
	}
	got, aspect := fm.FontMetadata(face.Font)
	if font.NormalizeFamily(got) != font.NormalizeFamily(family) {
		return nil
	}

	loc := fm.FontLocation(face.Font)
	if !loadable(loc) {
		logging.Logger().Debug("fonts: unsupported font file",
			slog.String("family", family), slog.String("file", loc.File))
		return nil
	}
	src, err := text.NewFontSourceFromFile(loc.File)
	if err != nil {
		logging.Logger().Debug("fonts: unreadable font file",
			slog.String("file", loc.File), slog.Any("error", err))
		return nil
	}
	logging.Logger().Debug("fonts: resolved family",
		slog.String("family", family),
		slog.String("file", loc.File),
		slog.Int("weight", int(aspect.Weight)),
		slog.Int("style", int(aspect.Style)))
	return src
}

// systemFonts builds the font map on first use. A failed scan is logged once
// and leaves system lookup disabled. r.mu must be held.
func (r *Resolver) systemFonts() *fontscan.FontMap {
	if r.scanned {
		return r.fontMap
	}
	r.scanned = true

	fm := fontscan.NewFontMap(printfLogger{})
	if err := fm.UseSystemFonts(r.opts.cacheDir); err != nil {
		logging.Logger().Warn("fonts: system font scan failed, using fallback only",
			slog.Any("error", err))
		return nil
	}
	r.fontMap = fm
	return fm
}

// loadable reports whether gg's parser can read the font at loc.
// Collections (.ttc, .otc) and variable instances are not supported.
func loadable(loc fontscan.Location) bool {
	if loc.Index != 0 || loc.Instance != 0 {
		return false
	}
	switch strings.ToLower(filepath.Ext(loc.File)) {
	case ".ttf", ".otf":
		return true
	default:
		return false
	}
}

// printfLogger forwards fontscan's warnings to the shared slog logger.
type printfLogger struct{}

func (printfLogger) Printf(format string, args ...interface{}) {
	logging.Logger().Debug(fmt.Sprintf("fonts: fontscan: "+format, args...))
}
