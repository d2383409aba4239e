package fonts

import (
	"errors"
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func newOffline(t *testing.T, opts ...Option) *Resolver {
	t.Helper()
	r, err := NewResolver(append([]Option{WithSystemFonts(false)}, opts...)...)
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	return r
}

func TestOfflineResolvesToFallback(t *testing.T) {
	r := newOffline(t)
	defer func() { _ = r.Close() }()

	for _, family := range []string{"Arial", "Georgia", "No Such Font", ""} {
		if got := r.Source(family); got != r.Fallback() {
			t.Errorf("Source(%q) is not the fallback", family)
		}
	}
}

func TestFaceMeasures(t *testing.T) {
	r := newOffline(t)
	defer func() { _ = r.Close() }()

	face := r.Face("Arial", 32)
	if face.Size() != 32 {
		t.Errorf("Size = %v, want 32", face.Size())
	}
	small := r.Face("Arial", 16).Advance("Hello")
	large := face.Advance("Hello")
	if small <= 0 || large <= small {
		t.Errorf("advances: 16px=%v 32px=%v, want 0 < small < large", small, large)
	}
}

func TestKeyFoldsCase(t *testing.T) {
	r := newOffline(t)
	defer func() { _ = r.Close() }()

	if r.key("  Times New Roman ") != r.key("times new roman") {
		t.Error("keys differ by case or surrounding space")
	}
}

func TestWithFallback(t *testing.T) {
	r := newOffline(t, WithFallback(gomono.TTF))
	defer func() { _ = r.Close() }()

	// Every glyph in a monospace face has the same advance.
	face := r.Face("anything", 20)
	if a, b := face.Advance("i"), face.Advance("W"); a != b {
		t.Errorf("fallback is not monospace: i=%v W=%v", a, b)
	}
}

func TestNewResolverRejectsBadFallback(t *testing.T) {
	if _, err := NewResolver(WithFallback([]byte("not a font"))); err == nil {
		t.Fatal("NewResolver with garbage fallback succeeded")
	}
}

func TestCloseTwice(t *testing.T) {
	r := newOffline(t)
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
	if err := r.Close(); !errors.Is(err, ErrClosed) {
		t.Errorf("second Close = %v, want ErrClosed", err)
	}
}

func TestSystemLookupNeverFails(t *testing.T) {
	if testing.Short() {
		t.Skip("system font scan is slow")
	}
	r, err := NewResolver(WithCacheDir(t.TempDir()))
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	defer func() { _ = r.Close() }()

	for _, family := range []string{"DejaVu Sans", "Arial", "definitely-missing-family"} {
		if r.Source(family) == nil {
			t.Errorf("Source(%q) = nil", family)
		}
	}
	if r.Source("definitely-missing-family") != r.Fallback() {
		t.Error("missing family did not fall back")
	}
}

func TestClosedResolverServesFallback(t *testing.T) {
	r := newOffline(t)
	want := r.Face("Arial", 32).Advance("Hello")
	if err := r.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}

	if r.Source("Arial") != r.Fallback() {
		t.Error("closed resolver did not return the fallback")
	}
	if got := r.Face("Arial", 32).Advance("Hello"); got != want {
		t.Errorf("advance after Close = %v, want %v", got, want)
	}
}

// installFonts writes font files into a fresh XDG data directory that the
// system scan picks up.
func installFonts(t *testing.T, files map[string][]byte) {
	t.Helper()
	home := t.TempDir()
	dir := filepath.Join(home, ".local", "share", "fonts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	for name, data := range files {
		if err := os.WriteFile(filepath.Join(dir, name), data, 0o644); err != nil {
			t.Fatal(err)
		}
	}
	t.Setenv("HOME", home)
	t.Setenv("XDG_DATA_HOME", filepath.Join(home, ".local", "share"))
}

func TestSystemLookupPrefersRegular(t *testing.T) {
	if testing.Short() {
		t.Skip("system font scan is slow")
	}
	if runtime.GOOS != "linux" {
		t.Skip("per-user font directory layout is linux specific")
	}
	// Styled faces sort ahead of the regular one by file name.
	installFonts(t, map[string][]byte{
		"Go-Bold-Italic.ttf": gobolditalic.TTF,
		"Go-Bold.ttf":        gobold.TTF,
		"Go-Italic.ttf":      goitalic.TTF,
		"Go-Regular.ttf":     goregular.TTF,
	})

	r, err := NewResolver(WithCacheDir(t.TempDir()), WithFallback(gomono.TTF))
	if err != nil {
		t.Fatalf("NewResolver: %v", err)
	}
	defer func() { _ = r.Close() }()

	if r.Source("Go") == r.Fallback() {
		t.Fatal("installed family Go was not found")
	}
	ref, err := text.NewFontSource(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = ref.Close() }()

	const s = "Hello World"
	want := ref.Face(32).Advance(s)
	if got := r.Face("go", 32).Advance(s); got != want {
		t.Errorf("Go resolved to a face with advance %v, want regular %v", got, want)
	}
}
