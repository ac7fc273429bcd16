package assets

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/vovakirdan/cyberrunner/internal/config"
)

// writeTextures creates a PNG for every texture under root, skipping the given IDs.
func writeTextures(t *testing.T, root string, skip ...TextureID) {
	t.Helper()
	skipped := make(map[TextureID]bool)
	for _, id := range skip {
		skipped[id] = true
	}
	for i, id := range All() {
		if skipped[id] {
			continue
		}
		path := filepath.Join(root, id.Path())
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatal(err)
		}
		img := image.NewRGBA(image.Rect(0, 0, 16*(i+1), 8))
		img.Set(0, 0, color.RGBA{R: 255, A: 255})
		f, err := os.Create(path)
		if err != nil {
			t.Fatal(err)
		}
		if err := png.Encode(f, img); err != nil {
			t.Fatal(err)
		}
		f.Close()
	}
}

func TestProbeSizes(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root)

	sizes, err := ProbeSizes(root)
	if err != nil {
		t.Fatalf("ProbeSizes() failed: %v", err)
	}
	for i, id := range All() {
		want := Size{W: 16 * (i + 1), H: 8}
		if sizes[id] != want {
			t.Errorf("%s: size %+v, expected %+v", id, sizes[id], want)
		}
	}
	if err := sizes.Validate(); err != nil {
		t.Errorf("Validate() failed: %v", err)
	}
}

func TestLoadMissingTextureNamesPath(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root, TexDrone)

	_, err := ProbeSizes(root)
	if err == nil {
		t.Fatal("ProbeSizes() should fail when a texture is missing")
	}
	if !errors.Is(err, ErrMissing) {
		t.Errorf("error should wrap ErrMissing, got %v", err)
	}
	if !strings.Contains(err.Error(), "textures/Drone/roam.png") {
		t.Errorf("error should name the missing path, got %v", err)
	}
}

func TestLoadCorruptTexture(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root)
	bad := filepath.Join(root, TexWalk.Path())
	if err := os.WriteFile(bad, []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	_, err := ProbeSizes(root)
	if err == nil {
		t.Fatal("ProbeSizes() should fail for a corrupt PNG")
	}
	if errors.Is(err, ErrMissing) {
		t.Error("corrupt file should not be reported as missing")
	}
	if !strings.Contains(err.Error(), "walk.png") {
		t.Errorf("error should name the file, got %v", err)
	}
}

func TestSetReleaseReverseOrder(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root)

	set, err := Load(root, func(path string) (string, Size, error) {
		return filepath.Base(path), Size{W: 1, H: 1}, nil
	})
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if set.Get(TexDrone) != "roam.png" {
		t.Errorf("Get(TexDrone) = %q, expected roam.png", set.Get(TexDrone))
	}

	var released []TextureID
	set.Release(func(id TextureID, _ string) {
		released = append(released, id)
	})

	all := All()
	if len(released) != len(all) {
		t.Fatalf("released %d textures, expected %d", len(released), len(all))
	}
	for i, id := range released {
		if id != all[len(all)-1-i] {
			t.Errorf("release #%d = %s, expected %s", i, id, all[len(all)-1-i])
		}
	}
}

func TestDecodeImage(t *testing.T) {
	root := t.TempDir()
	writeTextures(t, root)

	img, size, err := DecodeImage(filepath.Join(root, TexWalk.Path()))
	if err != nil {
		t.Fatalf("DecodeImage() failed: %v", err)
	}
	if size != (Size{W: 16, H: 8}) {
		t.Errorf("size = %+v, expected 16x8", size)
	}
	r, _, _, a := img.At(0, 0).RGBA()
	if r>>8 != 255 || a>>8 != 255 {
		t.Errorf("pixel (0,0) should be opaque red")
	}
}

func TestSizesFromConfig(t *testing.T) {
	sizes := SizesFromConfig(config.DefaultRunnerConfig().Sprites)
	if err := sizes.Validate(); err != nil {
		t.Fatalf("default sprite sizes should validate: %v", err)
	}
	if sizes[TexDrone] != (Size{W: 256, H: 32}) {
		t.Errorf("drone size = %+v", sizes[TexDrone])
	}

	// Short background lists reuse the last entry
	short := config.SpriteSizes{Backgrounds: []config.SpriteSize{{Width: 10, Height: 20}}}
	sizes = SizesFromConfig(short)
	if sizes[TexLayer4] != (Size{W: 10, H: 20}) {
		t.Errorf("TexLayer4 = %+v, expected reuse of first background", sizes[TexLayer4])
	}
}

func TestTextureIDNames(t *testing.T) {
	if TexLayer4.String() != "b4.png" {
		t.Errorf("TexLayer4.String() = %q", TexLayer4.String())
	}
	if TextureID(99).Path() != "" {
		t.Error("unknown texture should have no path")
	}
	if len(Backgrounds) != 5 || Backgrounds[0] != TexBackground {
		t.Error("Backgrounds should list five layers farthest-first")
	}
}
