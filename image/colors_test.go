package image

import (
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"
)

var (
	red  = color.RGBA{180, 49, 47, 255}
	blue = color.RGBA{34, 63, 147, 255}
)

// split paints the left `left` columns red and the rest blue.
func split(w, h, left int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	for x := 0; x < w; x++ {
		for y := 0; y < h; y++ {
			if x < left {
				img.Set(x, y, red)
			} else {
				img.Set(x, y, blue)
			}
		}
	}
	return img
}

func TestGetColors(t *testing.T) {
	img := split(4, 2, 3)
	img.Set(0, 0, color.Transparent)

	m := GetColors(img)
	assert.Equal(t, map[ciede2000.RGB]int{
		{180, 49, 47}: 5,
		{34, 63, 147}: 2,
	}, m)

	ranked := RankColors(m)
	require.Len(t, ranked, 2)
	assert.Equal(t, ciede2000.RGB{180, 49, 47}, ranked[0].Color)
	assert.Equal(t, 5, ranked[0].Count)
}

func TestRankColorsTies(t *testing.T) {
	ranked := RankColors(map[ciede2000.RGB]int{{9, 9, 9}: 1, {1, 1, 1}: 1, {5, 5, 5}: 2})
	assert.Equal(t, ciede2000.RGB{5, 5, 5}, ranked[0].Color)
	assert.Equal(t, ciede2000.RGB{1, 1, 1}, ranked[1].Color)
	assert.Equal(t, ciede2000.RGB{9, 9, 9}, ranked[2].Color)
}

func TestDominantSmall(t *testing.T) {
	c, e := Dominant(split(20, 20, 15), 2)
	require.NoError(t, e)
	assertNear(t, ciede2000.RGB{180, 49, 47}, c, 2)
}

func TestDominantScaled(t *testing.T) {
	c, e := Dominant(split(200, 100, 150), 2)
	require.NoError(t, e)
	assertNear(t, ciede2000.RGB{180, 49, 47}, c, 12)
}

func TestDominantEmpty(t *testing.T) {
	_, e := Dominant(image.NewNRGBA(image.Rect(0, 0, 4, 4)), 2)
	assert.Equal(t, ErrEmpty, e)
}

func TestMean(t *testing.T) {
	c, e := Mean(split(4, 1, 2))
	require.NoError(t, e)
	assert.Equal(t, ciede2000.RGB{107, 56, 97}, c)

	_, e = Mean(image.NewNRGBA(image.Rect(0, 0, 2, 2)))
	assert.Equal(t, ErrEmpty, e)
}

func TestIntensity(t *testing.T) {
	img := image.NewGray(image.Rect(0, 0, 2, 1))
	img.SetGray(0, 0, color.Gray{100})
	img.SetGray(1, 0, color.Gray{200})
	v, e := Intensity(img)
	require.NoError(t, e)
	assert.Equal(t, 150.0, v)

	_, e = Intensity(image.NewGray(image.Rect(0, 0, 0, 0)))
	assert.Equal(t, ErrEmpty, e)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	img := split(6, 4, 4)

	encoders := map[string]func(*os.File) error{
		"patch.png":  func(f *os.File) error { return png.Encode(f, img) },
		"patch.bmp":  func(f *os.File) error { return bmp.Encode(f, img) },
		"patch.tiff": func(f *os.File) error { return tiff.Encode(f, img, nil) },
	}
	for name, encode := range encoders {
		path := filepath.Join(dir, name)
		f, e := os.Create(path)
		require.NoError(t, e)
		require.NoError(t, encode(f))
		require.NoError(t, f.Close())

		loaded, e := Load(path)
		require.NoError(t, e, name)
		assert.Equal(t, img.Bounds(), loaded.Bounds(), name)
		c, e := Mean(loaded)
		require.NoError(t, e)
		assertNear(t, ciede2000.RGB{131, 54, 80}, c, 1)
	}

	_, e := Load(filepath.Join(dir, "missing.png"))
	assert.Error(t, e)

	garbage := filepath.Join(dir, "garbage.png")
	require.NoError(t, os.WriteFile(garbage, []byte("not an image"), 0644))
	_, e = Load(garbage)
	assert.Error(t, e)
}

func assertNear(t *testing.T, want, got ciede2000.RGB, tol int) {
	t.Helper()
	for i := range want {
		d := int(want[i]) - int(got[i])
		if d < -tol || d > tol {
			t.Errorf("got %v, want %v within %d", got, want, tol)
			return
		}
	}
}
