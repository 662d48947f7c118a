package report

import (
	"bytes"
	"github.com/mmuldo/colorcheck/ciede2000"
	"github.com/mmuldo/colorcheck/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// exact returns a sample for every patch of the card, identical to the
// reference.
func exact(card *palette.Card) []Sample {
	samples := make([]Sample, len(card.Patches))
	for i, p := range card.Patches {
		samples[i] = Sample{p.Name, p.RGB}
	}
	return samples
}

func TestCompareExact(t *testing.T) {
	results := Compare(&palette.CameraTrax24, exact(&palette.CameraTrax24), palette.Native, DefaultConfig)
	require.Len(t, results, 24)
	for _, r := range results {
		assert.Equal(t, 0.0, r.Delta, r.Name)
		assert.True(t, r.Pass, r.Name)
		assert.False(t, r.Placeholder, r.Name)
		assert.Equal(t, r.Reference, r.Sample)
	}
	assert.Equal(t, "White", results[0].Name)
}

func TestCompareDecisions(t *testing.T) {
	samples := exact(&palette.CameraTrax24)
	// slightly off grey, and a red measured as blue
	samples[8].RGB = ciede2000.RGB{163, 162, 161}
	samples[9].RGB = ciede2000.RGB{34, 63, 147}

	results := Compare(&palette.CameraTrax24, samples, nil, DefaultConfig)

	grey := results[8]
	assert.Equal(t, "Grey", grey.Name)
	assert.Greater(t, grey.Delta, 0.0)
	assert.True(t, grey.Pass)

	red := results[9]
	assert.Equal(t, "Red", red.Name)
	assert.Greater(t, red.Delta, DefaultThreshold)
	assert.False(t, red.Pass)
	assert.Equal(t, red.Delta, red.CappedDelta)

	want := ciede2000.Difference(ciede2000.RGBToLab(ciede2000.RGB{34, 63, 147}), ciede2000.RGBToLab(ciede2000.RGB{180, 49, 47}))
	assert.Equal(t, want, red.Delta)
}

func TestCompareThresholdIsStrict(t *testing.T) {
	samples := exact(&palette.CameraTrax24)
	samples[8].RGB = ciede2000.RGB{163, 162, 161}
	delta := Compare(&palette.CameraTrax24, samples, palette.Native, DefaultConfig)[8].Delta

	results := Compare(&palette.CameraTrax24, samples, palette.Native, Config{Threshold: delta, Cap: DefaultCap})
	assert.False(t, results[8].Pass)

	results = Compare(&palette.CameraTrax24, samples, palette.Native, Config{Threshold: delta + 1e-9, Cap: DefaultCap})
	assert.True(t, results[8].Pass)
}

func TestComparePlaceholders(t *testing.T) {
	samples := []Sample{
		{"white", ciede2000.RGB{243, 238, 243}},
		{"Chartreuse", ciede2000.RGB{127, 255, 0}},
	}
	results := Compare(&palette.CameraTrax24, samples, palette.Native, Config{Threshold: 5, Cap: 10})
	require.Len(t, results, 24)

	assert.False(t, results[0].Placeholder)
	assert.True(t, results[0].Pass)
	for _, r := range results[1:] {
		assert.True(t, r.Placeholder, r.Name)
		assert.Equal(t, ciede2000.RGB{}, r.Sample)
		assert.LessOrEqual(t, r.CappedDelta, 10.0)
	}
}

func TestCreate(t *testing.T) {
	results := Compare(&palette.CameraTrax24, exact(&palette.CameraTrax24), palette.Native, DefaultConfig)
	generated := time.Date(2025, 11, 6, 14, 59, 55, 0, time.UTC)

	r, e := Create(&palette.CameraTrax24, results, map[string]interface{}{
		"title":     "Bench 3",
		"generated": generated,
		"intensity": IntensityCheck{Value: 150, Min: 120, Max: 180},
		"operator":  "jo",
	})
	require.NoError(t, e)
	assert.Equal(t, "Bench 3", r.Title)
	assert.Equal(t, "CameraTrax 24 ColorCard", r.Card)
	assert.Equal(t, "native", r.Engine)
	assert.Equal(t, DefaultThreshold, r.Threshold)
	assert.Equal(t, generated, r.Generated)
	assert.True(t, r.ColorPass)
	assert.True(t, r.Pass())
	assert.Equal(t, "jo", r.Extra["operator"])
	assert.Empty(t, r.Worst(5))

	r, e = Create(&palette.CameraTrax24, results, nil)
	require.NoError(t, e)
	assert.Equal(t, DefaultTitle, r.Title)
	assert.False(t, r.Generated.IsZero())
	assert.Nil(t, r.Intensity)

	_, e = Create(&palette.CameraTrax24, results, map[string]interface{}{"threshold": "five"})
	assert.Error(t, e)
}

func TestCreateFailing(t *testing.T) {
	samples := exact(&palette.CameraTrax24)
	samples[9].RGB = ciede2000.RGB{34, 63, 147}
	samples[2].RGB = ciede2000.RGB{160, 124, 47}
	results := Compare(&palette.CameraTrax24, samples, palette.Native, DefaultConfig)

	r, e := Create(&palette.CameraTrax24, results, map[string]interface{}{
		"intensity": IntensityCheck{Value: 90, Min: 120, Max: 180},
	})
	require.NoError(t, e)
	assert.False(t, r.ColorPass)
	assert.False(t, r.Pass())

	worst := r.Worst(5)
	require.Len(t, worst, 2)
	assert.Equal(t, "Red", worst[0].Name)
	assert.Equal(t, "Orange", worst[1].Name)
	assert.Len(t, r.Worst(1), 1)
}

func TestIntensityCheck(t *testing.T) {
	assert.True(t, IntensityCheck{120, 120, 180}.Pass())
	assert.True(t, IntensityCheck{180, 120, 180}.Pass())
	assert.False(t, IntensityCheck{119.9, 120, 180}.Pass())
	assert.False(t, IntensityCheck{180.1, 120, 180}.Pass())
}

func TestVerdict(t *testing.T) {
	assert.Equal(t, "PASS", Verdict(true))
	assert.Equal(t, "FAIL", Verdict(false))
}

func TestToHSV(t *testing.T) {
	cases := []struct {
		rgb ciede2000.RGB
		hsv HSV
	}{
		{ciede2000.RGB{0, 0, 0}, HSV{0, 0, 0}},
		{ciede2000.RGB{255, 255, 255}, HSV{0, 0, 100}},
		{ciede2000.RGB{255, 0, 0}, HSV{0, 100, 100}},
		{ciede2000.RGB{0, 255, 0}, HSV{120, 100, 100}},
		{ciede2000.RGB{0, 0, 255}, HSV{240, 100, 100}},
		{ciede2000.RGB{255, 0, 255}, HSV{300, 100, 100}},
	}
	for _, c := range cases {
		got := ToHSV(c.rgb)
		assert.InDelta(t, c.hsv.H, got.H, 1e-9, "%v", c.rgb)
		assert.InDelta(t, c.hsv.S, got.S, 1e-9, "%v", c.rgb)
		assert.InDelta(t, c.hsv.V, got.V, 1e-9, "%v", c.rgb)
	}
	assert.Equal(t, "300.0°, 100.0%, 100.0%", ToHSV(ciede2000.RGB{255, 0, 255}).String())
}

func TestRender(t *testing.T) {
	samples := exact(&palette.CameraTrax24)
	samples[9].RGB = ciede2000.RGB{34, 63, 147}
	results := Compare(&palette.CameraTrax24, samples[:23], palette.Native, DefaultConfig)
	r, e := Create(&palette.CameraTrax24, results, map[string]interface{}{
		"title":     "Bench 3",
		"intensity": IntensityCheck{Value: 150, Min: 120, Max: 180},
	})
	require.NoError(t, e)

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, ""))
	out := buf.String()

	assert.True(t, strings.HasPrefix(out, "# Bench 3"))
	assert.Contains(t, out, "Using: CameraTrax 24 ColorCard")
	assert.Contains(t, out, "| Color Balance | FAIL |")
	assert.Contains(t, out, "| Light Intensity | PASS |")
	assert.Contains(t, out, "| White | (243, 238, 243) | (243, 238, 243) |")
	assert.Contains(t, out, "| Blue Green (no sample) |")
	assert.Contains(t, out, "- Red: ")
	assert.Contains(t, out, "Report Complete")
}

func TestRenderCustomTemplate(t *testing.T) {
	results := Compare(&palette.CameraTrax24, exact(&palette.CameraTrax24), palette.Native, DefaultConfig)
	r, e := Create(&palette.CameraTrax24, results, map[string]interface{}{"site": "lab 2"})
	require.NoError(t, e)

	path := filepath.Join(t.TempDir(), "summary.txt")
	require.NoError(t, os.WriteFile(path, []byte("{{ card }} at {{ extra.site }}: {{ status }}"), 0644))

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, r, path))
	assert.Equal(t, "CameraTrax 24 ColorCard at lab 2: PASS", buf.String())

	assert.Error(t, Render(&buf, r, filepath.Join(t.TempDir(), "missing.txt")))
}
