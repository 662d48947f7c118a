package palette

import (
	"errors"
	"fmt"
	"github.com/mmuldo/colorcheck/ciede2000"
	"sort"
	"strings"
)

// ErrUnknownCard is returned by Lookup for ids that are not in the catalog.
var ErrUnknownCard = errors.New("unknown color card")

// Patch is one colored square of a color card.
type Patch struct {
	Name string
	RGB  ciede2000.RGB
}

// Anchor locates the card's grid relative to its anchor patch: how many
// patches lie above, below, left and right of it.
type Anchor struct {
	Patch                     string
	Above, Below, Left, Right int
}

// Card is a physical color card. Patches are listed from the top-left to the
// bottom-right of the card.
type Card struct {
	ID      string
	Name    string
	Patches []Patch
	Anchor  Anchor
}

// CameraTrax24 is the CameraTrax 24 ColorCard.
var CameraTrax24 = Card{
	ID:   "small24",
	Name: "CameraTrax 24 ColorCard",
	Patches: []Patch{
		{"White", ciede2000.RGB{243, 238, 243}},
		{"Blue", ciede2000.RGB{34, 63, 147}},
		{"Orange", ciede2000.RGB{224, 124, 47}},
		{"Dark Tone", ciede2000.RGB{116, 81, 67}},
		{"Light Grey", ciede2000.RGB{200, 202, 202}},
		{"Green", ciede2000.RGB{67, 149, 74}},
		{"Medium Blue", ciede2000.RGB{68, 91, 170}},
		{"Light Tone", ciede2000.RGB{199, 147, 129}},
		{"Grey", ciede2000.RGB{161, 162, 161}},
		{"Red", ciede2000.RGB{180, 49, 47}},
		{"Light Red", ciede2000.RGB{198, 82, 97}},
		{"Sky Blue", ciede2000.RGB{91, 122, 156}},
		{"Dark Grey", ciede2000.RGB{120, 121, 120}},
		{"Yellow", ciede2000.RGB{238, 198, 32}},
		{"Purple", ciede2000.RGB{94, 58, 106}},
		{"Tree Green", ciede2000.RGB{90, 108, 64}},
		{"Charcoal", ciede2000.RGB{82, 83, 83}},
		{"Magenta", ciede2000.RGB{193, 84, 151}},
		{"Yellow Green", ciede2000.RGB{159, 189, 63}},
		{"Light Blue", ciede2000.RGB{130, 128, 176}},
		{"Black", ciede2000.RGB{49, 48, 51}},
		{"Cyan", ciede2000.RGB{12, 136, 170}},
		{"Orange Yellow", ciede2000.RGB{230, 162, 39}},
		{"Blue Green", ciede2000.RGB{92, 190, 172}},
	},
	Anchor: Anchor{Patch: "Purple", Above: 4, Below: 1, Left: 0, Right: 3},
}

var catalog = map[string]*Card{
	CameraTrax24.ID: &CameraTrax24,
}

// Lookup returns the card registered under id.
func Lookup(id string) (*Card, error) {
	c, ok := catalog[strings.ToLower(id)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCard, id)
	}
	return c, nil
}

// IDs lists the registered card ids in sorted order.
func IDs() []string {
	ids := make([]string, 0, len(catalog))
	for id := range catalog {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Reference returns the reference color of the named patch.
func (c *Card) Reference(name string) (ciede2000.RGB, bool) {
	for _, p := range c.Patches {
		if strings.EqualFold(p.Name, name) {
			return p.RGB, true
		}
	}
	return ciede2000.RGB{}, false
}

// Names returns the patch names in card order.
func (c *Card) Names() []string {
	names := make([]string, len(c.Patches))
	for i, p := range c.Patches {
		names[i] = p.Name
	}
	return names
}
