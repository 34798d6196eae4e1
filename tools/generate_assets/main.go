// Command generate_assets writes a placeholder sprite set and sample icon
// catalogs, enough to run hexgen without the real game textures.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"hash/fnv"
	"image"
	"image/color"
	"math"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/1siamBot/hexboard-synth/engine/assets"
	"github.com/disintegration/imaging"
)

// sample catalogs, version or addon -> icon names
var (
	primaryIcons = []struct {
		Version string
		Icons   []string
	}{
		{"4.2", []string{
			"aer", "terra", "ignis", "aqua", "ordo", "perditio",
			"vacuos", "lux", "motus", "gelum", "vitreus", "victus",
			"venenum", "potentia", "permutatio", "metallum", "mortuus", "volatus",
			"tenebrae", "spiritus", "sano", "iter", "alienis", "praecantatio",
		}},
		{"4.2 extended", []string{
			"auram", "vitium", "limus", "herba", "arbor", "bestia",
			"corpus", "exanimis", "cognitio", "sensus", "humanus", "messis",
			"perfodio", "instrumentum", "meto", "telum", "tutamen", "fames",
			"lucrum", "fabrico", "pannus", "machina", "vinculum",
		}},
	}
	addonIcons = []struct {
		Addon string
		Icons []string
	}{
		{"Thaumic Boots", []string{"caelum"}},
		{"Avaritia", []string{"terminus"}},
		{"Forbidden Magic", []string{"infernus", "superbia", "gula", "invidia", "desidia", "ira", "luxuria"}},
		{"Magic Bees", []string{"tempus"}},
		{"GregTech", []string{"electrum", "magneto", "nebrisum", "radio", "strontio"}},
		{"Botanical addons", []string{"tincturem"}},
		{"Essential Thaumaturgy", []string{"sanctus"}},
	}
)

func main() {
	assetDir := flag.String("assets", "assets", "Sprite output directory")
	configDir := flag.String("config", "config", "Catalog output directory")
	seed := flag.Int64("seed", 1, "Seed for glyph shapes")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	p := assets.DefaultPaths(*assetDir)

	save(p.Background, tableBackground(144, 144))
	save(p.BackgroundPaper, paper(136, 134))
	save(p.EmptyHex, emptyHex(64))
	save(p.Highlight, glow(64))
	save(p.DecoySheet, scriptSheet(rng, 10, 32))

	count := 0
	for _, v := range primaryIcons {
		for _, name := range v.Icons {
			save(p.IconPath(name), icon(name, 64))
			count++
		}
	}
	for _, a := range addonIcons {
		for _, name := range a.Icons {
			save(p.IconPath(name), icon(name, 64))
			count++
		}
	}
	fmt.Printf("✅ %d icons and board sprites generated in %s/\n", count, *assetDir)

	primary := make(orderedObject, 0, len(primaryIcons))
	for _, v := range primaryIcons {
		primary = append(primary, member{v.Version, recipes(v.Icons)})
	}
	addons := make(orderedObject, 0, len(addonIcons))
	for _, a := range addonIcons {
		addons = append(addons, member{a.Addon, recipes(a.Icons)})
	}
	writeJSON(filepath.Join(*configDir, "aspects.json"), primary)
	writeJSON(filepath.Join(*configDir, "addons_aspects.json"), addons)
}

func save(path string, img image.Image) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	if err := imaging.Save(img, path); err != nil {
		panic(err)
	}
	fmt.Println("  →", path)
}

// orderedObject marshals as a JSON object keeping member order, which the
// catalog loader relies on for stable ids.
type orderedObject []member

type member struct {
	Key   string
	Value interface{}
}

func (o orderedObject) MarshalJSON() ([]byte, error) {
	buf := []byte{'{'}
	for i, m := range o {
		if i > 0 {
			buf = append(buf, ',')
		}
		k, err := json.Marshal(m.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(m.Value)
		if err != nil {
			return nil, err
		}
		buf = append(buf, k...)
		buf = append(buf, ':')
		buf = append(buf, v...)
	}
	return append(buf, '}'), nil
}

func recipes(names []string) orderedObject {
	out := make(orderedObject, 0, len(names))
	for _, n := range names {
		out = append(out, member{n, map[string]interface{}{}})
	}
	return out
}

func writeJSON(path string, v interface{}) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		panic(err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		panic(err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		panic(err)
	}
	fmt.Println("  →", path)
}

// ==================== SPRITES ====================

func tableBackground(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	dark, light := color.NRGBA{58, 36, 22, 255}, color.NRGBA{112, 74, 44, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// stretched noise reads as wood grain
			n := fbm(float64(x)*0.03, float64(y)*0.4, 4, 0.5, 3)
			img.SetNRGBA(x, y, mix(dark, light, n))
		}
	}
	return img
}

func paper(w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	base, stain := color.NRGBA{226, 214, 182, 255}, color.NRGBA{190, 168, 124, 255}
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			n := fbm(float64(x)*0.05, float64(y)*0.05, 5, 0.55, 11)
			edge := math.Min(math.Min(float64(x), float64(w-1-x)), math.Min(float64(y), float64(h-1-y)))
			t := clamp((n-0.45)*1.5, 0, 1) + clamp(1-edge/6, 0, 1)*0.5
			img.SetNRGBA(x, y, mix(base, stain, t))
		}
	}
	return img
}

func emptyHex(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	ink := color.NRGBA{70, 52, 36, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := hexDist(x, y, size, size)
			switch {
			case d > 0.86 && d <= 0.94:
				blend(img, x, y, ink)
			case d <= 0.86:
				blend(img, x, y, color.NRGBA{ink.R, ink.G, ink.B, toU8(40 * (1 - d))})
			}
		}
	}
	return img
}

func glow(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	c := float64(size) / 2
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			d := math.Hypot(float64(x)+0.5-c, float64(y)+0.5-c) / c
			a := 255 * math.Exp(-d*d*3)
			img.SetNRGBA(x, y, color.NRGBA{255, 236, 150, toU8(a)})
		}
	}
	return img
}

// scriptSheet draws n dark glyphs side by side on a transparent strip.
func scriptSheet(rng *rand.Rand, n, size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, n*size, size))
	ink := color.NRGBA{20, 14, 10, 220}
	s := float64(size)
	for i := 0; i < n; i++ {
		ox := float64(i * size)
		x, y := ox+s*(0.25+rng.Float64()*0.5), s*(0.25+rng.Float64()*0.5)
		for k := 0; k < 3+rng.Intn(3); k++ {
			nx := ox + s*(0.15+rng.Float64()*0.7)
			ny := s * (0.15 + rng.Float64()*0.7)
			thickStroke(img, x, y, nx, ny, 1.5, ink)
			x, y = nx, ny
		}
		if rng.Intn(2) == 0 {
			disc(img, ox+s/2, s/2, s*0.08, ink)
		}
	}
	return img
}

// icon draws a colored disc with a rune derived from the name, so every
// icon is distinct and stable between runs.
func icon(name string, size int) *image.NRGBA {
	h := fnv.New64a()
	h.Write([]byte(name))
	sum := h.Sum64()
	rng := rand.New(rand.NewSource(int64(sum)))

	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	s := float64(size)
	col := hueColor(float64(sum%1000) / 1000)
	disc(img, s/2, s/2, s*0.42, color.NRGBA{30, 24, 20, 255})
	disc(img, s/2, s/2, s*0.36, col)

	ink := color.NRGBA{250, 250, 240, 255}
	spokes := 3 + rng.Intn(4)
	for k := 0; k < spokes; k++ {
		a := 2*math.Pi*float64(k)/float64(spokes) + rng.Float64()*0.4
		r := s * (0.12 + rng.Float64()*0.16)
		thickStroke(img, s/2, s/2, s/2+math.Cos(a)*r, s/2+math.Sin(a)*r, 2.5, ink)
	}
	disc(img, s/2, s/2, s*0.06, ink)
	return img
}
