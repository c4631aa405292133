package quote

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"

	"github.com/philipparndt/stlquote/pkg/stl"
)

var supported = []language.Tag{language.English, language.Italian}

var matcher = language.NewMatcher(supported)

const (
	msgTriangles  = "Triangles: %d\n"
	msgDimensions = "Dimensions: %.1f × %.1f × %.1f mm\n"
	msgVolume     = "Volume: %.2f cm³ (estimate, fill factor %.2f)\n"
	msgMaterial   = "Material: %s\n"
	msgCost       = "Estimated Cost: %.2f %s\n"
	msgBreakdown  = "  Material %.2f + Setup %.2f\n"
)

var italian = map[string]string{
	msgTriangles:  "Triangoli: %d\n",
	msgDimensions: "Dimensioni: %.1f × %.1f × %.1f mm\n",
	msgVolume:     "Volume: %.2f cm³ (stima, fattore di riempimento %.2f)\n",
	msgMaterial:   "Materiale: %s\n",
	msgCost:       "Costo Stimato: %.2f %s\n",
	msgBreakdown:  "  Materiale %.2f + Setup %.2f\n",
}

// Display names per language; materials not listed keep their configured name
var materialNames = map[language.Tag]map[string]string{
	language.English: {
		"pla":         "Standard PLA",
		"petg":        "Resistant PETG",
		"abs":         "Technical ABS",
		"carbonFiber": "Carbon Fiber",
	},
	language.Italian: {
		"pla":         "PLA Standard",
		"petg":        "PETG Resistente",
		"abs":         "ABS Tecnico",
		"carbonFiber": "Fibra di Carbonio",
	},
}

var messages = newCatalog()

func newCatalog() catalog.Catalog {
	b := catalog.NewBuilder(catalog.Fallback(language.English))
	for key, msg := range italian {
		b.SetString(language.English, key, key)
		b.SetString(language.Italian, key, msg)
	}
	return b
}

// Language resolves a user supplied language name to a supported tag,
// falling back to English.
func Language(name string) language.Tag {
	tag, err := language.Parse(name)
	if err != nil {
		return language.English
	}
	_, index, _ := matcher.Match(tag)
	return supported[index]
}

// MaterialName returns the localized display name of m
func MaterialName(tag language.Tag, m Material) string {
	if name, ok := materialNames[tag][m.Key]; ok {
		return name
	}
	return m.Name
}

// Render writes a human readable quote in the given language
func Render(w io.Writer, lang string, summary stl.GeometrySummary, q Quote) error {
	tag := Language(lang)
	p := message.NewPrinter(tag, message.Catalog(messages))

	d := summary.Dimensions
	lines := []struct {
		format string
		args   []any
	}{
		{msgTriangles, []any{summary.TriangleCount}},
		{msgDimensions, []any{d.X, d.Y, d.Z}},
		{msgVolume, []any{q.VolumeCm3, summary.FillFactor}},
		{msgMaterial, []any{MaterialName(tag, q.Material)}},
		{msgCost, []any{q.Total, q.Currency}},
		{msgBreakdown, []any{q.MaterialCost, q.SetupFee}},
	}

	for _, line := range lines {
		if _, err := p.Fprintf(w, line.format, line.args...); err != nil {
			return err
		}
	}
	return nil
}
