package datasets

import "strings"

// Preset is a named parameter set for Generate.
type Preset struct {
	Name  string
	N     int
	M     int
	Betas []float64
	Sigma float64
}

// Presets returns the built-in scenarios: both features carry signal, one true
// coefficient is zero, and both signals are weak relative to the noise.
func Presets() []Preset {
	return []Preset{
		{Name: "All Significant", N: 100, M: 2, Betas: []float64{1, 1}, Sigma: 1},
		{Name: "One Zero", N: 100, M: 2, Betas: []float64{1, 0}, Sigma: 1},
		{Name: "Weak Signals", N: 100, M: 2, Betas: []float64{0.2, 0.3}, Sigma: 1},
	}
}

// LookupPreset finds a preset by case-insensitive name, ignoring spaces, dashes
// and underscores ("one-zero" matches "One Zero").
func LookupPreset(name string) (Preset, bool) {
	key := normalizePresetName(name)
	for _, p := range Presets() {
		if normalizePresetName(p.Name) == key {
			return p, true
		}
	}
	return Preset{}, false
}

func normalizePresetName(s string) string {
	r := strings.NewReplacer(" ", "", "-", "", "_", "")
	return strings.ToLower(r.Replace(s))
}
