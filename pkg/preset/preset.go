// Package preset holds the fixed render settings of the bundled executables.
//
// The settings live in an embedded TOML document so both commands read their
// region, iteration cap and Julia constant from one place. They are compiled
// into the binary; nothing is read from disk at run time.
package preset

import (
	_ "embed"
	"sort"
	"sync"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/fractals/pkg/errors"
	"github.com/matzehuels/fractals/pkg/fractal"
)

// Names of the bundled presets.
const (
	Mandelbrot = "mandelbrot"
	Julia      = "julia"
)

//go:embed presets.toml
var bundled []byte

// Preset describes everything about a render except the raster size.
type Preset struct {
	Name          string
	Kind          fractal.Kind
	Bounds        fractal.Bounds
	MaxIterations int
	C             complex128
}

// Build returns the set described by p on a raster of the given size.
func (p Preset) Build(size fractal.Size) (*fractal.Set, error) {
	switch p.Kind {
	case fractal.KindJulia:
		return fractal.NewJulia(size, p.Bounds, p.MaxIterations, p.C)
	default:
		return fractal.NewMandelbrot(size, p.Bounds, p.MaxIterations)
	}
}

type document map[string]entry

type entry struct {
	Kind          string     `toml:"kind"`
	MaxIterations int        `toml:"max_iterations"`
	Bounds        *bounds    `toml:"bounds"`
	C             *parameter `toml:"c"`
}

type bounds struct {
	XMin float64 `toml:"x_min"`
	XMax float64 `toml:"x_max"`
	YMin float64 `toml:"y_min"`
	YMax float64 `toml:"y_max"`
}

type parameter struct {
	Re float64 `toml:"re"`
	Im float64 `toml:"im"`
}

// Parse decodes and validates a preset document.
func Parse(data []byte) (map[string]Preset, error) {
	var doc document
	if err := toml.Unmarshal(data, &doc); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPreset, err, "decode presets")
	}

	presets := make(map[string]Preset, len(doc))
	for name, e := range doc {
		p, err := e.preset(name)
		if err != nil {
			return nil, err
		}
		presets[name] = p
	}
	return presets, nil
}

func (e entry) preset(name string) (Preset, error) {
	kind, err := fractal.ParseKind(e.Kind)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
	}
	if e.MaxIterations < 1 {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "preset %q: max_iterations must be positive, got %d", name, e.MaxIterations)
	}
	if e.Bounds == nil {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "preset %q: missing bounds", name)
	}
	b, err := fractal.NewBounds(e.Bounds.XMin, e.Bounds.XMax, e.Bounds.YMin, e.Bounds.YMax)
	if err != nil {
		return Preset{}, errors.Wrap(errors.ErrCodeInvalidPreset, err, "preset %q", name)
	}

	p := Preset{Name: name, Kind: kind, Bounds: b, MaxIterations: e.MaxIterations}
	switch {
	case kind == fractal.KindJulia && e.C == nil:
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "preset %q: julia sets need c", name)
	case kind == fractal.KindMandelbrot && e.C != nil:
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "preset %q: c only applies to julia sets", name)
	case e.C != nil:
		p.C = complex(e.C.Re, e.C.Im)
	}
	return p, nil
}

// Load parses the bundled presets.
func Load() (map[string]Preset, error) {
	return Parse(bundled)
}

// loadBundled decodes the embedded document once per process.
var loadBundled = sync.OnceValues(Load)

// Get returns the bundled preset called name.
func Get(name string) (Preset, error) {
	presets, err := loadBundled()
	if err != nil {
		return Preset{}, err
	}
	p, ok := presets[name]
	if !ok {
		return Preset{}, errors.New(errors.ErrCodeInvalidPreset, "unknown preset %q", name)
	}
	return p, nil
}

// Names returns the bundled preset names in sorted order.
func Names() ([]string, error) {
	presets, err := loadBundled()
	if err != nil {
		return nil, err
	}
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names, nil
}
