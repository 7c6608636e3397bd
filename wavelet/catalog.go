package wavelet

import (
	"sync"

	"golang.org/x/exp/slices"

	"github.com/gowavelet/modwt/modwterr"
)

// Transform names a core operation a catalog entry may be used for
// (spec §6, §D: SupportedTransforms).
type Transform string

const (
	TransformMODWT      Transform = "MODWT"
	TransformMultiLevel Transform = "MultiLevelMODWT"
	TransformDenoise    Transform = "Denoise"
)

// registry is the single immutable table built at init time (spec §9:
// "replace with a single immutable table built at initialization,
// resolved by canonical name"). Entries are only ever added during
// package init; Lookup/List/Supported take the read lock so concurrent
// callers never observe a partially built table.
type registry struct {
	mu      sync.RWMutex
	entries map[string]*Wavelet
}

var defaultRegistry = &registry{entries: make(map[string]*Wavelet)}

func register(w *Wavelet) {
	defaultRegistry.mu.Lock()
	defer defaultRegistry.mu.Unlock()
	defaultRegistry.entries[w.name] = w
}

// Lookup resolves a canonical wavelet name to its descriptor.
func Lookup(name string) (*Wavelet, error) {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	w, ok := defaultRegistry.entries[name]
	if !ok {
		return nil, modwterr.New(modwterr.InvalidWavelet, "name", name, "a registered wavelet name")
	}
	return w, nil
}

// List returns every cataloged wavelet name in sorted order.
func List() []string {
	defaultRegistry.mu.RLock()
	defer defaultRegistry.mu.RUnlock()
	names := make([]string, 0, len(defaultRegistry.entries))
	for name := range defaultRegistry.entries {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Supported reports the set of core operations a wavelet name may be
// used with. Biorthogonal spline wavelets are excluded from denoising:
// the threshold formulas in spec §4.5 assume the per-level detail
// variance scaling that only holds for an orthogonal, energy-normalized
// filter bank.
func Supported(name string) ([]Transform, error) {
	w, err := Lookup(name)
	if err != nil {
		return nil, err
	}
	transforms := []Transform{TransformMODWT, TransformMultiLevel}
	if w.kind == Orthogonal {
		transforms = append(transforms, TransformDenoise)
	}
	return transforms, nil
}

// mustRegister panics at init time if a built-in catalog entry is
// malformed; this can only happen if a literal filter table above is
// wrong, which is a programmer error caught immediately at package
// load rather than surfaced later as a confusing runtime failure.
func mustRegister(name string, w *Wavelet, err error) {
	if err != nil {
		panic("wavelet: built-in catalog entry " + name + " failed validation: " + err.Error())
	}
	register(w)
}

func init() {
	registerHaar()
	registerDaubechies()
	registerSymlets()
	registerCoiflets()
	registerBiorthogonal()
}
