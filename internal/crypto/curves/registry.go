package curves

import (
	"fmt"
	"sort"
)

// backends lists the compiled-in curves. Adding a backend means implementing
// Curve and appending its constructor here.
var backends = []func() Curve{
	func() Curve { return Secp256k1() },
	func() Curve { return Ed25519() },
	func() Curve { return Ristretto255() },
	func() Curve { return P256() },
	func() Curve { return P384() },
}

// All returns every registered curve, ordered by ID.
func All() []Curve {
	out := make([]Curve, 0, len(backends))
	for _, b := range backends {
		out = append(out, b())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID() < out[j].ID() })
	return out
}

// ByName returns the registered curve with the given name.
func ByName(name string) (Curve, error) {
	for _, c := range All() {
		if c.Name() == name {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedCurve, name)
}

// ByID returns the registered curve with the given identifier.
func ByID(id byte) (Curve, error) {
	for _, c := range All() {
		if c.ID() == id {
			return c, nil
		}
	}
	return nil, fmt.Errorf("%w: id %d", ErrUnsupportedCurve, id)
}

// Names returns the sorted names of the registered curves.
func Names() []string {
	var names []string
	for _, c := range All() {
		names = append(names, c.Name())
	}
	sort.Strings(names)
	return names
}
