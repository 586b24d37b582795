package config

import (
	"errors"
	"fmt"
)

// ErrUnknownProfile is returned when a requested profile name has no
// entry in the profiles table. It aborts only the requested lookup and
// is reported separately from configuration load failures.
var ErrUnknownProfile = errors.New("unrecognized profile name")

// Layered is a two-level override chain: a general value that always
// applies, and an optional profile value that takes precedence when
// present. The same structure serves every style lookup; nothing is
// special-cased per field.
type Layered[T any] struct {
	General    T
	Profile    T
	HasProfile bool
}

// Inwards returns the layers from most to least specific: the profile
// layer first when present, then general.
func (l Layered[T]) Inwards() []T {
	if l.HasProfile {
		return []T{l.Profile, l.General}
	}
	return []T{l.General}
}

// MapLayered applies a projection to each layer, preserving the layer
// structure. Used to narrow a Layered[*Layer] down to one sub-field
// before searching it.
func MapLayered[T, U any](l Layered[T], f func(T) U) Layered[U] {
	out := Layered[U]{General: f(l.General), HasProfile: l.HasProfile}
	if l.HasProfile {
		out.Profile = f(l.Profile)
	}
	return out
}

// FirstInward searches the layers from most to least specific and
// returns the first value f supplies. The second return reports whether
// any layer supplied one; callers apply their own default when none did.
func FirstInward[T, U any](l Layered[T], f func(T) (U, bool)) (U, bool) {
	for _, layer := range l.Inwards() {
		if v, ok := f(layer); ok {
			return v, true
		}
	}
	var zero U
	return zero, false
}

// Layers resolves the layered view for an optional profile selection.
// An empty name selects the general configuration alone. A name with no
// matching profile returns ErrUnknownProfile.
func (c *Config) Layers(profile string) (Layered[*Layer], error) {
	layers := Layered[*Layer]{General: &c.General}
	if profile == "" {
		return layers, nil
	}
	p, ok := c.Profiles[profile]
	if !ok {
		return Layered[*Layer]{}, fmt.Errorf("%w: %q", ErrUnknownProfile, profile)
	}
	layers.Profile = p
	layers.HasProfile = true
	return layers, nil
}
