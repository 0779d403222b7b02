// Package mapskey provides the public API for resolving the Google Maps
// manifest placeholders of an Android build.
//
// Build tooling can use it directly instead of shelling out to the
// mapskey command:
//
//	values := mapskey.ResolveRoot("android")
//	apiKey := values["GOOGLE_MAPS_API_KEY"]
package mapskey

import (
	"path/filepath"

	"github.com/yacchi/mapskey/internal/resolver"
)

// DefaultPropertiesFile is the properties file location relative to the
// Android build root.
const DefaultPropertiesFile = "../local.properties"

// Binding ties a logical name to a properties key, a manifest placeholder
// and a fallback value.
type Binding = resolver.Binding

// Resolved is a full resolution result, including where each value came
// from.
type Resolved = resolver.Resolved

// DefaultBindings returns the Google Maps API key and Map ID bindings.
func DefaultBindings() []Binding {
	return resolver.DefaultBindings()
}

// ResolveRoot resolves the default bindings against the local.properties
// file next to the Android build root and returns the placeholder map.
func ResolveRoot(root string) map[string]string {
	return ResolveFile(filepath.Join(root, DefaultPropertiesFile)).Placeholders()
}

// ResolveFile resolves bindings against the properties file at path. With
// no bindings the default ones are used. Invalid bindings are not checked
// here; use ValidateBindings first when they come from user input.
func ResolveFile(path string, bindings ...Binding) *Resolved {
	if len(bindings) == 0 {
		bindings = resolver.DefaultBindings()
	}
	return resolver.Resolve(path, bindings)
}

// ValidateBindings rejects bindings with empty fields or duplicate names
// or placeholders.
func ValidateBindings(bindings []Binding) error {
	return resolver.ValidateBindings(bindings)
}
