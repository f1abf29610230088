package config

import (
	"encoding/json"
	"fmt"
	"maps"
	"slices"
	"strconv"
)

// LatestAPIVersion is the newest scripting API version the emulator knows of
const LatestAPIVersion = 33

// Named version aliases. Only major and minor host releases need an entry.
var versionAliases = map[string]int{
	"latest": LatestAPIVersion,
	"21.0.3": 28,
	"20.9.2": 20,
	"20.8.4": 15,
}

// APIVersion is a target API version, given either as a number or as one of
// the named aliases ("latest", "21.0.3", ...)
type APIVersion struct {
	Number int
	Alias  string
}

// Version returns an APIVersion for a plain number
func Version(n int) APIVersion {
	return APIVersion{Number: n}
}

// Alias returns an APIVersion for a named alias
func Alias(name string) APIVersion {
	return APIVersion{Alias: name}
}

// Resolve returns the numeric API version
func (v APIVersion) Resolve() (int, error) {
	if v.Alias == "" {
		return v.Number, nil
	}
	n, ok := versionAliases[v.Alias]
	if !ok {
		return 0, fmt.Errorf("unknown API version alias %q (want one of %v)", v.Alias, VersionAliases())
	}
	return n, nil
}

func (v APIVersion) String() string {
	if v.Alias != "" {
		return v.Alias
	}
	return strconv.Itoa(v.Number)
}

// MarshalJSON writes the alias or the number
func (v APIVersion) MarshalJSON() ([]byte, error) {
	if v.Alias != "" {
		return json.Marshal(v.Alias)
	}
	return json.Marshal(v.Number)
}

// UnmarshalJSON accepts either an integer or an alias string
func (v *APIVersion) UnmarshalJSON(data []byte) error {
	var n int
	if err := json.Unmarshal(data, &n); err == nil {
		*v = APIVersion{Number: n}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("targetApiVersion must be an integer or a version name")
	}
	if _, ok := versionAliases[s]; !ok {
		return fmt.Errorf("unknown API version alias %q (want one of %v)", s, VersionAliases())
	}
	*v = APIVersion{Alias: s}
	return nil
}

// VersionAliases returns the names accepted for targetApiVersion
func VersionAliases() []string {
	return slices.Sorted(maps.Keys(versionAliases))
}
