// Package env provides environment variable utilities for assembling the
// environment of spawned debugger and simulator processes.
package env

import "strings"

// Set returns env with key set to value, replacing an existing entry or
// appending a new one. The input slice is not modified.
func Set(env []string, key, value string) []string {
	out := make([]string, 0, len(env)+1)
	replaced := false
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			out = append(out, prefix+value)
			replaced = true
			continue
		}
		out = append(out, entry)
	}
	if !replaced {
		out = append(out, prefix+value)
	}
	return out
}

// Prepend returns env with value prepended to the list-valued variable key,
// using sep as the list separator. A missing or empty variable becomes just
// value.
func Prepend(env []string, key, value, sep string) []string {
	existing, ok := Lookup(env, key)
	if !ok || existing == "" {
		return Set(env, key, value)
	}
	return Set(env, key, value+sep+existing)
}

// Lookup returns the value of key in env and whether it was present.
func Lookup(env []string, key string) (string, bool) {
	prefix := key + "="
	for _, entry := range env {
		if strings.HasPrefix(entry, prefix) {
			return strings.TrimPrefix(entry, prefix), true
		}
	}
	return "", false
}
