// Package pathrule extracts suffix tokens from asset paths and checks asset
// locations against a directory allow-list.
package pathrule

import (
	"path"
	"strings"
)

// CollectSuffixes returns the run of known tokens at the end of the file name
// of p, left to right. The name is split on '_' after dropping its last
// extension, and the scan stops at the first token that is not known.
// Matching is case-sensitive.
//
//	CollectSuffixes("P0_Name_S0_S1.png", {"S0", "S1"}) == ["S0", "S1"]
//	CollectSuffixes("Name_01_S0.png", {"S0"})          == ["S0"]
//	CollectSuffixes("Name_S0_01.png", {"S0"})          == []
func CollectSuffixes(p string, known []string) []string {
	if len(known) == 0 {
		return nil
	}
	set := make(map[string]struct{}, len(known))
	for _, k := range known {
		set[k] = struct{}{}
	}

	stem := stem(baseName(p))
	if stem == "" {
		return nil
	}
	var tokens []string
	for _, t := range strings.Split(stem, "_") {
		if t != "" {
			tokens = append(tokens, t)
		}
	}

	start := len(tokens)
	for start > 0 {
		if _, ok := set[tokens[start-1]]; !ok {
			break
		}
		start--
	}
	if start == len(tokens) {
		return nil
	}
	return append([]string(nil), tokens[start:]...)
}

func baseName(p string) string {
	p = strings.ReplaceAll(p, `\`, "/")
	if i := strings.LastIndex(p, "/"); i >= 0 {
		return p[i+1:]
	}
	return p
}

// stem drops the last extension. Leading dots belong to the name, so
// ".hidden" has no extension.
func stem(name string) string {
	lead := len(name) - len(strings.TrimLeft(name, "."))
	if i := strings.LastIndex(name, "."); i > lead {
		return name[:i]
	}
	return name
}

// IsPathAllowed reports whether the directory of p equals or lies below one
// of the allow-list directories. A trailing '/' marks p itself as a
// directory. Backslashes are treated as separators and comparison respects
// segment boundaries, so "/Game/VFXFoo" is not below "/Game/VFX". Empty and
// rootless paths are never allowed.
func IsPathAllowed(p string, allow []string) bool {
	dir, ok := assetDir(p)
	if !ok {
		return false
	}
	for _, a := range allow {
		root, ok := normalizeDir(a)
		if !ok {
			continue
		}
		if Within(dir, root) {
			return true
		}
	}
	return false
}

// Within reports whether dir equals root or is nested below it. Both must be
// cleaned absolute slash paths.
func Within(dir, root string) bool {
	if root == "/" {
		return strings.HasPrefix(dir, "/")
	}
	return dir == root || strings.HasPrefix(dir, root+"/")
}

func assetDir(p string) (string, bool) {
	p = strings.TrimSpace(strings.ReplaceAll(p, `\`, "/"))
	if !strings.HasPrefix(p, "/") {
		return "", false
	}
	if strings.HasSuffix(p, "/") {
		return path.Clean(p), true
	}
	return path.Dir(path.Clean(p)), true
}

func normalizeDir(d string) (string, bool) {
	d = strings.TrimSpace(strings.ReplaceAll(d, `\`, "/"))
	if !strings.HasPrefix(d, "/") {
		return "", false
	}
	return path.Clean(d), true
}
