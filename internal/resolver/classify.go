package resolver

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// globMeta is the set of characters whose presence makes a request worth
// testing as a glob pattern at all (spec §4.1, §GLOSSARY). This is a cheap
// pre-filter; doublestar.ValidatePattern below decides whether the pattern
// is actually meaningful.
const globMeta = "*+{}"

// isGlob reports whether input is a non-trivial glob pattern: it must
// contain at least one glob metacharacter, and doublestar must consider it
// a syntactically valid pattern.
func isGlob(input string) bool {
	if !strings.ContainsAny(input, globMeta) {
		return false
	}
	return doublestar.ValidatePattern(input)
}

// classify implements C1. dir is dirname(parent), or the process working
// directory (here: the resolver's configured root) when there is no parent.
func (r *Resolver) classify(input, dir string) classified {
	if input == "" {
		return classified{kind: kindBare, bareName: input}
	}

	switch input[0] {
	case '/':
		return classified{kind: kindAbsolute, absPath: path.Join(r.rootDir, input[1:])}

	case '~':
		boundary := dir
		for {
			parent := path.Dir(boundary)
			if parent == boundary || boundary == r.rootDir || path.Base(parent) == "node_modules" {
				break
			}
			boundary = parent
		}
		return classified{kind: kindTilde, absPath: path.Join(boundary, input[1:])}

	case '.':
		return classified{kind: kindRelative, absPath: resolvePath(dir, input)}

	default:
		return classified{kind: kindBare, bareName: normalizeSeparators(input)}
	}
}

// resolvePath mimics POSIX path resolution of `target` against `base`:
// join then clean, same as Node's path.resolve for two path-like segments.
func resolvePath(base, target string) string {
	if path.IsAbs(target) {
		return path.Clean(target)
	}
	return path.Clean(path.Join(base, target))
}

func normalizeSeparators(s string) string {
	return strings.ReplaceAll(s, "\\", "/")
}
