package resolver

import (
	"path"
	"regexp"
	"strings"
)

// aliasResult is the outcome of resolveAliases: either a rewritten name, or
// a directive to use the empty shim.
type aliasResult struct {
	Text  string
	Empty bool
}

// resolveAliases implements C4's top-level entry point: apply per-package
// aliases, then root-package aliases, to filename. A root alias may rewrite
// the output of a package alias, but not vice versa (spec §8, "Alias
// composition"). If neither fires, the original filename comes back
// unchanged (spec §8, "Alias idempotence").
func (r *Resolver) resolveAliases(filename string, pkg *Manifest) aliasResult {
	cur := filename

	if v, ok := r.resolvePackageAliases(cur, pkg); ok {
		if v.Empty {
			return aliasResult{Empty: true}
		}
		cur = v.Text
	}

	root, hasRoot := r.rootManifest()
	if hasRoot && root != pkg {
		if v, ok := r.resolvePackageAliases(cur, root); ok {
			if v.Empty {
				return aliasResult{Empty: true}
			}
			cur = v.Text
		}
	}

	return aliasResult{Text: cur}
}

// rootManifest lazily loads and caches the project-root manifest.
func (r *Resolver) rootManifest() (*Manifest, bool) {
	return r.readManifest(r.rootDir)
}

// resolvePackageAliases consults pkg's "source", "alias", "browser" fields
// in that order (only when the field decoded as an object); the first
// field with a hit wins (spec §4.5).
func (r *Resolver) resolvePackageAliases(filename string, pkg *Manifest) (AliasValue, bool) {
	if pkg == nil {
		return AliasValue{}, false
	}
	for _, table := range []AliasTable{pkg.SourceAlias, pkg.Alias, pkg.BrowserAlias} {
		if table == nil {
			continue
		}
		if v, ok := getAlias(filename, pkg.PkgDir, table); ok {
			return v, true
		}
	}
	return AliasValue{}, false
}

// getAlias implements the §4.5 lookup procedure for a single table.
func getAlias(filename, pkgdir string, table AliasTable) (AliasValue, bool) {
	if path.IsAbs(filename) {
		key := relativizeForAlias(filename, pkgdir)
		if v, ok := table.Get(key); ok {
			return v, true
		}
		return matchGlobAlias(table, key)
	}

	if v, ok := table.Get(filename); ok {
		return v, true
	}
	if v, ok := matchGlobAlias(table, filename); ok {
		return v, true
	}

	parts := splitModulePath(filename)
	if v, ok := table.Get(parts.Pkg); ok {
		if v.Empty {
			return v, true
		}
		return AliasValue{Text: joinSubPath(v.Text, parts.SubPath)}, true
	}

	return AliasValue{}, false
}

func joinSubPath(base, sub string) string {
	if sub == "" {
		return base
	}
	return base + "/" + sub
}

// relativizeForAlias converts an absolute filename to a path relative to
// pkgdir, prefixed with "./" if it doesn't already start with ".".
func relativizeForAlias(filename, pkgdir string) string {
	rel := posixRel(pkgdir, filename)
	if !strings.HasPrefix(rel, ".") {
		rel = "./" + rel
	}
	return rel
}

// posixRel computes a forward-slash relative path from base to target,
// independent of the host's path separator conventions.
func posixRel(base, target string) string {
	base = path.Clean(base)
	target = path.Clean(target)
	if base == target {
		return "."
	}

	baseParts := splitNonEmpty(base)
	targetParts := splitNonEmpty(target)

	i := 0
	for i < len(baseParts) && i < len(targetParts) && baseParts[i] == targetParts[i] {
		i++
	}

	var out []string
	for range baseParts[i:] {
		out = append(out, "..")
	}
	out = append(out, targetParts[i:]...)
	if len(out) == 0 {
		return "."
	}
	return strings.Join(out, "/")
}

func splitNonEmpty(p string) []string {
	var parts []string
	for _, part := range strings.Split(p, "/") {
		if part != "" {
			parts = append(parts, part)
		}
	}
	return parts
}

// isGlobAliasKey reports whether a table key uses glob metacharacters and
// so must be compiled to a regular expression rather than matched exactly.
func isGlobAliasKey(key string) bool {
	return strings.ContainsAny(key, globMeta)
}

// matchGlobAlias tries each glob key in table against filename, in the
// table's declaration order, and returns the first match (spec §4.5).
func matchGlobAlias(table AliasTable, filename string) (AliasValue, bool) {
	for pair := table.Oldest(); pair != nil; pair = pair.Next() {
		if !isGlobAliasKey(pair.Key) {
			continue
		}
		re, err := compileAliasGlob(pair.Key)
		if err != nil {
			continue
		}
		if !re.MatchString(filename) {
			continue
		}
		if pair.Value.Empty {
			return pair.Value, true
		}
		return AliasValue{Text: re.ReplaceAllString(filename, pair.Value.Text)}, true
	}
	return AliasValue{}, false
}

// compileAliasGlob translates a glob-with-metacharacters alias key into an
// anchored regular expression with capture groups: "**" captures across
// path separators, "*" captures within one segment, and "{a,b,...}"
// becomes a non-capturing alternation. This is a narrowed glob dialect
// sufficient for alias-table substitution; it is not a general-purpose
// glob matcher (the resolver uses doublestar for that elsewhere).
func compileAliasGlob(pattern string) (*regexp.Regexp, error) {
	var sb strings.Builder
	sb.WriteString("^")

	for i := 0; i < len(pattern); {
		switch {
		case strings.HasPrefix(pattern[i:], "**"):
			sb.WriteString("(.*)")
			i += 2

		case pattern[i] == '*':
			sb.WriteString("([^/]*)")
			i++

		case pattern[i] == '{':
			end := strings.IndexByte(pattern[i:], '}')
			if end < 0 {
				sb.WriteString(regexp.QuoteMeta(pattern[i:]))
				i = len(pattern)
				continue
			}
			alternatives := strings.Split(pattern[i+1:i+end], ",")
			sb.WriteString("(?:")
			for j, alt := range alternatives {
				if j > 0 {
					sb.WriteString("|")
				}
				sb.WriteString(regexp.QuoteMeta(alt))
			}
			sb.WriteString(")")
			i += end + 1

		default:
			sb.WriteString(regexp.QuoteMeta(string(pattern[i])))
			i++
		}
	}

	sb.WriteString("$")
	return regexp.Compile(sb.String())
}
