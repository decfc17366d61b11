package resolver

import (
	"encoding/json"
	"path"

	omap "github.com/wk8/go-ordered-map/v2"
)

// rawManifest is the subset of package.json fields this resolver honors
// (spec §3, "PackageManifest"). Everything else in the document is ignored.
type rawManifest struct {
	Name    string          `json:"name"`
	Main    string          `json:"main"`
	Module  string          `json:"module"`
	Source  json.RawMessage `json:"source"`
	Alias   json.RawMessage `json:"alias"`
	Browser json.RawMessage `json:"browser"`
}

// readManifest parses dir/package.json, synthesizes pkgfile/pkgdir, applies
// the source-field symlink rule, and memoizes the result by pkgfile. A
// missing or malformed manifest is reported as (nil, false): the caller
// treats this exactly like "no package.json here" (spec §7, ManifestRead).
func (r *Resolver) readManifest(dir string) (*Manifest, bool) {
	pkgFile := path.Join(dir, "package.json")

	if cached, ok := r.manifests.get(pkgFile); ok {
		return cached, cached != nil
	}

	m, ok := r.parseManifest(pkgFile, dir)
	if !ok {
		r.manifests.set(pkgFile, nil)
		return nil, false
	}
	r.manifests.set(pkgFile, m)
	return m, true
}

func (r *Resolver) parseManifest(pkgFile, pkgDir string) (*Manifest, bool) {
	contents, err := r.fs.ReadFile(pkgFile)
	if err != nil {
		return nil, false
	}

	var raw rawManifest
	if err := json.Unmarshal([]byte(contents), &raw); err != nil {
		return nil, false
	}

	m := &Manifest{
		PkgFile: pkgFile,
		PkgDir:  pkgDir,
		Name:    raw.Name,
		Main:    raw.Main,
		Module:  raw.Module,
	}

	if len(raw.Source) > 0 {
		decodeSourceField(raw.Source, m)
	}

	if m.hasSource {
		// The "source" field is only honored for locally-linked packages
		// being worked on; for an installed (non-symlinked) package it is
		// dropped (spec §4.4) — in both its string-override and
		// alias-table shapes.
		if real, err := r.fs.Realpath(pkgFile); err == nil && real == pkgFile {
			m.Source = ""
			m.SourceAlias = nil
			m.hasSource = false
		}
	}

	if len(raw.Alias) > 0 {
		m.Alias = decodeAliasTable(raw.Alias)
	}

	if len(raw.Browser) > 0 {
		decodeBrowserField(raw.Browser, m)
	}

	return m, true
}

// decodeSourceField honors both uses of "source": a plain string (an entry
// point override) and an object (an alias table for multi-entry packages).
// hasSource is set for either shape, so the symlink-drop rule in
// parseManifest runs regardless of which one the manifest used (spec §4.4).
func decodeSourceField(raw json.RawMessage, m *Manifest) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		m.Source = asString
		m.hasSource = asString != ""
		return
	}

	m.SourceAlias = decodeAliasTable(raw)
	m.hasSource = m.SourceAlias != nil
}

// decodeAliasTable decodes a manifest field that is known to be an alias
// table into an order-preserving map. Entries whose value is neither a
// string nor the literal false are dropped silently (spec §9).
func decodeAliasTable(raw json.RawMessage) AliasTable {
	parsed := omap.New[string, json.RawMessage]()
	if err := json.Unmarshal(raw, parsed); err != nil {
		return nil
	}

	table := omap.New[string, AliasValue](omap.WithCapacity[string, AliasValue](parsed.Len()))
	for pair := parsed.Oldest(); pair != nil; pair = pair.Next() {
		if value, ok := decodeAliasValue(pair.Value); ok {
			table.Set(pair.Key, value)
		}
	}
	return table
}

func decodeAliasValue(raw json.RawMessage) (AliasValue, bool) {
	var asBool bool
	if err := json.Unmarshal(raw, &asBool); err == nil {
		if asBool {
			return AliasValue{}, false // "true" is not a recognized shape
		}
		return AliasValue{Empty: true}, true
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return AliasValue{Text: asString}, true
	}

	return AliasValue{}, false
}

// decodeBrowserField honors both uses of "browser": a plain string
// (BrowserMain override) and an object (an alias table), per spec §3.
func decodeBrowserField(raw json.RawMessage, m *Manifest) {
	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		m.BrowserMain = asString
		m.HasBrowserMain = true
		return
	}

	m.BrowserAlias = decodeAliasTable(raw)
}

// findPackage implements the findPackage half of C3: walk from dir upward
// until the parent is the filesystem root or dir's basename is
// "node_modules", returning the first manifest that reads successfully.
func (r *Resolver) findPackage(dir string) (*Manifest, bool) {
	for {
		if m, ok := r.readManifest(dir); ok {
			return m, true
		}

		if path.Base(dir) == "node_modules" {
			return nil, false
		}
		parent := path.Dir(dir)
		if parent == dir {
			return nil, false
		}
		dir = parent
	}
}

// getPackageMain implements the §4.4 entry-point selection: source ≻
// module ≻ browser (string-valued) ≻ main, falling back to "index".
func getPackageMain(pkg *Manifest) string {
	browser := ""
	if pkg.HasBrowserMain {
		browser = pkg.BrowserMain
	} else if pkg.BrowserAlias != nil {
		// A package may re-export itself under its own name via "browser".
		if value, ok := pkg.BrowserAlias.Get(pkg.Name); ok && !value.Empty && value.Text != "" {
			browser = value.Text
		}
	}

	main := ""
	switch {
	case pkg.Source != "":
		main = pkg.Source
	case pkg.Module != "":
		main = pkg.Module
	case browser != "":
		main = browser
	case pkg.Main != "":
		main = pkg.Main
	}

	if main == "" || main == "." || main == "./" {
		main = "index"
	}

	return path.Clean(path.Join(pkg.PkgDir, main))
}
