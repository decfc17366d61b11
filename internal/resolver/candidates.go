package resolver

import "path"

// activeExtensions computes the active extension list (spec §4.6): start
// from the configured order, put the parent's own extension (if it has
// one) at the front, adding it when the configured list lacks it, then
// prepend "" to match the base filename as-is.
func (r *Resolver) activeExtensions(parent string) []string {
	exts := r.extensions
	if parent != "" {
		parentExt := path.Ext(parent)
		if parentExt != "" {
			reordered := make([]string, 0, len(exts)+1)
			reordered = append(reordered, parentExt)
			for _, ext := range exts {
				if ext != parentExt {
					reordered = append(reordered, ext)
				}
			}
			exts = reordered
		}
	}

	out := make([]string, 0, len(exts)+1)
	out = append(out, "")
	out = append(out, exts...)
	return out
}

// expandFile implements the §4.6 candidate expansion: for each active
// extension, the alias target's full candidate list (if the candidate
// resolves through an alias) comes first, then the literal candidate.
// An alias of false is a definitive substitution, not a tentative one: it
// contributes the empty-shim path alone for that extension, with no
// literal fallback (spec §4.5), mirroring the unconditional short-circuit
// resolveModule already takes for the load-time alias pass.
func (r *Resolver) expandFile(file string, exts []string, pkg *Manifest, expandAliases bool) []string {
	var candidates []string

	for _, ext := range exts {
		literal := file + ext

		if expandAliases {
			alias := r.resolveAliases(literal, pkg)
			if alias.Empty {
				candidates = append(candidates, r.emptyShimPath)
				continue
			}
			if alias.Text != literal {
				candidates = append(candidates, r.expandFile(alias.Text, exts, pkg, false)...)
			}
		}

		candidates = append(candidates, literal)
	}

	return candidates
}
