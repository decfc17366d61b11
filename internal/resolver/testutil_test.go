package resolver

import omap "github.com/wk8/go-ordered-map/v2"

// aliasEntry is a convenience literal for building an AliasTable in tests
// without going through JSON decoding.
type aliasEntry struct {
	text  string
	empty bool
}

// newAliasTableForTest builds an AliasTable from a map of key/value pairs,
// inserted in the given key order. Go maps don't preserve insertion order,
// so glob-order tests pass the order explicitly; without it, keys go in
// map iteration order.
func newAliasTableForTest(pairs map[string]aliasEntry, order ...string) AliasTable {
	table := omap.New[string, AliasValue]()
	keys := order
	if len(keys) == 0 {
		for k := range pairs {
			keys = append(keys, k)
		}
	}
	for _, k := range keys {
		e := pairs[k]
		table.Set(k, AliasValue{Text: e.text, Empty: e.empty})
	}
	return table
}
