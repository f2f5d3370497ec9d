package service

import "caseimport-service/internal/store"

// BuildClientLookup indexes a firm's clients by normalized name. Built once
// per run, read-only afterwards; clients created elsewhere mid-run are not
// visible. When two clients normalize to the same key the later one wins.
func BuildClientLookup(clients []store.Client) map[string]store.Client {
	lookup := make(map[string]store.Client, len(clients))
	for _, c := range clients {
		key := NormalizeClientName(c.FullName)
		if key == "" {
			continue
		}
		lookup[key] = c
	}
	return lookup
}

// ResolveClient does an exact lookup on the normalized input. A miss is a
// soft condition ("client not found"), not an error — rows import without a
// client link.
func ResolveClient(lookup map[string]store.Client, rawName string) (store.Client, bool) {
	c, ok := lookup[NormalizeClientName(rawName)]
	return c, ok
}
