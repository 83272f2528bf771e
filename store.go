package timeago

import (
	"sort"
)

// Store exposes read only access to locale string tables
type Store interface {
	// Strings returns the table registered for locale and ok=false if missing
	Strings(locale string) (*Strings, bool)
	// Locales returns the list of locales known to the store
	Locales() []string
}

// Loader retrieves the tables used to seed a Store
type Loader interface {
	Load() (Tables, error)
}

// LoaderFunc adapters allow bare functions to implement Loader interface
type LoaderFunc func() (Tables, error)

// Load implements Loader for LoaderFunc
func (fn LoaderFunc) Load() (Tables, error) {
	return fn()
}

// StaticStore is an in memory store, read only after construction
type StaticStore struct {
	tables  Tables
	locales []string
}

var _ Store = &StaticStore{}

// NewStaticStore builds an immutable snapshot from the given tables
func NewStaticStore(data Tables) *StaticStore {
	if len(data) == 0 {
		return &StaticStore{tables: make(Tables)}
	}

	tables := make(Tables, len(data))
	locales := make([]string, 0, len(data))

	for locale, table := range data {
		locale = normalizeLocale(locale)
		if table == nil || locale == "" {
			continue
		}
		clone := table.Clone()
		if clone.Locale == "" {
			clone.Locale = locale
		}
		if _, exists := tables[locale]; !exists {
			locales = append(locales, locale)
		}
		tables[locale] = clone
	}

	// make locales deterministic
	sort.Strings(locales)

	return &StaticStore{
		tables:  tables,
		locales: locales,
	}
}

// NewDefaultStore returns a store seeded with the bundled locales.
func NewDefaultStore() *StaticStore {
	return NewStaticStore(defaultTables())
}

// NewStaticStoreFromLoader hydrates a StaticStore using the provided loader
func NewStaticStoreFromLoader(loader Loader) (*StaticStore, error) {
	if loader == nil {
		return NewStaticStore(nil), nil
	}

	tables, err := loader.Load()
	if err != nil {
		return nil, err
	}

	return NewStaticStore(tables), nil
}

// Strings returns a copy of the table registered for locale
func (s *StaticStore) Strings(locale string) (*Strings, bool) {
	if s == nil {
		return nil, false
	}

	table, ok := s.tables[normalizeLocale(locale)]
	if !ok || table == nil {
		return nil, false
	}
	return table.Clone(), true
}

// Locales returns a slice with all locale codes
func (s *StaticStore) Locales() []string {
	if s == nil || len(s.locales) == 0 {
		return nil
	}
	out := make([]string, len(s.locales))
	copy(out, s.locales)
	return out
}

// lookupStrings tries locale, its configured fallbacks, its parent tags
// and finally its base language.
func lookupStrings(store Store, resolver FallbackResolver, locale string) (*Strings, string, bool) {
	if store == nil {
		return nil, "", false
	}

	for _, candidate := range candidateLocales(resolver, locale) {
		if table, ok := store.Strings(candidate); ok {
			return table, candidate, true
		}
	}
	return nil, "", false
}

func candidateLocales(resolver FallbackResolver, locale string) []string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return nil
	}

	seen := make(map[string]struct{}, 4)
	candidates := make([]string, 0, 4)

	appendLocale := func(value string) {
		if value == "" {
			return
		}
		if _, ok := seen[value]; ok {
			return
		}
		seen[value] = struct{}{}
		candidates = append(candidates, value)
	}

	appendLocale(locale)

	if resolver != nil {
		for _, fallback := range resolver.Resolve(locale) {
			appendLocale(fallback)
		}
	}

	for _, parent := range localeParentChain(locale) {
		appendLocale(parent)
	}

	appendLocale(baseLanguage(locale))

	return candidates
}
