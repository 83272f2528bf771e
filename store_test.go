package timeago

import "testing"

func TestStaticStoreStrings(t *testing.T) {
	store := NewDefaultStore()

	tests := []struct {
		locale string
		want   string
		ok     bool
	}{
		{locale: "en", want: "en", ok: true},
		{locale: "ar", want: "ar", ok: true},
		{locale: " ar ", want: "ar", ok: true},
		{locale: "fr", ok: false},
	}

	for _, tc := range tests {
		table, ok := store.Strings(tc.locale)
		if ok != tc.ok {
			t.Fatalf("Strings(%q) ok = %v want %v", tc.locale, ok, tc.ok)
		}
		if ok && table.Locale != tc.want {
			t.Fatalf("Strings(%q).Locale = %q want %q", tc.locale, table.Locale, tc.want)
		}
	}

	locales := store.Locales()
	if len(locales) != 2 || locales[0] != "ar" || locales[1] != "en" {
		t.Fatalf("Locales() = %v", locales)
	}
}

func TestNewStaticStoreCopiesInput(t *testing.T) {
	src := Tables{"en_US": English()}
	store := NewStaticStore(src)

	src["en_US"].Units[Minutes] = Text("changed")

	table, ok := store.Strings("en-US")
	if !ok {
		t.Fatal("expected normalized en-US table")
	}
	if got := table.Phrase(Minutes, 3, 3*minute); got != "3 minutes" {
		t.Fatalf("expected snapshot to remain unchanged, got %q", got)
	}

	table.Units[Minutes] = Text("mutated")
	again, _ := store.Strings("en-US")
	if got := again.Phrase(Minutes, 3, 3*minute); got != "3 minutes" {
		t.Fatalf("Strings must return a copy, got %q", got)
	}
}

func TestLookupStrings(t *testing.T) {
	store := NewDefaultStore()

	resolver := NewStaticFallbackResolver()
	resolver.Set("fa", "ar")

	tests := []struct {
		locale  string
		matched string
		ok      bool
	}{
		{locale: "ar-EG", matched: "ar", ok: true},
		{locale: "en-GB", matched: "en", ok: true},
		{locale: "fa", matched: "ar", ok: true},
		{locale: "fr-CA", ok: false},
		{locale: "", ok: false},
	}

	for _, tc := range tests {
		_, matched, ok := lookupStrings(store, resolver, tc.locale)
		if ok != tc.ok || matched != tc.matched {
			t.Fatalf("lookupStrings(%q) = %q,%v want %q,%v", tc.locale, matched, ok, tc.matched, tc.ok)
		}
	}
}

func TestNewStaticStoreFromLoader(t *testing.T) {
	called := false
	loader := LoaderFunc(func() (Tables, error) {
		called = true
		return Tables{"ar": Arabic()}, nil
	})

	store, err := NewStaticStoreFromLoader(loader)
	if err != nil {
		t.Fatalf("NewStaticStoreFromLoader: %v", err)
	}

	if !called {
		t.Fatal("loader not invoked")
	}

	if _, ok := store.Strings("ar"); !ok {
		t.Fatal("expected ar table")
	}
}

func TestNewStaticStoreFromLoaderNil(t *testing.T) {
	store, err := NewStaticStoreFromLoader(nil)
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	if store == nil {
		t.Fatal("expected non-nil store")
	}

	if locales := store.Locales(); len(locales) != 0 {
		t.Fatalf("expected no locales, got %v", locales)
	}
}
