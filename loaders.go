package timeago

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileLoader reads locale tables from YAML or JSON files. Each file maps
// locale codes to tables:
//
//	ar:
//	  direction: rtl
//	  minutes:
//	    "2": "منذ دقيقتين"
//	    "from 3 to 10": "منذ %d دقائق"
//	    infinity: "منذ %d دقيقة"
//
// Range forms keep their order from the file. Later files override
// entries of earlier ones per locale.
type FileLoader struct {
	paths []string
}

var _ Loader = &FileLoader{}

func NewFileLoader(paths ...string) *FileLoader {
	return &FileLoader{paths: append([]string(nil), paths...)}
}

func (l *FileLoader) Load() (Tables, error) {
	if l == nil || len(l.paths) == 0 {
		return nil, errors.New("timeago: no loader paths configured")
	}

	merged := make(Tables)
	for _, path := range l.paths {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("timeago: read %s: %w", path, err)
		}

		tables, err := decodeTablesFile(path, data)
		if err != nil {
			return nil, fmt.Errorf("timeago: decode %s: %w", path, err)
		}
		mergeTables(merged, tables)
	}

	for locale, table := range merged {
		if table.Direction == "" {
			table.Direction = DirectionForLocale(locale)
		}
		if err := table.Validate(); err != nil {
			return nil, err
		}
	}

	return merged, nil
}

func decodeTablesFile(path string, data []byte) (Tables, error) {
	ext := strings.ToLower(filepath.Ext(path))

	switch ext {
	case ".json", ".yaml", ".yml":
		// yaml.v3 reads JSON too and, unlike encoding/json, keeps key order.
		return decodeTables(path, data)
	default:
		return nil, fmt.Errorf("unsupported extension %s", ext)
	}
}

func decodeTables(path string, data []byte) (Tables, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("yaml parse error: %w", err)
	}

	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return nil, errors.New("empty locale file")
	}

	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("expected a mapping of locales, got %s", nodeKindName(root.Kind))
	}
	if len(root.Content) == 0 {
		return nil, errors.New("empty locale file")
	}

	tables := make(Tables, len(root.Content)/2)
	for i := 0; i+1 < len(root.Content); i += 2 {
		locale := normalizeLocale(root.Content[i].Value)
		if locale == "" {
			return nil, fmt.Errorf("empty locale in %s", path)
		}

		table, err := decodeTable(locale, root.Content[i+1])
		if err != nil {
			return nil, fmt.Errorf("%s: %w", locale, err)
		}
		tables[locale] = table
	}

	return tables, nil
}

func decodeTable(locale string, node *yaml.Node) (*Strings, error) {
	if node.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("table must be a mapping, got %s", nodeKindName(node.Kind))
	}

	table := &Strings{
		Locale: locale,
		Units:  make(map[Unit]Entry),
	}

	for i := 0; i+1 < len(node.Content); i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		value := node.Content[i+1]

		switch key {
		case "direction":
			dir, ok := parseDirection(value.Value)
			if !ok {
				return nil, fmt.Errorf("unknown direction %q", value.Value)
			}
			table.Direction = dir
		case "prefix_ago", "prefixAgo":
			affix, err := decodeAffix(key, value)
			if err != nil {
				return nil, err
			}
			table.PrefixAgo = affix
		case "suffix_ago", "suffixAgo":
			affix, err := decodeAffix(key, value)
			if err != nil {
				return nil, err
			}
			table.SuffixAgo = affix
		case "prefix_from_now", "prefixFromNow":
			affix, err := decodeAffix(key, value)
			if err != nil {
				return nil, err
			}
			table.PrefixFromNow = affix
		case "suffix_from_now", "suffixFromNow":
			affix, err := decodeAffix(key, value)
			if err != nil {
				return nil, err
			}
			table.SuffixFromNow = affix
		case "numbers":
			var numbers []string
			if err := value.Decode(&numbers); err != nil {
				return nil, fmt.Errorf("numbers: %w", err)
			}
			table.Numbers = numbers
		default:
			unit, ok := parseUnit(key)
			if !ok {
				return nil, fmt.Errorf("unknown key %q", key)
			}
			entry, err := decodeEntry(value)
			if err != nil {
				return nil, fmt.Errorf("%s: %w", unit, err)
			}
			if !entry.IsZero() {
				table.Units[unit] = entry
			}
		}
	}

	return table, nil
}

func decodeAffix(key string, node *yaml.Node) (Affix, error) {
	if node.Kind != yaml.ScalarNode {
		return Affix{}, fmt.Errorf("%s must be a string, got %s", key, nodeKindName(node.Kind))
	}
	if node.Tag == "!!null" {
		return Affix{}, nil
	}
	return AffixText(node.Value), nil
}

func decodeEntry(node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return Entry{}, nil
		}
		return Text(node.Value), nil
	case yaml.MappingNode:
		forms := make([]RangeForm, 0, len(node.Content)/2)
		for i := 0; i+1 < len(node.Content); i += 2 {
			template := node.Content[i+1]
			if template.Kind != yaml.ScalarNode {
				return Entry{}, fmt.Errorf("range form %q must be a string, got %s", node.Content[i].Value, nodeKindName(template.Kind))
			}
			forms = append(forms, RangeForm{Spec: node.Content[i].Value, Template: template.Value})
		}
		return Ranges(forms...)
	default:
		return Entry{}, fmt.Errorf("unsupported entry of kind %s", nodeKindName(node.Kind))
	}
}

func mergeTables(dst, src Tables) {
	for locale, table := range src {
		target := dst[locale]
		if target == nil {
			dst[locale] = table
			continue
		}

		if table.Direction != "" {
			target.Direction = table.Direction
		}
		if !table.PrefixAgo.IsZero() {
			target.PrefixAgo = table.PrefixAgo
		}
		if !table.SuffixAgo.IsZero() {
			target.SuffixAgo = table.SuffixAgo
		}
		if !table.PrefixFromNow.IsZero() {
			target.PrefixFromNow = table.PrefixFromNow
		}
		if !table.SuffixFromNow.IsZero() {
			target.SuffixFromNow = table.SuffixFromNow
		}
		if len(table.Numbers) > 0 {
			target.Numbers = table.Numbers
		}
		for unit, entry := range table.Units {
			target.Units[unit] = entry
		}
	}
}
