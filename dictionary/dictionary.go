// Package dictionary loads and queries named enum and bitmask tables used
// to render integer values as symbolic labels.
//
// A Dictionary is a process-wide, read-only resource: load every table
// once at startup from CSV, then look labels up by name. There is no
// reload operation.
package dictionary

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
	"strings"

	"github.com/h2gb/h2core/errs"
	"github.com/h2gb/h2core/internal/options"
)

// Dictionary holds named enum tables (integer -> label) and named bitmask
// tables (bit-index -> label).
type Dictionary struct {
	enums    map[string]map[uint64]string
	bitmasks map[string]map[uint64]string
	cfg      config
}

// New returns an empty Dictionary. Use LoadEnumCSV/LoadBitmaskCSV to
// populate it. By default, loading a table with a repeated key fails;
// pass WithAllowDuplicateKeys to relax that.
func New(opts ...Option) *Dictionary {
	cfg := config{}
	_ = options.Apply(&cfg, opts...) // NoError-wrapped options never fail

	return &Dictionary{
		enums:    make(map[string]map[uint64]string),
		bitmasks: make(map[string]map[uint64]string),
		cfg:      cfg,
	}
}

// parseTable reads a two-column, headerless CSV into a uint64->label map.
// keyLimit bounds the numeric column (bitmasks cap at 63); pass -1 for no
// limit (enums).
func parseTable(data string, keyLimit int64, dupCheck bool) (map[uint64]string, error) {
	r := csv.NewReader(strings.NewReader(data))
	r.FieldsPerRecord = -1

	out := make(map[uint64]string)

	for {
		record, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("%w: %v", errs.ErrBadCSV, err)
		}

		if len(record) != 2 {
			return nil, fmt.Errorf("%w: expected 2 columns, got %d", errs.ErrBadCSV, len(record))
		}

		key, err := strconv.ParseUint(strings.TrimSpace(record[0]), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%w: non-integer key %q", errs.ErrBadCSV, record[0])
		}

		if keyLimit >= 0 && key > uint64(keyLimit) { //nolint:gosec
			return nil, fmt.Errorf("%w: key %d exceeds limit %d", errs.ErrBadCSV, key, keyLimit)
		}

		if dupCheck {
			if _, exists := out[key]; exists {
				return nil, fmt.Errorf("%w: duplicate key %d", errs.ErrBadCSV, key)
			}
		}

		out[key] = record[1]
	}

	return out, nil
}

// LoadEnumCSV loads an enum table from CSV data: two columns, no header,
// first column a unique non-negative integer key, second column the label.
func (d *Dictionary) LoadEnumCSV(name, data string) error {
	table, err := parseTable(data, -1, !d.cfg.allowDuplicateKeys)
	if err != nil {
		return err
	}

	d.enums[name] = table

	return nil
}

// LoadBitmaskCSV loads a bitmask table from CSV data: two columns, no
// header, first column a unique bit-index in [0,63], second column the
// label.
func (d *Dictionary) LoadBitmaskCSV(name, data string) error {
	table, err := parseTable(data, 63, !d.cfg.allowDuplicateKeys)
	if err != nil {
		return err
	}

	d.bitmasks[name] = table

	return nil
}

// EnumExists reports whether an enum table with the given name is loaded.
func (d *Dictionary) EnumExists(name string) bool {
	_, ok := d.enums[name]
	return ok
}

// BitmaskExists reports whether a bitmask table with the given name is
// loaded.
func (d *Dictionary) BitmaskExists(name string) bool {
	_, ok := d.bitmasks[name]
	return ok
}

// EnumRender looks up value in the named enum table, returning
// "name::Label" on a hit or "name::Unknown_0xVALUE" on a miss.
func (d *Dictionary) EnumRender(name string, value uint64) (string, error) {
	table, ok := d.enums[name]
	if !ok {
		return "", fmt.Errorf("%w: enum %q", errs.ErrDictionaryMissing, name)
	}

	if label, ok := table[value]; ok {
		return name + "::" + label, nil
	}

	return fmt.Sprintf("%s::Unknown_0x%x", name, value), nil
}

// BitmaskRender decodes value against the named bitmask table and joins
// the result with " | ". Each bit that is set emits its label if known,
// or "Unknown_0xMASK" if not; each unset, named bit additionally emits
// "~Label" when includeNegatives is true. An empty result renders as
// "(n/a)".
func (d *Dictionary) BitmaskRender(name string, value uint64, includeNegatives bool) (string, error) {
	table, ok := d.bitmasks[name]
	if !ok {
		return "", fmt.Errorf("%w: bitmask %q", errs.ErrDictionaryMissing, name)
	}

	var parts []string

	for bit := uint(0); bit < 64; bit++ {
		mask := uint64(1) << bit
		isSet := value&mask == mask
		label, known := table[uint64(bit)]

		if !isSet && !known {
			continue
		}

		switch {
		case isSet && known:
			parts = append(parts, label)
		case isSet && !known:
			parts = append(parts, fmt.Sprintf("Unknown_0x%x", mask))
		case !isSet && known && includeNegatives:
			parts = append(parts, "~"+label)
		}
	}

	if len(parts) == 0 {
		return "(n/a)", nil
	}

	return strings.Join(parts, " | "), nil
}

// EnumNames returns the loaded enum table names in sorted order, useful
// for diagnostics and tests.
func (d *Dictionary) EnumNames() []string {
	names := make([]string, 0, len(d.enums))
	for name := range d.enums {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
