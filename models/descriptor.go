package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
	"sort"
	"strings"
	"sync"

	"github.com/shopspring/decimal"
	"gorm.io/gorm/schema"
)

type FieldKind int

const (
	TextField FieldKind = iota
	DateField
	NumberField
)

// Field maps one provider attribute onto one column of a statement table.
type Field struct {
	// Key is the field name used by the HTTP API and by updates.
	Key string
	// Column is the database column.
	Column string
	// Sources are the provider attribute names, in order of preference.
	Sources []string
	Kind    FieldKind
	// Required fields must be present in provider payloads.
	Required bool
	// Recommended fields are accepted when missing, with a data-quality warning.
	Recommended bool
}

// Descriptor describes the shape of a statement model: the fields it maps from
// provider payloads, which of them are required, and which columns callers may
// sort and filter on. It is derived from the model's struct tags:
//
//	Revenue decimal.Decimal `json:"revenue" fmp:",required"`
//	FilingDate *Date `json:"filingDate" fmp:"fillingDate|filingDate"`
//
// The fmp tag lists provider names separated by "|" (the JSON name when
// empty), optionally followed by ",required" or ",recommended".
type Descriptor struct {
	Table  string
	Fields []Field

	byKey map[string]int
}

var (
	decimalType     = reflect.TypeOf(decimal.Decimal{})
	nullDecimalType = reflect.TypeOf(decimal.NullDecimal{})
	dateType        = reflect.TypeOf(Date{})
)

// Describe builds the descriptor of a gorm model.
func Describe(model any) (*Descriptor, error) {
	s, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
	if err != nil {
		return nil, err
	}

	d := &Descriptor{
		Table: s.Table,
		byKey: make(map[string]int),
	}

	for _, sf := range s.Fields {
		if sf.PrimaryKey || sf.AutoCreateTime != 0 || sf.AutoUpdateTime != 0 || sf.DBName == "" {
			continue
		}

		key, _, _ := strings.Cut(sf.Tag.Get("json"), ",")
		if key == "" || key == "-" {
			continue
		}

		f := Field{Key: key, Column: sf.DBName}

		switch t := sf.IndirectFieldType; {
		case t == decimalType || t == nullDecimalType:
			f.Kind = NumberField
		case t == dateType:
			f.Kind = DateField
		case t.Kind() == reflect.String:
			f.Kind = TextField
		default:
			return nil, fmt.Errorf("%s.%s: unsupported field type %v", s.Name, sf.Name, t)
		}

		sources, options, _ := strings.Cut(sf.Tag.Get("fmp"), ",")
		if sources == "" {
			f.Sources = []string{key}
		} else {
			f.Sources = strings.Split(sources, "|")
		}

		switch options {
		case "required":
			f.Required = true
		case "recommended":
			f.Recommended = true
		}

		d.byKey[key] = len(d.Fields)
		d.Fields = append(d.Fields, f)
	}

	return d, nil
}

// MustDescribe is like Describe but panics on malformed models.
func MustDescribe(model any) *Descriptor {
	d, err := Describe(model)
	if err != nil {
		panic(err)
	}

	return d
}

// Field returns the field with the given API key.
func (d *Descriptor) Field(key string) (Field, bool) {
	i, ok := d.byKey[key]
	if !ok {
		return Field{}, false
	}

	return d.Fields[i], true
}

// RequiredKeys returns the provider names of required fields.
func (d *Descriptor) RequiredKeys() []string {
	var keys []string
	for _, f := range d.Fields {
		if f.Required {
			keys = append(keys, f.Sources[0])
		}
	}

	return keys
}

// NumberKeys returns the API keys of numeric fields, sorted.
func (d *Descriptor) NumberKeys() []string {
	var keys []string
	for _, f := range d.Fields {
		if f.Kind == NumberField {
			keys = append(keys, f.Key)
		}
	}
	sort.Strings(keys)

	return keys
}

func (f Field) lookup(payload map[string]json.RawMessage) (json.RawMessage, bool) {
	for _, source := range f.Sources {
		v, ok := payload[source]
		if !ok {
			continue
		}

		v = bytes.TrimSpace(v)
		if len(v) == 0 || bytes.Equal(v, []byte("null")) || bytes.Equal(v, []byte(`""`)) {
			continue
		}

		// Identifiers such as cik or calendarYear sometimes arrive as numbers.
		if f.Kind == TextField && v[0] != '"' {
			v, _ = json.Marshal(string(v))
		}

		return v, true
	}

	return nil, false
}

// Decode maps a raw provider payload onto dest, a pointer to the described
// model. It fails with ErrMissingField before touching dest when a required
// field is absent. The returned warnings name recommended fields that were
// missing.
func (d *Descriptor) Decode(raw []byte, dest any) (warnings []string, err error) {
	var payload map[string]json.RawMessage
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, fmt.Errorf("%w: payload is not an object: %v", ErrInvalidFieldValue, err)
	}

	mapped := make(map[string]json.RawMessage, len(d.Fields))
	var missing []string
	for _, f := range d.Fields {
		v, ok := f.lookup(payload)
		if !ok {
			if f.Required {
				missing = append(missing, f.Sources[0])
			} else if f.Recommended {
				warnings = append(warnings, f.Sources[0])
			}
			continue
		}

		mapped[f.Key] = v
	}

	if len(missing) > 0 {
		return nil, fmt.Errorf("%w: %s", ErrMissingField, strings.Join(missing, ", "))
	}

	b, err := json.Marshal(mapped)
	if err != nil {
		return nil, err
	}

	if err := json.Unmarshal(b, dest); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidFieldValue, err)
	}

	return warnings, nil
}

// Columns converts an update keyed by API field names into column values.
// Unknown keys and values that do not fit the field are rejected.
func (d *Descriptor) Columns(fields map[string]any) (map[string]any, error) {
	columns := make(map[string]any, len(fields))
	for key, value := range fields {
		f, ok := d.Field(key)
		if !ok {
			return nil, fmt.Errorf("%w: %s", ErrUnknownField, key)
		}

		v, err := f.coerce(value)
		if err != nil {
			return nil, err
		}

		columns[f.Column] = v
	}

	return columns, nil
}

func (f Field) coerce(value any) (any, error) {
	invalid := func() error {
		return fmt.Errorf("%w: %s", ErrInvalidFieldValue, f.Key)
	}

	if value == nil {
		if f.Required {
			return nil, invalid()
		}
		if f.Kind == TextField {
			return "", nil
		}
		return nil, nil
	}

	b, err := json.Marshal(value)
	if err != nil {
		return nil, invalid()
	}

	switch f.Kind {
	case NumberField:
		var n decimal.NullDecimal
		if err := json.Unmarshal(b, &n); err != nil || !n.Valid {
			return nil, invalid()
		}
		return n.Decimal, nil
	case DateField:
		var date Date
		if err := json.Unmarshal(b, &date); err != nil || date.IsZero() {
			return nil, invalid()
		}
		return date, nil
	default:
		s, ok := value.(string)
		if !ok || (f.Required && s == "") {
			return nil, invalid()
		}
		return s, nil
	}
}

// SortColumn resolves a sort key to its column. The empty key resolves to the
// empty column.
func (d *Descriptor) SortColumn(key string) (string, error) {
	switch key {
	case "":
		return "", nil
	case "id":
		return "id", nil
	}

	f, ok := d.Field(key)
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrInvalidSortField, key)
	}

	return f.Column, nil
}

// NumberColumn resolves the key of a numeric field to its column.
func (d *Descriptor) NumberColumn(key string) (string, error) {
	f, ok := d.Field(key)
	if !ok || f.Kind != NumberField {
		return "", fmt.Errorf("%w: %s", ErrUnknownField, key)
	}

	return f.Column, nil
}
