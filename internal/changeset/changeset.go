package changeset

import (
	"fmt"
	"strconv"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// NotSet adalah sentinel untuk nilai kosong pada tampilan audit.
const NotSet = "Not set"

// Kind memilih strategi equality dan formatting per field,
// bukan pattern-matching nama field.
type Kind int

const (
	KindString Kind = iota
	KindDate
	KindNumber
	KindCurrency
	KindEnum
)

// Field mendeskripsikan satu field yang ikut dibandingkan.
type Field struct {
	Name       string
	Label      string
	Kind       Kind
	EnumLabels map[string]string // hanya untuk KindEnum
}

// Snapshot adalah potret nilai field pada satu titik waktu.
// Key = Field.Name. Nilai kosong boleh absen atau nil.
type Snapshot map[string]any

// Change adalah satu baris perbedaan siap tampil.
type Change struct {
	Field string `json:"field"`
	Label string `json:"label"`
	From  string `json:"from"`
	To    string `json:"to"`
}

// HasUnsavedChanges melaporkan apakah ada field pada fields yang berbeda
// antara original dan current. Berhenti pada mismatch pertama.
func HasUnsavedChanges(original, current Snapshot, fields []Field) bool {
	for _, f := range fields {
		if !equal(f, original[f.Name], current[f.Name]) {
			return true
		}
	}
	return false
}

// FormatChanges menghasilkan seluruh perbedaan antara original dan updated,
// satu entry per field yang berubah, berurutan sesuai fields.
func FormatChanges(original, updated Snapshot, fields []Field) []Change {
	changes := make([]Change, 0)
	for _, f := range fields {
		from, to := original[f.Name], updated[f.Name]
		if equal(f, from, to) {
			continue
		}
		changes = append(changes, Change{
			Field: f.Name,
			Label: f.Label,
			From:  display(f, from),
			To:    display(f, to),
		})
	}
	return changes
}

func equal(f Field, a, b any) bool {
	switch f.Kind {
	case KindDate:
		ta, okA := parseDate(a)
		tb, okB := parseDate(b)
		if okA != okB {
			return false
		}
		if !okA {
			// keduanya bukan tanggal valid; bandingkan apa adanya
			return stringify(a) == stringify(b)
		}
		return ta.Equal(tb)
	case KindNumber, KindCurrency:
		na, okA := toFloat(a)
		nb, okB := toFloat(b)
		if okA != okB {
			return false
		}
		if !okA {
			return stringify(a) == stringify(b)
		}
		return na == nb
	default:
		return stringify(a) == stringify(b)
	}
}

func display(f Field, v any) string {
	if isEmpty(v) {
		return NotSet
	}

	switch f.Kind {
	case KindDate:
		if t, ok := parseDate(v); ok {
			return t.Format("02 Jan 2006")
		}
	case KindCurrency:
		if n, ok := toFloat(v); ok {
			p := message.NewPrinter(language.Indonesian)
			return p.Sprintf("Rp %.0f", n)
		}
	case KindNumber:
		if n, ok := toFloat(v); ok {
			return strconv.FormatFloat(n, 'f', -1, 64)
		}
	case KindEnum:
		s := stringify(v)
		if label, ok := f.EnumLabels[s]; ok {
			return label
		}
		return s
	}

	return stringify(v)
}

func isEmpty(v any) bool {
	if v == nil {
		return true
	}
	switch x := v.(type) {
	case string:
		return x == ""
	case *string:
		return x == nil || *x == ""
	case *int64:
		return x == nil
	case *float64:
		return x == nil
	case *time.Time:
		return x == nil
	}
	return false
}

func parseDate(v any) (time.Time, bool) {
	switch x := v.(type) {
	case nil:
		return time.Time{}, false
	case time.Time:
		return x, true
	case *time.Time:
		if x == nil {
			return time.Time{}, false
		}
		return *x, true
	case string:
		return parseDateString(x)
	case *string:
		if x == nil {
			return time.Time{}, false
		}
		return parseDateString(*x)
	}
	return time.Time{}, false
}

func parseDateString(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

func toFloat(v any) (float64, bool) {
	switch x := v.(type) {
	case nil:
		return 0, false
	case int:
		return float64(x), true
	case int64:
		return float64(x), true
	case *int64:
		if x == nil {
			return 0, false
		}
		return float64(*x), true
	case float64:
		return x, true
	case *float64:
		if x == nil {
			return 0, false
		}
		return *x, true
	case string:
		n, err := strconv.ParseFloat(x, 64)
		return n, err == nil
	}
	return 0, false
}

func stringify(v any) string {
	if isEmpty(v) {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case *string:
		return *x
	case *int64:
		return strconv.FormatInt(*x, 10)
	case *float64:
		return strconv.FormatFloat(*x, 'f', -1, 64)
	case time.Time:
		return x.Format("2006-01-02")
	case *time.Time:
		return x.Format("2006-01-02")
	}
	return fmt.Sprintf("%v", v)
}
