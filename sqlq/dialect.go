package sqlq

import (
	"encoding/hex"
	"log/slog"
	"strconv"
	"strings"
	"time"
)

// SQLite quotes identifiers and literals for SQLite backends. Booleans
// render as 1/0 and byte slices as X'..' blob literals.
type SQLite struct{}

// QuoteIdentifier implements [Quoter].
func (SQLite) QuoteIdentifier(name string) (string, error) {
	return quoteIdent(name), nil
}

// QuoteValue implements [Quoter].
func (SQLite) QuoteValue(v any) (string, error) {
	switch val := v.(type) {
	case bool:
		if val {
			return "1", nil
		}

		return "0", nil

	case []byte:
		return "X'" + strings.ToUpper(hex.EncodeToString(val)) + "'", nil

	default:
		return quoteLiteral(v)
	}
}

// ANSI quotes identifiers and literals per the SQL standard. Booleans
// render as TRUE/FALSE.
type ANSI struct{}

// QuoteIdentifier implements [Quoter].
func (ANSI) QuoteIdentifier(name string) (string, error) {
	return quoteIdent(name), nil
}

// QuoteValue implements [Quoter].
func (ANSI) QuoteValue(v any) (string, error) {
	if val, ok := v.(bool); ok {
		if val {
			return "TRUE", nil
		}

		return "FALSE", nil
	}

	return quoteLiteral(v)
}

// quoteIdent double-quotes an identifier, doubling embedded quotes.
func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// quoteLiteral renders the literal forms shared by all dialects. Types
// with no SQL literal form return [ErrQuote]: that is a template/value
// mismatch the caller must fix, not a recoverable condition.
func quoteLiteral(v any) (string, error) {
	switch val := v.(type) {
	case nil:
		return "NULL", nil

	case string:
		return "'" + strings.ReplaceAll(val, "'", "''") + "'", nil

	case int:
		return strconv.Itoa(val), nil

	case int8, int16, int32:
		return strconv.FormatInt(toInt64(val), 10), nil

	case int64:
		return strconv.FormatInt(val, 10), nil

	case uint, uint8, uint16, uint32, uint64:
		return strconv.FormatUint(toUint64(val), 10), nil

	case float32:
		return strconv.FormatFloat(float64(val), 'g', -1, 32), nil

	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64), nil

	case time.Time:
		return "'" + val.UTC().Format("2006-01-02 15:04:05") + "'", nil

	case Fragment:
		return string(val), nil

	default:
		return "", ErrQuote.With(slog.Any("value", v))
	}
}

func toInt64(v any) int64 {
	switch val := v.(type) {
	case int8:
		return int64(val)
	case int16:
		return int64(val)
	case int32:
		return int64(val)
	default:
		return 0
	}
}

func toUint64(v any) uint64 {
	switch val := v.(type) {
	case uint:
		return uint64(val)
	case uint8:
		return uint64(val)
	case uint16:
		return uint64(val)
	case uint32:
		return uint64(val)
	case uint64:
		return val
	default:
		return 0
	}
}
