package sqlq

import (
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/weftio/weft/eval"
)

func TestRender_Quoting(t *testing.T) {
	ctx := eval.NewContext(map[string]any{
		"tbl":     "users",
		"name":    "O'Brien",
		"age":     42,
		"score":   1.5,
		"active":  true,
		"nothing": nil,
		"ids":     []any{1, 2, 3},
	})

	tests := []struct {
		name  string
		parts []string
		want  Fragment
	}{
		{
			name:  "string value quoted with doubling",
			parts: []string{"SELECT * FROM t WHERE name = {name}"},
			want:  "SELECT * FROM t WHERE name = 'O''Brien'",
		},
		{
			name:  "numbers unquoted",
			parts: []string{"WHERE age = {age} AND score > {score}"},
			want:  "WHERE age = 42 AND score > 1.5",
		},
		{
			name:  "identifier quoting via backticks",
			parts: []string{"SELECT * FROM {`tbl`}"},
			want:  `SELECT * FROM "users"`,
		},
		{
			name:  "collapse for IN list",
			parts: []string{"WHERE id IN ({ids*})"},
			want:  "WHERE id IN (1, 2, 3)",
		},
		{
			name:  "nil is NULL",
			parts: []string{"SET x = {nothing}"},
			want:  "SET x = NULL",
		},
		{
			name:  "boolean sqlite form",
			parts: []string{"WHERE active = {active}"},
			want:  "WHERE active = 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Render(tt.parts, ctx, SQLite{})
			if err != nil {
				t.Fatalf("render error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRender_FragmentSplicesVerbatim(t *testing.T) {
	ctx := eval.NewContext(map[string]any{"min": 10})

	where, err := Render([]string{"WHERE n >= {min}"}, ctx, SQLite{})
	if err != nil {
		t.Fatalf("inner render error: %v", err)
	}

	outer, err := Render([]string{"SELECT * FROM t {cond}"},
		eval.NewContext(map[string]any{"cond": where}), SQLite{})
	if err != nil {
		t.Fatalf("outer render error: %v", err)
	}

	if outer != "SELECT * FROM t WHERE n >= 10" {
		t.Errorf("expected verbatim splice, got %q", outer)
	}
}

func TestRender_CollapseSplicesFragments(t *testing.T) {
	frags := []any{Fragment("a = 1"), Fragment("b = 2")}

	got, err := Render([]string{"WHERE {conds*}"},
		eval.NewContext(map[string]any{"conds": frags}), SQLite{})
	if err != nil {
		t.Fatalf("render error: %v", err)
	}

	if got != "WHERE a = 1, b = 2" {
		t.Errorf("expected fragments joined unquoted, got %q", got)
	}
}

func TestRender_UnsupportedType(t *testing.T) {
	_, err := Render([]string{"VALUES ({v})"},
		eval.NewContext(map[string]any{"v": struct{ X int }{1}}), SQLite{})
	if err == nil {
		t.Fatal("expected quoting error")
	}

	if !errors.Is(err, ErrQuote) {
		t.Errorf("expected ErrQuote, got %v", err)
	}
}

func TestQuoteValue_Dialects(t *testing.T) {
	when := time.Date(2026, 8, 23, 12, 30, 0, 0, time.UTC)

	tests := []struct {
		name string
		q    Quoter
		v    any
		want string
	}{
		{"sqlite true", SQLite{}, true, "1"},
		{"sqlite false", SQLite{}, false, "0"},
		{"sqlite blob", SQLite{}, []byte{0xDE, 0xAD}, "X'DEAD'"},
		{"ansi true", ANSI{}, true, "TRUE"},
		{"ansi false", ANSI{}, false, "FALSE"},
		{"shared nil", ANSI{}, nil, "NULL"},
		{"shared string", ANSI{}, "it's", "'it''s'"},
		{"shared int64", SQLite{}, int64(-5), "-5"},
		{"shared time", SQLite{}, when, "'2026-08-23 12:30:00'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.q.QuoteValue(tt.v)
			if err != nil {
				t.Fatalf("quote error: %v", err)
			}

			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestQuoteIdentifier(t *testing.T) {
	got, err := SQLite{}.QuoteIdentifier(`weird"name`)
	if err != nil {
		t.Fatalf("quote error: %v", err)
	}

	if got != `"weird""name"` {
		t.Errorf("expected embedded quote doubling, got %q", got)
	}
}

// TestRender_ExecutesAgainstSQLite renders a query and runs it against an
// in-memory database to prove the quoted output is valid SQL.
func TestRender_ExecutesAgainstSQLite(t *testing.T) {
	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	defer db.Close()

	setup := []string{
		`CREATE TABLE users (id INTEGER PRIMARY KEY, name TEXT)`,
		`INSERT INTO users (id, name) VALUES (1, 'ada'), (2, 'grace'), (3, 'o''brien')`,
	}

	for _, stmt := range setup {
		_, err := db.Exec(stmt)
		require.NoError(t, err)
	}

	ctx := eval.NewContext(map[string]any{
		"tbl":  "users",
		"who":  "o'brien",
		"keep": []any{2, 3},
	})

	frag, err := Render([]string{
		"SELECT count(*) FROM {`tbl`} WHERE name = {who} AND id IN ({keep*})",
	}, ctx, SQLite{})
	require.NoError(t, err)

	var count int
	require.NoError(t, db.QueryRow(string(frag)).Scan(&count))
	require.Equal(t, 1, count)
}
