package backup

import (
	"context"
	"database/sql"
	"encoding/hex"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	_ "modernc.org/sqlite"
)

// Dump writes a SQL text rendition of the sqlite database at src to w:
// table definitions and their rows first, then indexes, triggers and
// views, all inside one transaction. The output reloads with `sqlite3
// new.db < dump.sql`.
func Dump(ctx context.Context, src string, w io.Writer) error {
	db, err := sql.Open("sqlite", "file:"+src+"?mode=ro")
	if err != nil {
		return fmt.Errorf("backup: open %s: %w", src, err)
	}
	defer db.Close()
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("backup: open %s: %w", src, err)
	}

	if _, err := io.WriteString(w, "BEGIN TRANSACTION;\n"); err != nil {
		return fmt.Errorf("backup: write dump: %w", err)
	}

	tables, err := schemaObjects(ctx, db, "type = 'table'")
	if err != nil {
		return err
	}
	for _, obj := range tables {
		if strings.HasPrefix(obj.name, "sqlite_") {
			continue
		}
		if _, err := fmt.Fprintf(w, "%s;\n", obj.sql); err != nil {
			return fmt.Errorf("backup: write dump: %w", err)
		}
		if err := dumpRows(ctx, db, obj.name, w); err != nil {
			return err
		}
	}

	rest, err := schemaObjects(ctx, db, "type IN ('index', 'trigger', 'view')")
	if err != nil {
		return err
	}
	for _, obj := range rest {
		if _, err := fmt.Fprintf(w, "%s;\n", obj.sql); err != nil {
			return fmt.Errorf("backup: write dump: %w", err)
		}
	}

	if _, err := io.WriteString(w, "COMMIT;\n"); err != nil {
		return fmt.Errorf("backup: write dump: %w", err)
	}
	return nil
}

type schemaObject struct {
	name string
	sql  string
}

// schemaObjects returns sqlite_master entries matching cond in creation
// (rowid) order, which keeps the dump deterministic and dependency-safe.
func schemaObjects(ctx context.Context, db *sql.DB, cond string) ([]schemaObject, error) {
	q := "SELECT name, sql FROM sqlite_master WHERE sql IS NOT NULL AND " + cond + " ORDER BY rowid"
	rows, err := db.QueryContext(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("backup: read schema: %w", err)
	}
	defer rows.Close()

	var objs []schemaObject
	for rows.Next() {
		var obj schemaObject
		if err := rows.Scan(&obj.name, &obj.sql); err != nil {
			return nil, fmt.Errorf("backup: read schema: %w", err)
		}
		objs = append(objs, obj)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("backup: read schema: %w", err)
	}
	return objs, nil
}

func dumpRows(ctx context.Context, db *sql.DB, table string, w io.Writer) error {
	rows, err := db.QueryContext(ctx, "SELECT * FROM "+quoteIdent(table))
	if err != nil {
		return fmt.Errorf("backup: read table %s: %w", table, err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return fmt.Errorf("backup: read table %s: %w", table, err)
	}
	values := make([]any, len(cols))
	ptrs := make([]any, len(cols))
	for i := range values {
		ptrs[i] = &values[i]
	}

	var b strings.Builder
	for rows.Next() {
		if err := rows.Scan(ptrs...); err != nil {
			return fmt.Errorf("backup: read table %s: %w", table, err)
		}
		b.Reset()
		b.WriteString("INSERT INTO ")
		b.WriteString(quoteIdent(table))
		b.WriteString(" VALUES(")
		for i, v := range values {
			if i > 0 {
				b.WriteByte(',')
			}
			b.WriteString(sqlLiteral(v))
		}
		b.WriteString(");\n")
		if _, err := io.WriteString(w, b.String()); err != nil {
			return fmt.Errorf("backup: write dump: %w", err)
		}
	}
	if err := rows.Err(); err != nil {
		return fmt.Errorf("backup: read table %s: %w", table, err)
	}
	return nil
}

func quoteIdent(name string) string {
	return `"` + strings.ReplaceAll(name, `"`, `""`) + `"`
}

// sqlLiteral renders a scanned value as a sqlite literal.
func sqlLiteral(v any) string {
	switch v := v.(type) {
	case nil:
		return "NULL"
	case int64:
		return strconv.FormatInt(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'g', -1, 64)
	case bool:
		if v {
			return "1"
		}
		return "0"
	case []byte:
		return "X'" + hex.EncodeToString(v) + "'"
	case string:
		return "'" + strings.ReplaceAll(v, "'", "''") + "'"
	case time.Time:
		return "'" + v.UTC().Format("2006-01-02 15:04:05") + "'"
	default:
		return "'" + strings.ReplaceAll(fmt.Sprint(v), "'", "''") + "'"
	}
}
