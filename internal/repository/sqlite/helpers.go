package sqlite

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// encodeJSON marshals a nested sub-document for storage in a TEXT column.
// Nil and empty values are stored as SQL-friendly "null".
func encodeJSON(v any) (string, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("encode document field: %w", err)
	}
	return string(data), nil
}

// decodeJSON unmarshals a TEXT column back into a nested sub-document.
// Empty columns leave the destination untouched.
func decodeJSON(raw string, dst any) error {
	if raw == "" || raw == "null" {
		return nil
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		return fmt.Errorf("decode document field: %w", err)
	}
	return nil
}

func nullTime(t *time.Time) any {
	if t == nil {
		return nil
	}
	return t.UTC()
}

// likePattern builds a case-insensitive substring match argument for
// `LOWER(col) LIKE ?` clauses, escaping LIKE metacharacters.
func likePattern(search string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(strings.ToLower(search))
	return "%" + escaped + "%"
}

func normalizePage(page, limit, defaultLimit int) (int, int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	offset := (page - 1) * limit
	return page, limit, offset
}
