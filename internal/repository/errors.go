// Package repository defines error types that are reused across multiple
// repositories. These sentinel values allow handlers to distinguish a
// missing row from other failures without inspecting driver errors.
package repository

import (
	"errors"
	"strings"
)

// ErrInvalidReference is returned when a write points at a venue or artist
// that does not exist (foreign key violation).
var ErrInvalidReference = errors.New("invalid reference")

// likePattern builds a case-insensitive substring pattern for LIKE.  The
// wildcard characters and the escape character itself are escaped so the
// term is matched literally.  Callers compare it against LOWER(name) under
// utf8mb4_bin so the match stays accent-sensitive (cafe never matches Café).
func likePattern(term string) string {
	r := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return "%" + strings.ToLower(r.Replace(term)) + "%"
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}

// rowScanner is satisfied by *sql.Row and *sql.Rows.
type rowScanner interface {
	Scan(dest ...any) error
}
