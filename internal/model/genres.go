package model

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Genres is the list of genre tags attached to a venue or artist.  It is
// persisted as a JSON array column and always encodes as `[]` rather than
// NULL when empty.
type Genres []string

// Value implements the driver.Valuer interface for Genres
func (g Genres) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	b, err := json.Marshal([]string(g))
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

// Scan implements the sql.Scanner interface for Genres
func (g *Genres) Scan(value any) error {
	if value == nil {
		*g = Genres{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return fmt.Errorf("cannot scan %T into Genres", value)
	}
	if len(bytes) == 0 {
		*g = Genres{}
		return nil
	}

	var out []string
	if err := json.Unmarshal(bytes, &out); err != nil {
		return fmt.Errorf("decode genres: %w", err)
	}
	if out == nil {
		out = []string{}
	}
	*g = out
	return nil
}
