// Package jsonmap provides a string-to-string map stored as a jsonb column.
// Used for message reactions and poll votes (user id -> value).
package jsonmap

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

type Map map[string]string

func (m Map) Value() (driver.Value, error) {
	if m == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(m)
}

func (m *Map) Scan(src any) error {
	if src == nil {
		*m = Map{}
		return nil
	}

	var b []byte
	switch v := src.(type) {
	case []byte:
		b = v
	case string:
		b = []byte(v)
	default:
		return fmt.Errorf("jsonmap: cannot scan %T", src)
	}

	if len(b) == 0 {
		*m = Map{}
		return nil
	}
	return json.Unmarshal(b, m)
}
