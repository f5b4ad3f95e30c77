package utils

import (
	"encoding/json"

	"gorm.io/datatypes"
)

// ToJSONList converts a string slice into the JSON column value used for
// array fields. A nil slice becomes an empty JSON array, never null.
func ToJSONList(values []string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	raw, err := json.Marshal(values)
	if err != nil {
		return datatypes.JSON([]byte("[]"))
	}
	return datatypes.JSON(raw)
}
