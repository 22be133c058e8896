package entities

import "gorm.io/datatypes"

// JSONColumn wraps a raw JSON document for a jsonb column, defaulting empty
// input to an empty object so the column constraint holds.
func JSONColumn(raw string) datatypes.JSON {
	if raw == "" {
		return datatypes.JSON("{}")
	}
	return datatypes.JSON(raw)
}
