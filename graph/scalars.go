package graph

import (
	"encoding/json"
	"fmt"
	"time"
)

// DateTime is the custom scalar backing orderDate, encoded as RFC 3339.
type DateTime struct {
	time.Time
}

// ImplementsGraphQLType maps DateTime onto the schema's scalar of the
// same name.
func (DateTime) ImplementsGraphQLType(name string) bool {
	return name == "DateTime"
}

// UnmarshalGraphQL decodes a DateTime from a query variable or literal.
func (d *DateTime) UnmarshalGraphQL(input interface{}) error {
	switch v := input.(type) {
	case time.Time:
		d.Time = v
		return nil
	case string:
		t, err := time.Parse(time.RFC3339, v)
		if err != nil {
			return fmt.Errorf("invalid DateTime %q: %w", v, err)
		}
		d.Time = t
		return nil
	default:
		return fmt.Errorf("wrong type for DateTime: %T", input)
	}
}

// MarshalJSON encodes the DateTime for a response.
func (d DateTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.Time.Format(time.RFC3339))
}
