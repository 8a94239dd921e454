package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// Address is the delivery address captured at checkout, persisted as jsonb on
// the pedidos row. Field names match the storefront form.
type Address struct {
	Street       string `json:"rua" validate:"required,min=3,max=200"`
	Number       string `json:"numero" validate:"required,max=10"`
	Neighborhood string `json:"bairro" validate:"required,min=3,max=100"`
	City         string `json:"cidade" validate:"required,min=3,max=100"`
	PostalCode   string `json:"cep" validate:"required,len=8,numeric"`
}

// Value marshals the address into its jsonb representation.
func (a Address) Value() (driver.Value, error) {
	if strings.TrimSpace(a.Street) == "" {
		return nil, fmt.Errorf("address: missing rua")
	}
	return json.Marshal(a)
}

// Scan decodes the jsonb column back into the struct.
func (a *Address) Scan(value interface{}) error {
	if value == nil {
		*a = Address{}
		return nil
	}

	switch raw := value.(type) {
	case []byte:
		return json.Unmarshal(raw, a)
	case string:
		return json.Unmarshal([]byte(raw), a)
	default:
		return fmt.Errorf("address: unsupported scan type %T", value)
	}
}
