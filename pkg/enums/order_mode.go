package enums

import "fmt"

// OrderMode distinguishes delivery orders from counter pickup.
type OrderMode string

const (
	OrderModeDelivery OrderMode = "ENTREGA"
	OrderModePickup   OrderMode = "RETIRADA"
)

var validOrderModes = []OrderMode{
	OrderModeDelivery,
	OrderModePickup,
}

func (o OrderMode) String() string {
	return string(o)
}

func (o OrderMode) IsValid() bool {
	for _, candidate := range validOrderModes {
		if candidate == o {
			return true
		}
	}
	return false
}

func ParseOrderMode(value string) (OrderMode, error) {
	for _, candidate := range validOrderModes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid order mode %q", value)
}
