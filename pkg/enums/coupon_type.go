package enums

import "fmt"

// CouponType selects how the coupon value is applied to the subtotal.
type CouponType string

const (
	CouponTypePercent     CouponType = "percentual"
	CouponTypeFixedAmount CouponType = "valor_fixo"
)

var validCouponTypes = []CouponType{
	CouponTypePercent,
	CouponTypeFixedAmount,
}

func (c CouponType) String() string {
	return string(c)
}

func (c CouponType) IsValid() bool {
	for _, candidate := range validCouponTypes {
		if candidate == c {
			return true
		}
	}
	return false
}

func ParseCouponType(value string) (CouponType, error) {
	for _, candidate := range validCouponTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid coupon type %q", value)
}
