package enums

import "fmt"

// PaymentMethod is the forma de pagamento chosen at checkout. Payments settle
// offline (on delivery or at the counter), so the value is informational.
type PaymentMethod string

const (
	PaymentMethodCash       PaymentMethod = "Dinheiro"
	PaymentMethodCredit     PaymentMethod = "Credito"
	PaymentMethodDebit      PaymentMethod = "Debito"
	PaymentMethodPix        PaymentMethod = "Pix"
	PaymentMethodMealCard   PaymentMethod = "Vale refeicao"
	PaymentMethodFoodCard   PaymentMethod = "Alimentacao"
)

var validPaymentMethods = []PaymentMethod{
	PaymentMethodCash,
	PaymentMethodCredit,
	PaymentMethodDebit,
	PaymentMethodPix,
	PaymentMethodMealCard,
	PaymentMethodFoodCard,
}

func (p PaymentMethod) String() string {
	return string(p)
}

func (p PaymentMethod) IsValid() bool {
	for _, candidate := range validPaymentMethods {
		if candidate == p {
			return true
		}
	}
	return false
}

func ParsePaymentMethod(value string) (PaymentMethod, error) {
	for _, candidate := range validPaymentMethods {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid payment method %q", value)
}
