package customers

import "strings"

// NormalizeCPF strips formatting characters, keeping only digits.
func NormalizeCPF(value string) string {
	var b strings.Builder
	for _, r := range value {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ValidCPF verifies the Brazilian CPF check digits. Input may be formatted
// (###.###.###-##) or digits only. Sequences of a single repeated digit are
// rejected even though their check digits compute.
func ValidCPF(value string) bool {
	cpf := NormalizeCPF(value)
	if len(cpf) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < len(cpf); i++ {
		if cpf[i] != cpf[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if digit(cpf, 9) != checkDigit(cpf, 9) {
		return false
	}
	return digit(cpf, 10) == checkDigit(cpf, 10)
}

func digit(cpf string, pos int) int {
	return int(cpf[pos] - '0')
}

// checkDigit computes the verifier for the first `length` digits using the
// standard mod-11 weighting.
func checkDigit(cpf string, length int) int {
	sum := 0
	for i := 0; i < length; i++ {
		sum += digit(cpf, i) * (length + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
