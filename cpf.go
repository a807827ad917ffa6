package main

import "strings"

// StripCPF remove qualquer formatação (pontos, traço, espaços) do documento
func StripCPF(doc string) string {
	var b strings.Builder
	for _, r := range doc {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// IsValidCPF valida o documento pelo algoritmo de módulo 11 dos dois
// dígitos verificadores. Sequências com todos os dígitos iguais são
// inválidas mesmo quando o checksum fecha.
func IsValidCPF(doc string) bool {
	digits := StripCPF(doc)
	if len(digits) != 11 {
		return false
	}

	allEqual := true
	for i := 1; i < 11; i++ {
		if digits[i] != digits[0] {
			allEqual = false
			break
		}
	}
	if allEqual {
		return false
	}

	if int(digits[9]-'0') != cpfCheckDigit(digits, 9) {
		return false
	}
	return int(digits[10]-'0') == cpfCheckDigit(digits, 10)
}

// cpfCheckDigit calcula o dígito verificador sobre os primeiros n dígitos
func cpfCheckDigit(digits string, n int) int {
	sum := 0
	for i := 0; i < n; i++ {
		sum += int(digits[i]-'0') * (n + 1 - i)
	}
	rest := (sum * 10) % 11
	if rest == 10 {
		return 0
	}
	return rest
}
