package main

import "testing"

func TestStripCPF(t *testing.T) {
	cases := map[string]string{
		"111.444.777-35": "11144477735",
		"111 444 777 35": "11144477735",
		"11144477735":    "11144477735",
		"abc":            "",
	}

	for input, expected := range cases {
		if got := StripCPF(input); got != expected {
			t.Errorf("StripCPF(%q) = %q, expected %q", input, got, expected)
		}
	}
}

func TestIsValidCPF(t *testing.T) {
	valid := []string{
		"11144477735",
		"111.444.777-35",
		"529.982.247-25",
	}
	for _, doc := range valid {
		if !IsValidCPF(doc) {
			t.Errorf("expected %q to be valid", doc)
		}
	}

	// Dígito verificador errado, sequências repetidas, comprimento errado
	invalid := []string{
		"",
		"123",
		"11144477734",
		"11111111111",
		"00000000000",
		"111444777350",
		"111.444.777-3X",
	}
	for _, doc := range invalid {
		if IsValidCPF(doc) {
			t.Errorf("expected %q to be invalid", doc)
		}
	}
}
