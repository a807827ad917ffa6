package main

import "time"

// BuildTransactionRequest transforma a intenção de doação no payload canônico
// do gateway. Quando o caller não informa o pagador, caem os dados padrão
// configurados no boot (comportamento legado).
func BuildTransactionRequest(req DonationRequest, defaultPayer Payer, now time.Time) (GatewayTransactionRequest, error) {
	if req.Amount <= 0 {
		return GatewayTransactionRequest{}, NewValidationError("amount", "must be a positive integer in centavos")
	}
	if req.Amount < MinDonationAmount {
		return GatewayTransactionRequest{}, NewValidationError("amount", "minimum donation is 500 centavos (R$5,00)")
	}

	payer := defaultPayer
	if req.Payer != nil {
		payer = *req.Payer
	}
	if payer.Name == "" {
		return GatewayTransactionRequest{}, NewValidationError("payer.name", "is required")
	}
	if payer.Email == "" {
		return GatewayTransactionRequest{}, NewValidationError("payer.email", "is required")
	}
	if !IsValidCPF(payer.Document) {
		return GatewayTransactionRequest{}, NewValidationError("payer.document", "invalid CPF")
	}

	title := "Doação"
	if req.CauseTitle != "" {
		title = "Doação - " + req.CauseTitle
	}

	return GatewayTransactionRequest{
		Amount:        req.Amount,
		Currency:      "BRL",
		PaymentMethod: "pix",
		Pix:           PixRequest{ExpiresIn: DefaultPixExpiresIn},
		Items: []LineItem{{
			Title:     title,
			UnitPrice: req.Amount,
			Quantity:  1,
			Tangible:  false,
		}},
		Customer: Customer{
			Name:  payer.Name,
			Email: payer.Email,
			Document: CustomerDocument{
				Type:   "cpf",
				Number: StripCPF(payer.Document),
			},
		},
		ExternalRef: NewExternalRef(req.CauseID, now),
	}, nil
}
