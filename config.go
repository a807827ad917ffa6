package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config é a configuração imutável do serviço, montada uma vez no boot
type Config struct {
	Port          string
	AllowedOrigin string

	GatewayBaseURL   string
	GatewayPublicKey string
	GatewaySecretKey string

	ProcessedFile string
	CausesFile    string
	DatabaseURL   string

	AnalyticsURL string

	DefaultPayer Payer
}

// LoadConfig carrega a configuração do ambiente (honrando .env quando
// presente) e valida o que é obrigatório. Chaves do gateway ausentes
// abortam o boot com erro, não com os.Exit espalhado.
func LoadConfig() (Config, error) {
	// .env é opcional; em produção as variáveis vêm do ambiente
	_ = godotenv.Load()

	cfg := Config{
		Port:             getEnv("PORT", "3000"),
		AllowedOrigin:    getEnv("ALLOWED_ORIGIN", "*"),
		GatewayBaseURL:   getEnv("GATEWAY_BASE_URL", "https://api.pagamento.com.br/v1"),
		GatewayPublicKey: os.Getenv("GATEWAY_PUBLIC_KEY"),
		GatewaySecretKey: os.Getenv("GATEWAY_SECRET_KEY"),
		ProcessedFile:    getEnv("PROCESSED_FILE", "data/processed.json"),
		CausesFile:       getEnv("CAUSES_FILE", "data/causas.json"),
		DatabaseURL:      os.Getenv("DATABASE_URL"),
		AnalyticsURL:     os.Getenv("ANALYTICS_URL"),
		DefaultPayer: Payer{
			Name:     getEnv("DEFAULT_PAYER_NAME", "Doador Anônimo"),
			Email:    getEnv("DEFAULT_PAYER_EMAIL", "doador@example.com"),
			Document: getEnv("DEFAULT_PAYER_DOCUMENT", "11144477735"),
		},
	}

	if cfg.GatewayPublicKey == "" || cfg.GatewaySecretKey == "" {
		return Config{}, fmt.Errorf("GATEWAY_PUBLIC_KEY and GATEWAY_SECRET_KEY are required")
	}
	if !IsValidCPF(cfg.DefaultPayer.Document) {
		return Config{}, fmt.Errorf("DEFAULT_PAYER_DOCUMENT is not a valid CPF")
	}

	return cfg, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
