package mail_fx

import (
	"log"
	"os"
	"strconv"

	"go.uber.org/fx"

	"cruisy/internal/services"
)

var Module = fx.Provide(provideMailService)

func provideMailService() services.IMailService {

	host := os.Getenv("SMTP_HOST")
	if host == "" {
		log.Println("SMTP_HOST not set, checklist email delivery disabled")
		return services.NewNoopMailService()
	}

	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil {
		port = 587 // 587 for STARTTLS; use 465 with UseSSL=true for SMTPS
	}

	cfg := services.SMTPConfig{
		Host:       host,
		Port:       port,
		Username:   os.Getenv("SMTP_USERNAME"),
		Password:   os.Getenv("SMTP_PASSWORD"), // use app password if 2FA is enabled
		From:       os.Getenv("SMTP_FROM"),
		FromName:   "Cruisy Travel",
		UseSSL:     port == 465,
		RequireTLS: true,
	}

	return services.NewSMTPMailService(cfg)
}
