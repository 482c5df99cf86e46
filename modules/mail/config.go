package mail

import "time"

// Config keeps the variable names the contact page deployment already uses.
type Config struct {
	// Enabled gates every outgoing email.
	Enabled bool `env:"SEND_EMAIL_NOTIFICATIONS" envDefault:"false"`

	// SMTP account, also used as the sender address.
	User     string `env:"EMAIL_USER"`
	Password string `env:"EMAIL_PASSWORD"`

	Host string `env:"EMAIL_HOST" envDefault:"smtp.gmail.com"`
	Port int    `env:"EMAIL_PORT" envDefault:"587"`

	// AdminAddress receives new submission notifications, defaults to User.
	AdminAddress string `env:"ADMIN_EMAIL"`

	// Brand is the business name shown in confirmation emails.
	Brand string `env:"EMAIL_BRAND" envDefault:"Grace Bites"`

	SendTimeout time.Duration `env:"EMAIL_SEND_TIMEOUT" envDefault:"30s"`
}

func (c Config) HasCredentials() bool {
	return c.User != "" && c.Password != ""
}

func (c Config) AdminRecipient() string {
	if c.AdminAddress != "" {
		return c.AdminAddress
	}
	return c.User
}
