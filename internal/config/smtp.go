package config

// SMTP configures the operator-notification mailer. From is the
// authenticated sender, To is the operator mailbox that receives
// one message per placed order.
type SMTP struct {
	Host     string `env:"SMTP_HOST,required"`
	Port     int    `env:"SMTP_PORT" envDefault:"587"`
	Username string `env:"SMTP_USERNAME,required"`
	Password string `env:"SMTP_PASSWORD,required"`
	From     string `env:"SMTP_FROM,required"`
	To       string `env:"SMTP_TO,required"`
}
