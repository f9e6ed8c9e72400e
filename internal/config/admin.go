package config

// Admin holds the single shared credential pair protecting the admin
// endpoints. One pair for all operators; rotating it is a config change,
// not a code change.
type Admin struct {
	User     string `env:"ADMIN_USER,required"`
	Password string `env:"ADMIN_PASSWORD,required"`
}
