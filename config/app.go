package config

type App struct {
	Port          string `env:"APP_PORT" default:"8080"`
	JWTSecret     string `env:"JWT_SECRET" default:"local_dev_secret"`
	AdminEmail    string `env:"ADMIN_EMAIL" default:"librarian@lendingdesk.local"`
	AdminPassword string `env:"ADMIN_PASSWORD,required"`
	Env           string `env:"APP_ENV" default:"dev"`
}
