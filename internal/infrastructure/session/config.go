package session

type Config struct {
	Secret     string
	CookieName string `yaml:"cookie_name"`
	UserIDKey  string `yaml:"user_id_key"`
}
