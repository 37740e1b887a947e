package broker

type Config struct {
	URI        string
	StreamName string `yaml:"stream_name"`
	GroupName  string `yaml:"group_name"`
}

type PublisherConfig struct {
	Timeout int `yaml:"timeout_in_ms"`
	// MaxLen caps the stream length approximately; zero keeps every entry.
	MaxLen int64 `yaml:"max_len"`
}
