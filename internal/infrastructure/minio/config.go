package minio

type ClientConfig struct {
	AccessKey string
	SecretKey string
	Endpoint  string `yaml:"endpoint"`
	Secure    bool   `yaml:"secure"`
}

type UploaderConfig struct {
	Timeout int64  `yaml:"timeout_in_ms"`
	Bucket  string `yaml:"bucket"`
	// Folder prefixes every object name.
	Folder string `yaml:"folder"`
	// PublicURL is the base clients fetch objects from, e.g. https://cdn.example.com.
	PublicURL   string `yaml:"public_url"`
	MaxFileSize int64  `yaml:"max_file_size_in_bytes"`
}

type RemoverConfig struct {
	Timeout int64 `yaml:"timeout_in_ms"`
}
