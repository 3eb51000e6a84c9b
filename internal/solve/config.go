package solve

type Config struct {
	Input  string `yaml:"input"`
	Output string `yaml:"output"`
	// Workers is the number of lines solved concurrently. 1 solves in order.
	Workers int `yaml:"workers"`
	// BatchSize is the number of lines read ahead for the workers.
	BatchSize int `yaml:"batchSize"`
}

const (
	DefaultWorkers   = 1
	DefaultBatchSize = 256
)

func DefaultConfig() Config {
	return Config{}.WithDefaults()
}

// WithDefaults fills unset worker and batch settings.
func (c Config) WithDefaults() Config {
	if c.Workers <= 0 {
		c.Workers = DefaultWorkers
	}
	if c.BatchSize <= 0 {
		c.BatchSize = DefaultBatchSize
	}
	return c
}
