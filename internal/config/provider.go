package config

// Provider wraps configuration operations behind a value type that
// action handlers can hold.
type Provider struct{}

// NewProvider returns a stateless Provider.
func NewProvider() *Provider {
	return &Provider{}
}

// Get returns the value for a configuration key.
func (p *Provider) Get(key string) (string, bool) {
	return Get(key)
}

// GetAll returns all configuration values.
func (p *Provider) GetAll() (map[string]string, error) {
	return GetAll()
}

// Set writes a configuration value under the config file lock.
func (p *Provider) Set(key, value string) error {
	return p.rewrite(func(lines []string) []string {
		out, _ := Set(lines, key, value)
		return out
	})
}

// Unset removes a configuration value under the config file lock.
func (p *Provider) Unset(key string) error {
	return p.rewrite(func(lines []string) []string {
		out, _ := Unset(lines, key)
		return out
	})
}

// rewrite applies edit to the current config lines and persists the
// result, all while holding the config file lock.
func (p *Provider) rewrite(edit func([]string) []string) error {
	return WithLock(func() error {
		lines, err := ReadLines()
		if err != nil {
			return err
		}
		return WriteLines(edit(lines))
	})
}
