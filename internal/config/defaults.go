package config

// Key describes one configuration key for the default file template.
// HideIfEmpty keys are written commented out, as optional overrides.
type Key struct {
	Name        string
	HideIfEmpty bool
}

// Keys lists the visible configuration keys in the order they appear in
// a freshly created config file.
var Keys = []Key{
	{Name: "theme"},
	{Name: "history_limit"},
	{Name: "enable_log"},
	{Name: "log_level"},
	{Name: "color_success", HideIfEmpty: true},
	{Name: "color_error", HideIfEmpty: true},
	{Name: "color_info", HideIfEmpty: true},
	{Name: "color_muted", HideIfEmpty: true},
	{Name: "color_header", HideIfEmpty: true},
	{Name: "color_prompt", HideIfEmpty: true},
}

// Defaults holds the built-in value for every known key. An empty color
// value means the active theme decides.
var Defaults = map[string]string{
	"theme":         "default",
	"history_limit": "1000",
	"enable_log":    "true",
	"log_level":     "warn",
	"color_success": "",
	"color_error":   "",
	"color_info":    "",
	"color_muted":   "",
	"color_header":  "",
	"color_prompt":  "",
}

// Get returns the value for key, preferring the config file over the
// built-in default. ok is false only for keys cmdtree does not know.
func Get(key string) (string, bool) {
	if value, ok := fileValues()[key]; ok {
		return value, true
	}
	value, ok := Defaults[key]
	return value, ok
}

// GetAll returns every known key, with the file value where one is set
// and the built-in default otherwise.
func GetAll() (map[string]string, error) {
	merged := make(map[string]string, len(Defaults))
	for key, value := range Defaults {
		merged[key] = value
	}
	for key, value := range fileValues() {
		merged[key] = value
	}
	return merged, nil
}

// fileValues parses the config file. Read or parse failures degrade to
// an empty map so the defaults still apply.
func fileValues() map[string]string {
	lines, err := ReadLines()
	if err != nil {
		return nil
	}
	cfg, err := Parse(lines)
	if err != nil {
		return nil
	}
	return cfg
}
