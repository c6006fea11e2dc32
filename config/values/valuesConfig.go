package values

type Config interface {
}

// PanelLimits — клиентские лимиты панели: размеры страниц и
// границы локального поиска.
type PanelLimits struct {
	DefaultPageSize  int `yaml:"default-page-size"`
	SearchFetchLimit int `yaml:"search-fetch-limit"`
	DebounceMillis   int `yaml:"debounce-millis"`
	MaxImageBytes    int `yaml:"max-image-bytes"`
}

func (p *PanelLimits) ApplyDefaults() {
	if p.DefaultPageSize <= 0 {
		p.DefaultPageSize = 25
	}
	if p.SearchFetchLimit <= 0 {
		p.SearchFetchLimit = 1000
	}
	if p.DebounceMillis <= 0 {
		p.DebounceMillis = 300
	}
	if p.MaxImageBytes <= 0 {
		p.MaxImageBytes = 5 * 1024 * 1024
	}
}
