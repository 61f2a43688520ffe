package types

// Site is the fixed copy rendered by the landing page.
type Site struct {
	Title       string    `yaml:"title"`
	Subtitle    string    `yaml:"subtitle"`
	Nav         []NavItem `yaml:"nav"`
	Description string    `yaml:"description"`
	TeamImage   Image     `yaml:"team_image"`
	Panels      []Panel   `yaml:"panels"`
}

type NavItem struct {
	Label string `yaml:"label"`
	Icon  string `yaml:"icon"`           // asset file name
	Href  string `yaml:"href,omitempty"` // empty for inert items
}

type Image struct {
	Src string `yaml:"src"`
	Alt string `yaml:"alt"`
}

// Panel pairs descriptive copy with one upload widget.
type Panel struct {
	ID   string `yaml:"id"`
	Text string `yaml:"text"`
}
