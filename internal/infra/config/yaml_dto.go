package config

// YAMLChart is the on-disk shape of a chart file.
type YAMLChart struct {
	Name   string      `yaml:"name"`
	Points []YAMLPoint `yaml:"points"`
}

// YAMLPoint accepts either sign/degree/minute or a position string
// such as "♋ 12°30′". When both are given, position wins.
type YAMLPoint struct {
	Label    string `yaml:"label"`
	Sign     string `yaml:"sign" validate:"omitempty,zodiac_sign"`
	Degree   int    `yaml:"degree" validate:"min=0,max=29"`
	Minute   int    `yaml:"minute" validate:"min=0,max=59"`
	Position string `yaml:"position"`
}
