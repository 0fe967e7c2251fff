package schema

// Field declares one property. Default is written in the property's encoded
// form, the same text the store persists.
type Field struct {
	Name      string   `mapstructure:"name" yaml:"name" json:"name"`
	Kind      string   `mapstructure:"kind" yaml:"kind" json:"kind"`
	Default   string   `mapstructure:"default" yaml:"default,omitempty" json:"default,omitempty"`
	Min       *float64 `mapstructure:"min" yaml:"min,omitempty" json:"min,omitempty"`
	Max       *float64 `mapstructure:"max" yaml:"max,omitempty" json:"max,omitempty"`
	MaxLength int      `mapstructure:"max_length" yaml:"max_length,omitempty" json:"max_length,omitempty"`
	Trim      bool     `mapstructure:"trim" yaml:"trim,omitempty" json:"trim,omitempty"`
	Values    []string `mapstructure:"values" yaml:"values,omitempty" json:"values,omitempty"`
}
