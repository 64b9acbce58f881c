package reveal

import (
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/tanema/gween/ease"
	"gopkg.in/yaml.v3"
)

// ErrInvalidConfig is wrapped by Validate failures.
var ErrInvalidConfig = errors.New("invalid config")

// Config is the page's animation configuration, usually read from reveal.yaml.
// Every field is optional; zero values in the file keep the defaults.
type Config struct {
	LoadingDurationMs float64 `yaml:"loadingDurationMs"`
	StartThreshold    float64 `yaml:"startThreshold"`
	EndThreshold      float64 `yaml:"endThreshold"`
	ToggleMode        string  `yaml:"toggleMode"`
	StaggerDelayMs    float64 `yaml:"staggerDelayMs"`
	EasingName        string  `yaml:"easingName"`
	ReducedMotion     bool    `yaml:"reducedMotion"`

	// Sections overrides the trigger settings of individual page sections by
	// name.
	Sections map[string]SectionConfig `yaml:"sections"`
}

// SectionConfig holds per-section overrides. Unset fields inherit the page
// settings.
type SectionConfig struct {
	StartThreshold *float64 `yaml:"startThreshold"`
	EndThreshold   *float64 `yaml:"endThreshold"`
	ToggleMode     string   `yaml:"toggleMode"`
	StaggerDelayMs *float64 `yaml:"staggerDelayMs"`
	EasingName     string   `yaml:"easingName"`
}

// SectionSettings are the resolved settings of one section.
type SectionSettings struct {
	Start       float64
	End         float64
	Mode        ToggleMode
	StaggerEach float64
	EaseName    string
}

// Ease returns the section's easing function.
func (s SectionSettings) Ease() ease.TweenFunc {
	return Ease(s.EaseName)
}

// DefaultConfig returns the settings the page was designed with.
func DefaultConfig() Config {
	return Config{
		LoadingDurationMs: DefaultLoadingDuration * 1000,
		StartThreshold:    DefaultStartThreshold,
		EndThreshold:      DefaultEndThreshold,
		ToggleMode:        PlayReverseOnExit.String(),
		StaggerDelayMs:    200,
		EasingName:        "power2.out",
	}
}

// ParseConfig decodes YAML onto the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadConfig reads and parses the file at path. A missing file yields the
// defaults.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return Config{}, errors.Wrapf(err, "read config %s", path)
	}
	cfg, err := ParseConfig(data)
	if err != nil {
		return Config{}, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Validate checks ranges and names. Easing names are not checked: unknown
// names fall back to linear at use.
func (c Config) Validate() error {
	if c.LoadingDurationMs < 0 {
		return errors.Wrapf(ErrInvalidConfig, "loadingDurationMs %g is negative", c.LoadingDurationMs)
	}
	if c.StaggerDelayMs < 0 {
		return errors.Wrapf(ErrInvalidConfig, "staggerDelayMs %g is negative", c.StaggerDelayMs)
	}
	if err := validateThresholds("page", c.StartThreshold, c.EndThreshold); err != nil {
		return err
	}
	if _, ok := ParseToggleMode(c.ToggleMode); !ok {
		return errors.Wrapf(ErrInvalidConfig, "unknown toggleMode %q", c.ToggleMode)
	}
	for name, sc := range c.Sections {
		s := c.Section(name)
		if err := validateThresholds("section "+name, s.Start, s.End); err != nil {
			return err
		}
		if sc.ToggleMode != "" {
			if _, ok := ParseToggleMode(sc.ToggleMode); !ok {
				return errors.Wrapf(ErrInvalidConfig, "section %s: unknown toggleMode %q", name, sc.ToggleMode)
			}
		}
		if sc.StaggerDelayMs != nil && *sc.StaggerDelayMs < 0 {
			return errors.Wrapf(ErrInvalidConfig, "section %s: staggerDelayMs is negative", name)
		}
	}
	return nil
}

func validateThresholds(where string, start, end float64) error {
	if start < 0 || start > 1 || end < 0 || end > 1 {
		return errors.Wrapf(ErrInvalidConfig, "%s: thresholds %g/%g outside [0,1]", where, start, end)
	}
	return nil
}

// LoadingDuration returns the loader's on-screen time in seconds.
func (c Config) LoadingDuration() float64 {
	return c.LoadingDurationMs / 1000
}

// Mode returns the page toggle mode.
func (c Config) Mode() ToggleMode {
	m, _ := ParseToggleMode(c.ToggleMode)
	return m
}

// StaggerEach returns the page stagger step in seconds.
func (c Config) StaggerEach() float64 {
	return c.StaggerDelayMs / 1000
}

// Ease returns the page's default easing function.
func (c Config) Ease() ease.TweenFunc {
	return Ease(c.EasingName)
}

// Section resolves the settings of the named section, applying its overrides
// over the page settings.
func (c Config) Section(name string) SectionSettings {
	s := SectionSettings{
		Start:       c.StartThreshold,
		End:         c.EndThreshold,
		Mode:        c.Mode(),
		StaggerEach: c.StaggerEach(),
		EaseName:    c.EasingName,
	}
	sc, ok := c.Sections[name]
	if !ok {
		return s
	}
	if sc.StartThreshold != nil {
		s.Start = *sc.StartThreshold
	}
	if sc.EndThreshold != nil {
		s.End = *sc.EndThreshold
	}
	if m, ok := ParseToggleMode(strings.TrimSpace(sc.ToggleMode)); ok {
		s.Mode = m
	}
	if sc.StaggerDelayMs != nil {
		s.StaggerEach = *sc.StaggerDelayMs / 1000
	}
	if sc.EasingName != "" {
		s.EaseName = sc.EasingName
	}
	return s
}
