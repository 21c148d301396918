package tui

// Theme captures the prefixes printed before surface messages.
type Theme struct {
	ErrorPrefix string
	TitlePrefix string
}

// DefaultTheme marks errors with a cross and titles with an arrow.
var DefaultTheme = Theme{
	ErrorPrefix: "✗",
	TitlePrefix: "›",
}

// Option configures the surface.
type Option func(*Surface)

// WithPromptDriver overrides the prompt driver used by the surface.
func WithPromptDriver(driver PromptDriver) Option {
	return func(s *Surface) {
		if driver != nil {
			s.driver = driver
		}
	}
}

// WithTheme applies message prefixes.
func WithTheme(theme Theme) Option {
	return func(s *Surface) {
		s.theme = theme
	}
}
