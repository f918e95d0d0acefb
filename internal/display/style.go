package display

import "github.com/fatih/color"

// Style maps output roles to colors.
type Style struct {
	DirChecked  *color.Color
	DirSkipped  *color.Color
	FileChecked *color.Color
	FileSkipped *color.Color
	Path        *color.Color
	Match       *color.Color
	Header      *color.Color
}

// NewStyle returns the default palette. When enabled is false every role
// renders plain text regardless of terminal detection.
func NewStyle(enabled bool) *Style {
	s := &Style{
		DirChecked:  color.New(color.FgGreen),
		DirSkipped:  color.New(color.FgRed),
		FileChecked: color.New(color.FgBlue),
		FileSkipped: color.New(color.FgRed),
		Path:        color.New(color.FgYellow),
		Match:       color.New(color.BgRed),
		Header:      color.New(color.FgGreen),
	}
	for _, c := range s.roles() {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return s
}

func (s *Style) roles() []*color.Color {
	return []*color.Color{
		s.DirChecked,
		s.DirSkipped,
		s.FileChecked,
		s.FileSkipped,
		s.Path,
		s.Match,
		s.Header,
	}
}

// labeled renders "<label><path>" with the label in c and the path in the
// path role.
func (s *Style) labeled(c *color.Color, label, path string) string {
	return c.Sprint(label) + s.Path.Sprint(path)
}
