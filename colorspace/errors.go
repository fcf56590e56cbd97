package colorspace

import "fmt"

// FormatError reports an input string that does not parse as a color in the
// declared format.
type FormatError struct {
	Input  string
	Format string
}

func (fe FormatError) Error() string {
	return fmt.Sprintf("invalid %s color: %q", fe.Format, fe.Input)
}

// UnsupportedFormatError reports a conversion format name outside
// {hex, rgb, hsl, hsv}.
type UnsupportedFormatError struct {
	Format string
}

func (ue UnsupportedFormatError) Error() string {
	return fmt.Sprintf("unsupported color format: %q", ue.Format)
}

// UnknownPaletteError reports a palette name absent from the registry. It is
// recoverable: callers fall back to random generation.
type UnknownPaletteError struct {
	Name string
}

func (up UnknownPaletteError) Error() string {
	return fmt.Sprintf("unknown palette: %q", up.Name)
}

// UnknownHarmonyError reports a harmony rule name absent from the known set.
// It is recoverable: callers fall back to the base color alone.
type UnknownHarmonyError struct {
	Rule string
}

func (uh UnknownHarmonyError) Error() string {
	return fmt.Sprintf("unknown harmony rule: %q", uh.Rule)
}
