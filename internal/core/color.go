package core

// Color represents a foreground color for a screen cell.
// Values are indices into the platform palette, not raw ANSI codes.
type Color uint8

// Predefined colors for screen elements.
const (
	ColorDefault Color = iota
	ColorRed
	ColorGreen
	ColorYellow
	ColorBlue
	ColorMagenta
	ColorCyan
	ColorWhite
	ColorBrightRed
	ColorBrightGreen
	ColorBrightYellow
	ColorBrightBlue
	ColorBrightMagenta
	ColorBrightCyan
	ColorBrightWhite
	ColorOrange
	ColorGray
)

// TileColors holds one color per tile bucket, from value 2 (bucket 0)
// up to value 4096 and beyond (bucket 11).
var TileColors = [12]Color{
	ColorWhite,
	ColorBrightWhite,
	ColorOrange,
	ColorBrightRed,
	ColorRed,
	ColorMagenta,
	ColorBrightYellow,
	ColorYellow,
	ColorBrightGreen,
	ColorGreen,
	ColorBrightCyan,
	ColorGray,
}

// TileColor returns the palette color for a tile color bucket.
// Out-of-range buckets are clamped.
func TileColor(bucket int) Color {
	return TileColors[Clamp(bucket, 0, len(TileColors)-1)]
}
