package config

// MinSquareSize is the smallest square size, in pixels, a diagram may use.
const MinSquareSize = 8

// RenderConfig holds settings for board diagrams.
type RenderConfig struct {
	// SquareSize is the edge length of one square in SVG output, in pixels.
	SquareSize int

	// Flipped draws the board from Black's side.
	Flipped bool

	// LightColour and DarkColour are SVG fill colours for the squares.
	LightColour string
	DarkColour  string

	// ShowCoordinates labels files and ranks.
	ShowCoordinates bool
}

// NewRenderConfig creates a RenderConfig with default values.
func NewRenderConfig() *RenderConfig {
	return &RenderConfig{
		SquareSize:      64,
		LightColour:     "#f0d9b5",
		DarkColour:      "#b58863",
		ShowCoordinates: true,
	}
}
