package icoview

// Config is the initial state of the viewer and its window.
type Config struct {
	Title string

	Accuracy      int
	WhiteLight    bool
	YellowLight   bool
	SmoothShading bool
	Wireframe     bool

	// MaxAccuracy bounds the accuracy the keyboard controls can reach.
	MaxAccuracy int
}

// DefaultConfig starts with an icosahedron lit by the white light and
// flat shaded.
func DefaultConfig() Config {
	return Config{
		Title:       "Icosphere Viewer",
		Accuracy:    0,
		WhiteLight:  true,
		MaxAccuracy: 6,
	}
}
