package services

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B int
}

// DefaultAccent is the brand red used for the price callout.
func DefaultAccent() RGB {
	return RGB{R: 193, G: 18, B: 31}
}

// Style is one named paragraph style. Variant uses fpdf notation: "" regular,
// "B" bold, "I" italic.
type Style struct {
	Font        string
	Variant     string
	Size        float64
	Leading     float64
	SpaceBefore float64
	SpaceAfter  float64
	Align       string
	Color       RGB
}

// StyleSet is the fixed set of paragraph styles used by every content block.
// Built once per render, never mutated.
type StyleSet struct {
	Body   Style
	Title  Style
	Price  Style
	Italic Style
}

// BuildStyles returns the four quote styles. The accent color is reserved for
// the price callout; all other text renders in the neutral body color. Pure:
// identical output on every call.
func BuildStyles(accent RGB) StyleSet {
	body := Style{
		Font:       "Helvetica",
		Size:       11,
		Leading:    14,
		SpaceAfter: 6,
		Align:      "L",
	}

	title := body
	title.Variant = "B"
	title.SpaceBefore = 8

	price := Style{
		Font:        "Helvetica",
		Variant:     "B",
		Size:        24,
		Leading:     28,
		SpaceBefore: 8,
		SpaceAfter:  8,
		Align:       "C",
		Color:       accent,
	}

	italic := Style{
		Font:        "Helvetica",
		Variant:     "I",
		Size:        11,
		Leading:     14,
		SpaceBefore: 2,
		SpaceAfter:  8,
		Align:       "C",
	}

	return StyleSet{Body: body, Title: title, Price: price, Italic: italic}
}
