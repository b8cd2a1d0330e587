package types

// FlowerKind is the decorative variant of a food item.
// It has no effect on collision or scoring.
type FlowerKind int

const (
	Blossom FlowerKind = iota
	Rose
	Hibiscus
	Sunflower
	Daisy
	Bouquet
	Tulip
)

// Flowers lists every kind food can be drawn as
var Flowers = [...]FlowerKind{Blossom, Rose, Hibiscus, Sunflower, Daisy, Bouquet, Tulip}

// Emoji returns the glyph used by text frontends
func (f FlowerKind) Emoji() string {
	switch f {
	case Rose:
		return "🌹"
	case Hibiscus:
		return "🌺"
	case Sunflower:
		return "🌻"
	case Daisy:
		return "🌼"
	case Bouquet:
		return "💐"
	case Tulip:
		return "🌷"
	default:
		return "🌸"
	}
}

func (f FlowerKind) String() string {
	switch f {
	case Rose:
		return "rose"
	case Hibiscus:
		return "hibiscus"
	case Sunflower:
		return "sunflower"
	case Daisy:
		return "daisy"
	case Bouquet:
		return "bouquet"
	case Tulip:
		return "tulip"
	default:
		return "blossom"
	}
}

// Food is the single edible item on the board
type Food struct {
	Pos    Point
	Flower FlowerKind
}
