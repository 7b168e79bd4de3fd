package components

import (
	"github.com/dbmrq/catsays/internal/tui/styles"
)

// Favorite glyphs shown on the main card.
const (
	GlyphFavorite    = "💖"
	GlyphNotFavorite = "🤍"
)

// Card shows the current image and whether it is a favorite.
type Card struct {
	image    string
	favorite bool
	width    int
}

// NewCard creates an empty Card.
func NewCard() *Card {
	return &Card{}
}

// SetImage sets the image URL and favorite flag.
func (c *Card) SetImage(image string, favorite bool) {
	c.image = image
	c.favorite = favorite
}

// SetWidth sets the card width.
func (c *Card) SetWidth(width int) {
	c.width = width
}

// Glyph returns the favorite glyph for the current image.
func (c *Card) Glyph() string {
	if c.favorite {
		return GlyphFavorite
	}
	return GlyphNotFavorite
}

// View renders the card.
func (c *Card) View() string {
	style := styles.CardStyle
	if c.favorite {
		style = styles.FavoriteCardStyle
	}
	if c.width > 0 {
		style = style.Width(c.width - 2)
	}

	body := styles.ImageURLStyle.Render(c.image) + "\n\n" + c.Glyph()
	return style.Render(body)
}
