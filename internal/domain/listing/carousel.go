package listing

// PlaceholderImage is shown for listings with no photos.
const PlaceholderImage = "/images/placeholder-apartment.jpg"

// Carousel tracks the visible image index for one listing's gallery.
// Navigation wraps at both ends. A listing with no images pins the carousel
// to the placeholder and disables navigation.
type Carousel struct {
	images []string
	index  int
}

func NewCarousel(l Listing) *Carousel {
	return &Carousel{images: l.Gallery()}
}

// Current returns the image to display.
func (c *Carousel) Current() string {
	if len(c.images) == 0 {
		return PlaceholderImage
	}
	return c.images[c.index]
}

func (c *Carousel) Index() int { return c.index }

func (c *Carousel) Len() int { return len(c.images) }

// CanNavigate reports whether prev/next controls should be enabled.
func (c *Carousel) CanNavigate() bool { return len(c.images) > 1 }

// Next advances to the following image, wrapping past the end.
func (c *Carousel) Next() string {
	if len(c.images) == 0 {
		return PlaceholderImage
	}
	c.index = (c.index + 1) % len(c.images)
	return c.images[c.index]
}

// Prev moves to the preceding image, wrapping before the start.
func (c *Carousel) Prev() string {
	if len(c.images) == 0 {
		return PlaceholderImage
	}
	c.index = (c.index - 1 + len(c.images)) % len(c.images)
	return c.images[c.index]
}
