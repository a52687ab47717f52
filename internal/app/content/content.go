// Package content holds the structured copy for the marketing pages. The
// pages are static; serving them as data keeps the rendering layer dumb.
package content

import "errors"

var ErrPageNotFound = errors.New("content: page not found")

// FAQEntry is one expandable question/answer pair.
type FAQEntry struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Section is a titled block of marketing copy.
type Section struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// Page is the structured content behind one marketing route.
type Page struct {
	Slug     string     `json:"slug"`
	Title    string     `json:"title"`
	Tagline  string     `json:"tagline,omitempty"`
	Sections []Section  `json:"sections,omitempty"`
	FAQ      []FAQEntry `json:"faq,omitempty"`
}

// Contact points shown across the site.
const (
	SupportWhatsApp = "+923041513361"
	SupportEmail    = "Sheerazahmed801@yahoo.com"
)

// Lookup returns the page for a slug.
func Lookup(slug string) (Page, error) {
	for _, p := range pages {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Page{}, ErrPageNotFound
}

// Slugs lists the available marketing pages.
func Slugs() []string {
	slugs := make([]string, len(pages))
	for i, p := range pages {
		slugs[i] = p.Slug
	}
	return slugs
}

var pages = []Page{
	{
		Slug:    "home",
		Title:   "HOMEHUBSTAY",
		Tagline: "Find your perfect apartment stay",
		Sections: []Section{
			{
				Title: "Welcome",
				Body:  "Browse our available properties, select your preferred dates, and book your stay in minutes. Short and long-term rentals across the city.",
			},
		},
	},
	{
		Slug:    "about",
		Title:   "About Homehubstay",
		Tagline: "Excellence in Service",
		Sections: []Section{
			{
				Title: "Our Mission",
				Body:  "We connect visitors with quality apartments and make renting simple, transparent and safe.",
			},
			{
				Title: "Trust & Transparency",
				Body:  "Every listing shows its real price, amenities and availability. No hidden fees, no surprises.",
			},
			{
				Title: "Customer Focus",
				Body:  "Our support team is available around the clock via WhatsApp, email or the contact form.",
			},
			{
				Title: "Quality Properties",
				Body:  "Each apartment is vetted before it appears in the catalog.",
			},
		},
	},
	{
		Slug:  "more-about",
		Title: "Why Choose Homehubstay?",
		Sections: []Section{
			{
				Title: "Experience & Expertise",
				Body:  "Years of rental experience across the city, with a team that knows every neighbourhood.",
			},
			{
				Title: "Innovation & Technology",
				Body:  "Live availability, instant booking and secure payment handling through our partners.",
			},
		},
	},
	{
		Slug:  "faq",
		Title: "Frequently Asked Questions",
		FAQ: []FAQEntry{
			{
				Question: "How do I book an apartment through Homehubstay?",
				Answer:   "Booking an apartment is simple! Browse our available properties, select your preferred dates, and click the 'Book Now' button. You'll be guided through our secure booking process where you can review details and complete your reservation.",
			},
			{
				Question: "What documents do I need to rent an apartment?",
				Answer:   "Typically, you'll need a valid government ID, proof of income (pay stubs or bank statements), and references from previous landlords. Some properties may require additional documentation. We'll guide you through the specific requirements for your chosen property.",
			},
			{
				Question: "Can I cancel my booking?",
				Answer:   "Yes, you can cancel your booking according to our cancellation policy. Most bookings can be cancelled up to 24 hours before check-in for a full refund. Please review the specific cancellation terms for your chosen property.",
			},
			{
				Question: "Are utilities included in the rent?",
				Answer:   "Utility inclusion varies by property. Some apartments include basic utilities like water and electricity, while others may require you to set up your own accounts. All utility details are clearly listed in each property's description.",
			},
			{
				Question: "How do I contact customer support?",
				Answer:   "Our customer support team is available 24/7. You can reach us via WhatsApp at " + SupportWhatsApp + ", email at " + SupportEmail + ", or through our contact form. We're here to help with any questions or concerns!",
			},
			{
				Question: "What happens if there's an issue with my apartment?",
				Answer:   "If you encounter any issues during your stay, please contact us immediately. We have a dedicated maintenance team that responds quickly to resolve problems. Your comfort and satisfaction are our top priorities.",
			},
			{
				Question: "Do you offer long-term rentals?",
				Answer:   "Yes! We offer both short-term and long-term rental options. Whether you need a place for a few days or several months, we have flexible arrangements to suit your needs. Contact us to discuss your specific requirements.",
			},
			{
				Question: "Are pets allowed in the apartments?",
				Answer:   "Pet policies vary by property. Some apartments are pet-friendly, while others may have restrictions. Please check the property details or contact us to confirm the pet policy for your chosen apartment.",
			},
		},
	},
}
