package docstore

// Collection names. Centralized so relation maintenance across domains
// never needs to import another domain's repository.
const (
	CollArtists     = "artists"
	CollArtworks    = "artworks"
	CollExhibitions = "exhibitions"
	CollProducts    = "products"
	CollOrders      = "orders"
	CollUsers       = "users"
	CollTickets     = "tickets"
	CollBlogPosts   = "blogPosts"
	CollContacts    = "contacts"
	CollNewsletter  = "newsletter"
)
