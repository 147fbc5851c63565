package model

// Resource paths on the content store, relative to the API base. Exact
// routing is the store's concern; these names are the contract this
// application codes against.
const (
	PathVehicles       = "vehicles"
	PathHeroSlides     = "hero-slides"
	PathGallery        = "gallery"
	PathFeatures       = "features"
	PathPolicies       = "policies"
	PathContactFields  = "contact-fields"
	PathChatbotOptions = "chatbot-options"

	PathAboutContent   = "about-content"
	PathContactInfo    = "contact-info"
	PathFooterSettings = "footer-settings"

	PathUpload   = "upload"
	PathBookings = "bookings"
	PathContact  = "contact-submissions"
)

// PageMetaPath returns the singleton metadata path for a page key.
func PageMetaPath(pageKey string) string {
	return "page-meta/" + pageKey
}
