// Package model defines the content entities shared by the public site and
// the admin panel. Every type's zero value renders as blank fields, so a page
// can draw before its data has loaded without nil checks.
package model

// Page keys for singleton page metadata.
const (
	PageAbout   = "about"
	PageBikes   = "bikes"
	PageContact = "contact"
	PageGallery = "gallery"
	PageInclude = "include"
)

// PageKeys lists every page that carries its own PageMeta record.
var PageKeys = []string{PageAbout, PageBikes, PageContact, PageGallery, PageInclude}

// PageMeta 描述单个页面的头部文案与配图，每个页面最多一条。
type PageMeta struct {
	HeaderTitle       string `json:"header_title"`
	HeaderDescription string `json:"header_description"`
	HeaderImage       string `json:"header_image"`
	PageTitle         string `json:"page_title"`
	PageSubtitle      string `json:"page_subtitle"`
}

// AboutContent holds the about page body and its hero image.
type AboutContent struct {
	Description string `json:"description"`
	HeroImage   string `json:"hero_image"`
}

// ContactInfo holds the business contact block shown on the contact page.
type ContactInfo struct {
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	Latitude  string `json:"latitude"`
	Longitude string `json:"longitude"`
}

// FooterSettings holds the site-wide footer and social links.
type FooterSettings struct {
	SiteTitle string `json:"site_title"`
	LogoURL   string `json:"logo_url"`
	Slogan    string `json:"slogan"`
	SubSlogan string `json:"sub_slogan"`
	Facebook  string `json:"facebook"`
	Twitter   string `json:"twitter"`
	Instagram string `json:"instagram"`
	Youtube   string `json:"youtube"`
}

// HeroSlide is one rotating banner on the home page. Order is a user-settable
// integer, not an array index; the store decides the display order.
type HeroSlide struct {
	ID       int    `json:"id"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	ImageURL string `json:"image_url"`
	Order    int    `json:"order"`
}

// GalleryImage is one photo in the public gallery.
type GalleryImage struct {
	ID          int    `json:"id"`
	Image       string `json:"image"`
	Description string `json:"description,omitempty"`
}

// Feature is one of the "why rent with us" cards.
type Feature struct {
	ID       int    `json:"id"`
	IconName string `json:"icon_name"`
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
}

// Policy color variants.
const (
	PolicyColorOrange = "orange"
	PolicyColorDark   = "dark"
)

// Policy is a rental-policy card; Points is a comma-joined list.
type Policy struct {
	ID        int    `json:"id"`
	Title     string `json:"title"`
	Points    string `json:"points"`
	ColorType string `json:"color_type"`
}

// Contact field input types accepted by the dynamic form builder.
const (
	FieldTypeText     = "text"
	FieldTypeEmail    = "email"
	FieldTypeTel      = "tel"
	FieldTypeTextarea = "textarea"
)

// ContactField drives one input of the dynamically generated contact form.
// Form state is keyed by ID; Label only becomes the submission key when the
// form is serialized.
type ContactField struct {
	ID         int    `json:"id"`
	Label      string `json:"label"`
	FieldType  string `json:"field_type"`
	IsRequired bool   `json:"is_required"`
}

// ChatbotOption is one canned-reply entry offered by the site chat widget.
// Key is a client-assigned surrogate identifier so that bulk saves and
// reordering never re-identify an unrelated option.
type ChatbotOption struct {
	Key       string `json:"key,omitempty"`
	Label     string `json:"label"`
	IconName  string `json:"icon_name"`
	ReplyText string `json:"reply_text"`
}
