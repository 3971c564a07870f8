package whatsapp

// Content is the closed set of payloads a single WhatsApp message can carry.
type Content interface {
	TextContent | DocumentContent | ImageContent | AudioContent | VideoContent |
		StickerContent | LocationContent | ContactContent |
		InteractiveButtonsContent | InteractiveListContent |
		InteractiveProductContent | InteractiveMultiproductContent
}

// Message is the request body shared by every single-message send operation.
type Message[C Content] struct {
	From         string `json:"from" validate:"required,max=24"`
	To           string `json:"to" validate:"required,max=24"`
	MessageID    string `json:"messageId,omitempty" validate:"omitempty,max=50"`
	Content      C      `json:"content"`
	CallbackData string `json:"callbackData,omitempty" validate:"omitempty,max=4000"`
	NotifyURL    string `json:"notifyUrl,omitempty" validate:"omitempty,url"`
}

// NewMessage builds a message from its required fields.
func NewMessage[C Content](from, to string, content C) *Message[C] {
	return &Message[C]{From: from, To: to, Content: content}
}

type (
	TextMessage                    = Message[TextContent]
	DocumentMessage                = Message[DocumentContent]
	ImageMessage                   = Message[ImageContent]
	AudioMessage                   = Message[AudioContent]
	VideoMessage                   = Message[VideoContent]
	StickerMessage                 = Message[StickerContent]
	LocationMessage                = Message[LocationContent]
	ContactMessage                 = Message[ContactContent]
	InteractiveButtonsMessage      = Message[InteractiveButtonsContent]
	InteractiveListMessage         = Message[InteractiveListContent]
	InteractiveProductMessage      = Message[InteractiveProductContent]
	InteractiveMultiproductMessage = Message[InteractiveMultiproductContent]
)

// TextContent is a plain text message. URLs in the text get a preview when
// PreviewURL is true.
type TextContent struct {
	Text       string `json:"text" validate:"required,max=4096"`
	PreviewURL *bool  `json:"previewUrl,omitempty"`
}

func NewTextContent(text string) TextContent {
	return TextContent{Text: text}
}

type DocumentContent struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
	Caption  string `json:"caption,omitempty" validate:"omitempty,max=3000"`
	Filename string `json:"filename,omitempty" validate:"omitempty,max=240"`
}

func NewDocumentContent(mediaURL string) DocumentContent {
	return DocumentContent{MediaURL: mediaURL}
}

type ImageContent struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
	Caption  string `json:"caption,omitempty" validate:"omitempty,max=3000"`
}

func NewImageContent(mediaURL string) ImageContent {
	return ImageContent{MediaURL: mediaURL}
}

type AudioContent struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func NewAudioContent(mediaURL string) AudioContent {
	return AudioContent{MediaURL: mediaURL}
}

type VideoContent struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
	Caption  string `json:"caption,omitempty" validate:"omitempty,max=3000"`
}

func NewVideoContent(mediaURL string) VideoContent {
	return VideoContent{MediaURL: mediaURL}
}

type StickerContent struct {
	MediaURL string `json:"mediaUrl" validate:"required,url"`
}

func NewStickerContent(mediaURL string) StickerContent {
	return StickerContent{MediaURL: mediaURL}
}

// LocationContent pins a point on the map. Coordinates are in degrees.
type LocationContent struct {
	Latitude  float64 `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64 `json:"longitude" validate:"min=-180,max=180"`
	Name      string  `json:"name,omitempty" validate:"omitempty,max=1000"`
	Address   string  `json:"address,omitempty" validate:"omitempty,max=1000"`
}

func NewLocationContent(latitude, longitude float64) LocationContent {
	return LocationContent{Latitude: latitude, Longitude: longitude}
}

// ContactType labels addresses, emails and urls.
type ContactType string

const (
	ContactTypeHome ContactType = "HOME"
	ContactTypeWork ContactType = "WORK"
)

// PhoneType labels phone numbers.
type PhoneType string

const (
	PhoneTypeCell   PhoneType = "CELL"
	PhoneTypeMain   PhoneType = "MAIN"
	PhoneTypeIPhone PhoneType = "IPHONE"
	PhoneTypeHome   PhoneType = "HOME"
	PhoneTypeWork   PhoneType = "WORK"
)

type ContactAddress struct {
	Street      string      `json:"street,omitempty"`
	City        string      `json:"city,omitempty"`
	State       string      `json:"state,omitempty"`
	Zip         string      `json:"zip,omitempty"`
	Country     string      `json:"country,omitempty"`
	CountryCode string      `json:"countryCode,omitempty"`
	Type        ContactType `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK"`
}

type ContactName struct {
	FirstName     string `json:"firstName" validate:"required"`
	LastName      string `json:"lastName,omitempty"`
	MiddleName    string `json:"middleName,omitempty"`
	NameSuffix    string `json:"nameSuffix,omitempty"`
	NamePrefix    string `json:"namePrefix,omitempty"`
	FormattedName string `json:"formattedName" validate:"required"`
}

type ContactOrganization struct {
	Company    string `json:"company,omitempty"`
	Department string `json:"department,omitempty"`
	Title      string `json:"title,omitempty"`
}

type ContactPhone struct {
	Phone string    `json:"phone,omitempty"`
	Type  PhoneType `json:"type,omitempty" validate:"omitempty,oneof=CELL MAIN IPHONE HOME WORK"`
	WaID  string    `json:"waId,omitempty"`
}

type ContactEmail struct {
	Email string      `json:"email,omitempty" validate:"omitempty,email"`
	Type  ContactType `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK"`
}

type ContactURL struct {
	URL  string      `json:"url,omitempty" validate:"omitempty,url"`
	Type ContactType `json:"type,omitempty" validate:"omitempty,oneof=HOME WORK"`
}

type Contact struct {
	Addresses []ContactAddress     `json:"addresses,omitempty" validate:"dive"`
	Birthday  string               `json:"birthday,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Emails    []ContactEmail       `json:"emails,omitempty" validate:"dive"`
	Name      ContactName          `json:"name"`
	Org       *ContactOrganization `json:"org,omitempty"`
	Phones    []ContactPhone       `json:"phones,omitempty" validate:"dive"`
	URLs      []ContactURL         `json:"urls,omitempty" validate:"dive"`
}

func NewContact(name ContactName) Contact {
	return Contact{Name: name}
}

type ContactContent struct {
	Contacts []Contact `json:"contacts" validate:"required,min=1,dive"`
}

func NewContactContent(contacts ...Contact) ContactContent {
	return ContactContent{Contacts: contacts}
}
