package whatsapp

// Status describes where a message stands in its delivery lifecycle.
type Status struct {
	GroupID     int    `json:"groupId,omitempty"`
	GroupName   string `json:"groupName,omitempty"`
	ID          int    `json:"id,omitempty"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	Action      string `json:"action,omitempty"`
}

// SendResponse acknowledges a single accepted message.
type SendResponse struct {
	To           string  `json:"to,omitempty"`
	MessageCount int     `json:"messageCount,omitempty"`
	MessageID    string  `json:"messageId,omitempty"`
	Status       *Status `json:"status,omitempty"`
}

type SendTemplateResponse struct {
	Messages []SendResponse `json:"messages,omitempty"`
	BulkID   string         `json:"bulkId,omitempty"`
}

// Template is a registered template as reported by the service.
type Template struct {
	ID                string             `json:"id,omitempty"`
	BusinessAccountID int64              `json:"businessAccountId,omitempty"`
	Name              string             `json:"name,omitempty"`
	Language          TemplateLanguage   `json:"language,omitempty"`
	Status            TemplateStatus     `json:"status,omitempty"`
	Category          TemplateCategory   `json:"category,omitempty"`
	Structure         *TemplateStructure `json:"structure,omitempty"`
}

type TemplatesResponse struct {
	Templates []Template `json:"templates,omitempty"`
}
