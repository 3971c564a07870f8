package sms

// TfaApplicationConfiguration tunes PIN lifetime and rate limits. Limits use
// the {attempts}/{timeLength}{timeUnit} form, e.g. "3/1d".
type TfaApplicationConfiguration struct {
	AllowMultiplePinVerifications *bool  `json:"allowMultiplePinVerifications,omitempty"`
	PinAttempts                   *int   `json:"pinAttempts,omitempty" validate:"omitnil,min=1"`
	PinTimeToLive                 string `json:"pinTimeToLive,omitempty"`
	SendPinPerApplicationLimit    string `json:"sendPinPerApplicationLimit,omitempty"`
	SendPinPerPhoneNumberLimit    string `json:"sendPinPerPhoneNumberLimit,omitempty"`
	VerifyPinLimit                string `json:"verifyPinLimit,omitempty"`
}

// TfaApplication represents one 2FA use case, such as login or password
// reset. It is both the create/update body and the returned resource.
type TfaApplication struct {
	ApplicationID string                       `json:"applicationId,omitempty"`
	Configuration *TfaApplicationConfiguration `json:"configuration,omitempty"`
	Enabled       *bool                        `json:"enabled,omitempty"`
	Name          string                       `json:"name" validate:"required"`
}

func NewTfaApplication(name string) *TfaApplication {
	return &TfaApplication{Name: name}
}

type TfaLanguage string

const (
	TfaEnglish      TfaLanguage = "en"
	TfaSpanish      TfaLanguage = "es"
	TfaCatalan      TfaLanguage = "ca"
	TfaDanish       TfaLanguage = "da"
	TfaDutch        TfaLanguage = "nl"
	TfaFrench       TfaLanguage = "fr"
	TfaGerman       TfaLanguage = "de"
	TfaItalian      TfaLanguage = "it"
	TfaJapanese     TfaLanguage = "ja"
	TfaKorean       TfaLanguage = "ko"
	TfaNorwegian    TfaLanguage = "no"
	TfaPolish       TfaLanguage = "pl"
	TfaRussian      TfaLanguage = "ru"
	TfaSwedish      TfaLanguage = "sv"
	TfaFinnish      TfaLanguage = "fi"
	TfaCroatian     TfaLanguage = "hr"
	TfaSlovenian    TfaLanguage = "sl"
	TfaRomanian     TfaLanguage = "ro"
	TfaPortuguesePT TfaLanguage = "pt-pt"
	TfaPortugueseBR TfaLanguage = "pt-br"
	TfaChineseCN    TfaLanguage = "zh-cn"
	TfaChineseTW    TfaLanguage = "zh-tw"
)

type PinType string

const (
	PinNumeric      PinType = "NUMERIC"
	PinAlpha        PinType = "ALPHA"
	PinHex          PinType = "HEX"
	PinAlphanumeric PinType = "ALPHANUMERIC"
)

type TfaRegional struct {
	IndiaDlt *IndiaDlt `json:"indiaDlt,omitempty"`
}

// TfaMessageTemplate is the text a PIN is delivered in. MessageText must
// contain the PIN placeholder, "{{pin}}" unless PinPlaceholder says otherwise.
type TfaMessageTemplate struct {
	ApplicationID  string       `json:"applicationId,omitempty"`
	Language       TfaLanguage  `json:"language,omitempty" validate:"omitempty,tfa_language"`
	MessageID      string       `json:"messageId,omitempty"`
	MessageText    string       `json:"messageText" validate:"required"`
	PinLength      int          `json:"pinLength" validate:"min=1"`
	PinPlaceholder string       `json:"pinPlaceholder,omitempty"`
	PinType        PinType      `json:"pinType" validate:"required,oneof=NUMERIC ALPHA HEX ALPHANUMERIC"`
	Regional       *TfaRegional `json:"regional,omitempty"`
	RepeatDTMF     string       `json:"repeatDTMF,omitempty"`
	SenderID       string       `json:"senderId,omitempty"`
	SpeechRate     *float64     `json:"speechRate,omitempty" validate:"omitnil,min=0.5,max=2"`
}

func NewTfaMessageTemplate(messageText string, pinType PinType, pinLength int) *TfaMessageTemplate {
	return &TfaMessageTemplate{MessageText: messageText, PinType: pinType, PinLength: pinLength}
}

// SendPinRequest sends a PIN over SMS or voice using a message template.
type SendPinRequest struct {
	ApplicationID string            `json:"applicationId" validate:"required"`
	From          string            `json:"from,omitempty"`
	MessageID     string            `json:"messageId" validate:"required"`
	Placeholders  map[string]string `json:"placeholders,omitempty"`
	To            string            `json:"to" validate:"required"`
}

func NewSendPinRequest(applicationID, messageID, to string) *SendPinRequest {
	return &SendPinRequest{ApplicationID: applicationID, MessageID: messageID, To: to}
}

type SendPinResponse struct {
	CallStatus string `json:"callStatus,omitempty"`
	NcStatus   string `json:"ncStatus,omitempty"`
	PinID      string `json:"pinId,omitempty"`
	SmsStatus  string `json:"smsStatus,omitempty"`
	To         string `json:"to,omitempty"`
}

// ResendPinRequest resends a PIN, optionally with new placeholder values.
type ResendPinRequest struct {
	Placeholders map[string]string `json:"placeholders,omitempty"`
}

type VerifyPhoneNumberRequest struct {
	Pin string `json:"pin" validate:"required"`
}

func NewVerifyPhoneNumberRequest(pin string) *VerifyPhoneNumberRequest {
	return &VerifyPhoneNumberRequest{Pin: pin}
}

type VerifyPhoneNumberResponse struct {
	AttemptsRemaining int    `json:"attemptsRemaining,omitempty"`
	Msisdn            string `json:"msisdn,omitempty"`
	PinError          string `json:"pinError,omitempty"`
	PinID             string `json:"pinId,omitempty"`
	Verified          *bool  `json:"verified,omitempty"`
}

// TfaVerification timestamps are Unix milliseconds.
type TfaVerification struct {
	Msisdn     string `json:"msisdn,omitempty"`
	SentAt     int64  `json:"sentAt,omitempty"`
	Verified   *bool  `json:"verified,omitempty"`
	VerifiedAt int64  `json:"verifiedAt,omitempty"`
}

type TfaVerificationStatusResponse struct {
	Verifications []TfaVerification `json:"verifications,omitempty"`
}
