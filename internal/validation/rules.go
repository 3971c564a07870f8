package validation

import "regexp"

// patterns maps custom validate tags to the fixed expressions a value must
// fully match. Values are only checked when present; pair with omitempty.
var patterns = map[string]*regexp.Regexp{
	"sms_language_code":     regexp.MustCompile(`^(TR|ES|PT|AUTODETECT)$`),
	"sms_transliteration":   regexp.MustCompile(`^(TURKISH|GREEK|CYRILLIC|SERBIAN_CYRILLIC|CENTRAL_EUROPEAN|BALTIC|NON_UNICODE)$`),
	"notify_content_type":   regexp.MustCompile(`^(application/json|application/xml)$`),
	"turkey_recipient_type": regexp.MustCompile(`^(TACIR|BIREYSEL)$`),
	"tfa_language":          regexp.MustCompile(`^(en|es|ca|da|nl|fr|de|it|ja|ko|no|pl|ru|sv|fi|hr|sl|ro|pt-pt|pt-br|zh-cn|zh-tw)$`),
	"wa_template_language":  regexp.MustCompile(`^(af|sq|ar|az|bn|bg|ca|zh_CN|zh_HK|zh_TW|hr|cs|da|nl|en|en_GB|en_US|et|fil|fi|fr|ka|de|el|gu|ha|he|hi|hu|id|ga|it|ja|kn|kk|rw_RW|ko|ky_KG|lo|lv|lt|mk|ms|ml|mr|nb|fa|pl|pt_BR|pt_PT|pa|ro|ru|sr|sk|sl|es|es_AR|es_ES|es_MX|sw|sv|ta|te|th|tr|uk|ur|uz|vi|zu|unknown)$`),
	"wa_template_category":  regexp.MustCompile(`^(ACCOUNT_UPDATE|PAYMENT_UPDATE|PERSONAL_FINANCE_UPDATE|SHIPPING_UPDATE|RESERVATION_UPDATE|ISSUE_RESOLUTION|APPOINTMENT_UPDATE|TRANSPORTATION_UPDATE|TICKET_UPDATE|ALERT_UPDATE|AUTO_REPLY|MARKETING|TRANSACTIONAL|OTP)$`),
	"binary_hex":            regexp.MustCompile(`^([0-9A-Fa-f]{2}[ ]?)+$`),
}
