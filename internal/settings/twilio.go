package settings

// TwilioSettings is the credential pair of a Twilio account.
type TwilioSettings struct {
	// AccountSID is read from "account sid", never from "auth token".
	AccountSID string `json:"account sid" validate:"required"`
	AuthToken  string `json:"auth token" validate:"required" secret:"true"`
}

var twilioFields = []field[TwilioSettings]{
	stringField("account sid", func(s *TwilioSettings) *string { return &s.AccountSID }),
	stringField("auth token", func(s *TwilioSettings) *string { return &s.AuthToken }),
}

// Twilio returns the Twilio credentials stored under key.
func (d *Document) Twilio(key string) TwilioSettings {
	return extract(d, key, twilioFields)
}
