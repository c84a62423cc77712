package sms

import (
	"github.com/Umar-Zak/lyospot/config"
	"github.com/twilio/twilio-go"
)

func CreateTwilioClient(config *config.Config) *twilio.RestClient {
	return twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: config.TwilioConfig.AccountSID,
		Password: config.TwilioConfig.AuthToken,
	})
}
