package utils

import "gopkg.in/gomail.v2"

func SendEmail(to string, subject string, htmlBody string, sender string, password string, smtpServer string, smtpPort int) error {
	message := gomail.NewMessage()
	message.SetHeader("From", sender)
	message.SetHeader("To", to)
	message.SetHeader("Subject", subject)
	message.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(smtpServer, smtpPort, sender, password)

	if err := d.DialAndSend(message); err != nil {
		return err
	}

	return nil
}
