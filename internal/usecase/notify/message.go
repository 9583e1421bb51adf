package notify

import (
	"fmt"
	"strings"
	"unicode"

	"restaurant-booking/internal/usecase/queries"
)

const emailSubject = "Reservation Confirmation from Spicy Symphony"

const emailBodyTemplate = `<html>` +
	`<body>` +
	`<h1>Reservation Confirmation</h1>` +
	`<p>Dear %s,</p>` +
	`<p>Thank you for booking a table at Spicy Symphony.</p>` +
	`<p>Your reservation details are as follows:</p>` +
	`<ul>` +
	`<li><strong>Date:</strong> %s</li>` +
	`<li><strong>Time:</strong> %s</li>` +
	`<li><strong>Number of persons:</strong> %d</li>` +
	`<li><strong>Phone:</strong> %s</li>` +
	`<li><strong>Email:</strong> %s</li>` +
	`<li><strong>Message:</strong> %s</li>` +
	`</ul>` +
	"Disclaimer: If you do not arrive within 30 minutes of your reserved time, your booking will be canceled, and the table may be given to other waiting customers.\n\n" +
	`<p>Please note that this is a confirmation of your reservation. If you have any questions or need to make changes, please contact us at +91-9175734828 or spicysymphony.bookings@gmail.com.</p>` +
	`<p>Looking forward to serving you.</p>` +
	`<p>Best regards,</p>` +
	`<p> Spicy Symphony </p>` +
	`</body>` +
	`</html>`

const smsBodyTemplate = "Hi %s,Thank You for your reservation at Spicy Symphony on %s at %s for %d is confirmed! " +
	"Note: Arrive within 30 mins of your reserved time, or your booking may be canceled. " +
	"Call or Email us at  +91 9175734828 or spicysymphony.bookings@gmail.com for any changes."

type EmailMessage struct {
	To       string
	Subject  string
	HTMLBody string
}

type SMSMessage struct {
	To   string
	Body string
}

func buildEmailMessage(res *queries.ReservationView) EmailMessage {
	message := ""
	if res.Message != nil {
		message = *res.Message
	}

	body := fmt.Sprintf(emailBodyTemplate,
		res.Name, res.Date, res.Time, res.Persons, res.Phone, res.Email, message)

	return EmailMessage{
		To:       res.Email,
		Subject:  emailSubject,
		HTMLBody: body,
	}
}

func buildSMSMessage(res *queries.ReservationView) SMSMessage {
	return SMSMessage{
		To:   normalizePhone(res.Phone),
		Body: fmt.Sprintf(smsBodyTemplate, res.Name, res.Date, res.Time, res.Persons),
	}
}

// normalizePhone strips whitespace so "+91 98765 43210" becomes the E.164
// form "+919876543210" the SMS provider expects.
func normalizePhone(phone string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, phone)
}
