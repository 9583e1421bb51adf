package sms

import (
	"context"
	"errors"
	"fmt"

	"restaurant-booking/internal/pkg/config"
	"restaurant-booking/internal/pkg/errs"
	"restaurant-booking/internal/usecase/notify"

	"github.com/twilio/twilio-go"
	twilioclient "github.com/twilio/twilio-go/client"
	openapi "github.com/twilio/twilio-go/rest/api/v2010"
)

// TwilioGateway delivers confirmation texts through the Twilio messaging API.
type TwilioGateway struct {
	client *twilio.RestClient
	from   string
}

func NewTwilioGateway(cfg config.SMSConfig) *TwilioGateway {
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: cfg.AccountSID,
		Password: cfg.AuthToken,
	})

	return &TwilioGateway{
		client: client,
		from:   cfg.FromNumber,
	}
}

func (g *TwilioGateway) Send(ctx context.Context, msg notify.SMSMessage) (string, error) {
	params := &openapi.CreateMessageParams{}
	params.SetTo(msg.To)
	params.SetFrom(g.from)
	params.SetBody(msg.Body)

	type result struct {
		sid string
		err error
	}

	// The Twilio SDK has no context support; honor cancellation around the
	// API call.
	done := make(chan result, 1)
	go func() {
		resp, err := g.client.Api.CreateMessage(params)
		if err != nil {
			done <- result{err: wrapTwilioErr(err)}
			return
		}
		sid := ""
		if resp.Sid != nil {
			sid = *resp.Sid
		}
		done <- result{sid: sid}
	}()

	select {
	case r := <-done:
		return r.sid, r.err
	case <-ctx.Done():
		return "", errs.Wrap(ctx.Err(), "sms delivery canceled")
	}
}

// wrapTwilioErr keeps the provider's diagnostic code in the message so the
// dispatcher's log line carries it.
func wrapTwilioErr(err error) error {
	var restErr *twilioclient.TwilioRestError
	if errors.As(err, &restErr) {
		return errs.Wrap(err, fmt.Sprintf("twilio API error (code %d)", restErr.Code))
	}
	return errs.Wrap(err, "sms delivery failed")
}
