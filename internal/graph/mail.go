package graph

import (
	"context"
	"fmt"

	"metzenhof/internal/entities"
)

type emailAddress struct {
	Address string `json:"address"`
	Name    string `json:"name,omitempty"`
}

type recipient struct {
	EmailAddress emailAddress `json:"emailAddress"`
}

type message struct {
	Subject      string      `json:"subject"`
	Body         ItemBody    `json:"body"`
	ToRecipients []recipient `json:"toRecipients"`
}

type sendMailRequest struct {
	Message         message `json:"message"`
	SaveToSentItems bool    `json:"saveToSentItems"`
}

// Send delivers an HTML message from the client's mailbox.
func (c *Client) Send(ctx context.Context, msg entities.EmailMessage) error {
	req := sendMailRequest{
		Message: message{
			Subject: msg.Subject,
			Body:    ItemBody{ContentType: "HTML", Content: msg.HTMLBody},
			ToRecipients: []recipient{
				{EmailAddress: emailAddress{Address: msg.ToAddress, Name: msg.ToName}},
			},
		},
		SaveToSentItems: msg.SaveToSentItems,
	}
	if err := c.do(ctx, "POST", c.userPath("/sendMail"), req, nil, nil); err != nil {
		return fmt.Errorf("send mail to %s: %w", msg.ToAddress, err)
	}
	return nil
}
