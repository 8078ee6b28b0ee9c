package notify

import (
	"errors"
	"fmt"
	"strings"

	"status-notifier/core/models"
)

// LineSeparator joins the body lines.
const LineSeparator = "\r\n"

var (
	// ErrEmptyInstances is returned when composing for an empty instance list.
	ErrEmptyInstances = errors.New("notify: no instances to report")
	// ErrInvalidSubscriber is returned when the subscriber lacks an email or a name.
	ErrInvalidSubscriber = errors.New("notify: invalid subscriber")
)

// Message is a composed notification ready for delivery.
type Message struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// Composer builds notification messages.
type Composer struct {
	cfg Config
}

// NewComposer creates a composer using the given envelope settings.
func NewComposer(cfg Config) *Composer {
	return &Composer{cfg: cfg}
}

// Compose builds the message for one subscriber. Instances are listed in the
// order given, one "<key> -> <status>" line each.
func (c *Composer) Compose(sub models.Subscriber, instances []models.Instance) (Message, error) {
	if len(instances) == 0 {
		return Message{}, ErrEmptyInstances
	}
	if strings.TrimSpace(sub.Email) == "" {
		return Message{}, fmt.Errorf("%w: subscriber %d has no email", ErrInvalidSubscriber, sub.ID)
	}
	if sub.FullName() == "" {
		return Message{}, fmt.Errorf("%w: subscriber <%s> has no name", ErrInvalidSubscriber, sub.Email)
	}

	return Message{
		From:    c.cfg.Sender,
		To:      sub.Email,
		Subject: c.cfg.Subject,
		Body:    Body(sub.FullName(), instances),
	}, nil
}

// Body renders the message text for the given recipient name.
func Body(name string, instances []models.Instance) string {
	lines := make([]string, 0, len(instances)+8)
	lines = append(lines,
		"Hello "+name+",",
		"",
		fmt.Sprintf("There has been a change of status in %d server instances you are subscribing to.", len(instances)),
		"",
		"Here are the current statuses of those servers that have changed:",
		"",
	)
	for _, inst := range instances {
		lines = append(lines, inst.Key+" -> "+inst.Status)
	}
	lines = append(lines, "", "Thank you.")
	return strings.Join(lines, LineSeparator)
}
