package notify

import (
	"strings"
	"testing"

	"status-notifier/core/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSubscriber() models.Subscriber {
	return models.Subscriber{ID: 1, Firstname: "Ada", Lastname: "Lovelace", Email: "ada@example.com"}
}

func TestCompose_Envelope(t *testing.T) {
	c := NewComposer(Config{Sender: "noreply@example.com", Subject: "Status change"})

	msg, err := c.Compose(testSubscriber(), []models.Instance{{Key: "NA1", Status: "DOWN"}})
	require.NoError(t, err)

	assert.Equal(t, "noreply@example.com", msg.From)
	assert.Equal(t, "ada@example.com", msg.To)
	assert.Equal(t, "Status change", msg.Subject)
}

func TestCompose_BodyListsInstancesInOrder(t *testing.T) {
	c := NewComposer(Config{Subject: "s"})
	instances := []models.Instance{
		{Key: "NA2", Status: "UP"},
		{Key: "NA1", Status: "DOWN"},
		{Key: "EU5", Status: "MAINTENANCE"},
	}

	msg, err := c.Compose(testSubscriber(), instances)
	require.NoError(t, err)

	lines := strings.Split(msg.Body, LineSeparator)
	assert.Equal(t, "Hello Ada Lovelace,", lines[0])
	assert.Contains(t, msg.Body, "change of status in 3 server instances")

	var listed []string
	for _, l := range lines {
		if strings.Contains(l, " -> ") {
			listed = append(listed, l)
		}
	}
	assert.Equal(t, []string{"NA2 -> UP", "NA1 -> DOWN", "EU5 -> MAINTENANCE"}, listed)
	assert.Equal(t, "Thank you.", lines[len(lines)-1])
}

func TestCompose_Invalid(t *testing.T) {
	c := NewComposer(Config{})
	one := []models.Instance{{Key: "NA1", Status: "UP"}}

	t.Run("Empty instances", func(t *testing.T) {
		_, err := c.Compose(testSubscriber(), nil)
		assert.ErrorIs(t, err, ErrEmptyInstances)
	})

	t.Run("Missing email", func(t *testing.T) {
		sub := testSubscriber()
		sub.Email = " "
		_, err := c.Compose(sub, one)
		assert.ErrorIs(t, err, ErrInvalidSubscriber)
	})

	t.Run("Missing name", func(t *testing.T) {
		sub := testSubscriber()
		sub.Firstname, sub.Lastname = "", ""
		_, err := c.Compose(sub, one)
		assert.ErrorIs(t, err, ErrInvalidSubscriber)
	})

	t.Run("Lastname only", func(t *testing.T) {
		sub := testSubscriber()
		sub.Firstname = ""
		msg, err := c.Compose(sub, one)
		require.NoError(t, err)
		assert.True(t, strings.HasPrefix(msg.Body, "Hello Lovelace,"))
	})
}

func TestBody_Exact(t *testing.T) {
	got := Body("Ada Lovelace", []models.Instance{{Key: "NA1", Status: "DOWN"}, {Key: "NA2", Status: "UP"}})
	want := strings.Join([]string{
		"Hello Ada Lovelace,",
		"",
		"There has been a change of status in 2 server instances you are subscribing to.",
		"",
		"Here are the current statuses of those servers that have changed:",
		"",
		"NA1 -> DOWN",
		"NA2 -> UP",
		"",
		"Thank you.",
	}, "\r\n")
	assert.Equal(t, want, got)
}
