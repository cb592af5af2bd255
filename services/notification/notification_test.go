package notification_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"ratecard/services/notification"
)

func TestMessageBuilder(t *testing.T) {
	msg := notification.NewMessageBuilder(7, "deleted").WithIDs([]uint{3, 4}).Build()
	assert.JSONEq(t, `{"type":"overrides.changed","action":"deleted","propertyId":7,"ids":[3,4]}`, msg)

	empty := notification.NewMessageBuilder(7, "set").Build()
	assert.JSONEq(t, `{"type":"overrides.changed","action":"set","propertyId":7,"ids":[]}`, empty)
}

func TestMelodyService_NilInstance(t *testing.T) {
	s := notification.NewMelodyService(nil)
	assert.Error(t, s.SendMessage("x"))
}
