package notification

import (
	"fmt"

	"github.com/goccy/go-json"
	"github.com/olahol/melody"
)

// EventOverridesChanged được gửi cho admin panel khi override của property thay đổi
const EventOverridesChanged = "overrides.changed"

type Service interface {
	SendMessage(message string) error
}

type MelodyService struct {
	m *melody.Melody
}

func NewMelodyService(m *melody.Melody) *MelodyService {
	return &MelodyService{m: m}
}

func (s *MelodyService) SendMessage(message string) error {
	if s.m == nil {
		return fmt.Errorf("melody instance is nil")
	}
	return s.m.Broadcast([]byte(message))
}

// NopService bỏ qua mọi thông báo
type NopService struct{}

func (NopService) SendMessage(string) error { return nil }

type OverrideEvent struct {
	Type       string `json:"type"`
	Action     string `json:"action"`
	PropertyID uint   `json:"propertyId"`
	IDs        []uint `json:"ids"`
}

type MessageBuilder struct {
	event OverrideEvent
}

func NewMessageBuilder(propertyID uint, action string) *MessageBuilder {
	return &MessageBuilder{
		event: OverrideEvent{
			Type:       EventOverridesChanged,
			Action:     action,
			PropertyID: propertyID,
			IDs:        []uint{},
		},
	}
}

func (b *MessageBuilder) WithIDs(ids []uint) *MessageBuilder {
	b.event.IDs = append(b.event.IDs, ids...)
	return b
}

func (b *MessageBuilder) Build() string {
	data, err := json.Marshal(b.event)
	if err != nil {
		return fmt.Sprintf(`{"type":%q,"propertyId":%d}`, EventOverridesChanged, b.event.PropertyID)
	}
	return string(data)
}
