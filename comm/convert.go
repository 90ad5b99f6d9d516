package comm

import (
	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/bridge"
)

// ToProto converts a message to its wire form.
func ToProto(m Message) *appsv0.CommMessage {
	return &appsv0.CommMessage{
		Id:             m.ID,
		From:           m.From,
		To:             m.To,
		Topic:          m.Topic,
		ConversationId: m.ConversationID,
		Type:           m.Type,
		Content:        m.Content,
		Metadata:       m.Metadata,
		Timestamp:      bridge.UnixMilli(m.Timestamp),
		HumanInjected:  m.HumanInjected,
		HumanId:        m.HumanID,
	}
}

// FromProto converts a wire message. Absent fields become zero values.
func FromProto(in *appsv0.CommMessage) Message {
	return Message{
		ID:             in.GetId(),
		From:           in.GetFrom(),
		To:             in.GetTo(),
		Topic:          in.GetTopic(),
		ConversationID: in.GetConversationId(),
		Type:           in.GetType(),
		Content:        in.GetContent(),
		Metadata:       in.GetMetadata(),
		Timestamp:      bridge.FromUnixMilli(in.GetTimestamp()),
		HumanInjected:  in.GetHumanInjected(),
		HumanID:        in.GetHumanId(),
	}
}
