package channel

import (
	appsv0 "github.com/louisbranch/capbridge/api/apps/v0"
	"github.com/louisbranch/capbridge/bridge"
)

// FromProto converts a wire envelope. Absent fields become zero values.
func FromProto(in *appsv0.ChannelEnvelope) Envelope {
	env := Envelope{
		MessageID: in.GetMessageId(),
		ChannelID: in.GetChannelId(),
		Sender: Sender{
			ID:   in.GetSender().GetId(),
			Name: in.GetSender().GetName(),
			Role: in.GetSender().GetRole(),
			Bot:  in.GetSender().GetBot(),
		},
		Text:         in.GetText(),
		ReplyTo:      in.GetReplyTo(),
		PlatformData: in.GetPlatformData(),
		Metadata:     in.GetMetadata(),
		Timestamp:    bridge.FromUnixMilli(in.GetTimestamp()),
	}
	for _, a := range in.GetAttachments() {
		env.Attachments = append(env.Attachments, Attachment{
			Type:     a.GetType(),
			URL:      a.GetUrl(),
			Filename: a.GetFilename(),
			MimeType: a.GetMimeType(),
			Size:     a.GetSize(),
		})
	}
	return env
}

// ToProto converts an envelope to its wire form.
func ToProto(env Envelope) *appsv0.ChannelEnvelope {
	out := &appsv0.ChannelEnvelope{
		MessageId: env.MessageID,
		ChannelId: env.ChannelID,
		Sender: &appsv0.MessageSender{
			Id:   env.Sender.ID,
			Name: env.Sender.Name,
			Role: env.Sender.Role,
			Bot:  env.Sender.Bot,
		},
		Text:         env.Text,
		ReplyTo:      env.ReplyTo,
		PlatformData: env.PlatformData,
		Metadata:     env.Metadata,
		Timestamp:    bridge.UnixMilli(env.Timestamp),
	}
	for _, a := range env.Attachments {
		out.Attachments = append(out.Attachments, &appsv0.Attachment{
			Type:     a.Type,
			Url:      a.URL,
			Filename: a.Filename,
			MimeType: a.MimeType,
			Size:     a.Size,
		})
	}
	return out
}
