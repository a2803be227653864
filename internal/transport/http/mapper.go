package http

import (
	"time"

	"github.com/vovakirdan/starboard/internal/core"
	"github.com/vovakirdan/starboard/internal/proto"
)

func messageToProto(m core.Message) proto.Message {
	return proto.Message{
		ID:          m.ID,
		Text:        m.Text,
		SenderID:    m.SenderID,
		SenderColor: m.SenderColor.String(),
		SenderName:  m.SenderName,
		SenderShape: m.SenderShape.String(),
		Timestamp:   m.CreatedAt.Format(time.RFC3339Nano),
	}
}

func messagesToProto(msgs []core.Message) []proto.Message {
	out := make([]proto.Message, 0, len(msgs))
	for _, m := range msgs {
		out = append(out, messageToProto(m))
	}
	return out
}

func profileToProto(p core.Profile) proto.Profile {
	return proto.Profile{
		Color: p.Color.String(),
		Name:  p.Name,
		Shape: p.Shape.String(),
	}
}

func paletteToProto() proto.PaletteResponse {
	colors := core.Palette()
	shapes := core.Shapes()

	resp := proto.PaletteResponse{
		Colors: make([]string, 0, len(colors)),
		Shapes: make([]string, 0, len(shapes)),
	}
	for _, c := range colors {
		resp.Colors = append(resp.Colors, c.String())
	}
	for _, s := range shapes {
		resp.Shapes = append(resp.Shapes, s.String())
	}
	return resp
}
