package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"clanbot/internal/domain/entities"
	pkgdiscord "clanbot/pkg/discord"
)

// eventButtons builds the join/leave/check-in row attached to an event card.
func eventButtons(event *entities.Event) []discordgo.MessageComponent {
	row := discordgo.ActionsRow{Components: []discordgo.MessageComponent{
		discordgo.Button{
			Label:    "Participer",
			Style:    discordgo.SuccessButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "🎮"},
			CustomID: "btn_join_" + event.ID,
		},
		discordgo.Button{
			Label:    "Ne plus participer",
			Style:    discordgo.SecondaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "🚪"},
			CustomID: "btn_leave_" + event.ID,
		},
	}}
	if event.Checkin.Active {
		row.Components = append(row.Components, discordgo.Button{
			Label:    "Se pointer",
			Style:    discordgo.PrimaryButton,
			Emoji:    &discordgo.ComponentEmoji{Name: "📋"},
			CustomID: "btn_checkin_" + event.ID,
		})
	}
	return []discordgo.MessageComponent{row}
}

// publishEventMessage posts the event card and records the message so later
// interactions and refreshes can find it.
func (h *Handler) publishEventMessage(ctx context.Context, s *discordgo.Session, channelID string, event *entities.Event) {
	msg, err := s.ChannelMessageSendComplex(channelID, &discordgo.MessageSend{
		Embeds:     []*discordgo.MessageEmbed{pkgdiscord.BuildEventEmbed(event, h.converter)},
		Components: eventButtons(event),
	})
	if err != nil {
		h.log.WithError(err).WithField("event_id", event.ID).Error("publication du message d'événement")
		return
	}
	if err := h.eventUseCase.LinkMessage(ctx, event.GuildID, event.ID, channelID, msg.ID); err != nil {
		h.log.WithError(err).WithField("event_id", event.ID).Error("liaison du message d'événement")
	}
}

// refreshEventMessage re-renders the event card after a state change.
func (h *Handler) refreshEventMessage(_ context.Context, s *discordgo.Session, event *entities.Event) {
	if event.ChannelID == "" || event.MessageID == "" {
		return
	}
	embeds := []*discordgo.MessageEmbed{pkgdiscord.BuildEventEmbed(event, h.converter)}
	components := eventButtons(event)
	_, err := s.ChannelMessageEditComplex(&discordgo.MessageEdit{
		Channel:    event.ChannelID,
		ID:         event.MessageID,
		Embeds:     &embeds,
		Components: &components,
	})
	if err != nil {
		h.log.WithError(err).WithField("event_id", event.ID).Error("mise à jour du message d'événement")
	}
}

func (h *Handler) refreshEventMessageByID(ctx context.Context, s *discordgo.Session, guildID, eventID string) {
	event, err := h.eventUseCase.GetEvent(ctx, guildID, eventID)
	if err != nil {
		h.log.WithError(err).WithField("event_id", eventID).Error(fmt.Sprintf("relecture de l'événement %s", eventID))
		return
	}
	h.refreshEventMessage(ctx, s, event)
}
