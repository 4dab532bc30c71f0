package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
)

// HandleJoinButton processes the 🎮 button on an event card.
func (h *Handler) HandleJoinButton(s *discordgo.Session, i *discordgo.InteractionCreate, eventID string) {
	ctx := context.Background()
	event, err := h.eventUseCase.Join(ctx, i.GuildID, eventID, actor(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.joined",
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}

// HandleLeaveButton processes the 🚪 button on an event card.
func (h *Handler) HandleLeaveButton(s *discordgo.Session, i *discordgo.InteractionCreate, eventID string) {
	ctx := context.Background()
	event, err := h.eventUseCase.Leave(ctx, i.GuildID, eventID, actor(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.left",
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}

// HandleCheckinButton processes the 📋 button shown while check-in is active.
func (h *Handler) HandleCheckinButton(s *discordgo.Session, i *discordgo.InteractionCreate, eventID string) {
	ctx := context.Background()
	if err := h.checkinUseCase.CheckIn(ctx, i.GuildID, eventID, actor(i)); err != nil {
		h.respondError(s, i, err)
		return
	}
	event, err := h.eventUseCase.GetEvent(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.checked_in",
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}
