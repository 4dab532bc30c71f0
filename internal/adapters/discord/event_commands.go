package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/input"
	pkgdiscord "clanbot/pkg/discord"
)

func (h *Handler) HandleCreateEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)

	event, err := h.eventUseCase.CreateEvent(ctx, input.CreateEventParams{
		GuildID:     i.GuildID,
		CreatorID:   actor(i),
		Type:        domain.EventType(optString(opts, "type")),
		Name:        optString(opts, "name"),
		Description: optString(opts, "description"),
		Date:        optString(opts, "date"),
		Time:        optString(opts, "heure"),
		TeamSize:    optInt(opts, "team_size"),
	})
	if err != nil {
		h.respondError(s, i, err)
		return
	}

	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.event_created",
		map[string]any{"Name": event.Name, "ID": event.ID}))
	h.publishEventMessage(ctx, s, i.ChannelID, event)
}

func (h *Handler) HandleListEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	events, err := h.eventUseCase.ListEvents(context.Background(), i.GuildID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if len(events) == 0 {
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.no_events", nil))
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildEventListEmbed(events, h.converter))
}

func (h *Handler) HandleEventInfo(s *discordgo.Session, i *discordgo.InteractionCreate) {
	eventID := optString(commandOptions(i), "event_id")
	event, err := h.eventUseCase.GetEvent(context.Background(), i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildEventEmbed(event, h.converter))
}

func (h *Handler) HandleJoinEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")
	event, err := h.eventUseCase.Join(ctx, i.GuildID, eventID, actor(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.joined",
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}

func (h *Handler) HandleLeaveEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")
	event, err := h.eventUseCase.Leave(ctx, i.GuildID, eventID, actor(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.left",
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}

func (h *Handler) HandleStartEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handleTransition(s, i, h.eventUseCase.Start, "reply.event_started")
}

func (h *Handler) HandleCompleteEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handleTransition(s, i, h.eventUseCase.Complete, "reply.event_completed")
}

func (h *Handler) HandleCancelEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	h.handleTransition(s, i, h.eventUseCase.Cancel, "reply.event_cancelled")
}

type transitionFunc func(ctx context.Context, guildID, eventID, actorID string) (*entities.Event, error)

func (h *Handler) handleTransition(s *discordgo.Session, i *discordgo.InteractionCreate, fn transitionFunc, replyKey string) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")
	event, err := fn(ctx, i.GuildID, eventID, actor(i))
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), replyKey,
		map[string]any{"Name": event.Name}))
	h.refreshEventMessage(ctx, s, event)
}

func (h *Handler) HandleDeleteEvent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	eventID := optString(commandOptions(i), "event_id")
	if err := h.eventUseCase.DeleteEvent(context.Background(), i.GuildID, eventID, actor(i)); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.event_deleted", nil))
}

func (h *Handler) HandleClearEvents(s *discordgo.Session, i *discordgo.InteractionCreate) {
	count, err := h.eventUseCase.ClearEvents(context.Background(), i.GuildID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.events_cleared",
		map[string]any{"Count": count}))
}
