package discord

import (
	"context"
	"time"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "clanbot/pkg/discord"
)

func (h *Handler) HandleActivateCheckin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)
	eventID := optString(opts, "event_id")
	minutes := optInt(opts, "duree_minutes")

	err := h.checkinUseCase.Activate(ctx, i.GuildID, eventID, actor(i), time.Duration(minutes)*time.Minute)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if minutes > 0 {
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.checkin_activated_timed",
			map[string]any{"Minutes": minutes}))
	} else {
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.checkin_activated", nil))
	}
	h.refreshEventMessageByID(ctx, s, i.GuildID, eventID)
}

func (h *Handler) HandleDeactivateCheckin(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")
	if err := h.checkinUseCase.Deactivate(ctx, i.GuildID, eventID, actor(i)); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.checkin_deactivated", nil))
	h.refreshEventMessageByID(ctx, s, i.GuildID, eventID)
}

func (h *Handler) HandleCheckIn(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")
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

func (h *Handler) HandleAttendanceReport(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")

	report, err := h.checkinUseCase.Report(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	event, err := h.eventUseCase.GetEvent(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildAttendanceEmbed(event, report))
}
