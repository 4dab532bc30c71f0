package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	pkgdiscord "clanbot/pkg/discord"
)

func (h *Handler) HandleRandomizeTeams(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	opts := commandOptions(i)
	eventID := optString(opts, "event_id")
	teamSize := optInt(opts, "team_size")

	teams, err := h.teamUseCase.RandomizeTeams(ctx, i.GuildID, eventID, teamSize)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	event, err := h.eventUseCase.GetEvent(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildTeamsEmbed(event, teams))
}

func (h *Handler) HandleShowTeams(s *discordgo.Session, i *discordgo.InteractionCreate) {
	ctx := context.Background()
	eventID := optString(commandOptions(i), "event_id")

	teams, err := h.teamUseCase.ShowTeams(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if len(teams) == 0 {
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.no_teams", nil))
		return
	}
	event, err := h.eventUseCase.GetEvent(ctx, i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEmbed(s, i.Interaction, pkgdiscord.BuildTeamsEmbed(event, teams))
}

func (h *Handler) HandleClearTeams(s *discordgo.Session, i *discordgo.InteractionCreate) {
	eventID := optString(commandOptions(i), "event_id")
	if err := h.teamUseCase.ClearTeams(context.Background(), i.GuildID, eventID); err != nil {
		h.respondError(s, i, err)
		return
	}
	respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.teams_cleared", nil))
}

func (h *Handler) HandleTeamStats(s *discordgo.Session, i *discordgo.InteractionCreate) {
	eventID := optString(commandOptions(i), "event_id")
	stats, err := h.teamUseCase.Stats(context.Background(), i.GuildID, eventID)
	if err != nil {
		h.respondError(s, i, err)
		return
	}
	if stats.TotalTeams == 0 {
		respondEphemeral(s, i.Interaction, h.translator.T(locale(i), "reply.no_teams", nil))
		return
	}

	sizes := make([]string, len(stats.TeamSizes))
	for j, n := range stats.TeamSizes {
		sizes[j] = fmt.Sprintf("%d", n)
	}
	respondEmbed(s, i.Interaction, &discordgo.MessageEmbed{
		Title: "📊 Statistiques des équipes",
		Color: pkgdiscord.ColorPrimary,
		Description: fmt.Sprintf(
			"**Équipes :** %d\n**Joueurs répartis :** %d\n**Tailles :** [%s]\n**Moyenne :** %.1f joueurs/équipe",
			stats.TotalTeams, stats.TotalParticipants, strings.Join(sizes, ", "), stats.AverageTeamSize),
	})
}
