package discord

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanbot/internal/domain"
	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/input"
	"clanbot/pkg/tz"
)

const (
	ColorPrimary = 0x00bfff
	ColorSuccess = 0x00ff00
	ColorError   = 0xff0000
	ColorWarning = 0xffff00
)

// teamEmojis give each team a visual marker in the embeds.
var teamEmojis = []string{"🔵", "🔴", "🟡", "🟢", "🟠", "🟣", "⚫", "⚪", "🟤", "🔷", "🔶", "💎"}

var statusLabels = map[domain.EventStatus]string{
	domain.StatusOpen:       "🟢 Ouvert",
	domain.StatusFull:       "🔶 Complet",
	domain.StatusInProgress: "▶️ En cours",
	domain.StatusCompleted:  "🏁 Terminé",
	domain.StatusCancelled:  "🚫 Annulé",
}

// StatusLabel renders an event status for display.
func StatusLabel(s domain.EventStatus) string {
	if label, ok := statusLabels[s]; ok {
		return label
	}
	return string(s)
}

func mention(userID string) string {
	return fmt.Sprintf("<@%s>", userID)
}

// BuildEventEmbed renders the event card posted in the events channel and
// kept up to date as participants join and leave.
func BuildEventEmbed(event *entities.Event, converter *tz.Converter) *discordgo.MessageEmbed {
	var b strings.Builder
	b.WriteString(event.Description)
	b.WriteString(fmt.Sprintf("\n\n**Organisé par :** %s", mention(event.CreatorID)))
	if !event.StartTime.IsZero() {
		b.WriteString(fmt.Sprintf("\n**Quand :** %s", converter.Format(event.StartTime)))
	}
	b.WriteString(fmt.Sprintf("\n**Statut :** %s", StatusLabel(event.Status)))
	b.WriteString(fmt.Sprintf("\n**Participants :** %d/%d", len(event.Participants), event.MaxParticipants))
	if event.TeamSize > 0 {
		b.WriteString(fmt.Sprintf("\n**Taille d'équipe :** %d", event.TeamSize))
	}
	if event.Checkin.Active {
		b.WriteString(fmt.Sprintf("\n**Pointage :** actif (%d pointé(s))", len(event.Checkin.CheckedIn)))
	}

	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("📅 %s", event.Name),
		Description: b.String(),
		Color:       ColorPrimary,
		Footer:      &discordgo.MessageEmbedFooter{Text: fmt.Sprintf("ID : %s • %s", event.ID, event.Type)},
	}

	if len(event.Participants) > 0 {
		mentions := make([]string, len(event.Participants))
		for i, id := range event.Participants {
			mentions[i] = "- " + mention(id)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "🎮 Inscrits",
			Value: truncateField(strings.Join(mentions, "\n")),
		})
	}
	return embed
}

// BuildEventListEmbed renders the /events summary.
func BuildEventListEmbed(events []entities.Event, converter *tz.Converter) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: "📅 Événements du clan",
		Color: ColorPrimary,
	}
	for _, e := range events {
		value := fmt.Sprintf("%s • %d/%d participants", StatusLabel(e.Status), len(e.Participants), e.MaxParticipants)
		if !e.StartTime.IsZero() {
			value += " • " + converter.Format(e.StartTime)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s (`%s`)", e.Name, e.ID),
			Value: value,
		})
	}
	return embed
}

// BuildTeamsEmbed renders a team partition.
func BuildTeamsEmbed(event *entities.Event, teams []entities.Team) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("⚔️ Équipes — %s", event.Name),
		Description: fmt.Sprintf("%d équipe(s) tirée(s) au sort", len(teams)),
		Color:       ColorSuccess,
	}
	for i, team := range teams {
		emoji := teamEmojis[i%len(teamEmojis)]
		mentions := make([]string, len(team))
		for j, id := range team {
			mentions[j] = mention(id)
		}
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  fmt.Sprintf("%s Équipe %d (%d joueurs)", emoji, i+1, len(team)),
			Value: truncateField(strings.Join(mentions, "\n")),
		})
	}
	return embed
}

// BuildAttendanceEmbed renders the attendance report.
func BuildAttendanceEmbed(event *entities.Event, report input.AttendanceReport) *discordgo.MessageEmbed {
	embed := &discordgo.MessageEmbed{
		Title: fmt.Sprintf("📋 Rapport de présence — %s", event.Name),
		Color: ColorPrimary,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name: "📈 Statistiques",
				Value: fmt.Sprintf("Présents : %d\nAbsents : %d\nTaux de présence : %.0f%%",
					len(report.Present), len(report.Absent), report.Rate*100),
			},
		},
	}
	if len(report.Present) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "✅ Participants présents",
			Value: truncateField(joinMentions(report.Present)),
		})
	}
	if len(report.Absent) > 0 {
		embed.Fields = append(embed.Fields, &discordgo.MessageEmbedField{
			Name:  "❌ Participants absents",
			Value: truncateField(joinMentions(report.Absent)),
		})
	}
	return embed
}

func joinMentions(ids []string) string {
	mentions := make([]string, len(ids))
	for i, id := range ids {
		mentions[i] = mention(id)
	}
	return strings.Join(mentions, " ")
}

// truncateField keeps a field value under Discord's 1024-char limit.
func truncateField(s string) string {
	const limit = 1024
	if len(s) <= limit {
		return s
	}
	return s[:limit-len("…")] + "…"
}
