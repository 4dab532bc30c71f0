package discord

import (
	"context"
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"clanbot/internal/domain/entities"
	"clanbot/internal/ports/output"
)

var _ output.Notifier = (*Notifier)(nil)

// Notifier delivers event reminders into the event's own channel,
// mentioning every current participant.
type Notifier struct {
	session    *discordgo.Session
	translator output.T
	locale     string
}

func NewNotifier(session *discordgo.Session, translator output.T, locale string) *Notifier {
	return &Notifier{session: session, translator: translator, locale: locale}
}

func (n *Notifier) NotifyEventStarting(ctx context.Context, event entities.Event) error {
	if event.ChannelID == "" {
		return fmt.Errorf("event %s has no channel to notify", event.ID)
	}

	mentions := make([]string, len(event.Participants))
	for i, id := range event.Participants {
		mentions[i] = fmt.Sprintf("<@%s>", id)
	}
	content := n.translator.T(n.locale, "reminder.starting", map[string]any{
		"Mentions": strings.Join(mentions, " "),
		"Name":     event.Name,
	})

	_, err := n.session.ChannelMessageSend(event.ChannelID, content, discordgo.WithContext(ctx))
	if err != nil {
		return fmt.Errorf("send reminder for event %s: %w", event.ID, err)
	}
	return nil
}
