package discord

import (
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"clanbot/internal/config"
)

// Bot is the Discord adapter.
type Bot struct {
	session *discordgo.Session
	config  *config.Config
	handler *Handler
	log     *logrus.Logger
}

// NewBot wires the session to the interaction handler.
func NewBot(cfg *config.Config, session *discordgo.Session, handler *Handler, log *logrus.Logger) *Bot {
	bot := &Bot{
		session: session,
		config:  cfg,
		handler: handler,
		log:     log,
	}
	bot.setupHandlers()
	return bot
}

func (b *Bot) setupHandlers() {
	b.session.AddHandler(b.handleInteraction)
}

func (b *Bot) handleInteraction(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.Type {
	case discordgo.InteractionApplicationCommand:
		b.routeCommand(s, i)
	case discordgo.InteractionMessageComponent:
		b.routeComponent(s, i)
	}
}

func (b *Bot) routeCommand(s *discordgo.Session, i *discordgo.InteractionCreate) {
	switch i.ApplicationCommandData().Name {
	case "create-event":
		b.handler.HandleCreateEvent(s, i)
	case "events":
		b.handler.HandleListEvents(s, i)
	case "event-info":
		b.handler.HandleEventInfo(s, i)
	case "join-event":
		b.handler.HandleJoinEvent(s, i)
	case "leave-event":
		b.handler.HandleLeaveEvent(s, i)
	case "start-event":
		b.handler.HandleStartEvent(s, i)
	case "complete-event":
		b.handler.HandleCompleteEvent(s, i)
	case "cancel-event":
		b.handler.HandleCancelEvent(s, i)
	case "delete-event":
		b.handler.HandleDeleteEvent(s, i)
	case "clear-events":
		b.handler.HandleClearEvents(s, i)
	case "randomize-teams":
		b.handler.HandleRandomizeTeams(s, i)
	case "show-teams":
		b.handler.HandleShowTeams(s, i)
	case "clear-teams":
		b.handler.HandleClearTeams(s, i)
	case "team-stats":
		b.handler.HandleTeamStats(s, i)
	case "activer-pointage":
		b.handler.HandleActivateCheckin(s, i)
	case "desactiver-pointage":
		b.handler.HandleDeactivateCheckin(s, i)
	case "pointer":
		b.handler.HandleCheckIn(s, i)
	case "rapport-presence":
		b.handler.HandleAttendanceReport(s, i)
	}
}

func (b *Bot) routeComponent(s *discordgo.Session, i *discordgo.InteractionCreate) {
	customID := i.MessageComponentData().CustomID
	switch {
	case strings.HasPrefix(customID, "btn_join_"):
		b.handler.HandleJoinButton(s, i, strings.TrimPrefix(customID, "btn_join_"))
	case strings.HasPrefix(customID, "btn_leave_"):
		b.handler.HandleLeaveButton(s, i, strings.TrimPrefix(customID, "btn_leave_"))
	case strings.HasPrefix(customID, "btn_checkin_"):
		b.handler.HandleCheckinButton(s, i, strings.TrimPrefix(customID, "btn_checkin_"))
	}
}

// Start runs the bot until interrupted.
func (b *Bot) Start() error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("erreur lors de l'ouverture de la session: %w", err)
	}
	defer b.session.Close()

	for _, cmd := range commandDefinitions {
		if _, err := b.session.ApplicationCommandCreate(b.session.State.User.ID, b.config.GuildID, cmd); err != nil {
			b.log.WithError(err).Warnf("⚠️ Erreur lors de l'enregistrement de la commande %s", cmd.Name)
		}
	}

	b.log.Info("🤖 Bot en ligne ! Appuyez sur CTRL+C pour quitter.")
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	<-stop

	return nil
}
