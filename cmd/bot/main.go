package main

import (
	"context"
	"math/rand/v2"
	"os"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"clanbot/internal/adapters/discord"
	"clanbot/internal/application"
	"clanbot/internal/config"
	"clanbot/internal/infrastructure/clock"
	"clanbot/internal/infrastructure/i18n"
	"clanbot/internal/infrastructure/memstore"
	"clanbot/pkg/tz"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Erreur de configuration: %v", err)
	}

	converter, err := tz.NewConverter(cfg.Timezone)
	if err != nil {
		log.Fatalf("❌ Fuseau horaire invalide: %v", err)
	}

	session, err := discordgo.New("Bot " + cfg.Token)
	if err != nil {
		log.Fatalf("❌ Erreur lors de la création de la session Discord: %v", err)
	}
	session.Identify.Intents = discordgo.IntentsGuilds | discordgo.IntentsGuildMessages

	translator := i18n.NewTranslator(cfg.Locale, log)
	store := memstore.New()
	sysClock := clock.System{}
	perms := discord.NewSessionPermissions(session)
	notifier := discord.NewNotifier(session, translator, cfg.Locale)

	reminders := application.NewReminderService(store, notifier, sysClock, cfg.ReminderLead, log)
	eventUC := application.NewEventService(store, perms, reminders, converter, sysClock, log)
	teamUC := application.NewTeamService(store, rand.New(rand.NewPCG(rand.Uint64(), uint64(time.Now().UnixNano()))), log)
	checkinUC := application.NewCheckinService(store, perms, sysClock, log)

	handler := discord.NewHandler(eventUC, teamUC, checkinUC, translator, converter, log)
	bot := discord.NewBot(cfg, session, handler, log)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go reminders.Run(ctx)

	if err := bot.Start(); err != nil {
		log.Errorf("❌ Erreur lors du démarrage du bot: %v", err)
		os.Exit(1)
	}
}
