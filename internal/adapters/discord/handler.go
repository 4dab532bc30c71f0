package discord

import (
	"github.com/bwmarrin/discordgo"
	"github.com/sirupsen/logrus"

	"clanbot/internal/ports/input"
	"clanbot/internal/ports/output"
	"clanbot/pkg/tz"
)

// Handler handles Discord interactions using use cases.
type Handler struct {
	eventUseCase   input.EventUseCase
	teamUseCase    input.TeamUseCase
	checkinUseCase input.CheckinUseCase
	translator     output.T
	converter      *tz.Converter
	log            *logrus.Logger
}

// NewHandler creates a Handler.
func NewHandler(
	eventUseCase input.EventUseCase,
	teamUseCase input.TeamUseCase,
	checkinUseCase input.CheckinUseCase,
	translator output.T,
	converter *tz.Converter,
	log *logrus.Logger,
) *Handler {
	return &Handler{
		eventUseCase:   eventUseCase,
		teamUseCase:    teamUseCase,
		checkinUseCase: checkinUseCase,
		translator:     translator,
		converter:      converter,
		log:            log,
	}
}

// locale extracts the user's locale from the interaction ("fr", "en-US", …).
func locale(i *discordgo.InteractionCreate) string {
	return string(i.Locale)
}

// commandOptions flattens the interaction options by name.
func commandOptions(i *discordgo.InteractionCreate) map[string]*discordgo.ApplicationCommandInteractionDataOption {
	opts := i.ApplicationCommandData().Options
	out := make(map[string]*discordgo.ApplicationCommandInteractionDataOption, len(opts))
	for _, opt := range opts {
		out[opt.Name] = opt
	}
	return out
}

func optString(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	if opt, ok := opts[name]; ok {
		return opt.StringValue()
	}
	return ""
}

func optInt(opts map[string]*discordgo.ApplicationCommandInteractionDataOption, name string) int {
	if opt, ok := opts[name]; ok {
		return int(opt.IntValue())
	}
	return 0
}

// actor returns the interacting user's ID, from guild or DM context.
func actor(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}
