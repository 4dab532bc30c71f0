package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"clanbot/internal/ports/output"
)

var _ output.PermissionChecker = (*SessionPermissions)(nil)

// SessionPermissions answers admin checks from the Discord session's view of
// guild members.
type SessionPermissions struct {
	session *discordgo.Session
}

func NewSessionPermissions(session *discordgo.Session) *SessionPermissions {
	return &SessionPermissions{session: session}
}

func (p *SessionPermissions) IsAdmin(_ context.Context, guildID, userID string) (bool, error) {
	member, err := p.session.State.Member(guildID, userID)
	if err != nil {
		member, err = p.session.GuildMember(guildID, userID)
		if err != nil {
			return false, fmt.Errorf("guild member %s: %w", userID, err)
		}
	}

	guild, err := p.session.State.Guild(guildID)
	if err == nil && guild.OwnerID == userID {
		return true, nil
	}
	if guild == nil {
		return false, nil
	}
	for _, roleID := range member.Roles {
		for _, role := range guild.Roles {
			if role.ID == roleID && role.Permissions&discordgo.PermissionAdministrator != 0 {
				return true, nil
			}
		}
	}
	return false, nil
}
