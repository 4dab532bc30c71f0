package output

import "context"

// PermissionChecker answers whether a user holds elevated (administrator)
// rights in a guild. Creator rights are checked by the services themselves.
type PermissionChecker interface {
	IsAdmin(ctx context.Context, guildID, userID string) (bool, error)
}
