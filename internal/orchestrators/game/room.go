package game

import (
	"context"

	"github.com/KirkDiggler/munchkin-api/internal/entities"
	"github.com/KirkDiggler/munchkin-api/internal/errors"
	"github.com/KirkDiggler/munchkin-api/internal/i18n"
)

// InviteLink returns the address other players open to join and logs
// that it was handed out
func (o *orchestrator) InviteLink(_ context.Context, input *InviteLinkInput) (*InviteLinkOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	roomID, err := validateScope(input.Scope)
	if err != nil {
		return nil, err
	}

	link := input.Room.ShareURL()
	if link == "" {
		return nil, errors.FailedPrecondition("room has no share address").WithRoom(roomID)
	}

	unlock := o.locks.lock(roomID)
	defer unlock()

	o.appendLogs(input.Room, o.newLog(language(input.Scope), entities.LogSuccess, i18n.KeyLinkCopied))

	return &InviteLinkOutput{URL: link}, nil
}
