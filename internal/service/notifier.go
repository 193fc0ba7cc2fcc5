package service

import "context"

// InviteNotifier delivers membership invitations. Delivery is an external
// collaborator; the service only needs the hook.
type InviteNotifier interface {
	NotifyInvite(ctx context.Context, email, venueName string) error
}

// NoopInviteNotifier is the current placeholder delivery: it does nothing.
type NoopInviteNotifier struct{}

// NewNoopInviteNotifier creates a NoopInviteNotifier.
func NewNoopInviteNotifier() InviteNotifier {
	return NoopInviteNotifier{}
}

// NotifyInvite implements InviteNotifier.
func (NoopInviteNotifier) NotifyInvite(ctx context.Context, email, venueName string) error {
	return nil
}
