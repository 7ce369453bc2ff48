package models

import "errors"

var (
	// ErrEmailTaken signals a registration attempt with a known email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials signals a wrong email or password.
	ErrInvalidCredentials = errors.New("invalid email or password")
	// ErrInactiveUser signals a deactivated account authenticating
	// with otherwise valid credentials.
	ErrInactiveUser = errors.New("account is deactivated")
	// ErrUserNotFound signals a missing user.
	ErrUserNotFound = errors.New("user not found")
	// ErrGroupNotFound signals a missing group.
	ErrGroupNotFound = errors.New("group not found")
	// ErrMemberNotFound signals a missing membership.
	ErrMemberNotFound = errors.New("member not found")
	// ErrRoundNotFound signals a missing round.
	ErrRoundNotFound = errors.New("round not found")
	// ErrPaymentNotFound signals a missing payment.
	ErrPaymentNotFound = errors.New("payment not found")
	// ErrNotHost signals a mutation attempted by someone other than
	// the group's host.
	ErrNotHost = errors.New("only the host may perform this action")
	// ErrGroupFull signals an admission beyond max_members.
	ErrGroupFull = errors.New("group has reached its maximum number of members")
	// ErrAlreadyMember signals a duplicate (user, group) membership.
	ErrAlreadyMember = errors.New("user is already a member of this group")
	// ErrPaymentExists signals a duplicate (payer, round) payment.
	ErrPaymentExists = errors.New("payer already has a payment registered for this round")
	// ErrInvalidStatus signals an unrecognized status string.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidFrequency signals an unrecognized contribution period.
	ErrInvalidFrequency = errors.New("invalid frequency")
)
