package db

import "gorm.io/gorm"

// Repositories bundles every concrete repository over one connection.
type Repositories struct {
	Users    *UserRepository
	Groups   *GroupRepository
	Members  *MemberRepository
	Rounds   *RoundRepository
	Payments *PaymentRepository
}

// NewRepositories wires all repositories to a shared *gorm.DB.
func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:    NewUserRepository(database),
		Groups:   NewGroupRepository(database),
		Members:  NewMemberRepository(database),
		Rounds:   NewRoundRepository(database),
		Payments: NewPaymentRepository(database),
	}
}
