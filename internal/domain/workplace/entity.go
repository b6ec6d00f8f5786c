package workplace

import (
	"time"

	"github.com/geekganization/MOUP-sub000/internal/domain/wage"
)

// Workplace is one business location operated by an owner.
type Workplace struct {
	ID        string
	OwnerID   string
	Name      string
	Address   *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Member is a worker belonging to a workplace together with the wage
// profile of that membership. Profile is nil when the worker has not
// registered one yet; such workers contribute zero to aggregates.
type Member struct {
	WorkerID string
	Nickname string
	JoinedAt time.Time
	Profile  *wage.Profile
}
