package alternance

import "context"

// MentorService defines the mentor management operations.
type MentorService interface {
	Create(ctx context.Context, mentor *Mentor, username string) (*Mentor, error)
	Get(ctx context.Context, mentorID string) (*Mentor, error)
	List(ctx context.Context, query *MentorQuery) ([]*Mentor, error)
	Update(ctx context.Context, mentor *Mentor, username string) (*Mentor, error)
	// Deactivate flags the mentor as inactive. Mentors are never hard deleted.
	Deactivate(ctx context.Context, mentorID, username string) (*Mentor, error)
}

// ContractService defines the alternance contract operations.
type ContractService interface {
	// Create stores a contract after checking its mentor exists, is active and
	// has a free supervision slot.
	Create(ctx context.Context, contract *Contract, username string) (*Contract, error)
	Get(ctx context.Context, contractID string) (*Contract, error)
	List(ctx context.Context, query *ContractQuery) ([]*Contract, error)
	TransitionStatus(ctx context.Context, contractID, status, username string) (*Contract, error)
}

// MentorRepository defines persistence operations for mentors.
type MentorRepository interface {
	Create(ctx context.Context, mentor *Mentor) error
	List(ctx context.Context, query *MentorQuery) ([]*Mentor, error)
	GetByID(ctx context.Context, mentorID string) (*Mentor, error)
	UpdateByID(ctx context.Context, mentor *Mentor) error
}

// ContractRepository defines persistence operations for contracts.
type ContractRepository interface {
	Create(ctx context.Context, contract *Contract) error
	List(ctx context.Context, query *ContractQuery) ([]*Contract, error)
	GetByID(ctx context.Context, contractID string) (*Contract, error)
	UpdateByID(ctx context.Context, contract *Contract) error
	// CountRunningByMentor counts the validated, active and suspended contracts of a mentor.
	CountRunningByMentor(ctx context.Context, mentorID string) (int64, error)
}
