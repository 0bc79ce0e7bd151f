package types

import "time"

// Member roles, ordered roughly by trust.
const (
	RoleMember     = "member"
	RoleInstructor = "instructor"
	RoleMentor     = "mentor"
	RoleAdmin      = "admin"
	RoleCouncil    = "council"
)

// Proposal statuses.
const (
	StatusDraft         = "draft"
	StatusPendingReview = "pending_review"
	StatusActive        = "active"
	StatusPassed        = "passed"
	StatusRejected      = "rejected"
	StatusImplemented   = "implemented"
)

// Vote choices.
const (
	ChoiceFor     = "for"
	ChoiceAgainst = "against"
	ChoiceAbstain = "abstain"
)

// Admin override actions.
const (
	ActionApprove        = "approve"
	ActionReject         = "reject"
	ActionImplement      = "implement"
	ActionVeto           = "veto"
	ActionForceImplement = "force_implement"
)

// Members are owned by the identity subsystem; this engine only reads them.
type Member struct {
	ID               uint64 `gorm:"primaryKey"`
	Handle           string `gorm:"size:64;unique;not null"`
	Role             string `gorm:"size:16;not null;default:member"`
	ReputationPoints int64  `gorm:"default:0"`
	TotalExperience  int64  `gorm:"default:0"`
	BadgeCount       int64  `gorm:"default:0"`
	CreatedAt        time.Time
}

// ProposalCategory carries per-category governance defaults.
type ProposalCategory struct {
	ID               uint64  `gorm:"primaryKey"`
	Name             string  `gorm:"size:64;not null"`
	Slug             string  `gorm:"size:64;unique;not null"`
	DefaultQuorum    int64   `gorm:"not null;default:10"`
	DefaultThreshold float64 `gorm:"not null;default:0.6"`
	CreatedAt        time.Time
}

type Proposal struct {
	ID              uint64 `gorm:"primaryKey"`
	Slug            string `gorm:"size:160;uniqueIndex;not null"`
	Title           string `gorm:"size:255;not null"`
	Description     string `gorm:"type:text;not null"`
	DetailedContent string `gorm:"type:mediumtext"`
	AuthorID        uint64 `gorm:"index;not null"`
	CategoryID      uint64 `gorm:"index"`
	Level           int    `gorm:"not null;default:1"`
	Tags            string `gorm:"size:255"`
	Status          string `gorm:"size:24;index;not null;default:draft"`

	QuorumRequired    int64   `gorm:"not null"`
	ApprovalThreshold float64 `gorm:"not null"`
	VotingStartsAt    *time.Time
	VotingEndsAt      *time.Time `gorm:"index"`

	// Running totals; always equal to the sum over the proposal's votes.
	TotalVotes         int64 `gorm:"not null;default:0"`
	TotalWeightFor     int64 `gorm:"not null;default:0"`
	TotalWeightAgainst int64 `gorm:"not null;default:0"`
	TotalWeightAbstain int64 `gorm:"not null;default:0"`

	ValidatedBy         *uint64
	ValidatedAt         *time.Time
	ValidationNotes     string `gorm:"type:text"`
	ImplementationNotes string `gorm:"type:text"`
	ImplementedAt       *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// Vote rows are append-only; one per (proposal, voter), enforced by the
// composite unique index.
type Vote struct {
	ID         uint64 `gorm:"primaryKey"`
	ProposalID uint64 `gorm:"uniqueIndex:idx_proposal_voter;not null"`
	VoterID    uint64 `gorm:"uniqueIndex:idx_proposal_voter;not null"`
	Choice     string `gorm:"size:8;not null"`

	// Trust snapshot frozen at cast time.
	WeightUsed       int64 `gorm:"not null"`
	ReputationAtVote int64 `gorm:"not null"`
	ExperienceAtVote int64 `gorm:"not null"`
	BadgesAtVote     int64 `gorm:"not null"`

	Comment   string `gorm:"size:2000"`
	CreatedAt time.Time
}

// AdminAction is the append-only audit record for override and
// validation decisions. Never updated or deleted.
type AdminAction struct {
	ID             uint64 `gorm:"primaryKey"`
	ProposalID     uint64 `gorm:"index;not null"`
	AdminID        uint64 `gorm:"not null"`
	Action         string `gorm:"size:24;not null"`
	PreviousStatus string `gorm:"size:24;not null"`
	NewStatus      string `gorm:"size:24;not null"`
	Reason         string `gorm:"type:text"`
	IsPublic       bool   `gorm:"default:false"`
	CreatedAt      time.Time
}

// Settings
type Setting struct {
	ID    uint8  `gorm:"primaryKey"`
	Name  string `gorm:"size:32;not null"`
	Value string `gorm:"size:256;not null"`
}

// MigrateModels lists everything the engine persists, in FK order.
var MigrateModels = []interface{}{
	&Member{},
	&ProposalCategory{},
	&Proposal{},
	&Vote{},
	&AdminAction{},
	&Setting{},
}
