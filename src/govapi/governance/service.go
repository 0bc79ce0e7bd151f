package governance

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/openlearn-dev/community-gov/src/govapi/data"
	"github.com/openlearn-dev/community-gov/src/govapi/types"
)

// TrustSignalProvider exposes a member's standing at query time. Owned
// by the identity/reputation subsystem; this engine only reads it.
type TrustSignalProvider interface {
	GetTrustSignals(ctx context.Context, memberID uint64) (TrustSignals, error)
}

// Notifier is the fire-and-forget seam to the notification subsystem.
// Failures are logged by implementations and never block governance.
type Notifier interface {
	Notify(ctx context.Context, event string, payload map[string]interface{})
}

// Config carries the governance policy knobs the service needs.
type Config struct {
	Policy           Policy
	Weights          WeightPolicy
	VotingWindowL1   time.Duration
	VotingWindowL2   time.Duration
	DefaultQuorum    int64
	DefaultThreshold float64
}

// DefaultConfig returns sensible defaults for the governance engine.
func DefaultConfig() Config {
	return Config{
		Policy:           DefaultPolicy(),
		Weights:          DefaultWeightPolicy(),
		VotingWindowL1:   7 * 24 * time.Hour,
		VotingWindowL2:   14 * 24 * time.Hour,
		DefaultQuorum:    10,
		DefaultThreshold: 0.6,
	}
}

// Operator overrides stored in the settings table take precedence
// over the configured defaults. Unparseable values fall back.
func settingInt(name string, def int64) int64 {
	if v := data.GetSetting(name); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil && n > 0 {
			return n
		}
	}
	return def
}

func settingFloat(name string, def float64) float64 {
	if v := data.GetSetting(name); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil && f > 0 && f <= 1 {
			return f
		}
	}
	return def
}

func settingDuration(name string, def time.Duration) time.Duration {
	if v := data.GetSetting(name); v != "" {
		if d, err := time.ParseDuration(v); err == nil && d > 0 {
			return d
		}
	}
	return def
}

func (s *Service) votingWindow(level int) time.Duration {
	if level >= 2 {
		return settingDuration("voting_window_l2", s.cfg.VotingWindowL2)
	}
	return settingDuration("voting_window_l1", s.cfg.VotingWindowL1)
}

// Service orchestrates the proposal lifecycle, vote ledger and
// override path. It keeps no mutable state of its own; all
// coordination is pushed into the store's atomicity guarantees.
type Service struct {
	db     *gorm.DB
	cfg    Config
	trust  TrustSignalProvider
	notify Notifier

	// Injectable clock
	now func() time.Time
}

func NewService(db *gorm.DB, cfg Config, trust TrustSignalProvider, notify Notifier) *Service {
	if trust == nil {
		trust = DBTrustProvider{DB: db}
	}
	if notify == nil {
		notify = nopNotifier{}
	}
	return &Service{db: db, cfg: cfg, trust: trust, notify: notify, now: time.Now}
}

// DBTrustProvider reads trust signals straight from the members table.
type DBTrustProvider struct {
	DB *gorm.DB
}

func (p DBTrustProvider) GetTrustSignals(ctx context.Context, memberID uint64) (TrustSignals, error) {
	var m types.Member
	if err := p.DB.WithContext(ctx).First(&m, memberID).Error; err != nil {
		return TrustSignals{}, fmt.Errorf("trust signals for member %d: %w", memberID, err)
	}
	return TrustSignals{
		ReputationPoints: m.ReputationPoints,
		TotalExperience:  m.TotalExperience,
		BadgeCount:       m.BadgeCount,
	}, nil
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, string, map[string]interface{}) {}

func (s *Service) member(ctx context.Context, id uint64) (types.Member, error) {
	var m types.Member
	if err := s.db.WithContext(ctx).First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return m, ErrPermissionDenied
		}
		return m, fmt.Errorf("load member %d: %w", id, err)
	}
	return m, nil
}

func (s *Service) proposal(ctx context.Context, id uint64) (types.Proposal, error) {
	var p types.Proposal
	if err := s.db.WithContext(ctx).First(&p, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return p, ErrNotFound
		}
		return p, fmt.Errorf("load proposal %d: %w", id, err)
	}
	return p, nil
}

var (
	slugStrip  = regexp.MustCompile(`[^a-z0-9]+`)
	slugDigits = regexp.MustCompile(`^[0-9]+$`)
)

func slugify(title string) string {
	s := strings.Trim(slugStrip.ReplaceAllString(strings.ToLower(title), "-"), "-")
	if len(s) > 120 {
		s = s[:120]
	}
	if s == "" {
		s = "proposal"
	}
	// An all-digit slug would be read as an id on lookup, making the
	// proposal unreachable by slug. Keep slugs non-numeric.
	if slugDigits.MatchString(s) {
		s += "-proposal"
	}
	return s
}

// CreateProposalInput is the author-supplied part of a new proposal.
type CreateProposalInput struct {
	Title           string
	Description     string
	DetailedContent string
	Level           int
	CategoryID      uint64
	Tags            []string
}

// CreateProposal creates a draft proposal after the level/role gate.
func (s *Service) CreateProposal(ctx context.Context, authorID uint64, in CreateProposalInput) (*types.Proposal, error) {
	author, err := s.member(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if in.Level < 1 || in.Level > 2 {
		return nil, fmt.Errorf("%w: level must be 1 or 2", ErrValidationFailed)
	}
	if !s.cfg.Policy.CanCreate(in.Level, author.Role) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(in.Title) == "" || strings.TrimSpace(in.Description) == "" {
		return nil, fmt.Errorf("%w: title and description are required", ErrValidationFailed)
	}

	quorum := settingInt("default_quorum", s.cfg.DefaultQuorum)
	threshold := settingFloat("default_threshold", s.cfg.DefaultThreshold)
	if in.CategoryID != 0 {
		var cat types.ProposalCategory
		if err := s.db.WithContext(ctx).First(&cat, in.CategoryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, fmt.Errorf("%w: unknown category", ErrValidationFailed)
			}
			return nil, fmt.Errorf("load category %d: %w", in.CategoryID, err)
		}
		quorum = cat.DefaultQuorum
		threshold = cat.DefaultThreshold
	}

	slug := slugify(in.Title)
	var count int64
	if err := s.db.WithContext(ctx).Model(&types.Proposal{}).Where("slug = ?", slug).Count(&count).Error; err != nil {
		return nil, fmt.Errorf("check slug: %w", err)
	}
	if count > 0 {
		slug = slug + "-" + uuid.NewString()[:8]
	}

	now := s.now().UTC()
	p := types.Proposal{
		Slug:              slug,
		Title:             in.Title,
		Description:       in.Description,
		DetailedContent:   in.DetailedContent,
		AuthorID:          author.ID,
		CategoryID:        in.CategoryID,
		Level:             in.Level,
		Tags:              strings.Join(in.Tags, ","),
		Status:            types.StatusDraft,
		QuorumRequired:    quorum,
		ApprovalThreshold: threshold,
		CreatedAt:         now,
		UpdatedAt:         now,
	}
	if err := s.db.WithContext(ctx).Create(&p).Error; err != nil {
		return nil, fmt.Errorf("create proposal: %w", err)
	}
	return &p, nil
}

// SubmitForReview moves a draft into the review queue. Author only.
func (s *Service) SubmitForReview(ctx context.Context, proposalID, authorID uint64) (*types.Proposal, error) {
	p, err := s.proposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if p.AuthorID != authorID {
		return nil, ErrPermissionDenied
	}

	res := s.db.WithContext(ctx).Model(&types.Proposal{}).
		Where("id = ? AND status = ?", p.ID, types.StatusDraft).
		Updates(map[string]interface{}{
			"status":     types.StatusPendingReview,
			"updated_at": s.now().UTC(),
		})
	if res.Error != nil {
		return nil, fmt.Errorf("submit proposal %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, ErrInvalidState
	}

	out, err := s.proposal(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	s.notify.Notify(ctx, "proposal.submitted", map[string]interface{}{
		"proposal_id": out.ID, "slug": out.Slug, "author_id": out.AuthorID,
	})
	return &out, nil
}

// ValidateProposal approves a pending proposal into its voting window,
// or rejects it. Validators are gated by the proposal's level.
func (s *Service) ValidateProposal(ctx context.Context, proposalID, validatorID uint64, approve bool, notes string) (*types.Proposal, error) {
	validator, err := s.member(ctx, validatorID)
	if err != nil {
		return nil, err
	}
	p, err := s.proposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	if !s.cfg.Policy.CanValidate(p.Level, validator.Role) {
		return nil, ErrPermissionDenied
	}
	if !approve && strings.TrimSpace(notes) == "" {
		return nil, fmt.Errorf("%w: rejection requires validation notes", ErrValidationFailed)
	}

	now := s.now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{
			"validated_by":     validator.ID,
			"validated_at":     now,
			"validation_notes": notes,
			"updated_at":       now,
		}
		action := types.ActionReject
		if approve {
			ends := now.Add(s.votingWindow(p.Level))
			updates["status"] = types.StatusActive
			updates["voting_starts_at"] = now
			updates["voting_ends_at"] = ends
			updates["total_votes"] = 0
			updates["total_weight_for"] = 0
			updates["total_weight_against"] = 0
			updates["total_weight_abstain"] = 0
			action = types.ActionApprove
		} else {
			updates["status"] = types.StatusRejected
		}

		res := tx.Model(&types.Proposal{}).
			Where("id = ? AND status = ?", p.ID, types.StatusPendingReview).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}

		newStatus := types.StatusRejected
		if approve {
			newStatus = types.StatusActive
		}
		return tx.Create(&types.AdminAction{
			ProposalID:     p.ID,
			AdminID:        validator.ID,
			Action:         action,
			PreviousStatus: types.StatusPendingReview,
			NewStatus:      newStatus,
			Reason:         notes,
			IsPublic:       true,
			CreatedAt:      now,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("validate proposal %d: %w", p.ID, err)
	}

	out, err := s.proposal(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	event := "proposal.rejected"
	if approve {
		event = "proposal.activated"
	}
	s.notify.Notify(ctx, event, map[string]interface{}{
		"proposal_id": out.ID, "slug": out.Slug, "validator_id": validator.ID,
	})
	return &out, nil
}

// CastVoteResult returns the appended vote plus the proposal's updated
// totals so callers can render feedback without a second read.
type CastVoteResult struct {
	Vote     types.Vote
	Proposal types.Proposal
	Tally    Tally
}

// CastVote appends one immutable vote and bumps the running totals in
// the same transaction. The (proposal, voter) unique index is the
// source of truth for double votes; the transaction keeps the totals
// in step with the vote rows.
func (s *Service) CastVote(ctx context.Context, proposalID, voterID uint64, choice, comment string) (*CastVoteResult, error) {
	switch choice {
	case types.ChoiceFor, types.ChoiceAgainst, types.ChoiceAbstain:
	default:
		return nil, fmt.Errorf("%w: choice must be for, against or abstain", ErrValidationFailed)
	}
	if len(comment) > 2000 {
		return nil, fmt.Errorf("%w: comment too long", ErrValidationFailed)
	}
	if _, err := s.member(ctx, voterID); err != nil {
		return nil, err
	}

	sig, err := s.trust.GetTrustSignals(ctx, voterID)
	if err != nil {
		return nil, err
	}
	weight := s.cfg.Weights.Weight(sig)
	now := s.now().UTC()

	var result CastVoteResult
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p types.Proposal
		if err := tx.First(&p, proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}
		if p.Status != types.StatusActive {
			return ErrVotingClosed
		}
		// The window check stands on its own: a lapsed proposal the
		// sweeper has not reached yet still refuses votes.
		if p.VotingStartsAt == nil || p.VotingEndsAt == nil ||
			now.Before(*p.VotingStartsAt) || !now.Before(*p.VotingEndsAt) {
			return ErrVotingClosed
		}

		var dup int64
		if err := tx.Model(&types.Vote{}).
			Where("proposal_id = ? AND voter_id = ?", p.ID, voterID).
			Count(&dup).Error; err != nil {
			return err
		}
		if dup > 0 {
			return ErrAlreadyVoted
		}

		vote := types.Vote{
			ProposalID:       p.ID,
			VoterID:          voterID,
			Choice:           choice,
			WeightUsed:       weight,
			ReputationAtVote: sig.ReputationPoints,
			ExperienceAtVote: sig.TotalExperience,
			BadgesAtVote:     sig.BadgeCount,
			Comment:          comment,
			CreatedAt:        now,
		}
		if err := tx.Create(&vote).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrAlreadyVoted
			}
			return err
		}

		bucket := map[string]string{
			types.ChoiceFor:     "total_weight_for",
			types.ChoiceAgainst: "total_weight_against",
			types.ChoiceAbstain: "total_weight_abstain",
		}[choice]
		// Conditional on status so a concurrent close rolls the whole
		// cast back instead of leaving a vote on a finalized proposal.
		res := tx.Model(&types.Proposal{}).
			Where("id = ? AND status = ?", p.ID, types.StatusActive).
			UpdateColumns(map[string]interface{}{
				"total_votes": gorm.Expr("total_votes + 1"),
				bucket:        gorm.Expr(bucket+" + ?", weight),
				"updated_at":  now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrVotingClosed
		}

		if err := tx.First(&p, p.ID).Error; err != nil {
			return err
		}
		result.Vote = vote
		result.Proposal = p
		result.Tally = Evaluate(&p)
		return nil
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrVotingClosed), errors.Is(err, ErrAlreadyVoted):
			return nil, err
		}
		return nil, fmt.Errorf("cast vote on proposal %d: %w", proposalID, err)
	}

	s.notify.Notify(ctx, "vote.cast", map[string]interface{}{
		"proposal_id": result.Proposal.ID, "voter_id": voterID, "choice": choice,
	})
	return &result, nil
}

// CloseExpired finalizes an active proposal whose voting window has
// lapsed. Idempotent: already-closed proposals and windows still open
// are no-ops returning the current row, so the periodic sweep and an
// on-demand check never race into a double transition.
func (s *Service) CloseExpired(ctx context.Context, proposalID uint64) (*types.Proposal, error) {
	p, err := s.proposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	now := s.now().UTC()
	if p.Status != types.StatusActive || p.VotingEndsAt == nil || now.Before(*p.VotingEndsAt) {
		return &p, nil
	}

	tally := Evaluate(&p)
	newStatus := types.StatusRejected
	if tally.Passes {
		newStatus = types.StatusPassed
	}

	res := s.db.WithContext(ctx).Model(&types.Proposal{}).
		Where("id = ? AND status = ?", p.ID, types.StatusActive).
		Updates(map[string]interface{}{
			"status":     newStatus,
			"updated_at": now,
		})
	if res.Error != nil {
		return nil, fmt.Errorf("close proposal %d: %w", p.ID, res.Error)
	}
	if res.RowsAffected == 0 {
		// Another caller won the close race; read back their result.
		out, err := s.proposal(ctx, p.ID)
		if err != nil {
			return nil, err
		}
		return &out, nil
	}

	out, err := s.proposal(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	log.Printf("proposal %d (%s) closed as %s: votes=%d ratio=%.3f quorum=%v",
		out.ID, out.Slug, out.Status, out.TotalVotes, tally.ApprovalRatio, tally.QuorumMet)
	s.notify.Notify(ctx, "proposal.closed", map[string]interface{}{
		"proposal_id": out.ID, "slug": out.Slug, "status": out.Status,
	})
	return &out, nil
}

// MarkImplemented records that a passed proposal has been carried out.
func (s *Service) MarkImplemented(ctx context.Context, proposalID, adminID uint64, notes string) (*types.Proposal, error) {
	admin, err := s.member(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !s.cfg.Policy.CanOverride(admin.Role) {
		return nil, ErrPermissionDenied
	}
	p, err := s.proposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}

	now := s.now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&types.Proposal{}).
			Where("id = ? AND status = ?", p.ID, types.StatusPassed).
			Updates(map[string]interface{}{
				"status":               types.StatusImplemented,
				"implementation_notes": notes,
				"implemented_at":       now,
				"updated_at":           now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}
		return tx.Create(&types.AdminAction{
			ProposalID:     p.ID,
			AdminID:        admin.ID,
			Action:         types.ActionImplement,
			PreviousStatus: types.StatusPassed,
			NewStatus:      types.StatusImplemented,
			Reason:         notes,
			IsPublic:       true,
			CreatedAt:      now,
		}).Error
	})
	if err != nil {
		if errors.Is(err, ErrInvalidState) {
			return nil, ErrInvalidState
		}
		return nil, fmt.Errorf("mark proposal %d implemented: %w", p.ID, err)
	}

	out, err := s.proposal(ctx, p.ID)
	if err != nil {
		return nil, err
	}
	s.notify.Notify(ctx, "proposal.implemented", map[string]interface{}{
		"proposal_id": out.ID, "slug": out.Slug, "admin_id": admin.ID,
	})
	return &out, nil
}

// Veto forces any non-terminal proposal to rejected, bypassing the
// normal lifecycle. Always audited; reversing a veto takes a new,
// separately audited action, never an edit of the old record.
func (s *Service) Veto(ctx context.Context, proposalID, adminID uint64, reason string, isPublic bool) (*types.Proposal, error) {
	return s.override(ctx, proposalID, adminID, reason, isPublic, types.ActionVeto)
}

// ForceImplement is the override analogue of MarkImplemented, for
// retroactive corrections.
func (s *Service) ForceImplement(ctx context.Context, proposalID, adminID uint64, reason string, isPublic bool) (*types.Proposal, error) {
	return s.override(ctx, proposalID, adminID, reason, isPublic, types.ActionForceImplement)
}

func (s *Service) override(ctx context.Context, proposalID, adminID uint64, reason string, isPublic bool, action string) (*types.Proposal, error) {
	admin, err := s.member(ctx, adminID)
	if err != nil {
		return nil, err
	}
	if !s.cfg.Policy.CanOverride(admin.Role) {
		return nil, ErrPermissionDenied
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: a reason is required", ErrValidationFailed)
	}

	now := s.now().UTC()
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var p types.Proposal
		if err := tx.First(&p, proposalID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		newStatus := types.StatusRejected
		switch action {
		case types.ActionVeto:
			if IsTerminal(p.Status) {
				return ErrInvalidState
			}
		case types.ActionForceImplement:
			if !CanTransition(p.Status, types.StatusImplemented) {
				return ErrInvalidState
			}
			newStatus = types.StatusImplemented
		}

		updates := map[string]interface{}{
			"status":     newStatus,
			"updated_at": now,
		}
		if action == types.ActionForceImplement {
			updates["implementation_notes"] = reason
			updates["implemented_at"] = now
		}
		res := tx.Model(&types.Proposal{}).
			Where("id = ? AND status = ?", p.ID, p.Status).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return ErrInvalidState
		}

		return tx.Create(&types.AdminAction{
			ProposalID:     p.ID,
			AdminID:        admin.ID,
			Action:         action,
			PreviousStatus: p.Status,
			NewStatus:      newStatus,
			Reason:         reason,
			IsPublic:       isPublic,
			CreatedAt:      now,
		}).Error
	})
	if err != nil {
		switch {
		case errors.Is(err, ErrNotFound), errors.Is(err, ErrInvalidState):
			return nil, err
		}
		return nil, fmt.Errorf("%s proposal %d: %w", action, proposalID, err)
	}

	out, err := s.proposal(ctx, proposalID)
	if err != nil {
		return nil, err
	}
	log.Printf("proposal %d (%s): admin %d %s -> %s", out.ID, out.Slug, admin.ID, action, out.Status)
	s.notify.Notify(ctx, "proposal."+action, map[string]interface{}{
		"proposal_id": out.ID, "slug": out.Slug, "admin_id": admin.ID, "public": isPublic,
	})
	return &out, nil
}

// ProposalView is a proposal plus its evaluated tally for rendering.
type ProposalView struct {
	Proposal types.Proposal `json:"proposal"`
	Tally    Tally          `json:"tally"`
}

// GetProposal fetches a proposal by numeric id or slug with its
// computed tally preview.
func (s *Service) GetProposal(ctx context.Context, idOrSlug string) (*ProposalView, error) {
	var p types.Proposal
	var err error
	if id, perr := strconv.ParseUint(idOrSlug, 10, 64); perr == nil {
		err = s.db.WithContext(ctx).First(&p, id).Error
	} else {
		err = s.db.WithContext(ctx).Where("slug = ?", idOrSlug).First(&p).Error
	}
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("load proposal %q: %w", idOrSlug, err)
	}
	return &ProposalView{Proposal: p, Tally: Evaluate(&p)}, nil
}

// ListProposals returns proposals filtered by status and/or category,
// newest first.
func (s *Service) ListProposals(ctx context.Context, status string, categoryID uint64) ([]types.Proposal, error) {
	q := s.db.WithContext(ctx).Model(&types.Proposal{}).Order("created_at DESC")
	if status != "" {
		q = q.Where("status = ?", status)
	}
	if categoryID != 0 {
		q = q.Where("category_id = ?", categoryID)
	}
	var out []types.Proposal
	if err := q.Limit(100).Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list proposals: %w", err)
	}
	return out, nil
}

// ListActions returns a proposal's audit trail. Non-override roles
// only see actions marked public.
func (s *Service) ListActions(ctx context.Context, proposalID, requesterID uint64) ([]types.AdminAction, error) {
	requester, err := s.member(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	if _, err := s.proposal(ctx, proposalID); err != nil {
		return nil, err
	}
	q := s.db.WithContext(ctx).Where("proposal_id = ?", proposalID).Order("created_at ASC")
	if !s.cfg.Policy.CanOverride(requester.Role) {
		q = q.Where("is_public = ?", true)
	}
	var out []types.AdminAction
	if err := q.Find(&out).Error; err != nil {
		return nil, fmt.Errorf("list actions for proposal %d: %w", proposalID, err)
	}
	return out, nil
}
