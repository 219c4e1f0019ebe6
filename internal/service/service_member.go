package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/internal/store"
	"github.com/MKhiriev/go-circuit-records/internal/validators"
	"github.com/MKhiriev/go-circuit-records/models"
)

// MaxMembersListed caps a member listing.
const MaxMembersListed = 1000

type memberService struct {
	memberRepository store.MemberRepository
	validator        validators.Validator
	ids              IDGenerator
	now              func() time.Time

	logger *logger.Logger
}

func NewMemberService(memberRepository store.MemberRepository, validator validators.Validator, ids IDGenerator, logger *logger.Logger) MemberService {
	return &memberService{
		memberRepository: memberRepository,
		validator:        validator,
		ids:              ids,
		now:              time.Now,
		logger:           logger,
	}
}

func (s *memberService) Create(ctx context.Context, creator models.User, in models.MemberInput) (models.Member, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Member{}, err
	}

	member := models.Member{
		ID:        s.ids.Generate(),
		CreatedAt: s.now().UTC(),
		CreatedBy: creator.ID,
	}
	member.Apply(in)

	created, err := s.memberRepository.CreateMember(ctx, member)
	if err != nil {
		return models.Member{}, fmt.Errorf("member creation failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("member_id", created.ID).Str("society", string(created.Society)).Msg("member created")
	return created, nil
}

func (s *memberService) List(ctx context.Context, filter models.MemberFilter) ([]models.Member, error) {
	members, err := s.memberRepository.ListMembers(ctx, filter, MaxMembersListed)
	if err != nil {
		return nil, fmt.Errorf("member listing failed: %w", err)
	}
	return members, nil
}

func (s *memberService) Get(ctx context.Context, id string) (models.Member, error) {
	member, err := s.memberRepository.GetMember(ctx, id)
	if err != nil {
		return models.Member{}, fmt.Errorf("member lookup failed: %w", err)
	}
	return member, nil
}

// Update replaces every editable field. id, created_at and created_by keep
// their stored values.
func (s *memberService) Update(ctx context.Context, id string, in models.MemberInput) (models.Member, error) {
	if err := s.validator.Validate(ctx, in); err != nil {
		return models.Member{}, err
	}

	member := models.Member{ID: id}
	member.Apply(in)

	updated, err := s.memberRepository.UpdateMember(ctx, member)
	if err != nil {
		return models.Member{}, fmt.Errorf("member update failed: %w", err)
	}
	return updated, nil
}

func (s *memberService) Delete(ctx context.Context, id string) error {
	if err := s.memberRepository.DeleteMember(ctx, id); err != nil {
		return fmt.Errorf("member deletion failed: %w", err)
	}

	logger.FromContext(ctx).Info().Str("member_id", id).Msg("member deleted")
	return nil
}
