package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-circuit-records/internal/logger"
	"github.com/MKhiriev/go-circuit-records/models"
)

// memberRepository is the PostgreSQL-backed implementation of
// [MemberRepository].
type memberRepository struct {
	*DB
	logger *logger.Logger
}

func NewMemberRepository(db *DB, logger *logger.Logger) MemberRepository {
	return &memberRepository{
		DB:     db,
		logger: logger,
	}
}

func (m *memberRepository) CreateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	_, err := m.ExecContext(ctx, createMember,
		member.ID,
		member.FullName,
		member.DateOfBirth.Time,
		member.Gender,
		member.Title,
		member.ResidentialAddress,
		member.EmailAddress,
		member.Occupation,
		member.Society,
		member.ClassAllocation,
		member.CreatedAt,
		member.CreatedBy,
	)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.CreateMember").Msg("failed to insert member")
		return models.Member{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return member, nil
}

// ListMembers returns at most limit members matching filter, newest first.
func (m *memberRepository) ListMembers(ctx context.Context, filter models.MemberFilter, limit uint64) ([]models.Member, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMembersQuery(filter, limit)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.ListMembers").Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := m.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*memberRepository.ListMembers").
			Str("society", string(filter.Society)).
			Msg("failed to execute query")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	members := make([]models.Member, 0)
	for rows.Next() {
		member, scanErr := scanMember(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*memberRepository.ListMembers").Msg("failed to scan row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		members = append(members, member)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return members, nil
}

func (m *memberRepository) GetMember(ctx context.Context, id string) (models.Member, error) {
	log := logger.FromContext(ctx)

	member, err := scanMember(m.QueryRowContext(ctx, getMember, id))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.GetMember").Str("member_id", id).Msg("failed to get member")
		return models.Member{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return member, nil
}

// UpdateMember overwrites every editable field of the member with
// member.ID. id, created_at and created_by are kept.
func (m *memberRepository) UpdateMember(ctx context.Context, member models.Member) (models.Member, error) {
	log := logger.FromContext(ctx)

	updated, err := scanMember(m.QueryRowContext(ctx, updateMember,
		member.ID,
		member.FullName,
		member.DateOfBirth.Time,
		member.Gender,
		member.Title,
		member.ResidentialAddress,
		member.EmailAddress,
		member.Occupation,
		member.Society,
		member.ClassAllocation,
	))
	if errors.Is(err, sql.ErrNoRows) {
		return models.Member{}, ErrNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.UpdateMember").Str("member_id", member.ID).Msg("failed to update member")
		return models.Member{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return updated, nil
}

func (m *memberRepository) DeleteMember(ctx context.Context, id string) error {
	log := logger.FromContext(ctx)

	result, err := m.ExecContext(ctx, deleteMember, id)
	if err != nil {
		log.Err(err).Str("func", "*memberRepository.DeleteMember").Str("member_id", id).Msg("failed to delete member")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNotFound
	}

	return nil
}
