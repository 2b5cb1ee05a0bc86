package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shenikar/disaster_preparedness/internal/models"
	"github.com/shenikar/disaster_preparedness/internal/service"
)

const memberColumns = `id, household_id, name, contact, last_known_location, status`

type FamilyRepository struct {
	db *pgxpool.Pool
}

func NewFamilyRepository(db *pgxpool.Pool) service.FamilyRepository {
	return &FamilyRepository{db: db}
}

func (r *FamilyRepository) CreateHousehold(ctx context.Context, household *models.Household) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO households (name) VALUES ($1) RETURNING id;`,
		household.Name,
	).Scan(&household.ID)
	if err != nil {
		return fmt.Errorf("failed to create household: %w", err)
	}
	return nil
}

func (r *FamilyRepository) ListHouseholds(ctx context.Context) ([]*models.Household, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name FROM households ORDER BY id;`)
	if err != nil {
		return nil, fmt.Errorf("failed to list households: %w", err)
	}
	defer rows.Close()

	households := make([]*models.Household, 0)
	for rows.Next() {
		household := &models.Household{}
		if err := rows.Scan(&household.ID, &household.Name); err != nil {
			return nil, fmt.Errorf("failed to scan household row: %w", err)
		}
		households = append(households, household)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return households, nil
}

// CreateMember полагается на внешний ключ households(id): сирота отклоняется базой
func (r *FamilyRepository) CreateMember(ctx context.Context, member *models.Member) error {
	query := `
		INSERT INTO members (household_id, name, contact, last_known_location, status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id;
	`
	err := r.db.QueryRow(ctx, query,
		member.HouseholdID,
		member.Name,
		member.Contact,
		member.LastKnownLocation,
		string(member.Status),
	).Scan(&member.ID)
	if err != nil {
		return fmt.Errorf("failed to create member: %w", translateError(err))
	}
	return nil
}

func (r *FamilyRepository) ListMembersByHousehold(ctx context.Context, householdID int64) ([]*models.Member, error) {
	query := `SELECT ` + memberColumns + ` FROM members WHERE household_id = $1 ORDER BY id;`
	rows, err := r.db.Query(ctx, query, householdID)
	if err != nil {
		return nil, fmt.Errorf("failed to list members: %w", err)
	}
	defer rows.Close()

	members := make([]*models.Member, 0)
	for rows.Next() {
		member, err := scanMember(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan member row: %w", err)
		}
		members = append(members, member)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return members, nil
}

// UpdateMemberStatus обновляет статус; местоположение меняется, только если передано
func (r *FamilyRepository) UpdateMemberStatus(ctx context.Context, id int64, status models.MemberStatus, location *string) (*models.Member, error) {
	query := `
		UPDATE members SET
			status = $1,
			last_known_location = COALESCE($2, last_known_location)
		WHERE id = $3
		RETURNING ` + memberColumns + `;
	`
	member, err := scanMember(r.db.QueryRow(ctx, query, string(status), location, id))
	if err != nil {
		return nil, fmt.Errorf("failed to update member %d: %w", id, translateError(err))
	}
	return member, nil
}

func (r *FamilyRepository) CreateCheckIn(ctx context.Context, checkIn *models.CheckIn) error {
	query := `
		INSERT INTO check_ins (member_id, location, is_safe, timestamp)
		VALUES ($1, $2, $3, $4)
		RETURNING id, timestamp;
	`
	err := r.db.QueryRow(ctx, query,
		checkIn.MemberID,
		checkIn.Location,
		checkIn.IsSafe,
		checkIn.Timestamp,
	).Scan(&checkIn.ID, &checkIn.Timestamp)
	if err != nil {
		return fmt.Errorf("failed to create check-in: %w", translateError(err))
	}
	return nil
}

func (r *FamilyRepository) ListCheckInsByMember(ctx context.Context, memberID int64) ([]*models.CheckIn, error) {
	query := `
		SELECT id, member_id, location, is_safe, timestamp
		FROM check_ins
		WHERE member_id = $1
		ORDER BY timestamp ASC, id ASC;
	`
	rows, err := r.db.Query(ctx, query, memberID)
	if err != nil {
		return nil, fmt.Errorf("failed to list check-ins: %w", err)
	}
	defer rows.Close()

	checkIns := make([]*models.CheckIn, 0)
	for rows.Next() {
		checkIn := &models.CheckIn{}
		if err := rows.Scan(&checkIn.ID, &checkIn.MemberID, &checkIn.Location, &checkIn.IsSafe, &checkIn.Timestamp); err != nil {
			return nil, fmt.Errorf("failed to scan check-in row: %w", err)
		}
		checkIns = append(checkIns, checkIn)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return checkIns, nil
}

func scanMember(row pgx.Row) (*models.Member, error) {
	member := &models.Member{}
	var status string
	err := row.Scan(
		&member.ID,
		&member.HouseholdID,
		&member.Name,
		&member.Contact,
		&member.LastKnownLocation,
		&status,
	)
	member.Status = models.MemberStatus(status)
	return member, err
}
