package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"afairytale/internal/domain"
)

const residentColumns = "id, name, role, bio, image, created_at, updated_at"

type residentRepository struct {
	DB *sql.DB
}

func NewResidentRepository(db *sql.DB) domain.ResidentRepository {
	return &residentRepository{
		DB: db,
	}
}

func scanResident(row interface {
	Scan(dest ...any) error
}) (*domain.Resident, error) {
	res := &domain.Resident{}
	var bioNull, imageNull sql.NullString
	err := row.Scan(&res.ID, &res.Name, &res.Role, &bioNull, &imageNull, &res.CreatedAt, &res.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if bioNull.Valid {
		res.Bio = &bioNull.String
	}
	if imageNull.Valid {
		res.Image = &imageNull.String
	}
	return res, nil
}

func (r *residentRepository) List(ctx context.Context) ([]*domain.Resident, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM residents
		ORDER BY name ASC
	`, residentColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	residents := make([]*domain.Resident, 0)
	for rows.Next() {
		res, err := scanResident(rows)
		if err != nil {
			return nil, err
		}
		residents = append(residents, res)
	}
	return residents, rows.Err()
}

func (r *residentRepository) GetByID(ctx context.Context, id string) (*domain.Resident, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM residents
		WHERE id = $1
	`, residentColumns)
	res, err := scanResident(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *residentRepository) Create(ctx context.Context, res *domain.Resident) error {
	query := `
		INSERT INTO residents (name, role, bio, image, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query, res.Name, res.Role, res.Bio, res.Image, res.CreatedAt, res.UpdatedAt).Scan(&res.ID)
}

func (r *residentRepository) Update(ctx context.Context, id string, u domain.ResidentUpdate) (*domain.Resident, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if u.Name != nil {
		setClauses = append(setClauses, fmt.Sprintf("name = $%d", n))
		args = append(args, *u.Name)
		n++
	}
	if u.Role != nil {
		setClauses = append(setClauses, fmt.Sprintf("role = $%d", n))
		args = append(args, *u.Role)
		n++
	}
	if u.Bio.Set {
		// nil Value binds NULL, clearing the column
		setClauses = append(setClauses, fmt.Sprintf("bio = $%d", n))
		args = append(args, u.Bio.Value)
		n++
	}
	if u.Image.Set {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", n))
		args = append(args, u.Image.Value)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE residents SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, residentColumns)
	res, err := scanResident(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return res, nil
}

func (r *residentRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM residents WHERE id = $1`
	result, err := r.DB.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	rows, _ := result.RowsAffected()
	if rows == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func (r *residentRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM residents`).Scan(&count)
	return count, err
}
