package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lib/pq"

	"afairytale/internal/domain"
)

const eventColumns = "id, title, date, location, description, image, lineup, ticket_link, status, created_at, updated_at"

type eventRepository struct {
	DB *sql.DB
}

func NewEventRepository(db *sql.DB) domain.EventRepository {
	return &eventRepository{
		DB: db,
	}
}

func scanEvent(row interface {
	Scan(dest ...any) error
}) (*domain.Event, error) {
	e := &domain.Event{}
	var descNull, imageNull, ticketNull sql.NullString
	var lineup pq.StringArray
	err := row.Scan(
		&e.ID, &e.Title, &e.Date, &e.Location,
		&descNull, &imageNull, &lineup, &ticketNull,
		&e.Status, &e.CreatedAt, &e.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	if descNull.Valid {
		e.Description = &descNull.String
	}
	if imageNull.Valid {
		e.Image = &imageNull.String
	}
	if ticketNull.Valid {
		e.TicketLink = &ticketNull.String
	}
	e.Lineup = []string(lineup)
	if e.Lineup == nil {
		e.Lineup = []string{}
	}
	return e, nil
}

func (r *eventRepository) List(ctx context.Context) ([]*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		ORDER BY date DESC
	`, eventColumns)
	rows, err := r.DB.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	events := make([]*domain.Event, 0)
	for rows.Next() {
		e, err := scanEvent(rows)
		if err != nil {
			return nil, err
		}
		events = append(events, e)
	}
	return events, rows.Err()
}

func (r *eventRepository) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM events
		WHERE id = $1
	`, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Create(ctx context.Context, e *domain.Event) error {
	query := `
		INSERT INTO events (title, date, location, description, image, lineup, ticket_link, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id
	`
	return r.DB.QueryRowContext(ctx, query,
		e.Title, e.Date, e.Location, e.Description, e.Image,
		pq.Array(e.Lineup), e.TicketLink, e.Status, e.CreatedAt, e.UpdatedAt,
	).Scan(&e.ID)
}

func (r *eventRepository) Update(ctx context.Context, id string, u domain.EventUpdate) (*domain.Event, error) {
	setClauses := []string{"updated_at = NOW()"}
	args := []interface{}{}
	n := 1
	if u.Title != nil {
		setClauses = append(setClauses, fmt.Sprintf("title = $%d", n))
		args = append(args, *u.Title)
		n++
	}
	if u.Date != nil {
		setClauses = append(setClauses, fmt.Sprintf("date = $%d", n))
		args = append(args, *u.Date)
		n++
	}
	if u.Location != nil {
		setClauses = append(setClauses, fmt.Sprintf("location = $%d", n))
		args = append(args, *u.Location)
		n++
	}
	if u.Description.Set {
		// nil Value binds NULL, clearing the column
		setClauses = append(setClauses, fmt.Sprintf("description = $%d", n))
		args = append(args, u.Description.Value)
		n++
	}
	if u.Image.Set {
		setClauses = append(setClauses, fmt.Sprintf("image = $%d", n))
		args = append(args, u.Image.Value)
		n++
	}
	if u.Lineup != nil {
		setClauses = append(setClauses, fmt.Sprintf("lineup = $%d", n))
		args = append(args, pq.Array(*u.Lineup))
		n++
	}
	if u.TicketLink.Set {
		setClauses = append(setClauses, fmt.Sprintf("ticket_link = $%d", n))
		args = append(args, u.TicketLink.Value)
		n++
	}
	if u.Status != nil {
		setClauses = append(setClauses, fmt.Sprintf("status = $%d", n))
		args = append(args, *u.Status)
		n++
	}
	if n == 1 {
		// No fields to update; just fetch current row
		return r.GetByID(ctx, id)
	}
	args = append(args, id)
	query := fmt.Sprintf(`
		UPDATE events SET %s
		WHERE id = $%d
		RETURNING %s
	`, strings.Join(setClauses, ", "), n, eventColumns)
	e, err := scanEvent(r.DB.QueryRowContext(ctx, query, args...))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return e, nil
}

func (r *eventRepository) Delete(ctx context.Context, id string) error {
	query := `DELETE FROM events WHERE id = $1`
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

func (r *eventRepository) CountAll(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events`).Scan(&count)
	return count, err
}

// CountUpcoming counts by date only. An event dated exactly now counts as
// upcoming, and a cancelled event with a future date is still included.
func (r *eventRepository) CountUpcoming(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE date >= $1`, time.Now()).Scan(&count)
	return count, err
}

func (r *eventRepository) CountPast(ctx context.Context) (int, error) {
	var count int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM events WHERE date < $1`, time.Now()).Scan(&count)
	return count, err
}
