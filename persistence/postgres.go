package persistence

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/paologalligit/showtime/constant"
	"github.com/paologalligit/showtime/entities"
)

//go:embed schema.sql
var schemaSQL string

// NewPostgresPool creates a new pgx connection pool and checks it answers.
func NewPostgresPool(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	if dsn == "" {
		return nil, fmt.Errorf("database url is not set")
	}
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to create pgx pool: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}
	return pool, nil
}

// InitPostgresSchema executes the embedded schema statements.
func InitPostgresSchema(ctx context.Context, pool *pgxpool.Pool) error {
	// Split on semicolon to support multiple statements
	for stmt := range strings.SplitSeq(schemaSQL, ";") {
		stmt = strings.TrimSpace(stmt)
		if stmt == "" {
			continue
		}
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("failed to execute statement: %q: %w", stmt, err)
		}
	}
	return nil
}

// PostgresStore keeps theatres in the theatres/theatre_seats tables.
type PostgresStore struct {
	Pool         *pgxpool.Pool
	timeProvider TimeProvider
}

func NewPostgresStore(pool *pgxpool.Pool) *PostgresStore {
	return &PostgresStore{Pool: pool, timeProvider: realTimeProvider{}}
}

// SaveTheatre replaces the stored theatre in a single transaction.
func (p *PostgresStore) SaveTheatre(ctx context.Context, theatre *entities.Theatre) error {
	key, err := saveKey(theatre.Movie)
	if err != nil {
		return err
	}
	snapshot := theatre.Snapshot()

	return pgx.BeginFunc(ctx, p.Pool, func(tx pgx.Tx) error {
		_, err := tx.Exec(ctx, `
			INSERT INTO theatres (artifact_key, movie, num_seats, version, saved_at)
			VALUES ($1, $2, $3, $4, $5)
			ON CONFLICT (artifact_key) DO UPDATE
			SET movie = EXCLUDED.movie,
			    num_seats = EXCLUDED.num_seats,
			    version = EXCLUDED.version,
			    saved_at = EXCLUDED.saved_at
		`, key, snapshot.Movie, snapshot.NumSeats, constant.ARTIFACT_VERSION, p.timeProvider.Now())
		if err != nil {
			return fmt.Errorf("error upserting theatre %q: %w", theatre.Movie, err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM theatre_seats WHERE artifact_key = $1`, key); err != nil {
			return fmt.Errorf("error clearing seats for %q: %w", theatre.Movie, err)
		}

		batch := &pgx.Batch{}
		for _, slot := range snapshot.Seats {
			var name *string
			var code *int
			if slot.Customer != nil {
				name = &slot.Customer.Name
				code = &slot.Customer.Code
			}
			batch.Queue(`
				INSERT INTO theatre_seats (artifact_key, seat_number, customer_name, customer_code)
				VALUES ($1, $2, $3, $4)
			`, key, slot.Seat, name, code)
		}
		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("error inserting seats for %q: %w", theatre.Movie, err)
		}
		return nil
	})
}

func (p *PostgresStore) LoadTheatre(ctx context.Context, key string) (*entities.Theatre, error) {
	key, err := loadKey(key)
	if err != nil {
		return nil, err
	}

	var snapshot entities.TheatreSnapshot
	err = p.Pool.QueryRow(ctx, `
		SELECT movie, num_seats, version, saved_at FROM theatres WHERE artifact_key = $1
	`, key).Scan(&snapshot.Movie, &snapshot.NumSeats, &snapshot.Version, &snapshot.SavedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", key, ErrArtifactNotFound)
	}
	if err != nil {
		return nil, fmt.Errorf("error loading theatre %s: %w", key, err)
	}
	if snapshot.Version != constant.ARTIFACT_VERSION {
		return nil, fmt.Errorf("%s: %w: unsupported version %d", key, ErrCorruptArtifact, snapshot.Version)
	}

	rows, err := p.Pool.Query(ctx, `
		SELECT seat_number, customer_name, customer_code
		FROM theatre_seats WHERE artifact_key = $1 ORDER BY seat_number
	`, key)
	if err != nil {
		return nil, fmt.Errorf("error loading seats for %s: %w", key, err)
	}
	slots, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (entities.SeatSlot, error) {
		var (
			slot entities.SeatSlot
			name *string
			code *int
		)
		if err := row.Scan(&slot.Seat, &name, &code); err != nil {
			return slot, err
		}
		switch {
		case name == nil && code == nil:
			slot.State = entities.SlotEmpty
		case name != nil && code != nil:
			slot.State = entities.SlotOccupied
			slot.Customer = &entities.Customer{Name: *name, Code: *code}
		default:
			return slot, fmt.Errorf("%w: seat %d has a partial customer", ErrCorruptArtifact, slot.Seat)
		}
		return slot, nil
	})
	if err != nil {
		return nil, fmt.Errorf("error scanning seats for %s: %w", key, err)
	}
	snapshot.Seats = slots

	theatre, err := entities.RestoreTheatre(snapshot)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", key, ErrCorruptArtifact, err)
	}
	return theatre, nil
}
