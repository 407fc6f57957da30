package contact

import (
	"context"
	"database/sql"
	"errors"

	sq "github.com/Masterminds/squirrel"

	"github.com/aghadi/aghadi-api/pkg/cl/logger"
)

const table = "contacts"

var errNoDatabase = errors.New("database not available")

// Service defines the contact submission service interface.
type Service interface {
	Start(ctx context.Context) error
	CreateSubmission(ctx context.Context, in *SubmissionInput) (int64, error)
	ListSubmissions(ctx context.Context) ([]*Submission, error)
}

// DBProvider provides access to the database.
type DBProvider interface {
	GetDB() *sql.DB
}

type service struct {
	dbProvider DBProvider
	log        logger.Logger
}

// NewService creates a new contact service backed by the provider's pool.
func NewService(dbProvider DBProvider, log logger.Logger) Service {
	return &service{
		dbProvider: dbProvider,
		log:        log,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.log.Info("Contact service started")
	return nil
}

func (s *service) db() (*sql.DB, error) {
	if s.dbProvider == nil {
		return nil, errNoDatabase
	}
	db := s.dbProvider.GetDB()
	if db == nil {
		return nil, errNoDatabase
	}
	return db, nil
}

// CreateSubmission validates in and inserts one row. It returns the
// store-assigned id, validation.ValidationErrors or a *ServerError.
func (s *service) CreateSubmission(ctx context.Context, in *SubmissionInput) (int64, error) {
	if err := in.Validate(); err != nil {
		return 0, err
	}

	db, err := s.db()
	if err != nil {
		return 0, serverError("create submission", err)
	}

	query, args, err := sq.Insert(table).
		Columns("name", "email", "phone", "services", "message").
		Values(in.Name, in.Email, in.Phone, EncodeServices(in.Services), in.Message).
		ToSql()
	if err != nil {
		return 0, serverError("build insert", err)
	}

	res, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, serverError("create submission", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return 0, serverError("read submission id", err)
	}
	return id, nil
}

// ListSubmissions returns every submission, newest first.
func (s *service) ListSubmissions(ctx context.Context) ([]*Submission, error) {
	db, err := s.db()
	if err != nil {
		return nil, serverError("list submissions", err)
	}

	query, args, err := sq.Select("id", "name", "email", "phone", "services", "message", "created_at").
		From(table).
		OrderBy("created_at DESC", "id DESC").
		ToSql()
	if err != nil {
		return nil, serverError("build select", err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, serverError("list submissions", err)
	}
	defer rows.Close()

	subs := make([]*Submission, 0)
	for rows.Next() {
		var row submissionRow
		if err := rows.Scan(row.scanDest()...); err != nil {
			return nil, serverError("scan submission", err)
		}
		subs = append(subs, submissionFromRow(row))
	}
	if err := rows.Err(); err != nil {
		return nil, serverError("list submissions", err)
	}
	return subs, nil
}
