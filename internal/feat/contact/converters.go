package contact

import (
	"database/sql"
	"time"
)

// submissionRow mirrors a contacts row. Text columns other than name and
// email may be NULL in rows written by other clients.
type submissionRow struct {
	ID        int64
	Name      string
	Email     string
	Phone     sql.NullString
	Services  sql.NullString
	Message   sql.NullString
	CreatedAt time.Time
}

func (r *submissionRow) scanDest() []any {
	return []any{&r.ID, &r.Name, &r.Email, &r.Phone, &r.Services, &r.Message, &r.CreatedAt}
}

func submissionFromRow(r submissionRow) *Submission {
	sub := &Submission{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		Services:  DecodeServices(r.Services.String),
		CreatedAt: r.CreatedAt,
	}
	if r.Phone.Valid {
		sub.Phone = r.Phone.String
	}
	if r.Message.Valid {
		sub.Message = r.Message.String
	}
	return sub
}
