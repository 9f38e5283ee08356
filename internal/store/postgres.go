package store

import (
	"context"
	"errors"
	"fmt"
	"math"

	"workshop-genie/internal/database"
	"workshop-genie/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolation = "23505"

const (
	userColumns     = `id, username, email, password, name`
	workshopColumns = `id, title, description, category, instructor, location, "date", "time", duration,
		price::text, capacity, enrolled, image, rating::text, tags`
	bookingColumns = `id, user_id, workshop_id, booking_date, status,
		participant_name, participant_email, participant_phone, special_requests`
)

// inRange 回報 id 是否落在 INTEGER 欄位的範圍；範圍外的 id 不可能存在
func inRange(id int) bool {
	return id >= math.MinInt32 && id <= math.MaxInt32
}

// Postgres 是以 DATABASE_URL 啟用的持久化實作。
// price 與 rating 以 NUMERIC 儲存、以 text 讀回，保留原始十進位字串。
type Postgres struct {
	db database.DB
}

var _ Store = (*Postgres)(nil)

func NewPostgres(db database.DB) *Postgres {
	return &Postgres{db: db}
}

/* ---------- users ---------- */

func (p *Postgres) GetUser(ctx context.Context, id int) (*model.User, error) {
	if !inRange(id) {
		return nil, nil
	}
	row := p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE id = $1`,
		id,
	)
	return scanUser(row, "GetUser")
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE username = $1`,
		username,
	)
	return scanUser(row, "GetUserByUsername")
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`SELECT `+userColumns+` FROM users WHERE email = $1`,
		email,
	)
	return scanUser(row, "GetUserByEmail")
}

func scanUser(row pgx.Row, op string) (*model.User, error) {
	u := &model.User{}
	if err := row.Scan(&u.ID, &u.Username, &u.Email, &u.Password, &u.Name); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return u, nil
}

func (p *Postgres) CreateUser(ctx context.Context, in model.InsertUser) (*model.User, error) {
	row := p.db.QueryRow(ctx,
		`INSERT INTO users (username, email, password, name)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		in.Username,
		in.Email,
		in.Password,
		in.Name,
	)
	u := &model.User{
		Username: in.Username,
		Email:    in.Email,
		Password: in.Password,
		Name:     in.Name,
	}
	if err := row.Scan(&u.ID); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("CreateUser: %w", err)
	}
	return u, nil
}

/* ---------- workshops ---------- */

func (p *Postgres) GetWorkshops(ctx context.Context) ([]model.Workshop, error) {
	rows, err := p.db.Query(ctx,
		`SELECT `+workshopColumns+` FROM workshops ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("GetWorkshops: %w", err)
	}
	defer rows.Close()

	out := make([]model.Workshop, 0)
	for rows.Next() {
		w, err := scanWorkshop(rows)
		if err != nil {
			return nil, fmt.Errorf("GetWorkshops: %w", err)
		}
		out = append(out, *w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("GetWorkshops: %w", err)
	}
	return out, nil
}

func (p *Postgres) GetWorkshop(ctx context.Context, id int) (*model.Workshop, error) {
	if !inRange(id) {
		return nil, nil
	}
	row := p.db.QueryRow(ctx,
		`SELECT `+workshopColumns+` FROM workshops WHERE id = $1`,
		id,
	)
	w, err := scanWorkshop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetWorkshop: %w", err)
	}
	return w, nil
}

func (p *Postgres) GetWorkshopsByCategory(ctx context.Context, category string) ([]model.Workshop, error) {
	ws, err := p.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	return byCategory(ws, category), nil
}

func (p *Postgres) GetWorkshopsByLocation(ctx context.Context, location string) ([]model.Workshop, error) {
	ws, err := p.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	return byLocation(ws, location), nil
}

// SearchWorkshops 在 Go 端套用與 Memory 相同的篩選，兩種實作結果一致
func (p *Postgres) SearchWorkshops(ctx context.Context, f model.WorkshopFilter) ([]model.Workshop, error) {
	ws, err := p.GetWorkshops(ctx)
	if err != nil {
		return nil, err
	}
	return searchIn(ws, f), nil
}

func (p *Postgres) CreateWorkshop(ctx context.Context, in model.InsertWorkshop) (*model.Workshop, error) {
	tags := in.Tags
	if tags == nil {
		tags = []string{}
	}
	row := p.db.QueryRow(ctx,
		`INSERT INTO workshops (title, description, category, instructor, location, "date", "time",
		                        duration, price, capacity, image, rating, tags)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9::text::numeric, $10, $11, $12::text::numeric, $13)
		 RETURNING `+workshopColumns,
		in.Title,
		in.Description,
		in.Category,
		in.Instructor,
		in.Location,
		in.Date,
		in.Time,
		in.Duration,
		in.Price,
		in.Capacity,
		in.Image,
		in.Rating,
		tags,
	)
	w, err := scanWorkshop(row)
	if err != nil {
		return nil, fmt.Errorf("CreateWorkshop: %w", err)
	}
	return w, nil
}

func (p *Postgres) UpdateWorkshopEnrollment(ctx context.Context, id, enrolled int) (*model.Workshop, error) {
	if !inRange(id) {
		return nil, nil
	}
	row := p.db.QueryRow(ctx,
		`UPDATE workshops SET enrolled = $2
		 WHERE id = $1
		 RETURNING `+workshopColumns,
		id,
		enrolled,
	)
	w, err := scanWorkshop(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("UpdateWorkshopEnrollment: %w", err)
	}
	return w, nil
}

func scanWorkshop(row pgx.Row) (*model.Workshop, error) {
	w := &model.Workshop{}
	if err := row.Scan(
		&w.ID,
		&w.Title,
		&w.Description,
		&w.Category,
		&w.Instructor,
		&w.Location,
		&w.Date,
		&w.Time,
		&w.Duration,
		&w.Price,
		&w.Capacity,
		&w.Enrolled,
		&w.Image,
		&w.Rating,
		&w.Tags,
	); err != nil {
		return nil, err
	}
	if w.Tags == nil {
		w.Tags = []string{}
	}
	return w, nil
}

/* ---------- bookings ---------- */

func (p *Postgres) GetBooking(ctx context.Context, id int) (*model.Booking, error) {
	if !inRange(id) {
		return nil, nil
	}
	row := p.db.QueryRow(ctx,
		`SELECT `+bookingColumns+` FROM bookings WHERE id = $1`,
		id,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("GetBooking: %w", err)
	}
	return b, nil
}

func (p *Postgres) GetBookingsByUser(ctx context.Context, userID int) ([]model.Booking, error) {
	if !inRange(userID) {
		return []model.Booking{}, nil
	}
	return p.queryBookings(ctx, "GetBookingsByUser",
		`SELECT `+bookingColumns+` FROM bookings WHERE user_id = $1 ORDER BY id`,
		userID,
	)
}

func (p *Postgres) GetBookingsByWorkshop(ctx context.Context, workshopID int) ([]model.Booking, error) {
	if !inRange(workshopID) {
		return []model.Booking{}, nil
	}
	return p.queryBookings(ctx, "GetBookingsByWorkshop",
		`SELECT `+bookingColumns+` FROM bookings WHERE workshop_id = $1 ORDER BY id`,
		workshopID,
	)
}

func (p *Postgres) queryBookings(ctx context.Context, op, sql string, args ...any) ([]model.Booking, error) {
	rows, err := p.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	out := make([]model.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		out = append(out, *b)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return out, nil
}

// CreateBooking 以單一敘述佔位並新增預約：workshop 不存在或已滿時
// CTE 不回傳任何列，INSERT 也就不會發生，回傳 ErrWorkshopFull。
// 注意 workshop 不存在時也回傳 ErrWorkshopFull；呼叫端應先以 GetWorkshop 區分。
func (p *Postgres) CreateBooking(ctx context.Context, in model.InsertBooking) (*model.Booking, error) {
	if !inRange(in.WorkshopID) {
		return nil, ErrWorkshopFull
	}
	if !inRange(in.UserID) {
		return nil, fmt.Errorf("CreateBooking: user id %d out of range", in.UserID)
	}
	b := &model.Booking{
		UserID:           in.UserID,
		WorkshopID:       in.WorkshopID,
		BookingDate:      timeNow().UTC(),
		Status:           model.BookingStatusConfirmed,
		ParticipantName:  in.ParticipantName,
		ParticipantEmail: in.ParticipantEmail,
		ParticipantPhone: blankToNil(in.ParticipantPhone),
		SpecialRequests:  blankToNil(in.SpecialRequests),
	}
	row := p.db.QueryRow(ctx,
		`WITH seat AS (
		     UPDATE workshops SET enrolled = enrolled + 1
		     WHERE id = $2 AND enrolled < capacity
		     RETURNING id
		 )
		 INSERT INTO bookings (user_id, workshop_id, booking_date, status,
		                       participant_name, participant_email, participant_phone, special_requests)
		 SELECT $1::integer, seat.id, $3::timestamptz, $4::text, $5::text, $6::text, $7::text, $8::text
		 FROM seat
		 RETURNING id`,
		b.UserID,
		b.WorkshopID,
		b.BookingDate,
		b.Status,
		b.ParticipantName,
		b.ParticipantEmail,
		b.ParticipantPhone,
		b.SpecialRequests,
	)
	if err := row.Scan(&b.ID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrWorkshopFull
		}
		return nil, fmt.Errorf("CreateBooking: %w", err)
	}
	return b, nil
}

func (p *Postgres) UpdateBookingStatus(ctx context.Context, id int, status string) (*model.Booking, error) {
	if !inRange(id) {
		return nil, nil
	}
	row := p.db.QueryRow(ctx,
		`UPDATE bookings SET status = $2
		 WHERE id = $1
		 RETURNING `+bookingColumns,
		id,
		status,
	)
	b, err := scanBooking(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("UpdateBookingStatus: %w", err)
	}
	return b, nil
}

func scanBooking(row pgx.Row) (*model.Booking, error) {
	b := &model.Booking{}
	if err := row.Scan(
		&b.ID,
		&b.UserID,
		&b.WorkshopID,
		&b.BookingDate,
		&b.Status,
		&b.ParticipantName,
		&b.ParticipantEmail,
		&b.ParticipantPhone,
		&b.SpecialRequests,
	); err != nil {
		return nil, err
	}
	b.BookingDate = b.BookingDate.UTC()
	return b, nil
}
