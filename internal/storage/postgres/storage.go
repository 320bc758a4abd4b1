package postgres

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	domainErrors "github.com/refward/refward/internal/domain/errors"
	"github.com/refward/refward/internal/domain/model"
	"github.com/refward/refward/internal/domain/repository"
)

// pgxPool is the subset of pgxpool.Pool the storage relies on. Tests swap
// it for a pgxmock pool.
type pgxPool interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	BeginTx(ctx context.Context, txOptions pgx.TxOptions) (pgx.Tx, error)
	Ping(ctx context.Context) error
	Close()
}

var newPgxPool = func(ctx context.Context, cfg *pgxpool.Config) (pgxPool, error) {
	return pgxpool.NewWithConfig(ctx, cfg)
}

// Storage acts as repository facade backed by PostgreSQL.
type Storage struct {
	pool   pgxPool
	logger *slog.Logger
}

type userRepository struct {
	storage *Storage
}

type referralRepository struct {
	storage *Storage
}

type balanceRepository struct {
	storage *Storage
}

type withdrawalRepository struct {
	storage *Storage
}

// New creates storage with schema initialization.
func New(ctx context.Context, dsn string, logger *slog.Logger) (*Storage, error) {
	cfg, err := pgxpool.ParseConfig(dsn)
	if err != nil {
		return nil, fmt.Errorf("parse dsn: %w", err)
	}

	pool, err := newPgxPool(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("connect db: %w", err)
	}

	storage := &Storage{pool: pool, logger: logger}
	if err := storage.initSchema(ctx); err != nil {
		pool.Close()
		return nil, err
	}

	return storage, nil
}

// Close releases database resources.
func (s *Storage) Close() {
	if s.pool != nil {
		s.pool.Close()
	}
}

// Factory methods for domain repositories.
func (s *Storage) Users() repository.UserRepository {
	return &userRepository{storage: s}
}

func (s *Storage) Referrals() repository.ReferralRepository {
	return &referralRepository{storage: s}
}

func (s *Storage) Balances() repository.BalanceRepository {
	return &balanceRepository{storage: s}
}

func (s *Storage) Withdrawals() repository.WithdrawalRepository {
	return &withdrawalRepository{storage: s}
}

func (s *Storage) initSchema(ctx context.Context) error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
            id SERIAL PRIMARY KEY,
            name TEXT NOT NULL,
            city TEXT NOT NULL,
            email TEXT UNIQUE NOT NULL,
            password_hash TEXT NOT NULL,
            referral_code TEXT UNIQUE NOT NULL,
            referred_by TEXT NOT NULL DEFAULT '',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS balances (
            user_id BIGINT PRIMARY KEY REFERENCES users(id),
            total_earned DOUBLE PRECISION NOT NULL DEFAULT 0,
            available DOUBLE PRECISION NOT NULL DEFAULT 0
        )`,
		`CREATE TABLE IF NOT EXISTS referrals (
            id SERIAL PRIMARY KEY,
            referrer_id BIGINT NOT NULL REFERENCES users(id),
            referred_user_id BIGINT NOT NULL REFERENCES users(id),
            code_used TEXT NOT NULL,
            reward DOUBLE PRECISION NOT NULL,
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE TABLE IF NOT EXISTS withdrawals (
            id SERIAL PRIMARY KEY,
            user_id BIGINT NOT NULL REFERENCES users(id),
            amount DOUBLE PRECISION NOT NULL,
            status TEXT NOT NULL DEFAULT 'COMPLETED',
            created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
        )`,
		`CREATE INDEX IF NOT EXISTS idx_referrals_referrer ON referrals(referrer_id, created_at DESC)`,
		`CREATE INDEX IF NOT EXISTS idx_withdrawals_user ON withdrawals(user_id, created_at DESC)`,
	}

	for _, stmt := range statements {
		if _, err := s.pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("init schema: %w", err)
		}
	}

	return nil
}

func mapUniqueViolation(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		if pgErr.ConstraintName == "users_referral_code_key" {
			return domainErrors.ErrCodeTaken
		}
		return domainErrors.ErrAlreadyExists
	}
	return err
}

// --- UserRepository implementation ---

// Register persists the new user and, when the cited code resolves to a
// referrer, records the referral edge and credits the reward inside the same
// transaction. The referrer row is locked so that concurrent signups citing
// the same code serialize, and the referral count is read before the new
// edge is inserted: the ladder is indexed by prior referrals only.
func (r *userRepository) Register(ctx context.Context, user model.NewUser, code string) (*model.User, *model.Referral, error) {
	u := model.User{
		Name:         user.Name,
		City:         user.City,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		ReferralCode: code,
		ReferredBy:   user.ReferredBy,
	}
	var ref *model.Referral

	err := r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const insertUser = `INSERT INTO users (name, city, email, password_hash, referral_code, referred_by)
                            VALUES ($1, $2, $3, $4, $5, $6) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertUser, user.Name, user.City, user.Email, user.PasswordHash, code, user.ReferredBy).Scan(&u.ID, &u.CreatedAt); err != nil {
			return err
		}

		const ensureBalance = `INSERT INTO balances (user_id) VALUES ($1) ON CONFLICT (user_id) DO NOTHING`
		if _, err := tx.Exec(ctx, ensureBalance, u.ID); err != nil {
			return err
		}

		if user.ReferredBy == "" {
			return nil
		}

		const selectReferrer = `SELECT id FROM users WHERE referral_code=$1 FOR UPDATE`
		var referrerID int64
		if err := tx.QueryRow(ctx, selectReferrer, user.ReferredBy).Scan(&referrerID); err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				// Unknown code: the signup still succeeds without a referral.
				return nil
			}
			return err
		}

		const countReferrals = `SELECT COUNT(*) FROM referrals WHERE referrer_id=$1`
		var count int
		if err := tx.QueryRow(ctx, countReferrals, referrerID).Scan(&count); err != nil {
			return err
		}

		reward := model.ReferralReward(count)
		edge := model.Referral{
			ReferrerID:     referrerID,
			ReferredUserID: u.ID,
			CodeUsed:       user.ReferredBy,
			Reward:         reward,
		}
		const insertReferral = `INSERT INTO referrals (referrer_id, referred_user_id, code_used, reward)
                                VALUES ($1, $2, $3, $4) RETURNING id, created_at`
		if err := tx.QueryRow(ctx, insertReferral, edge.ReferrerID, edge.ReferredUserID, edge.CodeUsed, edge.Reward).Scan(&edge.ID, &edge.CreatedAt); err != nil {
			return err
		}

		if reward > 0 {
			if err := r.storage.creditTx(ctx, tx, referrerID, reward); err != nil {
				return err
			}
		}

		ref = &edge
		return nil
	})
	if err != nil {
		return nil, nil, mapUniqueViolation(err)
	}

	return &u, ref, nil
}

const selectUserColumns = `SELECT id, name, city, email, password_hash, referral_code, referred_by, created_at FROM users`

func (r *userRepository) scanUser(row pgx.Row) (*model.User, error) {
	var u model.User
	err := row.Scan(&u.ID, &u.Name, &u.City, &u.Email, &u.PasswordHash, &u.ReferralCode, &u.ReferredBy, &u.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domainErrors.ErrNotFound
		}
		return nil, err
	}
	return &u, nil
}

func (r *userRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	return r.scanUser(r.storage.pool.QueryRow(ctx, selectUserColumns+` WHERE email=$1`, email))
}

func (r *userRepository) GetByID(ctx context.Context, id int64) (*model.User, error) {
	return r.scanUser(r.storage.pool.QueryRow(ctx, selectUserColumns+` WHERE id=$1`, id))
}

func (r *userRepository) GetByCode(ctx context.Context, code string) (*model.User, error) {
	return r.scanUser(r.storage.pool.QueryRow(ctx, selectUserColumns+` WHERE referral_code=$1`, code))
}

func (r *userRepository) CodeExists(ctx context.Context, code string) (bool, error) {
	const query = `SELECT EXISTS(SELECT 1 FROM users WHERE referral_code=$1)`
	var exists bool
	if err := r.storage.pool.QueryRow(ctx, query, code).Scan(&exists); err != nil {
		return false, err
	}
	return exists, nil
}

// --- ReferralRepository implementation ---

func (r *referralRepository) CountByReferrer(ctx context.Context, referrerID int64) (int, error) {
	const query = `SELECT COUNT(*) FROM referrals WHERE referrer_id=$1`
	var count int
	if err := r.storage.pool.QueryRow(ctx, query, referrerID).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}

func (r *referralRepository) ListByReferrer(ctx context.Context, referrerID int64) ([]model.ReferralEntry, error) {
	const query = `SELECT u.name, r.reward, r.created_at
                   FROM referrals r JOIN users u ON r.referred_user_id = u.id
                   WHERE r.referrer_id=$1 ORDER BY r.created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, referrerID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.ReferralEntry
	for rows.Next() {
		var e model.ReferralEntry
		if err := rows.Scan(&e.ReferredName, &e.Reward, &e.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, e)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// --- BalanceRepository implementation ---

func (s *Storage) creditTx(ctx context.Context, tx pgx.Tx, userID int64, amount float64) error {
	const updateBalance = `INSERT INTO balances (user_id, total_earned, available)
                           VALUES ($1, $2, $2)
                           ON CONFLICT (user_id) DO UPDATE
                           SET total_earned = balances.total_earned + EXCLUDED.total_earned,
                               available = balances.available + EXCLUDED.available`
	if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
		return err
	}
	return nil
}

func (r *balanceRepository) Credit(ctx context.Context, userID int64, amount float64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		return r.storage.creditTx(ctx, tx, userID, amount)
	})
}

func (r *balanceRepository) GetSummary(ctx context.Context, userID int64) (*model.BalanceSummary, error) {
	const query = `SELECT total_earned, available FROM balances WHERE user_id=$1`
	var summary model.BalanceSummary
	err := r.storage.pool.QueryRow(ctx, query, userID).Scan(&summary.TotalEarned, &summary.Available)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return &model.BalanceSummary{}, nil
		}
		return nil, err
	}
	return &summary, nil
}

// Withdraw debits the available balance and records the withdrawal. The
// balance row is locked for the duration so two concurrent withdrawals
// cannot both pass the sufficiency check. Total earnings are untouched.
func (r *balanceRepository) Withdraw(ctx context.Context, userID int64, amount float64) error {
	return r.storage.WithinTransaction(ctx, func(tx pgx.Tx) error {
		const balanceQuery = `SELECT available FROM balances WHERE user_id=$1 FOR UPDATE`
		var available float64
		err := tx.QueryRow(ctx, balanceQuery, userID).Scan(&available)
		if err != nil {
			if errors.Is(err, pgx.ErrNoRows) {
				available = 0
			} else {
				return err
			}
		}
		if available < amount {
			return domainErrors.ErrInsufficientBalance
		}

		const updateBalance = `UPDATE balances SET available = available - $2 WHERE user_id=$1`
		if _, err := tx.Exec(ctx, updateBalance, userID, amount); err != nil {
			return err
		}

		const insertWithdrawal = `INSERT INTO withdrawals (user_id, amount, status) VALUES ($1, $2, $3)`
		if _, err := tx.Exec(ctx, insertWithdrawal, userID, amount, model.WithdrawalStatusCompleted); err != nil {
			return err
		}
		return nil
	})
}

// --- WithdrawalRepository implementation ---

func (r *withdrawalRepository) ListByUser(ctx context.Context, userID int64) ([]model.Withdrawal, error) {
	const query = `SELECT id, user_id, amount, status, created_at
                   FROM withdrawals WHERE user_id=$1 ORDER BY created_at DESC`
	rows, err := r.storage.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []model.Withdrawal
	for rows.Next() {
		var w model.Withdrawal
		if err := rows.Scan(&w.ID, &w.UserID, &w.Amount, &w.Status, &w.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, w)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// HealthCheck verifies database connectivity.
func (s *Storage) HealthCheck(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// WithinTransaction executes function inside transaction boundary.
func (s *Storage) WithinTransaction(ctx context.Context, fn func(pgx.Tx) error) (err error) {
	tx, err := s.pool.BeginTx(ctx, pgx.TxOptions{})
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		} else {
			err = tx.Commit(ctx)
		}
	}()

	err = fn(tx)
	return err
}
