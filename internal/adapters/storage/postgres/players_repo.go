package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/goccy/go-json"

	"critter-collector/internal/domain/players"
	"critter-collector/internal/ports/storage"
)

type PlayersRepo struct {
	db *sql.DB
}

func NewPlayersRepo(db *sql.DB) *PlayersRepo {
	return &PlayersRepo{db: db}
}

func (r *PlayersRepo) Insert(ctx context.Context, p players.Profile) (players.Profile, error) {
	if p.Collection == nil {
		p.Collection = []players.CollectedAnimal{}
	}
	payload, err := json.Marshal(p.Collection)
	if err != nil {
		return players.Profile{}, fmt.Errorf("encode collection: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO player_profiles (user_name, user_email, collection)
		VALUES ($1, $2, $3)
	`, p.UserName, p.UserEmail, payload)
	if err != nil {
		return players.Profile{}, fmt.Errorf("insert profile: %w", wrapInsert(err))
	}
	return p, nil
}

func (r *PlayersRepo) Get(ctx context.Context, userName string) (players.Profile, bool, error) {
	var (
		p       players.Profile
		payload []byte
	)
	err := r.db.QueryRowContext(ctx, `
		SELECT user_name, user_email, collection
		FROM player_profiles
		WHERE user_name = $1
	`, userName).Scan(&p.UserName, &p.UserEmail, &payload)
	if errors.Is(err, sql.ErrNoRows) {
		return players.Profile{}, false, nil
	}
	if err != nil {
		return players.Profile{}, false, fmt.Errorf("get profile: %w", err)
	}
	if err := json.Unmarshal(payload, &p.Collection); err != nil {
		return players.Profile{}, false, fmt.Errorf("decode collection: %w", err)
	}
	return p, true, nil
}

func (r *PlayersRepo) UpdateEmail(ctx context.Context, userName, email string) (storage.UpdateResult, error) {
	var res storage.UpdateResult
	err := r.db.QueryRowContext(ctx, `
		WITH target AS (
			SELECT 1 FROM player_profiles WHERE user_name = $1
		), changed AS (
			UPDATE player_profiles SET user_email = $2
			WHERE user_name = $1 AND user_email IS DISTINCT FROM $2
			RETURNING 1
		)
		SELECT (SELECT count(*) FROM target), (SELECT count(*) FROM changed)
	`, userName, email).Scan(&res.Matched, &res.Modified)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("update email: %w", err)
	}
	return res, nil
}

func (r *PlayersRepo) Delete(ctx context.Context, userName string) (storage.DeleteResult, error) {
	res, err := r.db.ExecContext(ctx, `DELETE FROM player_profiles WHERE user_name = $1`, userName)
	if err != nil {
		return storage.DeleteResult{}, fmt.Errorf("delete profile: %w", err)
	}
	n, _ := res.RowsAffected()
	return storage.DeleteResult{Deleted: n}, nil
}

func (r *PlayersRepo) FindAnimal(ctx context.Context, userName, commonName, scientificName string) (players.CollectedAnimal, bool, error) {
	var payload []byte
	err := r.db.QueryRowContext(ctx, `
		SELECT e
		FROM player_profiles p, jsonb_array_elements(p.collection) e
		WHERE p.user_name = $1
			AND e->>'common_name' = $2
			AND e->>'scientific_name' = $3
		LIMIT 1
	`, userName, commonName, scientificName).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return players.CollectedAnimal{}, false, nil
	}
	if err != nil {
		return players.CollectedAnimal{}, false, fmt.Errorf("find collected animal: %w", err)
	}

	var a players.CollectedAnimal
	if err := json.Unmarshal(payload, &a); err != nil {
		return players.CollectedAnimal{}, false, fmt.Errorf("decode collected animal: %w", err)
	}
	return a, true, nil
}

func (r *PlayersRepo) PushAnimal(ctx context.Context, userName string, a players.CollectedAnimal) (storage.UpdateResult, error) {
	entry, err := json.Marshal([]players.CollectedAnimal{a})
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("encode collected animal: %w", err)
	}

	res, err := r.db.ExecContext(ctx, `
		UPDATE player_profiles SET collection = collection || $2::jsonb
		WHERE user_name = $1
	`, userName, entry)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("push collected animal: %w", err)
	}
	n, _ := res.RowsAffected()
	return storage.UpdateResult{Matched: n, Modified: n}, nil
}

// IncrementAnimal matches only profiles that already hold the entry.
func (r *PlayersRepo) IncrementAnimal(ctx context.Context, userName, commonName, scientificName string) (storage.UpdateResult, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE player_profiles
		SET collection = (
			SELECT jsonb_agg(
				CASE WHEN e->>'common_name' = $2 AND e->>'scientific_name' = $3
					THEN jsonb_set(e, '{count}', to_jsonb((e->>'count')::int + 1))
					ELSE e
				END
				ORDER BY ord)
			FROM jsonb_array_elements(collection) WITH ORDINALITY AS t(e, ord)
		)
		WHERE user_name = $1
			AND collection @> jsonb_build_array(jsonb_build_object(
				'common_name', $2::text,
				'scientific_name', $3::text))
	`, userName, commonName, scientificName)
	if err != nil {
		return storage.UpdateResult{}, fmt.Errorf("increment collected animal: %w", err)
	}
	n, _ := res.RowsAffected()
	return storage.UpdateResult{Matched: n, Modified: n}, nil
}
