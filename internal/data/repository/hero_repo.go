package repository

import (
	"context"
	"errors"
	"fmt"

	"safari-booking/internal/data/entity"
	"safari-booking/pkg/database"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type HeroRepository interface {
	FindCurrent(ctx context.Context) (*entity.HeroContent, error)
	Save(ctx context.Context, hero *entity.HeroContent) error
}

type heroRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewHeroRepository(db database.PgxIface, log *zap.Logger) HeroRepository {
	return &heroRepository{
		db:  db,
		log: log.With(zap.String("repository", "hero")),
	}
}

// FindCurrent returns the most recently saved hero, or nil when none exists.
func (r *heroRepository) FindCurrent(ctx context.Context) (*entity.HeroContent, error) {
	query := `
		SELECT id, headline, subheadline, cta_label, cta_href, image_url, updated_at
		FROM hero_content
		ORDER BY updated_at DESC, id DESC
		LIMIT 1
	`

	var hero entity.HeroContent
	err := r.db.QueryRow(ctx, query).Scan(
		&hero.ID,
		&hero.Headline,
		&hero.Subheadline,
		&hero.CtaLabel,
		&hero.CtaHref,
		&hero.ImageURL,
		&hero.UpdatedAt,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find hero content", zap.Error(err))
		return nil, fmt.Errorf("find hero content: %w", err)
	}

	return &hero, nil
}

// Save appends a new hero revision; FindCurrent returns the latest one.
func (r *heroRepository) Save(ctx context.Context, hero *entity.HeroContent) error {
	query := `
		INSERT INTO hero_content (headline, subheadline, cta_label, cta_href, image_url)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, updated_at
	`

	err := r.db.QueryRow(ctx, query,
		hero.Headline,
		hero.Subheadline,
		hero.CtaLabel,
		hero.CtaHref,
		hero.ImageURL,
	).Scan(&hero.ID, &hero.UpdatedAt)

	if err != nil {
		r.log.Error("Failed to save hero content", zap.Error(err))
		return fmt.Errorf("save hero content: %w", err)
	}

	return nil
}
