package entity

import "time"

type HeroContent struct {
	ID          int64     `db:"id"`
	Headline    string    `db:"headline"`
	Subheadline string    `db:"subheadline"`
	CtaLabel    string    `db:"cta_label"`
	CtaHref     string    `db:"cta_href"`
	ImageURL    string    `db:"image_url"`
	UpdatedAt   time.Time `db:"updated_at"`
}
