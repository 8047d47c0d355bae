package queries

import (
	"context"
)

type CouponQueries interface {
	ListAll(ctx context.Context, page Page) ([]*CouponAdminView, int64, error)
}

type CouponViewRepo interface {
	FindPage(ctx context.Context, limit, offset int32) ([]*CouponAdminView, int64, error)
}

type couponQueriesImpl struct {
	repo CouponViewRepo
}

func NewCouponQueries(repo CouponViewRepo) CouponQueries {
	return &couponQueriesImpl{repo: repo}
}

func (q *couponQueriesImpl) ListAll(ctx context.Context, page Page) ([]*CouponAdminView, int64, error) {
	limit, offset := page.LimitOffset()
	return q.repo.FindPage(ctx, limit, offset)
}
