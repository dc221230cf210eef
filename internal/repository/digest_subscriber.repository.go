package repository

import (
	"fmt"

	"smartmoney/internal/db/models/postgres/public/model"
	"smartmoney/internal/db/models/postgres/public/table"

	"github.com/go-jet/jet/v2/postgres"
	"github.com/go-jet/jet/v2/qrm"
)

type DigestSubscriberRepository interface {
	ListActive(db qrm.Queryable) ([]model.DigestSubscriber, error)
}

type digestSubscriberRepositoryHandler struct{}

func NewDigestSubscriberRepository() DigestSubscriberRepository {
	return digestSubscriberRepositoryHandler{}
}

func (h digestSubscriberRepositoryHandler) ListActive(db qrm.Queryable) ([]model.DigestSubscriber, error) {
	query := table.DigestSubscriber.
		SELECT(table.DigestSubscriber.AllColumns).
		WHERE(table.DigestSubscriber.Active.EQ(postgres.Bool(true))).
		ORDER_BY(table.DigestSubscriber.CreatedAt.ASC())

	out := []model.DigestSubscriber{}
	err := query.Query(db, &out)
	if err != nil {
		return nil, fmt.Errorf("failed to list digest subscribers: %w", err)
	}

	return out, nil
}
