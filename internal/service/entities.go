package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/shenikar/sar_dashboard/internal/models"
	"github.com/shenikar/sar_dashboard/internal/repository"
	"github.com/sirupsen/logrus"
)

type entityPtr[E any] interface {
	*E
	models.Entity
	Clone() E
}

// entityCollection - CRUD одной коллекции мок-бэкенда с зеркалированием изменений в состояние
type entityCollection[E any, P entityPtr[E]] struct {
	svc    *dashboardService
	kind   models.EntityKind
	repo   *repository.Collection[E, P]
	mirror func(E)
	remove func(models.ID) bool
}

func newEntityCollection[E any, P entityPtr[E]](
	svc *dashboardService,
	kind models.EntityKind,
	repo *repository.Collection[E, P],
	mirror func(E),
	remove func(models.ID) bool,
) *entityCollection[E, P] {
	return &entityCollection[E, P]{svc: svc, kind: kind, repo: repo, mirror: mirror, remove: remove}
}

func (c *entityCollection[E, P]) log(method string) *logrus.Entry {
	return c.svc.logger.WithFields(logrus.Fields{
		"service":    "dashboard",
		"method":     method,
		"collection": c.repo.Name(),
	})
}

func (c *entityCollection[E, P]) notFound(log *logrus.Entry, id models.ID) error {
	c.svc.metrics.ObserveMiss(c.repo.Name())
	log.Warn("Record not found")
	return fmt.Errorf("service: %s %s: %w", c.repo.Name(), id, ErrNotFound)
}

func (c *entityCollection[E, P]) list(ctx context.Context) []E {
	items := c.repo.GetAll()
	c.log("list").WithField("count", len(items)).Debug("Records listed")
	return items
}

func (c *entityCollection[E, P]) get(ctx context.Context, id models.ID) (*E, error) {
	item, ok := c.repo.GetByID(id)
	if !ok {
		return nil, c.notFound(c.log("get").WithField("id", id), id)
	}
	return &item, nil
}

// create сохраняет запись; kind проставляется по коллекции, updatedAt сбрасывается
func (c *entityCollection[E, P]) create(ctx context.Context, item E) (*E, error) {
	log := c.log("create")
	log.Info("Attempting to create a new record")

	base := P(&item).Base()
	base.Kind = c.kind
	base.UpdatedAt = nil

	created, err := c.repo.Create(item)
	if err != nil {
		if errors.Is(err, models.ErrInvalidEntity) || errors.Is(err, repository.ErrDuplicateID) {
			log.WithError(err).Warn("Rejected record")
			return nil, fmt.Errorf("service: could not create %s: %w: %w", c.kind, ErrInvalid, err)
		}
		log.WithError(err).Error("Failed to create record in mock backend")
		return nil, fmt.Errorf("service: could not create %s: %w", c.kind, err)
	}

	c.mirror(created)
	log.WithField("id", P(&created).Base().ID).Info("Record created successfully")
	return &created, nil
}

// update проверяет результат patch на глубокой копии и только затем пишет его в мок-бэкенд.
// Ошибка patch отменяет изменение.
func (c *entityCollection[E, P]) update(ctx context.Context, id models.ID, patch func(P) error) (*E, error) {
	log := c.log("update").WithField("id", id)

	existing, ok := c.repo.GetByID(id)
	if !ok {
		return nil, c.notFound(log, id)
	}

	candidate := P(&existing).Clone()
	if patch != nil {
		if err := patch(P(&candidate)); err != nil {
			log.WithError(err).Warn("Failed to apply patch")
			return nil, fmt.Errorf("service: could not update %s: %w: %w", c.kind, ErrInvalid, err)
		}
	}
	prev := P(&existing).Base()
	next := P(&candidate).Base()
	next.ID, next.Kind, next.CreatedAt, next.UpdatedAt = prev.ID, prev.Kind, prev.CreatedAt, prev.UpdatedAt
	if err := P(&candidate).Validate(); err != nil {
		log.WithError(err).Warn("Rejected patch")
		return nil, fmt.Errorf("service: could not update %s: %w: %w", c.kind, ErrInvalid, err)
	}

	updated, ok := c.repo.Update(id, func(p P) { *p = P(&candidate).Clone() })
	if !ok {
		return nil, c.notFound(log, id)
	}

	c.mirror(updated)
	log.Info("Record updated successfully")
	return &updated, nil
}

func (c *entityCollection[E, P]) delete(ctx context.Context, id models.ID) error {
	log := c.log("delete").WithField("id", id)
	if !c.repo.Delete(id) {
		return c.notFound(log, id)
	}
	c.remove(id)
	log.Info("Record deleted successfully")
	return nil
}
