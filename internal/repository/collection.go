package repository

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/shenikar/sar_dashboard/internal/models"
)

// ErrDuplicateID возвращается при создании записи с уже существующим id
var ErrDuplicateID = errors.New("duplicate id")

// entityPtr связывает тип записи с указателем, реализующим models.Entity
type entityPtr[E any] interface {
	*E
	models.Entity
	Clone() E
}

// Collection - in-memory коллекция сущностей одного вида с ключом по id.
// Порядок GetAll совпадает с порядком добавления. Наружу отдаются только глубокие копии.
type Collection[E any, P entityPtr[E]] struct {
	name  string
	mu    sync.RWMutex
	items map[models.ID]E
	order []models.ID
	now   func() time.Time
}

// NewCollection создает пустую коллекцию
func NewCollection[E any, P entityPtr[E]](name string, now func() time.Time) *Collection[E, P] {
	if now == nil {
		now = time.Now
	}
	return &Collection[E, P]{
		name:  name,
		items: make(map[models.ID]E),
		now:   now,
	}
}

// Name возвращает имя коллекции
func (c *Collection[E, P]) Name() string {
	return c.name
}

// Len возвращает количество записей
func (c *Collection[E, P]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.order)
}

// GetAll возвращает копии всех записей
func (c *Collection[E, P]) GetAll() []E {
	c.mu.RLock()
	defer c.mu.RUnlock()

	result := make([]E, 0, len(c.order))
	for _, id := range c.order {
		item := c.items[id]
		result = append(result, P(&item).Clone())
	}
	return result
}

// GetByID возвращает запись по id; второй результат false, если записи нет
func (c *Collection[E, P]) GetByID(id models.ID) (E, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	item, ok := c.items[id]
	if !ok {
		return item, false
	}
	return P(&item).Clone(), true
}

// Create сохраняет новую запись. Пустой id и нулевой createdAt заполняются автоматически.
func (c *Collection[E, P]) Create(item E) (E, error) {
	item = P(&item).Clone()
	base := P(&item).Base()
	if base.ID == "" {
		base.ID = models.NewID()
	}
	if base.CreatedAt.IsZero() {
		base.CreatedAt = c.now().UTC()
	}
	if err := P(&item).Validate(); err != nil {
		var zero E
		return zero, fmt.Errorf("%s: %w", c.name, err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.items[base.ID]; exists {
		var zero E
		return zero, fmt.Errorf("%s: %w: %s", c.name, ErrDuplicateID, base.ID)
	}
	c.items[base.ID] = item
	c.order = append(c.order, base.ID)
	return P(&item).Clone(), nil
}

// Update применяет patch к копии записи и сохраняет результат со свежим updatedAt.
// id и kind изменить нельзя. Для неизвестного id хранилище не меняется и возвращается false.
func (c *Collection[E, P]) Update(id models.ID, patch func(P)) (E, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	existing, ok := c.items[id]
	if !ok {
		var zero E
		return zero, false
	}

	updated := P(&existing).Clone()
	if patch != nil {
		patch(P(&updated))
	}

	prev := P(&existing).Base()
	base := P(&updated).Base()
	base.ID = prev.ID
	base.Kind = prev.Kind
	base.CreatedAt = prev.CreatedAt
	base.Touch(c.now().UTC())

	c.items[id] = P(&updated).Clone()
	return P(&updated).Clone(), true
}

// Delete удаляет запись; false, если записи не было
func (c *Collection[E, P]) Delete(id models.ID) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.items[id]; !ok {
		return false
	}
	delete(c.items, id)
	for i, existing := range c.order {
		if existing == id {
			c.order = append(c.order[:i], c.order[i+1:]...)
			break
		}
	}
	return true
}
