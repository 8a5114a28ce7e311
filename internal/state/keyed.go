package state

import "github.com/shenikar/sar_dashboard/internal/models"

type entityPtr[E any] interface {
	*E
	models.Entity
	Clone() E
}

// keyed - упорядоченная по добавлению мапа сущностей. Записи копируются на входе и на выходе.
type keyed[E any, P entityPtr[E]] struct {
	items map[models.ID]E
	order []models.ID
}

func newKeyed[E any, P entityPtr[E]]() keyed[E, P] {
	return keyed[E, P]{items: make(map[models.ID]E)}
}

func (k *keyed[E, P]) replace(items []E) {
	k.items = make(map[models.ID]E, len(items))
	k.order = k.order[:0]
	for _, item := range items {
		k.put(item)
	}
}

func (k *keyed[E, P]) put(item E) {
	id := P(&item).Base().ID
	if _, exists := k.items[id]; !exists {
		k.order = append(k.order, id)
	}
	k.items[id] = P(&item).Clone()
}

func (k *keyed[E, P]) remove(id models.ID) bool {
	if _, ok := k.items[id]; !ok {
		return false
	}
	delete(k.items, id)
	for i, existing := range k.order {
		if existing == id {
			k.order = append(k.order[:i], k.order[i+1:]...)
			break
		}
	}
	return true
}

func (k *keyed[E, P]) values() []E {
	out := make([]E, 0, len(k.order))
	for _, id := range k.order {
		item := k.items[id]
		out = append(out, P(&item).Clone())
	}
	return out
}

// appendEntities добавляет в out указатели на копии записей
func (k *keyed[E, P]) appendEntities(out []models.Entity) []models.Entity {
	for _, id := range k.order {
		item := k.items[id]
		c := P(&item).Clone()
		out = append(out, P(&c))
	}
	return out
}
