package catalog

import (
	"testing"
	"zhumagul-shop/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testIndex(t *testing.T) *Index {
	t.Helper()
	idx := NewIndex()
	require.NoError(t, idx.Add(models.Product{
		ID: "p1", Name: "Вечернее платье", Price: 45000,
		Category: CategoryEvening, Description: "атлас, открытая спина",
		Sizes: []string{"S", "M"},
	}))
	require.NoError(t, idx.Add(models.Product{
		ID: "p2", Name: "Летний сарафан", Price: 15000,
		Category: CategorySummer, Description: "лен с принтом",
		Sizes: []string{"M", "L"},
	}))
	require.NoError(t, idx.Add(models.Product{
		ID: "p3", Name: "Офисное платье", Price: 24000,
		Category: CategoryOffice, Description: "строгий атласный футляр",
		Sizes: []string{"S"},
	}))
	return idx
}

func TestIndex_Add_DuplicateID(t *testing.T) {
	idx := testIndex(t)

	err := idx.Add(models.Product{ID: "p1", Name: "Дубликат", Sizes: []string{"S"}})

	assert.ErrorIs(t, err, ErrDuplicateID)
	assert.Len(t, idx.List(Filter{}), 3)
}

func TestIndex_Remove(t *testing.T) {
	idx := testIndex(t)

	require.NoError(t, idx.Remove("p2"))
	assert.Len(t, idx.List(Filter{}), 2)

	// повторное удаление - ошибка "не найден"
	err := idx.Remove("p2")
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestIndex_List_QueryMatchesNameOrDescription(t *testing.T) {
	idx := testIndex(t)

	// совпадение по названию, без учета регистра
	got := idx.List(Filter{Query: "вечернее"})
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)

	// совпадение по описанию тоже считается (ИЛИ, а не И)
	got = idx.List(Filter{Query: "атлас"})
	assert.Len(t, got, 2)
}

func TestIndex_List_Category(t *testing.T) {
	idx := testIndex(t)

	got := idx.List(Filter{Category: CategorySummer})
	require.Len(t, got, 1)
	assert.Equal(t, "p2", got[0].ID)

	// "Все" отключает фильтр по категории
	assert.Len(t, idx.List(Filter{Category: CategoryAll}), 3)
}

func TestIndex_List_IDsRestriction(t *testing.T) {
	idx := testIndex(t)

	// страница избранного: только перечисленные id
	got := idx.List(Filter{IDs: []string{"p1", "p3"}})
	require.Len(t, got, 2)
	assert.Equal(t, "p1", got[0].ID)
	assert.Equal(t, "p3", got[1].ID)

	// пустой набор id - пустая выдача
	assert.Empty(t, idx.List(Filter{IDs: []string{}}))
}

func TestIndex_AddReview(t *testing.T) {
	idx := testIndex(t)

	err := idx.AddReview("p1", models.Review{UserName: "Алтынай", Rating: 5, Text: "Село идеально"})
	require.NoError(t, err)

	p, err := idx.Get("p1")
	require.NoError(t, err)
	require.Len(t, p.Reviews, 1)
	assert.Equal(t, "Алтынай", p.Reviews[0].UserName)
	assert.False(t, p.Reviews[0].Date.IsZero())

	assert.ErrorIs(t, idx.AddReview("нет", models.Review{UserName: "x", Rating: 3}), ErrProductNotFound)
}

func TestNewSeededIndex(t *testing.T) {
	idx := NewSeededIndex()

	assert.Len(t, idx.List(Filter{}), len(SeedProducts()))
}
