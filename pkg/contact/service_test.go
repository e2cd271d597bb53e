package contact

import (
	"context"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestService() *ContactService {
	return NewContactService(NewInMemRepository())
}

func TestContactService_Create(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	t.Run("Success", func(t *testing.T) {
		c, err := service.Create(ctx, ContactParams{
			Name:  "Allen Raymond",
			Email: "nulla.ante@vestibul.co.uk",
			Phone: "(992) 914-3792",
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, c.ID)
		assert.False(t, c.Favorite)
		assert.False(t, c.CreatedAt.IsZero())

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "Allen Raymond", got.Name)
	})

	t.Run("MissingFields", func(t *testing.T) {
		cases := []ContactParams{
			{Email: "a@b.co", Phone: "123"},
			{Name: "A", Phone: "123"},
			{Name: "A", Email: "a@b.co"},
		}
		for _, params := range cases {
			_, err := service.Create(ctx, params)
			assert.ErrorIs(t, err, ErrInvalidContact)
		}
	})
}

func TestContactService_Update(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	c, err := service.Create(ctx, ContactParams{Name: "A", Email: "a@b.co", Phone: "123"})
	require.NoError(t, err)

	t.Run("ReplacesFields", func(t *testing.T) {
		updated, err := service.Update(ctx, c.ID, ContactParams{
			Name:     "B",
			Email:    "b@c.co",
			Phone:    "456",
			Favorite: true,
		})
		require.NoError(t, err)
		assert.Equal(t, "B", updated.Name)
		assert.True(t, updated.Favorite)

		got, err := service.Get(ctx, c.ID)
		require.NoError(t, err)
		assert.Equal(t, "b@c.co", got.Email)
		assert.Equal(t, "456", got.Phone)
	})

	t.Run("NotFound", func(t *testing.T) {
		_, err := service.Update(ctx, uuid.New(), ContactParams{Name: "X", Email: "x@y.co", Phone: "789"})
		assert.ErrorIs(t, err, ErrContactNotFound)
	})
}

func TestContactService_Favorite(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	c, err := service.Create(ctx, ContactParams{Name: "A", Email: "a@b.co", Phone: "123"})
	require.NoError(t, err)

	updated, err := service.UpdateFavorite(ctx, c.ID, true)
	require.NoError(t, err)
	assert.True(t, updated.Favorite)

	updated, err = service.UpdateFavorite(ctx, c.ID, false)
	require.NoError(t, err)
	assert.False(t, updated.Favorite)

	_, err = service.UpdateFavorite(ctx, uuid.New(), true)
	assert.ErrorIs(t, err, ErrContactNotFound)
}

func TestContactService_Delete(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	c, err := service.Create(ctx, ContactParams{Name: "A", Email: "a@b.co", Phone: "123"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, c.ID))

	_, err = service.Get(ctx, c.ID)
	assert.ErrorIs(t, err, ErrContactNotFound)

	assert.ErrorIs(t, service.Delete(ctx, c.ID), ErrContactNotFound)
}

func TestContactService_List(t *testing.T) {
	ctx := context.Background()
	service := newTestService()

	for i := 0; i < 5; i++ {
		_, err := service.Create(ctx, ContactParams{
			Name:     fmt.Sprintf("Contact %d", i),
			Email:    fmt.Sprintf("c%d@example.com", i),
			Phone:    fmt.Sprintf("555-000%d", i),
			Favorite: i%2 == 0,
		})
		require.NoError(t, err)
	}

	t.Run("All", func(t *testing.T) {
		contacts, err := service.List(ctx, ListParams{})
		require.NoError(t, err)
		assert.Len(t, contacts, 5)
	})

	t.Run("FavoritesOnly", func(t *testing.T) {
		fav := true
		contacts, err := service.List(ctx, ListParams{Favorite: &fav})
		require.NoError(t, err)
		require.Len(t, contacts, 3)
		for _, c := range contacts {
			assert.True(t, c.Favorite)
		}
	})

	t.Run("NonFavoritesOnly", func(t *testing.T) {
		fav := false
		contacts, err := service.List(ctx, ListParams{Favorite: &fav})
		require.NoError(t, err)
		assert.Len(t, contacts, 2)
	})

	t.Run("Pagination", func(t *testing.T) {
		first, err := service.List(ctx, ListParams{Page: 1, Limit: 2})
		require.NoError(t, err)
		require.Len(t, first, 2)

		second, err := service.List(ctx, ListParams{Page: 2, Limit: 2})
		require.NoError(t, err)
		require.Len(t, second, 2)
		assert.NotEqual(t, first[0].ID, second[0].ID)

		third, err := service.List(ctx, ListParams{Page: 3, Limit: 2})
		require.NoError(t, err)
		assert.Len(t, third, 1)

		empty, err := service.List(ctx, ListParams{Page: 4, Limit: 2})
		require.NoError(t, err)
		assert.Empty(t, empty)
	})
}
