package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/kendall-kelly/freelance-api/apperrors"
	"github.com/kendall-kelly/freelance-api/models"
	"github.com/kendall-kelly/freelance-api/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleOrder() *models.Order {
	return &models.Order{
		Name:        "Paint the fence",
		Description: "Forty meters, white",
		StartDate:   models.NewDate(2024, time.January, 10),
		EndDate:     models.NewDate(2024, time.February, 10),
		Price:       300,
		CustomerID:  1,
		ExecutorID:  2,
	}
}

func TestMigrateCreatesTables(t *testing.T) {
	st := testutil.NewTestStore(t)

	tables, err := st.Tables()
	require.NoError(t, err)
	assert.Subset(t, tables, []string{"users", "orders", "offers"})
	assert.NoError(t, st.Ping(context.Background()))
}

func TestUserCRUD(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	user := &models.User{FirstName: "Ann", LastName: "Lee", Age: 30, Email: "a@x.com", Role: "customer", Phone: "555"}
	require.NoError(t, st.Users.Create(ctx, user))
	assert.Equal(t, uint(1), user.ID, "First user should get id 1")

	got, err := st.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, *user, *got)

	updated, err := st.Users.Update(ctx, user.ID, func(u *models.User) {
		u.FirstName = "Bo"
		u.LastName = "Kim"
		u.Age = 0
		u.Email = ""
		u.Role = "executor"
		u.Phone = "777"
	})
	require.NoError(t, err)
	assert.Equal(t, models.User{ID: user.ID, FirstName: "Bo", LastName: "Kim", Role: "executor", Phone: "777"}, *updated)

	got, err = st.Users.Get(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, *updated, *got, "Zero values must be written by a full replace")

	require.NoError(t, st.Users.Delete(ctx, user.ID))

	_, err = st.Users.Get(ctx, user.ID)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestMissingRecordsReturnNotFound(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	_, err := st.Orders.Get(ctx, 42)
	assert.ErrorIs(t, err, apperrors.ErrNotFound)

	called := false
	_, err = st.Offers.Update(ctx, 42, func(*models.Offer) { called = true })
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
	assert.False(t, called, "Replacement must not run for a missing record")

	assert.ErrorIs(t, st.Users.Delete(ctx, 42), apperrors.ErrNotFound)
}

func TestDeleteTwice(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	offer := &models.Offer{OrderID: 1, ExecutorID: 2}
	require.NoError(t, st.Offers.Create(ctx, offer))

	assert.NoError(t, st.Offers.Delete(ctx, offer.ID))
	assert.ErrorIs(t, st.Offers.Delete(ctx, offer.ID), apperrors.ErrNotFound)
}

func TestIDsAreNotReused(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	first := &models.Offer{OrderID: 1, ExecutorID: 1}
	second := &models.Offer{OrderID: 1, ExecutorID: 2}
	require.NoError(t, st.Offers.Create(ctx, first))
	require.NoError(t, st.Offers.Create(ctx, second))
	require.NoError(t, st.Offers.Delete(ctx, second.ID))

	third := &models.Offer{OrderID: 1, ExecutorID: 3}
	require.NoError(t, st.Offers.Create(ctx, third))
	assert.Greater(t, third.ID, second.ID, "A deleted id must not be handed out again")
}

func TestListInInsertionOrder(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	empty, err := st.Users.List(ctx)
	require.NoError(t, err)
	assert.NotNil(t, empty, "An empty table should list as an empty slice")
	assert.Empty(t, empty)

	for i := 0; i < 3; i++ {
		require.NoError(t, st.Users.Create(ctx, &models.User{FirstName: fmt.Sprintf("user-%d", i)}))
	}

	users, err := st.Users.List(ctx)
	require.NoError(t, err)
	require.Len(t, users, 3)
	for i, u := range users {
		assert.Equal(t, uint(i+1), u.ID)
		assert.Equal(t, fmt.Sprintf("user-%d", i), u.FirstName)
	}
}

func TestOrderDatesAndAddress(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	order := sampleOrder()
	require.NoError(t, st.Orders.Create(ctx, order))

	got, err := st.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-10", got.StartDate.String())
	assert.Equal(t, "2024-02-10", got.EndDate.String())
	assert.Nil(t, got.Address)

	address := "12 Main St"
	updated, err := st.Orders.Update(ctx, order.ID, func(o *models.Order) {
		o.Address = &address
		o.EndDate = models.NewDate(2024, time.March, 1)
	})
	require.NoError(t, err)
	require.NotNil(t, updated.Address)

	got, err = st.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	require.NotNil(t, got.Address)
	assert.Equal(t, address, *got.Address)
	assert.Equal(t, "2024-03-01", got.EndDate.String())
	assert.Equal(t, "2024-01-10", got.StartDate.String(), "Untouched columns keep their values")
}

func TestEarliestDateIsStored(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	order := sampleOrder()
	order.StartDate = models.NewDate(1, time.January, 1)
	require.NoError(t, st.Orders.Create(ctx, order))

	got, err := st.Orders.Get(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "0001-01-01", got.StartDate.String())
	assert.Equal(t, "2024-02-10", got.EndDate.String())
}

func TestReferencesAreNotEnforced(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	order := sampleOrder()
	order.CustomerID = 99
	order.ExecutorID = 100
	require.NoError(t, st.Orders.Create(ctx, order), "Orders may reference users that do not exist")

	require.NoError(t, st.Offers.Create(ctx, &models.Offer{OrderID: order.ID, ExecutorID: 7}))
	require.NoError(t, st.Orders.Delete(ctx, order.ID), "Deleting a referenced order does not cascade or fail")

	offers, err := st.Offers.List(ctx)
	require.NoError(t, err)
	assert.Len(t, offers, 1, "Offers referencing a deleted order remain")
}

func TestConcurrentCreatesGetDistinctIDs(t *testing.T) {
	st := testutil.NewTestStore(t)
	ctx := context.Background()

	const workers = 20
	ids := make(chan uint, workers)
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			u := &models.User{FirstName: fmt.Sprintf("w%d", n)}
			if err := st.Users.Create(ctx, u); err != nil {
				t.Errorf("create failed: %v", err)
				return
			}
			ids <- u.ID
		}(i)
	}
	wg.Wait()
	close(ids)

	seen := make(map[uint]bool)
	for id := range ids {
		assert.False(t, seen[id], "id %d assigned twice", id)
		seen[id] = true
	}
	assert.Len(t, seen, workers)
}

func TestContextCancellation(t *testing.T) {
	st := testutil.NewTestStore(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := st.Users.List(ctx)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, apperrors.ErrNotFound)
}
