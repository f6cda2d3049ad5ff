package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/maojude27/FInal-project-itmajor/entity"
	"github.com/maojude27/FInal-project-itmajor/repository"
)

func newCartService(db *gorm.DB) *CartService {
	return NewCartService(db, repository.NewCartRepository(db), repository.NewCatalogRepository(db))
}

func cartRows(t *testing.T, db *gorm.DB, userID uint) []entity.CartItem {
	t.Helper()
	var rows []entity.CartItem
	require.NoError(t, db.Where("user_id = ?", userID).Order("id").Find(&rows).Error)
	return rows
}

func TestAddSameItemTwiceMergesLine(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "cart@example.com")
	item := seedItem(t, db, "Fries", 40)

	require.NoError(t, svc.Add(user.ID, item.ID, 1))
	require.NoError(t, svc.Add(user.ID, item.ID, 2))

	rows := cartRows(t, db, user.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 3, rows[0].Quantity)
}

func TestAddZeroQuantityDefaultsToOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "qty@example.com")
	item := seedItem(t, db, "Cola", 15)

	require.NoError(t, svc.Add(user.ID, item.ID, 0))

	rows := cartRows(t, db, user.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestAddUnknownItemRejected(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "ghost@example.com")

	err := svc.Add(user.ID, 424242, 1)
	require.ErrorIs(t, err, gorm.ErrRecordNotFound)
	assert.Empty(t, cartRows(t, db, user.ID))
}

func TestReduceFloorsAtOne(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "floor@example.com")
	item := seedItem(t, db, "Donut", 25)

	require.NoError(t, svc.Add(user.ID, item.ID, 1))
	line := cartRows(t, db, user.ID)[0]

	// reduce at 1 is a no-op, not a delete
	require.NoError(t, svc.Reduce(user.ID, line.ID))
	rows := cartRows(t, db, user.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Quantity)

	require.NoError(t, svc.Increment(user.ID, line.ID))
	require.NoError(t, svc.Increment(user.ID, line.ID))
	assert.Equal(t, 3, cartRows(t, db, user.ID)[0].Quantity)

	require.NoError(t, svc.Reduce(user.ID, line.ID))
	assert.Equal(t, 2, cartRows(t, db, user.ID)[0].Quantity)
}

func TestRemoveThenReAdd(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "readd@example.com")
	item := seedItem(t, db, "Wrap", 55)

	require.NoError(t, svc.Add(user.ID, item.ID, 2))
	line := cartRows(t, db, user.ID)[0]

	require.NoError(t, svc.Remove(user.ID, line.ID))
	assert.Empty(t, cartRows(t, db, user.ID))

	// the (user, item) slot is free again
	require.NoError(t, svc.Add(user.ID, item.ID, 1))
	rows := cartRows(t, db, user.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 1, rows[0].Quantity)
}

func TestCartScopedToOwner(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	owner := seedUser(t, db, "owner@example.com")
	intruder := seedUser(t, db, "intruder@example.com")
	item := seedItem(t, db, "Steak", 300)

	require.NoError(t, svc.Add(owner.ID, item.ID, 2))
	line := cartRows(t, db, owner.ID)[0]

	// another user's id on the same line does nothing
	require.NoError(t, svc.Increment(intruder.ID, line.ID))
	require.NoError(t, svc.Remove(intruder.ID, line.ID))

	rows := cartRows(t, db, owner.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, 2, rows[0].Quantity)
}

func TestGetComputesLineTotals(t *testing.T) {
	db := newTestDB(t)
	svc := newCartService(db)
	user := seedUser(t, db, "totals@example.com")
	cheap := seedItem(t, db, "Tea", 10)
	dear := seedItem(t, db, "Lobster", 500)

	require.NoError(t, svc.Add(user.ID, cheap.ID, 3))
	require.NoError(t, svc.Add(user.ID, dear.ID, 1))

	lines, productTotal, err := svc.Get(user.ID)
	require.NoError(t, err)
	require.Len(t, lines, 2)
	assert.Equal(t, int64(3*10+500), productTotal)
}
