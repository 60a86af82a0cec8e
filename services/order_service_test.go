package services

import (
	"testing"

	"backend/authz"
	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/testutil"
	"backend/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newOrderService(db *gorm.DB) *OrderService {
	return NewOrderService(db, repository.NewOrderRepository(db), authz.New(db), nil)
}

func TestOrderService_SetStatus_InvalidLiteral(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	for _, bad := range []string{"", "shipped", "delivered", "pending", "confirmed"} {
		err := svc.SetStatus(owner.ID, o.ID, bad)
		assert.ErrorIs(t, err, apperr.ErrInvalidBody, bad)
	}

	// no write happened
	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestOrderService_SetStatus_NotFound(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	err := svc.SetStatus(owner.ID, 9999, "accepted")
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestOrderService_SetStatus_ForbiddenForUnlinkedCaller(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	stranger := seedUser(t, db, "stranger@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	err := svc.SetStatus(stranger.ID, o.ID, "cancelled")
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestOrderService_SetStatus_HappyPath(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderConfirmed)

	require.NoError(t, svc.SetStatus(owner.ID, o.ID, "accepted"))
	require.NoError(t, svc.SetStatus(owner.ID, o.ID, "preparing"))
	require.NoError(t, svc.SetStatus(owner.ID, o.ID, "ready"))
	require.NoError(t, svc.SetStatus(owner.ID, o.ID, "out_for_delivery"))

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.OrderOutForDelivery, got.Status)
}

func TestOrderService_SetStatus_AdminBypassesLink(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place")
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	require.NoError(t, svc.SetStatus(admin.ID, o.ID, "accepted"))
}

func TestOrderService_SetStatus_RejectsIllegalJump(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	err := svc.SetStatus(owner.ID, o.ID, "ready")
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)

	var got entity.Order
	require.NoError(t, db.First(&got, o.ID).Error)
	assert.Equal(t, entity.OrderPending, got.Status)
}

func TestOrderService_SetStatus_TerminalOrderRejectsChange(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderCancelled)

	err := svc.SetStatus(owner.ID, o.ID, "accepted")
	assert.ErrorIs(t, err, apperr.ErrInvalidTransition)
}

func TestOrderService_ListForOperator(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	other := seedUser(t, db, "other@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)

	mine := seedRestaurant(t, db, "Mine", owner.ID)
	theirs := seedRestaurant(t, db, "Theirs", other.ID)
	seedOrder(t, db, mine.ID, customer.ID, entity.OrderPending)
	seedOrder(t, db, mine.ID, customer.ID, entity.OrderPreparing)
	seedOrder(t, db, theirs.ID, customer.ID, entity.OrderPending)

	items, err := svc.ListForOperator(owner.ID, 0)
	require.NoError(t, err)
	assert.Len(t, items, 2)
	for _, it := range items {
		assert.Equal(t, mine.ID, it.RestaurantID)
		assert.Equal(t, "Mine", it.RestaurantName)
	}

	// no links: empty, not an error
	lonely := seedUser(t, db, "lonely@test.io", entity.RoleRestaurantOwner)
	items, err = svc.ListForOperator(lonely.ID, 0)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestOrderService_DetailForOperator_Forbidden(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newOrderService(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	stranger := seedUser(t, db, "stranger@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	o := seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	_, err := svc.DetailForOperator(stranger.ID, o.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	got, err := svc.DetailForOperator(owner.ID, o.ID)
	require.NoError(t, err)
	assert.Equal(t, o.ID, got.Order.ID)
}
