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

func newAdminService(db *gorm.DB) *AdminService {
	return NewAdminService(
		db,
		repository.NewOrderRepository(db),
		repository.NewAssignmentRepository(db),
		repository.NewDriverRepository(db),
		repository.NewRestaurantRepository(db),
		repository.NewUserRepository(db),
		authz.New(db),
		nil,
	)
}

func TestAdminService_AssignDriver(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	order := seedOrder(t, db, rest.ID, customer.ID, entity.OrderReady)
	du := seedUser(t, db, "d1@test.io", entity.RoleDriver)
	driver := seedDriver(t, db, du.ID, entity.DriverActive)

	require.NoError(t, svc.AssignDriver(admin.ID, order.ID, driver.ID))

	a, err := repository.NewAssignmentRepository(db).GetByOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, driver.ID, a.DriverID)
	assert.Equal(t, entity.AssignmentAssigned, a.Status)
}

// reassigning keeps exactly one row per order and resets the lifecycle
func TestAdminService_ReassignReplacesDriver(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)
	asgSvc := newAssignmentService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	order := seedOrder(t, db, rest.ID, customer.ID, entity.OrderReady)

	u1 := seedUser(t, db, "d1@test.io", entity.RoleDriver)
	u2 := seedUser(t, db, "d2@test.io", entity.RoleDriver)
	d1 := seedDriver(t, db, u1.ID, entity.DriverActive)
	d2 := seedDriver(t, db, u2.ID, entity.DriverActive)

	require.NoError(t, svc.AssignDriver(admin.ID, order.ID, d1.ID))

	// the first driver made progress before being replaced
	repo := repository.NewAssignmentRepository(db)
	a, err := repo.GetByOrder(order.ID)
	require.NoError(t, err)
	require.NoError(t, asgSvc.SetStatus(u1.ID, a.ID, "accepted"))

	require.NoError(t, svc.AssignDriver(admin.ID, order.ID, d2.ID))

	cnt, err := repo.CountForOrder(order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 1, cnt)

	a, err = repo.GetByOrder(order.ID)
	require.NoError(t, err)
	assert.Equal(t, d2.ID, a.DriverID)
	assert.Equal(t, entity.AssignmentAssigned, a.Status)
	assert.Nil(t, a.AcceptedAt)
	assert.Nil(t, a.PickedUpAt)
	assert.Nil(t, a.DeliveredAt)
}

func TestAdminService_AssignDriver_Rejections(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	order := seedOrder(t, db, rest.ID, customer.ID, entity.OrderReady)

	du := seedUser(t, db, "d1@test.io", entity.RoleDriver)
	inactive := seedDriver(t, db, du.ID, entity.DriverInactive)

	// non-admin caller
	err := svc.AssignDriver(owner.ID, order.ID, inactive.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	// inactive driver
	err = svc.AssignDriver(admin.ID, order.ID, inactive.ID)
	assert.ErrorIs(t, err, apperr.ErrInvalidBody)

	// unknown order / unknown driver
	err = svc.AssignDriver(admin.ID, 9999, inactive.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	err = svc.AssignDriver(admin.ID, order.ID, 9999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	cnt, err := repository.NewAssignmentRepository(db).CountForOrder(order.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 0, cnt, "rejected assignments must not write")
}

func TestAdminService_CreateDriver(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	u := seedUser(t, db, "newdriver@test.io", entity.RoleCustomer)

	d, err := svc.CreateDriver(admin.ID, &CreateDriverReq{
		UserID: u.ID, FullName: "Sam Courier", VehicleType: "bike",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.DriverInactive, d.Status, "new drivers start inactive")

	roles, err := repository.NewUserRepository(db).Roles(u.ID)
	require.NoError(t, err)
	assert.Contains(t, roles, entity.RoleDriver)

	_, err = svc.CreateDriver(u.ID, &CreateDriverReq{UserID: u.ID})
	assert.ErrorIs(t, err, apperr.ErrForbidden)

	_, err = svc.CreateDriver(admin.ID, &CreateDriverReq{UserID: 9999})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdminService_UpdateDriver(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	du := seedUser(t, db, "d1@test.io", entity.RoleDriver)
	d := seedDriver(t, db, du.ID, entity.DriverInactive)

	status := "active"
	phone := "555-0101"
	require.NoError(t, svc.UpdateDriver(admin.ID, d.ID, &UpdateDriverReq{Status: &status, Phone: &phone}))

	var got entity.Driver
	require.NoError(t, db.First(&got, d.ID).Error)
	assert.Equal(t, entity.DriverActive, got.Status)
	assert.Equal(t, "555-0101", got.Phone)

	// empty patch is rejected
	err := svc.UpdateDriver(admin.ID, d.ID, &UpdateDriverReq{})
	assert.ErrorIs(t, err, apperr.ErrInvalidBody)

	err = svc.UpdateDriver(admin.ID, 9999, &UpdateDriverReq{Status: &status})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestAdminService_Dashboard(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)
	seedOrder(t, db, rest.ID, customer.ID, entity.OrderDelivered)
	du := seedUser(t, db, "d1@test.io", entity.RoleDriver)
	seedDriver(t, db, du.ID, entity.DriverActive)

	stats, err := svc.Dashboard(admin.ID)
	require.NoError(t, err)
	assert.EqualValues(t, 4, stats.TotalUsers)
	assert.EqualValues(t, 1, stats.TotalRestaurants)
	assert.EqualValues(t, 1, stats.TotalDrivers)
	assert.EqualValues(t, 2, stats.TotalOrders)

	_, err = svc.Dashboard(customer.ID)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}

func TestAdminService_Lists(t *testing.T) {
	db := testutil.OpenDB(t)
	svc := newAdminService(db)

	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)
	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	customer := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := seedRestaurant(t, db, "Pasta Place", owner.ID)
	seedOrder(t, db, rest.ID, customer.ID, entity.OrderPending)

	orders, err := svc.ListOrders(admin.ID, 0)
	require.NoError(t, err)
	assert.Len(t, orders, 1)
	assert.Equal(t, "Pasta Place", orders[0].RestaurantName)

	rests, err := svc.ListRestaurants(admin.ID, 0)
	require.NoError(t, err)
	assert.Len(t, rests, 1)

	_, err = svc.ListOrders(owner.ID, 0)
	assert.ErrorIs(t, err, apperr.ErrForbidden)
}
