package authz

import (
	"testing"

	"backend/entity"
	"backend/pkg/apperr"
	"backend/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

func seedUser(t *testing.T, db *gorm.DB, email string, roles ...entity.Role) *entity.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.DefaultCost)
	require.NoError(t, err)
	u := entity.User{Email: email, Password: string(hash), FirstName: "Test", LastName: "User"}
	require.NoError(t, db.Create(&u).Error)
	for _, role := range roles {
		require.NoError(t, db.Create(&entity.UserRole{UserID: u.ID, Role: role, IsActive: true}).Error)
	}
	return &u
}

func TestPolicy_HasRole(t *testing.T) {
	db := testutil.OpenDB(t)
	p := New(db)

	u := seedUser(t, db, "multi@test.io", entity.RoleDriver, entity.RoleCustomer)

	ok, err := p.HasRole(u.ID, entity.RoleDriver)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.HasRole(u.ID, entity.RoleAdmin)
	require.NoError(t, err)
	assert.False(t, ok)

	// deactivated roles do not count
	require.NoError(t, db.Model(&entity.UserRole{}).
		Where("user_id = ? AND role = ?", u.ID, entity.RoleDriver).
		Update("is_active", false).Error)
	ok, err = p.HasRole(u.ID, entity.RoleDriver)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestPolicy_RequireRole(t *testing.T) {
	db := testutil.OpenDB(t)
	p := New(db)

	u := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)

	assert.NoError(t, p.RequireRole(u.ID, entity.RoleRestaurantOwner))
	assert.ErrorIs(t, p.RequireRole(u.ID, entity.RoleAdmin), apperr.ErrForbidden)
	assert.ErrorIs(t, p.RequireRole(0, entity.RoleAdmin), apperr.ErrUnauthenticated)
}

func TestPolicy_CanManageRestaurant(t *testing.T) {
	db := testutil.OpenDB(t)
	p := New(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	other := seedUser(t, db, "other@test.io", entity.RoleRestaurantOwner)
	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)

	rest := entity.Restaurant{Name: "Pasta Place"}
	require.NoError(t, db.Create(&rest).Error)
	require.NoError(t, db.Create(&entity.RestaurantUser{RestaurantID: rest.ID, UserID: owner.ID}).Error)

	ok, err := p.CanManageRestaurant(owner.ID, rest.ID)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = p.CanManageRestaurant(other.ID, rest.ID)
	require.NoError(t, err)
	assert.False(t, ok, "an owner role alone grants nothing without the link")

	ok, err = p.CanManageRestaurant(admin.ID, rest.ID)
	require.NoError(t, err)
	assert.True(t, ok, "admins manage every restaurant")
}

func TestPolicy_RestaurantIDs(t *testing.T) {
	db := testutil.OpenDB(t)
	p := New(db)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)

	r1 := entity.Restaurant{Name: "One"}
	r2 := entity.Restaurant{Name: "Two"}
	r3 := entity.Restaurant{Name: "Three"}
	require.NoError(t, db.Create(&r1).Error)
	require.NoError(t, db.Create(&r2).Error)
	require.NoError(t, db.Create(&r3).Error)
	require.NoError(t, db.Create(&entity.RestaurantUser{RestaurantID: r1.ID, UserID: owner.ID}).Error)
	require.NoError(t, db.Create(&entity.RestaurantUser{RestaurantID: r3.ID, UserID: owner.ID}).Error)

	ids, err := p.RestaurantIDs(owner.ID)
	require.NoError(t, err)
	assert.ElementsMatch(t, []uint{r1.ID, r3.ID}, ids)
}

func TestPolicy_IsAssignedDriver(t *testing.T) {
	db := testutil.OpenDB(t)
	p := New(db)

	du := seedUser(t, db, "driver@test.io", entity.RoleDriver)
	admin := seedUser(t, db, "admin@test.io", entity.RoleAdmin)

	d := entity.Driver{UserID: du.ID, Status: entity.DriverActive}
	require.NoError(t, db.Create(&d).Error)

	owner := seedUser(t, db, "owner@test.io", entity.RoleRestaurantOwner)
	cust := seedUser(t, db, "cust@test.io", entity.RoleCustomer)
	rest := entity.Restaurant{Name: "Pasta Place"}
	require.NoError(t, db.Create(&rest).Error)
	require.NoError(t, db.Create(&entity.RestaurantUser{RestaurantID: rest.ID, UserID: owner.ID}).Error)
	order := entity.Order{RestaurantID: rest.ID, CustomerID: cust.ID, Status: entity.OrderReady}
	require.NoError(t, db.Create(&order).Error)
	a := entity.DriverAssignment{OrderID: order.ID, DriverID: d.ID, Status: entity.AssignmentAssigned}
	require.NoError(t, db.Create(&a).Error)

	ok, err := p.IsAssignedDriver(du.ID, &a)
	require.NoError(t, err)
	assert.True(t, ok)

	// no admin bypass on assignment lifecycle
	ok, err = p.IsAssignedDriver(admin.ID, &a)
	require.NoError(t, err)
	assert.False(t, ok)

	// dangling driver reference is a clean false, not an error
	dangling := entity.DriverAssignment{OrderID: order.ID, DriverID: 9999, Status: entity.AssignmentAssigned}
	ok, err = p.IsAssignedDriver(du.ID, &dangling)
	require.NoError(t, err)
	assert.False(t, ok)
}
