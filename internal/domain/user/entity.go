package user

import (
	"time"

	"github.com/shopspring/decimal"
)

type Role string

const (
	RoleManager       Role = "manager"
	RoleSales         Role = "sales"
	RoleDesigner      Role = "designer"
	RoleManufacturing Role = "manufacturing"
	RoleCreative      Role = "creative"
	RoleCustomer      Role = "customer"
)

// EmployeeRoles returns the staff roles eligible for attendance tracking.
// Customers share the users table but never appear on the shop floor.
func EmployeeRoles() []Role {
	return []Role{
		RoleManager,
		RoleSales,
		RoleDesigner,
		RoleManufacturing,
		RoleCreative,
	}
}

type Schedule string

const (
	ScheduleFullDay   Schedule = "full_day"
	ScheduleMorning   Schedule = "morning"
	ScheduleAfternoon Schedule = "afternoon"
)

type User struct {
	ID           string
	FullName     string
	Email        string
	PasswordHash *string
	Role         Role
	Schedule     *Schedule
	BaseSalary   *decimal.Decimal
	HireDate     *time.Time
	AvatarURL    *string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsEmployee checks if the user holds a staff role
func (u *User) IsEmployee() bool {
	for _, r := range EmployeeRoles() {
		if u.Role == r {
			return true
		}
	}
	return false
}

// IsManager checks if the user can adjudicate requests and run reports
func (u *User) IsManager() bool {
	return u.Role == RoleManager
}

// WorkSchedule returns the user's schedule, defaulting to full day for
// staff records created before schedules were assigned.
func (u *User) WorkSchedule() Schedule {
	if u.Schedule == nil {
		return ScheduleFullDay
	}
	return *u.Schedule
}
