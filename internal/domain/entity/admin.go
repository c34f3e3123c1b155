package entity

import "time"

// Admin roles. SuperAdmin bypasses route grants entirely; Admin and Staff
// are restricted to their granted route patterns.
const (
	RoleSuperAdmin = "super_admin"
	RoleAdmin      = "admin"
	RoleStaff      = "staff"
)

type Admin struct {
	ID          string    `json:"id" firestore:"id"`
	Email       string    `json:"email" firestore:"email"`
	FullName    string    `json:"full_name" firestore:"fullName"`
	Role        string    `json:"role" firestore:"role"`
	Status      string    `json:"status" firestore:"status"` // "active", "suspended"
	AvatarURL   string    `json:"avatar_url,omitempty" firestore:"avatarURL,omitempty"`
	RouteGrants []string  `json:"route_grants" firestore:"routeGrants"` // e.g. "/orders/:id"
	CreatedAt   time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt   time.Time `json:"updated_at" firestore:"updatedAt"`
}

// Unrestricted reports whether this admin's role bypasses route grants.
func (a *Admin) Unrestricted() bool {
	return a.Role == RoleSuperAdmin
}
