package domain

// Role is the closed set of account kinds.
type Role string

const (
	RoleStudent  Role = "student"
	RoleEmployer Role = "employer"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleEmployer, RoleAdmin:
		return true
	}
	return false
}

// SelfRegistrable reports whether an account of this role may be created through sign-up.
func (r Role) SelfRegistrable() bool {
	return r == RoleStudent || r == RoleEmployer
}

// RequiresApproval reports whether new accounts of this role start unapproved.
func (r Role) RequiresApproval() bool {
	return r == RoleEmployer
}

// Operation names a guarded capability of the API.
type Operation string

const (
	OpManageStudentProfile  Operation = "student_profile:manage"
	OpBrowseOpenJobs        Operation = "jobs:browse_open"
	OpApplyToJob            Operation = "applications:submit"
	OpViewOwnApplications   Operation = "applications:list_own"
	OpManageSavedJobs       Operation = "saved_jobs:manage"
	OpManageEmployerProfile Operation = "employer_profile:manage"
	OpManageOwnJobs         Operation = "jobs:manage_own"
	OpReviewApplicants      Operation = "applications:review"
	OpActivateTemplate      Operation = "templates:activate"
	OpViewEmployerStats     Operation = "stats:employer"
	OpModerate              Operation = "admin:moderate"
	OpManageTemplates       Operation = "templates:manage"
)

var permissions = map[Role]map[Operation]bool{
	RoleStudent: {
		OpManageStudentProfile: true,
		OpBrowseOpenJobs:       true,
		OpApplyToJob:           true,
		OpViewOwnApplications:  true,
		OpManageSavedJobs:      true,
	},
	RoleEmployer: {
		OpManageEmployerProfile: true,
		OpManageOwnJobs:         true,
		OpReviewApplicants:      true,
		OpActivateTemplate:      true,
		OpViewEmployerStats:     true,
	},
	RoleAdmin: {
		OpModerate:        true,
		OpManageTemplates: true,
	},
}

// CanPerform is the authorization allow-list. Unknown roles are denied everything.
func CanPerform(role Role, op Operation) bool {
	return permissions[role][op]
}
