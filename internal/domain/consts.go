package domain

// Periods as named in the task catalog
const (
	PeriodWeekly  = "ugentlig"
	PeriodMonthly = "månedlig"
)

// Monthly categories split between the two groups
const (
	CategoryKitchen  = "køkken"
	CategorySurfaces = "overflader"
)

// Monthly assignment flag values
const (
	SurfacesOnGroupA = "overflader-on-groupA"
	SurfacesOnGroupB = "overflader-on-groupB"
)

// DefaultMonthlyAssignment leaves groupA on kitchen duty
const DefaultMonthlyAssignment = SurfacesOnGroupB

// Assignee ids used when a monthly group has no members
const (
	EmptyGroupAKey = "gruppeA"
	EmptyGroupBKey = "gruppeB"
)

// TaskIDSeparator joins the components of a task instance identifier
const TaskIDSeparator = "|"

// GroupMemberSeparator joins monthly group members into one assignee id
const GroupMemberSeparator = "+"

// Settings keys for the monthly allocator
const (
	SettingMonthlyGroups     = "opgaver:monthlyGroups"
	SettingMonthlyAssignment = "opgaver:monthlyAssignment"
)

// AuthCookieName carries the signed session token
const AuthCookieName = "noba_auth"

// DefaultPreferredGroupA and DefaultPreferredGroupB are the fixed monthly split
// used when all of its members are in the catalog
var (
	DefaultPreferredGroupA = []string{"NA", "OL"}
	DefaultPreferredGroupB = []string{"BA", "AL"}
)

// ISO 8601 weekday numbers, used by the weekly announcer
const (
	Monday    = 1
	Tuesday   = 2
	Wednesday = 3
	Thursday  = 4
	Friday    = 5
	Saturday  = 6
	Sunday    = 7
)
