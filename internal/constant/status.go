package constant

// Planning status of a date's roster. Finalize/unfinalize always act on the
// whole date, so all rows of one date share one value.
const (
	PlanningStatusDraft     = "draft"
	PlanningStatusFinalized = "finalized"
)

// Warehouse loading progress of a single daily assignment. Independent of
// planning status; only meaningful once a date is finalized.
const (
	LoadingStatusNotStarted = "not_started"
	LoadingStatusInProgress = "in_progress"
	LoadingStatusLoaded     = "loaded"
)

// Yard movement state of a trailer at a dock door. Transitions are free-form;
// entering departed retires the door assignment.
const (
	MoveStatusAtDoor       = "at_door"
	MoveStatusJockeyMoving = "jockey_moving"
	MoveStatusTruckIn      = "truck_in"
	MoveStatusDeparted     = "departed"
)

// Reference entity status shared by drivers, trucks, trailers, loaders and routes.
const (
	EntityStatusActive      = "active"
	EntityStatusInactive    = "inactive"
	EntityStatusMaintenance = "maintenance"
	EntityStatusRetired     = "retired"
)

var PlanningStatuses = []string{PlanningStatusDraft, PlanningStatusFinalized}

var LoadingStatuses = []string{LoadingStatusNotStarted, LoadingStatusInProgress, LoadingStatusLoaded}

var MoveStatuses = []string{MoveStatusAtDoor, MoveStatusJockeyMoving, MoveStatusTruckIn, MoveStatusDeparted}

var EntityStatuses = []string{EntityStatusActive, EntityStatusInactive, EntityStatusMaintenance, EntityStatusRetired}
