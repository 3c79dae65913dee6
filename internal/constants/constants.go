package constants

// Centralized constants for env keys, routes and API messages.
const (
	// Environment variable keys
	EnvConfigPath   = "TRIAL_CONFIG"
	EnvDatabasePath = "TRIAL_DB"
)

// Routes used by the backend router
const (
	RouteAPIPrefix   = "/api"
	RouteClasses     = "/classes"
	RouteLeaderboard = "/leaderboard"
	RouteVersion     = "/version"
	RouteOpenMatches = "/open-matches"
	RouteMatches     = "/matches"
	RouteMatchesJoin = "/matches/join"
	RouteMatchByCode = "/matches/:matchCode"
	RouteMatchMove   = "/matches/:matchCode/move"
	RouteMatchYield  = "/matches/:matchCode/forfeit"
	RouteMatchWatch  = "/matches/:matchCode/watch"
	RouteProfile     = "/profile/:playerUUID"
)

// Common JSON response keys
const (
	JSONKeyError   = "error"
	JSONKeyMessage = "message"
	JSONKeyStatus  = "status"
)

// Common error messages used across API handlers
const (
	ErrInvalidRequest         = "Invalid request"
	ErrInvalidJoinCode        = "Invalid match code"
	ErrMatchNotFound          = "Match not found"
	ErrMatchFull              = "Match is full"
	ErrUnknownClass           = "Unknown class"
	ErrUnknownMode            = "Unknown mode"
	ErrPlayerNameRequired     = "Player name is required"
	ErrPlayerNotInMatch       = "Player not in this match"
	ErrFailedCreateMatch      = "Failed to create match"
	ErrFailedUpdateMatch      = "Failed to update match"
	ErrFailedFetchMatches     = "Failed to fetch matches"
	ErrFailedFetchLeaderboard = "Failed to fetch leaderboard"
	ErrFailedFetchProfile     = "Failed to fetch profile"
	ErrFailedStoreMove        = "Failed to store move"
	ErrMatchNotInProgress     = "Match is not in progress"
	ErrMovesLockedResolving   = "Moves are locked; resolving current turn"
	ErrMoveAlreadyChosen      = "Move already chosen this turn"
	ErrInvalidMove            = "Invalid move"
	ErrNotEnoughCharge        = "Not enough charge for that move"
	ErrInvalidTarget          = "Target is not a living enemy"
)

// Logging field names
const (
	LogFieldMatchID  = "match_id"
	LogFieldJoinCode = "join_code"
	LogFieldMode     = "mode"
	LogFieldSlot     = "slot"
	LogFieldAddr     = "addr"
)
