package constant

const (
	CODE_MIN = 10000
	CODE_MAX = 99999

	ARTIFACT_EXT       = ".json"
	ARTIFACT_VERSION   = 1
	DEFAULT_DATA_DIR   = "files"
	DEFAULT_STORE      = "file"
	REDIS_KEY_PREFIX   = "showtime:theatre"
	CONFIG_NAME        = "showtime"
	ENV_PREFIX         = "SHOWTIME"
	DEFAULT_LOG_LEVEL  = "info"
	DEFAULT_LOG_FORMAT = "console"
)

// TheatreSeed is one (movie, seat count) pair of the startup lineup.
type TheatreSeed struct {
	Movie string
	Seats int
}

var DefaultLineup = []TheatreSeed{
	{Movie: "Harry Potter 12: Legend of the Scar", Seats: 10},
	{Movie: "Encanto 3: No More Powers", Seats: 20},
	{Movie: "Matrix 24: Resuscitated", Seats: 15},
}
