package wordenum

const (
	DefaultInput  = "input.txt"
	DefaultOutput = "output.txt"
	// Stdio selects stdin/stdout in place of a file path.
	Stdio = "-"
)

// Logging settings
const (
	EnvLogsDebug = "WORDENUM_LOGS_DEBUG" // enable logging for debug statements. boolean, see strconv.ParseBool for valid values.
)

const (
	EnvInput         = "WORDENUM_INPUT"          // path of the input word list.
	EnvOutput        = "WORDENUM_OUTPUT"         // path of the generated output.
	EnvStrict        = "WORDENUM_STRICT"         // reject input missing the final line feed or containing non-printable bytes.
	EnvMaxSize       = "WORDENUM_MAX_SIZE"       // upper bound in bytes on the generated output, 0 disables the bound.
	EnvWatchDebounce = "WORDENUM_WATCH_DEBOUNCE" // minimum interval between regenerations in watch mode.
)
