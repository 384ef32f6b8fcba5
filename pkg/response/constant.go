package response

// Envelope constants.
const (
	MessageSuccess      = "Success"
	DefaultErrorMessage = "Something went wrong"

	InternalServerErrorCode = 500
)

// DateFormat is the marshal layout for Date values.
const DateFormat = "2006-01-02"
