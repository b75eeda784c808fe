package message

const (
	InvalidCreds   = "Invalid credentials"
	InvalidToken   = "Invalid token"
	InvalidInput   = "Invalid input."
	MissingToken   = "Missing token"
	NotVerified    = "Verify your Account."
	UserExists     = "User already exists."
	UserNotFound   = "There is no user with that email"
	EmailFailed    = "Email could not be sent"
	EmailSent      = "Email sent"
	EnvErrFmt      = "environment variable is not set: %s"
	NoteNotFound   = "Note not found"
	NoteNameTaken  = "Note name already taken"
	NoteNotOwner   = "Not authorized to modify this note"
	ServerErrorMsg = "Something went wrong."
)
