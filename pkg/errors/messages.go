package errors

import "errors"

// messages maps the backend's machine-readable error names to the text
// shown to the user. Names missing here fall back to the server message,
// then to GenericMessage.
var messages = map[string]string{
	"InvalidCredentials":  "Email or password is incorrect.",
	"AccountNotActivated": "Your account is not activated yet. Check your email for the activation link.",
	"EmailExist":          "An account with this email already exists.",
	"UsernameExist":       "This username is already taken.",
	"InvalidToken":        "This link is invalid or has expired.",
	"TokenExpired":        "Your session has expired. Please log in again.",
	"Unauthorized":        "You need to be logged in to do that.",
	"IncorrectPassword":   "Your current password is incorrect.",
	"SamePassword":        "The new password must differ from the current one.",
	"PostNotFound":        "This post no longer exists.",
	"CommentNotFound":     "This comment no longer exists.",
	"UserNotFound":        "This user does not exist.",
	"NotAuthor":           "Only the author can change this post.",
	"ValidationError":     "Some fields are invalid. Please check your input.",
	"TooManyRequests":     "Too many requests. Slow down and try again shortly.",
	"InternalServerError": GenericMessage,
}

// MessageFor returns the user-facing text for a machine-readable error
// name and whether the name is known.
func MessageFor(name string) (string, bool) {
	msg, ok := messages[name]
	return msg, ok
}

// UserMessage picks the text a notification should show for err.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var ne namedError
	if errors.As(err, &ne) {
		if msg, ok := MessageFor(ne.ErrorName()); ok {
			return msg
		}
		if ne.ErrorName() != "" {
			if m := serverMessage(ne); m != "" {
				return m
			}
		}
		return GenericMessage
	}

	var cliErr *CLIError
	if errors.As(err, &cliErr) && cliErr.Message != "" {
		return cliErr.Message
	}
	return GenericMessage
}

func serverMessage(err error) string {
	type messager interface{ ServerMessage() string }
	if m, ok := err.(messager); ok {
		return m.ServerMessage()
	}
	return ""
}
