package ports

import (
	"file-custody-api/internal/domain/user"
)

type Auth interface {
	// IssueToken exchanges the front-end's bot key for a caller-identity
	// token bound to the given user.
	IssueToken(botKey string, u *user.User) (string, error)
}
