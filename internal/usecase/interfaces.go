package usecase

import (
	"context"
	"io"
)

// AuthClient is the authentication collaborator: a hosted identity
// provider reached through its managed SDK.
type AuthClient interface {
	CreateUser(ctx context.Context, email, password, displayName string) (string, error)
	VerifyToken(ctx context.Context, token string) (string, error)
	SignInWithEmailPassword(email, password string) (string, error)
	SignOut(ctx context.Context, uid string) error
	UpdateUserPassword(ctx context.Context, uid, newPassword string) error
}

// ObjectStorage is the object-storage collaborator. Upload returns the
// publicly retrievable URL of the stored object.
type ObjectStorage interface {
	Upload(ctx context.Context, path, contentType string, data io.Reader) (string, error)
	Delete(ctx context.Context, fileURL string) error
	PublicURL(path string) string
}
