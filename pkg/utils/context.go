package utils

import (
	"context"

	"pos-terminal/internal/data/entity"
)

type contextKey string

const SessionKey contextKey = "session"

// SetSessionContext menambahkan session ke context
func SetSessionContext(ctx context.Context, session *entity.Session) context.Context {
	return context.WithValue(ctx, SessionKey, session)
}

// GetSessionFromContext mendapatkan session dari context
func GetSessionFromContext(ctx context.Context) (*entity.Session, bool) {
	val := ctx.Value(SessionKey)
	if val == nil {
		return nil, false
	}

	session, ok := val.(*entity.Session)
	if !ok || !session.Valid() {
		return nil, false
	}
	return session, true
}
