package users

import (
	"context"
	"time"

	"github.com/meower-media/notify/pkg/db"
	"github.com/meower-media/notify/pkg/meowid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// Sessions older than this (by last refresh) are treated as expired even if
// the account service hasn't cleaned them up yet.
const sessionMaxAge = 21 * 24 * time.Hour

type Session struct {
	Id          meowid.MeowID `bson:"_id" msgpack:"id"`
	UserId      meowid.MeowID `bson:"user" msgpack:"user"`
	RefreshedAt int64         `bson:"refreshed" msgpack:"refreshed"`
}

func GetSession(id meowid.MeowID) (Session, error) {
	var s Session
	err := db.Sessions.FindOne(context.TODO(), bson.M{"_id": id}).Decode(&s)
	if err == mongo.ErrNoDocuments {
		err = ErrSessionNotFound
	}
	return s, err
}

// GetSessionByToken verifies a token and resolves it to a live session.
func GetSessionByToken(token string) (Session, error) {
	claims, err := ParseToken(token)
	if err != nil {
		return Session{}, err
	}

	s, err := GetSession(claims.SessionId)
	if err != nil {
		return s, err
	}
	if s.UserId != claims.UserId {
		return s, ErrInvalidTokenSignature
	}
	if s.RefreshedAt < time.Now().Add(-sessionMaxAge).UnixMilli() {
		return s, ErrTokenExpired
	}

	return s, nil
}
