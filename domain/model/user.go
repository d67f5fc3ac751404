package model

import (
	"time"

	"github.com/golang-jwt/jwt"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// User is an admin account able to manage contacts, content and uploads.
type User struct {
	ID        bson.ObjectID `bson:"_id,omitempty" json:"id"`
	UserName  string        `bson:"user_name" json:"user_name"`
	Password  string        `bson:"password" json:"-"`
	Name      string        `bson:"name" json:"name"`
	Role      string        `bson:"role" json:"role"`
	CreatedAt time.Time     `bson:"created_at" json:"created_at"`
}

// UserClaims are the JWT claims carried by admin tokens.
type UserClaims struct {
	jwt.StandardClaims
	UserName string `json:"user_name"`
	Role     string `json:"role"`
}
