package utils

import (
	"regexp"

	"go.mongodb.org/mongo-driver/v2/bson"
)

var hexIDPattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

func Oid(hex string) (bson.ObjectID, error) {
	return bson.ObjectIDFromHex(hex)
}

// LooksLikeObjectID reports whether s has the shape of a generated id,
// used to decide between _id and alternate-key lookups.
func LooksLikeObjectID(s string) bool {
	return hexIDPattern.MatchString(s)
}
