package repository

import (
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// Timestamps are written as RFC 3339 strings; that is the canonical on-disk
// representation. Documents seeded out-of-band may carry native BSON
// datetimes instead, so reads accept both.

// encodeTimestamp renders the canonical stored form of a timestamp.
func encodeTimestamp(t time.Time) string {
	return t.UTC().Format(time.RFC3339Nano)
}

// decodeTimestamp normalizes a stored timestamp value to a time.Time.
// A missing field decodes to the zero time.
func decodeTimestamp(v bson.RawValue) (time.Time, error) {
	switch v.Type {
	case bson.TypeString:
		t, err := time.Parse(time.RFC3339Nano, v.StringValue())
		if err != nil {
			return time.Time{}, fmt.Errorf("parse timestamp %q: %w", v.StringValue(), err)
		}
		return t.UTC(), nil
	case bson.TypeDateTime:
		return v.Time().UTC(), nil
	case 0:
		if len(v.Value) == 0 {
			return time.Time{}, nil
		}
	}
	return time.Time{}, fmt.Errorf("unsupported timestamp type %s", v.Type)
}
