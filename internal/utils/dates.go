package utils

import (
	"time"

	"github.com/rs/zerolog/log"
	"go.mongodb.org/mongo-driver/v2/bson"
)

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"01/02/2006",
}

// TryNormalizeDate converts a submitted value to time.Time when it can.
// Unparseable input is returned as submitted with a diagnostic log; the
// request is never failed over a bad date string.
func TryNormalizeDate(field string, v interface{}) interface{} {
	switch tv := v.(type) {
	case nil:
		return v
	case time.Time:
		return tv
	case *time.Time:
		if tv == nil {
			return v
		}
		return *tv
	case bson.DateTime:
		return tv.Time()
	case string:
		if tv == "" {
			return v
		}
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, tv); err == nil {
				return t
			}
		}
		log.Warn().Str("field", field).Str("value", tv).Msg("could not normalize date, storing as submitted")
		return v
	default:
		return v
	}
}

// NormalizeDates rewrites the named fields of doc in place.
func NormalizeDates(doc bson.M, fields ...string) {
	for _, f := range fields {
		if v, ok := doc[f]; ok {
			doc[f] = TryNormalizeDate(f, v)
		}
	}
}

// NormalizeTicketDates normalizes the sales windows of each ticket
// sub-document independently of the event's own date fields.
func NormalizeTicketDates(tickets interface{}) {
	list, ok := tickets.([]interface{})
	if !ok {
		return
	}
	for _, item := range list {
		ticket, ok := item.(map[string]interface{})
		if !ok {
			continue
		}
		if v, ok := ticket["salesStart"]; ok {
			ticket["salesStart"] = TryNormalizeDate("tickets.salesStart", v)
		}
		if v, ok := ticket["salesEnd"]; ok {
			ticket["salesEnd"] = TryNormalizeDate("tickets.salesEnd", v)
		}
	}
}

// ExtractTime pulls a time value out of a raw document, tolerating the
// encodings Mongo and clients actually send.
func ExtractTime(m bson.M, key string) (time.Time, bool) {
	v, ok := m[key]
	if !ok {
		return time.Time{}, false
	}
	switch tv := v.(type) {
	case time.Time:
		return tv, true
	case bson.DateTime:
		return tv.Time(), true
	case string:
		if t, err := time.Parse(time.RFC3339Nano, tv); err == nil {
			return t, true
		}
		if t, err := time.Parse(time.RFC3339, tv); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}
