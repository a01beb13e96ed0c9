package repository

import (
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"

	"meetspace-admin/dto"
	"meetspace-admin/internal/models"
)

func TestBuildUserFilter(t *testing.T) {
	if got := BuildUserFilter(""); len(got) != 0 {
		t.Errorf("empty search produced filter %v", got)
	}

	filter := BuildUserFilter("alice")
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 3 {
		t.Fatalf("search filter = %v, want 3-way $or", filter)
	}
}

func TestBuildEventFilterEquality(t *testing.T) {
	q := dto.EventListQuery{
		Category:   "Workshop",
		Status:     "Published",
		IsVirtual:  "true",
		Featured:   "true",
		SkillLevel: "Beginner",
	}
	filter := BuildEventFilter(q)

	if filter["category"] != "Workshop" || filter["status"] != "Published" {
		t.Errorf("equality filters missing: %v", filter)
	}
	if filter["isVirtual"] != true || filter["isFeatured"] != true {
		t.Errorf("boolean filters missing: %v", filter)
	}
	if _, ok := filter["$or"]; ok {
		t.Error("search clause present without a search term")
	}
}

func TestBuildEventFilterIgnoresAbsentParams(t *testing.T) {
	filter := BuildEventFilter(dto.EventListQuery{IsVirtual: "maybe", Featured: "false"})
	if len(filter) != 0 {
		t.Errorf("absent params produced filter %v", filter)
	}
}

func TestBuildEventFilterDateRange(t *testing.T) {
	q := dto.EventListQuery{StartDate: "2026-01-01", EndDate: "2026-06-30"}
	filter := BuildEventFilter(q)

	dateRange, ok := filter["date"].(bson.M)
	if !ok {
		t.Fatalf("no date range in %v", filter)
	}
	gte, _ := dateRange["$gte"].(time.Time)
	lte, _ := dateRange["$lte"].(time.Time)
	if gte.IsZero() || lte.IsZero() || !gte.Before(lte) {
		t.Errorf("date range bounds = %v / %v", gte, lte)
	}

	// Garbage bounds are dropped rather than matching nothing.
	filter = BuildEventFilter(dto.EventListQuery{StartDate: "soon"})
	if _, ok := filter["date"]; ok {
		t.Errorf("unparseable startDate produced %v", filter["date"])
	}
}

func TestBuildEventSortTiebreaks(t *testing.T) {
	sort := BuildEventSort("title", "desc")
	if sort[0].Key != "title" || sort[0].Value != -1 {
		t.Fatalf("primary sort = %v", sort[0])
	}
	last := sort[len(sort)-1]
	if last.Key != "_id" {
		t.Errorf("missing _id tiebreak: %v", sort)
	}

	// Unknown field falls back to date ascending.
	sort = BuildEventSort("bogus", "")
	if sort[0].Key != "date" || sort[0].Value != 1 {
		t.Errorf("fallback sort = %v", sort)
	}
}

func TestBuildPaymentFilter(t *testing.T) {
	if got := BuildPaymentFilter("", "all"); len(got) != 0 {
		t.Errorf(`status "all" produced filter %v`, got)
	}

	filter := BuildPaymentFilter("ref-1", models.PaymentSuccess)
	if filter["status"] != models.PaymentSuccess {
		t.Errorf("status filter missing: %v", filter)
	}
	or, ok := filter["$or"].(bson.A)
	if !ok || len(or) != 4 {
		t.Errorf("search clause = %v", filter["$or"])
	}
}

func TestScopedStatusFilterCarriesListConstraints(t *testing.T) {
	base := BuildPaymentFilter("ref-1", "all")

	scoped := scopedStatusFilter(base, models.PaymentSuccess)
	if scoped["status"] != models.PaymentSuccess {
		t.Errorf("status not pinned: %v", scoped)
	}
	if _, ok := scoped["$or"]; !ok {
		t.Errorf("search clause dropped from scoped filter: %v", scoped)
	}
	if _, ok := base["status"]; ok {
		t.Errorf("input filter mutated: %v", base)
	}

	// A list filter that already pins a status is overridden, not
	// duplicated.
	scoped = scopedStatusFilter(bson.M{"status": models.PaymentPending}, models.PaymentFailed)
	if scoped["status"] != models.PaymentFailed {
		t.Errorf("status override = %v", scoped["status"])
	}
}

func TestPaymentKeyFilter(t *testing.T) {
	filters := paymentKeyFilter("507f1f77bcf86cd799439011")
	if len(filters) != 2 {
		t.Fatalf("hex key filters = %v", filters)
	}
	if _, ok := filters[0]["_id"]; !ok {
		t.Error("_id lookup not tried first for hex key")
	}
	if filters[1]["tx_ref"] != "507f1f77bcf86cd799439011" {
		t.Error("tx_ref fallback missing")
	}

	filters = paymentKeyFilter("tx-abc")
	if len(filters) != 1 || filters[0]["tx_ref"] != "tx-abc" {
		t.Errorf("non-hex key filters = %v", filters)
	}
}

func TestPlanKeyFilter(t *testing.T) {
	filters := planKeyFilter("pro")
	if len(filters) != 1 || filters[0]["slug"] != "pro" {
		t.Errorf("slug key filters = %v", filters)
	}
	if got := planKeyFilter("507f1f77bcf86cd799439011"); len(got) != 2 {
		t.Errorf("hex key filters = %v", got)
	}
}

func TestBuildApplicationFilterStatus(t *testing.T) {
	for _, status := range []string{
		models.ApplicationPending, models.ApplicationAccepted, models.ApplicationRejected,
	} {
		filter := BuildApplicationFilter("", status)
		if filter["status"] != status {
			t.Errorf("status %q not applied: %v", status, filter)
		}
	}

	for _, status := range []string{"", "all", "bogus"} {
		filter := BuildApplicationFilter("", status)
		if _, ok := filter["status"]; ok {
			t.Errorf("status %q applied: %v", status, filter)
		}
	}
}

func TestBuildSubscriptionFilter(t *testing.T) {
	filter := BuildSubscriptionFilter("pro", "active", "all")
	if filter["status"] != "active" {
		t.Errorf("status filter missing: %v", filter)
	}
	if _, ok := filter["paymentStatus"]; ok {
		t.Errorf(`paymentStatus "all" applied: %v`, filter)
	}
	if _, ok := filter["$or"]; !ok {
		t.Errorf("search clause missing: %v", filter)
	}
}

func TestPeriodRange(t *testing.T) {
	now := time.Date(2026, 8, 15, 12, 0, 0, 0, time.UTC)

	start, end := PeriodRange("7days", now)
	if !start.Equal(now.AddDate(0, 0, -7)) || !end.Equal(now) {
		t.Errorf("7days = %v..%v", start, end)
	}

	start, end = PeriodRange("thisMonth", now)
	if start.Day() != 1 || start.Month() != time.August || !end.Equal(now) {
		t.Errorf("thisMonth = %v..%v", start, end)
	}

	start, end = PeriodRange("lastMonth", now)
	if start.Month() != time.July || start.Day() != 1 {
		t.Errorf("lastMonth start = %v", start)
	}
	if end.Month() != time.July || end.Day() != 31 {
		t.Errorf("lastMonth end = %v", end)
	}

	start, _ = PeriodRange("thisYear", now)
	if start.Month() != time.January || start.Day() != 1 || start.Year() != 2026 {
		t.Errorf("thisYear start = %v", start)
	}

	defStart, _ := PeriodRange("whatever", now)
	if !defStart.Equal(now.AddDate(0, 0, -30)) {
		t.Errorf("default start = %v", defStart)
	}
}
