package orderview

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	domainErrors "github.com/polkiloo/storeadmin/internal/domain/errors"
	"github.com/polkiloo/storeadmin/internal/domain/model"
)

var fixedNow = time.Date(2026, 10, 14, 12, 0, 0, 0, time.UTC)

func daysAgo(now time.Time, days int) time.Time {
	return now.Add(-time.Duration(days) * 24 * time.Hour)
}

func sampleOrders(now time.Time) []model.Order {
	return []model.Order{
		{ID: "101", CustomerName: "Jane Doe", CustomerEmail: "jane@example.com", Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending, CreatedAt: now.Add(-time.Hour), TotalAmount: decimal.NewFromInt(10)},
		{ID: "102", CustomerName: "John Smith", CustomerEmail: "john@shop.io", Status: model.OrderStatusShipped, PaymentStatus: model.PaymentStatusPaid, CreatedAt: daysAgo(now, 3), TotalAmount: decimal.NewFromInt(20)},
		{ID: "103", CustomerName: "Ann Lee", CustomerEmail: "ann@EXAMPLE.com", Status: model.OrderStatusDelivered, PaymentStatus: model.PaymentStatusPaid, CreatedAt: daysAgo(now, 7), TotalAmount: decimal.NewFromInt(30)},
		{ID: "204", CustomerName: "Bob Stone", CustomerEmail: "bob@shop.io", Status: model.OrderStatusCancelled, PaymentStatus: model.PaymentStatusFailed, CreatedAt: daysAgo(now, 8), TotalAmount: decimal.NewFromInt(40)},
		{ID: "205", CustomerName: "Jan Kowalski", CustomerEmail: "jk@example.pl", Status: model.OrderStatusProcessing, PaymentStatus: model.PaymentStatusPaid, CreatedAt: daysAgo(now, 30), TotalAmount: decimal.NewFromInt(50)},
		{ID: "306", CustomerName: MissingCustomerName, CustomerEmail: "", Status: model.OrderStatusPending, PaymentStatus: model.PaymentStatusPending, CreatedAt: daysAgo(now, 31), TotalAmount: decimal.NewFromInt(60)},
		{ID: "307", CustomerName: "Old Timer", CustomerEmail: "old@example.com", Status: model.OrderStatusDelivered, PaymentStatus: model.PaymentStatusPaid},
	}
}

func ids(orders []model.Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func idSet(orders []model.Order) map[string]bool {
	set := make(map[string]bool, len(orders))
	for _, o := range orders {
		set[o.ID] = true
	}
	return set
}

func TestFilterSearchScenario(t *testing.T) {
	orders := []model.Order{
		{ID: "1", CustomerName: "Jane Doe"},
		{ID: "2", CustomerName: "John Smith"},
	}
	got := Filter(orders, Criteria{Search: "jane"}, fixedNow)
	if len(got) != 1 || got[0].ID != "1" {
		t.Fatalf("expected only Jane Doe, got %v", ids(got))
	}
}

func TestFilterSearchFields(t *testing.T) {
	orders := sampleOrders(fixedNow)
	cases := []struct {
		search string
		want   []string
	}{
		{"", []string{"101", "102", "103", "204", "205", "306", "307"}},
		{"20", []string{"204", "205"}},
		{"SHOP.IO", []string{"102", "204"}},
		{"example", []string{"101", "103", "205", "307"}},
		{"jan", []string{"101", "205"}},
		{"nobody", []string{}},
	}
	for _, tc := range cases {
		t.Run(fmt.Sprintf("search %q", tc.search), func(t *testing.T) {
			got := ids(Filter(orders, Criteria{Search: tc.search}, fixedNow))
			if fmt.Sprint(got) != fmt.Sprint(tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterSearchMonotonic(t *testing.T) {
	orders := sampleOrders(fixedNow)
	query := "example.com"
	prev := len(orders) + 1
	for i := 0; i <= len(query); i++ {
		got := Filter(orders, Criteria{Search: query[:i]}, fixedNow)
		if len(got) > prev {
			t.Fatalf("result grew from %d to %d at %q", prev, len(got), query[:i])
		}
		prev = len(got)
	}
}

func TestFilterStatusAndPayment(t *testing.T) {
	orders := sampleOrders(fixedNow)

	got := ids(Filter(orders, Criteria{Status: string(model.OrderStatusDelivered)}, fixedNow))
	if fmt.Sprint(got) != "[103 307]" {
		t.Fatalf("unexpected delivered set %v", got)
	}

	got = ids(Filter(orders, Criteria{Status: FilterAll, Payment: string(model.PaymentStatusFailed)}, fixedNow))
	if fmt.Sprint(got) != "[204]" {
		t.Fatalf("unexpected failed set %v", got)
	}

	got = ids(Filter(orders, Criteria{Status: string(model.OrderStatusCancelled), Payment: string(model.PaymentStatusPaid)}, fixedNow))
	if len(got) != 0 {
		t.Fatalf("expected no cancelled+paid orders, got %v", got)
	}
}

func TestFilterDateRanges(t *testing.T) {
	orders := sampleOrders(fixedNow)
	cases := []struct {
		r    DateRange
		want string
	}{
		{DateRangeToday, "[101]"},
		{DateRangeWeek, "[101 102 103]"},
		{DateRangeMonth, "[101 102 103 204 205]"},
		{DateRangeAll, "[101 102 103 204 205 306 307]"},
	}
	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			got := ids(Filter(orders, Criteria{DateRange: tc.r}, fixedNow))
			if fmt.Sprint(got) != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterDateRangesFutureTimestamp(t *testing.T) {
	orders := []model.Order{
		{ID: "skewed", CreatedAt: fixedNow.Add(90 * time.Second)},
		{ID: "tomorrow", CreatedAt: fixedNow.Add(30 * time.Hour)},
		{ID: "undated"},
	}
	cases := []struct {
		r    DateRange
		want string
	}{
		{DateRangeToday, "[skewed tomorrow]"},
		{DateRangeWeek, "[skewed tomorrow]"},
		{DateRangeMonth, "[skewed tomorrow]"},
		{DateRangeAll, "[skewed tomorrow undated]"},
	}
	for _, tc := range cases {
		t.Run(string(tc.r), func(t *testing.T) {
			got := ids(Filter(orders, Criteria{DateRange: tc.r}, fixedNow))
			if fmt.Sprint(got) != tc.want {
				t.Fatalf("expected %s, got %v", tc.want, got)
			}
		})
	}
}

func TestFilterDateRangesNested(t *testing.T) {
	orders := sampleOrders(fixedNow)
	nested := []DateRange{DateRangeToday, DateRangeWeek, DateRangeMonth, DateRangeAll}
	for i := 0; i < len(nested)-1; i++ {
		inner := idSet(Filter(orders, Criteria{DateRange: nested[i]}, fixedNow))
		outer := idSet(Filter(orders, Criteria{DateRange: nested[i+1]}, fixedNow))
		for id := range inner {
			if !outer[id] {
				t.Fatalf("order %s in %s but not in %s", id, nested[i], nested[i+1])
			}
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	orders := sampleOrders(fixedNow)
	c := Criteria{Search: "e", Status: FilterAll, Payment: string(model.PaymentStatusPaid), DateRange: DateRangeMonth}
	once := Filter(orders, c, fixedNow)
	twice := Filter(once, c, fixedNow)
	if fmt.Sprint(ids(once)) != fmt.Sprint(ids(twice)) {
		t.Fatalf("filter not idempotent: %v vs %v", ids(once), ids(twice))
	}
	again := Filter(orders, c, fixedNow)
	if fmt.Sprint(ids(once)) != fmt.Sprint(ids(again)) {
		t.Fatalf("filter not deterministic: %v vs %v", ids(once), ids(again))
	}
}

func TestDaysSince(t *testing.T) {
	if got := DaysSince(fixedNow.Add(-23*time.Hour), fixedNow); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
	if got := DaysSince(daysAgo(fixedNow, 7), fixedNow); got != 7 {
		t.Fatalf("expected 7, got %d", got)
	}
	if got := DaysSince(fixedNow.Add(time.Hour), fixedNow); got != -1 {
		t.Fatalf("expected -1 for future timestamp, got %d", got)
	}
}

func TestSortByRecency(t *testing.T) {
	orders := sampleOrders(fixedNow)
	// shuffle deterministically
	orders[0], orders[4] = orders[4], orders[0]
	orders[1], orders[6] = orders[6], orders[1]
	SortByRecency(orders)
	if fmt.Sprint(ids(orders)) != "[101 102 103 204 205 306 307]" {
		t.Fatalf("unexpected order %v", ids(orders))
	}
}

func TestApplyPipeline(t *testing.T) {
	orders := sampleOrders(fixedNow)
	reversed := make([]model.Order, len(orders))
	for i := range orders {
		reversed[len(orders)-1-i] = orders[i]
	}

	res := Apply(reversed, Criteria{Payment: string(model.PaymentStatusPaid)}, 1, 2, fixedNow)
	if res.MatchCount != 4 || res.TotalPages != 2 {
		t.Fatalf("unexpected counts: %+v", res)
	}
	if fmt.Sprint(ids(res.Orders)) != "[102 103]" {
		t.Fatalf("unexpected first page %v", ids(res.Orders))
	}
	if reversed[0].ID != "307" {
		t.Fatal("input slice was reordered")
	}
}

func TestCriteriaValidate(t *testing.T) {
	c, err := Criteria{}.Validate()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Status != FilterAll || c.Payment != FilterAll || c.DateRange != DateRangeAll {
		t.Fatalf("expected defaults, got %+v", c)
	}

	bad := []Criteria{
		{Status: "lost"},
		{Payment: "refunded"},
		{DateRange: "year"},
	}
	for _, b := range bad {
		if _, err := b.Validate(); !errors.Is(err, domainErrors.ErrInvalidFilter) {
			t.Errorf("expected invalid filter for %+v, got %v", b, err)
		}
	}
}
