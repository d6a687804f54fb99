package httpserver

import (
	"testing"

	cartsvc "storefront-api/internal/service/cart"
)

func TestRegisterRequest_Validate(t *testing.T) {
	ok := registerRequest{Name: "Test", Email: "a@example.com", Password: "secret-pass"}
	if fields := ok.validate(); len(fields) != 0 {
		t.Fatalf("expected valid request, got %v", fields)
	}

	cases := []struct {
		name  string
		req   registerRequest
		field string
	}{
		{"missing name", registerRequest{Email: "a@example.com", Password: "secret-pass"}, "name"},
		{"missing email", registerRequest{Name: "T", Password: "secret-pass"}, "email"},
		{"bad email", registerRequest{Name: "T", Email: "not-an-email", Password: "secret-pass"}, "email"},
		{"short password", registerRequest{Name: "T", Email: "a@example.com", Password: "short"}, "password"},
	}
	for _, tc := range cases {
		fields := tc.req.validate()
		if _, ok := fields[tc.field]; !ok {
			t.Fatalf("%s: expected error on %q, got %v", tc.name, tc.field, fields)
		}
	}
}

func TestAddressRequest_Validate(t *testing.T) {
	ok := addressRequest{
		Zipcode: "01310100", Street: "Av Paulista", Number: "1000",
		City: "Sao Paulo", State: "SP", Country: "BR",
	}
	if fields := ok.validate(); len(fields) != 0 {
		t.Fatalf("expected valid address, got %v", fields)
	}

	bad := addressRequest{Zipcode: "1310-100", Street: "Av Paulista", Number: "1000", City: "Sao Paulo", State: "SP", Country: "BR"}
	if fields := bad.validate(); fields["zipcode"] == "" {
		t.Fatalf("expected zipcode error, got %v", fields)
	}

	empty := addressRequest{}
	fields := empty.validate()
	for _, f := range []string{"zipcode", "street", "number", "city", "state", "country"} {
		if fields[f] == "" {
			t.Fatalf("expected error on %q, got %v", f, fields)
		}
	}
}

func TestFinishRequest_Validate(t *testing.T) {
	ok := finishRequest{
		Cart:      []cartsvc.Line{{ProductID: 1, Quantity: 2}},
		AddressID: 10,
	}
	if fields := ok.validate(); len(fields) != 0 {
		t.Fatalf("expected valid request, got %v", fields)
	}

	empty := finishRequest{AddressID: 10}
	if fields := empty.validate(); fields["cart"] == "" {
		t.Fatalf("expected cart error, got %v", fields)
	}

	badLine := finishRequest{
		Cart:      []cartsvc.Line{{ProductID: 0, Quantity: 0}},
		AddressID: 0,
	}
	fields := badLine.validate()
	if fields["cart.0.productId"] == "" || fields["cart.0.quantity"] == "" || fields["addressId"] == "" {
		t.Fatalf("expected per-line and address errors, got %v", fields)
	}
}

func TestParseProductListQuery(t *testing.T) {
	q, fields := parseProductListQuery("views", "10", `{"smartphones-brand":"brand-apple"}`)
	if fields != nil {
		t.Fatalf("expected valid query, got %v", fields)
	}
	if q.OrderBy != "views" || q.Limit != 10 || q.Metadata["smartphones-brand"] != "brand-apple" {
		t.Fatalf("unexpected query %+v", q)
	}

	if _, fields := parseProductListQuery("alphabetical", "", ""); fields["orderby"] == "" {
		t.Fatalf("expected orderby error, got %v", fields)
	}
	if _, fields := parseProductListQuery("", "-1", ""); fields["limit"] == "" {
		t.Fatalf("expected limit error, got %v", fields)
	}
	if _, fields := parseProductListQuery("", "", "not-json"); fields["metadata"] == "" {
		t.Fatalf("expected metadata error, got %v", fields)
	}
}

func TestParseIDList(t *testing.T) {
	ids, err := parseIDList("1, 2,3")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	if len(ids) != 3 || ids[0] != 1 || ids[2] != 3 {
		t.Fatalf("unexpected ids %v", ids)
	}

	if _, err := parseIDList(""); err == nil {
		t.Fatalf("expected error for empty list")
	}
	if _, err := parseIDList("1,abc"); err == nil {
		t.Fatalf("expected error for non-numeric id")
	}
	if _, err := parseIDList("0"); err == nil {
		t.Fatalf("expected error for non-positive id")
	}
}
