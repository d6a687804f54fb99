package httpserver

import (
	"encoding/json"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	cartsvc "storefront-api/internal/service/cart"
)

// Request types are explicit schemas: each carries its own per-field
// validation and produces a field→message map for the error envelope.

var emailRe = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

type registerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r registerRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Name) == "" {
		fields["name"] = "name is required"
	} else if len(r.Name) > 255 {
		fields["name"] = "name must be at most 255 characters"
	}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "email is required"
	} else if !emailRe.MatchString(r.Email) {
		fields["email"] = "email must be a valid address"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	} else if len(r.Password) < 8 {
		fields["password"] = "password must be at least 8 characters"
	} else if len(r.Password) > 255 {
		fields["password"] = "password must be at most 255 characters"
	}
	return fields
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func (r loginRequest) validate() map[string]string {
	fields := map[string]string{}
	if strings.TrimSpace(r.Email) == "" {
		fields["email"] = "email is required"
	}
	if r.Password == "" {
		fields["password"] = "password is required"
	}
	return fields
}

type addressRequest struct {
	Zipcode    string `json:"zipcode"`
	Street     string `json:"street"`
	Number     string `json:"number"`
	City       string `json:"city"`
	State      string `json:"state"`
	Country    string `json:"country"`
	Complement string `json:"complement"`
}

var zipcodeRe = regexp.MustCompile(`^\d{8}$`)

func (r addressRequest) validate() map[string]string {
	fields := map[string]string{}
	if !zipcodeRe.MatchString(r.Zipcode) {
		fields["zipcode"] = "zipcode must contain exactly 8 digits"
	}
	requireMax(fields, "street", r.Street, 255)
	requireMax(fields, "number", r.Number, 10)
	requireMax(fields, "city", r.City, 100)
	requireMax(fields, "state", r.State, 50)
	requireMax(fields, "country", r.Country, 255)
	if len(r.Complement) > 255 {
		fields["complement"] = "complement must be at most 255 characters"
	}
	return fields
}

func requireMax(fields map[string]string, name, value string, max int) {
	if strings.TrimSpace(value) == "" {
		fields[name] = name + " is required"
	} else if len(value) > max {
		fields[name] = fmt.Sprintf("%s must be at most %d characters", name, max)
	}
}

type finishRequest struct {
	Cart      []cartsvc.Line `json:"cart"`
	AddressID int64          `json:"addressId"`
}

func (r finishRequest) validate() map[string]string {
	fields := map[string]string{}
	if len(r.Cart) == 0 {
		fields["cart"] = "cart must contain at least one item"
	}
	for i, line := range r.Cart {
		if line.ProductID <= 0 {
			fields[fmt.Sprintf("cart.%d.productId", i)] = "productId is required"
		}
		if line.Quantity < 1 {
			fields[fmt.Sprintf("cart.%d.quantity", i)] = "quantity must be at least 1"
		}
	}
	if r.AddressID <= 0 {
		fields["addressId"] = "addressId is required"
	}
	return fields
}

// productListQuery holds the parsed listing parameters.
type productListQuery struct {
	OrderBy  string
	Limit    int
	Metadata map[string]string
}

func parseProductListQuery(orderby, limit, metadata string) (productListQuery, map[string]string) {
	fields := map[string]string{}
	q := productListQuery{OrderBy: orderby}

	switch orderby {
	case "", "views", "selling", "price":
	default:
		fields["orderby"] = "orderby must be one of views, selling, price"
	}

	if limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 1 {
			fields["limit"] = "limit must be a positive integer"
		} else {
			q.Limit = n
		}
	}

	if metadata != "" {
		var m map[string]string
		if err := json.Unmarshal([]byte(metadata), &m); err != nil {
			fields["metadata"] = "metadata must be a JSON object of facet to value ids"
		} else {
			q.Metadata = m
		}
	}

	if len(fields) > 0 {
		return productListQuery{}, fields
	}
	return q, nil
}

// parseIDList parses the comma separated ids of /cart/mount.
func parseIDList(raw string) ([]int64, error) {
	parts := strings.Split(raw, ",")
	ids := make([]int64, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		id, err := strconv.ParseInt(part, 10, 64)
		if err != nil || id <= 0 {
			return nil, fmt.Errorf("invalid product id %q", part)
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, fmt.Errorf("ids parameter is required")
	}
	return ids, nil
}
