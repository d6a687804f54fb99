package shipping

import (
	"context"
	"encoding/json"
	"fmt"
	"hash/fnv"
	"io"
	"log"
	"time"

	"storefront-api/internal/domain"

	"github.com/redis/go-redis/v9"
)

const (
	quoteKey = "shipping:quote:%s"
	quoteTTL = 5 * time.Minute
)

// Service estimates shipping cost and delivery days for a zipcode. Quotes are
// derived deterministically from the zipcode (a stand-in for a carrier rate
// API) and cached in redis so repeated lookups within the TTL agree.
type Service struct {
	rdb    *redis.Client
	logger *log.Logger
}

// New builds a Service. rdb may be nil; quotes are then computed on every call.
func New(rdb *redis.Client, logger *log.Logger) *Service {
	if logger == nil {
		logger = log.New(io.Discard, "", 0)
	}
	return &Service{rdb: rdb, logger: logger}
}

type quote struct {
	CostCents domain.Cents `json:"costCents"`
	Days      int          `json:"days"`
}

// Quote returns the shipping cost (minor units) and day estimate for zipcode.
func (s *Service) Quote(ctx context.Context, zipcode string) (domain.Cents, int, error) {
	key := fmt.Sprintf(quoteKey, zipcode)
	if s.rdb != nil {
		if raw, err := s.rdb.Get(ctx, key).Result(); err == nil {
			var q quote
			if err := json.Unmarshal([]byte(raw), &q); err == nil {
				return q.CostCents, q.Days, nil
			}
		}
	}

	q := computeQuote(zipcode)
	if s.rdb != nil {
		if raw, err := json.Marshal(q); err == nil {
			if err := s.rdb.Set(ctx, key, raw, quoteTTL).Err(); err != nil {
				s.logger.Printf("shipping: cache quote zipcode=%s error=%v", zipcode, err)
			}
		}
	}
	return q.CostCents, q.Days, nil
}

// computeQuote maps a zipcode onto the cost range R$3-R$40 and 1-4 days.
func computeQuote(zipcode string) quote {
	h := fnv.New32a()
	_, _ = io.WriteString(h, zipcode)
	n := h.Sum32()
	return quote{
		CostCents: domain.Cents(300 + int64(n%38)*100),
		Days:      int(n%4) + 1,
	}
}
