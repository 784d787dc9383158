package service

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

// InvoiceNumberService issues invoice numbers of the form INV-YYYYMMDD-NNN.
// NNN comes from a per-day Redis counter so numbers are unique within a day;
// when Redis is unavailable it falls back to a random suffix and relies on
// the database unique index to catch the rare collision.
type InvoiceNumberService struct {
	redisClient *redis.Client
	log         *logrus.Logger
}

func NewInvoiceNumberService(redisClient *redis.Client, log *logrus.Logger) *InvoiceNumberService {
	return &InvoiceNumberService{
		redisClient: redisClient,
		log:         log,
	}
}

func (s *InvoiceNumberService) Next(ctx context.Context, issueDate time.Time) string {
	dateStr := issueDate.Format("20060102")
	key := fmt.Sprintf("invoice_seq:%s", dateStr)

	seq, err := s.redisClient.Incr(ctx, key).Result()
	if err != nil {
		s.log.Warnf("Redis invoice sequence unavailable, using random suffix: %+v", err)
		return FormatInvoiceNumber(dateStr, randomSequence())
	}

	// Keep the counter around past midnight, then let it expire
	s.redisClient.Expire(ctx, key, 48*time.Hour)

	return FormatInvoiceNumber(dateStr, seq)
}

// FormatInvoiceNumber builds INV-YYYYMMDD-NNN; sequences above 999 simply
// widen the suffix instead of wrapping back into used numbers.
func FormatInvoiceNumber(dateStr string, seq int64) string {
	return fmt.Sprintf("INV-%s-%03d", dateStr, seq)
}

func randomSequence() int64 {
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return time.Now().UnixNano() % 1000
	}
	return int64(binary.BigEndian.Uint64(buf[:]) % 1000)
}
