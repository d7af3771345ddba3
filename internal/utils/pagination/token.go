package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/khatasync/khata_backend/internal/core/domain"
)

const timeFormat = time.RFC3339Nano

// EncodeTransactionToken creates an opaque cursor from a transaction's date
// and creation time, the sort key used when listing a customer's khata.
func EncodeTransactionToken(date domain.CalendarDate, createdAt time.Time) string {
	tokenStr := fmt.Sprintf("%s|%s", date.String(), createdAt.Format(timeFormat))
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeTransactionToken parses a cursor back into its date and creation time.
func DecodeTransactionToken(token string) (domain.CalendarDate, time.Time, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return domain.CalendarDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	parts := strings.SplitN(string(decodedBytes), "|", 2)
	if len(parts) != 2 {
		return domain.CalendarDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (split)")
	}

	date, err := domain.ParseCalendarDate(parts[0])
	if err != nil {
		return domain.CalendarDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (date parse): %w", err)
	}

	createdAt, err := time.Parse(timeFormat, parts[1])
	if err != nil {
		return domain.CalendarDate{}, time.Time{}, fmt.Errorf("invalid pagination token format (created_at parse): %w", err)
	}

	return date, createdAt, nil
}
