package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateOrderNumber builds a human-readable, collision-resistant order
// number: ORD-<epoch millis>-<8 uppercase hex chars>.
func GenerateOrderNumber() string {
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("ORD-%d-%s", time.Now().UnixMilli(), token)
}
