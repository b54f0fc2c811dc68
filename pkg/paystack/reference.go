package paystack

import (
	"strings"

	"github.com/google/uuid"
)

// GenTranxRef returns a fresh transaction reference.
func GenTranxRef() string {
	return strings.ReplaceAll(uuid.New().String(), "-", "")
}
