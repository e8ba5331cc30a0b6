package common

import (
	"errors"
	"fmt"
	"testing"

	"github.com/amirasaad/banking/pkg/domain"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func TestErrorToStatusCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{
			name: "not found maps to 404",
			err:  domain.NewNotFound("client with id %s could not be found", "x"),
			want: fiber.StatusNotFound,
		},
		{
			name: "insufficient funds maps to 422",
			err:  domain.NewInsufficientFunds("insufficient funds"),
			want: fiber.StatusUnprocessableEntity,
		},
		{
			name: "wrapped domain error keeps its mapping",
			err:  fmt.Errorf("withdraw: %w", domain.NewNotFound("account missing")),
			want: fiber.StatusNotFound,
		},
		{
			name: "unclassified error maps to 500",
			err:  errors.New("connection refused"),
			want: fiber.StatusInternalServerError,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ErrorToStatusCode(tt.err))
		})
	}
}
