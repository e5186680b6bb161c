package booking

import (
	"context"
	"fmt"
	"strings"
	"unicode"

	domain "github.com/BruksfildServices01/barber-booking/internal/domain/booking"
	"github.com/BruksfildServices01/barber-booking/internal/models"
)

const defaultClientName = "Cliente"

// NormalizePhone keeps only the digits of phone. Numbers shorter than ten
// digits (area code plus number) or longer than E.164 allows are rejected.
func NormalizePhone(phone string) (string, error) {
	var b strings.Builder
	for _, r := range phone {
		if unicode.IsDigit(r) {
			b.WriteRune(r)
		}
	}

	digits := b.String()
	if len(digits) < 10 || len(digits) > 15 {
		return "", domain.ErrInvalidPhone
	}
	return digits, nil
}

type ResolveClientInput struct {
	Slug  string
	Name  string
	Phone string
}

// ResolveClient finds the barbershop's client with the given phone, or
// creates one that has never logged in.
type ResolveClient struct {
	repo domain.Repository
}

func NewResolveClient(repo domain.Repository) *ResolveClient {
	return &ResolveClient{repo: repo}
}

func (uc *ResolveClient) Execute(
	ctx context.Context,
	in ResolveClientInput,
) (*models.Client, error) {

	phone, err := NormalizePhone(in.Phone)
	if err != nil {
		return nil, err
	}

	shop, err := loadBarbershopBySlug(ctx, uc.repo, in.Slug)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(in.Name)
	if name == "" {
		name = defaultClientName
	}

	client, err := uc.repo.GetOrCreateClient(ctx, shop.ID, name, phone)
	if err != nil {
		return nil, fmt.Errorf("resolve client: %w", err)
	}
	return client, nil
}
