package patient

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/ggabbo/gabohealth/pkg/validation"
)

// -- Mock Repository --

type mockRepo struct {
	patients map[uuid.UUID]*Patient
	creates  int
}

func newMockRepo() *mockRepo {
	return &mockRepo{patients: make(map[uuid.UUID]*Patient)}
}

func (m *mockRepo) Create(_ context.Context, p *Patient) error {
	m.creates++
	p.ID = uuid.New()
	p.CreatedAt = time.Now()
	p.UpdatedAt = time.Now()
	m.patients[p.ID] = p
	return nil
}

func (m *mockRepo) GetByID(_ context.Context, id uuid.UUID) (*Patient, error) {
	p, ok := m.patients[id]
	if !ok {
		return nil, fmt.Errorf("not found")
	}
	return p, nil
}

func (m *mockRepo) GetByUserID(_ context.Context, userID uuid.UUID) (*Patient, error) {
	for _, p := range m.patients {
		if p.UserID == userID {
			return p, nil
		}
	}
	return nil, fmt.Errorf("not found")
}

func (m *mockRepo) List(_ context.Context, limit, offset int) ([]*Patient, int, error) {
	var result []*Patient
	for _, p := range m.patients {
		result = append(result, p)
	}
	return result, len(result), nil
}

// -- Tests --

func validPatient() *Patient {
	return &Patient{
		UserID:                 uuid.New(),
		Name:                   "Gabo Gabo da Silva",
		Email:                  "gabo@example.com",
		Phone:                  "+5511987654321",
		BirthDate:              time.Date(1990, 5, 20, 0, 0, 0, 0, time.UTC),
		Gender:                 "Homem",
		Address:                "Rua das Flores, 123",
		Occupation:             "Engenheiro",
		EmergencyContactName:   "Maria da Silva",
		EmergencyContactNumber: "+5511912345678",
		PrimaryPhysician:       "Raimundo Neto",
		InsuranceProvider:      "Unimed",
		InsurancePolicyNumber:  "AB123456",
		TreatmentConsent:       true,
		DisclosureConsent:      true,
		PrivacyConsent:         true,
	}
}

func TestRegister(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	p := validPatient()
	if err := svc.Register(context.Background(), p); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.ID == uuid.Nil {
		t.Error("expected generated patient ID")
	}
	if repo.creates != 1 {
		t.Errorf("creates = %d, want 1", repo.creates)
	}
}

func TestRegister_ConsentFlagsIndividuallyRequired(t *testing.T) {
	cases := []struct {
		field string
		unset func(*Patient)
	}{
		{"treatmentConsent", func(p *Patient) { p.TreatmentConsent = false }},
		{"disclosureConsent", func(p *Patient) { p.DisclosureConsent = false }},
		{"privacyConsent", func(p *Patient) { p.PrivacyConsent = false }},
	}

	for _, tc := range cases {
		repo := newMockRepo()
		svc := NewService(repo)
		p := validPatient()
		tc.unset(p)

		err := svc.Register(context.Background(), p)
		var verr *validation.Error
		if !errors.As(err, &verr) {
			t.Fatalf("%s: expected validation error, got %v", tc.field, err)
		}
		if _, ok := verr.Fields[tc.field]; !ok {
			t.Errorf("%s: expected field-specific message, got %v", tc.field, verr.Fields)
		}
		if repo.creates != 0 {
			t.Errorf("%s: record store written despite validation failure", tc.field)
		}
	}
}

func TestRegister_PhoneFormat(t *testing.T) {
	valid := []string{"+5511987654321", "+1234567890", "+123456789012345"}
	invalid := []string{"", "11987654321", "+123", "+55 11 98765-4321"}

	for _, phone := range valid {
		p := validPatient()
		p.Phone = phone
		if e := p.Validate(); !e.Ok() {
			t.Errorf("phone %q rejected: %v", phone, e)
		}
	}
	for _, phone := range invalid {
		p := validPatient()
		p.Phone = phone
		e := p.Validate()
		if e["phone"] != "Número de telefone inválido" {
			t.Errorf("phone %q: message = %q, want phone-format message", phone, e["phone"])
		}
	}
}

func TestRegister_NameLength(t *testing.T) {
	p := validPatient()
	p.Name = "G"
	if e := p.Validate(); e["name"] == "" {
		t.Error("expected name minimum-length failure")
	}
}

func TestRegister_InvalidGender(t *testing.T) {
	p := validPatient()
	p.Gender = "Outro"
	if e := p.Validate(); e["gender"] == "" {
		t.Error("expected gender failure for value outside options")
	}
}

func TestRegister_OptionalHistoryFields(t *testing.T) {
	p := validPatient()
	allergies := "Dipirona"
	p.Allergies = &allergies
	if e := p.Validate(); !e.Ok() {
		t.Errorf("optional free-text field rejected: %v", e)
	}
}

func TestRegister_RequiresUserID(t *testing.T) {
	svc := NewService(newMockRepo())
	p := validPatient()
	p.UserID = uuid.Nil
	if err := svc.Register(context.Background(), p); err == nil {
		t.Error("expected error for missing user_id")
	}
}

func TestGetByUser(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	p := validPatient()
	svc.Register(context.Background(), p)

	fetched, err := svc.GetByUser(context.Background(), p.UserID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if fetched.ID != p.ID {
		t.Error("unexpected ID mismatch")
	}
}
