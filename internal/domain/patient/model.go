package patient

import (
	"time"

	"github.com/google/uuid"

	"github.com/ggabbo/gabohealth/pkg/validation"
)

// GenderOptions are the accepted values for the gender field.
var GenderOptions = []string{"Homem", "Mulher", "Praga_pj"}

// IdentificationTypes are the document types a patient may register with.
var IdentificationTypes = []string{
	"Carteira de Identidade Nacional (CIN ou RG)",
	"Carteira Nacional de Habilitação (CNH)",
	"Cadastro de Pessoas Físicas (CPF)",
	"Comprovante de Seguro de Saúde",
	"Carteira de Identidade Militar",
	"Certidão de Nascimento",
	"Carteira de Trabalho e Previdência Social (CTPS)",
}

// Patient maps to the patient table. A record is created once at
// registration and never mutated by this service.
type Patient struct {
	ID                       uuid.UUID `db:"id" json:"id"`
	UserID                   uuid.UUID `db:"user_id" json:"userId"`
	Name                     string    `db:"name" json:"name"`
	Email                    string    `db:"email" json:"email"`
	Phone                    string    `db:"phone" json:"phone"`
	BirthDate                time.Time `db:"birth_date" json:"birthDate"`
	Gender                   string    `db:"gender" json:"gender"`
	Address                  string    `db:"address" json:"address"`
	Occupation               string    `db:"occupation" json:"occupation"`
	EmergencyContactName     string    `db:"emergency_contact_name" json:"emergencyContactName"`
	EmergencyContactNumber   string    `db:"emergency_contact_number" json:"emergencyContactNumber"`
	PrimaryPhysician         string    `db:"primary_physician" json:"primaryPhysician"`
	InsuranceProvider        string    `db:"insurance_provider" json:"insuranceProvider"`
	InsurancePolicyNumber    string    `db:"insurance_policy_number" json:"insurancePolicyNumber"`
	Allergies                *string   `db:"allergies" json:"allergies,omitempty"`
	CurrentMedication        *string   `db:"current_medication" json:"currentMedication,omitempty"`
	FamilyMedicalHistory     *string   `db:"family_medical_history" json:"familyMedicalHistory,omitempty"`
	PastMedicalHistory       *string   `db:"past_medical_history" json:"pastMedicalHistory,omitempty"`
	IdentificationType       *string   `db:"identification_type" json:"identificationType,omitempty"`
	IdentificationNumber     *string   `db:"identification_number" json:"identificationNumber,omitempty"`
	IdentificationDocumentID *string   `db:"identification_document_id" json:"identificationDocumentId,omitempty"`
	TreatmentConsent         bool      `db:"treatment_consent" json:"treatmentConsent"`
	DisclosureConsent        bool      `db:"disclosure_consent" json:"disclosureConsent"`
	PrivacyConsent           bool      `db:"privacy_consent" json:"privacyConsent"`
	CreatedAt                time.Time `db:"created_at" json:"createdAt"`
	UpdatedAt                time.Time `db:"updated_at" json:"updatedAt"`
}

// Validate applies the registration form rules. The result is field-scoped
// and recoverable; callers use it to block the write and surface messages.
func (p *Patient) Validate() validation.Errors {
	e := validation.Errors{}

	e.Length("name", p.Name, 2, 50,
		"Seu nome deve conter no mínimo 2 caractéres",
		"Seu nome deve conter no máximo 50 caractéres")
	e.Email("email", p.Email, "Endereço de email inválido")
	e.Phone("phone", p.Phone, "Número de telefone inválido")

	if p.BirthDate.IsZero() {
		e.Set("birthDate", "Data de nascimento inválida")
	}
	if !isGender(p.Gender) {
		e.Set("gender", "Gênero inválido")
	}

	e.Length("address", p.Address, 5, 500,
		"Seu endereço deve conter no mínimo 2 caractéres",
		"Seu endereço deve conter no máximo 500 caractéres")
	e.Length("occupation", p.Occupation, 2, 500,
		"Sua ocupação deve conter no mínimo 2 caractéres",
		"Sua ocupação deve conter no máximo 500 caractéres")
	e.Length("emergencyContactName", p.EmergencyContactName, 2, 50,
		"Nome do contato deve conter no mínimo 2 caractéres",
		"Nome do contato deve conter no máximo 50 caractéres")
	e.Phone("emergencyContactNumber", p.EmergencyContactNumber, "Número de telefone inválido")

	e.Length("primaryPhysician", p.PrimaryPhysician, 2, 50,
		"Select at least one doctor",
		"Select at least one doctor")
	e.Length("insuranceProvider", p.InsuranceProvider, 2, 50,
		"Nome do provedor deve conter no mínimo 2 caractéres",
		"Nome do provedor deve conter no máximo 50 caractéres")
	e.Length("insurancePolicyNumber", p.InsurancePolicyNumber, 2, 50,
		"Número da apólice deve conter no mínimo 2 caractéres",
		"Número da apólice deve conter no máximo 50 caractéres")

	// Consent flags must each be exactly true; false or absent is a
	// validation failure, not a default.
	e.True("treatmentConsent", p.TreatmentConsent,
		"Você precisa consentir ao tratamento para prosseguir")
	e.True("disclosureConsent", p.DisclosureConsent,
		"Você precisa consentir ao uso de seus dados para prosseguir")
	e.True("privacyConsent", p.PrivacyConsent,
		"Você precisa ler e concordar com a Política de Privacidade para prosseguir")

	return e
}

func isGender(g string) bool {
	for _, opt := range GenderOptions {
		if g == opt {
			return true
		}
	}
	return false
}
