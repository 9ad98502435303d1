package patient

import (
	"context"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type repoPG struct{ pool *pgxpool.Pool }

func NewRepoPG(pool *pgxpool.Pool) Repository { return &repoPG{pool: pool} }

const patientCols = `id, user_id, name, email, phone, birth_date, gender, address, occupation,
	emergency_contact_name, emergency_contact_number, primary_physician,
	insurance_provider, insurance_policy_number,
	allergies, current_medication, family_medical_history, past_medical_history,
	identification_type, identification_number, identification_document_id,
	treatment_consent, disclosure_consent, privacy_consent, created_at, updated_at`

func (r *repoPG) scanPatient(row pgx.Row) (*Patient, error) {
	var p Patient
	err := row.Scan(&p.ID, &p.UserID, &p.Name, &p.Email, &p.Phone, &p.BirthDate, &p.Gender,
		&p.Address, &p.Occupation, &p.EmergencyContactName, &p.EmergencyContactNumber,
		&p.PrimaryPhysician, &p.InsuranceProvider, &p.InsurancePolicyNumber,
		&p.Allergies, &p.CurrentMedication, &p.FamilyMedicalHistory, &p.PastMedicalHistory,
		&p.IdentificationType, &p.IdentificationNumber, &p.IdentificationDocumentID,
		&p.TreatmentConsent, &p.DisclosureConsent, &p.PrivacyConsent, &p.CreatedAt, &p.UpdatedAt)
	return &p, err
}

func (r *repoPG) Create(ctx context.Context, p *Patient) error {
	p.ID = uuid.New()
	_, err := r.pool.Exec(ctx, `
		INSERT INTO patient (id, user_id, name, email, phone, birth_date, gender, address, occupation,
			emergency_contact_name, emergency_contact_number, primary_physician,
			insurance_provider, insurance_policy_number,
			allergies, current_medication, family_medical_history, past_medical_history,
			identification_type, identification_number, identification_document_id,
			treatment_consent, disclosure_consent, privacy_consent)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18,$19,$20,$21,$22,$23,$24)`,
		p.ID, p.UserID, p.Name, p.Email, p.Phone, p.BirthDate, p.Gender, p.Address, p.Occupation,
		p.EmergencyContactName, p.EmergencyContactNumber, p.PrimaryPhysician,
		p.InsuranceProvider, p.InsurancePolicyNumber,
		p.Allergies, p.CurrentMedication, p.FamilyMedicalHistory, p.PastMedicalHistory,
		p.IdentificationType, p.IdentificationNumber, p.IdentificationDocumentID,
		p.TreatmentConsent, p.DisclosureConsent, p.PrivacyConsent)
	return err
}

func (r *repoPG) GetByID(ctx context.Context, id uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE id = $1`, id))
}

func (r *repoPG) GetByUserID(ctx context.Context, userID uuid.UUID) (*Patient, error) {
	return r.scanPatient(r.pool.QueryRow(ctx, `SELECT `+patientCols+` FROM patient WHERE user_id = $1`, userID))
}

func (r *repoPG) List(ctx context.Context, limit, offset int) ([]*Patient, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM patient`).Scan(&total); err != nil {
		return nil, 0, err
	}
	rows, err := r.pool.Query(ctx, `SELECT `+patientCols+` FROM patient ORDER BY created_at DESC LIMIT $1 OFFSET $2`, limit, offset)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()
	var items []*Patient
	for rows.Next() {
		p, err := r.scanPatient(rows)
		if err != nil {
			return nil, 0, err
		}
		items = append(items, p)
	}
	return items, total, rows.Err()
}
