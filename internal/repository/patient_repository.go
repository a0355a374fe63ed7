package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/onelearning/edusphere-api/internal/models"
)

// PatientRepository persists patient registrations and their clinical records.
type PatientRepository struct {
	db *sqlx.DB
}

// NewPatientRepository constructs the repository.
func NewPatientRepository(db *sqlx.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// CreatePatient inserts a registration row.
func (r *PatientRepository) CreatePatient(ctx context.Context, p *models.Patient) error {
	const query = `INSERT INTO patients (
        registration_id, user_id, course_id, name, age, gender, phone, email, address,
        emergency_contact, kin_name, kin_relation, kin_phone, agreement, created_at
    ) VALUES (
        :registration_id, :user_id, :course_id, :name, :age, :gender, :phone, :email, :address,
        :emergency_contact, :kin_name, :kin_relation, :kin_phone, :agreement, NOW()
    )`
	if _, err := r.db.NamedExecContext(ctx, query, p); err != nil {
		return fmt.Errorf("create patient: %w", err)
	}
	return nil
}

// ListPatientsByUser returns every registration created by a user.
func (r *PatientRepository) ListPatientsByUser(ctx context.Context, userID int64) ([]models.Patient, error) {
	const query = `SELECT registration_id, user_id, course_id, name, age, gender, phone, email, address,
        emergency_contact, kin_name, kin_relation, kin_phone, agreement, created_at
        FROM patients WHERE user_id = $1 ORDER BY created_at DESC`
	patients := []models.Patient{}
	if err := r.db.SelectContext(ctx, &patients, query, userID); err != nil {
		return nil, fmt.Errorf("list patients by user: %w", err)
	}
	return patients, nil
}

// FindPatientByRegistrationID returns one registration by its business key.
func (r *PatientRepository) FindPatientByRegistrationID(ctx context.Context, registrationID string) (*models.Patient, error) {
	const query = `SELECT registration_id, user_id, course_id, name, age, gender, phone, email, address,
        emergency_contact, kin_name, kin_relation, kin_phone, agreement, created_at
        FROM patients WHERE registration_id = $1 LIMIT 1`
	var patient models.Patient
	if err := r.db.GetContext(ctx, &patient, query, registrationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find patient by registration id: %w", err)
	}
	return &patient, nil
}

// CreateConsentForm inserts a consent form row.
func (r *PatientRepository) CreateConsentForm(ctx context.Context, f *models.ConsentForm) error {
	const query = `INSERT INTO consent_forms (
        patient_name, age, sex, hospital_id, ct_number, opd_ipd, bed_number, ref_physician,
        date, pregnancy, date_of_lmp, clinical_history, previous_scans, area_of_interest,
        medical_history, chemo_radio_therapy, serum_creatinine, creatinine_test_date,
        patient_signature, tech_signature, radiologist_signature, patient_date, tech_date,
        radiologist_date, registration_id, created_at
    ) VALUES (
        :patient_name, :age, :sex, :hospital_id, :ct_number, :opd_ipd, :bed_number, :ref_physician,
        :date, :pregnancy, :date_of_lmp, :clinical_history, :previous_scans, :area_of_interest,
        :medical_history, :chemo_radio_therapy, :serum_creatinine, :creatinine_test_date,
        :patient_signature, :tech_signature, :radiologist_signature, :patient_date, :tech_date,
        :radiologist_date, :registration_id, NOW()
    )`
	if _, err := r.db.NamedExecContext(ctx, query, f); err != nil {
		return fmt.Errorf("create consent form: %w", err)
	}
	return nil
}

// CreateImageAnalysis inserts one analysis row with its JSON image array and
// returns the generated id.
func (r *PatientRepository) CreateImageAnalysis(ctx context.Context, a *models.ImageAnalysis) error {
	const query = `INSERT INTO image_analysis (user_id, registration_id, finding, impression, selected_image, created_at)
VALUES ($1, $2, $3, $4, $5, NOW()) RETURNING id`
	if err := r.db.QueryRowxContext(ctx, query,
		a.UserID, a.RegistrationID, a.Finding, a.Impression, a.SelectedImage,
	).Scan(&a.ID); err != nil {
		return fmt.Errorf("create image analysis: %w", err)
	}
	return nil
}

// FindImageAnalysis returns the earliest analysis row for a registration.
func (r *PatientRepository) FindImageAnalysis(ctx context.Context, registrationID string) (*models.ImageAnalysis, error) {
	const query = `SELECT id, user_id, registration_id, finding, impression, selected_image, created_at
        FROM image_analysis WHERE registration_id = $1 ORDER BY id LIMIT 1`
	var analysis models.ImageAnalysis
	if err := r.db.GetContext(ctx, &analysis, query, registrationID); err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("find image analysis: %w", err)
	}
	return &analysis, nil
}

// ListScanImages returns the stored scan payloads for a patient. Rows with
// NULL payloads are returned as empty slices and filtered by the service.
func (r *PatientRepository) ListScanImages(ctx context.Context, patientID string) ([]models.ScanImage, error) {
	const query = `SELECT id, patient_id, image FROM patient_scan_images WHERE patient_id = $1 ORDER BY id`
	images := []models.ScanImage{}
	if err := r.db.SelectContext(ctx, &images, query, patientID); err != nil {
		return nil, fmt.Errorf("list scan images: %w", err)
	}
	return images, nil
}

// CreateScanImage stores one raw scan payload for a patient.
func (r *PatientRepository) CreateScanImage(ctx context.Context, patientID string, image []byte) error {
	const query = `INSERT INTO patient_scan_images (patient_id, image) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, patientID, image); err != nil {
		return fmt.Errorf("create scan image: %w", err)
	}
	return nil
}
