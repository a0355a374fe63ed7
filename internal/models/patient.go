package models

import (
	"time"

	"github.com/jmoiron/sqlx/types"
)

// Patient is a registration row. RegistrationID is the business key that
// correlates consent forms, image analyses, scans, and report PDFs.
type Patient struct {
	RegistrationID   string    `db:"registration_id" json:"registration_id"`
	UserID           int64     `db:"user_id" json:"user_id"`
	CourseID         int64     `db:"course_id" json:"course_id"`
	Name             string    `db:"name" json:"name"`
	Age              int       `db:"age" json:"age"`
	Gender           string    `db:"gender" json:"gender"`
	Phone            string    `db:"phone" json:"phone"`
	Email            string    `db:"email" json:"email"`
	Address          string    `db:"address" json:"address"`
	EmergencyContact string    `db:"emergency_contact" json:"emergency_contact"`
	KinName          string    `db:"kin_name" json:"kin_name"`
	KinRelation      string    `db:"kin_relation" json:"kin_relation"`
	KinPhone         string    `db:"kin_phone" json:"kin_phone"`
	Agreement        bool      `db:"agreement" json:"agreement"`
	CreatedAt        time.Time `db:"created_at" json:"created_at"`
}

// PatientRegistrationRequest mirrors the registration form payload.
type PatientRegistrationRequest struct {
	RegistrationID   string `json:"registration_id" validate:"required"`
	UserID           int64  `json:"user_id" validate:"required"`
	CourseID         int64  `json:"courseId" validate:"required"`
	Name             string `json:"name" validate:"required"`
	Age              int    `json:"age"`
	Gender           string `json:"gender"`
	Phone            string `json:"phone"`
	Email            string `json:"email"`
	Address          string `json:"address"`
	EmergencyContact string `json:"emergencyContact"`
	KinName          string `json:"kinName"`
	KinRelation      string `json:"kinRelation"`
	KinPhone         string `json:"kinPhone"`
	Agreement        bool   `json:"agreement"`
}

// ConsentForm is the CT consent record tied to a registration.
type ConsentForm struct {
	ID                 int64     `db:"id" json:"id"`
	PatientName        string    `db:"patient_name" json:"patientName"`
	Age                int       `db:"age" json:"age"`
	Sex                string    `db:"sex" json:"sex"`
	HospitalID         string    `db:"hospital_id" json:"hospitalID"`
	CTNumber           string    `db:"ct_number" json:"ctNumber"`
	OpdIpd             string    `db:"opd_ipd" json:"opdIPD"`
	BedNumber          string    `db:"bed_number" json:"bedNumber"`
	RefPhysician       string    `db:"ref_physician" json:"refPhysician"`
	Date               string    `db:"date" json:"date"`
	Pregnancy          string    `db:"pregnancy" json:"pregnancy"`
	DateOfLMP          string    `db:"date_of_lmp" json:"dateOfLMP"`
	ClinicalHistory    string    `db:"clinical_history" json:"clinicalHistory"`
	PreviousScans      string    `db:"previous_scans" json:"previousScans"`
	AreaOfInterest     string    `db:"area_of_interest" json:"areaOfInterest"`
	MedicalHistory     string    `db:"medical_history" json:"medicalHistory"`
	ChemoRadioTherapy  string    `db:"chemo_radio_therapy" json:"chemoRadioTherapy"`
	SerumCreatinine    string    `db:"serum_creatinine" json:"serumCreatinine"`
	CreatinineTestDate string    `db:"creatinine_test_date" json:"creatinineTestDate"`
	PatientSignature   string    `db:"patient_signature" json:"patientSignature"`
	TechSignature      string    `db:"tech_signature" json:"techSignature"`
	RadiologistSign    string    `db:"radiologist_signature" json:"radiologistSignature"`
	PatientDate        string    `db:"patient_date" json:"patientDate"`
	TechDate           string    `db:"tech_date" json:"techDate"`
	RadiologistDate    string    `db:"radiologist_date" json:"radiologistDate"`
	RegistrationID     string    `db:"registration_id" json:"registration_id"`
	CreatedAt          time.Time `db:"created_at" json:"created_at"`
}

// ConsentFormRequest mirrors the consent form payload field-for-field.
type ConsentFormRequest struct {
	PatientName        string `json:"patientName" validate:"required"`
	Age                int    `json:"age"`
	Sex                string `json:"sex"`
	HospitalID         string `json:"hospitalID"`
	CTNumber           string `json:"ctNumber"`
	OpdIpd             string `json:"opdIPD"`
	BedNumber          string `json:"bedNumber"`
	RefPhysician       string `json:"refPhysician"`
	Date               string `json:"date"`
	Pregnancy          string `json:"pregnancy"`
	DateOfLMP          string `json:"dateOfLMP"`
	ClinicalHistory    string `json:"clinicalHistory"`
	PreviousScans      string `json:"previousScans"`
	AreaOfInterest     string `json:"areaOfInterest"`
	MedicalHistory     string `json:"medicalHistory"`
	ChemoRadioTherapy  string `json:"chemoRadioTherapy"`
	SerumCreatinine    string `json:"serumCreatinine"`
	CreatinineTestDate string `json:"creatinineTestDate"`
	PatientSignature   string `json:"patientSignature"`
	TechSignature      string `json:"techSignature"`
	RadiologistSign    string `json:"radiologistSignature"`
	PatientDate        string `json:"patientDate"`
	TechDate           string `json:"techDate"`
	RadiologistDate    string `json:"radiologistDate"`
	RegistrationID     string `json:"registration_id" validate:"required"`
}

// ImageAnalysis holds one analysis row. SelectedImage is a JSON-encoded array
// of data-URI strings stored in a single column; an intentional
// denormalization carried over from the source schema.
type ImageAnalysis struct {
	ID             int64          `db:"id" json:"id"`
	UserID         int64          `db:"user_id" json:"user_id"`
	RegistrationID string         `db:"registration_id" json:"registration_id"`
	Finding        string         `db:"finding" json:"finding"`
	Impression     string         `db:"impression" json:"impression"`
	SelectedImage  types.JSONText `db:"selected_image" json:"selected_image"`
	CreatedAt      time.Time      `db:"created_at" json:"created_at"`
}

// ImageAnalysisRequest carries an analysis submission with its encoded images.
type ImageAnalysisRequest struct {
	UserID         int64    `json:"user_id" validate:"required"`
	RegistrationID string   `json:"registration_id" validate:"required"`
	Finding        string   `json:"finding" validate:"required"`
	Impression     string   `json:"impression" validate:"required"`
	SelectedImages []string `json:"selected_images"`
}

// AddScanImageRequest carries one scan upload as a data URI.
type AddScanImageRequest struct {
	PatientID string `json:"patient_id" validate:"required"`
	Image     string `json:"image" validate:"required"`
}

// ScanImage is a raw stored scan; Image may be NULL for legacy rows.
type ScanImage struct {
	ID        int64  `db:"id"`
	PatientID string `db:"patient_id"`
	Image     []byte `db:"image"`
}
