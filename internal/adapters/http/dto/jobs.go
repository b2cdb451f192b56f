package dto

import (
	"strings"
	"time"

	"github.com/glowtours/backoffice/internal/domain"
	"github.com/glowtours/backoffice/internal/domain/job"
	"github.com/glowtours/backoffice/internal/domain/recruited"
)

// StatusRequest is the JSON body for workflow transition endpoints that
// take a target status (invoices, applications).
type StatusRequest struct {
	Status string `json:"status"`
}

// Validate checks that a status value is present. Whether the transition is
// allowed from the current state is decided by the service.
func (r *StatusRequest) Validate() error {
	if strings.TrimSpace(r.Status) == "" {
		return &domain.ValidationError{Fields: map[string]string{"status": domain.MsgRequired}}
	}
	return nil
}

// VacancyRequest is the JSON body for creating or replacing a job vacancy.
// Status defaults to "open" when omitted; closing a vacancy is an edit, not
// a workflow step.
type VacancyRequest struct {
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Employment  string `json:"employment"`
	SalaryRange string `json:"salary_range,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status,omitempty"`
}

// ToDomain converts the request to a domain Vacancy.
func (r *VacancyRequest) ToDomain() *job.Vacancy {
	status := job.VacancyOpen
	if r.Status != "" {
		status = job.VacancyStatus(r.Status)
	}
	return &job.Vacancy{
		Title:       r.Title,
		Department:  r.Department,
		Location:    r.Location,
		Employment:  r.Employment,
		SalaryRange: r.SalaryRange,
		Description: r.Description,
		Status:      status,
	}
}

// Validate checks the request against the vacancy business rules.
func (r *VacancyRequest) Validate() error {
	return r.ToDomain().Validate()
}

// VacancyResponse represents a job vacancy in HTTP responses.
type VacancyResponse struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Department  string `json:"department"`
	Location    string `json:"location"`
	Employment  string `json:"employment"`
	SalaryRange string `json:"salary_range,omitempty"`
	Description string `json:"description,omitempty"`
	Status      string `json:"status"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToVacancyResponse converts a domain Vacancy to an HTTP response DTO.
func ToVacancyResponse(v *job.Vacancy) VacancyResponse {
	return VacancyResponse{
		ID:          v.ID,
		Title:       v.Title,
		Department:  v.Department,
		Location:    v.Location,
		Employment:  v.Employment,
		SalaryRange: v.SalaryRange,
		Description: v.Description,
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   v.UpdatedAt.Format(time.RFC3339),
	}
}

// VacancyListResponse represents a list of vacancies in HTTP responses.
type VacancyListResponse struct {
	Vacancies []VacancyResponse `json:"vacancies"`
	Count     int               `json:"count"`
}

// ToVacancyListResponse converts a slice of domain Vacancies to an HTTP
// list response DTO.
func ToVacancyListResponse(vacancies []job.Vacancy) VacancyListResponse {
	items := make([]VacancyResponse, len(vacancies))
	for i := range vacancies {
		items[i] = ToVacancyResponse(&vacancies[i])
	}
	return VacancyListResponse{Vacancies: items, Count: len(items)}
}

// ApplicationRequest is the JSON body for submitting a job application.
// AppliedAt defaults to the submission time when omitted.
type ApplicationRequest struct {
	VacancyID string `json:"vacancy_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Resume    string `json:"resume,omitempty"`
	AppliedAt string `json:"applied_at,omitempty"`
}

// ToDomain converts the request to a domain Application. Status is left for
// the service to assign.
func (r *ApplicationRequest) ToDomain() *job.Application {
	appliedAt, _ := parseDate(r.AppliedAt)
	return &job.Application{
		VacancyID: r.VacancyID,
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Resume:    r.Resume,
		AppliedAt: appliedAt,
		Status:    job.ApplicationNew,
	}
}

// Validate checks the request against the application business rules, plus
// the date format of applied_at.
func (r *ApplicationRequest) Validate() error {
	if r.AppliedAt != "" {
		if _, ok := parseDate(r.AppliedAt); !ok {
			return &domain.ValidationError{Fields: map[string]string{
				"applied_at": "must be a date (YYYY-MM-DD) or RFC 3339 timestamp",
			}}
		}
	}
	return r.ToDomain().Validate()
}

// ApplicationResponse represents a job application in HTTP responses.
type ApplicationResponse struct {
	ID        string `json:"id"`
	VacancyID string `json:"vacancy_id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Resume    string `json:"resume,omitempty"`
	AppliedAt string `json:"applied_at"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToApplicationResponse converts a domain Application to an HTTP response DTO.
func ToApplicationResponse(a *job.Application) ApplicationResponse {
	return ApplicationResponse{
		ID:        a.ID,
		VacancyID: a.VacancyID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Resume:    a.Resume,
		AppliedAt: formatDate(a.AppliedAt),
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// ApplicationListResponse represents a list of applications in HTTP
// responses, newest first.
type ApplicationListResponse struct {
	Applications []ApplicationResponse `json:"applications"`
	Count        int                   `json:"count"`
}

// ToApplicationListResponse converts a slice of domain Applications to an
// HTTP list response DTO.
func ToApplicationListResponse(applications []job.Application) ApplicationListResponse {
	items := make([]ApplicationResponse, len(applications))
	for i := range applications {
		items[i] = ToApplicationResponse(&applications[i])
	}
	return ApplicationListResponse{Applications: items, Count: len(items)}
}

// WorkerRequest is the JSON body for creating or replacing a recruited
// worker record.
type WorkerRequest struct {
	Name         string `json:"name"`
	PassportNo   string `json:"passport_no"`
	Nationality  string `json:"nationality"`
	Employer     string `json:"employer"`
	JobTitle     string `json:"job_title"`
	ArrivalDate  string `json:"arrival_date"`
	WorkPermitNo string `json:"work_permit_no,omitempty"`
	Photo        string `json:"photo,omitempty"`
	Permit       string `json:"permit,omitempty"`
}

// ToDomain converts the request to a domain Worker.
func (r *WorkerRequest) ToDomain() *recruited.Worker {
	arrival, _ := parseDate(r.ArrivalDate)
	return &recruited.Worker{
		Name:         r.Name,
		PassportNo:   r.PassportNo,
		Nationality:  r.Nationality,
		Employer:     r.Employer,
		JobTitle:     r.JobTitle,
		ArrivalDate:  arrival,
		WorkPermitNo: r.WorkPermitNo,
		Photo:        r.Photo,
		Permit:       r.Permit,
	}
}

// Validate checks the request against the worker business rules, plus the
// date format of arrival_date.
func (r *WorkerRequest) Validate() error {
	if r.ArrivalDate != "" {
		if _, ok := parseDate(r.ArrivalDate); !ok {
			return &domain.ValidationError{Fields: map[string]string{
				"arrival_date": "must be a date (YYYY-MM-DD) or RFC 3339 timestamp",
			}}
		}
	}
	return r.ToDomain().Validate()
}

// WorkerResponse represents a recruited worker in HTTP responses.
type WorkerResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	PassportNo   string `json:"passport_no"`
	Nationality  string `json:"nationality"`
	Employer     string `json:"employer"`
	JobTitle     string `json:"job_title"`
	ArrivalDate  string `json:"arrival_date"`
	WorkPermitNo string `json:"work_permit_no,omitempty"`
	Photo        string `json:"photo,omitempty"`
	Permit       string `json:"permit,omitempty"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ToWorkerResponse converts a domain Worker to an HTTP response DTO.
func ToWorkerResponse(w *recruited.Worker) WorkerResponse {
	return WorkerResponse{
		ID:           w.ID,
		Name:         w.Name,
		PassportNo:   w.PassportNo,
		Nationality:  w.Nationality,
		Employer:     w.Employer,
		JobTitle:     w.JobTitle,
		ArrivalDate:  formatDate(w.ArrivalDate),
		WorkPermitNo: w.WorkPermitNo,
		Photo:        w.Photo,
		Permit:       w.Permit,
		CreatedAt:    w.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    w.UpdatedAt.Format(time.RFC3339),
	}
}

// WorkerListResponse represents a list of recruited workers in HTTP
// responses.
type WorkerListResponse struct {
	Workers []WorkerResponse `json:"workers"`
	Count   int              `json:"count"`
}

// ToWorkerListResponse converts a slice of domain Workers to an HTTP list
// response DTO.
func ToWorkerListResponse(workers []recruited.Worker) WorkerListResponse {
	items := make([]WorkerResponse, len(workers))
	for i := range workers {
		items[i] = ToWorkerResponse(&workers[i])
	}
	return WorkerListResponse{Workers: items, Count: len(items)}
}
