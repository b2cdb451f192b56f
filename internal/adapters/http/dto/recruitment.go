package dto

import (
	"time"

	"github.com/glowtours/backoffice/internal/domain/agent"
	"github.com/glowtours/backoffice/internal/domain/candidate"
	"github.com/glowtours/backoffice/internal/domain/client"
)

// CandidateRequest is the JSON body for creating or replacing a candidate.
// Status is a form field here (there is no review workflow for candidates);
// it defaults to "available" when omitted.
type CandidateRequest struct {
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	PassportNo  string `json:"passport_no"`
	Position    string `json:"position"`
	Resume      string `json:"resume,omitempty"`
	Status      string `json:"status,omitempty"`
	AgentID     string `json:"agent_id,omitempty"`
}

// ToDomain converts the request to a domain Candidate.
func (r *CandidateRequest) ToDomain() *candidate.Candidate {
	status := candidate.StatusAvailable
	if r.Status != "" {
		status = candidate.Status(r.Status)
	}
	return &candidate.Candidate{
		Name:        r.Name,
		Email:       r.Email,
		Phone:       r.Phone,
		Nationality: r.Nationality,
		PassportNo:  r.PassportNo,
		Position:    r.Position,
		Resume:      r.Resume,
		Status:      status,
		AgentID:     r.AgentID,
	}
}

// Validate checks the request against the candidate business rules.
func (r *CandidateRequest) Validate() error {
	return r.ToDomain().Validate()
}

// CandidateResponse represents a candidate in HTTP responses.
type CandidateResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Nationality string `json:"nationality"`
	PassportNo  string `json:"passport_no"`
	Position    string `json:"position"`
	Resume      string `json:"resume,omitempty"`
	Status      string `json:"status"`
	AgentID     string `json:"agent_id,omitempty"`
	CreatedAt   string `json:"created_at"`
	UpdatedAt   string `json:"updated_at"`
}

// ToCandidateResponse converts a domain Candidate to an HTTP response DTO.
func ToCandidateResponse(c *candidate.Candidate) CandidateResponse {
	return CandidateResponse{
		ID:          c.ID,
		Name:        c.Name,
		Email:       c.Email,
		Phone:       c.Phone,
		Nationality: c.Nationality,
		PassportNo:  c.PassportNo,
		Position:    c.Position,
		Resume:      c.Resume,
		Status:      c.Status.String(),
		AgentID:     c.AgentID,
		CreatedAt:   c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:   c.UpdatedAt.Format(time.RFC3339),
	}
}

// CandidateListResponse represents a list of candidates in HTTP responses.
type CandidateListResponse struct {
	Candidates []CandidateResponse `json:"candidates"`
	Count      int                 `json:"count"`
}

// ToCandidateListResponse converts a slice of domain Candidates to an HTTP
// list response DTO.
func ToCandidateListResponse(candidates []candidate.Candidate) CandidateListResponse {
	items := make([]CandidateResponse, len(candidates))
	for i := range candidates {
		items[i] = ToCandidateResponse(&candidates[i])
	}
	return CandidateListResponse{Candidates: items, Count: len(items)}
}

// AgentRequest is the JSON body for creating or replacing a partner agent.
// Status is workflow-owned (approve/suspend/reactivate) and never writable
// here.
type AgentRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Country string `json:"country"`
}

// ToDomain converts the request to a domain Agent. Status is left for the
// service to assign.
func (r *AgentRequest) ToDomain() *agent.Agent {
	return &agent.Agent{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Company: r.Company,
		Country: r.Country,
		Status:  agent.StatusPending,
	}
}

// Validate checks the request against the agent business rules.
func (r *AgentRequest) Validate() error {
	return r.ToDomain().Validate()
}

// AgentResponse represents a partner agent in HTTP responses.
type AgentResponse struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	Company   string `json:"company"`
	Country   string `json:"country"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
}

// ToAgentResponse converts a domain Agent to an HTTP response DTO.
func ToAgentResponse(a *agent.Agent) AgentResponse {
	return AgentResponse{
		ID:        a.ID,
		Name:      a.Name,
		Email:     a.Email,
		Phone:     a.Phone,
		Company:   a.Company,
		Country:   a.Country,
		Status:    a.Status.String(),
		CreatedAt: a.CreatedAt.Format(time.RFC3339),
		UpdatedAt: a.UpdatedAt.Format(time.RFC3339),
	}
}

// AgentListResponse represents a list of agents in HTTP responses.
type AgentListResponse struct {
	Agents []AgentResponse `json:"agents"`
	Count  int             `json:"count"`
}

// ToAgentListResponse converts a slice of domain Agents to an HTTP list
// response DTO.
func ToAgentListResponse(agents []agent.Agent) AgentListResponse {
	items := make([]AgentResponse, len(agents))
	for i := range agents {
		items[i] = ToAgentResponse(&agents[i])
	}
	return AgentListResponse{Agents: items, Count: len(items)}
}

// ClientRequest is the JSON body for creating or replacing a corporate
// customer. The Verified flag is owned by the registry verification flow
// and never writable here.
type ClientRequest struct {
	Company      string `json:"company"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	RegistryNo   string `json:"registry_no,omitempty"`
	Status       string `json:"status,omitempty"`
}

// ToDomain converts the request to a domain Client. Status defaults to
// "pending" when omitted.
func (r *ClientRequest) ToDomain() *client.Client {
	status := client.StatusPending
	if r.Status != "" {
		status = client.Status(r.Status)
	}
	return &client.Client{
		Company:      r.Company,
		ContactName:  r.ContactName,
		ContactEmail: r.ContactEmail,
		ContactPhone: r.ContactPhone,
		RegistryNo:   r.RegistryNo,
		Status:       status,
	}
}

// Validate checks the request against the client business rules.
func (r *ClientRequest) Validate() error {
	return r.ToDomain().Validate()
}

// ClientResponse represents a corporate customer in HTTP responses.
type ClientResponse struct {
	ID           string `json:"id"`
	Company      string `json:"company"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	ContactPhone string `json:"contact_phone"`
	RegistryNo   string `json:"registry_no,omitempty"`
	Verified     bool   `json:"verified"`
	Status       string `json:"status"`
	CreatedAt    string `json:"created_at"`
	UpdatedAt    string `json:"updated_at"`
}

// ToClientResponse converts a domain Client to an HTTP response DTO.
func ToClientResponse(c *client.Client) ClientResponse {
	return ClientResponse{
		ID:           c.ID,
		Company:      c.Company,
		ContactName:  c.ContactName,
		ContactEmail: c.ContactEmail,
		ContactPhone: c.ContactPhone,
		RegistryNo:   c.RegistryNo,
		Verified:     c.Verified,
		Status:       c.Status.String(),
		CreatedAt:    c.CreatedAt.Format(time.RFC3339),
		UpdatedAt:    c.UpdatedAt.Format(time.RFC3339),
	}
}

// ClientListResponse represents a list of clients in HTTP responses.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
	Count   int              `json:"count"`
}

// ToClientListResponse converts a slice of domain Clients to an HTTP list
// response DTO.
func ToClientListResponse(clients []client.Client) ClientListResponse {
	items := make([]ClientResponse, len(clients))
	for i := range clients {
		items[i] = ToClientResponse(&clients[i])
	}
	return ClientListResponse{Clients: items, Count: len(items)}
}
