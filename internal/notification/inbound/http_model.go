package inbound

type SendEmailRequest struct {
	ToEmail    string `json:"to_email"`
	Subject    string `json:"subject"`
	Body       string `json:"body"`
	TemplateID string `json:"template_id,omitempty"`
}

type SendEmailResponse struct {
	Status     string `json:"status" example:"sent"`
	ProviderID string `json:"provider_id,omitempty" example:"mock-12345"`
}

func (SendEmailResponse) Bare() bool {
	return true
}

type HealthResponse struct {
	Status   string `json:"status" example:"ok"`
	Service  string `json:"service" example:"Notification Service"`
	Env      string `json:"env" example:"development"`
	Provider string `json:"provider" example:"mock"`
	Backend  string `json:"backend" example:"mock"`
}

func (HealthResponse) Bare() bool {
	return true
}
