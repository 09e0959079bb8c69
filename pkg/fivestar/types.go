package fivestar

// ResponseType describes a feedback category configured for the project
// (bug report, feature request, praise, etc.).
type ResponseType struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug"`
	Color string `json:"color"`
	Icon  string `json:"icon"`
}

// DeviceInfo carries optional device metadata about the integrating
// application. Each non-empty field is sent as an X-FiveStar-* header on
// every request; it is never persisted by the client.
type DeviceInfo struct {
	Platform    string
	AppVersion  string
	DeviceModel string
	OSVersion   string
}

// GenerateCustomerIDResult is a server-issued customer identifier together
// with its expiry timestamp and the device it was bound to.
type GenerateCustomerIDResult struct {
	CustomerID string `json:"customerId"`
	ExpiresAt  string `json:"expiresAt"`
	DeviceID   string `json:"deviceId"`
}

// CustomerInfo is the server's view of a registered customer.
type CustomerInfo struct {
	ID         string `json:"id"`
	CustomerID string `json:"customerId"`
	Email      string `json:"email,omitempty"`
	Name       string `json:"name,omitempty"`
}

// RegisterCustomerOptions holds the optional profile fields supplied at
// registration. Empty fields are sent as JSON null.
type RegisterCustomerOptions struct {
	Email string
	Name  string
}

// RegisterCustomerResult is the outcome of a registration call. Customer is
// nil unless the server included a non-null customer object.
type RegisterCustomerResult struct {
	Success  bool          `json:"success"`
	Customer *CustomerInfo `json:"customer,omitempty"`
	Message  string        `json:"message,omitempty"`
}

// VerifyCustomerResult reports whether a customer identifier is valid.
type VerifyCustomerResult struct {
	Valid   bool   `json:"valid"`
	Message string `json:"message,omitempty"`
}

// SubmitResponseOptions is the input to a feedback submission. CustomerID,
// Title, Description and TypeID are required; Email and Name are optional
// contact fields.
type SubmitResponseOptions struct {
	CustomerID  string
	Title       string
	Description string
	TypeID      string
	Email       string
	Name        string
}

// SubmitResponseResult is the outcome of a feedback submission.
type SubmitResponseResult struct {
	Success    bool   `json:"success"`
	ResponseID string `json:"responseId"`
	Message    string `json:"message,omitempty"`
}

// Request bodies. Optional strings are pointers without omitempty so that
// unset fields serialize as JSON null, matching the API's contract.

type generateCustomerIDRequest struct {
	ClientID string `json:"clientId"`
}

type registerCustomerRequest struct {
	ClientID   string  `json:"clientId"`
	CustomerID string  `json:"customerId"`
	Email      *string `json:"email"`
	Name       *string `json:"name"`
}

type verifyCustomerRequest struct {
	ClientID   string `json:"clientId"`
	CustomerID string `json:"customerId"`
}

type submitResponseRequest struct {
	ClientID       string  `json:"clientId"`
	CustomerID     string  `json:"customerId"`
	Title          string  `json:"title"`
	Description    string  `json:"description"`
	ResponseTypeID string  `json:"responseTypeId"`
	CustomerEmail  *string `json:"customerEmail"`
	CustomerName   *string `json:"customerName"`
}

type listResponseTypesResponse struct {
	Types []ResponseType `json:"types"`
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
