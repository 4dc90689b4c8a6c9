package models

// Actions accepted by the coordinator. REGISTER, LOGIN and SYNC_DATA are
// write-side and serialize on the process-wide write lock; GET_DATA reads
// lock-free.
const (
	ActionRegister = "REGISTER"
	ActionLogin    = "LOGIN"
	ActionSyncData = "SYNC_DATA"
	ActionGetData  = "GET_DATA"
)

// Item is one application item as supplied by a client. Arbitrary
// JSON-serializable fields are accepted; only "id" is required.
type Item map[string]any

// SyncRequest is the parsed body of the write endpoint. The read endpoint
// fills only Action and Username from query parameters.
type SyncRequest struct {
	Action   string            `json:"action"`
	Username string            `json:"username"`
	Password string            `json:"password,omitempty"`
	Data     map[string][]Item `json:"data,omitempty"`
}

// Envelope is the uniform response wrapper. Every outcome — success or
// failure — is mapped onto it; callers inspect Status, not the transport
// status code.
type Envelope struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

func SuccessEnvelope(message string, data any) Envelope {
	return Envelope{Status: StatusSuccess, Message: message, Data: data}
}

func ErrorEnvelope(err error) Envelope {
	return Envelope{Status: StatusError, Message: err.Error()}
}
