package entity

type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "ACTIVE"
	ClientStatusInactive ClientStatus = "INACTIVE"
)

// FrequentClient is collaborator data consumed read-only: a recurring client
// whose default table is implicitly disabled for every event unless the event
// opts them out.
type FrequentClient struct {
	ClientID       string       `dynamodbav:"clientId"`
	ClientName     string       `dynamodbav:"clientName"`
	Phone          string       `dynamodbav:"phone,omitempty"`
	DefaultTableID string       `dynamodbav:"defaultTableId"`
	Status         ClientStatus `dynamodbav:"status"`
}
