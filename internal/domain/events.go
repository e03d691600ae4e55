package domain

import "fmt"

// EventKind identifies a broadcastable event in its canonical
// dotted form, e.g. "customer.created". The canonical strings double
// as remote event-type names and endpoint filter types, so they must
// never change once published.
type EventKind string

const (
	EventKindProjectCreated          EventKind = "project.created"
	EventKindCustomerCreated         EventKind = "customer.created"
	EventKindCustomerTreasuryCreated EventKind = "customer_treasury.created"
	EventKindCustomerWalletCreated   EventKind = "customer_wallet.created"
	EventKindProjectWalletCreated    EventKind = "project_wallet.created"
	EventKindDropCreated             EventKind = "drop.created"
	EventKindDropMinted              EventKind = "drop.minted"
	EventKindMintTransfered          EventKind = "mint.transfered"
	EventKindCollectionCreated       EventKind = "collection.created"
	EventKindMintedToCollection      EventKind = "mint.minted_to_collection"
)

// EventKinds lists every broadcastable kind in registration order.
func EventKinds() []EventKind {
	return []EventKind{
		EventKindProjectCreated,
		EventKindCustomerCreated,
		EventKindCustomerTreasuryCreated,
		EventKindCustomerWalletCreated,
		EventKindProjectWalletCreated,
		EventKindDropCreated,
		EventKindDropMinted,
		EventKindMintTransfered,
		EventKindCollectionCreated,
		EventKindMintedToCollection,
	}
}

// String returns the canonical dotted form.
func (k EventKind) String() string {
	return string(k)
}

// ParseEventKind validates a canonical dotted string and returns the
// matching kind. Unknown strings return ErrInvalidEventKind.
func ParseEventKind(s string) (EventKind, error) {
	for _, k := range EventKinds() {
		if s == string(k) {
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrInvalidEventKind, s)
}

// Event is the canonical broadcast envelope submitted to the delivery
// gateway. Payload holds the kind-specific body.
type Event struct {
	EventType EventKind `json:"event_type"`
	Payload   any       `json:"payload"`
}

// ProjectCreatedPayload announces a newly provisioned project.
type ProjectCreatedPayload struct {
	ProjectID      string `json:"project_id"`
	OrganizationID string `json:"organization_id"`
}

// CustomerCreatedPayload announces a new customer within a project.
type CustomerCreatedPayload struct {
	CustomerID string `json:"customer_id"`
	ProjectID  string `json:"project_id"`
}

// CustomerTreasuryCreatedPayload announces a treasury created for a
// customer.
type CustomerTreasuryCreatedPayload struct {
	TreasuryID string `json:"treasury_id"`
	ProjectID  string `json:"project_id"`
	CustomerID string `json:"customer_id"`
}

// CustomerWalletCreatedPayload announces a wallet added to a customer
// treasury.
type CustomerWalletCreatedPayload struct {
	TreasuryID string `json:"treasury_id"`
	ProjectID  string `json:"project_id"`
	CustomerID string `json:"customer_id"`
}

// ProjectWalletCreatedPayload announces a wallet added to a project
// treasury.
type ProjectWalletCreatedPayload struct {
	TreasuryID string `json:"treasury_id"`
	ProjectID  string `json:"project_id"`
}

// DropCreatedPayload announces a drop whose creation settled.
type DropCreatedPayload struct {
	DropID         string `json:"drop_id"`
	ProjectID      string `json:"project_id"`
	CreationStatus string `json:"creation_status"`
}

// DropMintedPayload announces a mint against a drop.
type DropMintedPayload struct {
	MintID         string `json:"mint_id"`
	DropID         string `json:"drop_id"`
	ProjectID      string `json:"project_id"`
	CreationStatus string `json:"creation_status"`
}

// MintTransferedPayload announces ownership transfer of a mint.
type MintTransferedPayload struct {
	ProjectID string `json:"project_id"`
	MintID    string `json:"mint_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// CollectionCreatedPayload announces a collection whose creation
// settled.
type CollectionCreatedPayload struct {
	CollectionID string `json:"collection_id"`
	ProjectID    string `json:"project_id"`
	Status       string `json:"status"`
}

// MintedToCollectionPayload announces a mint placed into an existing
// collection.
type MintedToCollectionPayload struct {
	MintID       string `json:"mint_id"`
	CollectionID string `json:"collection_id"`
	ProjectID    string `json:"project_id"`
	Status       string `json:"status"`
}
