package domain

// Topic names the upstream service streams the router consumes.
// Subjects on the wire carry the "events." prefix; the topic is the
// remainder.
type Topic string

const (
	TopicOrganizations Topic = "hub-orgs"
	TopicCustomers     Topic = "hub-customers"
	TopicTreasuries    Topic = "hub-treasuries"
	TopicNfts          Topic = "hub-nfts"
)

// ParseTopic maps a stream topic string to a known Topic. Unknown
// topics return ErrUnknownTopic so consumers can drop them without
// redelivery.
func ParseTopic(s string) (Topic, error) {
	switch Topic(s) {
	case TopicOrganizations, TopicCustomers, TopicTreasuries, TopicNfts:
		return Topic(s), nil
	default:
		return "", ErrUnknownTopic
	}
}

// Envelope is a raw stream record: the topic it arrived on plus the
// opaque key and value bytes, decoded per topic downstream.
type Envelope struct {
	Topic Topic
	Key   []byte
	Value []byte
}

// OrganizationEventKey identifies the organization an organization
// stream record concerns.
type OrganizationEventKey struct {
	ID string `json:"id"`
}

// OrganizationEvents is the variant union carried on the organization
// stream. Exactly one field is set per record; unknown variants decode
// to all-nil and are skipped.
type OrganizationEvents struct {
	OrganizationCreated *Organization `json:"organization_created,omitempty"`
}

// Organization is the tenant descriptor carried on creation events.
type Organization struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// CustomerEventKey identifies the customer a customer stream record
// concerns.
type CustomerEventKey struct {
	ID string `json:"id"`
}

// CustomerEvents is the variant union carried on the customer stream.
type CustomerEvents struct {
	Created *CustomerCreated `json:"created,omitempty"`
}

// CustomerCreated carries the project scope of a new customer.
type CustomerCreated struct {
	ProjectID string `json:"project_id"`
}

// TreasuryEventKey identifies the treasury a treasury stream record
// concerns.
type TreasuryEventKey struct {
	ID string `json:"id"`
}

// TreasuryEvents is the variant union carried on the treasury stream.
type TreasuryEvents struct {
	CustomerTreasuryCreated *CustomerTreasury `json:"customer_treasury_created,omitempty"`
	CustomerWalletCreated   *CustomerWallet   `json:"customer_wallet_created,omitempty"`
	ProjectWalletCreated    *ProjectWallet    `json:"project_wallet_created,omitempty"`
	MintTransfered          *MintTransfer     `json:"mint_transfered,omitempty"`
}

// CustomerTreasury scopes a treasury creation to a project customer.
type CustomerTreasury struct {
	ProjectID  string `json:"project_id"`
	CustomerID string `json:"customer_id"`
}

// CustomerWallet scopes a customer wallet creation.
type CustomerWallet struct {
	ProjectID  string `json:"project_id"`
	CustomerID string `json:"customer_id"`
}

// ProjectWallet scopes a project treasury wallet creation.
type ProjectWallet struct {
	ProjectID string `json:"project_id"`
}

// MintTransfer carries the parties of a mint ownership transfer.
type MintTransfer struct {
	ProjectID string `json:"project_id"`
	MintID    string `json:"mint_id"`
	Sender    string `json:"sender"`
	Recipient string `json:"recipient"`
}

// NftEventKey identifies the drop or mint an NFT stream record
// concerns, scoped to its project.
type NftEventKey struct {
	ID        string `json:"id"`
	ProjectID string `json:"project_id"`
}

// NftEvents is the variant union carried on the NFT stream.
type NftEvents struct {
	DropCreated        *DropCreation       `json:"drop_created,omitempty"`
	DropMinted         *DropMint           `json:"drop_minted,omitempty"`
	CollectionCreated  *CollectionCreation `json:"collection_created,omitempty"`
	MintedToCollection *CollectionMint     `json:"minted_to_collection,omitempty"`
}

// DropCreation carries the settlement status of a drop creation.
type DropCreation struct {
	Status string `json:"status"`
}

// DropMint links a mint back to its drop, with settlement status.
type DropMint struct {
	DropID string `json:"drop_id"`
	Status string `json:"status"`
}

// CollectionCreation carries the settlement status of a collection
// creation.
type CollectionCreation struct {
	Status string `json:"status"`
}

// CollectionMint links a mint to the collection it was placed in.
type CollectionMint struct {
	CollectionID string `json:"collection_id"`
	Status       string `json:"status"`
}
