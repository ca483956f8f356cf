package domain

// UnknownFirstName is the placeholder shown while a sender's identity cannot be resolved.
const UnknownFirstName = "Unknown"

// NodeIdentity is the display identity of a network participant.
// Once resolved it never changes.
type NodeIdentity struct {
	NodeID    string `json:"nodeId"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName,omitempty"`
}

func UnknownIdentity(nodeID string) NodeIdentity {
	return NodeIdentity{NodeID: nodeID, FirstName: UnknownFirstName}
}

// DisplayName joins first and last name.
func (n NodeIdentity) DisplayName() string {
	if n.LastName == "" {
		return n.FirstName
	}
	return n.FirstName + " " + n.LastName
}

// UserInfo is the directory record of a registered user.
type UserInfo struct {
	Email     string `json:"email" validate:"required,email,max=254"`
	FirstName string `json:"firstName" validate:"required,max=64"`
	LastName  string `json:"lastName,omitempty" validate:"max=64"`
	NodeID    string `json:"nodeId"`
}

func (u UserInfo) Identity() NodeIdentity {
	return NodeIdentity{NodeID: u.NodeID, FirstName: u.FirstName, LastName: u.LastName}
}

// Node is the local network endpoint as stored by the backend.
type Node struct {
	ID     int64  `json:"id"`
	NodeID string `json:"nodeId"`
}
