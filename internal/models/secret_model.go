package models

// Secret is a secret record as printed by `bws secret list`.
// Field order matches the CLI output and is kept on the wire.
// Fields are pointers so a null printed by the CLI is relayed as null.
type Secret struct {
	Object         *string `json:"object"`
	ID             *string `json:"id"`
	OrganizationID *string `json:"organizationId"`
	ProjectID      *string `json:"projectId"`
	Key            *string `json:"key"`
	Value          *string `json:"value"`
	Note           *string `json:"note"`
	CreationDate   *string `json:"creationDate"`
	RevisionDate   *string `json:"revisionDate"`
}

// CreateRequest is the POST body for creating a secret or project.
// ProjectID and Note are only read for secrets.
type CreateRequest struct {
	Name      string `json:"name"`
	Value     string `json:"value"`
	ProjectID string `json:"projectId"`
	Note      string `json:"note"`
}
