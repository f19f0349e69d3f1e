package models

// Project is a project record as printed by `bws project list`.
// Fields are pointers so a null printed by the CLI is relayed as null.
type Project struct {
	Object         *string `json:"object"`
	ID             *string `json:"id"`
	OrganizationID *string `json:"organizationId"`
	Name           *string `json:"name"`
	CreationDate   *string `json:"creationDate"`
	RevisionDate   *string `json:"revisionDate"`
}
