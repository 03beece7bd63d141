package schema

// CatalogDocumentTable represents the 'catalog.document' table
type CatalogDocumentTable struct {
	Table     string
	Name      string
	Body      string
	UpdatedAt string
}

// CatalogDocument is the schema definition for catalog.document
var CatalogDocument = CatalogDocumentTable{
	Table:     "catalog.document",
	Name:      "name",
	Body:      "body",
	UpdatedAt: "updatedat",
}

func (t CatalogDocumentTable) Columns() []string {
	return []string{t.Name, t.Body, t.UpdatedAt}
}
