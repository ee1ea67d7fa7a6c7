package ports

// IDGenerator produces identifiers for nodes created through the add form.
//
//go:generate mockgen -source=idgen.go -destination=mocks/mock_idgen.go -package=mocks
type IDGenerator interface {
	NewID() (string, error)
}
